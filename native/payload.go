// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package native

// NotifyHeader identifies the sender of a MsgNotify message.
type NotifyHeader struct {
	From Handle
	ID   uintptr
	Code int32
}

func (h *NotifyHeader) Header() *NotifyHeader {
	return h
}

// Notifier is implemented by every MsgNotify payload.
type Notifier interface {
	Header() *NotifyHeader
}

// ItemData describes one list, tree or tab item. Mask selects the fields a
// request reads or writes.
type ItemData struct {
	Mask      uint32
	Index     int
	SubItem   int
	Item      uintptr // tree item id
	State     uint32
	StateMask uint32
	Text      string
	TextValid bool
	Image     int
	Param     uintptr
	Children  int
}

// TreeInsert is the payload of TvmInsertItem.
type TreeInsert struct {
	Parent      uintptr
	InsertAfter uintptr
	Item        ItemData
}

// ColumnData is the payload of LvmInsertColumn.
type ColumnData struct {
	Index int
	Title string
	Width int
}

// ListViewNotify accompanies list view state and click notifications.
type ListViewNotify struct {
	NotifyHeader
	Item     int
	SubItem  int
	NewState uint32
	OldState uint32
	Changed  uint32
	Point    Point
}

// DisplayInfoNotify accompanies label edit notifications. For an end-edit
// notification Item.TextValid is false when the edit was abandoned.
type DisplayInfoNotify struct {
	NotifyHeader
	Item ItemData
}

// TreeViewNotify accompanies tree view selection and expansion
// notifications.
type TreeViewNotify struct {
	NotifyHeader
	Action  uintptr
	OldItem ItemData
	NewItem ItemData
	Point   Point
}

// FontSpec is the payload of MsgSetFont.
type FontSpec struct {
	Name   string
	Height int
	Bold   bool
	Italic bool
}
