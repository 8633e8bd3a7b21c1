// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package walkctl

import "github.com/wuc656/walkctl/native"

// Tab is a strip of tab items with one current item.
type Tab struct {
	ControlBase
	// changingFrom remembers the current item between the native changing
	// and changed notifications of a user selection.
	changingFrom int

	itemSelectingPublisher Listener[*SelectingEvent[TabItem]]
	itemSelectPublisher    Listener[*SelectionEvent[TabItem]]
}

func NewTab(parent Control, bounds Rectangle) (*Tab, error) {
	t := &Tab{changingFrom: -1}

	if err := InitControl(t, parent, ControlOptions{
		Class:   native.ClassTab,
		Style:   native.WsVisible | native.WsTabStop,
		ExStyle: native.WsExControlParent,
		Bounds:  bounds,
	}); err != nil {
		return nil, err
	}

	return t, nil
}

func (t *Tab) ItemCount() int {
	return int(t.send("ItemCount", native.TcmGetItemCount, 0, 0, nil))
}

// Item returns a cursor for the item at index without querying the control.
func (t *Tab) Item(index int) TabItem {
	if index < 0 {
		precondition("Item", "negative index %d", index)
	}
	return TabItem{tab: t, index: index}
}

func (t *Tab) Insert(index int, info TabItemInfo) (TabItem, error) {
	d := info.itemData()
	r := t.send("Insert", native.TcmInsertItem, uintptr(index), 0, &d)
	if r == ^uintptr(0) {
		return TabItem{}, newNativeError("Insert", ErrRejected)
	}
	return TabItem{tab: t, index: int(r)}, nil
}

func (t *Tab) Append(info TabItemInfo) (TabItem, error) {
	return t.Insert(t.ItemCount(), info)
}

func (t *Tab) Remove(index int) {
	if t.send("Remove", native.TcmDeleteItem, uintptr(index), 0, nil) == 0 {
		precondition("Remove", "item %d out of range", index)
	}
}

// Selected returns the current item. Its index is -1 when the control has no
// items.
func (t *Tab) Selected() TabItem {
	r := t.send("Selected", native.TcmGetCurSel, 0, 0, nil)
	return TabItem{tab: t, index: int(int32(r))}
}

// Select makes the item at index current. ItemSelecting listeners may veto
// it, in which case Select returns false.
func (t *Tab) Select(index int) bool {
	if index < 0 || index >= t.ItemCount() {
		precondition("Select", "item %d out of range", index)
	}
	old := t.Selected()
	if old.index == index {
		return true
	}

	e := &SelectingEvent[TabItem]{SelectionEvent: SelectionEvent[TabItem]{Event: Event{sender: t}, old: old, new: TabItem{tab: t, index: index}}}
	t.itemSelectingPublisher.publish(e)
	if e.canceled {
		t.app.log.Trace("tab selection canceled", "hwnd", uintptr(t.hWnd), "index", index)
		return false
	}

	t.send("Select", native.TcmSetCurSel, uintptr(index), 0, nil)

	done := &SelectionEvent[TabItem]{Event: Event{sender: t}, old: old, new: e.new}
	t.itemSelectPublisher.publish(done)
	return true
}

// OnItemSelecting fires before the current item changes. For a change made
// by the user, New has index -1: the native control does not say which item
// will become current.
func (t *Tab) OnItemSelecting() *Listener[*SelectingEvent[TabItem]] {
	return &t.itemSelectingPublisher
}

func (t *Tab) OnItemSelect() *Listener[*SelectionEvent[TabItem]] {
	return &t.itemSelectPublisher
}

func (t *Tab) ProcessMessage(m *native.Message) {
	hdr, ok := m.Payload.(*native.NotifyHeader)
	if m.ID != native.MsgReflect+native.MsgNotify || !ok {
		t.ControlBase.ProcessMessage(m)
		return
	}

	switch hdr.Code {
	case native.TcnSelChanging:
		old := t.Selected()
		e := &SelectingEvent[TabItem]{SelectionEvent: SelectionEvent[TabItem]{Event: newEvent(t, m), old: old, new: TabItem{tab: t, index: -1}}}
		t.itemSelectingPublisher.publish(e)
		if e.canceled {
			t.app.log.Trace("tab selection canceled", "hwnd", uintptr(t.hWnd))
			t.changingFrom = -1
			m.Result = 1
			return
		}
		t.changingFrom = old.index
		m.Result = 0

	case native.TcnSelChange:
		e := &SelectionEvent[TabItem]{Event: newEvent(t, m), old: TabItem{tab: t, index: t.changingFrom}, new: t.Selected()}
		t.changingFrom = -1
		t.itemSelectPublisher.publish(e)
		m.Result = 0

	default:
		t.ControlBase.ProcessMessage(m)
	}
}

// TabItem is a live cursor into a Tab.
type TabItem struct {
	tab   *Tab
	index int
}

func (it TabItem) Tab() *Tab {
	return it.tab
}

func (it TabItem) Index() int {
	return it.index
}

func (it TabItem) Valid() bool {
	return it.tab != nil && it.index >= 0 && !it.tab.IsDisposed() && it.index < it.tab.ItemCount()
}

func (it TabItem) get(op string, mask uint32) native.ItemData {
	d := native.ItemData{Mask: mask}
	if it.index < 0 || it.tab.send(op, native.TcmGetItem, uintptr(it.index), 0, &d) == 0 {
		precondition(op, "item %d out of range", it.index)
	}
	return d
}

func (it TabItem) set(op string, d native.ItemData) {
	if it.index < 0 || it.tab.send(op, native.TcmSetItem, uintptr(it.index), 0, &d) == 0 {
		precondition(op, "item %d out of range", it.index)
	}
}

func (it TabItem) Text() string {
	return it.get("Text", native.TcifText).Text
}

func (it TabItem) SetText(text string) {
	it.set("SetText", native.ItemData{Mask: native.TcifText, Text: NewText(text).String()})
}

func (it TabItem) Image() int {
	return it.get("Image", native.TcifImage).Image
}

func (it TabItem) SetImage(image int) {
	it.set("SetImage", native.ItemData{Mask: native.TcifImage, Image: image})
}

// Info takes a detached snapshot with a single query.
func (it TabItem) Info() TabItemInfo {
	d := it.get("Info", native.TcifText|native.TcifImage)
	return TabItemInfo{Text: d.Text, Image: d.Image}
}

func (it TabItem) Assign(info TabItemInfo) {
	it.set("Assign", info.itemData())
}

// TabItemInfo is a detached copy of one tab item.
type TabItemInfo struct {
	Text  string
	Image int
}

func (info TabItemInfo) itemData() native.ItemData {
	return native.ItemData{
		Mask:  native.TcifText | native.TcifImage,
		Text:  NewText(info.Text).String(),
		Image: info.Image,
	}
}
