// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package walkctl

import "github.com/wuc656/walkctl/native"

// TreeView shows a hierarchy of items.
type TreeView struct {
	ControlBase
	editState EditState
	editor    *Edit
	editItem  uintptr

	itemExpandingPublisher Listener[*ExpandingEvent[TreeItem]]
	itemExpandPublisher    Listener[*ExpandEvent[TreeItem]]
	itemSelectingPublisher Listener[*SelectingEvent[TreeItem]]
	itemSelectPublisher    Listener[*SelectionEvent[TreeItem]]
	textEditingPublisher   Listener[*TextEditingEvent[TreeItem]]
	textEditPublisher      Listener[*TextEditEvent[TreeItem]]
}

type TreeViewOptions struct {
	Bounds     Rectangle
	EditLabels bool
}

func NewTreeView(parent Control, opts TreeViewOptions) (*TreeView, error) {
	tv := new(TreeView)

	style := native.WsVisible | native.WsTabStop | native.TvsHasButtons
	if opts.EditLabels {
		style |= native.TvsEditLabels
	}

	if err := InitControl(tv, parent, ControlOptions{
		Class:   native.ClassTreeView,
		Style:   style,
		ExStyle: native.WsExClientEdge,
		Bounds:  opts.Bounds,
	}); err != nil {
		return nil, err
	}

	return tv, nil
}

// ItemCount returns the number of items at all levels.
func (tv *TreeView) ItemCount() int {
	return int(tv.send("ItemCount", native.TvmGetCount, 0, 0, nil))
}

// Item returns a cursor for a native item id without querying the control.
func (tv *TreeView) Item(id uintptr) TreeItem {
	return TreeItem{tv: tv, id: id}
}

func (tv *TreeView) next(op string, flag, id uintptr) TreeItem {
	return TreeItem{tv: tv, id: tv.send(op, native.TvmGetNextItem, flag, id, nil)}
}

// Roots returns the top-level items.
func (tv *TreeView) Roots() []TreeItem {
	return tv.siblingsFrom(tv.next("Roots", native.TvgnRoot, 0))
}

func (tv *TreeView) siblingsFrom(it TreeItem) []TreeItem {
	var items []TreeItem
	for ; it.id != 0; it = tv.next("Items", native.TvgnNext, it.id) {
		items = append(items, it)
	}
	return items
}

// Insert adds info and its children as the last child of parent. A zero
// parent inserts at the top level. Expanded items are expanded without
// raising the expansion events.
func (tv *TreeView) Insert(parent TreeItem, info TreeItemInfo) (TreeItem, error) {
	ins := native.TreeInsert{
		Parent:      native.TviRoot,
		InsertAfter: native.TviLast,
		Item:        info.itemData(),
	}
	if parent.id != 0 {
		ins.Parent = parent.id
	}

	id := tv.send("Insert", native.TvmInsertItem, 0, 0, &ins)
	if id == 0 {
		return TreeItem{}, newNativeError("Insert", ErrRejected)
	}
	it := TreeItem{tv: tv, id: id}

	for _, child := range info.Children {
		if _, err := tv.Insert(it, child); err != nil {
			return it, err
		}
	}
	if info.Expanded && len(info.Children) > 0 {
		tv.send("Insert", native.TvmExpand, native.TveExpand, id, nil)
	}
	return it, nil
}

// Remove deletes it and its descendants.
func (tv *TreeView) Remove(it TreeItem) {
	if it.id == 0 || tv.send("Remove", native.TvmDeleteItem, 0, it.id, nil) == 0 {
		precondition("Remove", "invalid item %#x", it.id)
	}
}

func (tv *TreeView) Clear() {
	tv.send("Clear", native.TvmDeleteItem, 0, native.TviRoot, nil)
}

// Selected returns the current item, or an invalid cursor when there is
// none.
func (tv *TreeView) Selected() TreeItem {
	return tv.next("Selected", native.TvgnCaret, 0)
}

// Select makes it the current item. A zero item clears the selection. It
// returns false if an ItemSelecting listener vetoed the change.
func (tv *TreeView) Select(it TreeItem) bool {
	return tv.send("Select", native.TvmSelectItem, native.TvgnCaret, it.id, nil) != 0
}

func (tv *TreeView) EditState() EditState {
	return tv.editState
}

func (tv *TreeView) Editor() *Edit {
	if tv.editState != Editing {
		return nil
	}
	return tv.editor
}

// EditItem returns the item under the live inline editor.
func (tv *TreeView) EditItem() (TreeItem, bool) {
	if tv.editState != Editing {
		return TreeItem{}, false
	}
	return tv.Item(tv.editItem), true
}

// BeginEdit opens the inline editor on it. It returns nil if a TextEditing
// listener canceled the edit.
func (tv *TreeView) BeginEdit(it TreeItem) *Edit {
	tv.editState = EditRequested
	if tv.send("BeginEdit", native.TvmEditLabel, 0, it.id, nil) == 0 {
		tv.editState = NotEditing
		return nil
	}
	return tv.Editor()
}

func (tv *TreeView) EndEdit(commit bool) {
	if tv.editState != Editing {
		return
	}
	var cancel uintptr
	if !commit {
		cancel = 1
	}
	tv.send("EndEdit", native.TvmEndEditLabelNow, cancel, 0, nil)
}

func (tv *TreeView) OnItemExpanding() *Listener[*ExpandingEvent[TreeItem]] {
	return &tv.itemExpandingPublisher
}

func (tv *TreeView) OnItemExpand() *Listener[*ExpandEvent[TreeItem]] {
	return &tv.itemExpandPublisher
}

func (tv *TreeView) OnItemSelecting() *Listener[*SelectingEvent[TreeItem]] {
	return &tv.itemSelectingPublisher
}

func (tv *TreeView) OnItemSelect() *Listener[*SelectionEvent[TreeItem]] {
	return &tv.itemSelectPublisher
}

func (tv *TreeView) OnTextEditing() *Listener[*TextEditingEvent[TreeItem]] {
	return &tv.textEditingPublisher
}

func (tv *TreeView) OnTextEdit() *Listener[*TextEditEvent[TreeItem]] {
	return &tv.textEditPublisher
}

func (tv *TreeView) ProcessMessage(m *native.Message) {
	if m.ID != native.MsgReflect+native.MsgNotify {
		tv.ControlBase.ProcessMessage(m)
		return
	}

	switch n := m.Payload.(type) {
	case *native.TreeViewNotify:
		tv.handleNotify(m, n)
	case *native.DisplayInfoNotify:
		tv.handleEditNotify(m, n)
	default:
		tv.ControlBase.ProcessMessage(m)
	}
}

func (tv *TreeView) handleNotify(m *native.Message, n *native.TreeViewNotify) {
	m.Result = 0

	switch n.Code {
	case native.TvnSelChanging:
		e := &SelectingEvent[TreeItem]{SelectionEvent: SelectionEvent[TreeItem]{Event: newEvent(tv, m), old: tv.Item(n.OldItem.Item), new: tv.Item(n.NewItem.Item)}}
		tv.itemSelectingPublisher.publish(e)
		if e.canceled {
			tv.app.log.Trace("tree selection canceled", "hwnd", uintptr(tv.hWnd))
			m.Result = 1
		}

	case native.TvnSelChanged:
		tv.itemSelectPublisher.publish(&SelectionEvent[TreeItem]{Event: newEvent(tv, m), old: tv.Item(n.OldItem.Item), new: tv.Item(n.NewItem.Item)})

	case native.TvnItemExpanding:
		e := &ExpandingEvent[TreeItem]{ExpandEvent: ExpandEvent[TreeItem]{Event: newEvent(tv, m), item: tv.Item(n.NewItem.Item), expanding: n.Action == native.TveExpand}}
		tv.itemExpandingPublisher.publish(e)
		if e.canceled {
			tv.app.log.Trace("tree expansion canceled", "hwnd", uintptr(tv.hWnd))
			m.Result = 1
		}

	case native.TvnItemExpanded:
		tv.itemExpandPublisher.publish(&ExpandEvent[TreeItem]{Event: newEvent(tv, m), item: tv.Item(n.NewItem.Item), expanding: n.Action == native.TveExpand})

	default:
		tv.ControlBase.ProcessMessage(m)
	}
}

func (tv *TreeView) handleEditNotify(m *native.Message, n *native.DisplayInfoNotify) {
	item := tv.Item(n.Item.Item)

	switch n.Code {
	case native.TvnBeginLabelEdit:
		var editor *Edit
		if h := native.Handle(tv.send("TextEditing", native.TvmGetEditControl, 0, 0, nil)); h != 0 {
			editor = attachEdit(tv.app, h)
		}

		e := &TextEditingEvent[TreeItem]{CancelEvent: CancelEvent{Event: newEvent(tv, m)}, item: item, editor: editor}
		tv.textEditingPublisher.publish(e)
		if e.canceled {
			tv.app.log.Trace("label edit canceled", "hwnd", uintptr(tv.hWnd), "item", n.Item.Item)
			tv.editState, tv.editor = NotEditing, nil
			m.Result = 1
			return
		}
		tv.editState, tv.editor, tv.editItem = Editing, editor, n.Item.Item
		m.Result = 0

	case native.TvnEndLabelEdit:
		defer func() {
			tv.editState, tv.editor, tv.editItem = NotEditing, nil, 0
		}()
		m.Result = 0
		if !n.Item.TextValid {
			tv.app.log.Trace("label edit abandoned", "hwnd", uintptr(tv.hWnd), "item", n.Item.Item)
			return
		}

		tv.editState = CommitPending
		e := &TextEditEvent[TreeItem]{CancelEvent: CancelEvent{Event: newEvent(tv, m)}, item: item, text: NewText(n.Item.Text).String()}
		tv.textEditPublisher.publish(e)
		if e.canceled {
			tv.app.log.Trace("label edit rejected", "hwnd", uintptr(tv.hWnd), "item", n.Item.Item)
			return
		}
		n.Item.Text = e.text
		m.Result = 1

	default:
		tv.ControlBase.ProcessMessage(m)
	}
}

// TreeItem is a live cursor naming a native tree item. The zero TreeItem
// names no item.
type TreeItem struct {
	tv *TreeView
	id uintptr
}

func (it TreeItem) TreeView() *TreeView {
	return it.tv
}

// ID returns the native item id.
func (it TreeItem) ID() uintptr {
	return it.id
}

func (it TreeItem) Valid() bool {
	if it.tv == nil || it.id == 0 || it.tv.IsDisposed() {
		return false
	}
	d := native.ItemData{Item: it.id}
	return it.tv.send("Valid", native.TvmGetItem, 0, 0, &d) != 0
}

func (it TreeItem) get(op string, mask, stateMask uint32) native.ItemData {
	d := native.ItemData{Mask: mask, Item: it.id, StateMask: stateMask}
	if it.id == 0 || it.tv.send(op, native.TvmGetItem, 0, 0, &d) == 0 {
		precondition(op, "invalid item %#x", it.id)
	}
	return d
}

func (it TreeItem) set(op string, d native.ItemData) {
	d.Item = it.id
	if it.id == 0 || it.tv.send(op, native.TvmSetItem, 0, 0, &d) == 0 {
		precondition(op, "invalid item %#x", it.id)
	}
}

func (it TreeItem) Text() string {
	return it.get("Text", native.TvifText, 0).Text
}

func (it TreeItem) SetText(text string) {
	it.set("SetText", native.ItemData{Mask: native.TvifText, Text: NewText(text).String()})
}

func (it TreeItem) Image() int {
	return it.get("Image", native.TvifImage, 0).Image
}

func (it TreeItem) SetImage(image int) {
	it.set("SetImage", native.ItemData{Mask: native.TvifImage, Image: image})
}

func (it TreeItem) Data() uintptr {
	return it.get("Data", native.TvifParam, 0).Param
}

func (it TreeItem) SetData(data uintptr) {
	it.set("SetData", native.ItemData{Mask: native.TvifParam, Param: data})
}

func (it TreeItem) Expanded() bool {
	return it.get("Expanded", native.TvifState, native.TvisExpanded).State != 0
}

func (it TreeItem) Selected() bool {
	return it.get("Selected", native.TvifState, native.TvisSelected).State != 0
}

func (it TreeItem) HasChildren() bool {
	return it.get("HasChildren", native.TvifChildren, 0).Children != 0
}

// SetExpanded expands or collapses the item through the ItemExpanding and
// ItemExpand events. It returns false if a listener vetoed the change.
func (it TreeItem) SetExpanded(expand bool) bool {
	if it.Expanded() == expand {
		return true
	}
	tv := it.tv

	e := &ExpandingEvent[TreeItem]{ExpandEvent: ExpandEvent[TreeItem]{Event: Event{sender: tv}, item: it, expanding: expand}}
	tv.itemExpandingPublisher.publish(e)
	if e.canceled {
		tv.app.log.Trace("tree expansion canceled", "hwnd", uintptr(tv.hWnd), "item", it.id)
		return false
	}

	action := native.TveCollapse
	if expand {
		action = native.TveExpand
	}
	tv.send("SetExpanded", native.TvmExpand, action, it.id, nil)

	tv.itemExpandPublisher.publish(&ExpandEvent[TreeItem]{Event: Event{sender: tv}, item: it, expanding: expand})
	return true
}

func (it TreeItem) Expand() bool {
	return it.SetExpanded(true)
}

func (it TreeItem) Collapse() bool {
	return it.SetExpanded(false)
}

// Parent returns the parent item, or the zero TreeItem for a top-level item.
func (it TreeItem) Parent() TreeItem {
	p := it.tv.next("Parent", native.TvgnParent, it.id)
	if p.id == 0 {
		return TreeItem{}
	}
	return p
}

func (it TreeItem) Children() []TreeItem {
	return it.tv.siblingsFrom(it.tv.next("Children", native.TvgnChild, it.id))
}

func (it TreeItem) NextSibling() TreeItem {
	return it.tv.next("NextSibling", native.TvgnNext, it.id)
}

func (it TreeItem) PrevSibling() TreeItem {
	return it.tv.next("PrevSibling", native.TvgnPrevious, it.id)
}

// Info takes a detached snapshot of the item and its descendants.
func (it TreeItem) Info() TreeItemInfo {
	d := it.get("Info", native.TvifText|native.TvifImage|native.TvifParam|native.TvifState, native.TvisExpanded)
	info := TreeItemInfo{
		Text:     d.Text,
		Image:    d.Image,
		Data:     d.Param,
		Expanded: d.State&native.TvisExpanded != 0,
	}
	for _, child := range it.Children() {
		info.Children = append(info.Children, child.Info())
	}
	return info
}

// Assign overwrites the item's text, image and data. Children and expansion
// are left alone.
func (it TreeItem) Assign(info TreeItemInfo) {
	d := info.itemData()
	d.Mask &^= native.TvifState
	it.set("Assign", d)
}

func (it TreeItem) BeginEdit() *Edit {
	return it.tv.BeginEdit(it)
}

// TreeItemInfo is a detached copy of an item and its descendants.
type TreeItemInfo struct {
	Text     string
	Image    int
	Data     uintptr
	Expanded bool
	Children []TreeItemInfo
}

func (info TreeItemInfo) itemData() native.ItemData {
	return native.ItemData{
		Mask:  native.TvifText | native.TvifImage | native.TvifParam,
		Text:  NewText(info.Text).String(),
		Image: info.Image,
		Param: info.Data,
	}
}
