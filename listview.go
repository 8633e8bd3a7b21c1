// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package walkctl

import (
	"slices"

	"github.com/wuc656/walkctl/native"
)

// ItemState holds the state bits of a list or tree item.
type ItemState uint32

const (
	StateFocused  = ItemState(native.LvisFocused)
	StateSelected = ItemState(native.LvisSelected)
	StateExpanded = ItemState(native.TvisExpanded)
)

func (s ItemState) Has(bits ItemState) bool {
	return s&bits == bits
}

// EditState tracks an inline label edit.
type EditState int

const (
	NotEditing EditState = iota
	// EditRequested: BeginEdit was called and the native control has not
	// opened the editor yet.
	EditRequested
	// Editing: the editor is live.
	Editing
	// CommitPending: the editor closed with new text that TextEdit listeners
	// are deciding on.
	CommitPending
)

func (s EditState) String() string {
	switch s {
	case NotEditing:
		return "NotEditing"
	case EditRequested:
		return "EditRequested"
	case Editing:
		return "Editing"
	case CommitPending:
		return "CommitPending"
	}
	return "EditState(?)"
}

// ListView shows rows of items with optional sub-item columns.
type ListView struct {
	ControlBase
	editState EditState
	editor    *Edit
	editIndex int
	// reordering silences the item change events while Sort moves the
	// selection along with the rows.
	reordering bool

	itemChangingPublisher Listener[*ItemChangingEvent[ListViewItem]]
	itemChangePublisher   Listener[*ItemChangeEvent[ListViewItem]]
	itemClickPublisher    Listener[*ItemEvent[ListViewItem]]
	itemActivatePublisher Listener[*ItemEvent[ListViewItem]]
	columnClickPublisher  Listener[*ColumnEvent]
	textEditingPublisher  Listener[*TextEditingEvent[ListViewItem]]
	textEditPublisher     Listener[*TextEditEvent[ListViewItem]]
}

type ListViewOptions struct {
	Bounds Rectangle
	// EditLabels lets the user start label edits with F2.
	EditLabels bool
}

func NewListView(parent Control, opts ListViewOptions) (*ListView, error) {
	lv := new(ListView)

	style := native.WsVisible | native.WsTabStop | native.LvsReport
	if opts.EditLabels {
		style |= native.LvsEditLabels
	}

	if err := InitControl(lv, parent, ControlOptions{
		Class:   native.ClassListView,
		Style:   style,
		ExStyle: native.WsExClientEdge,
		Bounds:  opts.Bounds,
	}); err != nil {
		return nil, err
	}

	return lv, nil
}

func (lv *ListView) ColumnCount() int {
	return int(lv.send("ColumnCount", native.LvmGetColumnCount, 0, 0, nil))
}

// InsertColumn inserts a column before index and returns where it landed.
func (lv *ListView) InsertColumn(index int, title string, width int) int {
	r := lv.send("InsertColumn", native.LvmInsertColumn, 0, 0, &native.ColumnData{
		Index: index,
		Title: NewText(title).String(),
		Width: width,
	})
	return int(r)
}

func (lv *ListView) RemoveColumn(index int) {
	if lv.send("RemoveColumn", native.LvmDeleteColumn, uintptr(index), 0, nil) == 0 {
		precondition("RemoveColumn", "column %d out of range", index)
	}
}

func (lv *ListView) ItemCount() int {
	return int(lv.send("ItemCount", native.LvmGetItemCount, 0, 0, nil))
}

// Item returns a cursor for the item at index. It does not query the
// control.
func (lv *ListView) Item(index int) ListViewItem {
	if index < 0 {
		precondition("Item", "negative index %d", index)
	}
	return ListViewItem{lv: lv, index: index}
}

func (lv *ListView) Items() []ListViewItem {
	n := lv.ItemCount()
	items := make([]ListViewItem, n)
	for i := range items {
		items[i] = ListViewItem{lv: lv, index: i}
	}
	return items
}

// SelectedItems returns the selected items in row order.
func (lv *ListView) SelectedItems() []ListViewItem {
	var items []ListViewItem
	for i, n := 0, lv.ItemCount(); i < n; i++ {
		if lv.send("SelectedItems", native.LvmGetItemState, uintptr(i), uintptr(native.LvisSelected), nil) != 0 {
			items = append(items, ListViewItem{lv: lv, index: i})
		}
	}
	return items
}

// Insert adds an item before index. An index past the end appends.
func (lv *ListView) Insert(index int, info ListViewItemInfo) (ListViewItem, error) {
	d := info.itemData(index)
	r := lv.send("Insert", native.LvmInsertItem, 0, 0, &d)
	if r == ^uintptr(0) {
		return ListViewItem{}, newNativeError("Insert", ErrRejected)
	}

	it := ListViewItem{lv: lv, index: int(r)}
	for sub, text := range info.SubItems {
		it.SetSubItemText(sub+1, text)
	}
	return it, nil
}

func (lv *ListView) Append(info ListViewItemInfo) (ListViewItem, error) {
	return lv.Insert(lv.ItemCount(), info)
}

func (lv *ListView) Remove(index int) {
	if lv.send("Remove", native.LvmDeleteItem, uintptr(index), 0, nil) == 0 {
		precondition("Remove", "item %d out of range", index)
	}
}

func (lv *ListView) Clear() {
	lv.send("Clear", native.LvmDeleteAllItems, 0, 0, nil)
}

// Sort orders the items by the text of column, collated with opts. Equal
// items keep their relative order. Selection and focus travel with their
// rows; no ItemChanging or ItemChange events are raised for the move.
func (lv *ListView) Sort(column int, opts CompareOptions, descending bool) {
	infos := make([]ListViewItemInfo, lv.ItemCount())
	for i := range infos {
		infos[i] = lv.Item(i).Info()
	}

	coll := opts.collator()
	slices.SortStableFunc(infos, func(a, b ListViewItemInfo) int {
		c := coll.CompareString(a.column(column), b.column(column))
		if descending {
			return -c
		}
		return c
	})

	lv.reordering = true
	defer func() { lv.reordering = false }()
	for i, info := range infos {
		lv.Item(i).Assign(info)
	}
}

// EditState reports where the current inline label edit stands.
func (lv *ListView) EditState() EditState {
	return lv.editState
}

// Editor returns the live inline editor, or nil.
func (lv *ListView) Editor() *Edit {
	if lv.editState != Editing {
		return nil
	}
	return lv.editor
}

// EditItem returns the item under the live inline editor.
func (lv *ListView) EditItem() (ListViewItem, bool) {
	if lv.editState != Editing {
		return ListViewItem{}, false
	}
	return ListViewItem{lv: lv, index: lv.editIndex}, true
}

// BeginEdit opens the inline editor on the item at index and returns it. It
// returns nil if a TextEditing listener canceled the edit or the native
// control refused it.
func (lv *ListView) BeginEdit(index int) *Edit {
	lv.editState = EditRequested
	if lv.send("BeginEdit", native.LvmEditLabel, uintptr(index), 0, nil) == 0 {
		lv.editState = NotEditing
		return nil
	}
	return lv.Editor()
}

// EndEdit closes the inline editor. With commit the editor text goes through
// the TextEdit gate; otherwise the edit is abandoned.
func (lv *ListView) EndEdit(commit bool) {
	if lv.editState != Editing {
		return
	}
	if !commit {
		lv.send("EndEdit", native.LvmCancelEditLabel, 0, 0, nil)
		return
	}

	// The native editor commits when it loses the focus.
	n := lv.native()
	if n.Focus() != lv.editor.hWnd {
		n.SetFocus(lv.editor.hWnd)
	}
	n.SetFocus(lv.hWnd)
	if lv.editState == Editing {
		lv.send("EndEdit", native.LvmCancelEditLabel, 0, 0, nil)
	}
}

func (lv *ListView) OnItemChanging() *Listener[*ItemChangingEvent[ListViewItem]] {
	return &lv.itemChangingPublisher
}

func (lv *ListView) OnItemChange() *Listener[*ItemChangeEvent[ListViewItem]] {
	return &lv.itemChangePublisher
}

func (lv *ListView) OnItemClick() *Listener[*ItemEvent[ListViewItem]] {
	return &lv.itemClickPublisher
}

// OnItemActivate fires on a double click or Return on an item.
func (lv *ListView) OnItemActivate() *Listener[*ItemEvent[ListViewItem]] {
	return &lv.itemActivatePublisher
}

func (lv *ListView) OnColumnClick() *Listener[*ColumnEvent] {
	return &lv.columnClickPublisher
}

// OnTextEditing fires before the inline editor opens. Cancel to keep it
// closed.
func (lv *ListView) OnTextEditing() *Listener[*TextEditingEvent[ListViewItem]] {
	return &lv.textEditingPublisher
}

// OnTextEdit fires when an edit is committed. Cancel to reject the new
// text.
func (lv *ListView) OnTextEdit() *Listener[*TextEditEvent[ListViewItem]] {
	return &lv.textEditPublisher
}

func (lv *ListView) ProcessMessage(m *native.Message) {
	if m.ID != native.MsgReflect+native.MsgNotify {
		lv.ControlBase.ProcessMessage(m)
		return
	}

	switch n := m.Payload.(type) {
	case *native.ListViewNotify:
		lv.handleNotify(m, n)
	case *native.DisplayInfoNotify:
		lv.handleEditNotify(m, n)
	default:
		lv.ControlBase.ProcessMessage(m)
	}
}

func (lv *ListView) handleNotify(m *native.Message, n *native.ListViewNotify) {
	m.Result = 0

	switch n.Code {
	case native.LvnItemChanging, native.LvnItemChanged:
		if n.Changed&native.LvifState == 0 || lv.reordering {
			return
		}
		change := ItemChangeEvent[ListViewItem]{
			Event:    newEvent(lv, m),
			item:     ListViewItem{lv: lv, index: n.Item},
			oldState: ItemState(n.OldState),
			newState: ItemState(n.NewState),
		}
		if n.Code == native.LvnItemChanged {
			lv.itemChangePublisher.publish(&change)
			return
		}
		e := &ItemChangingEvent[ListViewItem]{ItemChangeEvent: change}
		lv.itemChangingPublisher.publish(e)
		if e.canceled {
			lv.app.log.Trace("item change canceled", "hwnd", uintptr(lv.hWnd), "item", n.Item)
			m.Result = 1
		}

	case native.NmClick:
		if n.Item >= 0 {
			lv.itemClickPublisher.publish(&ItemEvent[ListViewItem]{Event: newEvent(lv, m), item: ListViewItem{lv: lv, index: n.Item}})
		}

	case native.LvnItemActivate:
		lv.itemActivatePublisher.publish(&ItemEvent[ListViewItem]{Event: newEvent(lv, m), item: ListViewItem{lv: lv, index: n.Item}})

	case native.LvnColumnClick:
		lv.columnClickPublisher.publish(&ColumnEvent{Event: newEvent(lv, m), column: n.SubItem})

	default:
		lv.ControlBase.ProcessMessage(m)
	}
}

func (lv *ListView) handleEditNotify(m *native.Message, n *native.DisplayInfoNotify) {
	item := ListViewItem{lv: lv, index: n.Item.Index}

	switch n.Code {
	case native.LvnBeginLabelEdit:
		var editor *Edit
		if h := native.Handle(lv.send("TextEditing", native.LvmGetEditControl, 0, 0, nil)); h != 0 {
			editor = attachEdit(lv.app, h)
		}

		e := &TextEditingEvent[ListViewItem]{CancelEvent: CancelEvent{Event: newEvent(lv, m)}, item: item, editor: editor}
		lv.textEditingPublisher.publish(e)
		if e.canceled {
			lv.app.log.Trace("label edit canceled", "hwnd", uintptr(lv.hWnd), "item", n.Item.Index)
			lv.editState, lv.editor = NotEditing, nil
			m.Result = 1
			return
		}
		lv.editState, lv.editor, lv.editIndex = Editing, editor, n.Item.Index
		m.Result = 0

	case native.LvnEndLabelEdit:
		defer func() {
			lv.editState, lv.editor = NotEditing, nil
		}()
		m.Result = 0
		if !n.Item.TextValid {
			lv.app.log.Trace("label edit abandoned", "hwnd", uintptr(lv.hWnd), "item", n.Item.Index)
			return
		}

		lv.editState = CommitPending
		e := &TextEditEvent[ListViewItem]{CancelEvent: CancelEvent{Event: newEvent(lv, m)}, item: item, text: NewText(n.Item.Text).String()}
		lv.textEditPublisher.publish(e)
		if e.canceled {
			lv.app.log.Trace("label edit rejected", "hwnd", uintptr(lv.hWnd), "item", n.Item.Index)
			return
		}
		n.Item.Text = e.text
		m.Result = 1

	default:
		lv.ControlBase.ProcessMessage(m)
	}
}

// ListViewItem is a live cursor into a ListView. Every accessor queries the
// control; constructing one does not. A cursor must not outlive its
// ListView.
type ListViewItem struct {
	lv    *ListView
	index int
}

func (it ListViewItem) ListView() *ListView {
	return it.lv
}

func (it ListViewItem) Index() int {
	return it.index
}

// Valid reports whether the cursor still points at an item.
func (it ListViewItem) Valid() bool {
	return it.lv != nil && !it.lv.IsDisposed() && it.index < it.lv.ItemCount()
}

func (it ListViewItem) get(op string, mask uint32, sub int) native.ItemData {
	d := native.ItemData{Mask: mask, Index: it.index, SubItem: sub, StateMask: native.LvisFocused | native.LvisSelected}
	if it.lv.send(op, native.LvmGetItem, 0, 0, &d) == 0 {
		precondition(op, "item %d out of range", it.index)
	}
	return d
}

func (it ListViewItem) Text() string {
	return it.get("Text", native.LvifText, 0).Text
}

func (it ListViewItem) SetText(text string) {
	it.SetSubItemText(0, text)
}

// SubItemText returns the text of column sub. Column 0 is the item text.
func (it ListViewItem) SubItemText(sub int) string {
	return it.get("SubItemText", native.LvifText, sub).Text
}

func (it ListViewItem) SetSubItemText(sub int, text string) {
	d := native.ItemData{Index: it.index, SubItem: sub, Text: NewText(text).String()}
	if it.lv.send("SetSubItemText", native.LvmSetItemText, 0, 0, &d) == 0 {
		precondition("SetSubItemText", "item %d out of range", it.index)
	}
}

func (it ListViewItem) State() ItemState {
	return ItemState(it.get("State", native.LvifState, 0).State)
}

func (it ListViewItem) Selected() bool {
	return it.State().Has(StateSelected)
}

// SetSelected changes the selection. It reports false if an ItemChanging
// listener vetoed the change.
func (it ListViewItem) SetSelected(selected bool) bool {
	return it.setState("SetSelected", StateSelected, selected)
}

func (it ListViewItem) Focused() bool {
	return it.State().Has(StateFocused)
}

func (it ListViewItem) SetFocused(focused bool) bool {
	return it.setState("SetFocused", StateFocused, focused)
}

func (it ListViewItem) setState(op string, bits ItemState, on bool) bool {
	d := native.ItemData{StateMask: uint32(bits)}
	if on {
		d.State = uint32(bits)
	}
	return it.lv.send(op, native.LvmSetItemState, uintptr(it.index), 0, &d) != 0
}

func (it ListViewItem) Image() int {
	return it.get("Image", native.LvifImage, 0).Image
}

func (it ListViewItem) Data() uintptr {
	return it.get("Data", native.LvifParam, 0).Param
}

func (it ListViewItem) SetData(data uintptr) {
	d := native.ItemData{Mask: native.LvifParam, Index: it.index, Param: data}
	if it.lv.send("SetData", native.LvmSetItem, 0, 0, &d) == 0 {
		precondition("SetData", "item %d out of range", it.index)
	}
}

// Info takes a detached snapshot of the item. It reads the item itself, the
// column count and each sub-item text once.
func (it ListViewItem) Info() ListViewItemInfo {
	d := it.get("Info", native.LvifText|native.LvifState|native.LvifImage|native.LvifParam, 0)
	info := ListViewItemInfo{
		Text:     d.Text,
		Image:    d.Image,
		Data:     d.Param,
		Selected: d.State&native.LvisSelected != 0,
		Focused:  d.State&native.LvisFocused != 0,
	}

	cols := it.lv.ColumnCount()
	for sub := 1; sub < cols; sub++ {
		sd := native.ItemData{Mask: native.LvifText, Index: it.index, SubItem: sub}
		it.lv.send("Info", native.LvmGetItemText, 0, 0, &sd)
		info.SubItems = append(info.SubItems, sd.Text)
	}
	return info
}

// Assign overwrites the item with info, sub-items and state included. State
// changes go through the ItemChanging gate.
func (it ListViewItem) Assign(info ListViewItemInfo) {
	d := info.itemData(it.index)
	d.Mask &^= native.LvifState
	if it.lv.send("Assign", native.LvmSetItem, 0, 0, &d) == 0 {
		precondition("Assign", "item %d out of range", it.index)
	}
	for sub, text := range info.SubItems {
		it.SetSubItemText(sub+1, text)
	}
	it.setState("Assign", StateSelected, info.Selected)
	it.setState("Assign", StateFocused, info.Focused)
}

// BeginEdit opens the inline editor on the item. See ListView.BeginEdit.
func (it ListViewItem) BeginEdit() *Edit {
	return it.lv.BeginEdit(it.index)
}

// ListViewItemInfo is a detached copy of one item.
type ListViewItemInfo struct {
	Text     string
	SubItems []string
	Image    int
	Data     uintptr
	Selected bool
	Focused  bool
}

func (info ListViewItemInfo) column(i int) string {
	if i == 0 {
		return info.Text
	}
	if i-1 < len(info.SubItems) {
		return info.SubItems[i-1]
	}
	return ""
}

func (info ListViewItemInfo) itemData(index int) native.ItemData {
	d := native.ItemData{
		Mask:      native.LvifText | native.LvifImage | native.LvifParam | native.LvifState,
		Index:     index,
		Text:      NewText(info.Text).String(),
		Image:     info.Image,
		Param:     info.Data,
		StateMask: native.LvisFocused | native.LvisSelected,
	}
	if info.Selected {
		d.State |= native.LvisSelected
	}
	if info.Focused {
		d.State |= native.LvisFocused
	}
	return d
}
