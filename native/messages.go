// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package native

// Message ids. Values follow the Win32 numbering so the win32 backend can
// pass them through unchanged.
const (
	MsgNull          uint32 = 0x0000
	MsgCreate        uint32 = 0x0001
	MsgDestroy       uint32 = 0x0002
	MsgMove          uint32 = 0x0003
	MsgSize          uint32 = 0x0005
	MsgActivate      uint32 = 0x0006
	MsgSetFocus      uint32 = 0x0007
	MsgKillFocus     uint32 = 0x0008
	MsgEnable        uint32 = 0x000A
	MsgSetText       uint32 = 0x000C
	MsgGetText       uint32 = 0x000D
	MsgPaint         uint32 = 0x000F
	MsgClose         uint32 = 0x0010
	MsgQuit          uint32 = 0x0012
	MsgEraseBkgnd    uint32 = 0x0014
	MsgShowWindow    uint32 = 0x0018
	MsgSetFont       uint32 = 0x0030
	MsgNotify        uint32 = 0x004E
	MsgContextMenu   uint32 = 0x007B
	MsgNCDestroy     uint32 = 0x0082
	MsgKeyDown       uint32 = 0x0100
	MsgKeyUp         uint32 = 0x0101
	MsgChar          uint32 = 0x0102
	MsgCommand       uint32 = 0x0111
	MsgHScroll       uint32 = 0x0114
	MsgVScroll       uint32 = 0x0115
	MsgMouseMove     uint32 = 0x0200
	MsgLButtonDown   uint32 = 0x0201
	MsgLButtonUp     uint32 = 0x0202
	MsgLButtonDblClk uint32 = 0x0203
	MsgRButtonDown   uint32 = 0x0204
	MsgRButtonUp     uint32 = 0x0205
	MsgRButtonDblClk uint32 = 0x0206
	MsgMButtonDown   uint32 = 0x0207
	MsgMButtonUp     uint32 = 0x0208
	MsgMButtonDblClk uint32 = 0x0209
	MsgMouseWheel    uint32 = 0x020A
	MsgMouseHover    uint32 = 0x02A1
	MsgMouseLeave    uint32 = 0x02A3
	MsgUser          uint32 = 0x0400

	// MsgReflect is added to a notification id when a parent hands the
	// notification back to the child that sent it.
	MsgReflect uint32 = 0x2000

	// MsgApp is the first id available for application-defined messages.
	MsgApp uint32 = 0x8000
	// MsgAppLimit is one past the last application-defined id.
	MsgAppLimit uint32 = 0xC000
)

// Edit control messages and notifications.
const (
	EmGetSel       uint32 = 0x00B0
	EmSetSel       uint32 = 0x00B1
	EmSetLimitText uint32 = 0x00C5
	EmSetReadOnly  uint32 = 0x00CF
	EmGetLimitText uint32 = 0x00D5

	EnChange = 0x0300
)

// Button messages and notifications.
const (
	BmGetCheck uint32 = 0x00F0
	BmSetCheck uint32 = 0x00F1
	BmClick    uint32 = 0x00F5

	BnClicked = 0

	BstUnchecked = 0
	BstChecked   = 1
)

// List view messages.
const (
	lvmFirst uint32 = 0x1000

	LvmGetItemCount    = lvmFirst + 4
	LvmDeleteItem      = lvmFirst + 8
	LvmDeleteAllItems  = lvmFirst + 9
	LvmGetEditControl  = lvmFirst + 24
	LvmDeleteColumn    = lvmFirst + 28
	LvmSetItemState    = lvmFirst + 43
	LvmGetItemState    = lvmFirst + 44
	LvmGetItem         = lvmFirst + 75
	LvmSetItem         = lvmFirst + 76
	LvmInsertItem      = lvmFirst + 77
	LvmInsertColumn    = lvmFirst + 97
	LvmGetItemText     = lvmFirst + 115
	LvmSetItemText     = lvmFirst + 116
	LvmEditLabel       = lvmFirst + 118
	LvmCancelEditLabel = lvmFirst + 179

	// LvmGetColumnCount has no direct Win32 equivalent; the win32 backend
	// answers it through the header control.
	LvmGetColumnCount = lvmFirst + 0x0F00
)

// Tree view messages.
const (
	tvmFirst uint32 = 0x1100

	TvmDeleteItem      = tvmFirst + 1
	TvmExpand          = tvmFirst + 2
	TvmGetCount        = tvmFirst + 5
	TvmGetNextItem     = tvmFirst + 10
	TvmSelectItem      = tvmFirst + 11
	TvmGetEditControl  = tvmFirst + 15
	TvmEndEditLabelNow = tvmFirst + 22
	TvmInsertItem      = tvmFirst + 50
	TvmGetItem         = tvmFirst + 62
	TvmSetItem         = tvmFirst + 63
	TvmEditLabel       = tvmFirst + 65
)

// Tab control messages.
const (
	tcmFirst uint32 = 0x1300

	TcmGetItemCount = tcmFirst + 4
	TcmDeleteItem   = tcmFirst + 8
	TcmGetCurSel    = tcmFirst + 11
	TcmSetCurSel    = tcmFirst + 12
	TcmGetItem      = tcmFirst + 60
	TcmSetItem      = tcmFirst + 61
	TcmInsertItem   = tcmFirst + 62
)

// Notification codes carried in NotifyHeader.Code.
const (
	NmClick  int32 = -2
	NmDblClk int32 = -3
	NmRClick int32 = -5

	LvnItemChanging   int32 = -100
	LvnItemChanged    int32 = -101
	LvnColumnClick    int32 = -108
	LvnItemActivate   int32 = -114
	LvnBeginLabelEdit int32 = -175
	LvnEndLabelEdit   int32 = -176

	TvnSelChanging    int32 = -450
	TvnSelChanged     int32 = -451
	TvnItemExpanding  int32 = -454
	TvnItemExpanded   int32 = -455
	TvnBeginLabelEdit int32 = -459
	TvnEndLabelEdit   int32 = -460

	TcnSelChange   int32 = -551
	TcnSelChanging int32 = -552
)

// Window styles.
const (
	WsChild    uint32 = 0x40000000
	WsVisible  uint32 = 0x10000000
	WsDisabled uint32 = 0x08000000
	WsBorder   uint32 = 0x00800000
	WsGroup    uint32 = 0x00020000
	WsTabStop  uint32 = 0x00010000

	WsExStaticEdge    uint32 = 0x00020000
	WsExControlParent uint32 = 0x00010000
	WsExClientEdge    uint32 = 0x00000200

	EsMultiline uint32 = 0x0004
	EsReadOnly  uint32 = 0x0800

	BsPushButton    uint32 = 0x0000
	BsDefPushButton uint32 = 0x0001
	BsAutoCheckBox  uint32 = 0x0003

	LvsReport     uint32 = 0x0001
	LvsEditLabels uint32 = 0x0200

	TvsHasButtons uint32 = 0x0001
	TvsEditLabels uint32 = 0x0008
)

// Item masks and states.
const (
	LvifText  uint32 = 0x0001
	LvifImage uint32 = 0x0002
	LvifParam uint32 = 0x0004
	LvifState uint32 = 0x0008

	LvisFocused  uint32 = 0x0001
	LvisSelected uint32 = 0x0002

	TvifText     uint32 = 0x0001
	TvifImage    uint32 = 0x0002
	TvifParam    uint32 = 0x0004
	TvifState    uint32 = 0x0008
	TvifChildren uint32 = 0x0040

	TvisSelected uint32 = 0x0002
	TvisExpanded uint32 = 0x0020

	TvgnRoot     uintptr = 0x0000
	TvgnNext     uintptr = 0x0001
	TvgnPrevious uintptr = 0x0002
	TvgnParent   uintptr = 0x0003
	TvgnChild    uintptr = 0x0004
	TvgnCaret    uintptr = 0x0009

	TveCollapse uintptr = 0x0001
	TveExpand   uintptr = 0x0002

	TcifText  uint32 = 0x0001
	TcifImage uint32 = 0x0002
)

// Tree insertion sentinels.
const (
	TviRoot  = ^uintptr(0xFFFF)
	TviFirst = ^uintptr(0xFFFE)
	TviLast  = ^uintptr(0xFFFD)
)

// Mouse key-state flags carried in A of mouse messages.
const (
	MkLButton  uintptr = 0x0001
	MkRButton  uintptr = 0x0002
	MkShift    uintptr = 0x0004
	MkControl  uintptr = 0x0008
	MkMButton  uintptr = 0x0010
	MkXButton1 uintptr = 0x0020
	MkXButton2 uintptr = 0x0040

	MkButtons = MkLButton | MkRButton | MkMButton | MkXButton1 | MkXButton2
)

// TrackMouse flags.
const (
	TrackHover  uint32 = 0x00000001
	TrackLeave  uint32 = 0x00000002
	TrackCancel uint32 = 0x80000000
)

// Virtual key codes.
const (
	VkBack    uint32 = 0x08
	VkTab     uint32 = 0x09
	VkReturn  uint32 = 0x0D
	VkShift   uint32 = 0x10
	VkControl uint32 = 0x11
	VkMenu    uint32 = 0x12
	VkEscape  uint32 = 0x1B
	VkSpace   uint32 = 0x20
	VkLeft    uint32 = 0x25
	VkUp      uint32 = 0x26
	VkRight   uint32 = 0x27
	VkDown    uint32 = 0x28
	VkApps    uint32 = 0x5D
	VkF2      uint32 = 0x71
)

// Activation states carried in the low word of MsgActivate's A.
const (
	WaInactive    = 0
	WaActive      = 1
	WaClickActive = 2
)

// Class names understood by every backend.
const (
	ClassWindow   = "walkctl.Window"
	ClassEdit     = "Edit"
	ClassButton   = "Button"
	ClassListView = "SysListView32"
	ClassTab      = "SysTabControl32"
	ClassTreeView = "SysTreeView32"
)
