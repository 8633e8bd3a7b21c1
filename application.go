// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package walkctl

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"sync/atomic"
	"time"

	"github.com/wuc656/walkctl/internal/logger"
	"github.com/wuc656/walkctl/native"
)

// Application owns the message loop of one UI thread and the state shared by
// the controls created on it: the handle registry, settings, logging and the
// invoke table. Unlike the windows it creates it is not a singleton; tests
// may run several Applications against separate backends.
type Application struct {
	native     native.Native
	settings   Settings
	log        Logger
	uiThreadID uint32

	ctx       context.Context
	ctxCancel context.CancelFunc
	waitGroup sync.WaitGroup
	exiting   atomic.Bool

	nextMsg     uint32
	syncFuncMsg uint32
	invokeMsg   uint32

	msgWindow      native.Handle
	syncFuncsMutex sync.Mutex
	syncFuncs      []func()

	procedure   native.Procedure
	registry    *registry
	invocations invocationTable

	panicHandler               func(*ListenerPanicError)
	globalPreTranslateHandlers []PreTranslateHandler
	activeMessageLoops         int
}

// Option configures an Application.
type Option func(*Application)

func WithSettings(s Settings) Option {
	return func(app *Application) {
		app.settings = s
	}
}

func WithLogger(l Logger) Option {
	return func(app *Application) {
		if l != nil {
			app.log = l
		}
	}
}

// WithPanicHandler observes every panic recovered at a native callback
// boundary, before the panic policy is applied.
func WithPanicHandler(fn func(*ListenerPanicError)) Option {
	return func(app *Application) {
		app.panicHandler = fn
	}
}

// NewApplication binds a new Application to the calling thread. The calling
// goroutine must stay locked to its OS thread (runtime.LockOSThread) for as
// long as it uses the Application.
func NewApplication(n native.Native, opts ...Option) (*Application, error) {
	app := &Application{
		native:     n,
		settings:   DefaultSettings(),
		log:        logger.Nop{},
		uiThreadID: native.CurrentThreadID(),
		registry:   newRegistry(),
		nextMsg:    native.MsgApp,
	}
	for _, opt := range opts {
		opt(app)
	}
	if err := app.settings.Validate(); err != nil {
		return nil, err
	}

	app.ctx, app.ctxCancel = context.WithCancel(context.Background())
	app.procedure = app.standardProcedure
	app.invocations.pending = make(map[uintptr]*invocation)

	// Nothing else has allocated yet, so these cannot fail.
	app.syncFuncMsg, _ = app.AllocMessage()
	app.invokeMsg, _ = app.AllocMessage()

	msgWindow, err := n.CreateWindow(native.CreateOptions{
		Class: native.ClassWindow,
		Text:  fmt.Sprintf("walkctl message window for tid %d", app.uiThreadID),
	})
	if err != nil {
		return nil, newNativeError("CreateWindow", err)
	}
	app.msgWindow = msgWindow
	n.SetProcedure(msgWindow, app.msgWindowProc)

	app.log.Debug("application started", "tid", app.uiThreadID)
	return app, nil
}

func (app *Application) Native() native.Native {
	return app.native
}

// Settings returns the settings the Application was created with.
func (app *Application) Settings() Settings {
	return app.settings
}

func (app *Application) Logger() Logger {
	return app.log
}

// SetPanicHandler replaces the handler installed by WithPanicHandler. It
// must be called from the UI thread.
func (app *Application) SetPanicHandler(fn func(*ListenerPanicError)) {
	app.AssertUIThread()
	app.panicHandler = fn
}

// Exit initiates shutdown. The app's context is canceled and the message
// loop exits, making Run return exitCode. Exit may be called from any
// goroutine; only the first call has any effect.
func (app *Application) Exit(exitCode int) {
	if !app.exiting.CompareAndSwap(false, true) {
		return
	}

	app.ctxCancel()
	app.log.Debug("application exiting", "code", exitCode)

	postQuit := func() {
		app.native.PostQuit(exitCode)
	}

	if !app.IsUIThread() {
		app.Synchronize(postQuit)
		return
	}

	postQuit()
}

// handleCallbackPanic is deferred by every native callback. It recovers a
// panic raised farther down the stack and applies the panic policy.
// Precondition violations always crash.
func (app *Application) handleCallbackPanic(id uint32, result *uintptr) {
	x := recover()
	if x == nil {
		return
	}

	e := &ListenerPanicError{
		Message: id,
		Value:   x,
		Stack:   debug.Stack(), // inside recover, so this is the panicking stack
	}
	if app.panicHandler != nil {
		app.panicHandler(e)
	}

	_, isPrecondition := x.(*PreconditionError)
	if !isPrecondition && app.settings.panicPolicy() == PanicPolicyLog {
		app.log.Error("recovered listener panic", "msg", id, "err", e.Value, "stack", string(e.Stack))
		*result = 0
		return
	}

	app.log.Error("listener panic", "msg", id, "err", e.Value)
	go panic(e)
	// Don't let the UI thread go anywhere past this point.
	select {}
}

// standardProcedure is installed on every attached window. It is the single
// entry point from the native layer into the object model.
func (app *Application) standardProcedure(h native.Handle, id uint32, a, b uintptr, payload any) (result uintptr) {
	defer app.handleCallbackPanic(id, &result)

	c := app.registry.lookup(h)
	if c == nil {
		app.log.Trace("message for unowned window", "hwnd", uintptr(h), "msg", id)
		return 0
	}

	m := &native.Message{Target: h, ID: id, A: a, B: b, Payload: payload}
	c.ProcessMessage(m)
	return m.Result
}

func (app *Application) msgWindowProc(h native.Handle, id uint32, a, b uintptr, payload any) (result uintptr) {
	defer app.handleCallbackPanic(id, &result)

	if id == app.syncFuncMsg {
		app.runSyncFunc()
	}
	return 0
}

// IsUIThread reports whether the caller runs on the Application's thread.
func (app *Application) IsUIThread() bool {
	return !native.AffinityChecked || native.CurrentThreadID() == app.uiThreadID
}

// AssertUIThread panics with *PreconditionError off the UI thread.
func (app *Application) AssertUIThread() {
	if !app.IsUIThread() {
		precondition("AssertUIThread", "not the UI thread")
	}
}

// AllocMessage allocates a message id for an application-defined purpose.
// It returns native.MsgNull and ErrNoMoreMessages once the private range is
// exhausted. It must be called from the UI thread.
func (app *Application) AllocMessage() (uint32, error) {
	app.AssertUIThread()

	if app.nextMsg >= native.MsgAppLimit {
		return native.MsgNull, ErrNoMoreMessages
	}

	ret := app.nextMsg
	app.nextMsg++
	return ret, nil
}

// Run pumps messages until Exit is called and returns the exit code passed
// to Exit. It must be called from the UI thread.
func (app *Application) Run() int {
	app.AssertUIThread()
	exitCode := app.runMainMessageLoop()

	app.waitGroup.Wait()
	return exitCode
}

func (app *Application) runMainMessageLoop() int {
	if app.activeMessageLoops != 0 {
		precondition("Run", "unexpected nesting of top-level message loop")
	}
	app.activeMessageLoops++
	defer func() {
		app.activeMessageLoops--
	}()

	for {
		msg, ok := app.native.GetMessage()
		if !ok {
			return int(msg.A)
		}
		app.dispatch(&msg)
	}
}

// PumpPending dispatches queued messages until the queue is empty and
// returns how many it dispatched. It never blocks.
func (app *Application) PumpPending() int {
	app.AssertUIThread()

	n := 0
	for {
		msg, ok := app.native.PeekMessage()
		if !ok {
			return n
		}
		app.dispatch(&msg)
		n++
	}
}

func (app *Application) dispatch(msg *native.QueuedMessage) {
	if app.runPreTranslateHandler(msg) {
		return
	}
	app.native.TranslateMessage(msg)
	app.native.DispatchMessage(msg)
}

func (app *Application) runPreTranslateHandler(msg *native.QueuedMessage) bool {
	for _, handler := range app.globalPreTranslateHandlers {
		if handler.OnPreTranslate(msg) {
			return true
		}
	}

	// Then the handler of the top-level control containing the target.
	c := app.registry.lookup(msg.Target)
	if c == nil {
		return false
	}
	if h, ok := c.AsControlBase().TopLevel().(PreTranslateHandler); ok {
		return h.OnPreTranslate(msg)
	}
	return false
}

// PreTranslateHandler is implemented by components that examine queued
// messages before translation and dispatch.
type PreTranslateHandler interface {
	// OnPreTranslate returns true if it consumed msg.
	OnPreTranslate(msg *native.QueuedMessage) bool
}

// AddGlobalPreTranslateHandler registers handler to run for every queued
// message before any per-window handler. It must be called from the UI
// thread.
func (app *Application) AddGlobalPreTranslateHandler(handler PreTranslateHandler) {
	app.AssertUIThread()
	if handler != nil {
		app.globalPreTranslateHandlers = append(app.globalPreTranslateHandlers, handler)
	}
}

// Synchronize enqueues fn to be called later on the UI thread during
// message loop processing. It may be called from any goroutine.
func (app *Application) Synchronize(fn func()) {
	app.syncFuncsMutex.Lock()
	app.syncFuncs = append(app.syncFuncs, fn)
	app.syncFuncsMutex.Unlock()

	if err := app.native.PostMessage(app.msgWindow, app.syncFuncMsg, 0, 0); err != nil {
		app.log.Warn("Synchronize: PostMessage failed", "err", err)
	}
}

func (app *Application) runSyncFunc() {
	app.syncFuncsMutex.Lock()

	var fn func()
	if len(app.syncFuncs) > 0 {
		fn = app.syncFuncs[0]
		app.syncFuncs = app.syncFuncs[1:]
	}

	app.syncFuncsMutex.Unlock()

	if fn != nil {
		fn()
	}
}

// Context is canceled by the first call to Exit. It may be used from any
// goroutine.
func (app *Application) Context() context.Context {
	return app.ctx
}

// Go runs f in a new goroutine that Run waits for before returning. If f
// blocks it must also watch ctx.Done. Go does nothing once Exit has been
// called.
func (app *Application) Go(f func(ctx context.Context)) {
	if app.ctx.Err() != nil {
		return
	}

	app.waitGroup.Add(1)
	go func() {
		defer app.waitGroup.Done()
		if app.ctx.Err() != nil {
			return
		}

		f(app.ctx)
	}()
}

func (app *Application) dragSize() Size {
	return app.settings.dragSize(app.native.DragSize())
}

// HoverTime returns how long the cursor must rest before MouseHover fires.
func (app *Application) HoverTime() time.Duration {
	return app.settings.hoverTime(app.native.HoverTime())
}
