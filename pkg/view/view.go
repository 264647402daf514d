package view

import (
	stderrors "errors"
	"fmt"
	"sort"
	"time"

	"github.com/murl-digital/Yarrow/pkg/action"
	"github.com/murl-digital/Yarrow/pkg/errors"
	"github.com/murl-digital/Yarrow/pkg/event"
	"github.com/murl-digital/Yarrow/pkg/graphics"
	"github.com/murl-digital/Yarrow/pkg/text"
)

// DefaultHoverTimeout is the hover countdown used when Config leaves it
// unset.
const DefaultHoverTimeout = 500 * time.Millisecond

// Config carries the collaborators a View needs.
type Config struct {
	// WindowSize is the initial viewport size.
	WindowSize graphics.Size
	// HoverTimeout is the rest time before HoverTimeout events fire.
	HoverTimeout time.Duration
	// Clock supplies time for hover timeouts. Nil means the system clock.
	Clock Clock
	// Shaper is the text measurement service. Nil means a fixed-advance
	// shaper, which is only suitable for headless use.
	Shaper text.Shaper
	// Actions is the output channel for completed user interactions.
	// Nil means a fresh queue, readable via Actions().
	Actions *action.Queue
}

// View owns the elements of one window: their bounding rectangles, paint
// order, pointer and focus state, the deferred notification queue, and the
// hover-timeout countdown.
//
// All View methods must be called from the single event-loop goroutine.
// Dispatching one event runs to completion before the next; deferred
// notifications are drained in FIFO order by Update.
type View struct {
	windowSize   graphics.Size
	hoverTimeout time.Duration
	clock        Clock
	shaper       text.Shaper
	actions      *action.Queue

	entries      []*elementEntry
	pending      []pendingDelivery
	focused      *elementEntry
	pressed      *elementEntry
	needsRepaint bool
	tooltip      *TooltipInfo
	cursor       CursorIcon
}

type pendingDelivery struct {
	entry *elementEntry
	ev    event.Event
}

// New creates a view.
func New(cfg Config) *View {
	if cfg.HoverTimeout <= 0 {
		cfg.HoverTimeout = DefaultHoverTimeout
	}
	if cfg.Clock == nil {
		cfg.Clock = SystemClock{}
	}
	if cfg.Shaper == nil {
		cfg.Shaper = text.FixedShaper{}
	}
	if cfg.Actions == nil {
		cfg.Actions = action.NewQueue()
	}
	return &View{
		windowSize:   cfg.WindowSize,
		hoverTimeout: cfg.HoverTimeout,
		clock:        cfg.Clock,
		shaper:       cfg.Shaper,
		actions:      cfg.Actions,
	}
}

// AddElement registers an element and returns its handle.
func (v *View) AddElement(b Builder) ElementHandle {
	entry := &elementEntry{
		element: b.Element,
		flags:   b.Element.Flags(),
		rect:    b.BoundingRect,
		zIndex:  b.ZIndex,
		hidden:  b.ManuallyHidden,
	}
	v.entries = append(v.entries, entry)
	v.needsRepaint = true
	return ElementHandle{view: v, entry: entry}
}

// WindowSize returns the current viewport size.
func (v *View) WindowSize() graphics.Size {
	return v.windowSize
}

// SetWindowSize updates the viewport size for subsequent layout.
func (v *View) SetWindowSize(size graphics.Size) {
	v.windowSize = size
	v.needsRepaint = true
}

// Actions returns the action output queue.
func (v *View) Actions() *action.Queue {
	return v.actions
}

// Shaper returns the text measurement service.
func (v *View) Shaper() text.Shaper {
	return v.shaper
}

// TakeNeedsRepaint reports and clears the pending-repaint flag.
func (v *View) TakeNeedsRepaint() bool {
	needs := v.needsRepaint
	v.needsRepaint = false
	return needs
}

// TakeTooltip returns and clears the most recent tooltip request.
func (v *View) TakeTooltip() *TooltipInfo {
	info := v.tooltip
	v.tooltip = nil
	return info
}

// CursorIcon returns the cursor requested during the last pointer
// dispatch.
func (v *View) CursorIcon() CursorIcon {
	return v.cursor
}

// enqueue defers an event delivery until the next Update.
func (v *View) enqueue(entry *elementEntry, ev event.Event) {
	v.pending = append(v.pending, pendingDelivery{entry: entry, ev: ev})
}

// Update drains the deferred notification queue. Deliveries may enqueue
// further deliveries (focus handoffs do); the drain continues until the
// queue is empty. The first element error aborts the drain and is
// returned; remaining deliveries stay queued.
func (v *View) Update() error {
	for len(v.pending) > 0 {
		d := v.pending[0]
		v.pending = v.pending[1:]
		if _, err := v.deliver(d.entry, d.ev); err != nil {
			return v.dispatchError("view.Update", d.entry, err)
		}
	}
	return nil
}

// DispatchPointerMoved routes a pointer move to elements under the point,
// topmost first, synthesizing enter/leave transitions.
func (v *View) DispatchPointerMoved(pos graphics.Offset) error {
	v.cursor = CursorDefault
	captured := false
	for _, entry := range v.hitOrder() {
		if !entry.flags.Has(FlagListensToPointerInsideBounds) && !v.focusedOutside(entry) {
			continue
		}
		inside := !entry.hidden && entry.rect.Contains(pos)
		switch {
		case inside && !captured:
			justEntered := !entry.pointerInside
			entry.pointerInside = true
			status, err := v.deliver(entry, event.PointerMoved{Position: pos, JustEntered: justEntered})
			if err != nil {
				return v.dispatchError("view.DispatchPointerMoved", entry, err)
			}
			if status == event.Captured {
				captured = true
			}
		case entry.pointerInside:
			entry.pointerInside = false
			entry.hoverDeadline = time.Time{}
			if _, err := v.deliver(entry, event.PointerLeft{}); err != nil {
				return v.dispatchError("view.DispatchPointerMoved", entry, err)
			}
		case v.focusedOutside(entry):
			if _, err := v.deliver(entry, event.PointerMoved{Position: pos}); err != nil {
				return v.dispatchError("view.DispatchPointerMoved", entry, err)
			}
		}
	}
	return nil
}

// DispatchPointerLeft reports that the pointer left the window.
func (v *View) DispatchPointerLeft() error {
	for _, entry := range v.hitOrder() {
		if !entry.pointerInside {
			continue
		}
		entry.pointerInside = false
		entry.hoverDeadline = time.Time{}
		if _, err := v.deliver(entry, event.PointerLeft{}); err != nil {
			return v.dispatchError("view.DispatchPointerLeft", entry, err)
		}
	}
	return nil
}

// DispatchPointerPressed routes a button press. A press outside an
// exclusively focused element that listens for it fires ClickedOff before
// the normal dispatch, so overlays can dismiss themselves even when the
// press lands on another element.
func (v *View) DispatchPointerPressed(button event.PointerButton, pos graphics.Offset) error {
	if f := v.focused; f != nil && f.listenClickedOff && !f.rect.Contains(pos) {
		f.listenClickedOff = false
		if _, err := v.deliver(f, event.ClickedOff{}); err != nil {
			return v.dispatchError("view.DispatchPointerPressed", f, err)
		}
	}
	captured, err := v.dispatchButton("view.DispatchPointerPressed", pos, func(e *elementEntry) (event.CaptureStatus, error) {
		return v.deliver(e, event.PointerButtonPressed{Button: button, Position: pos})
	})
	if err != nil {
		return err
	}
	v.pressed = captured
	return nil
}

// DispatchPointerReleased routes a button release. A release goes to the
// element that captured the press even when the pointer has since moved
// off it, so press feedback settles by release position, not reachability.
func (v *View) DispatchPointerReleased(button event.PointerButton, pos graphics.Offset) error {
	if p := v.pressed; p != nil {
		v.pressed = nil
		if _, err := v.deliver(p, event.PointerButtonReleased{Button: button, Position: pos}); err != nil {
			return v.dispatchError("view.DispatchPointerReleased", p, err)
		}
		return nil
	}
	_, err := v.dispatchButton("view.DispatchPointerReleased", pos, func(e *elementEntry) (event.CaptureStatus, error) {
		return v.deliver(e, event.PointerButtonReleased{Button: button, Position: pos})
	})
	return err
}

func (v *View) dispatchButton(op string, pos graphics.Offset, deliver func(*elementEntry) (event.CaptureStatus, error)) (*elementEntry, error) {
	for _, entry := range v.hitOrder() {
		if entry.hidden {
			continue
		}
		inside := entry.rect.Contains(pos)
		if !(inside && entry.flags.Has(FlagListensToPointerInsideBounds)) && !v.focusedOutside(entry) {
			continue
		}
		status, err := deliver(entry)
		if err != nil {
			return nil, v.dispatchError(op, entry, err)
		}
		if status == event.Captured {
			return entry, nil
		}
	}
	return nil, nil
}

// Tick fires due hover timeouts. The countdown only produces an event if
// the pointer is still inside the element; leaving disarms it.
func (v *View) Tick() error {
	now := v.clock.Now()
	for _, entry := range v.entries {
		if entry.hoverDeadline.IsZero() || now.Before(entry.hoverDeadline) {
			continue
		}
		entry.hoverDeadline = time.Time{}
		if !entry.pointerInside {
			continue
		}
		if _, err := v.deliver(entry, event.HoverTimeout{}); err != nil {
			return v.dispatchError("view.Tick", entry, err)
		}
	}
	return nil
}

// Render walks visible elements in paint order and collects their
// primitives, translated into window coordinates, into out.
func (v *View) Render(out *graphics.PrimitiveGroup) {
	for _, entry := range v.paintOrder() {
		if entry.hidden || !entry.flags.Has(FlagPaints) || entry.rect.Size.IsEmpty() {
			continue
		}
		sub := &graphics.PrimitiveGroup{}
		entry.element.RenderPrimitives(RenderContext{BoundsSize: entry.rect.Size, Shaper: v.shaper}, sub)
		origin := entry.rect.Origin
		for _, p := range sub.Sorted() {
			out.Add(translatePrimitive(p, origin))
		}
	}
	v.needsRepaint = false
}

func translatePrimitive(p graphics.Primitive, by graphics.Offset) graphics.Primitive {
	switch q := p.(type) {
	case graphics.SolidQuadPrimitive:
		q.Rect = q.Rect.Translate(by.X, by.Y)
		return q
	case graphics.TextPrimitive:
		q.Origin = q.Origin.Add(by)
		return q
	}
	return p
}

func (v *View) stealFocus(entry *elementEntry) {
	if v.focused == entry {
		return
	}
	prev := v.focused
	v.focused = entry
	if prev != nil {
		prev.listenClickedOff = false
		if prev.flags.Has(FlagListensToFocusChange) {
			v.enqueue(prev, event.ExclusiveFocus{Focused: false})
		}
	}
	if entry.flags.Has(FlagListensToFocusChange) {
		v.enqueue(entry, event.ExclusiveFocus{Focused: true})
	}
}

func (v *View) releaseFocus(entry *elementEntry) {
	if v.focused != entry {
		return
	}
	v.focused = nil
	entry.listenClickedOff = false
	if entry.flags.Has(FlagListensToFocusChange) {
		v.enqueue(entry, event.ExclusiveFocus{Focused: false})
	}
}

func (v *View) focusedOutside(entry *elementEntry) bool {
	return entry == v.focused && entry.flags.Has(FlagListensToPointerOutsideBoundsWhenFocused)
}

// hitOrder returns entries topmost first: higher z index before lower,
// later-added before earlier within the same index.
func (v *View) hitOrder() []*elementEntry {
	out := make([]*elementEntry, 0, len(v.entries))
	for i := len(v.entries) - 1; i >= 0; i-- {
		out = append(out, v.entries[i])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].zIndex > out[j].zIndex
	})
	return out
}

// paintOrder returns entries bottom-up: lower z index first,
// earlier-added first within the same index.
func (v *View) paintOrder() []*elementEntry {
	out := make([]*elementEntry, len(v.entries))
	copy(out, v.entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].zIndex < out[j].zIndex
	})
	return out
}

// deliver runs one element callback to completion, recovering panics into
// reported errors.
func (v *View) deliver(entry *elementEntry, ev event.Event) (status event.CaptureStatus, err error) {
	cx := &Context{view: v, entry: entry}
	defer func() {
		if r := recover(); r != nil {
			perr := &errors.PanicError{
				Op:         "view.deliver",
				Value:      r,
				StackTrace: errors.CaptureStack(),
				Timestamp:  time.Now(),
			}
			errors.ReportPanic(perr)
			status = event.NotCaptured
			err = perr
		}
	}()
	status, err = entry.element.OnEvent(ev, cx)
	if cx.CursorIcon != CursorDefault {
		v.cursor = cx.CursorIcon
	}
	return status, err
}

// dispatchError wraps, reports and returns an element error. Recovered
// panics were already reported by deliver and pass through unwrapped.
func (v *View) dispatchError(op string, entry *elementEntry, err error) error {
	var perr *errors.PanicError
	if stderrors.As(err, &perr) {
		return err
	}
	kind := errors.KindDispatch
	if stderrors.Is(err, action.ErrClosed) {
		kind = errors.KindAction
	}
	cerr := &errors.CoreError{
		Op:        op,
		Kind:      kind,
		Err:       err,
		Element:   fmt.Sprintf("%T", entry.element),
		Timestamp: time.Now(),
	}
	errors.Report(cerr)
	return cerr
}
