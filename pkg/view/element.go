// Package view hosts element objects: it owns their bounding rectangles,
// dispatches pointer and focus events, delivers deferred configuration
// notifications, and drives the render pass.
//
// Elements never poll the view. Application code talks to a widget through
// its handle; the handle writes into widget-shared state and flags the
// element with a deferred CustomStateChanged notification, which the view
// delivers on the next Update.
package view

import (
	"time"

	"github.com/murl-digital/Yarrow/pkg/event"
	"github.com/murl-digital/Yarrow/pkg/graphics"
	"github.com/murl-digital/Yarrow/pkg/style"
	"github.com/murl-digital/Yarrow/pkg/text"
)

// Flags declares which event streams an element wants and whether it
// paints at all.
type Flags uint8

const (
	// FlagPaints marks an element that emits render primitives.
	FlagPaints Flags = 1 << iota
	// FlagListensToPointerInsideBounds subscribes to pointer events while
	// the pointer is inside the element's bounding rectangle.
	FlagListensToPointerInsideBounds
	// FlagListensToFocusChange subscribes to ExclusiveFocus events.
	FlagListensToFocusChange
	// FlagListensToPointerOutsideBoundsWhenFocused extends the pointer
	// subscription to the whole window while the element holds exclusive
	// focus. Overlays use this to notice clicks outside themselves.
	FlagListensToPointerOutsideBoundsWhenFocused
	// FlagListensToPositionChange subscribes to PositionChanged events.
	FlagListensToPositionChange
)

// Has reports whether all bits in flag are set.
func (f Flags) Has(flag Flags) bool {
	return f&flag == flag
}

// Element is the view-tree-resident half of a widget. It owns transient
// per-frame state (measured geometry, hover indices) and reacts to events;
// all cross-boundary configuration arrives through the shared state its
// handle writes into.
type Element interface {
	// Flags is called once when the element is added.
	Flags() Flags

	// OnEvent processes one event to completion. The returned capture
	// status stops pointer events from reaching elements below. A non-nil
	// error is fatal for the originating dispatch and surfaces to its
	// caller.
	OnEvent(ev event.Event, cx *Context) (event.CaptureStatus, error)

	// RenderPrimitives emits the element's appearance in element-local
	// coordinates. It must not mutate interaction state.
	RenderPrimitives(cx RenderContext, out *graphics.PrimitiveGroup)
}

// Builder carries the construction parameters for adding an element.
type Builder struct {
	Element        Element
	ZIndex         int
	BoundingRect   graphics.Rect
	ManuallyHidden bool
}

// CursorIcon is the cursor requested by the element under the pointer.
type CursorIcon int

const (
	CursorDefault CursorIcon = iota
	CursorPointer
)

// TooltipInfo describes a tooltip to display, anchored to element bounds.
type TooltipInfo struct {
	Message       string
	ElementBounds graphics.Rect
	Align         style.Align2
}

// Context is handed to an element for the duration of one OnEvent call.
type Context struct {
	view  *View
	entry *elementEntry

	// CursorIcon can be set while handling a pointer event to request a
	// cursor shape. It resets to CursorDefault before each dispatch.
	CursorIcon CursorIcon
}

// Rect returns the element's current bounding rectangle.
func (cx *Context) Rect() graphics.Rect {
	return cx.entry.rect
}

// WindowSize returns the size of the window viewport.
func (cx *Context) WindowSize() graphics.Size {
	return cx.view.windowSize
}

// SetBoundingRect requests a new bounding rectangle from the view.
func (cx *Context) SetBoundingRect(rect graphics.Rect) {
	if cx.entry.rect == rect {
		return
	}
	cx.entry.rect = rect
	cx.view.needsRepaint = true
}

// RequestRepaint schedules a repaint of the view.
func (cx *Context) RequestRepaint() {
	cx.view.needsRepaint = true
}

// IsPointWithinVisibleBounds reports whether the point is inside the
// element's bounds and the element is visible.
func (cx *Context) IsPointWithinVisibleBounds(p graphics.Offset) bool {
	return !cx.entry.hidden && cx.entry.rect.Contains(p)
}

// StealTemporaryFocus gives the element exclusive focus. The previous
// holder is notified with a deferred ExclusiveFocus(false).
func (cx *Context) StealTemporaryFocus() {
	cx.view.stealFocus(cx.entry)
}

// ReleaseFocus drops the element's exclusive focus if it holds it.
func (cx *Context) ReleaseFocus() {
	cx.view.releaseFocus(cx.entry)
}

// ListenToPointerClickedOff asks for a ClickedOff event on the next press
// outside the element's bounds while it holds exclusive focus.
func (cx *Context) ListenToPointerClickedOff() {
	cx.entry.listenClickedOff = true
}

// StartHoverTimeout arms the hover countdown for the element. The timeout
// is structurally cancelled when the pointer leaves before it fires.
func (cx *Context) StartHoverTimeout() {
	cx.entry.hoverDeadline = cx.view.clock.Now().Add(cx.view.hoverTimeout)
}

// ShowTooltip requests a tooltip. The embedding application drains
// requests via View.TakeTooltip.
func (cx *Context) ShowTooltip(info TooltipInfo) {
	cx.view.tooltip = &info
}

// SendAction delivers a payload on the view's action queue. An error means
// the queue was closed while the element is alive, which is a fatal host
// misconfiguration; callers must propagate it out of OnEvent.
func (cx *Context) SendAction(a any) error {
	return cx.view.actions.Send(a)
}

// Shaper returns the text measurement service.
func (cx *Context) Shaper() text.Shaper {
	return cx.view.shaper
}

// RenderContext is handed to an element's RenderPrimitives call.
type RenderContext struct {
	// BoundsSize is the size of the element's bounding rectangle.
	BoundsSize graphics.Size
	// Shaper is the text measurement service.
	Shaper text.Shaper
}

// elementEntry is the view's record of one element.
type elementEntry struct {
	element Element
	flags   Flags
	rect    graphics.Rect
	zIndex  int
	hidden  bool

	pointerInside    bool
	listenClickedOff bool
	// hoverDeadline is zero while the hover countdown is unarmed.
	hoverDeadline time.Time
}
