// Package event defines the events delivered to elements by the view and
// the capture status elements report back to the dispatcher.
package event

import "github.com/murl-digital/Yarrow/pkg/graphics"

// CaptureStatus tells the dispatcher whether an element consumed an event.
// A captured pointer event is not offered to elements below.
type CaptureStatus int

const (
	NotCaptured CaptureStatus = iota
	Captured
)

// PointerButton identifies a pointer device button.
type PointerButton int

const (
	PointerButtonPrimary PointerButton = iota
	PointerButtonSecondary
	PointerButtonAuxiliary
)

// Event is an event delivered to an element's OnEvent method.
type Event interface {
	isElementEvent()
}

// CustomStateChanged tells an element that its handle wrote new
// configuration into the shared state and it should drain and react.
type CustomStateChanged struct{}

// PointerMoved reports a pointer position inside (or, for exclusively
// focused elements, outside) the element's bounds.
type PointerMoved struct {
	Position graphics.Offset
	// JustEntered is true on the first move after the pointer crossed
	// into the element's bounds.
	JustEntered bool
}

// PointerLeft reports that the pointer left the element's bounds.
type PointerLeft struct{}

// PointerButtonPressed reports a button press.
type PointerButtonPressed struct {
	Button   PointerButton
	Position graphics.Offset
}

// PointerButtonReleased reports a button release.
type PointerButtonReleased struct {
	Button   PointerButton
	Position graphics.Offset
}

// HoverTimeout fires after the pointer has rested inside the element's
// bounds for the view's hover timeout duration.
type HoverTimeout struct{}

// ClickedOff reports a press outside the bounds of an exclusively focused
// element that asked to listen for it.
type ClickedOff struct{}

// ExclusiveFocus reports a change of the element's exclusive focus.
type ExclusiveFocus struct {
	Focused bool
}

// PositionChanged reports that the element's bounding rectangle origin was
// moved from outside (it is delivered deferred, like CustomStateChanged).
type PositionChanged struct{}

func (CustomStateChanged) isElementEvent()    {}
func (PointerMoved) isElementEvent()          {}
func (PointerLeft) isElementEvent()           {}
func (PointerButtonPressed) isElementEvent()  {}
func (PointerButtonReleased) isElementEvent() {}
func (HoverTimeout) isElementEvent()          {}
func (ClickedOff) isElementEvent()            {}
func (ExclusiveFocus) isElementEvent()        {}
func (PositionChanged) isElementEvent()       {}
