// Package testing provides a headless harness for element tests: a fake
// clock, a fixed-advance shaper and a tester that drives the pointer and
// notification cycle the way a window event pump would.
package testing

import (
	"testing"
	"time"

	"github.com/murl-digital/Yarrow/pkg/action"
	"github.com/murl-digital/Yarrow/pkg/event"
	"github.com/murl-digital/Yarrow/pkg/graphics"
	"github.com/murl-digital/Yarrow/pkg/text"
	"github.com/murl-digital/Yarrow/pkg/view"
)

const (
	// DefaultTestWidth is the default viewport width.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default viewport height.
	DefaultTestHeight = 600
	// DefaultTestAdvance is the fixed per-rune advance of the test shaper.
	DefaultTestAdvance = 10
)

// ViewTester drives a headless view. Pointer helpers dispatch and then
// drain deferred notifications, matching the pump's dispatch-then-update
// cadence; any dispatch error fails the test.
type ViewTester struct {
	View    *view.View
	Clock   *FakeClock
	Actions *action.Queue

	t *testing.T
}

// NewViewTester creates a tester with a default test environment: an
// 800x600 viewport, a fake clock and a fixed-advance shaper.
func NewViewTester(t *testing.T) *ViewTester {
	t.Helper()
	clk := NewFakeClock()
	actions := action.NewQueue()
	v := view.New(view.Config{
		WindowSize: graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight},
		Clock:      clk,
		Shaper:     text.FixedShaper{Advance: DefaultTestAdvance},
		Actions:    actions,
	})
	return &ViewTester{View: v, Clock: clk, Actions: actions, t: t}
}

// Update drains deferred notifications.
func (vt *ViewTester) Update() {
	vt.t.Helper()
	if err := vt.View.Update(); err != nil {
		vt.t.Fatalf("update failed: %v", err)
	}
}

// MoveTo dispatches a pointer move to (x, y).
func (vt *ViewTester) MoveTo(x, y float64) {
	vt.t.Helper()
	if err := vt.View.DispatchPointerMoved(graphics.Offset{X: x, Y: y}); err != nil {
		vt.t.Fatalf("pointer move failed: %v", err)
	}
	vt.Update()
}

// Leave dispatches a pointer-left-window event.
func (vt *ViewTester) Leave() {
	vt.t.Helper()
	if err := vt.View.DispatchPointerLeft(); err != nil {
		vt.t.Fatalf("pointer leave failed: %v", err)
	}
	vt.Update()
}

// Press dispatches a primary button press at (x, y).
func (vt *ViewTester) Press(x, y float64) {
	vt.t.Helper()
	if err := vt.View.DispatchPointerPressed(event.PointerButtonPrimary, graphics.Offset{X: x, Y: y}); err != nil {
		vt.t.Fatalf("pointer press failed: %v", err)
	}
	vt.Update()
}

// Release dispatches a primary button release at (x, y).
func (vt *ViewTester) Release(x, y float64) {
	vt.t.Helper()
	if err := vt.View.DispatchPointerReleased(event.PointerButtonPrimary, graphics.Offset{X: x, Y: y}); err != nil {
		vt.t.Fatalf("pointer release failed: %v", err)
	}
	vt.Update()
}

// Click moves to (x, y), presses and releases.
func (vt *ViewTester) Click(x, y float64) {
	vt.t.Helper()
	vt.MoveTo(x, y)
	vt.Press(x, y)
	vt.Release(x, y)
}

// Advance moves the fake clock forward and ticks the view, firing any due
// hover timeouts.
func (vt *ViewTester) Advance(d time.Duration) {
	vt.t.Helper()
	vt.Clock.Advance(d)
	if err := vt.View.Tick(); err != nil {
		vt.t.Fatalf("tick failed: %v", err)
	}
	vt.Update()
}

// DrainActions returns all buffered action payloads.
func (vt *ViewTester) DrainActions() []any {
	return vt.Actions.Drain()
}

// RenderFrame collects the current frame's primitives in paint order.
func (vt *ViewTester) RenderFrame() []graphics.Primitive {
	group := &graphics.PrimitiveGroup{}
	vt.View.Render(group)
	return group.Sorted()
}
