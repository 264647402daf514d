package view_test

import (
	stderrors "errors"
	"testing"
	"time"

	"github.com/murl-digital/Yarrow/pkg/action"
	"github.com/murl-digital/Yarrow/pkg/errors"
	"github.com/murl-digital/Yarrow/pkg/event"
	"github.com/murl-digital/Yarrow/pkg/graphics"
	yarrowtest "github.com/murl-digital/Yarrow/pkg/testing"
	"github.com/murl-digital/Yarrow/pkg/view"
)

// stubElement records delivered events and delegates behavior to an
// optional callback.
type stubElement struct {
	flags      view.Flags
	events     []event.Event
	onEvent    func(ev event.Event, cx *view.Context) (event.CaptureStatus, error)
	primitives []graphics.Primitive
}

func (s *stubElement) Flags() view.Flags {
	return s.flags
}

func (s *stubElement) OnEvent(ev event.Event, cx *view.Context) (event.CaptureStatus, error) {
	s.events = append(s.events, ev)
	if s.onEvent != nil {
		return s.onEvent(ev, cx)
	}
	return event.NotCaptured, nil
}

func (s *stubElement) RenderPrimitives(cx view.RenderContext, out *graphics.PrimitiveGroup) {
	for _, p := range s.primitives {
		out.Add(p)
	}
}

func (s *stubElement) count(match func(event.Event) bool) int {
	n := 0
	for _, ev := range s.events {
		if match(ev) {
			n++
		}
	}
	return n
}

func newTestView(t *testing.T) (*view.View, *yarrowtest.FakeClock) {
	t.Helper()
	clk := yarrowtest.NewFakeClock()
	v := view.New(view.Config{
		WindowSize: graphics.Size{Width: 800, Height: 600},
		Clock:      clk,
	})
	return v, clk
}

func TestView_NotificationsAreDeferredAndFIFO(t *testing.T) {
	v, _ := newTestView(t)
	first := &stubElement{}
	second := &stubElement{}
	h1 := v.AddElement(view.Builder{Element: first})
	h2 := v.AddElement(view.Builder{Element: second})

	h2.NotifyCustomStateChange()
	h1.NotifyCustomStateChange()

	if len(first.events)+len(second.events) != 0 {
		t.Fatal("notifications must not be delivered synchronously")
	}
	if err := v.Update(); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if len(second.events) != 1 || len(first.events) != 1 {
		t.Fatalf("expected one delivery each, got %d and %d", len(second.events), len(first.events))
	}
}

func TestView_PointerMoveSynthesizesEnterAndLeave(t *testing.T) {
	v, _ := newTestView(t)
	el := &stubElement{flags: view.FlagListensToPointerInsideBounds}
	v.AddElement(view.Builder{Element: el, BoundingRect: graphics.RectFromXYWH(100, 100, 50, 50)})

	if err := v.DispatchPointerMoved(graphics.Offset{X: 120, Y: 120}); err != nil {
		t.Fatal(err)
	}
	if err := v.DispatchPointerMoved(graphics.Offset{X: 125, Y: 120}); err != nil {
		t.Fatal(err)
	}
	if err := v.DispatchPointerMoved(graphics.Offset{X: 500, Y: 500}); err != nil {
		t.Fatal(err)
	}

	if len(el.events) != 3 {
		t.Fatalf("expected 3 events, got %d: %v", len(el.events), el.events)
	}
	if moved, ok := el.events[0].(event.PointerMoved); !ok || !moved.JustEntered {
		t.Errorf("first move must report JustEntered, got %v", el.events[0])
	}
	if moved, ok := el.events[1].(event.PointerMoved); !ok || moved.JustEntered {
		t.Errorf("second move must not report JustEntered, got %v", el.events[1])
	}
	if _, ok := el.events[2].(event.PointerLeft); !ok {
		t.Errorf("expected PointerLeft, got %v", el.events[2])
	}
}

func TestView_CaptureStopsPropagation(t *testing.T) {
	v, _ := newTestView(t)
	rect := graphics.RectFromXYWH(100, 100, 50, 50)
	bottom := &stubElement{flags: view.FlagListensToPointerInsideBounds}
	top := &stubElement{
		flags: view.FlagListensToPointerInsideBounds,
		onEvent: func(ev event.Event, cx *view.Context) (event.CaptureStatus, error) {
			return event.Captured, nil
		},
	}
	v.AddElement(view.Builder{Element: bottom, BoundingRect: rect})
	v.AddElement(view.Builder{Element: top, BoundingRect: rect, ZIndex: 1})

	if err := v.DispatchPointerPressed(event.PointerButtonPrimary, graphics.Offset{X: 120, Y: 120}); err != nil {
		t.Fatal(err)
	}

	if len(top.events) != 1 {
		t.Fatalf("top element must receive the press, got %v", top.events)
	}
	if len(bottom.events) != 0 {
		t.Fatalf("captured press must not reach the element below, got %v", bottom.events)
	}
}

func TestView_SameZLaterElementIsTopmost(t *testing.T) {
	v, _ := newTestView(t)
	rect := graphics.RectFromXYWH(100, 100, 50, 50)
	capture := func(ev event.Event, cx *view.Context) (event.CaptureStatus, error) {
		return event.Captured, nil
	}
	first := &stubElement{flags: view.FlagListensToPointerInsideBounds, onEvent: capture}
	second := &stubElement{flags: view.FlagListensToPointerInsideBounds, onEvent: capture}
	v.AddElement(view.Builder{Element: first, BoundingRect: rect})
	v.AddElement(view.Builder{Element: second, BoundingRect: rect})

	if err := v.DispatchPointerPressed(event.PointerButtonPrimary, graphics.Offset{X: 120, Y: 120}); err != nil {
		t.Fatal(err)
	}

	if len(second.events) != 1 || len(first.events) != 0 {
		t.Errorf("later-added element must be hit first: first=%v second=%v", first.events, second.events)
	}
}

func TestView_FocusHandoffDeliversDeferredEvents(t *testing.T) {
	v, _ := newTestView(t)
	flags := view.FlagListensToPointerInsideBounds | view.FlagListensToFocusChange
	grab := func(ev event.Event, cx *view.Context) (event.CaptureStatus, error) {
		if _, ok := ev.(event.CustomStateChanged); ok {
			cx.StealTemporaryFocus()
		}
		return event.NotCaptured, nil
	}
	first := &stubElement{flags: flags, onEvent: grab}
	second := &stubElement{flags: flags, onEvent: grab}
	h1 := v.AddElement(view.Builder{Element: first})
	h2 := v.AddElement(view.Builder{Element: second})

	h1.NotifyCustomStateChange()
	if err := v.Update(); err != nil {
		t.Fatal(err)
	}
	if n := first.count(func(ev event.Event) bool {
		focus, ok := ev.(event.ExclusiveFocus)
		return ok && focus.Focused
	}); n != 1 {
		t.Fatalf("expected one ExclusiveFocus(true) for the first element, events %v", first.events)
	}

	h2.NotifyCustomStateChange()
	if err := v.Update(); err != nil {
		t.Fatal(err)
	}
	if n := first.count(func(ev event.Event) bool {
		focus, ok := ev.(event.ExclusiveFocus)
		return ok && !focus.Focused
	}); n != 1 {
		t.Fatalf("expected the first element to lose focus, events %v", first.events)
	}
	if n := second.count(func(ev event.Event) bool {
		focus, ok := ev.(event.ExclusiveFocus)
		return ok && focus.Focused
	}); n != 1 {
		t.Fatalf("expected the second element to gain focus, events %v", second.events)
	}
}

func TestView_ClickedOffOnlyWhenListening(t *testing.T) {
	v, _ := newTestView(t)
	flags := view.FlagListensToPointerInsideBounds | view.FlagListensToFocusChange
	el := &stubElement{flags: flags}
	el.onEvent = func(ev event.Event, cx *view.Context) (event.CaptureStatus, error) {
		if _, ok := ev.(event.CustomStateChanged); ok {
			cx.StealTemporaryFocus()
			cx.ListenToPointerClickedOff()
		}
		return event.NotCaptured, nil
	}
	h := v.AddElement(view.Builder{Element: el, BoundingRect: graphics.RectFromXYWH(100, 100, 50, 50)})

	h.NotifyCustomStateChange()
	if err := v.Update(); err != nil {
		t.Fatal(err)
	}

	if err := v.DispatchPointerPressed(event.PointerButtonPrimary, graphics.Offset{X: 500, Y: 500}); err != nil {
		t.Fatal(err)
	}
	clickedOff := func(ev event.Event) bool {
		_, ok := ev.(event.ClickedOff)
		return ok
	}
	if n := el.count(clickedOff); n != 1 {
		t.Fatalf("expected one ClickedOff, got %d", n)
	}

	// The listen request is consumed by the first press.
	if err := v.DispatchPointerPressed(event.PointerButtonPrimary, graphics.Offset{X: 500, Y: 500}); err != nil {
		t.Fatal(err)
	}
	if n := el.count(clickedOff); n != 1 {
		t.Fatalf("second press without re-listening fired ClickedOff, got %d", n)
	}
}

func TestView_HoverTimeoutRequiresPointerInside(t *testing.T) {
	v, clk := newTestView(t)
	el := &stubElement{flags: view.FlagListensToPointerInsideBounds}
	el.onEvent = func(ev event.Event, cx *view.Context) (event.CaptureStatus, error) {
		if moved, ok := ev.(event.PointerMoved); ok && moved.JustEntered {
			cx.StartHoverTimeout()
		}
		return event.NotCaptured, nil
	}
	v.AddElement(view.Builder{Element: el, BoundingRect: graphics.RectFromXYWH(100, 100, 50, 50)})

	if err := v.DispatchPointerMoved(graphics.Offset{X: 120, Y: 120}); err != nil {
		t.Fatal(err)
	}
	clk.Advance(view.DefaultHoverTimeout / 2)
	if err := v.Tick(); err != nil {
		t.Fatal(err)
	}
	timeouts := func(ev event.Event) bool {
		_, ok := ev.(event.HoverTimeout)
		return ok
	}
	if n := el.count(timeouts); n != 0 {
		t.Fatalf("timeout fired early, got %d", n)
	}

	clk.Advance(view.DefaultHoverTimeout)
	if err := v.Tick(); err != nil {
		t.Fatal(err)
	}
	if n := el.count(timeouts); n != 1 {
		t.Fatalf("expected one timeout, got %d", n)
	}

	// Firing disarms the countdown.
	if err := v.Tick(); err != nil {
		t.Fatal(err)
	}
	if n := el.count(timeouts); n != 1 {
		t.Fatalf("disarmed countdown fired again, got %d", n)
	}
}

func TestView_RenderTranslatesAndOrdersByZIndex(t *testing.T) {
	v, _ := newTestView(t)
	above := &stubElement{
		flags: view.FlagPaints,
		primitives: []graphics.Primitive{
			graphics.SolidQuadPrimitive{Rect: graphics.RectFromXYWH(0, 0, 10, 10)},
		},
	}
	below := &stubElement{
		flags: view.FlagPaints,
		primitives: []graphics.Primitive{
			graphics.TextPrimitive{Text: "under", Origin: graphics.Offset{X: 1, Y: 2}},
		},
	}
	v.AddElement(view.Builder{Element: above, BoundingRect: graphics.RectFromXYWH(50, 60, 10, 10), ZIndex: 1})
	v.AddElement(view.Builder{Element: below, BoundingRect: graphics.RectFromXYWH(10, 20, 30, 30)})

	group := &graphics.PrimitiveGroup{}
	v.Render(group)
	frame := group.Sorted()

	if len(frame) != 2 {
		t.Fatalf("expected 2 primitives, got %d", len(frame))
	}
	text, ok := frame[0].(graphics.TextPrimitive)
	if !ok {
		t.Fatalf("lower z index must paint first, got %T", frame[0])
	}
	if text.Origin != (graphics.Offset{X: 11, Y: 22}) {
		t.Errorf("text primitive not translated by entry origin: %+v", text.Origin)
	}
	quad, ok := frame[1].(graphics.SolidQuadPrimitive)
	if !ok {
		t.Fatalf("higher z index must paint last, got %T", frame[1])
	}
	if quad.Rect != graphics.RectFromXYWH(50, 60, 10, 10) {
		t.Errorf("quad primitive not translated by entry origin: %+v", quad.Rect)
	}
}

func TestView_HiddenElementNeitherPaintsNorHears(t *testing.T) {
	v, _ := newTestView(t)
	el := &stubElement{
		flags: view.FlagPaints | view.FlagListensToPointerInsideBounds,
		primitives: []graphics.Primitive{
			graphics.SolidQuadPrimitive{Rect: graphics.RectFromXYWH(0, 0, 10, 10)},
		},
	}
	h := v.AddElement(view.Builder{Element: el, BoundingRect: graphics.RectFromXYWH(100, 100, 50, 50)})
	h.SetHidden(true)

	if err := v.DispatchPointerPressed(event.PointerButtonPrimary, graphics.Offset{X: 120, Y: 120}); err != nil {
		t.Fatal(err)
	}
	if len(el.events) != 0 {
		t.Fatalf("hidden element received events: %v", el.events)
	}

	group := &graphics.PrimitiveGroup{}
	v.Render(group)
	if group.Len() != 0 {
		t.Fatalf("hidden element painted %d primitives", group.Len())
	}
}

func TestView_SetPosDeliversPositionChanged(t *testing.T) {
	v, _ := newTestView(t)
	el := &stubElement{flags: view.FlagListensToPositionChange}
	h := v.AddElement(view.Builder{Element: el, BoundingRect: graphics.RectFromXYWH(100, 100, 50, 50)})

	h.SetPos(graphics.Offset{X: 200, Y: 100})
	if err := v.Update(); err != nil {
		t.Fatal(err)
	}
	if n := el.count(func(ev event.Event) bool {
		_, ok := ev.(event.PositionChanged)
		return ok
	}); n != 1 {
		t.Fatalf("expected one PositionChanged, got %d", n)
	}

	// Moving to the current position is a no-op.
	h.SetPos(graphics.Offset{X: 200, Y: 100})
	if err := v.Update(); err != nil {
		t.Fatal(err)
	}
	if len(el.events) != 1 {
		t.Fatalf("redundant SetPos delivered an event: %v", el.events)
	}
}

// recordingHandler captures reported errors for assertions.
type recordingHandler struct {
	coreErrors []*errors.CoreError
	panics     []*errors.PanicError
}

func (h *recordingHandler) HandleError(err *errors.CoreError) {
	h.coreErrors = append(h.coreErrors, err)
}

func (h *recordingHandler) HandlePanic(err *errors.PanicError) {
	h.panics = append(h.panics, err)
}

func TestView_ClosedActionQueueSurfacesAsActionError(t *testing.T) {
	handler := &recordingHandler{}
	errors.SetHandler(handler)
	defer errors.SetHandler(nil)

	queue := action.NewQueue()
	v := view.New(view.Config{
		WindowSize: graphics.Size{Width: 800, Height: 600},
		Actions:    queue,
	})
	el := &stubElement{flags: view.FlagListensToPointerInsideBounds}
	el.onEvent = func(ev event.Event, cx *view.Context) (event.CaptureStatus, error) {
		if _, ok := ev.(event.CustomStateChanged); ok {
			if err := cx.SendAction("late"); err != nil {
				return event.NotCaptured, err
			}
		}
		return event.NotCaptured, nil
	}
	h := v.AddElement(view.Builder{Element: el})

	queue.Close()
	h.NotifyCustomStateChange()
	err := v.Update()

	if err == nil {
		t.Fatal("expected an error from the closed queue")
	}
	var coreErr *errors.CoreError
	if !stderrors.As(err, &coreErr) || coreErr.Kind != errors.KindAction {
		t.Fatalf("expected a KindAction error, got %v", err)
	}
	if !stderrors.Is(err, action.ErrClosed) {
		t.Fatalf("expected the error to wrap ErrClosed, got %v", err)
	}
	if len(handler.coreErrors) != 1 {
		t.Fatalf("expected the error to be reported once, got %d", len(handler.coreErrors))
	}
}

func TestView_PanicInElementIsRecoveredAndReported(t *testing.T) {
	handler := &recordingHandler{}
	errors.SetHandler(handler)
	defer errors.SetHandler(nil)

	v, _ := newTestView(t)
	el := &stubElement{}
	el.onEvent = func(ev event.Event, cx *view.Context) (event.CaptureStatus, error) {
		panic("element bug")
	}
	h := v.AddElement(view.Builder{Element: el})

	h.NotifyCustomStateChange()
	err := v.Update()

	var panicErr *errors.PanicError
	if !stderrors.As(err, &panicErr) {
		t.Fatalf("expected a PanicError, got %v", err)
	}
	if panicErr.Value != "element bug" {
		t.Errorf("expected the panic value to be preserved, got %v", panicErr.Value)
	}
	if len(handler.panics) != 1 {
		t.Fatalf("expected one reported panic, got %d", len(handler.panics))
	}
}

func TestView_TickWithSystemClockDefaults(t *testing.T) {
	v := view.New(view.Config{
		WindowSize:   graphics.Size{Width: 800, Height: 600},
		HoverTimeout: time.Millisecond,
	})
	if err := v.Tick(); err != nil {
		t.Fatalf("tick on an empty view failed: %v", err)
	}
}
