package elements

import (
	"github.com/murl-digital/Yarrow/pkg/event"
	"github.com/murl-digital/Yarrow/pkg/graphics"
	"github.com/murl-digital/Yarrow/pkg/style"
	"github.com/murl-digital/Yarrow/pkg/text"
	"github.com/murl-digital/Yarrow/pkg/view"
)

// ButtonState is the interaction state of a button-class control.
type ButtonState int

const (
	ButtonStateIdle ButtonState = iota
	ButtonStateHovered
	ButtonStateDown
	ButtonStateDisabled
)

func (s ButtonState) String() string {
	switch s {
	case ButtonStateIdle:
		return "idle"
	case ButtonStateHovered:
		return "hovered"
	case ButtonStateDown:
		return "down"
	case ButtonStateDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// ButtonStylePart is the concrete appearance resolved for one interaction
// state. Parts are comparable values; two states mapping to equal parts
// look identical, and transitions between them do not repaint.
type ButtonStylePart struct {
	FontColor graphics.Color
	BackQuad  style.QuadStyle
}

// ButtonStyle describes a button across all of its interaction states.
type ButtonStyle struct {
	Properties style.TextProperties
	Padding    style.Padding

	Idle     ButtonStylePart
	Hovered  ButtonStylePart
	Down     ButtonStylePart
	Disabled ButtonStylePart
}

// Part resolves the style part in effect for a state. Resolution is total:
// every state maps to a part.
func (s *ButtonStyle) Part(state ButtonState) ButtonStylePart {
	switch state {
	case ButtonStateHovered:
		return s.Hovered
	case ButtonStateDown:
		return s.Down
	case ButtonStateDisabled:
		return s.Disabled
	default:
		return s.Idle
	}
}

// DefaultButtonStyle returns the stock button appearance.
func DefaultButtonStyle() *ButtonStyle {
	idleQuad := style.QuadStyle{
		Bg: style.SolidBackground(graphics.RGB(40, 40, 40)),
		Border: style.BorderStyle{
			Color:  graphics.RGB(105, 105, 105),
			Width:  1,
			Radius: 4,
		},
	}
	hoveredQuad := idleQuad
	hoveredQuad.Border.Color = graphics.RGB(135, 135, 135)
	downQuad := idleQuad
	downQuad.Bg = style.SolidBackground(graphics.RGB(27, 27, 27))
	disabledQuad := idleQuad
	disabledQuad.Border.Color = graphics.RGB(65, 65, 65)

	white := graphics.RGB(255, 255, 255)
	return &ButtonStyle{
		Properties: style.DefaultTextProperties(),
		Padding:    style.NewPadding(5, 14, 5, 14),
		Idle:       ButtonStylePart{FontColor: white, BackQuad: idleQuad},
		Hovered:    ButtonStylePart{FontColor: white, BackQuad: hoveredQuad},
		Down:       ButtonStylePart{FontColor: white, BackQuad: downQuad},
		Disabled:   ButtonStylePart{FontColor: graphics.RGB(150, 150, 150), BackQuad: disabledQuad},
	}
}

// ButtonDesiredSize returns the padded size the button's text wants.
func ButtonDesiredSize(shaper text.Shaper, content string, st *ButtonStyle) graphics.Size {
	size := shaper.Measure(content, st.Properties)
	return graphics.Size{
		Width:  size.Width + st.Padding.Horizontal(),
		Height: size.Height + st.Padding.Vertical(),
	}
}

// StateChangeResult reports the outcome of one state transition.
type StateChangeResult struct {
	// StateChanged reports whether the state actually moved.
	StateChanged bool
	// NeedsRepaint reports whether the transition altered the resolved
	// style part.
	NeedsRepaint bool
}

type buttonShared struct {
	style         *ButtonStyle
	newText       *string
	newTextOffset *graphics.Offset
	newDisabled   *bool
	styleChanged  bool
}

type buttonElement struct {
	shared *buttonShared

	text         string
	textOffset   graphics.Offset
	state        ButtonState
	tooltip      string
	tooltipAlign style.Align2
	action       any
}

func (e *buttonElement) Flags() view.Flags {
	return view.FlagPaints | view.FlagListensToPointerInsideBounds
}

// transition moves the state machine and repaints only when the resolved
// parts before and after differ.
func (e *buttonElement) transition(next ButtonState, cx *view.Context) StateChangeResult {
	if next == e.state {
		return StateChangeResult{}
	}
	prev := e.shared.style.Part(e.state)
	e.state = next
	res := StateChangeResult{
		StateChanged: true,
		NeedsRepaint: e.shared.style.Part(next) != prev,
	}
	if res.NeedsRepaint {
		cx.RequestRepaint()
	}
	return res
}

func (e *buttonElement) OnEvent(ev event.Event, cx *view.Context) (event.CaptureStatus, error) {
	switch ev := ev.(type) {
	case event.CustomStateChanged:
		e.drain(cx)

	case event.PointerMoved:
		if e.state == ButtonStateDisabled {
			return event.NotCaptured, nil
		}
		if ev.JustEntered && e.tooltip != "" {
			cx.StartHoverTimeout()
		}
		if e.state == ButtonStateIdle {
			e.transition(ButtonStateHovered, cx)
		}
		cx.CursorIcon = view.CursorPointer
		return event.Captured, nil

	case event.PointerLeft:
		if e.state == ButtonStateHovered || e.state == ButtonStateDown {
			e.transition(ButtonStateIdle, cx)
		}

	case event.PointerButtonPressed:
		if ev.Button != event.PointerButtonPrimary || e.state == ButtonStateDisabled {
			return event.NotCaptured, nil
		}
		e.transition(ButtonStateDown, cx)
		return event.Captured, nil

	case event.PointerButtonReleased:
		if ev.Button != event.PointerButtonPrimary || e.state != ButtonStateDown {
			return event.NotCaptured, nil
		}
		inside := cx.IsPointWithinVisibleBounds(ev.Position)
		if inside {
			e.transition(ButtonStateHovered, cx)
			if e.action != nil {
				if err := cx.SendAction(e.action); err != nil {
					return event.Captured, err
				}
			}
			return event.Captured, nil
		}
		e.transition(ButtonStateIdle, cx)

	case event.HoverTimeout:
		if e.tooltip != "" {
			cx.ShowTooltip(view.TooltipInfo{
				Message:       e.tooltip,
				ElementBounds: cx.Rect(),
				Align:         e.tooltipAlign,
			})
		}
	}
	return event.NotCaptured, nil
}

// drain applies pending handle writes. Content comes first and clears a
// stale style flag: replacing the text re-resolves the style anyway.
func (e *buttonElement) drain(cx *view.Context) {
	s := e.shared
	if s.newText != nil {
		e.text = *s.newText
		s.newText = nil
		s.styleChanged = false
		cx.RequestRepaint()
	}
	if s.styleChanged {
		s.styleChanged = false
		cx.RequestRepaint()
	}
	if s.newTextOffset != nil {
		e.textOffset = *s.newTextOffset
		s.newTextOffset = nil
		cx.RequestRepaint()
	}
	if s.newDisabled != nil {
		disabled := *s.newDisabled
		s.newDisabled = nil
		if disabled && e.state != ButtonStateDisabled {
			e.transition(ButtonStateDisabled, cx)
		} else if !disabled && e.state == ButtonStateDisabled {
			e.transition(ButtonStateIdle, cx)
		}
	}
}

func (e *buttonElement) RenderPrimitives(cx view.RenderContext, out *graphics.PrimitiveGroup) {
	st := e.shared.style
	part := st.Part(e.state)
	out.Add(part.BackQuad.Primitive(graphics.RectFromSize(cx.BoundsSize)))
	if e.text == "" {
		return
	}
	size := cx.Shaper.Measure(e.text, st.Properties)
	out.Add(graphics.TextPrimitive{
		Text:     e.text,
		Origin:   alignedTextOrigin(cx.BoundsSize, size, st.Padding, st.Properties.Align).Add(e.textOffset),
		Color:    part.FontColor,
		FontSize: st.Properties.FontSize,
	})
}

// Button is the handle for a push button element.
type Button struct {
	view.ElementHandle
	shared *buttonShared
}

// SetText replaces the button's text.
func (b Button) SetText(content string) {
	b.shared.newText = &content
	b.NotifyCustomStateChange()
}

// SetTextOffset nudges the rendered text away from its aligned position.
func (b Button) SetTextOffset(offset graphics.Offset) {
	b.shared.newTextOffset = &offset
	b.NotifyCustomStateChange()
}

// SetStyle swaps the button's style. Passing the pointer the button
// already holds is a no-op.
func (b Button) SetStyle(st *ButtonStyle) {
	if b.shared.style == st {
		return
	}
	b.shared.style = st
	b.shared.styleChanged = true
	b.NotifyCustomStateChange()
}

// Style returns the button's current style pointer.
func (b Button) Style() *ButtonStyle {
	return b.shared.style
}

// SetDisabled enables or disables the button. Disabling suppresses all
// pointer-driven state transitions until re-enabled.
func (b Button) SetDisabled(disabled bool) {
	b.shared.newDisabled = &disabled
	b.NotifyCustomStateChange()
}

// ButtonBuilder constructs a button element.
type ButtonBuilder struct {
	Text  string
	Style *ButtonStyle
	// Action is the payload sent on the view's action queue when the
	// button is released inside its bounds. Nil sends nothing.
	Action any
	// Tooltip, when non-empty, is shown after the pointer rests on the
	// button for the view's hover timeout.
	Tooltip      string
	TooltipAlign style.Align2
	Rect         graphics.Rect
	ZIndex       int
	Hidden       bool
	Disabled     bool
}

// Build adds the button to the view and returns its handle.
func (b ButtonBuilder) Build(v *view.View) Button {
	if b.Style == nil {
		b.Style = DefaultButtonStyle()
	}
	shared := &buttonShared{style: b.Style}
	state := ButtonStateIdle
	if b.Disabled {
		state = ButtonStateDisabled
	}
	el := &buttonElement{
		shared:       shared,
		text:         b.Text,
		state:        state,
		tooltip:      b.Tooltip,
		tooltipAlign: b.TooltipAlign,
		action:       b.Action,
	}
	h := v.AddElement(view.Builder{
		Element:        el,
		ZIndex:         b.ZIndex,
		BoundingRect:   b.Rect,
		ManuallyHidden: b.Hidden,
	})
	return Button{ElementHandle: h, shared: shared}
}
