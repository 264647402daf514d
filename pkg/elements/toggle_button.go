package elements

import (
	"github.com/murl-digital/Yarrow/pkg/event"
	"github.com/murl-digital/Yarrow/pkg/graphics"
	"github.com/murl-digital/Yarrow/pkg/style"
	"github.com/murl-digital/Yarrow/pkg/text"
	"github.com/murl-digital/Yarrow/pkg/view"
)

// ToggleButtonStyle describes a toggle button across the cross product of
// interaction state and toggled flag. The down state shares the hovered
// appearance of its side of the toggle.
type ToggleButtonStyle struct {
	Properties style.TextProperties
	Padding    style.Padding

	IdleOn     ButtonStylePart
	HoveredOn  ButtonStylePart
	DisabledOn ButtonStylePart

	IdleOff     ButtonStylePart
	HoveredOff  ButtonStylePart
	DisabledOff ButtonStylePart
}

// Part resolves the style part in effect for a (state, toggled) pair.
// Resolution is total: every pair maps to a part.
func (s *ToggleButtonStyle) Part(state ButtonState, toggled bool) ButtonStylePart {
	if toggled {
		switch state {
		case ButtonStateHovered, ButtonStateDown:
			return s.HoveredOn
		case ButtonStateDisabled:
			return s.DisabledOn
		default:
			return s.IdleOn
		}
	}
	switch state {
	case ButtonStateHovered, ButtonStateDown:
		return s.HoveredOff
	case ButtonStateDisabled:
		return s.DisabledOff
	default:
		return s.IdleOff
	}
}

// DefaultToggleButtonStyle returns the stock toggle button appearance.
func DefaultToggleButtonStyle() *ToggleButtonStyle {
	offQuad := style.QuadStyle{
		Bg: style.SolidBackground(graphics.RGB(40, 40, 40)),
		Border: style.BorderStyle{
			Color:  graphics.RGB(105, 105, 105),
			Width:  1,
			Radius: 4,
		},
	}
	offHoveredQuad := offQuad
	offHoveredQuad.Border.Color = graphics.RGB(135, 135, 135)
	offDisabledQuad := offQuad
	offDisabledQuad.Border.Color = graphics.RGB(65, 65, 65)

	onQuad := offQuad
	onQuad.Bg = style.SolidBackground(graphics.RGB(70, 105, 210))
	onHoveredQuad := onQuad
	onHoveredQuad.Border.Color = graphics.RGB(135, 135, 135)
	onDisabledQuad := onQuad
	onDisabledQuad.Bg = style.SolidBackground(graphics.RGB(50, 65, 110))
	onDisabledQuad.Border.Color = graphics.RGB(65, 65, 65)

	white := graphics.RGB(255, 255, 255)
	gray := graphics.RGB(150, 150, 150)
	return &ToggleButtonStyle{
		Properties:  style.DefaultTextProperties(),
		Padding:     style.NewPadding(5, 14, 5, 14),
		IdleOn:      ButtonStylePart{FontColor: white, BackQuad: onQuad},
		HoveredOn:   ButtonStylePart{FontColor: white, BackQuad: onHoveredQuad},
		DisabledOn:  ButtonStylePart{FontColor: gray, BackQuad: onDisabledQuad},
		IdleOff:     ButtonStylePart{FontColor: white, BackQuad: offQuad},
		HoveredOff:  ButtonStylePart{FontColor: white, BackQuad: offHoveredQuad},
		DisabledOff: ButtonStylePart{FontColor: gray, BackQuad: offDisabledQuad},
	}
}

// ToggleButtonDesiredSize returns the padded size the toggle button's text
// wants.
func ToggleButtonDesiredSize(shaper text.Shaper, content string, st *ToggleButtonStyle) graphics.Size {
	size := shaper.Measure(content, st.Properties)
	return graphics.Size{
		Width:  size.Width + st.Padding.Horizontal(),
		Height: size.Height + st.Padding.Vertical(),
	}
}

type toggleButtonShared struct {
	style         *ToggleButtonStyle
	newText       *string
	newTextOffset *graphics.Offset
	newToggled    *bool
	newDisabled   *bool
	styleChanged  bool
}

type toggleButtonElement struct {
	shared *toggleButtonShared

	text         string
	textOffset   graphics.Offset
	state        ButtonState
	toggled      bool
	tooltip      string
	tooltipAlign style.Align2
	action       func(toggled bool) any
}

func (e *toggleButtonElement) Flags() view.Flags {
	return view.FlagPaints | view.FlagListensToPointerInsideBounds
}

// transition moves the state machine, flipping the toggled flag alongside
// when asked, and repaints only when the resolved parts differ.
func (e *toggleButtonElement) transition(next ButtonState, toggled bool, cx *view.Context) StateChangeResult {
	if next == e.state && toggled == e.toggled {
		return StateChangeResult{}
	}
	prev := e.shared.style.Part(e.state, e.toggled)
	e.state = next
	e.toggled = toggled
	res := StateChangeResult{
		StateChanged: true,
		NeedsRepaint: e.shared.style.Part(next, toggled) != prev,
	}
	if res.NeedsRepaint {
		cx.RequestRepaint()
	}
	return res
}

func (e *toggleButtonElement) OnEvent(ev event.Event, cx *view.Context) (event.CaptureStatus, error) {
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
			e.transition(ButtonStateHovered, e.toggled, cx)
		}
		cx.CursorIcon = view.CursorPointer
		return event.Captured, nil

	case event.PointerLeft:
		if e.state == ButtonStateHovered || e.state == ButtonStateDown {
			e.transition(ButtonStateIdle, e.toggled, cx)
		}

	case event.PointerButtonPressed:
		if ev.Button != event.PointerButtonPrimary || e.state == ButtonStateDisabled {
			return event.NotCaptured, nil
		}
		// Toggling is a press-edge effect: press flips the flag and fires
		// the action once; the following release fires nothing.
		e.transition(ButtonStateDown, !e.toggled, cx)
		if e.action != nil {
			if err := cx.SendAction(e.action(e.toggled)); err != nil {
				return event.Captured, err
			}
		}
		return event.Captured, nil

	case event.PointerButtonReleased:
		if ev.Button != event.PointerButtonPrimary || e.state != ButtonStateDown {
			return event.NotCaptured, nil
		}
		if cx.IsPointWithinVisibleBounds(ev.Position) {
			e.transition(ButtonStateHovered, e.toggled, cx)
			return event.Captured, nil
		}
		e.transition(ButtonStateIdle, e.toggled, cx)

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

func (e *toggleButtonElement) drain(cx *view.Context) {
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
	if s.newToggled != nil {
		toggled := *s.newToggled
		s.newToggled = nil
		e.transition(e.state, toggled, cx)
	}
	if s.newDisabled != nil {
		disabled := *s.newDisabled
		s.newDisabled = nil
		if disabled && e.state != ButtonStateDisabled {
			e.transition(ButtonStateDisabled, e.toggled, cx)
		} else if !disabled && e.state == ButtonStateDisabled {
			e.transition(ButtonStateIdle, e.toggled, cx)
		}
	}
}

func (e *toggleButtonElement) RenderPrimitives(cx view.RenderContext, out *graphics.PrimitiveGroup) {
	st := e.shared.style
	part := st.Part(e.state, e.toggled)
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

// ToggleButton is the handle for a toggle button element.
type ToggleButton struct {
	view.ElementHandle
	shared *toggleButtonShared
}

// SetText replaces the toggle button's text.
func (b ToggleButton) SetText(content string) {
	b.shared.newText = &content
	b.NotifyCustomStateChange()
}

// SetTextOffset nudges the rendered text away from its aligned position.
func (b ToggleButton) SetTextOffset(offset graphics.Offset) {
	b.shared.newTextOffset = &offset
	b.NotifyCustomStateChange()
}

// SetStyle swaps the toggle button's style. Passing the pointer the button
// already holds is a no-op.
func (b ToggleButton) SetStyle(st *ToggleButtonStyle) {
	if b.shared.style == st {
		return
	}
	b.shared.style = st
	b.shared.styleChanged = true
	b.NotifyCustomStateChange()
}

// Style returns the toggle button's current style pointer.
func (b ToggleButton) Style() *ToggleButtonStyle {
	return b.shared.style
}

// SetToggled sets the toggled flag programmatically. This does not fire
// the action; only user presses do.
func (b ToggleButton) SetToggled(toggled bool) {
	b.shared.newToggled = &toggled
	b.NotifyCustomStateChange()
}

// SetDisabled enables or disables the toggle button.
func (b ToggleButton) SetDisabled(disabled bool) {
	b.shared.newDisabled = &disabled
	b.NotifyCustomStateChange()
}

// ToggleButtonBuilder constructs a toggle button element.
type ToggleButtonBuilder struct {
	Text  string
	Style *ToggleButtonStyle
	// Toggled is the initial toggle flag.
	Toggled bool
	// Action produces the payload sent on the view's action queue when a
	// press flips the toggle. It receives the new toggled value. Nil
	// sends nothing.
	Action       func(toggled bool) any
	Tooltip      string
	TooltipAlign style.Align2
	Rect         graphics.Rect
	ZIndex       int
	Hidden       bool
	Disabled     bool
}

// Build adds the toggle button to the view and returns its handle.
func (b ToggleButtonBuilder) Build(v *view.View) ToggleButton {
	if b.Style == nil {
		b.Style = DefaultToggleButtonStyle()
	}
	shared := &toggleButtonShared{style: b.Style}
	state := ButtonStateIdle
	if b.Disabled {
		state = ButtonStateDisabled
	}
	el := &toggleButtonElement{
		shared:       shared,
		text:         b.Text,
		state:        state,
		toggled:      b.Toggled,
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
	return ToggleButton{ElementHandle: h, shared: shared}
}
