package elements

import (
	"math"

	"github.com/murl-digital/Yarrow/pkg/event"
	"github.com/murl-digital/Yarrow/pkg/graphics"
	"github.com/murl-digital/Yarrow/pkg/style"
	"github.com/murl-digital/Yarrow/pkg/text"
	"github.com/murl-digital/Yarrow/pkg/view"
)

// DualLabelStyle describes a two-column label: a left-aligned and a
// right-aligned text run sharing one row, the layout menu rows use.
type DualLabelStyle struct {
	LeftProperties  style.TextProperties
	RightProperties style.TextProperties

	LeftFontColor  graphics.Color
	RightFontColor graphics.Color

	LeftPadding  style.Padding
	RightPadding style.Padding

	BackQuad style.QuadStyle
}

// DefaultDualLabelStyle returns the stock dual label appearance.
func DefaultDualLabelStyle() *DualLabelStyle {
	return &DualLabelStyle{
		LeftProperties:  style.DefaultTextProperties(),
		RightProperties: style.DefaultTextProperties(),
		LeftFontColor:   graphics.RGB(255, 255, 255),
		RightFontColor:  graphics.RGB(150, 150, 150),
		LeftPadding:     style.NewPadding(5, 10, 5, 10),
		RightPadding:    style.NewPadding(5, 10, 5, 30),
	}
}

// DualLabelDesiredSize returns the padded size both columns want. The
// height is the larger of the two columns' padded line heights.
func DualLabelDesiredSize(shaper text.Shaper, leftText, rightText string, st *DualLabelStyle) graphics.Size {
	leftW := shaper.Measure(leftText, st.LeftProperties).Width
	rightW := 0.0
	if rightText != "" {
		rightW = shaper.Measure(rightText, st.RightProperties).Width
	}
	return graphics.Size{
		Width: math.Ceil(st.LeftPadding.Horizontal() + leftW + st.RightPadding.Horizontal() + rightW),
		Height: math.Max(
			st.LeftPadding.Vertical()+st.LeftProperties.LineHeight,
			st.RightPadding.Vertical()+st.RightProperties.LineHeight,
		),
	}
}

type dualLabelShared struct {
	style        *DualLabelStyle
	newLeftText  *string
	newRightText *string
	styleChanged bool
}

type dualLabelElement struct {
	shared    *dualLabelShared
	leftText  string
	rightText string
}

func (e *dualLabelElement) Flags() view.Flags {
	return view.FlagPaints
}

func (e *dualLabelElement) OnEvent(ev event.Event, cx *view.Context) (event.CaptureStatus, error) {
	if _, ok := ev.(event.CustomStateChanged); ok {
		e.drain(cx)
	}
	return event.NotCaptured, nil
}

func (e *dualLabelElement) drain(cx *view.Context) {
	s := e.shared
	if s.newLeftText != nil {
		e.leftText = *s.newLeftText
		s.newLeftText = nil
		s.styleChanged = false
		cx.RequestRepaint()
	}
	if s.newRightText != nil {
		e.rightText = *s.newRightText
		s.newRightText = nil
		s.styleChanged = false
		cx.RequestRepaint()
	}
	if s.styleChanged {
		s.styleChanged = false
		cx.RequestRepaint()
	}
}

func (e *dualLabelElement) RenderPrimitives(cx view.RenderContext, out *graphics.PrimitiveGroup) {
	st := e.shared.style
	if st.BackQuad != (style.QuadStyle{}) {
		out.Add(st.BackQuad.Primitive(graphics.RectFromSize(cx.BoundsSize)))
	}
	if e.leftText != "" {
		size := cx.Shaper.Measure(e.leftText, st.LeftProperties)
		out.Add(graphics.TextPrimitive{
			Text: e.leftText,
			Origin: graphics.Offset{
				X: st.LeftPadding.Left,
				Y: (cx.BoundsSize.Height - size.Height) / 2,
			},
			Color:    st.LeftFontColor,
			FontSize: st.LeftProperties.FontSize,
		})
	}
	if e.rightText != "" {
		size := cx.Shaper.Measure(e.rightText, st.RightProperties)
		out.Add(graphics.TextPrimitive{
			Text: e.rightText,
			Origin: graphics.Offset{
				X: cx.BoundsSize.Width - st.RightPadding.Right - size.Width,
				Y: (cx.BoundsSize.Height - size.Height) / 2,
			},
			Color:    st.RightFontColor,
			FontSize: st.RightProperties.FontSize,
		})
	}
}

// DualLabel is the handle for a two-column label element.
type DualLabel struct {
	view.ElementHandle
	shared *dualLabelShared
}

// SetLeftText replaces the left column's text.
func (l DualLabel) SetLeftText(content string) {
	l.shared.newLeftText = &content
	l.NotifyCustomStateChange()
}

// SetRightText replaces the right column's text.
func (l DualLabel) SetRightText(content string) {
	l.shared.newRightText = &content
	l.NotifyCustomStateChange()
}

// SetStyle swaps the dual label's style. Passing the pointer the label
// already holds is a no-op.
func (l DualLabel) SetStyle(st *DualLabelStyle) {
	if l.shared.style == st {
		return
	}
	l.shared.style = st
	l.shared.styleChanged = true
	l.NotifyCustomStateChange()
}

// Style returns the dual label's current style pointer.
func (l DualLabel) Style() *DualLabelStyle {
	return l.shared.style
}

// DualLabelBuilder constructs a dual label element.
type DualLabelBuilder struct {
	LeftText  string
	RightText string
	Style     *DualLabelStyle
	Rect      graphics.Rect
	ZIndex    int
	Hidden    bool
}

// Build adds the dual label to the view and returns its handle.
func (b DualLabelBuilder) Build(v *view.View) DualLabel {
	if b.Style == nil {
		b.Style = DefaultDualLabelStyle()
	}
	shared := &dualLabelShared{style: b.Style}
	el := &dualLabelElement{shared: shared, leftText: b.LeftText, rightText: b.RightText}
	h := v.AddElement(view.Builder{
		Element:        el,
		ZIndex:         b.ZIndex,
		BoundingRect:   b.Rect,
		ManuallyHidden: b.Hidden,
	})
	return DualLabel{ElementHandle: h, shared: shared}
}
