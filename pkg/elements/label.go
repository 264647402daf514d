package elements

import (
	"github.com/murl-digital/Yarrow/pkg/event"
	"github.com/murl-digital/Yarrow/pkg/graphics"
	"github.com/murl-digital/Yarrow/pkg/style"
	"github.com/murl-digital/Yarrow/pkg/text"
	"github.com/murl-digital/Yarrow/pkg/view"
)

// LabelStyle describes a static text label.
type LabelStyle struct {
	Properties style.TextProperties
	FontColor  graphics.Color
	BackQuad   style.QuadStyle
	Padding    style.Padding
}

// DefaultLabelStyle returns the stock label appearance.
func DefaultLabelStyle() *LabelStyle {
	return &LabelStyle{
		Properties: style.DefaultTextProperties(),
		FontColor:  graphics.RGB(255, 255, 255),
		Padding:    style.NewPadding(5, 10, 5, 10),
	}
}

// LabelDesiredSize returns the padded size the label's text wants.
func LabelDesiredSize(shaper text.Shaper, content string, st *LabelStyle) graphics.Size {
	size := shaper.Measure(content, st.Properties)
	return graphics.Size{
		Width:  size.Width + st.Padding.Horizontal(),
		Height: size.Height + st.Padding.Vertical(),
	}
}

type labelShared struct {
	style         *LabelStyle
	newText       *string
	newTextOffset *graphics.Offset
	styleChanged  bool
}

type labelElement struct {
	shared     *labelShared
	text       string
	textOffset graphics.Offset
}

func (e *labelElement) Flags() view.Flags {
	return view.FlagPaints
}

func (e *labelElement) OnEvent(ev event.Event, cx *view.Context) (event.CaptureStatus, error) {
	if _, ok := ev.(event.CustomStateChanged); ok {
		e.drain(cx)
	}
	return event.NotCaptured, nil
}

func (e *labelElement) drain(cx *view.Context) {
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
}

func (e *labelElement) RenderPrimitives(cx view.RenderContext, out *graphics.PrimitiveGroup) {
	st := e.shared.style
	if st.BackQuad != (style.QuadStyle{}) {
		out.Add(st.BackQuad.Primitive(graphics.RectFromSize(cx.BoundsSize)))
	}
	if e.text == "" {
		return
	}
	size := cx.Shaper.Measure(e.text, st.Properties)
	out.Add(graphics.TextPrimitive{
		Text:     e.text,
		Origin:   alignedTextOrigin(cx.BoundsSize, size, st.Padding, st.Properties.Align).Add(e.textOffset),
		Color:    st.FontColor,
		FontSize: st.Properties.FontSize,
	})
}

// alignedTextOrigin places a measured line inside a bounding box:
// horizontally per the style alignment, vertically centered.
func alignedTextOrigin(bounds, textSize graphics.Size, padding style.Padding, align style.Align) graphics.Offset {
	x := padding.Left
	switch align {
	case style.AlignCenter:
		x = (bounds.Width - textSize.Width) / 2
	case style.AlignEnd:
		x = bounds.Width - padding.Right - textSize.Width
	}
	return graphics.Offset{X: x, Y: (bounds.Height - textSize.Height) / 2}
}

// Label is the handle for a text label element.
type Label struct {
	view.ElementHandle
	shared *labelShared
}

// SetText replaces the label's text.
func (l Label) SetText(content string) {
	l.shared.newText = &content
	l.NotifyCustomStateChange()
}

// SetTextOffset nudges the rendered text away from its aligned position.
func (l Label) SetTextOffset(offset graphics.Offset) {
	l.shared.newTextOffset = &offset
	l.NotifyCustomStateChange()
}

// SetStyle swaps the label's style. Passing the pointer the label already
// holds is a no-op.
func (l Label) SetStyle(st *LabelStyle) {
	if l.shared.style == st {
		return
	}
	l.shared.style = st
	l.shared.styleChanged = true
	l.NotifyCustomStateChange()
}

// Style returns the label's current style pointer.
func (l Label) Style() *LabelStyle {
	return l.shared.style
}

// LabelBuilder constructs a label element.
type LabelBuilder struct {
	Text   string
	Style  *LabelStyle
	Rect   graphics.Rect
	ZIndex int
	Hidden bool
}

// Build adds the label to the view and returns its handle.
func (b LabelBuilder) Build(v *view.View) Label {
	if b.Style == nil {
		b.Style = DefaultLabelStyle()
	}
	shared := &labelShared{style: b.Style}
	el := &labelElement{shared: shared, text: b.Text}
	h := v.AddElement(view.Builder{
		Element:        el,
		ZIndex:         b.ZIndex,
		BoundingRect:   b.Rect,
		ManuallyHidden: b.Hidden,
	})
	return Label{ElementHandle: h, shared: shared}
}
