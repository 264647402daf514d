package elements

import (
	"math"

	"github.com/murl-digital/Yarrow/pkg/event"
	"github.com/murl-digital/Yarrow/pkg/graphics"
	"github.com/murl-digital/Yarrow/pkg/style"
	"github.com/murl-digital/Yarrow/pkg/text"
	"github.com/murl-digital/Yarrow/pkg/view"
)

// MenuEntry is one row of a drop down menu: either a selectable MenuOption
// or a MenuDivider. Entry order is significant and preserved.
type MenuEntry interface {
	isMenuEntry()
}

// MenuOption is a selectable menu row with a left label, an optional right
// label (typically a shortcut hint) and a user-defined identifier reported
// on selection.
type MenuOption struct {
	LeftText  string
	RightText string
	ID        int
}

// MenuDivider is a horizontal separator row. Dividers are never hit
// targets.
type MenuDivider struct{}

func (MenuOption) isMenuEntry()  {}
func (MenuDivider) isMenuEntry() {}

// DropDownMenuStylePart is the appearance of one menu row state.
type DropDownMenuStylePart struct {
	LeftFontColor  graphics.Color
	RightFontColor graphics.Color
	BackQuad       style.QuadStyle
}

// DropDownMenuStyle describes a drop down menu.
type DropDownMenuStyle struct {
	LeftProperties  style.TextProperties
	RightProperties style.TextProperties

	Idle    DropDownMenuStylePart
	Hovered DropDownMenuStylePart

	// OuterPadding is the margin between the menu edge and its rows.
	OuterPadding float64
	// LeftPadding pads the left label column inside a row, RightPadding
	// the right one. The row height is the larger of the two columns'
	// padded line heights.
	LeftPadding  style.Padding
	RightPadding style.Padding

	DividerColor graphics.Color
	DividerWidth float64
	// DividerPadding is the symmetric gap above and below a divider.
	DividerPadding float64

	BackQuad style.QuadStyle
}

// DefaultDropDownMenuStyle returns the stock menu appearance.
func DefaultDropDownMenuStyle() *DropDownMenuStyle {
	white := graphics.RGB(255, 255, 255)
	gray := graphics.RGB(150, 150, 150)
	return &DropDownMenuStyle{
		LeftProperties:  style.DefaultTextProperties(),
		RightProperties: style.DefaultTextProperties(),
		Idle: DropDownMenuStylePart{
			LeftFontColor:  white,
			RightFontColor: gray,
		},
		Hovered: DropDownMenuStylePart{
			LeftFontColor:  white,
			RightFontColor: white,
			BackQuad: style.QuadStyle{
				Bg:     style.SolidBackground(graphics.RGB(70, 105, 210)),
				Border: style.BorderStyle{Radius: 4},
			},
		},
		OuterPadding:   4,
		LeftPadding:    style.NewPadding(5, 10, 5, 10),
		RightPadding:   style.NewPadding(5, 10, 5, 30),
		DividerColor:   graphics.RGBA8(105, 105, 105, 150),
		DividerWidth:   1,
		DividerPadding: 2,
		BackQuad: style.QuadStyle{
			Bg: style.SolidBackground(graphics.RGB(30, 30, 30)),
			Border: style.BorderStyle{
				Color:  graphics.RGB(105, 105, 105),
				Width:  1,
				Radius: 4,
			},
		},
	}
}

// rowHeight is the fixed height of every option row.
func (s *DropDownMenuStyle) rowHeight() float64 {
	return math.Max(
		s.LeftPadding.Vertical()+s.LeftProperties.LineHeight,
		s.RightPadding.Vertical()+s.RightProperties.LineHeight,
	)
}

// menuRow is one laid-out entry. For options startY/endY is the half-open
// vertical hit interval; for dividers dividerY is the stroke's top edge.
type menuRow struct {
	entry    MenuEntry
	startY   float64
	endY     float64
	dividerY float64

	leftWidth  float64
	rightWidth float64
}

// measureMenuRows lays out the entries top to bottom and returns the rows
// together with the menu's total size. Options advance by the row height,
// dividers by their stroke plus symmetric padding. Offsets are
// monotonically non-decreasing in entry order.
func measureMenuRows(entries []MenuEntry, st *DropDownMenuStyle, shaper text.Shaper) ([]menuRow, graphics.Size) {
	if len(entries) == 0 {
		return nil, graphics.Size{}
	}
	rows := make([]menuRow, 0, len(entries))
	rowH := st.rowHeight()
	y := st.OuterPadding
	maxWidth := 0.0
	for _, entry := range entries {
		switch entry := entry.(type) {
		case MenuOption:
			leftW := shaper.Measure(entry.LeftText, st.LeftProperties).Width
			rightW := 0.0
			if entry.RightText != "" {
				rightW = shaper.Measure(entry.RightText, st.RightProperties).Width
			}
			width := st.LeftPadding.Horizontal() + leftW + st.RightPadding.Horizontal() + rightW
			if width > maxWidth {
				maxWidth = width
			}
			rows = append(rows, menuRow{
				entry:      entry,
				startY:     y,
				endY:       y + rowH,
				leftWidth:  leftW,
				rightWidth: rightW,
			})
			y += rowH
		case MenuDivider:
			rows = append(rows, menuRow{entry: entry, dividerY: y + st.DividerPadding})
			y += st.DividerWidth + 2*st.DividerPadding
		}
	}
	size := graphics.Size{
		Width:  math.Ceil(maxWidth) + 2*st.OuterPadding,
		Height: y + st.OuterPadding,
	}
	return rows, size
}

// hitTestMenuRows maps a vertical offset, relative to the menu's top edge,
// to the index of the option row containing it. The scan is linear in the
// number of rows; menus are small, bounded lists.
func hitTestMenuRows(rows []menuRow, y float64) int {
	for i, row := range rows {
		if _, ok := row.entry.(MenuOption); !ok {
			continue
		}
		if y >= row.startY && y < row.endY {
			return i
		}
	}
	return -1
}

type dropDownMenuShared struct {
	style         *DropDownMenuStyle
	newEntries    []MenuEntry
	hasNewEntries bool
	openRequested bool
	styleChanged  bool
}

type dropDownMenuElement struct {
	shared *dropDownMenuShared

	entries []MenuEntry
	rows    []menuRow
	size    graphics.Size
	// position is the desired origin; the shown bounding rectangle is the
	// containment-corrected version of it.
	position   graphics.Offset
	open       bool
	hoverIndex int
	action     func(id int) any
}

func (e *dropDownMenuElement) Flags() view.Flags {
	return view.FlagPaints |
		view.FlagListensToPointerInsideBounds |
		view.FlagListensToFocusChange |
		view.FlagListensToPointerOutsideBoundsWhenFocused |
		view.FlagListensToPositionChange
}

func (e *dropDownMenuElement) OnEvent(ev event.Event, cx *view.Context) (event.CaptureStatus, error) {
	switch ev := ev.(type) {
	case event.CustomStateChanged:
		e.drain(cx)

	case event.PositionChanged:
		e.position = cx.Rect().Origin
		if e.open {
			e.updateBounds(cx)
		}

	case event.PointerMoved:
		if !e.open {
			return event.NotCaptured, nil
		}
		idx := -1
		inside := cx.IsPointWithinVisibleBounds(ev.Position)
		if inside {
			idx = hitTestMenuRows(e.rows, ev.Position.Y-cx.Rect().MinY())
		}
		if idx != e.hoverIndex {
			e.hoverIndex = idx
			cx.RequestRepaint()
		}
		if idx >= 0 {
			cx.CursorIcon = view.CursorPointer
		}
		if inside {
			return event.Captured, nil
		}

	case event.PointerLeft:
		if e.hoverIndex != -1 {
			e.hoverIndex = -1
			cx.RequestRepaint()
		}

	case event.PointerButtonPressed:
		if !e.open || ev.Button != event.PointerButtonPrimary {
			return event.NotCaptured, nil
		}
		if !cx.IsPointWithinVisibleBounds(ev.Position) {
			return event.NotCaptured, nil
		}
		idx := hitTestMenuRows(e.rows, ev.Position.Y-cx.Rect().MinY())
		if idx < 0 {
			return event.Captured, nil
		}
		option := e.rows[idx].entry.(MenuOption)
		e.close(cx)
		cx.ReleaseFocus()
		if e.action != nil {
			if err := cx.SendAction(e.action(option.ID)); err != nil {
				return event.Captured, err
			}
		}
		return event.Captured, nil

	case event.ClickedOff:
		if e.open {
			e.close(cx)
			cx.ReleaseFocus()
		}

	case event.ExclusiveFocus:
		if !ev.Focused && e.open {
			e.close(cx)
		}
	}
	return event.NotCaptured, nil
}

// drain applies pending handle writes in a fixed order: entries first,
// then style, then the open request. A content replacement re-resolves
// style fresh, so it clears a stale style flag. Two replacements before
// one drain leave only the later one to apply.
func (e *dropDownMenuElement) drain(cx *view.Context) {
	s := e.shared
	if s.hasNewEntries {
		e.entries = s.newEntries
		s.newEntries = nil
		s.hasNewEntries = false
		s.styleChanged = false
		e.remeasure(cx)
	}
	if s.styleChanged {
		s.styleChanged = false
		e.remeasure(cx)
	}
	if s.openRequested {
		s.openRequested = false
		e.openMenu(cx)
	}
}

func (e *dropDownMenuElement) remeasure(cx *view.Context) {
	e.rows, e.size = measureMenuRows(e.entries, e.shared.style, cx.Shaper())
	if e.open {
		e.updateBounds(cx)
		cx.RequestRepaint()
	}
}

// updateBounds re-derives the shown bounding rectangle by containing the
// desired rectangle within the window.
func (e *dropDownMenuElement) updateBounds(cx *view.Context) {
	desired := graphics.Rect{Origin: e.position, Size: e.size}
	rect, _, _, _ := ContainOverlayRect(desired, cx.WindowSize())
	cx.SetBoundingRect(rect)
}

func (e *dropDownMenuElement) openMenu(cx *view.Context) {
	e.open = true
	e.hoverIndex = -1
	e.updateBounds(cx)
	cx.StealTemporaryFocus()
	cx.ListenToPointerClickedOff()
	cx.RequestRepaint()
}

// close collapses the menu to a zero-size rectangle at its desired
// position; a zero-size element neither paints nor receives pointer
// events.
func (e *dropDownMenuElement) close(cx *view.Context) {
	e.open = false
	e.hoverIndex = -1
	cx.SetBoundingRect(graphics.Rect{Origin: e.position})
	cx.RequestRepaint()
}

func (e *dropDownMenuElement) RenderPrimitives(cx view.RenderContext, out *graphics.PrimitiveGroup) {
	if !e.open || len(e.rows) == 0 {
		return
	}
	st := e.shared.style
	out.Add(st.BackQuad.Primitive(graphics.RectFromSize(cx.BoundsSize)))

	width := cx.BoundsSize.Width
	for i, row := range e.rows {
		switch entry := row.entry.(type) {
		case MenuOption:
			part := st.Idle
			if i == e.hoverIndex {
				part = st.Hovered
				out.Add(part.BackQuad.Primitive(graphics.RectFromXYWH(
					st.OuterPadding,
					row.startY,
					width-2*st.OuterPadding,
					row.endY-row.startY,
				)))
			}
			out.Add(graphics.TextPrimitive{
				Text: entry.LeftText,
				Origin: graphics.Offset{
					X: st.OuterPadding + st.LeftPadding.Left,
					Y: row.startY + st.LeftPadding.Top,
				},
				Color:    part.LeftFontColor,
				FontSize: st.LeftProperties.FontSize,
			})
			if entry.RightText != "" {
				out.Add(graphics.TextPrimitive{
					Text: entry.RightText,
					Origin: graphics.Offset{
						X: width - st.OuterPadding - st.RightPadding.Right - row.rightWidth,
						Y: row.startY + st.RightPadding.Top,
					},
					Color:    part.RightFontColor,
					FontSize: st.RightProperties.FontSize,
				})
			}
		case MenuDivider:
			out.Add(graphics.SolidQuadPrimitive{
				Rect: graphics.RectFromXYWH(
					st.OuterPadding,
					row.dividerY,
					width-2*st.OuterPadding,
					st.DividerWidth,
				),
				Color: st.DividerColor,
			})
		}
	}
}

// DropDownMenu is the handle for a drop down menu element.
type DropDownMenu struct {
	view.ElementHandle
	shared *dropDownMenuShared
}

// SetStyle swaps the menu's style. Passing the pointer the menu already
// holds is a no-op.
func (m DropDownMenu) SetStyle(st *DropDownMenuStyle) {
	if m.shared.style == st {
		return
	}
	m.shared.style = st
	m.shared.styleChanged = true
	m.NotifyCustomStateChange()
}

// Style returns the menu's current style pointer.
func (m DropDownMenu) Style() *DropDownMenuStyle {
	return m.shared.style
}

// SetEntries replaces the menu's entries. A replacement written before a
// previous one was drained overwrites it; only the latest set of entries
// is applied.
func (m DropDownMenu) SetEntries(entries []MenuEntry) {
	m.shared.newEntries = entries
	m.shared.hasNewEntries = true
	m.NotifyCustomStateChange()
}

// Open shows the menu, optionally moving it first. The shown rectangle is
// contained within the window; the menu takes exclusive focus and closes
// on selection, on a press outside it, or on losing focus.
func (m DropDownMenu) Open(position *graphics.Offset) {
	if position != nil {
		m.SetPos(*position)
	}
	m.shared.openRequested = true
	m.NotifyCustomStateChange()
}

// DropDownMenuBuilder constructs a drop down menu element. The menu is
// added closed; Open shows it.
type DropDownMenuBuilder struct {
	Entries []MenuEntry
	Style   *DropDownMenuStyle
	// Action produces the payload sent on the view's action queue when an
	// option is selected. It receives the option's identifier. Nil sends
	// nothing.
	Action func(id int) any
	// Position is the desired origin of the menu when opened.
	Position graphics.Offset
	ZIndex   int
}

// Build adds the menu to the view and returns its handle.
func (b DropDownMenuBuilder) Build(v *view.View) DropDownMenu {
	if b.Style == nil {
		b.Style = DefaultDropDownMenuStyle()
	}
	shared := &dropDownMenuShared{style: b.Style}
	el := &dropDownMenuElement{
		shared:     shared,
		entries:    b.Entries,
		position:   b.Position,
		hoverIndex: -1,
		action:     b.Action,
	}
	el.rows, el.size = measureMenuRows(el.entries, b.Style, v.Shaper())
	h := v.AddElement(view.Builder{
		Element:      el,
		ZIndex:       b.ZIndex,
		BoundingRect: graphics.Rect{Origin: b.Position},
	})
	return DropDownMenu{ElementHandle: h, shared: shared}
}
