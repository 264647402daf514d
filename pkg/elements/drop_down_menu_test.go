package elements

import (
	"testing"

	"github.com/murl-digital/Yarrow/pkg/graphics"
	yarrowtest "github.com/murl-digital/Yarrow/pkg/testing"
)

func editMenuEntries() []MenuEntry {
	return []MenuEntry{
		MenuOption{LeftText: "Cut", RightText: "Ctrl+X", ID: 1},
		MenuDivider{},
		MenuOption{LeftText: "Copy", RightText: "Ctrl+C", ID: 2},
		MenuOption{LeftText: "Paste", RightText: "Ctrl+V", ID: 3},
	}
}

func buildTestMenu(t *testing.T, b DropDownMenuBuilder) (*yarrowtest.ViewTester, DropDownMenu) {
	t.Helper()
	vt := yarrowtest.NewViewTester(t)
	if b.Entries == nil {
		b.Entries = editMenuEntries()
	}
	if b.Action == nil {
		b.Action = func(id int) any { return id }
	}
	if b.Position == (graphics.Offset{}) {
		b.Position = graphics.Offset{X: 100, Y: 100}
	}
	handle := b.Build(vt.View)
	vt.View.TakeNeedsRepaint()
	return vt, handle
}

func TestDropDownMenu_StartsClosed(t *testing.T) {
	vt, handle := buildTestMenu(t, DropDownMenuBuilder{})

	if !handle.Rect().Size.IsEmpty() {
		t.Errorf("closed menu must have zero size, got %+v", handle.Rect())
	}
	if frame := vt.RenderFrame(); len(frame) != 0 {
		t.Errorf("closed menu must not paint, got %d primitives", len(frame))
	}
}

func TestDropDownMenu_OpenMeasuresAndShows(t *testing.T) {
	vt, handle := buildTestMenu(t, DropDownMenuBuilder{})

	handle.Open(nil)
	vt.Update()

	// Row height 30, three rows plus one divider stroke with padding,
	// widest row "Paste"/"Ctrl+V" at 110 text units plus column paddings.
	want := graphics.RectFromXYWH(100, 100, 178, 103)
	if handle.Rect() != want {
		t.Errorf("expected %+v, got %+v", want, handle.Rect())
	}
	if !vt.View.TakeNeedsRepaint() {
		t.Error("opening must repaint")
	}
	if frame := vt.RenderFrame(); len(frame) == 0 {
		t.Error("open menu must paint")
	}
}

func TestDropDownMenu_OpenNearEdgeSnapsInside(t *testing.T) {
	vt, handle := buildTestMenu(t, DropDownMenuBuilder{})

	pos := graphics.Offset{X: 700, Y: 550}
	handle.Open(&pos)
	vt.Update()

	want := graphics.RectFromXYWH(622, 497, 178, 103)
	if handle.Rect() != want {
		t.Errorf("expected snapped rect %+v, got %+v", want, handle.Rect())
	}
}

func TestDropDownMenu_MoveWhileOpenReclamps(t *testing.T) {
	vt, handle := buildTestMenu(t, DropDownMenuBuilder{})
	handle.Open(nil)
	vt.Update()

	handle.SetPos(graphics.Offset{X: 700, Y: 550})
	vt.Update()

	want := graphics.RectFromXYWH(622, 497, 178, 103)
	if handle.Rect() != want {
		t.Errorf("expected reclamped rect %+v, got %+v", want, handle.Rect())
	}
}

func TestDropDownMenu_SelectFiresAndCloses(t *testing.T) {
	vt, handle := buildTestMenu(t, DropDownMenuBuilder{})
	handle.Open(nil)
	vt.Update()

	// "Copy" occupies the interval (39, 69) below the menu's top edge.
	vt.Click(120, 150)

	got := vt.DrainActions()
	if len(got) != 1 || got[0] != 2 {
		t.Fatalf("expected selection action [2], got %v", got)
	}
	if !handle.Rect().Size.IsEmpty() {
		t.Errorf("menu must collapse after selection, got %+v", handle.Rect())
	}
}

func TestDropDownMenu_PressOnDividerKeepsOpen(t *testing.T) {
	vt, handle := buildTestMenu(t, DropDownMenuBuilder{})
	handle.Open(nil)
	vt.Update()

	// The divider band sits between the first two options.
	vt.MoveTo(120, 136)
	vt.Press(120, 136)

	if got := vt.DrainActions(); len(got) != 0 {
		t.Fatalf("divider press fired %v", got)
	}
	if handle.Rect().Size.IsEmpty() {
		t.Error("divider press must not close the menu")
	}
}

func TestDropDownMenu_ClickedOffCloses(t *testing.T) {
	vt, handle := buildTestMenu(t, DropDownMenuBuilder{})
	handle.Open(nil)
	vt.Update()

	vt.Press(500, 500)

	if got := vt.DrainActions(); len(got) != 0 {
		t.Fatalf("clicking off fired %v", got)
	}
	if !handle.Rect().Size.IsEmpty() {
		t.Errorf("menu must close on a press outside it, got %+v", handle.Rect())
	}
}

func TestDropDownMenu_HoverHighlightRepaints(t *testing.T) {
	vt, handle := buildTestMenu(t, DropDownMenuBuilder{})
	handle.Open(nil)
	vt.Update()
	vt.View.TakeNeedsRepaint()

	vt.MoveTo(120, 120)
	if !vt.View.TakeNeedsRepaint() {
		t.Error("hovering a row must repaint")
	}

	vt.MoveTo(120, 125)
	if vt.View.TakeNeedsRepaint() {
		t.Error("moving within the same row must not repaint")
	}

	vt.MoveTo(120, 150)
	if !vt.View.TakeNeedsRepaint() {
		t.Error("hovering a different row must repaint")
	}
}

func TestDropDownMenu_SetEntriesLastWriteWins(t *testing.T) {
	vt, handle := buildTestMenu(t, DropDownMenuBuilder{})

	handle.SetEntries([]MenuEntry{MenuOption{LeftText: "A", ID: 4}})
	handle.SetEntries([]MenuEntry{MenuOption{LeftText: "Longer Entry", ID: 5}})
	vt.Update()

	handle.Open(nil)
	vt.Update()

	want := graphics.RectFromXYWH(100, 100, 188, 38)
	if handle.Rect() != want {
		t.Errorf("expected size from the later replacement, got %+v want %+v", handle.Rect(), want)
	}

	vt.Click(120, 115)
	got := vt.DrainActions()
	if len(got) != 1 || got[0] != 5 {
		t.Fatalf("expected selection [5], got %v", got)
	}
}

func TestDropDownMenu_SetEntriesWhileOpenResizes(t *testing.T) {
	vt, handle := buildTestMenu(t, DropDownMenuBuilder{})
	handle.Open(nil)
	vt.Update()

	handle.SetEntries([]MenuEntry{MenuOption{LeftText: "Only", ID: 9}})
	vt.Update()

	rect := handle.Rect()
	if rect.Size.IsEmpty() {
		t.Fatal("menu must stay open across a content change")
	}
	if rect.Height() != 38 {
		t.Errorf("expected remeasured height 38, got %v", rect.Height())
	}
}

func TestDropDownMenu_CoalescedWritesApplyTogether(t *testing.T) {
	vt, handle := buildTestMenu(t, DropDownMenuBuilder{})

	wider := DefaultDropDownMenuStyle()
	wider.OuterPadding = 10
	handle.SetStyle(wider)
	handle.SetEntries([]MenuEntry{MenuOption{LeftText: "Only", ID: 9}})
	handle.Open(nil)
	vt.Update()

	// One drain applies the content under the new style and then opens:
	// a single row measured with the wider outer padding.
	want := graphics.RectFromXYWH(100, 100, 120, 50)
	if handle.Rect() != want {
		t.Errorf("expected %+v, got %+v", want, handle.Rect())
	}
	if !vt.View.TakeNeedsRepaint() {
		t.Error("coalesced update must repaint")
	}
}

func TestDropDownMenu_SetStyleSamePointerIsNoOp(t *testing.T) {
	st := DefaultDropDownMenuStyle()
	vt, handle := buildTestMenu(t, DropDownMenuBuilder{Style: st})
	handle.Open(nil)
	vt.Update()
	vt.View.TakeNeedsRepaint()

	handle.SetStyle(st)
	vt.Update()
	if vt.View.TakeNeedsRepaint() {
		t.Error("restyling with the held pointer must be a no-op")
	}

	wider := DefaultDropDownMenuStyle()
	wider.OuterPadding = 10
	handle.SetStyle(wider)
	vt.Update()
	if !vt.View.TakeNeedsRepaint() {
		t.Error("restyling with a new pointer must repaint")
	}
	if handle.Rect().Width() != 190 {
		t.Errorf("expected remeasured width 190, got %v", handle.Rect().Width())
	}
}
