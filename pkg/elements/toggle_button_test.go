package elements

import (
	"testing"

	"github.com/murl-digital/Yarrow/pkg/graphics"
	yarrowtest "github.com/murl-digital/Yarrow/pkg/testing"
)

func buildTestToggle(t *testing.T, b ToggleButtonBuilder) (*yarrowtest.ViewTester, ToggleButton) {
	t.Helper()
	vt := yarrowtest.NewViewTester(t)
	if b.Rect == (graphics.Rect{}) {
		b.Rect = graphics.RectFromXYWH(100, 100, 120, 40)
	}
	if b.Action == nil {
		b.Action = func(toggled bool) any { return toggled }
	}
	handle := b.Build(vt.View)
	vt.View.TakeNeedsRepaint()
	return vt, handle
}

func TestToggleButton_PressFiresOnce(t *testing.T) {
	vt, _ := buildTestToggle(t, ToggleButtonBuilder{Text: "Mute"})

	vt.MoveTo(150, 120)
	vt.Press(150, 120)
	got := vt.DrainActions()
	if len(got) != 1 || got[0] != true {
		t.Fatalf("press must fire once with the new value, got %v", got)
	}

	vt.Release(150, 120)
	if got := vt.DrainActions(); len(got) != 0 {
		t.Fatalf("release must not fire again, got %v", got)
	}
}

func TestToggleButton_PressFlipsEachTime(t *testing.T) {
	vt, _ := buildTestToggle(t, ToggleButtonBuilder{Text: "Mute", Toggled: true})

	vt.Click(150, 120)
	vt.Click(150, 120)

	got := vt.DrainActions()
	if len(got) != 2 || got[0] != false || got[1] != true {
		t.Fatalf("expected [false true], got %v", got)
	}
}

func TestToggleButton_SetToggledDoesNotFire(t *testing.T) {
	vt, handle := buildTestToggle(t, ToggleButtonBuilder{Text: "Mute"})

	handle.SetToggled(true)
	vt.Update()

	if got := vt.DrainActions(); len(got) != 0 {
		t.Fatalf("programmatic toggle fired %v", got)
	}
	if !vt.View.TakeNeedsRepaint() {
		t.Error("flipping to the on appearance must repaint")
	}
}

func TestToggleButton_SetToggledRepaintMinimality(t *testing.T) {
	st := DefaultToggleButtonStyle()
	st.IdleOn = st.IdleOff
	st.HoveredOn = st.HoveredOff
	st.DisabledOn = st.DisabledOff
	vt, handle := buildTestToggle(t, ToggleButtonBuilder{Text: "Mute", Style: st})

	handle.SetToggled(true)
	vt.Update()

	if vt.View.TakeNeedsRepaint() {
		t.Error("on and off parts are equal; flipping must not repaint")
	}
}

func TestToggleButton_DisabledSuppressesPress(t *testing.T) {
	vt, handle := buildTestToggle(t, ToggleButtonBuilder{Text: "Mute"})

	handle.SetDisabled(true)
	vt.Update()
	vt.Click(150, 120)

	if got := vt.DrainActions(); len(got) != 0 {
		t.Fatalf("disabled toggle fired %v", got)
	}
}

func TestToggleButtonStyle_PartIsTotal(t *testing.T) {
	st := DefaultToggleButtonStyle()
	states := []ButtonState{ButtonStateIdle, ButtonStateHovered, ButtonStateDown, ButtonStateDisabled}
	for _, state := range states {
		for _, toggled := range []bool{false, true} {
			part := st.Part(state, toggled)
			if part == (ButtonStylePart{}) {
				t.Errorf("state %v toggled %v resolves to a zero part", state, toggled)
			}
		}
	}
}

func TestToggleButtonStyle_DownSharesHoveredPart(t *testing.T) {
	st := DefaultToggleButtonStyle()
	for _, toggled := range []bool{false, true} {
		if st.Part(ButtonStateDown, toggled) != st.Part(ButtonStateHovered, toggled) {
			t.Errorf("toggled %v: down and hovered parts must match", toggled)
		}
	}
}
