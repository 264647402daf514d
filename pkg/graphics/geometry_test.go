package graphics

import "testing"

func TestRect_ContainsIsHalfOpen(t *testing.T) {
	r := RectFromXYWH(10, 20, 30, 40)

	cases := []struct {
		p    Offset
		want bool
	}{
		{Offset{X: 10, Y: 20}, true},
		{Offset{X: 25, Y: 40}, true},
		{Offset{X: 39.999, Y: 59.999}, true},
		{Offset{X: 40, Y: 30}, false},
		{Offset{X: 20, Y: 60}, false},
		{Offset{X: 9.999, Y: 30}, false},
	}
	for _, tc := range cases {
		if got := r.Contains(tc.p); got != tc.want {
			t.Errorf("Contains(%+v): expected %v, got %v", tc.p, tc.want, got)
		}
	}
}

func TestRect_Edges(t *testing.T) {
	r := RectFromXYWH(10, 20, 30, 40)
	if r.MinX() != 10 || r.MinY() != 20 || r.MaxX() != 40 || r.MaxY() != 60 {
		t.Errorf("unexpected edges: %v %v %v %v", r.MinX(), r.MinY(), r.MaxX(), r.MaxY())
	}
}

func TestRect_Translate(t *testing.T) {
	r := RectFromXYWH(10, 20, 30, 40)
	got := r.Translate(5, -2)
	if got != RectFromXYWH(15, 18, 30, 40) {
		t.Errorf("unexpected translation: %+v", got)
	}
}

func TestSize_IsEmpty(t *testing.T) {
	if !(Size{}).IsEmpty() {
		t.Error("zero size must be empty")
	}
	if !(Size{Width: 10}).IsEmpty() {
		t.Error("zero height must be empty")
	}
	if (Size{Width: 10, Height: 10}).IsEmpty() {
		t.Error("non-zero size must not be empty")
	}
}

func TestOffset_Add(t *testing.T) {
	got := Offset{X: 1, Y: 2}.Add(Offset{X: 10, Y: 20})
	if got != (Offset{X: 11, Y: 22}) {
		t.Errorf("unexpected sum: %+v", got)
	}
}
