package geometry

import "testing"

func TestRectCenter(t *testing.T) {
	t.Parallel()

	r := Rect{X: 2, Y: 4, Width: 6, Height: 8}
	c := r.Center()

	if c.X != 5 || c.Y != 8 {
		t.Errorf("expected center (5, 8), got (%v, %v)", c.X, c.Y)
	}
}

func TestRectContains(t *testing.T) {
	t.Parallel()

	r := Rect{X: 0, Y: 0, Width: 10, Height: 10}

	cases := []struct {
		name string
		p    Point
		want bool
	}{
		{"inside", Point{X: 5, Y: 5}, true},
		{"on edge", Point{X: 10, Y: 10}, true},
		{"outside x", Point{X: 11, Y: 5}, false},
		{"outside y", Point{X: 5, Y: -1}, false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := r.Contains(tc.p); got != tc.want {
				t.Errorf("Contains(%v) = %v, want %v", tc.p, got, tc.want)
			}
		})
	}
}

func TestRectsCoincide(t *testing.T) {
	t.Parallel()

	a := Rect{X: 0, Y: 10, Width: 5, Height: 0.375}
	b := Rect{X: 0, Y: 10, Width: 5, Height: 0.375}

	ok, overlap := RectsCoincide(a, b)
	if !ok {
		t.Fatal("expected identical wall rects to coincide")
	}
	if overlap <= 0 {
		t.Errorf("expected positive overlap area, got %v", overlap)
	}
}

func TestRectsCoincideNoOverlap(t *testing.T) {
	t.Parallel()

	a := Rect{X: 0, Y: 0, Width: 5, Height: 1}
	b := Rect{X: 100, Y: 100, Width: 5, Height: 1}

	if ok, _ := RectsCoincide(a, b); ok {
		t.Error("expected far-apart rects not to coincide")
	}
}

func TestDirectionOpposite(t *testing.T) {
	t.Parallel()

	cases := map[Direction]Direction{
		North: South,
		South: North,
		East:  West,
		West:  East,
	}

	for dir, want := range cases {
		if got := dir.Opposite(); got != want {
			t.Errorf("%s.Opposite() = %s, want %s", dir, got, want)
		}
	}
}

func TestDirectionIsHorizontal(t *testing.T) {
	t.Parallel()

	if !North.IsHorizontal() || !South.IsHorizontal() {
		t.Error("expected north/south to be horizontal")
	}
	if East.IsHorizontal() || West.IsHorizontal() {
		t.Error("expected east/west not to be horizontal")
	}
}

func TestRoundToMillimeter(t *testing.T) {
	t.Parallel()

	// 10 feet at 0.3048 m/ft = 3048 mm.
	got := RoundToMillimeter(10, 0.3048)
	if got != 3048 {
		t.Errorf("RoundToMillimeter(10, 0.3048) = %d, want 3048", got)
	}
}
