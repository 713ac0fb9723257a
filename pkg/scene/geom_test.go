package scene

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 100, H: 50}

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"Center", Point{60, 45}, true},
		{"TopLeftCorner", Point{10, 20}, true},
		{"LeftEdge", Point{10, 45}, true},
		{"RightEdge", Point{110, 45}, false},
		{"BottomEdge", Point{60, 70}, false},
		{"Outside", Point{200, 200}, false},
		{"JustInside", Point{109.999, 69.999}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRectTranslate(t *testing.T) {
	r := Rect{X: 1, Y: 2, W: 3, H: 4}
	got := r.Translate(10, 20)
	want := Rect{X: 11, Y: 22, W: 3, H: 4}
	if got != want {
		t.Errorf("Translate(10, 20) = %v, want %v", got, want)
	}
}

func TestRectCenter(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 100, H: 40}
	got := r.Center()
	want := Point{X: 50, Y: 20}
	if got != want {
		t.Errorf("Center() = %v, want %v", got, want)
	}
}

func TestRectEdges(t *testing.T) {
	r := Rect{X: 5, Y: 10, W: 20, H: 30}
	if got := r.Right(); got != 25 {
		t.Errorf("Right() = %v, want 25", got)
	}
	if got := r.Bottom(); got != 40 {
		t.Errorf("Bottom() = %v, want 40", got)
	}
}
