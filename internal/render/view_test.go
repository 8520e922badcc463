package render

import (
	"testing"

	"bouncing-balls/internal/physics"
)

func TestView_Circle(t *testing.T) {
	v := NewView(physics.Arena{Width: 20, Height: 10}, 30)
	tests := []struct {
		name    string
		c       physics.Circle
		x, y, r float32
	}{
		{"floor left", physics.Circle{X: 1, Y: 1, Radius: 1}, 40, 280, 30},
		{"centre", physics.Circle{X: 10, Y: 5, Radius: 2}, 310, 160, 60},
		{"tiny ball", physics.Circle{X: 20, Y: 10, Radius: 0.001}, 610, 10, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, r := v.Circle(tt.c)
			if x != tt.x || y != tt.y || r != tt.r {
				t.Errorf("Circle() = (%v, %v, %v), want (%v, %v, %v)", x, y, r, tt.x, tt.y, tt.r)
			}
		})
	}
}

func TestView_ScreenSize(t *testing.T) {
	v := NewView(physics.Arena{Width: 20, Height: 10}, 30)
	if w, h := v.ScreenSize(); w != 620 || h != 320 {
		t.Errorf("ScreenSize() = %d×%d, want 620×320", w, h)
	}
	if got := NewView(physics.Arena{Width: 5, Height: 5}, 0).Scale; got != 1 {
		t.Errorf("Scale for zero pixelsPerUnit = %v, want 1", got)
	}
}

func TestColor_Cycles(t *testing.T) {
	if Color(0) != Color(len(palette)) {
		t.Error("palette does not repeat")
	}
	if Color(0) == Color(1) {
		t.Error("neighbouring balls share a colour")
	}
}
