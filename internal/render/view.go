// Package render maps simulation space onto window pixels. It has no window dependency so the
// mapping can be tested headless; drawing lives in the graphics package.
package render

import (
	"image/color"

	"bouncing-balls/internal/physics"

	"github.com/chewxy/math32"
)

// minScreenRadius keeps tiny balls visible.
const minScreenRadius = 1

// View scales an arena onto the screen with a border of Margin pixels. Screen y grows downward,
// simulation y grows upward, so y is flipped.
type View struct {
	Arena  physics.Arena
	Scale  float32 // pixels per world unit
	Margin float32
}

// NewView returns a view of arena at pixelsPerUnit with a 10 px margin. Non-positive
// pixelsPerUnit falls back to 1.
func NewView(arena physics.Arena, pixelsPerUnit float32) View {
	if pixelsPerUnit <= 0 {
		pixelsPerUnit = 1
	}
	return View{Arena: arena, Scale: pixelsPerUnit, Margin: 10}
}

// ScreenSize returns the window size needed to show the whole arena and its margin.
func (v View) ScreenSize() (w, h int32) {
	return int32(math32.Ceil(float32(v.Arena.Width)*v.Scale + 2*v.Margin)),
		int32(math32.Ceil(float32(v.Arena.Height)*v.Scale + 2*v.Margin))
}

// ArenaRect returns the arena's outline in pixels as x, y, width, height.
func (v View) ArenaRect() (x, y, w, h float32) {
	return v.Margin, v.Margin, float32(v.Arena.Width) * v.Scale, float32(v.Arena.Height) * v.Scale
}

// Circle returns the pixel centre and radius of c.
func (v View) Circle(c physics.Circle) (x, y, r float32) {
	x = v.Margin + float32(c.X)*v.Scale
	y = v.Margin + float32(v.Arena.Height-c.Y)*v.Scale
	r = math32.Max(float32(c.Radius)*v.Scale, minScreenRadius)
	return x, y, r
}

var palette = []color.RGBA{
	{230, 41, 55, 255},
	{0, 121, 241, 255},
	{0, 228, 48, 255},
	{253, 249, 0, 255},
	{255, 161, 0, 255},
	{200, 122, 255, 255},
	{102, 191, 255, 255},
	{255, 109, 194, 255},
}

// Color returns the fill colour for the i-th ball. Colours repeat after len(palette) balls.
func Color(i int) color.RGBA {
	if i < 0 {
		i = -i
	}
	return palette[i%len(palette)]
}
