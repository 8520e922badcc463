package graphics

import (
	"bouncing-balls/internal/physics"
	"bouncing-balls/internal/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	// Reused every frame to avoid per-frame color allocations.
	arenaBorderColor = rl.NewColor(200, 200, 200, 255)
	backgroundColor  = rl.NewColor(18, 18, 24, 255)
)

// Run opens a width×height window and runs the main loop at fps frames per second. Each frame it
// calls update with the frame time in seconds, then clears the screen and calls draw.
// The loop ends when the window is closed or ESC is pressed.
func Run(title string, width, height, fps int32, update func(dt float32), draw func()) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(width, height, title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(fps)

	for !rl.WindowShouldClose() {
		update(rl.GetFrameTime())

		rl.BeginDrawing()
		rl.ClearBackground(backgroundColor)
		draw()
		rl.EndDrawing()
	}
}

// PausePressed reports whether the pause key (space) went down this frame.
func PausePressed() bool {
	return rl.IsKeyPressed(rl.KeySpace)
}

// StepPressed reports whether the single-step key (N) went down this frame.
func StepPressed() bool {
	return rl.IsKeyPressed(rl.KeyN)
}

// DrawArena draws the arena outline.
func DrawArena(v render.View) {
	x, y, w, h := v.ArenaRect()
	rl.DrawRectangleLinesEx(rl.NewRectangle(x, y, w, h), 2, arenaBorderColor)
}

// DrawBalls draws every circle, coloured by its index so a ball keeps its colour between frames.
func DrawBalls(v render.View, circles []physics.Circle) {
	for i, c := range circles {
		x, y, r := v.Circle(c)
		rl.DrawCircleV(rl.NewVector2(x, y), r, render.Color(i))
	}
}
