package main

import (
	"bouncing-balls/internal/config"
	"bouncing-balls/internal/debug"
	"bouncing-balls/internal/graphics"
	"bouncing-balls/internal/logger"
	"bouncing-balls/internal/model"
	"bouncing-balls/internal/physics"
	"bouncing-balls/internal/render"
)

// maxFrameStep caps the physics step taken for one frame, so a stalled window (dragging,
// breakpoints) does not hand the simulation one huge dt.
const maxFrameStep = 1.0 / 20

// view opens the window and drives m with the frame time until the window is closed.
func view(cfg config.Config, m model.Model, log *logger.Logger) {
	v := render.NewView(physics.Arena{Width: cfg.Width, Height: cfg.Height}, cfg.Window.PixelsPerUnit)
	w, h := v.ScreenSize()
	overlay := debug.New(cfg.Window.ShowFPS, cfg.Window.ShowMemAlloc, cfg.Window.ShowStats)

	var (
		paused  bool
		simTime float64
	)
	advance := func(dt float64) {
		if err := m.Advance(dt); err != nil {
			log.Log(err.Error())
			return
		}
		simTime += dt
	}
	update := func(frame float32) {
		if graphics.PausePressed() {
			paused = !paused
		}
		dt := min(float64(frame), maxFrameStep)
		switch {
		case !paused:
			advance(dt)
		case graphics.StepPressed():
			advance(maxFrameStep)
		}
	}
	draw := func() {
		circles := m.Snapshot()
		graphics.DrawArena(v)
		graphics.DrawBalls(v, circles)
		stats := debug.Stats{Balls: len(circles), SimTime: simTime, Paused: paused}
		if sim, ok := m.(*physics.Simulation); ok {
			stats.KineticEnergy = sim.KineticEnergy()
		}
		overlay.Draw(stats, log.Tail(3))
	}
	log.Log("window opened")
	graphics.Run("bouncing balls", w, h, cfg.Window.TargetFPS, update, draw)
	log.Logf("window closed at t=%.2fs", simTime)
}
