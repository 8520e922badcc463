package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh overlay text every N frames to reduce allocations.
	updateInterval = 30
	// maxLogLines is how many recent log lines are drawn at the bottom of the screen.
	maxLogLines = 3
)

// Stats is what the simulation reports to the overlay each frame.
type Stats struct {
	Balls         int
	KineticEnergy float64
	SimTime       float64
	Paused        bool
}

// Debug holds the runtime overlays. FPS and memory are drawn top-right, simulation stats
// top-left, recent log lines bottom-left.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowStats    bool

	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
}

// New returns a Debug system with the given overlays enabled.
func New(showFPS, showMemAlloc, showStats bool) *Debug {
	return &Debug{ShowFPS: showFPS, ShowMemAlloc: showMemAlloc, ShowStats: showStats}
}

// StatsText formats s for the stats overlay.
func StatsText(s Stats) string {
	text := fmt.Sprintf("Balls: %d  KE: %.1f  t: %.2fs", s.Balls, s.KineticEnergy, s.SimTime)
	if s.Paused {
		text += "  [paused]"
	}
	return text
}

// Draw renders the enabled overlays. Call last in the draw callback.
func (d *Debug) Draw(s Stats, logTail []string) {
	d.frameCount++
	update := d.frameCount%updateInterval == 0 ||
		(d.ShowFPS && d.lastFpsText == "") ||
		(d.ShowMemAlloc && d.lastMemText == "")

	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())
	y := int32(padding)

	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		w := rl.MeasureText(d.lastFpsText, fontSize)
		rl.DrawText(d.lastFpsText, screenW-w-padding, y, fontSize, rl.Green)
		y += lineHeight
	}
	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.lastMemStats)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", float64(d.lastMemStats.Alloc)/(1024*1024))
		}
		w := rl.MeasureText(d.lastMemText, fontSize)
		rl.DrawText(d.lastMemText, screenW-w-padding, y, fontSize, rl.Green)
	}
	if d.ShowStats {
		rl.DrawText(StatsText(s), padding, padding, fontSize, rl.RayWhite)
	}

	if len(logTail) > maxLogLines {
		logTail = logTail[len(logTail)-maxLogLines:]
	}
	for i, line := range logTail {
		ly := screenH - padding - int32(len(logTail)-i)*lineHeight
		rl.DrawText(line, padding, ly, fontSize-4, rl.LightGray)
	}
}
