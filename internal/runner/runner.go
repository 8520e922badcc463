// Package runner drives a model without a window: either for a fixed number of steps, or in
// real time with physics and reporting on separate goroutines.
package runner

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"bouncing-balls/internal/logger"
	"bouncing-balls/internal/model"
	"bouncing-balls/internal/physics"
	"bouncing-balls/internal/report"
)

const (
	DefaultTick        = 10 * time.Millisecond
	DefaultReportEvery = time.Second
)

// Options controls Realtime. Zero Tick or Every take the defaults; zero Duration runs until ctx ends.
type Options struct {
	Duration time.Duration
	Tick     time.Duration
	Every    time.Duration
}

type energetic interface {
	KineticEnergy() float64
}

// energy returns m's kinetic energy, or -1 when the model does not track it.
func energy(m model.Model) float64 {
	if e, ok := m.(energetic); ok {
		return e.KineticEnergy()
	}
	return -1
}

// Steps advances m n times by dt and writes the final snapshot to w.
func Steps(m model.Model, n int, dt float64, w io.Writer) error {
	if n < 0 {
		return fmt.Errorf("runner: negative step count %d", n)
	}
	for i := 0; i < n; i++ {
		if err := m.Advance(dt); err != nil {
			return fmt.Errorf("runner: step %d: %w", i, err)
		}
	}
	_, err := io.WriteString(w, report.Snapshot(fmt.Sprintf("after %d steps of %gs", n, dt), m.Snapshot(), energy(m)))
	return err
}

// Realtime advances m by opts.Tick every opts.Tick of wall-clock time on one goroutine and writes a
// snapshot to w every opts.Every on the calling goroutine, until ctx is done or opts.Duration has
// passed. A final snapshot is always written. The first Advance error stops the run and is returned.
func Realtime(ctx context.Context, m model.Model, opts Options, w io.Writer, log *logger.Logger) error {
	if opts.Tick <= 0 {
		opts.Tick = DefaultTick
	}
	if opts.Every <= 0 {
		opts.Every = DefaultReportEvery
	}
	if opts.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Duration)
		defer cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	locked := model.NewLocked(m)
	errc := make(chan error, 1)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(opts.Tick)
		defer ticker.Stop()
		dt := opts.Tick.Seconds()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := locked.Advance(dt); err != nil {
					errc <- err
					cancel()
					return
				}
			}
		}
	}()

	start := time.Now()
	write := func() error {
		var circles []physics.Circle
		var e float64
		locked.Do(func(m model.Model) {
			circles = m.Snapshot()
			e = energy(m)
		})
		title := fmt.Sprintf("t=%s", time.Since(start).Round(time.Millisecond))
		_, err := io.WriteString(w, report.Snapshot(title, circles, e))
		return err
	}

	ticker := time.NewTicker(opts.Every)
	defer ticker.Stop()
	var runErr error
loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		case <-ticker.C:
			if err := write(); err != nil {
				runErr = err
				cancel()
				break loop
			}
		}
	}
	wg.Wait()

	select {
	case err := <-errc:
		runErr = fmt.Errorf("runner: %w", err)
	default:
	}
	if runErr != nil {
		if log != nil {
			log.Log(runErr.Error())
		}
		return runErr
	}
	if log != nil {
		log.Logf("stopped after %s", time.Since(start).Round(time.Millisecond))
	}
	return write()
}
