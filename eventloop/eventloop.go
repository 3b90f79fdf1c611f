// Package eventloop is the application-shell coordinator: a single
// goroutine consuming the signals the overlay windows broadcast and
// driving the external collaborators (window control, capture pipeline).
package eventloop

import (
	"context"
	"log"
	"time"

	"screen-capture-overlay/capture"
	"screen-capture-overlay/config"
	"screen-capture-overlay/signals"
	"screen-capture-overlay/worker"
)

// WindowControl is the shell-side handle over the overlay windows,
// implemented by the native host.
type WindowControl interface {
	SetCursorWait()
	MinimizeAll()
	Quit()
}

// Loop consumes overlay signals in emission order. One capture runs at a
// time; a selection made while one is still processing is dropped.
type Loop struct {
	events     <-chan signals.Envelope
	pool       *worker.Pool
	control    WindowControl
	deadline   time.Duration
	windows    int
	positioned int
	busy       bool
	results    chan result
}

type result struct {
	err    error
	cancel context.CancelFunc
}

// New creates an event loop. If cfg is nil or carries no deadline, 20s
// is used. windowCount is the number of overlay windows, used to track
// Wayland positioning completion.
func New(cfg *config.Config, events <-chan signals.Envelope, pool *worker.Pool, control WindowControl, windowCount int) *Loop {
	deadlineSec := 20
	if cfg != nil && cfg.CaptureDeadlineSec > 0 {
		deadlineSec = cfg.CaptureDeadlineSec
	}
	return &Loop{
		events:   events,
		pool:     pool,
		control:  control,
		deadline: time.Duration(deadlineSec) * time.Second,
		windows:  windowCount,
		results:  make(chan result, 1),
	}
}

// Run processes signals until the channel closes, a quit-or-hide signal
// arrives, or the context is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	log.Printf("Eventloop: Running with %d windows", l.windows)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case r := <-l.results:
			r.cancel()
			l.busy = false
			if r.err != nil {
				log.Printf("Eventloop: Capture pipeline failed: %v", r.err)
			}
		case env, ok := <-l.events:
			if !ok {
				return nil
			}
			if stop := l.handle(env); stop {
				return nil
			}
		}
	}
}

func (l *Loop) handle(env signals.Envelope) (stop bool) {
	switch msg := env.Message.(type) {
	case signals.SetCursorWait:
		l.control.SetCursorWait()

	case signals.MinimizeWindows:
		l.control.MinimizeAll()

	case signals.RegionSelected:
		if l.busy {
			log.Printf("Eventloop: Dropping selection from %s, capture in progress", env.From)
			return false
		}
		jobCtx, cancel := context.WithTimeout(context.Background(), l.deadline)
		region := capture.RegionFromRect(msg.Rect)
		submitted := l.pool.Submit(jobCtx, region, msg.ScreenIndex, func(err error) {
			l.results <- result{err: err, cancel: cancel}
		})
		if !submitted {
			cancel()
			log.Printf("Eventloop: Worker queue full, dropping selection from %s", env.From)
			return false
		}
		l.busy = true

	case signals.WindowPositioned:
		l.positioned++
		log.Printf("Eventloop: Window positioned (%d/%d)", l.positioned, l.windows)

	case signals.QuitOrHide:
		log.Printf("Eventloop: Quit requested by %s: %s", env.From, msg.Reason)
		l.control.Quit()
		return true
	}
	return false
}

// PositionedWindows reports how many windows finished Wayland placement.
func (l *Loop) PositionedWindows() int { return l.positioned }
