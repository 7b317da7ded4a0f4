package review

import (
	"context"
	"log"
	"time"
)

// Runner regenerates the weekly review every Sunday at 21:00 in the
// reference timezone. It owns no goroutine until Start is called and a
// single Stop shuts it down.
type Runner struct {
	svc  *Service
	loc  *time.Location
	now  func() time.Time
	stop chan struct{}
	done chan struct{}
}

func NewRunner(svc *Service, loc *time.Location) *Runner {
	return &Runner{
		svc:  svc,
		loc:  loc,
		now:  time.Now,
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
}

// WithClock overrides the runner clock for tests.
func (r *Runner) WithClock(now func() time.Time) *Runner {
	r.now = now
	return r
}

// NextRun returns the next Sunday 21:00 after the given instant.
func (r *Runner) NextRun(after time.Time) time.Time {
	t := after.In(r.loc)
	next := time.Date(t.Year(), t.Month(), t.Day(), 21, 0, 0, 0, r.loc)
	daysAhead := (int(time.Sunday) - int(t.Weekday()) + 7) % 7
	next = next.AddDate(0, 0, daysAhead)
	if !next.After(t) {
		next = next.AddDate(0, 0, 7)
	}
	return next
}

// Start launches the scheduling loop. It returns immediately.
func (r *Runner) Start(ctx context.Context) {
	go r.loop(ctx)
}

// Stop shuts the loop down and waits for it to exit.
func (r *Runner) Stop() {
	close(r.stop)
	<-r.done
}

func (r *Runner) loop(ctx context.Context) {
	defer close(r.done)

	for {
		next := r.NextRun(r.now())
		timer := time.NewTimer(next.Sub(r.now()))

		select {
		case <-timer.C:
			if _, err := r.svc.UpsertThisWeek(ctx); err != nil {
				log.Printf("weekly review run failed: %v", err)
			}
		case <-r.stop:
			timer.Stop()
			return
		case <-ctx.Done():
			timer.Stop()
			return
		}
	}
}
