package checker

import (
	"log/slog"
	"sync"
	"time"
)

// A Reporter periodically logs exploration progress.
//
// It only reads the Stats counters and never interacts with the search
// itself. Stop signals the reporter to exit; it wakes within one polling
// interval and Stop blocks until the goroutine has returned.
type Reporter struct {
	interval time.Duration
	log      *slog.Logger

	done chan struct{}
	wg   sync.WaitGroup
}

// NewReporter creates a reporter polling on the provided interval.
func NewReporter(interval time.Duration, log *slog.Logger) *Reporter {
	if log == nil {
		log = slog.Default()
	}
	return &Reporter{
		interval: interval,
		log:      log,
		done:     make(chan struct{}),
	}
}

// Start launches the polling goroutine reading from the provided Stats.
func (r *Reporter) Start(stats *Stats) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		for {
			select {
			case <-r.done:
				return
			case <-ticker.C:
				snap := stats.Snapshot()
				r.log.Info("exploring",
					"generated", snap.Generated,
					"unique", snap.Unique,
				)
			}
		}
	}()
}

// Stop terminates the reporter and waits for the goroutine to exit.
// Must be called exactly once after Start.
func (r *Reporter) Stop() {
	close(r.done)
	r.wg.Wait()
}
