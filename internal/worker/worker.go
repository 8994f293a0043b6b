package worker

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Task is one unit of periodic work
type Task func(ctx context.Context) error

// PeriodicWorker runs a task on a fixed interval until stopped
type PeriodicWorker struct {
	name     string
	task     Task
	interval time.Duration
	logger   zerolog.Logger
	stopChan chan struct{}
	stopOnce sync.Once
	wg       *sync.WaitGroup
}

func NewPeriodicWorker(name string, interval time.Duration, task Task, logger zerolog.Logger) *PeriodicWorker {
	return &PeriodicWorker{
		name:     name,
		task:     task,
		interval: interval,
		logger:   logger.With().Str("worker", name).Logger(),
		stopChan: make(chan struct{}),
		wg:       &sync.WaitGroup{},
	}
}

func (w *PeriodicWorker) Start(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.logger.Info().Dur("interval", w.interval).Msg("Worker started")

		for {
			select {
			case <-ticker.C:
				w.logger.Debug().Msg("Running periodic task")
				if err := w.task(ctx); err != nil {
					w.logger.Error().Err(err).Msg("Periodic task failed")
				}
			case <-w.stopChan:
				w.logger.Info().Msg("Worker stopping")
				return
			case <-ctx.Done():
				w.logger.Info().Msg("Worker stopping (context done)")
				return
			}
		}
	}()
}

// Stop waits for an in-flight run to finish; calling it twice is safe
func (w *PeriodicWorker) Stop() {
	w.stopOnce.Do(func() { close(w.stopChan) })
	w.wg.Wait()
}
