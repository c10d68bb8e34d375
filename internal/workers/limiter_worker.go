package workers

import (
	"context"
	"time"

	"creatorcrewz/internal/logger"
)

type pruner interface {
	Prune() int
}

// PruneWorker periodically drops stale in-memory rate limit windows.
type PruneWorker struct {
	name     string
	target   pruner
	interval time.Duration
}

func NewPruneWorker(name string, target pruner, interval time.Duration) *PruneWorker {
	if interval <= 0 {
		interval = DefaultPruneInterval
	}
	return &PruneWorker{name: name, target: target, interval: interval}
}

func (w *PruneWorker) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := w.target.Prune(); n > 0 {
					logger.Debug("Stale entries pruned", "worker", w.name, "count", n)
				}
			}
		}
	}()
}
