package workers

import (
	"context"
	"time"

	"creatorcrewz/internal/logger"

	"gorm.io/gorm"
)

const DefaultPruneInterval = time.Hour

type invitationPruner interface {
	PruneExpired(db *gorm.DB) (int64, error)
}

// InvitationWorker deletes expired, never-accepted invitations.
type InvitationWorker struct {
	db       *gorm.DB
	pruner   invitationPruner
	interval time.Duration
}

func NewInvitationWorker(db *gorm.DB, pruner invitationPruner, interval time.Duration) *InvitationWorker {
	if interval <= 0 {
		interval = DefaultPruneInterval
	}
	return &InvitationWorker{db: db, pruner: pruner, interval: interval}
}

// Start runs the worker in the background until ctx is done.
func (w *InvitationWorker) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *InvitationWorker) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Invitation worker stopped")
			return
		case <-ticker.C:
			w.pruneOnce(ctx)
		}
	}
}

func (w *InvitationWorker) pruneOnce(ctx context.Context) int64 {
	conn := w.db
	if conn != nil {
		conn = conn.WithContext(ctx)
	}
	n, err := w.pruner.PruneExpired(conn)
	logger.WorkerLog("invitation", "prune_expired", err)
	if err == nil && n > 0 {
		logger.Info("Expired invitations pruned", "count", n)
	}
	return n
}
