package worker

import (
	"context"

	"github.com/fox-one/pkg/logger"
	"github.com/robfig/cron/v3"
)

// Worker worker interface
type Worker interface {
	Run(ctx context.Context) error
}

// TickWorker drives a job on a fixed cron schedule until the context is done.
type TickWorker struct {
	// Spec cron spec, e.g. "@every 15s"
	Spec string
}

// StartTick run onWork per tick. Overlapping runs are skipped by the cron
// scheduler's job wrapper; a failing tick is logged, not fatal.
func (w *TickWorker) StartTick(ctx context.Context, onWork func(ctx context.Context) error) error {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))

	if _, err := c.AddFunc(w.Spec, func() {
		if err := onWork(ctx); err != nil {
			logger.FromContext(ctx).WithError(err).Errorln("tick failed")
		}
	}); err != nil {
		return err
	}

	c.Start()
	<-ctx.Done()
	<-c.Stop().Done()

	return ctx.Err()
}
