package monitor

import (
	"context"

	"woracle/core"
	"woracle/pkg/number"
	"woracle/worker"

	"github.com/fox-one/pkg/logger"
	"github.com/sirupsen/logrus"
)

// Worker monitor worker. Each tick reads the live and capped price and logs
// them; it keeps no history, the oracle stays a point-in-time read.
type Worker struct {
	worker.TickWorker
	OracleService     core.IOracleService
	GovernanceService core.IGovernanceService
}

// New new monitor worker
func New(oracleSrv core.IOracleService, governanceSrv core.IGovernanceService) *Worker {
	return &Worker{
		TickWorker:        worker.TickWorker{Spec: "@every 15s"},
		OracleService:     oracleSrv,
		GovernanceService: governanceSrv,
	}
}

// Run run worker
func (w *Worker) Run(ctx context.Context) error {
	return w.StartTick(ctx, func(ctx context.Context) error {
		return w.onWork(ctx)
	})
}

func (w *Worker) onWork(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("worker", "monitor")

	live, err := w.OracleService.LivePrice(ctx)
	if err != nil {
		log.Errorln("read live price error:", err)
		return err
	}

	data, err := w.OracleService.LatestRoundData(ctx)
	if err != nil {
		log.Errorln("read round data error:", err)
		return err
	}

	fields := logrus.Fields{
		"round":  data.RoundID,
		"live":   number.FromScaled(live),
		"answer": number.FromScaled(data.Answer),
	}

	if data.Answer.LT(live) {
		if ceiling, err := w.GovernanceService.Ceiling(ctx); err == nil {
			fields["ceiling"] = number.FromScaled(ceiling)
		}
		log.WithFields(fields).Warnln("price ceiling binding")
		return nil
	}

	log.WithFields(fields).Infoln("price ok")
	return nil
}
