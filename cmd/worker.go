package cmd

import (
	"sync"

	"woracle/worker"
	"woracle/worker/monitor"

	"github.com/fox-one/pkg/logger"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "woracle job worker",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		log := logger.FromContext(ctx)
		ctx = logger.WithContext(ctx, log)

		database := provideDatabase()
		defer database.Close()

		governanceStore := provideGovernanceStore(database)
		if err := governanceStore.Init(ctx, cfg.Oracle.Owner, cfg.Oracle.InitialCeiling); err != nil {
			logrus.WithError(err).Fatal("seed governance failed")
		}

		governanceService := provideGovernanceService(governanceStore)
		oracleService := provideOracleService(governanceService)

		workers := []worker.Worker{
			monitor.New(oracleService, governanceService),
		}

		wg := sync.WaitGroup{}
		for _, w := range workers {
			wg.Add(1)

			go func(worker worker.Worker) {
				defer wg.Done()
				worker.Run(ctx)
			}(w)
		}

		wg.Wait()
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
}
