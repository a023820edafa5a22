package cmd

import (
	"encoding/json"

	"woracle/handler/views"

	"github.com/spf13/cobra"
)

var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "read the current round data once and print it",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		database := provideDatabase()
		defer database.Close()

		governanceService := provideGovernanceService(provideGovernanceStore(database))
		oracleService := provideOracleService(governanceService)

		data, err := oracleService.LatestRoundData(ctx)
		if err != nil {
			cmd.PrintErrln("read round data error:", err)
			return
		}

		view, err := json.MarshalIndent(views.RoundData{
			RoundData: *data,
			Decimals:  oracleService.Decimals(),
		}, "", "  ")
		if err != nil {
			cmd.PrintErrln(err)
			return
		}

		cmd.Println(string(view))
	},
}

func init() {
	rootCmd.AddCommand(priceCmd)
}
