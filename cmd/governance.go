package cmd

import (
	"woracle/pkg/number"

	"github.com/spf13/cobra"
)

var setCeilingCmd = &cobra.Command{
	Use:   "set-ceiling",
	Short: "set the price ceiling",
	Long: `flags->
	key: caller key id, must be the current owner
	ceiling: new ceiling in natural units, e.g. 1.5`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		database := provideDatabase()
		defer database.Close()

		governanceService := provideGovernanceService(provideGovernanceStore(database))

		key, _ := cmd.Flags().GetString("key")
		ceiling, _ := cmd.Flags().GetString("ceiling")

		if key == "" || ceiling == "" {
			panic("no key or ceiling")
		}

		if err := governanceService.SetCeiling(ctx, key, number.ToScaled(number.Decimal(ceiling))); err != nil {
			cmd.PrintErrln("set ceiling error:", err)
			return
		}

		cmd.Println("ceiling set to", ceiling)
	},
}

var transferOwnerCmd = &cobra.Command{
	Use:   "transfer-owner",
	Short: "nominate a new owner",
	Long: `flags->
	key: caller key id, must be the current owner
	nominee: key id of the nominated owner`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		database := provideDatabase()
		defer database.Close()

		governanceService := provideGovernanceService(provideGovernanceStore(database))

		key, _ := cmd.Flags().GetString("key")
		nominee, _ := cmd.Flags().GetString("nominee")

		if key == "" || nominee == "" {
			panic("no key or nominee")
		}

		if err := governanceService.TransferOwnership(ctx, key, nominee); err != nil {
			cmd.PrintErrln("transfer ownership error:", err)
			return
		}

		cmd.Println("pending owner", nominee)
	},
}

var acceptOwnerCmd = &cobra.Command{
	Use:   "accept-owner",
	Short: "accept a pending ownership transfer",
	Long: `flags->
	key: caller key id, must be the nominated owner`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		database := provideDatabase()
		defer database.Close()

		governanceService := provideGovernanceService(provideGovernanceStore(database))

		key, _ := cmd.Flags().GetString("key")
		if key == "" {
			panic("no key")
		}

		if err := governanceService.AcceptOwnership(ctx, key); err != nil {
			cmd.PrintErrln("accept ownership error:", err)
			return
		}

		cmd.Println("owner", key)
	},
}

func init() {
	rootCmd.AddCommand(setCeilingCmd)
	rootCmd.AddCommand(transferOwnerCmd)
	rootCmd.AddCommand(acceptOwnerCmd)

	setCeilingCmd.Flags().String("key", "", "caller key id")
	setCeilingCmd.Flags().String("ceiling", "", "new ceiling in natural units")

	transferOwnerCmd.Flags().String("key", "", "caller key id")
	transferOwnerCmd.Flags().String("nominee", "", "nominated owner key id")

	acceptOwnerCmd.Flags().String("key", "", "caller key id")
}
