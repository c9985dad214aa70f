package cli

import (
	"github.com/spf13/cobra"

	"quickprice/internal/app"
)

var (
	priceScenarioPath string
	priceSheetPath    string
	priceJSONOutput   bool
	priceShowAll      bool
)

var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Price a loan scenario and print the rate stack",
	RunE: func(cmd *cobra.Command, args []string) error {
		return getApp().Price(cmd.Context(), app.PriceOptions{
			ScenarioPath: priceScenarioPath,
			SheetPath:    priceSheetPath,
			JSONOutput:   priceJSONOutput,
			ShowAllRates: priceShowAll,
		})
	},
}

func init() {
	priceCmd.Flags().StringVar(&priceScenarioPath, "scenario", "", "Path to scenario JSON file (- for stdin)")
	priceCmd.Flags().StringVar(&priceSheetPath, "sheet", "", "Price against a sheet file instead of the database")
	priceCmd.Flags().BoolVar(&priceJSONOutput, "json", false, "Emit the result as JSON")
	priceCmd.Flags().BoolVar(&priceShowAll, "all-rates", false, "Show rate tiers outside the price band")
}
