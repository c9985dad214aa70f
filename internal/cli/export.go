package cli

import (
	"github.com/spf13/cobra"

	"quickprice/internal/app"
)

var (
	exportSheetPath    string
	exportOutPath      string
	exportCSVPath      string
	exportPNGPath      string
	exportScenarioPath string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the program set or a scenario's rate stack",
	RunE: func(cmd *cobra.Command, args []string) error {
		return getApp().Export(cmd.Context(), app.ExportOptions{
			SheetPath:    exportSheetPath,
			OutPath:      exportOutPath,
			CSVPath:      exportCSVPath,
			PNGPath:      exportPNGPath,
			ScenarioPath: exportScenarioPath,
		})
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportSheetPath, "sheet", "", "Export from a sheet file instead of the database")
	exportCmd.Flags().StringVar(&exportOutPath, "out", "", "Path to write the program set as a JSON sheet")
	exportCmd.Flags().StringVar(&exportCSVPath, "csv", "", "Path to write a scenario's rate stack as CSV")
	exportCmd.Flags().StringVar(&exportPNGPath, "png", "", "Path to write a scenario's rate stack as a PNG chart")
	exportCmd.Flags().StringVar(&exportScenarioPath, "scenario", "", "Scenario JSON file used for CSV/PNG export")
}
