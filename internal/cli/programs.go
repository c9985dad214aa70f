package cli

import (
	"github.com/spf13/cobra"

	"quickprice/internal/app"
)

var (
	programsSheetPath string
	programsEnable    string
	programsDisable   string
)

var programsCmd = &cobra.Command{
	Use:   "programs",
	Short: "List programs or flip a stored program's active flag",
	RunE: func(cmd *cobra.Command, args []string) error {
		return getApp().Programs(cmd.Context(), app.ProgramsOptions{
			SheetPath: programsSheetPath,
			Enable:    programsEnable,
			Disable:   programsDisable,
		})
	},
}

func init() {
	programsCmd.Flags().StringVar(&programsSheetPath, "sheet", "", "List from a sheet file instead of the database")
	programsCmd.Flags().StringVar(&programsEnable, "enable", "", "Mark the named stored program active")
	programsCmd.Flags().StringVar(&programsDisable, "disable", "", "Mark the named stored program inactive")
}
