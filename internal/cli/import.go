package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"quickprice/internal/app"
)

var (
	importSheetPath string
	importActivate  bool
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Validate a rate sheet file and store its programs",
	RunE: func(cmd *cobra.Command, args []string) error {
		if importSheetPath == "" {
			return errors.New("--sheet is required")
		}
		return getApp().Import(cmd.Context(), app.ImportOptions{
			SheetPath: importSheetPath,
			Activate:  importActivate,
		})
	},
}

func init() {
	importCmd.Flags().StringVar(&importSheetPath, "sheet", "", "Path to sheet JSON file")
	importCmd.Flags().BoolVar(&importActivate, "activate", false, "Mark imported programs active")
}
