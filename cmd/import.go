package cmd

import (
	"fmt"
	"time"

	"github.com/example/wordslearning/internal/excel"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Add words from an xlsx or csv file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		sheet, _ := cmd.Flags().GetString("sheet")
		startRow, _ := cmd.Flags().GetInt("start-row")

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		importConfig := excel.DefaultImportConfig()
		importConfig.FilePath = args[0]
		importConfig.SheetName = sheet
		importConfig.StartRow = startRow

		imported, result, err := excel.ImportWords(importConfig, time.Now())
		if err != nil {
			return err
		}

		existing, err := a.storage.ReadWords(ctx)
		if err != nil {
			return err
		}
		merged := excel.MergeInto(existing, imported, result)
		if err := a.storage.SaveWords(ctx, merged); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Processed: %d, added: %d, skipped: %d\n", result.TotalProcessed, result.Created, result.Skipped)
		for _, e := range result.Errors {
			fmt.Fprintln(out, e)
		}
		return nil
	},
}

func init() {
	importCmd.Flags().String("sheet", "Sheet1", "sheet to read from xlsx files")
	importCmd.Flags().Int("start-row", 2, "first data row (1-based)")
	rootCmd.AddCommand(importCmd)
}
