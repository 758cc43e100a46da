package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/example/wordslearning/internal/quiz"
	"github.com/example/wordslearning/pkg/models"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the words with their mastery and rating",
	RunE: func(cmd *cobra.Command, args []string) error {
		sortFlag, _ := cmd.Flags().GetString("sort")
		reverse, _ := cmd.Flags().GetBool("reverse")

		mode, err := quiz.ParseSortMode(sortFlag)
		if err != nil {
			return err
		}
		direction := models.ForeignToNative
		if reverse {
			direction = models.NativeToForeign
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		words, err := a.storage.ReadWords(cmd.Context())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "WORD\tTRANSLATION\tFTON\tNTOF\tRATING")
		for _, row := range quiz.Report(words, mode, direction, time.Now()) {
			fmt.Fprintf(w, "%s\t%s\t%.0f%%\t%.0f%%\t%.3f\n", row.Foreign, row.Native, row.FToNPercent, row.NToFPercent, row.Rating)
		}
		return w.Flush()
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <foreign>",
	Short: "Remove a word from storage",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.storage.DeleteWord(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
		return nil
	},
}

func init() {
	statsCmd.Flags().String("sort", "rating", "alpha, percent or rating")
	statsCmd.Flags().Bool("reverse", false, "rate the native to foreign direction")
	rootCmd.AddCommand(statsCmd, deleteCmd)
}
