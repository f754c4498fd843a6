package simplefind

import (
	"fmt"

	"github.com/simplefind/simplefind/internal/report"
	"github.com/spf13/cobra"
)

func newBaselineCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "baseline",
		Short: "Manage baselines",
	}

	var output string
	update := &cobra.Command{
		Use:   "update PATTERN [FILE...]",
		Short: "Record the current matches so later searches hide them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSettings(cmd, opts)
			if err != nil {
				return err
			}
			res, err := searchFiles(cmd, opts, s, args[0], args[1:])
			if err != nil {
				return err
			}
			if err := report.SaveBaseline(output, res.Matches); err != nil {
				return fmt.Errorf("write baseline: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Baseline updated: %d matches in %s\n", len(res.Matches), output)
			return nil
		},
	}
	addSearchFlags(update, opts)
	update.Flags().StringVarP(&output, "output", "o", report.DefaultBaselineFile, "baseline file to write")

	cmd.AddCommand(update)
	return cmd
}
