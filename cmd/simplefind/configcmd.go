package simplefind

import (
	"fmt"
	"os"

	"github.com/simplefind/simplefind/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(opts *options) *cobra.Command {
	cfgCmd := &cobra.Command{Use: "config", Short: "Configuration helpers"}

	var output string
	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a .simplefind.yml from the given flags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := os.Stat(output); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", output)
			}
			format := "table"
			switch {
			case opts.sarif:
				format = "sarif"
			case opts.json:
				format = "json"
			case opts.text:
				format = "text"
			}
			fc := config.FileConfig{
				CaseSensitive: boolPtr(!opts.ignoreCase),
				Literal:       boolPtr(opts.fixed),
				Threads:       intPtr(opts.threads),
				MaxBytes:      int64Ptr(opts.maxBytes),
				NoColor:       boolPtr(opts.noColor),
				Format:        strPtr(format),
				Baseline:      strPtr(opts.baseline),
			}
			b, err := fc.Marshal()
			if err != nil {
				return err
			}
			if err := os.WriteFile(output, b, 0o644); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Wrote", output)
			return nil
		},
	}
	addSearchFlags(initCmd, opts)
	initCmd.Flags().StringVar(&opts.baseline, "baseline", "", "baseline file searches should apply")
	initCmd.Flags().StringVar(&output, "output", ".simplefind.yml", "output file path")
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	cfgCmd.AddCommand(initCmd)
	return cfgCmd
}
