package simplefind

import (
	"fmt"

	"github.com/simplefind/simplefind/pkg/core"
	"github.com/spf13/cobra"
)

func newJSONCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "json",
		Short: "Answer one JSON search request from stdin",
		Long: `Read {"pattern", "files": [{"path", "content"}], "case_sensitive"} from stdin and
write {"matches": [...], "error": "..."} to stdout. Exits 2 when the pattern is invalid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := core.DecodeRequest(cmd.InOrStdin())
			if err != nil {
				return err
			}
			resp := core.Handle(req)
			if err := core.EncodeResponse(cmd.OutOrStdout(), resp); err != nil {
				return fmt.Errorf("encode response: %w", err)
			}
			if resp.Error != "" {
				return &exitCodeError{code: 2}
			}
			return nil
		},
	}
}
