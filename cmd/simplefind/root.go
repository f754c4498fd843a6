package simplefind

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

// options holds every flag value; each command tree gets its own copy.
type options struct {
	json       bool
	sarif      bool
	text       bool
	threads    int
	noColor    bool
	quiet      bool
	configPath string

	ignoreCase bool
	fixed      bool
	maxBytes   int64
	baseline   string
}

// exitCodeError ends the process with code without printing anything.
type exitCodeError struct{ code int }

func (e *exitCodeError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

var errNoMatches = &exitCodeError{code: 1}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "simplefind",
		Short:         "Search files for a regular expression",
		Long:          "simplefind reports every match of a pattern in the given files with its line, column and line text.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.BoolVar(&opts.json, "json", false, "emit JSON")
	pf.BoolVar(&opts.sarif, "sarif", false, "emit SARIF 2.1.0")
	pf.BoolVar(&opts.text, "text", false, "emit path:line:column:text lines")
	pf.IntVar(&opts.threads, "threads", 0, "worker count (0 = GOMAXPROCS)")
	pf.BoolVar(&opts.noColor, "no-color", false, "disable colorized output")
	pf.BoolVarP(&opts.quiet, "quiet", "q", false, "suppress progress messages on stderr")
	pf.StringVar(&opts.configPath, "config", "", "config file (default: .simplefind.yml in the working directory)")

	root.AddCommand(
		newSearchCmd(opts),
		newJSONCmd(),
		newBaselineCmd(opts),
		newConfigCmd(opts),
		newCompletionCmd(root),
	)
	return root
}

// Execute runs the simplefind CLI. It should be called by the main package.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes args and maps the outcome to an exit code: 0 on success,
// 1 when a search found nothing, 2 on any error.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		var ec *exitCodeError
		if errors.As(err, &ec) {
			return ec.code
		}
		fmt.Fprintln(stderr, "error:", err)
		return 2
	}
	return 0
}
