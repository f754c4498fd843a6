package simplefind

import (
	"errors"
	"io"
	"os"

	"github.com/simplefind/simplefind/internal/config"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// loadConfigs returns the local (or --config) and global file configs.
// Missing files are not an error; malformed ones are.
func loadConfigs(opts *options) (local, global config.FileConfig, err error) {
	if opts.configPath != "" {
		local, err = config.LoadFile(opts.configPath)
		if err != nil {
			return local, global, err
		}
	} else if wd, werr := os.Getwd(); werr == nil {
		local, err = config.LoadLocal(wd)
		if err != nil && !errors.Is(err, config.ErrNotFound) {
			return local, global, err
		}
	}
	global, err = config.LoadGlobal()
	if err != nil && !errors.Is(err, config.ErrNotFound) {
		return local, global, err
	}
	return local, global, nil
}

// The pick helpers apply CLI > local > global precedence. A flag counts as
// given only when the user changed it, so flag defaults never mask files.

func pickString(cmd *cobra.Command, name, cli string, local, global *string) string {
	if cmd.Flags().Changed(name) {
		return cli
	}
	if local != nil && *local != "" {
		return *local
	}
	if global != nil && *global != "" {
		return *global
	}
	return cli
}

func pickInt(cmd *cobra.Command, name string, cli int, local, global *int) int {
	if cmd.Flags().Changed(name) {
		return cli
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return cli
}

func pickInt64(cmd *cobra.Command, name string, cli int64, local, global *int64) int64 {
	if cmd.Flags().Changed(name) {
		return cli
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return cli
}

func pickBool(cmd *cobra.Command, name string, cli bool, local, global *bool) bool {
	if cmd.Flags().Changed(name) {
		return cli
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return cli
}

// colorEnabled reports whether w is a terminal and colour was not disabled.
func colorEnabled(w io.Writer, noColor bool) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }
func boolPtr(v bool) *bool    { return &v }
