package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/simplefind/simplefind/internal/types"
)

// PrintOptions carries presentation switches and run statistics for the footer.
type PrintOptions struct {
	NoColor      bool
	Duration     time.Duration
	FilesScanned int
	LinesScanned int
	Baselined    int
}

// maxCellText caps the line text shown in table cells.
const maxCellText = 80

// PrintTable renders matches as a bordered table followed by a summary footer.
// Matches are printed in the order given.
func PrintTable(w io.Writer, matches []types.MatchResult, opts PrintOptions) error {
	if len(matches) == 0 {
		fmt.Fprintln(w, "No matches found")
	} else {
		table := tablewriter.NewWriter(w)
		table.Header("Path", "Line", "Column", "Text")
		rows := make([][]string, 0, len(matches))
		for _, m := range matches {
			rows = append(rows, []string{m.Path, strconv.Itoa(m.Line), strconv.Itoa(m.Column), truncate(m.LineText, maxCellText)})
		}
		if err := table.Bulk(rows); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
	}
	printFooter(w, len(matches), opts)
	return nil
}

// PrintText renders one match per line as path:line:column:text, the format
// editors understand as vimgrep output.
func PrintText(w io.Writer, matches []types.MatchResult, opts PrintOptions) {
	pathColor := color.New(color.FgMagenta)
	numColor := color.New(color.FgGreen)
	if opts.NoColor {
		pathColor.DisableColor()
		numColor.DisableColor()
	} else {
		pathColor.EnableColor()
		numColor.EnableColor()
	}
	for _, m := range matches {
		fmt.Fprintf(w, "%s:%s:%s:%s\n",
			pathColor.Sprint(m.Path),
			numColor.Sprint(m.Line),
			numColor.Sprint(m.Column),
			m.LineText)
	}
}

func printFooter(w io.Writer, n int, opts PrintOptions) {
	if opts.Duration <= 0 && opts.FilesScanned <= 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Matches: %d\n", n)
	if opts.Baselined > 0 {
		fmt.Fprintf(w, "Baselined: %d\n", opts.Baselined)
	}
	if opts.FilesScanned > 0 {
		fmt.Fprintf(w, "Files searched: %d (%d lines)\n", opts.FilesScanned, opts.LinesScanned)
	}
	if opts.Duration > 0 {
		fmt.Fprintf(w, "Search duration: %.3fs\n", opts.Duration.Seconds())
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
