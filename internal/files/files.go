// Package files reads the files named on the command line into search inputs.
// It never walks directories; every path is read exactly as given.
package files

import (
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/simplefind/simplefind/internal/types"
)

// StdinPath is the argument that selects standard input.
const StdinPath = "-"

// Options controls which named files are loaded.
type Options struct {
	// MaxBytes skips files larger than this many bytes (0 = no limit).
	MaxBytes int64
	// Stdin is read when StdinPath is given; defaults to os.Stdin.
	Stdin io.Reader
}

// Skipped records a path that was not loaded and why.
type Skipped struct {
	Path   string
	Reason string
}

// Load reads paths in order. Directories, oversized and binary files are
// reported as skipped; any other read failure aborts the load.
func Load(paths []string, opts Options) ([]types.FileInput, []Skipped, error) {
	var out []types.FileInput
	var skipped []Skipped
	for _, p := range paths {
		if p == StdinPath {
			in := opts.Stdin
			if in == nil {
				in = os.Stdin
			}
			b, err := io.ReadAll(in)
			if err != nil {
				return nil, nil, fmt.Errorf("read stdin: %w", err)
			}
			out = append(out, types.FileInput{Path: "<stdin>", Content: string(b)})
			continue
		}
		info, err := os.Stat(p)
		if err != nil {
			return nil, nil, err
		}
		if info.IsDir() {
			skipped = append(skipped, Skipped{Path: p, Reason: "is a directory"})
			continue
		}
		if opts.MaxBytes > 0 && info.Size() > opts.MaxBytes {
			skipped = append(skipped, Skipped{Path: p, Reason: fmt.Sprintf("larger than %d bytes", opts.MaxBytes)})
			continue
		}
		b, err := os.ReadFile(p)
		if err != nil {
			return nil, nil, err
		}
		if looksBinary(b) || looksNonTextMIME(p, b) {
			skipped = append(skipped, Skipped{Path: p, Reason: "binary content"})
			continue
		}
		out = append(out, types.FileInput{Path: filepath.ToSlash(p), Content: string(b)})
	}
	return out, skipped, nil
}

func looksBinary(b []byte) bool {
	const sniff = 800
	n := min(len(b), sniff)
	for i := 0; i < n; i++ {
		if b[i] == 0 {
			return true
		}
	}
	return false
}

// looksNonTextMIME uses the file extension and a tiny content sniff to skip
// clearly non-text content in addition to NUL-byte detection.
func looksNonTextMIME(path string, b []byte) bool {
	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		if strings.HasPrefix(ct, "image/") || strings.HasPrefix(ct, "video/") || strings.HasPrefix(ct, "audio/") {
			return true
		}
		if strings.Contains(ct, "zip") || strings.Contains(ct, "gzip") {
			return true
		}
	}
	// PNG signature
	if len(b) >= 8 && string(b[:8]) == "\x89PNG\r\n\x1a\n" {
		return true
	}
	// ZIP local file header
	if len(b) >= 4 && string(b[:4]) == "PK\x03\x04" {
		return true
	}
	return false
}
