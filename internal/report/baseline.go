package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/simplefind/simplefind/internal/types"
)

// DefaultBaselineFile is where `baseline update` writes when no path is given.
const DefaultBaselineFile = "simplefind.baseline.json"

// Baseline is a set of match fingerprints to hide from later runs.
type Baseline struct {
	Items map[string]bool `json:"items"`
}

// LoadBaseline reads a baseline file. A missing file is an empty baseline.
func LoadBaseline(path string) (Baseline, error) {
	b := Baseline{Items: map[string]bool{}}
	f, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return b, nil
	}
	if err != nil {
		return b, err
	}
	if err := json.Unmarshal(f, &b); err != nil {
		return b, fmt.Errorf("parse baseline %s: %w", path, err)
	}
	if b.Items == nil {
		b.Items = map[string]bool{}
	}
	return b, nil
}

// SaveBaseline records a fingerprint for every match.
func SaveBaseline(path string, matches []types.MatchResult) error {
	b := Baseline{Items: map[string]bool{}}
	for _, fp := range fingerprints(matches) {
		b.Items[fp] = true
	}
	buf, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf, 0o644)
}

// FilterNewMatches drops matches already present in base, keeping order.
func FilterNewMatches(matches []types.MatchResult, base Baseline) []types.MatchResult {
	out := make([]types.MatchResult, 0, len(matches))
	for i, fp := range fingerprints(matches) {
		if !base.Items[fp] {
			out = append(out, matches[i])
		}
	}
	return out
}

// Fingerprint identifies a match by path, column and line text, so that
// unrelated edits moving the line up or down keep it baselined. The line
// number is left out; occurrence tells apart identical lines in one file
// (0 for the first, 1 for the next copy, and so on).
func Fingerprint(m types.MatchResult, occurrence int) string {
	key := m.Path + "\x00" + strconv.Itoa(m.Column) + "\x00" + m.LineText + "\x00" + strconv.Itoa(occurrence)
	return fastHash(key)
}

// fingerprints numbers repeated (path, column, line text) triples in match
// order before hashing.
func fingerprints(matches []types.MatchResult) []string {
	seen := make(map[string]int, len(matches))
	out := make([]string, len(matches))
	for i, m := range matches {
		k := m.Path + "\x00" + strconv.Itoa(m.Column) + "\x00" + m.LineText
		out[i] = Fingerprint(m, seen[k])
		seen[k]++
	}
	return out
}

func fastHash(s string) string {
	sum := xxhash.Sum64String(s)
	var buf [16]byte
	const hex = "0123456789abcdef"
	for i := 15; i >= 0; i-- {
		buf[i] = hex[sum&0xF]
		sum >>= 4
	}
	return string(buf[:])
}
