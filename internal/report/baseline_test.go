package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/simplefind/simplefind/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseline_SaveLoadFilter(t *testing.T) {
	p := filepath.Join(t.TempDir(), DefaultBaselineFile)
	known := []types.MatchResult{{Path: "a", Line: 1, Column: 1, LineText: "foo"}}
	require.NoError(t, SaveBaseline(p, known))

	base, err := LoadBaseline(p)
	require.NoError(t, err)
	assert.Len(t, base.Items, 1)

	current := []types.MatchResult{
		{Path: "a", Line: 7, Column: 1, LineText: "foo"}, // moved, still known
		{Path: "a", Line: 8, Column: 5, LineText: "bar foo"},
		{Path: "b", Line: 1, Column: 1, LineText: "foo"},
	}
	fresh := FilterNewMatches(current, base)
	require.Len(t, fresh, 2)
	assert.Equal(t, "bar foo", fresh[0].LineText)
	assert.Equal(t, "b", fresh[1].Path)
}

func TestLoadBaseline_Missing(t *testing.T) {
	base, err := LoadBaseline(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Empty(t, base.Items)
}

func TestLoadBaseline_Corrupt(t *testing.T) {
	p := filepath.Join(t.TempDir(), "b.json")
	require.NoError(t, os.WriteFile(p, []byte("{"), 0o644))
	_, err := LoadBaseline(p)
	assert.Error(t, err)
}

func TestFingerprint_Stable(t *testing.T) {
	m := types.MatchResult{Path: "a", Line: 1, Column: 2, LineText: "x"}
	assert.Equal(t, Fingerprint(m, 0), Fingerprint(m, 0))
	assert.Len(t, Fingerprint(m, 0), 16)
	assert.NotEqual(t, Fingerprint(m, 0), Fingerprint(types.MatchResult{Path: "a", Line: 1, Column: 3, LineText: "x"}, 0))
	assert.NotEqual(t, Fingerprint(m, 0), Fingerprint(m, 1))
}

func TestFilterNewMatches_RepeatedLine(t *testing.T) {
	p := filepath.Join(t.TempDir(), DefaultBaselineFile)
	known := []types.MatchResult{{Path: "a", Line: 3, Column: 1, LineText: "TODO"}}
	require.NoError(t, SaveBaseline(p, known))
	base, err := LoadBaseline(p)
	require.NoError(t, err)

	current := []types.MatchResult{
		{Path: "a", Line: 1, Column: 1, LineText: "TODO"},
		{Path: "a", Line: 5, Column: 1, LineText: "TODO"},
	}
	fresh := FilterNewMatches(current, base)
	require.Len(t, fresh, 1, "a second identical line is a new match")
	assert.Equal(t, 5, fresh[0].Line)
}
