package core

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_Smoke(t *testing.T) {
	matches, err := Search("world", []FileInput{{Path: "t", Content: "Hello, world!"}}, true)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 8, matches[0].Column)

	_, err = Search("[", nil, true)
	var pe *PatternError
	require.True(t, errors.As(err, &pe))
	assert.True(t, errors.Is(err, ErrInvalidPattern))
}

func TestHandle_RoundTrip(t *testing.T) {
	body := `{"pattern":"foo","case_sensitive":true,"files":[{"path":"a.txt","content":"foo bar foo baz"},{"path":"b.txt","content":"FOO"}]}`
	req, err := DecodeRequest(strings.NewReader(body))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, EncodeResponse(&buf, Handle(req)))
	assert.JSONEq(t, `{"matches":[
		{"path":"a.txt","line":1,"column":1,"line_text":"foo bar foo baz"},
		{"path":"a.txt","line":1,"column":9,"line_text":"foo bar foo baz"}
	]}`, buf.String())
}

func TestHandle_PatternError(t *testing.T) {
	resp := Handle(Request{Pattern: "[", Files: []WireFileInput{{Path: "a", Content: "["}}})
	assert.Empty(t, resp.Matches)
	assert.Contains(t, resp.Error, "[")

	var buf bytes.Buffer
	require.NoError(t, EncodeResponse(&buf, resp))
	assert.Contains(t, buf.String(), `"matches":[]`)
}

func TestDecodeRequest_Malformed(t *testing.T) {
	_, err := DecodeRequest(strings.NewReader(`{"pattern":`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode request")
}

func TestFilesFromWire_PreservesOrder(t *testing.T) {
	in := []WireFileInput{{Path: "z", Content: "1"}, {Path: "a", Content: "2"}}
	out := FilesFromWire(in)
	require.Len(t, out, 2)
	assert.Equal(t, FileInput{Path: "z", Content: "1"}, out[0])
	assert.Equal(t, FileInput{Path: "a", Content: "2"}, out[1])
}

func TestMarshalMatches_EmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, MarshalMatches(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())

	buf.Reset()
	in := []MatchResult{{Path: "a", Line: 2, Column: 3, LineText: "xyz"}}
	require.NoError(t, MarshalMatches(&buf, in))
	out, err := UnmarshalMatches(&buf)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
