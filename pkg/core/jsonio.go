package core

import (
	"encoding/json"
	"fmt"
	"io"
)

// WireFileInput is the JSON shape of a file handed over by a host.
type WireFileInput struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// WireMatchResult is the JSON shape of a match handed back to a host.
type WireMatchResult struct {
	Path     string `json:"path"`
	Line     uint32 `json:"line"`
	Column   uint32 `json:"column"`
	LineText string `json:"line_text"`
}

// Request is one search call as sent by a host.
type Request struct {
	Pattern       string          `json:"pattern"`
	Files         []WireFileInput `json:"files"`
	CaseSensitive bool            `json:"case_sensitive"`
}

// Response carries either the matches or the error message of a Request.
type Response struct {
	Matches []WireMatchResult `json:"matches"`
	Error   string            `json:"error,omitempty"`
}

// FilesFromWire converts host files into engine inputs.
func FilesFromWire(in []WireFileInput) []FileInput {
	out := make([]FileInput, len(in))
	for i, f := range in {
		out[i] = FileInput{Path: f.Path, Content: f.Content}
	}
	return out
}

// MatchesToWire converts engine matches into their host shape.
func MatchesToWire(in []MatchResult) []WireMatchResult {
	out := make([]WireMatchResult, len(in))
	for i, m := range in {
		out[i] = WireMatchResult{
			Path:     m.Path,
			Line:     uint32(m.Line),
			Column:   uint32(m.Column),
			LineText: m.LineText,
		}
	}
	return out
}

// Handle runs req and folds a pattern error into the response.
func Handle(req Request) Response {
	matches, err := Search(req.Pattern, FilesFromWire(req.Files), req.CaseSensitive)
	if err != nil {
		return Response{Matches: []WireMatchResult{}, Error: err.Error()}
	}
	return Response{Matches: MatchesToWire(matches)}
}

// DecodeRequest reads a single Request document.
func DecodeRequest(r io.Reader) (Request, error) {
	var req Request
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return req, fmt.Errorf("decode request: %w", err)
	}
	return req, nil
}

// EncodeResponse writes resp as one JSON document.
func EncodeResponse(w io.Writer, resp Response) error {
	if resp.Matches == nil {
		resp.Matches = []WireMatchResult{}
	}
	return json.NewEncoder(w).Encode(resp)
}

// MarshalMatches pretty-prints matches as JSON for humans or pipelines.
func MarshalMatches(w io.Writer, matches []MatchResult) error {
	if matches == nil {
		matches = []MatchResult{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(matches)
}

// UnmarshalMatches decodes matches JSON, useful for ingestion tests.
func UnmarshalMatches(r io.Reader) ([]MatchResult, error) {
	var ms []MatchResult
	if err := json.NewDecoder(r).Decode(&ms); err != nil {
		return nil, err
	}
	return ms, nil
}
