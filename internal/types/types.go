package types

// FileInput is one unit of searchable text supplied by the caller.
type FileInput struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// MatchResult describes a single match occurrence: the file path, the 1-based
// line number, the 1-based byte column of the match start, and the full text of
// the line (without its terminator).
type MatchResult struct {
	Path     string `json:"path"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	LineText string `json:"line_text"`
}
