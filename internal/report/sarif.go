package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/simplefind/simplefind/internal/types"
)

const sarifRuleID = "pattern-match"

type sarif struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool    sarifTool     `json:"tool"`
	Results []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name    string      `json:"name"`
	Version string      `json:"version"`
	Rules   []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string       `json:"id"`
	ShortDescription sarifMessage `json:"shortDescription"`
}

type sarifResult struct {
	RuleID    string       `json:"ruleId"`
	RuleIndex int          `json:"ruleIndex"`
	Level     string       `json:"level"`
	Message   sarifMessage `json:"message"`
	Locations []sarifLoc   `json:"locations"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLoc struct {
	PhysicalLocation sarifPhys `json:"physicalLocation"`
}

type sarifPhys struct {
	ArtifactLocation sarifArt    `json:"artifactLocation"`
	Region           sarifRegion `json:"region"`
}

type sarifArt struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine   int          `json:"startLine"`
	StartColumn int          `json:"startColumn"`
	Snippet     sarifMessage `json:"snippet"`
}

// WriteSARIF writes matches as SARIF 2.1.0 to the provided writer. pattern is
// echoed in each result message.
func WriteSARIF(w io.Writer, matches []types.MatchResult, pattern, version string) error {
	run := sarifRun{
		Tool: sarifTool{Driver: sarifDriver{
			Name:    "simplefind",
			Version: version,
			Rules: []sarifRule{{
				ID:               sarifRuleID,
				ShortDescription: sarifMessage{Text: "Line matches the search pattern"},
			}},
		}},
		Results: []sarifResult{},
	}
	for _, m := range matches {
		run.Results = append(run.Results, sarifResult{
			RuleID:  sarifRuleID,
			Level:   "note",
			Message: sarifMessage{Text: fmt.Sprintf("match for %q", pattern)},
			Locations: []sarifLoc{{
				PhysicalLocation: sarifPhys{
					ArtifactLocation: sarifArt{URI: m.Path},
					Region: sarifRegion{
						StartLine:   m.Line,
						StartColumn: m.Column,
						Snippet:     sarifMessage{Text: m.LineText},
					},
				},
			}},
		})
	}
	doc := sarif{
		Schema:  "https://json.schemastore.org/sarif-2.1.0.json",
		Version: "2.1.0",
		Runs:    []sarifRun{run},
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
