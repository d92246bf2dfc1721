package model

import "encoding/json"

// Issue is one normalized static-analysis finding. Issues are immutable
// once built; construct them through an IssueBuilder. Identity is
// positional within a Report — two semantically identical Issues are
// still two entries.
type Issue struct {
	fileName    string
	lineStart   int
	category    string
	issueType   string
	message     string
	description string
	severity    Severity
	lineRanges  LineRangeList
}

// FileName returns the normalized path of the affected file, or "" when
// the tool reported no location.
func (i Issue) FileName() string { return i.fileName }

// LineStart returns the primary line of the finding, 0 when absent.
func (i Issue) LineStart() int { return i.lineStart }

// Category returns the tool-specific category, possibly empty.
func (i Issue) Category() string { return i.category }

// Type returns the tool-specific rule or check identifier.
func (i Issue) Type() string { return i.issueType }

// Message returns the tool-supplied message, possibly enriched with rule
// catalog metadata by the adapter.
func (i Issue) Message() string { return i.message }

// Description returns the optional long-form description.
func (i Issue) Description() string { return i.description }

// Severity returns the normalized severity of the finding.
func (i Issue) Severity() Severity { return i.severity }

// LineRanges returns additional line spans beyond the primary line.
func (i Issue) LineRanges() LineRangeList { return i.lineRanges.clone() }

type issueJSON struct {
	FileName    string   `json:"fileName"`
	LineStart   int      `json:"lineStart"`
	Category    string   `json:"category,omitempty"`
	Type        string   `json:"type,omitempty"`
	Message     string   `json:"message"`
	Description string   `json:"description,omitempty"`
	Severity    Severity `json:"severity"`
	LineRanges  [][2]int `json:"lineRanges,omitempty"`
}

// MarshalJSON renders the issue for export and storage.
func (i Issue) MarshalJSON() ([]byte, error) {
	var ranges [][2]int
	for _, r := range i.lineRanges {
		ranges = append(ranges, [2]int{r.Start(), r.End()})
	}
	return json.Marshal(issueJSON{
		FileName:    i.fileName,
		LineStart:   i.lineStart,
		Category:    i.category,
		Type:        i.issueType,
		Message:     i.message,
		Description: i.description,
		Severity:    i.severity,
		LineRanges:  ranges,
	})
}
