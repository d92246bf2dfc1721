package model

import "fmt"

// Report is the ordered collection of Issues produced by one parse.
// Parsers append to it; afterwards it is read-only. Duplicates are kept:
// the size always equals the number of Add calls.
type Report struct {
	issues []Issue
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{}
}

// Add appends an issue, preserving insertion order.
func (r *Report) Add(issue Issue) {
	r.issues = append(r.issues, issue)
}

// Get returns the issue at index i.
func (r *Report) Get(i int) (Issue, error) {
	if i < 0 || i >= len(r.issues) {
		return Issue{}, fmt.Errorf("issue index %d out of range [0, %d)", i, len(r.issues))
	}
	return r.issues[i], nil
}

// Size returns the number of issues in the report.
func (r *Report) Size() int {
	return len(r.issues)
}

// Issues returns a copy of the issue sequence.
func (r *Report) Issues() []Issue {
	out := make([]Issue, len(r.issues))
	copy(out, r.issues)
	return out
}
