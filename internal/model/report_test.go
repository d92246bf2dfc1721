package model

import (
	"strings"
	"testing"
)

func buildIssue(t *testing.T, fileName string, line int) Issue {
	t.Helper()
	b := NewIssueBuilder()
	defer b.Close()
	return b.SetFileName(fileName).SetLineStart(line).SetMessage("m").BuildAndClean()
}

func TestReportAppendsInOrder(t *testing.T) {
	r := NewReport()
	r.Add(buildIssue(t, "a.c", 1))
	r.Add(buildIssue(t, "b.c", 2))
	r.Add(buildIssue(t, "c.c", 3))

	if r.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", r.Size())
	}
	for i, want := range []string{"a.c", "b.c", "c.c"} {
		issue, err := r.Get(i)
		if err != nil {
			t.Fatalf("Get(%d) failed: %v", i, err)
		}
		if issue.FileName() != want {
			t.Errorf("Get(%d).FileName() = %q, want %q", i, issue.FileName(), want)
		}
	}
}

func TestReportKeepsDuplicates(t *testing.T) {
	r := NewReport()
	same := buildIssue(t, "dup.c", 10)
	r.Add(same)
	r.Add(same)

	if r.Size() != 2 {
		t.Errorf("Size() = %d, duplicates must not collapse", r.Size())
	}
}

func TestReportGetOutOfRange(t *testing.T) {
	r := NewReport()
	r.Add(buildIssue(t, "a.c", 1))

	tests := []struct {
		name  string
		index int
	}{
		{"negative", -1},
		{"at_size", 1},
		{"beyond_size", 99},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := r.Get(tt.index); err == nil {
				t.Errorf("Get(%d) should fail", tt.index)
			} else if !strings.Contains(err.Error(), "out of range") {
				t.Errorf("Get(%d) error = %v", tt.index, err)
			}
		})
	}
}

func TestReportIssuesReturnsCopy(t *testing.T) {
	r := NewReport()
	r.Add(buildIssue(t, "a.c", 1))

	issues := r.Issues()
	issues[0] = buildIssue(t, "tampered.c", 9)

	got, err := r.Get(0)
	if err != nil {
		t.Fatal(err)
	}
	if got.FileName() != "a.c" {
		t.Error("mutating the Issues() slice must not affect the report")
	}
}

func TestEmptyReportIsValid(t *testing.T) {
	r := NewReport()
	if r.Size() != 0 {
		t.Errorf("Size() = %d", r.Size())
	}
	if len(r.Issues()) != 0 {
		t.Error("Issues() of an empty report should be empty")
	}
}
