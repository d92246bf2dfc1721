package storage

import (
	"path/filepath"
	"testing"

	"github.com/MarkEWaite/analysis-model/internal/model"
)

func testReport(t *testing.T) *model.Report {
	t.Helper()
	b := model.NewIssueBuilder()
	defer b.Close()

	report := model.NewReport()
	report.Add(b.SetFileName("a.cs").SetLineStart(1).SetType("CA1000").
		SetMessage("first").SetSeverity(model.SeverityError).BuildAndClean())
	report.Add(b.SetFileName("b.cs").SetLineStart(2).SetType("CA2000").
		SetMessage("second").SetSeverity(model.SeverityWarningLow).BuildAndClean())
	return report
}

func TestRecordAndListRuns(t *testing.T) {
	store, err := OpenHistory(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("OpenHistory failed: %v", err)
	}
	defer store.Close()

	runID, err := store.RecordRun("fxcop", "reports/fxcop.xml", testReport(t))
	if err != nil {
		t.Fatalf("RecordRun failed: %v", err)
	}
	if runID <= 0 {
		t.Errorf("run id = %d", runID)
	}

	runs, err := store.Runs(0)
	if err != nil {
		t.Fatalf("Runs failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("len(runs) = %d, want 1", len(runs))
	}

	run := runs[0]
	if run.Tool != "fxcop" || run.Source != "reports/fxcop.xml" {
		t.Errorf("run = %+v", run)
	}
	if run.Total != 2 || run.Errors != 1 || run.Low != 1 {
		t.Errorf("counts = total %d, errors %d, low %d", run.Total, run.Errors, run.Low)
	}
}

func TestRunsNewestFirstWithLimit(t *testing.T) {
	store, err := OpenHistory(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("OpenHistory failed: %v", err)
	}
	defer store.Close()

	for _, source := range []string{"one.xml", "two.xml", "three.xml"} {
		if _, err := store.RecordRun("cppcheck", source, testReport(t)); err != nil {
			t.Fatalf("RecordRun(%s) failed: %v", source, err)
		}
	}

	runs, err := store.Runs(2)
	if err != nil {
		t.Fatalf("Runs failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("len(runs) = %d, want 2", len(runs))
	}
	if runs[0].Source != "three.xml" || runs[1].Source != "two.xml" {
		t.Errorf("order = %q, %q", runs[0].Source, runs[1].Source)
	}
}
