package adapters

import (
	"context"
	"errors"
	"testing"

	"github.com/MarkEWaite/analysis-model/internal/model"
	"github.com/MarkEWaite/analysis-model/internal/parser"
)

func parseCppCheck(t *testing.T, doc string) *model.Report {
	t.Helper()
	report, err := NewCppCheckParser().Parse(context.Background(),
		parser.NewBytesSource("cppcheck.xml", []byte(doc)))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	return report
}

func TestCppCheckParsesAllErrors(t *testing.T) {
	doc := `<results version="2">
  <cppcheck version="1.84"/>
  <errors>
    <error id="variableScope" severity="style" msg="The scope of the variable 'i' can be reduced." verbose="The scope of the variable 'i' can be reduced. Be careful when fixing.">
      <location file="api.c" line="498"/>
    </error>
    <error id="nullPointer" severity="error" msg="Possible null pointer dereference: p">
      <location file="api.c" line="42"/>
    </error>
    <error id="variableScope" severity="style" msg="The scope of the variable 'i' can be reduced.">
      <location file="api_storage.c" line="104"/>
    </error>
  </errors>
</results>`

	report := parseCppCheck(t, doc)
	if report.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", report.Size())
	}

	first := mustGet(t, report, 0)
	if first.FileName() != "api.c" || first.LineStart() != 498 {
		t.Errorf("location = %q:%d", first.FileName(), first.LineStart())
	}
	if first.Type() != "variableScope" {
		t.Errorf("Type() = %q", first.Type())
	}
	if first.Message() != "The scope of the variable 'i' can be reduced. Be careful when fixing." {
		t.Errorf("verbose text should win, got %q", first.Message())
	}
	if first.Severity() != model.SeverityWarningLow {
		t.Errorf("style severity = %v", first.Severity())
	}

	second := mustGet(t, report, 1)
	if second.Severity() != model.SeverityError {
		t.Errorf("error severity = %v", second.Severity())
	}
	if second.Message() != "Possible null pointer dereference: p" {
		t.Errorf("msg fallback, got %q", second.Message())
	}
}

func TestCppCheckMultipleLocationsBecomeLineRanges(t *testing.T) {
	doc := `<results version="2">
  <errors>
    <error id="redundantAssignment" severity="style" msg="Variable 'it' is reassigned a value before the old one has been used.">
      <location file="apps/cloud_composer/src/point_selectors/rectangular_frustum_selector.cpp" line="53"/>
      <location file="apps/cloud_composer/src/point_selectors/rectangular_frustum_selector.cpp" line="51"/>
    </error>
    <error id="knownConditionTrueFalse" severity="style" msg="Condition 'rc' is always true">
      <location file="surface/src/3rdparty/opennurbs/opennurbs_brep_tools.cpp" line="346"/>
      <location file="surface/src/3rdparty/opennurbs/opennurbs_brep_tools.cpp" line="335"/>
    </error>
  </errors>
</results>`

	report := parseCppCheck(t, doc)
	if report.Size() != 2 {
		t.Fatalf("Size() = %d, want 2", report.Size())
	}

	first := mustGet(t, report, 0)
	if first.LineStart() != 53 {
		t.Errorf("LineStart() = %d, want 53", first.LineStart())
	}
	if !first.LineRanges().Equal(model.LineRangeList{model.SingleLine(51)}) {
		t.Errorf("LineRanges() = %v, want [51]", first.LineRanges())
	}

	second := mustGet(t, report, 1)
	if second.LineStart() != 346 {
		t.Errorf("LineStart() = %d, want 346", second.LineStart())
	}
	if !second.LineRanges().Equal(model.LineRangeList{model.SingleLine(335)}) {
		t.Errorf("LineRanges() = %v, want [335]", second.LineRanges())
	}
}

func TestCppCheckSameIdDifferentFilesStayDistinct(t *testing.T) {
	doc := `<results version="2">
  <errors>
    <error id="redundantAssignment" severity="style" msg="Variable 'it' is reassigned a value before the old one has been used.">
      <location file="apps/selector.cpp" line="53"/>
    </error>
    <error id="redundantAssignment" severity="style" msg="Variable 'that' is reassigned a value before the old one has been used.">
      <location file="that/selector.cpp" line="53"/>
    </error>
  </errors>
</results>`

	report := parseCppCheck(t, doc)
	if report.Size() != 2 {
		t.Fatalf("Size() = %d, want 2", report.Size())
	}
	first := mustGet(t, report, 0)
	second := mustGet(t, report, 1)
	if first.FileName() == second.FileName() {
		t.Error("issues sharing an id must keep their own file names")
	}
	if first.Type() != second.Type() {
		t.Error("both issues should keep the shared id")
	}
}

func TestCppCheckErrorWithoutLocation(t *testing.T) {
	doc := `<results version="2">
  <errors>
    <error id="missingInclude" severity="information" msg="Cppcheck cannot find all the include files"/>
  </errors>
</results>`

	report := parseCppCheck(t, doc)
	if report.Size() != 1 {
		t.Fatalf("Size() = %d, want 1", report.Size())
	}
	issue := mustGet(t, report, 0)
	if issue.FileName() != "" || issue.LineStart() != 0 {
		t.Errorf("locationless error got location %q:%d", issue.FileName(), issue.LineStart())
	}
	if len(issue.LineRanges()) != 0 {
		t.Errorf("LineRanges() = %v, want empty", issue.LineRanges())
	}
}

func TestCppCheckMalformedInput(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"wrong_root", `<report><errors/></report>`},
		{"missing_errors", `<results version="2"/>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCppCheckParser().Parse(context.Background(),
				parser.NewBytesSource("cppcheck.xml", []byte(tt.doc)))
			var parseErr *parser.ParsingError
			if !errors.As(err, &parseErr) {
				t.Errorf("want ParsingError, got %v", err)
			}
		})
	}
}

func TestCppCheckCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	doc := `<results version="2"><errors>
    <error id="x" severity="error" msg="m"><location file="a.c" line="1"/></error>
  </errors></results>`
	_, err := NewCppCheckParser().Parse(ctx, parser.NewBytesSource("cppcheck.xml", []byte(doc)))

	var canceled *parser.ParsingCanceledError
	if !errors.As(err, &canceled) {
		t.Fatalf("want ParsingCanceledError, got %v", err)
	}
}
