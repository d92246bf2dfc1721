package adapters

import (
	"context"

	"github.com/beevik/etree"

	"github.com/MarkEWaite/analysis-model/internal/model"
	"github.com/MarkEWaite/analysis-model/internal/parser"
)

// CppCheckParser parses CppCheck XML version 2 reports. The first
// location of an error becomes the issue's file and line; any further
// locations are kept as additional line ranges. Errors without a
// location (CppCheck reports e.g. configuration problems that way) are
// still emitted, with empty location fields.
type CppCheckParser struct{}

// NewCppCheckParser creates a CppCheck report parser.
func NewCppCheckParser() *CppCheckParser {
	return &CppCheckParser{}
}

// Parse implements parser.Parser.
func (p *CppCheckParser) Parse(ctx context.Context, src parser.Source) (*model.Report, error) {
	rc, err := src.Open()
	if err != nil {
		return nil, parser.NewParsingError(src, "opening report", err)
	}
	defer rc.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(rc); err != nil {
		return nil, parser.NewParsingError(src, "reading XML document", err)
	}
	root := doc.SelectElement("results")
	if root == nil {
		return nil, parser.NewParsingError(src, "missing results root element", nil)
	}
	errorsEl := root.SelectElement("errors")
	if errorsEl == nil {
		return nil, parser.NewParsingError(src, "missing errors element", nil)
	}

	builder := model.NewIssueBuilder()
	defer builder.Close()

	report := model.NewReport()
	for _, errEl := range errorsEl.SelectElements("error") {
		if err := ctx.Err(); err != nil {
			return nil, parser.NewParsingCanceledError(src, err)
		}
		parseCppCheckError(errEl, builder, report)
	}
	return report, nil
}

func parseCppCheckError(errEl *etree.Element, builder *model.IssueBuilder, report *model.Report) {
	message := errEl.SelectAttrValue("verbose", "")
	if message == "" {
		message = errEl.SelectAttrValue("msg", "")
	}

	builder.
		SetType(errEl.SelectAttrValue("id", "")).
		SetMessage(message).
		SetSeverity(cppcheckSeverity(errEl.SelectAttrValue("severity", "")))

	locations := errEl.SelectElements("location")
	if len(locations) > 0 {
		builder.
			SetFileName(locations[0].SelectAttrValue("file", "")).
			SetLineStart(parseLine(locations[0].SelectAttrValue("line", "")))
		var ranges model.LineRangeList
		for _, loc := range locations[1:] {
			ranges = append(ranges, model.SingleLine(parseLine(loc.SelectAttrValue("line", ""))))
		}
		builder.SetLineRanges(ranges)
	}
	report.Add(builder.BuildAndClean())
}

// cppcheckSeverity maps CppCheck's fixed severity vocabulary. Anything
// outside it falls through to the shared heuristic, which defaults to
// WARNING_NORMAL.
func cppcheckSeverity(severity string) model.Severity {
	switch severity {
	case "error":
		return model.SeverityError
	case "warning":
		return model.SeverityWarningNormal
	case "style", "performance", "portability", "information", "debug":
		return model.SeverityWarningLow
	default:
		return model.GuessSeverity(severity)
	}
}
