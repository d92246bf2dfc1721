// Package sarif renders normalized reports as SARIF 2.1.0 logs.
package sarif

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/MarkEWaite/analysis-model/internal/model"
)

type Log struct {
	Version string `json:"version"`
	Schema  string `json:"$schema"`
	Runs    []Run  `json:"runs"`
}

type Run struct {
	Tool    Tool     `json:"tool"`
	Results []Result `json:"results"`
}

type Tool struct {
	Driver Driver `json:"driver"`
}

type Driver struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type Result struct {
	RuleID    string     `json:"ruleId"`
	Message   Message    `json:"message"`
	Level     string     `json:"level"` // error, warning, note
	Locations []Location `json:"locations"`
}

type Message struct {
	Text string `json:"text"`
}

type Location struct {
	PhysicalLocation PhysicalLocation `json:"physicalLocation"`
}

type PhysicalLocation struct {
	ArtifactLocation ArtifactLocation `json:"artifactLocation"`
	Region           Region           `json:"region"`
}

type ArtifactLocation struct {
	URI string `json:"uri"`
}

type Region struct {
	StartLine int `json:"startLine"`
}

// Build converts a report into an in-memory SARIF log.
func Build(report *model.Report, toolName, toolVersion string) Log {
	issues := report.Issues()
	results := make([]Result, 0, len(issues))
	for _, issue := range issues {
		fileURI := toURI(issue.FileName())
		if strings.TrimSpace(fileURI) == "" {
			fileURI = "UNKNOWN"
		}
		start := issue.LineStart()
		if start <= 0 {
			start = 1
		}

		results = append(results, Result{
			RuleID: issue.Type(),
			Level:  sevToLevel(issue.Severity()),
			Message: Message{
				Text: strings.TrimSpace(issue.Message()),
			},
			Locations: []Location{
				{
					PhysicalLocation: PhysicalLocation{
						ArtifactLocation: ArtifactLocation{
							URI: fileURI,
						},
						Region: Region{
							StartLine: start,
						},
					},
				},
			},
		})
	}

	return Log{
		Version: "2.1.0",
		// schema RTM recognized by GitHub/VSCode
		Schema: "https://schemastore.azurewebsites.net/schemas/json/sarif-2.1.0-rtm.5.json",
		Runs: []Run{
			{
				Tool: Tool{
					Driver: Driver{
						Name:    toolName,
						Version: toolVersion,
					},
				},
				Results: results,
			},
		},
	}
}

// Export writes the report as a .sarif file under outDir and returns the
// written path.
func Export(report *model.Report, outDir, fileBase, toolName, toolVersion string) (string, error) {
	log := Build(report, toolName, toolVersion)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("creating sarif dir: %w", err)
	}
	outPath := filepath.Join(outDir, fileBase+".sarif")

	data, err := json.MarshalIndent(log, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal sarif: %w", err)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return "", fmt.Errorf("writing sarif: %w", err)
	}
	return outPath, nil
}

// SortIssues orders issues for deterministic output files. Reports
// themselves stay in tool order; sort a copy.
func SortIssues(issues []model.Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].FileName() == issues[j].FileName() {
			if issues[i].LineStart() == issues[j].LineStart() {
				return issues[i].Type() < issues[j].Type()
			}
			return issues[i].LineStart() < issues[j].LineStart()
		}
		return issues[i].FileName() < issues[j].FileName()
	})
}

func sevToLevel(s model.Severity) string {
	switch s {
	case model.SeverityError:
		return "error"
	case model.SeverityWarningHigh, model.SeverityWarningNormal:
		return "warning"
	default:
		return "note"
	}
}

func toURI(p string) string {
	p = strings.TrimSpace(p)
	p = filepath.ToSlash(p)
	for strings.HasPrefix(p, "../") {
		p = strings.TrimPrefix(p, "../")
	}
	return strings.TrimPrefix(p, "./")
}
