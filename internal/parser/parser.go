// Package parser defines the contract every tool-specific report adapter
// implements, the input-source abstraction the adapters consume, and the
// typed errors they fail with.
package parser

import (
	"context"

	"github.com/MarkEWaite/analysis-model/internal/model"
)

// Parser converts one tool's report format into a normalized Report.
//
// A Parser instance is not safe for concurrent use: any rule catalog or
// issue builder it holds is scoped to a single Parse call. Run parallel
// parses with one instance each. Instances may be reused sequentially;
// every Parse call establishes a fresh scope.
//
// Parse returns the report on success (zero issues is a valid outcome),
// a *ParsingError when the input does not match the expected schema, or
// a *ParsingCanceledError when ctx is canceled. On failure no partial
// report is returned. Cancellation is cooperative: adapters poll ctx at
// natural record boundaries, so it is observed within one record's work.
type Parser interface {
	Parse(ctx context.Context, src Source) (*model.Report, error)
}
