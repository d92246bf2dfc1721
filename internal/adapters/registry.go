package adapters

import "github.com/MarkEWaite/analysis-model/internal/parser"

// Format names accepted by the CLI and NewRegistry.
const (
	FormatFxCop    = "fxcop"
	FormatCppCheck = "cppcheck"
)

// NewRegistry returns a registry pre-wired with every adapter in this
// package. Lookups hand out fresh parser instances, so one registry can
// serve concurrent parses.
func NewRegistry() *parser.Registry {
	r := parser.NewRegistry()
	r.Register(FormatFxCop, func() parser.Parser { return NewFxCopParser() })
	r.Register(FormatCppCheck, func() parser.Parser { return NewCppCheckParser() })
	return r
}
