package parser

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorKindsAreDistinguishable(t *testing.T) {
	src := NewBytesSource("report.xml", nil)

	var parseErr error = NewParsingError(src, "missing root element", nil)
	var cancelErr error = NewParsingCanceledError(src, context.Canceled)

	var pe *ParsingError
	if !errors.As(parseErr, &pe) {
		t.Error("ParsingError not recognized by errors.As")
	}
	if errors.As(parseErr, new(*ParsingCanceledError)) {
		t.Error("ParsingError must not match ParsingCanceledError")
	}

	var ce *ParsingCanceledError
	if !errors.As(cancelErr, &ce) {
		t.Error("ParsingCanceledError not recognized by errors.As")
	}
	if errors.As(cancelErr, new(*ParsingError)) {
		t.Error("ParsingCanceledError must not match ParsingError")
	}
}

func TestParsingCanceledErrorWrapsContextError(t *testing.T) {
	src := NewBytesSource("report.xml", nil)
	err := NewParsingCanceledError(src, context.Canceled)

	if !errors.Is(err, context.Canceled) {
		t.Error("canceled error should unwrap to context.Canceled")
	}
}

func TestParsingErrorMessageCarriesSource(t *testing.T) {
	src := NewFileSource("reports/fxcop.xml")
	err := NewParsingError(src, "reading XML document", fmt.Errorf("unexpected EOF"))

	msg := err.Error()
	for _, want := range []string{"reports/fxcop.xml", "reading XML document", "unexpected EOF"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message %q missing %q", msg, want)
		}
	}
}
