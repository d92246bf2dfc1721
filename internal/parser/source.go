package parser

import (
	"bytes"
	"io"
	"os"
)

// Source supplies the raw report document to a Parser, plus the name used
// in diagnostics. It is the minimal surface of the reader layer; encoding
// detection and friends live with the caller.
type Source interface {
	// Name identifies the source in error messages, typically a path.
	Name() string
	// Open returns a fresh reader over the document. Each call starts
	// from the beginning, so a source can be parsed more than once.
	Open() (io.ReadCloser, error)
}

// FileSource reads the report from a file on disk.
type FileSource struct {
	path string
}

// NewFileSource creates a source backed by the file at path.
func NewFileSource(path string) FileSource {
	return FileSource{path: path}
}

func (s FileSource) Name() string {
	return s.path
}

func (s FileSource) Open() (io.ReadCloser, error) {
	return os.Open(s.path)
}

// BytesSource reads the report from an in-memory buffer, mainly for tests
// and for callers that already slurped the file.
type BytesSource struct {
	name string
	data []byte
}

// NewBytesSource creates a source over data, identified by name in
// diagnostics.
func NewBytesSource(name string, data []byte) BytesSource {
	return BytesSource{name: name, data: data}
}

func (s BytesSource) Name() string {
	return s.name
}

func (s BytesSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(s.data)), nil
}
