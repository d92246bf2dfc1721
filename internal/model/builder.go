package model

import "sync"

// cachePool recycles the interned-string caches between parse passes so
// large batch runs do not reallocate one per file.
var cachePool = sync.Pool{
	New: func() any {
		return make(map[string]string)
	},
}

// IssueBuilder accumulates field values and materializes immutable Issues.
// A builder is meant to be reused for every issue of one parse pass: call
// the setters, then BuildAndClean, repeatedly. It holds an interned-string
// cache scoped to that pass (tool reports repeat the same paths and
// categories thousands of times); release it with Close when the pass
// ends, on every exit path.
//
// A builder must not be shared between goroutines.
type IssueBuilder struct {
	cache map[string]string

	fileName    string
	lineStart   int
	category    string
	issueType   string
	message     string
	description string
	severity    Severity
	lineRanges  LineRangeList
}

// NewIssueBuilder creates a builder with all fields at their defaults and
// a fresh interned-string cache.
func NewIssueBuilder() *IssueBuilder {
	return &IssueBuilder{
		cache:    cachePool.Get().(map[string]string),
		severity: SeverityWarningNormal,
	}
}

func (b *IssueBuilder) intern(s string) string {
	if b.cache == nil {
		return s
	}
	if cached, ok := b.cache[s]; ok {
		return cached
	}
	b.cache[s] = s
	return s
}

// SetFileName sets the normalized path of the affected file.
func (b *IssueBuilder) SetFileName(fileName string) *IssueBuilder {
	b.fileName = b.intern(fileName)
	return b
}

// SetLineStart sets the primary line of the finding.
func (b *IssueBuilder) SetLineStart(line int) *IssueBuilder {
	b.lineStart = line
	return b
}

// SetCategory sets the tool-specific category.
func (b *IssueBuilder) SetCategory(category string) *IssueBuilder {
	b.category = b.intern(category)
	return b
}

// SetType sets the tool-specific rule or check identifier.
func (b *IssueBuilder) SetType(issueType string) *IssueBuilder {
	b.issueType = b.intern(issueType)
	return b
}

// SetMessage sets the finding message.
func (b *IssueBuilder) SetMessage(message string) *IssueBuilder {
	b.message = message
	return b
}

// SetDescription sets the optional long-form description.
func (b *IssueBuilder) SetDescription(description string) *IssueBuilder {
	b.description = description
	return b
}

// SetSeverity sets an already-normalized severity.
func (b *IssueBuilder) SetSeverity(severity Severity) *IssueBuilder {
	b.severity = severity
	return b
}

// GuessSeverity derives the severity from a free-form tool level string
// via the shared heuristic.
func (b *IssueBuilder) GuessSeverity(level string) *IssueBuilder {
	b.severity = GuessSeverity(level)
	return b
}

// SetLineRanges sets additional line spans beyond the primary line.
func (b *IssueBuilder) SetLineRanges(ranges LineRangeList) *IssueBuilder {
	b.lineRanges = ranges.clone()
	return b
}

// BuildAndClean materializes one Issue from the pending state and resets
// every field to its default so the next issue starts from a pristine
// builder. The interned-string cache survives the reset.
func (b *IssueBuilder) BuildAndClean() Issue {
	issue := Issue{
		fileName:    b.fileName,
		lineStart:   b.lineStart,
		category:    b.category,
		issueType:   b.issueType,
		message:     b.message,
		description: b.description,
		severity:    b.severity,
		lineRanges:  b.lineRanges,
	}
	b.fileName = ""
	b.lineStart = 0
	b.category = ""
	b.issueType = ""
	b.message = ""
	b.description = ""
	b.severity = SeverityWarningNormal
	b.lineRanges = nil
	return issue
}

// Close releases the interned-string cache back to the pool. The builder
// must not be used afterwards; setters degrade to plain assignment but a
// closed builder belongs to a finished parse pass.
func (b *IssueBuilder) Close() error {
	if b.cache != nil {
		clear(b.cache)
		cachePool.Put(b.cache)
		b.cache = nil
	}
	return nil
}
