package model

// LineRange is an immutable (start, end) span of lines within a file,
// 1-based. A single-line range has start == end.
type LineRange struct {
	start int
	end   int
}

// NewLineRange creates a line range. An end of 0 (or any end below start)
// derives end from start, so NewLineRange(51, 0) is the single line 51.
func NewLineRange(start, end int) LineRange {
	if end < start {
		end = start
	}
	return LineRange{start: start, end: end}
}

// SingleLine creates a range covering exactly one line.
func SingleLine(line int) LineRange {
	return LineRange{start: line, end: line}
}

// Start returns the first line of the range.
func (r LineRange) Start() int { return r.start }

// End returns the last line of the range.
func (r LineRange) End() int { return r.end }

// LineRangeList is an ordered sequence of line ranges. Insertion order is
// significant (it reflects the order the tool reported the occurrences)
// and duplicates are allowed.
type LineRangeList []LineRange

// Equal reports element-wise equality with other.
func (l LineRangeList) Equal(other LineRangeList) bool {
	if len(l) != len(other) {
		return false
	}
	for i, r := range l {
		if r != other[i] {
			return false
		}
	}
	return true
}

func (l LineRangeList) clone() LineRangeList {
	if len(l) == 0 {
		return nil
	}
	out := make(LineRangeList, len(l))
	copy(out, l)
	return out
}
