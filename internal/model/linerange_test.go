package model

import "testing"

func TestNewLineRange(t *testing.T) {
	tests := []struct {
		name          string
		start, end    int
		wantStartLine int
		wantEndLine   int
	}{
		{"full_range", 10, 20, 10, 20},
		{"single_line", 5, 5, 5, 5},
		{"end_derived_from_start", 51, 0, 51, 51},
		{"end_below_start", 30, 7, 30, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewLineRange(tt.start, tt.end)
			if r.Start() != tt.wantStartLine || r.End() != tt.wantEndLine {
				t.Errorf("got (%d, %d), want (%d, %d)", r.Start(), r.End(), tt.wantStartLine, tt.wantEndLine)
			}
		})
	}
}

func TestLineRangeValueEquality(t *testing.T) {
	if NewLineRange(51, 0) != SingleLine(51) {
		t.Error("ranges with equal (start, end) should be equal")
	}
	if NewLineRange(1, 2) == NewLineRange(1, 3) {
		t.Error("ranges with different ends should not be equal")
	}
}

func TestLineRangeListEqual(t *testing.T) {
	a := LineRangeList{SingleLine(1), SingleLine(2)}
	b := LineRangeList{SingleLine(1), SingleLine(2)}
	reversed := LineRangeList{SingleLine(2), SingleLine(1)}
	withDuplicate := LineRangeList{SingleLine(1), SingleLine(1)}

	if !a.Equal(b) {
		t.Error("identical lists should be equal")
	}
	if a.Equal(reversed) {
		t.Error("insertion order is significant")
	}
	if a.Equal(withDuplicate) {
		t.Error("lists with different elements should not be equal")
	}
	if len(withDuplicate) != 2 {
		t.Error("duplicates must be kept")
	}
}
