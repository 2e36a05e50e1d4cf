package source

import (
	"testing"
)

func TestSpan_ShiftLeft(t *testing.T) {
	tests := []struct {
		name     string
		span     Span
		shift    uint32
		expected Span
	}{
		{
			name:     "shift normal span left by 5",
			span:     Span{File: 1, Start: 10, End: 20},
			shift:    5,
			expected: Span{File: 1, Start: 5, End: 15},
		},
		{
			name:     "shift equals start - boundary case",
			span:     Span{File: 1, Start: 10, End: 20},
			shift:    10,
			expected: Span{File: 1, Start: 0, End: 10},
		},
		{
			name:     "shift larger than start - returns original",
			span:     Span{File: 1, Start: 10, End: 20},
			shift:    15,
			expected: Span{File: 1, Start: 10, End: 20},
		},
		{
			name:     "shift zero-length span",
			span:     Span{File: 1, Start: 10, End: 10},
			shift:    3,
			expected: Span{File: 1, Start: 7, End: 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.span.ShiftLeft(tt.shift); got != tt.expected {
				t.Errorf("ShiftLeft(%d) = %v, want %v", tt.shift, got, tt.expected)
			}
		})
	}
}

func TestSpan_Cover(t *testing.T) {
	a := Span{File: 0, Start: 4, End: 8}
	b := Span{File: 0, Start: 1, End: 5}
	if got := a.Cover(b); got != (Span{File: 0, Start: 1, End: 8}) {
		t.Fatalf("Cover = %v", got)
	}
	other := Span{File: 3, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Fatalf("cover across files must keep receiver, got %v", got)
	}
}

func TestSpan_ContainsAndAtEnd(t *testing.T) {
	sp := NewSpan(2, 3, 4)
	if sp.End != 7 || sp.Len() != 4 {
		t.Fatalf("NewSpan = %v", sp)
	}
	if !sp.Contains(3) || !sp.Contains(6) || sp.Contains(7) {
		t.Fatalf("Contains is not half-open for %v", sp)
	}
	end := sp.AtEnd()
	if !end.Empty() || end.Start != 7 {
		t.Fatalf("AtEnd = %v", end)
	}
}
