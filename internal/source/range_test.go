package source

import (
	"testing"
)

func TestRange_FitsIn(t *testing.T) {
	tests := []struct {
		name     string
		r, other Range
		want     Range
		ok       bool
	}{
		{
			name:  "fully contained",
			r:     Range{Start: 5, End: 10},
			other: Range{Start: 1, End: 20},
			want:  Range{Start: 5, End: 10},
			ok:    true,
		},
		{
			name:  "identical ranges",
			r:     Range{Start: 3, End: 7},
			other: Range{Start: 3, End: 7},
			want:  Range{Start: 3, End: 7},
			ok:    true,
		},
		{
			name:  "start before other",
			r:     Range{Start: 1, End: 5},
			other: Range{Start: 2, End: 10},
			ok:    false,
		},
		{
			name:  "end after other",
			r:     Range{Start: 5, End: 15},
			other: Range{Start: 2, End: 10},
			ok:    false,
		},
		{
			name:  "disjoint",
			r:     Range{Start: 20, End: 30},
			other: Range{Start: 1, End: 10},
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.r.FitsIn(tt.other)
			if ok != tt.ok {
				t.Fatalf("FitsIn() ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("FitsIn() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRange_LooselyFitsIn(t *testing.T) {
	tests := []struct {
		name     string
		r, other Range
		want     Range
		ok       bool
	}{
		{
			name:  "partial overlap left",
			r:     Range{Start: 1, End: 5},
			other: Range{Start: 3, End: 10},
			want:  Range{Start: 3, End: 5},
			ok:    true,
		},
		{
			name:  "partial overlap right",
			r:     Range{Start: 8, End: 15},
			other: Range{Start: 3, End: 10},
			want:  Range{Start: 8, End: 10},
			ok:    true,
		},
		{
			name:  "touching at single position",
			r:     Range{Start: 10, End: 20},
			other: Range{Start: 1, End: 10},
			want:  Range{Start: 10, End: 10},
			ok:    true,
		},
		{
			name:  "contained",
			r:     Range{Start: 4, End: 6},
			other: Range{Start: 1, End: 10},
			want:  Range{Start: 4, End: 6},
			ok:    true,
		},
		{
			name:  "disjoint before",
			r:     Range{Start: 1, End: 2},
			other: Range{Start: 5, End: 10},
			ok:    false,
		},
		{
			name:  "disjoint after",
			r:     Range{Start: 11, End: 12},
			other: Range{Start: 5, End: 10},
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.r.LooselyFitsIn(tt.other)
			if ok != tt.ok {
				t.Fatalf("LooselyFitsIn() ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("LooselyFitsIn() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRange_Merge(t *testing.T) {
	tests := []struct {
		name     string
		r, other Range
		want     Range
	}{
		{
			name:  "disjoint spans both",
			r:     Range{Start: 1, End: 3},
			other: Range{Start: 8, End: 10},
			want:  Range{Start: 1, End: 10},
		},
		{
			name:  "contained keeps outer",
			r:     Range{Start: 1, End: 10},
			other: Range{Start: 4, End: 6},
			want:  Range{Start: 1, End: 10},
		},
		{
			name:  "overlapping",
			r:     Range{Start: 5, End: 10},
			other: Range{Start: 1, End: 7},
			want:  Range{Start: 1, End: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Merge(tt.other); got != tt.want {
				t.Errorf("Merge() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRange_Set(t *testing.T) {
	var r Range
	r.Set(5, 10)
	if r.Start != 5 || r.End != 10 {
		t.Errorf("Set(5, 10) = %+v", r)
	}
	// reversed bounds are swapped to preserve the invariant
	r.Set(10, 5)
	if r.Start != 5 || r.End != 10 {
		t.Errorf("Set(10, 5) = %+v, want swapped bounds", r)
	}
}

func TestRange_Len(t *testing.T) {
	if got := (Range{Start: 5, End: 5}).Len(); got != 1 {
		t.Errorf("single position Len() = %d, want 1", got)
	}
	if got := (Range{Start: 3, End: 7}).Len(); got != 5 {
		t.Errorf("Len() = %d, want 5", got)
	}
}
