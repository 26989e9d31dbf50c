package ui

import "testing"

func TestPauseButton(t *testing.T) {
	l := NewLayout(1280, 720)
	tests := []struct {
		x, y int
		want bool
	}{
		{20, 325, true},
		{100, 345, true},
		{60, 335, true},
		{19, 335, false},
		{101, 335, false},
		{60, 324, false},
		{60, 346, false},
		{60, 720 - 330, false},
	}
	for _, tt := range tests {
		if got := l.InPauseButton(tt.x, tt.y); got != tt.want {
			t.Errorf("InPauseButton(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestListRow(t *testing.T) {
	l := NewLayout(1280, 720)
	tests := []struct {
		x, y    int
		wantRow int
		wantOK  bool
	}{
		{1130, 35, 0, true},
		{1130, 50, 0, true},
		{1130, 54, 0, true},
		{1130, 55, 1, true},
		{1260, 70, 1, true},
		{1130, 215, 9, true},
		{1130, 500, 23, true},
		{1130, 34, 0, false},
		{1129, 50, 0, false},
		{1261, 50, 0, false},
		{40, 50, 0, false},
	}
	for _, tt := range tests {
		row, ok := l.ListRow(tt.x, tt.y)
		if ok != tt.wantOK || (ok && row != tt.wantRow) {
			t.Errorf("ListRow(%d, %d) = %d, %v; want %d, %v", tt.x, tt.y, row, ok, tt.wantRow, tt.wantOK)
		}
	}
}

func TestRowBaselineMatchesHitBand(t *testing.T) {
	l := NewLayout(1280, 720)
	for i := 0; i < 10; i++ {
		base := l.RowBaseline(i)
		if base != 50+i*20 {
			t.Fatalf("RowBaseline(%d) = %d, want %d", i, base, 50+i*20)
		}
		if row, ok := l.ListRow(l.ListX+5, base); !ok || row != i {
			t.Fatalf("click on row %d baseline hit row %d (ok=%v)", i, row, ok)
		}
	}
}
