package ui

import "testing"

func TestColumnsFor(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{0, 1},
		{20, 1},
		{CardMinWidth, 1},
		{64, 2},
		{100, 3},
		{140, 4},
		{400, MaxColumns},
	}
	for _, tc := range tests {
		if got := columnsFor(tc.width); got != tc.want {
			t.Fatalf("columnsFor(%d) = %d, want %d", tc.width, got, tc.want)
		}
	}
}

func TestCardWidthFor(t *testing.T) {
	if got := cardWidthFor(120); got != 40 {
		t.Fatalf("cardWidthFor(120) = %d, want 40", got)
	}
	if got := cardWidthFor(20); got != 20 {
		t.Fatalf("cardWidthFor(20) = %d, want 20", got)
	}
	if got := cardWidthFor(3); got != 8 {
		t.Fatalf("cardWidthFor(3) = %d, want 8", got)
	}
}

func TestViewportHeightFor(t *testing.T) {
	if got := viewportHeightFor(24); got != 20 {
		t.Fatalf("viewportHeightFor(24) = %d, want 20", got)
	}
	if got := viewportHeightFor(2); got != 1 {
		t.Fatalf("viewportHeightFor(2) = %d, want 1", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"Leanne Graham", 0, "Leanne Graham"},
		{"Leanne Graham", 20, "Leanne Graham"},
		{"Leanne Graham", 9, "Leanne..."},
		{"Leanne", 2, "Le"},
		{"  padded  ", 10, "padded"},
	}
	for _, tc := range tests {
		if got := truncate(tc.in, tc.limit); got != tc.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
		}
	}
}
