package output

import (
	"strings"
	"testing"
)

func TestVisualLenStripsANSI(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"plain", 5},
		{"\x1b[1;32mgreen\x1b[0m", 5},
		{"", 0},
		{"ünïcode", 7},
	}
	for _, tt := range tests {
		if got := visualLen(tt.in); got != tt.want {
			t.Errorf("visualLen(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestPad(t *testing.T) {
	if got := pad("ab", 5); got != "ab   " {
		t.Errorf("pad = %q", got)
	}
	if got := pad("abcdef", 3); got != "abcdef" {
		t.Errorf("pad should not truncate, got %q", got)
	}
	styled := "\x1b[1mab\x1b[0m"
	if got := pad(styled, 4); visualLen(got) != 4 {
		t.Errorf("padded visible width = %d, want 4", visualLen(got))
	}
}

func TestTableRender(t *testing.T) {
	SetNoColor(true)
	tbl := NewTable("PLAYER", "SCORE")
	tbl.AddRow("Keeper", "74")
	tbl.AddRow("A Much Longer Name", "81")

	out := tbl.Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header, rule, and 2 rows; got %d lines:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "PLAYER") || !strings.Contains(lines[0], "SCORE") {
		t.Errorf("header line = %q", lines[0])
	}
	if !strings.Contains(lines[3], "A Much Longer Name") {
		t.Errorf("row line = %q", lines[3])
	}
	// Column widths follow the widest cell.
	if !strings.Contains(lines[2], "Keeper            ") {
		t.Errorf("short cell not padded to column width: %q", lines[2])
	}
}

func TestTableRowShapeMismatch(t *testing.T) {
	tbl := NewTable("A", "B")
	tbl.AddRow("only")
	tbl.AddRow("one", "two", "extra")
	out := tbl.Render()
	if strings.Contains(out, "extra") {
		t.Error("extra cells should be dropped")
	}
}

func TestScoreBar(t *testing.T) {
	SetNoColor(true)
	bar := ScoreBar(80, 10)
	if got := strings.Count(bar, "█"); got != 8 {
		t.Errorf("filled segments = %d, want 8", got)
	}
	if got := strings.Count(bar, "░"); got != 2 {
		t.Errorf("empty segments = %d, want 2", got)
	}
	if !strings.Contains(bar, "80/100") {
		t.Errorf("missing score label: %q", bar)
	}

	if over := ScoreBar(150, 10); strings.Count(over, "░") != 0 {
		t.Errorf("over-range score should fill the bar: %q", over)
	}
	if under := ScoreBar(-5, 10); strings.Count(under, "█") != 0 {
		t.Errorf("negative score should empty the bar: %q", under)
	}
}
