package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestVisualLen_PlainText(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"hello", 5},
		{"", 0},
		{"abc def", 7},
	}

	for _, tc := range tests {
		got := visualLen(tc.input)
		if got != tc.want {
			t.Errorf("visualLen(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestVisualLen_StripsANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"bold", "\x1b[1mhello\x1b[0m", 5},
		{"color", "\x1b[31mred\x1b[0m", 3},
		{"multiple sequences", "\x1b[1m\x1b[34mblue bold\x1b[0m", 9},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := visualLen(tc.input); got != tc.want {
				t.Errorf("visualLen() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestPad(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  int
	}{
		{"needs padding", "hi", 10, 10},
		{"exact width", "hello", 5, 5},
		{"over width", "toolong", 3, 7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := pad(tc.input, tc.width)
			if visualLen(got) != tc.want {
				t.Errorf("pad(%q, %d) width = %d, want %d", tc.input, tc.width, visualLen(got), tc.want)
			}
		})
	}
}

func TestTable_Render(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	tbl := NewTable("Date", "Mood")
	tbl.AddRow("2026-03-14", "4/5")
	tbl.AddRow("2026-03-13", "2/5")

	out := tbl.Render()
	for _, want := range []string{"Date", "Mood", "2026-03-14", "2/5", "─"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output", want)
		}
	}

	// header + separator + 2 data rows
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Errorf("expected 4 lines, got %d", len(lines))
	}
	if tbl.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tbl.Len())
	}
}

func TestTable_EmptyHeaders(t *testing.T) {
	if out := NewTable().Render(); out != "" {
		t.Errorf("expected empty output for empty table, got %q", out)
	}
}

func TestTable_ExtraValuesDropped(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	tbl := NewTable("A")
	tbl.AddRow("x", "ignored")
	if strings.Contains(tbl.Render(), "ignored") {
		t.Error("values beyond the header count should be dropped")
	}
}

func TestTable_AlignRight(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	tbl := NewTable("Tag", "Count").AlignRight(1, 5)
	tbl.AddRow("exercise", "3")
	tbl.AddRow("work", "12")

	lines := strings.Split(strings.TrimRight(tbl.Render(), "\n"), "\n")
	if lines[2] != "exercise      3" {
		t.Errorf("row 1 = %q", lines[2])
	}
	if lines[3] != "work         12" {
		t.Errorf("row 2 = %q", lines[3])
	}
}

func TestTable_MaxWidth(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	tbl := NewTable("Notes").MaxWidth(0, 8).MaxWidth(3, 1)
	tbl.AddRow("a very long note about the day")

	out := tbl.Render()
	if !strings.Contains(out, "a ver...") {
		t.Errorf("expected truncated cell, got %q", out)
	}
	if strings.Contains(out, "note") {
		t.Errorf("cell was not truncated: %q", out)
	}
}

func TestTable_Fprint(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	tbl := NewTable("Col1")
	tbl.AddRow("Val1")

	var buf bytes.Buffer
	tbl.Fprint(&buf)
	if buf.String() != tbl.String() {
		t.Error("Fprint output differs from String()")
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Truncate() = %q", got)
	}
	if got := Truncate("a long journal line", 10); got != "a long ..." {
		t.Errorf("Truncate() = %q", got)
	}
}

func TestScoreBar(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	got := ScoreBar(65, 20)
	if !strings.HasPrefix(got, strings.Repeat("█", 13)+strings.Repeat("░", 7)) {
		t.Errorf("unexpected bar %q", got)
	}
	if !strings.HasSuffix(got, "65/100") {
		t.Errorf("expected score suffix, got %q", got)
	}
	if full := ScoreBar(150, 10); strings.Contains(full, "░") {
		t.Errorf("over-range score should fill the bar, got %q", full)
	}
}

func TestMoodBar(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	tests := map[float64]string{
		0:   "░░░░░ 0.0",
		3.5: "███▌░ 3.5",
		5:   "█████ 5.0",
		4.2: "████░ 4.2",
	}
	for mood, want := range tests {
		if got := MoodBar(mood); got != want {
			t.Errorf("MoodBar(%v) = %q, want %q", mood, got, want)
		}
	}
}

func TestSetNoColor(t *testing.T) {
	SetNoColor(true)
	if rendered := StyleHeader.Render("test"); strings.Contains(rendered, "\x1b[") {
		t.Error("expected no ANSI codes after SetNoColor(true)")
	}
	if !IsNoColor() {
		t.Error("IsNoColor() should be true")
	}
	SetNoColor(false)
}
