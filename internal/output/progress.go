package output

import (
	"fmt"
	"strings"
)

// ScoreBar renders a visual progress bar for a 0-100 score.
// Example: "████████░░ 80/100"
func ScoreBar(score int, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := score * width / 100
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	var style func(string) string
	switch {
	case score >= 70:
		style = func(s string) string { return StyleSuccess.Render(s) }
	case score >= 40:
		style = func(s string) string { return StyleWarning.Render(s) }
	default:
		style = func(s string) string { return StyleError.Render(s) }
	}

	return fmt.Sprintf("%s %s", style(bar), StyleMuted.Render(fmt.Sprintf("%d/100", score)))
}

// MoodBar renders a mood on the 0-5 scale as a row of blocks, one per
// point, with the value after it.
// Example: "███▌░ 3.5"
func MoodBar(mood float64) string {
	if mood < 0 {
		mood = 0
	}
	if mood > 5 {
		mood = 5
	}
	full := int(mood)
	half := mood-float64(full) >= 0.5
	empty := 5 - full
	bar := strings.Repeat("█", full)
	if half {
		bar += "▌"
		empty--
	}
	bar += strings.Repeat("░", empty)

	return fmt.Sprintf("%s %s", StyleMood(mood, bar), StyleMuted.Render(fmt.Sprintf("%.1f", mood)))
}

// StyleMood colors s by how good the given mood is.
func StyleMood(mood float64, s string) string {
	switch {
	case mood >= 4:
		return StyleSuccess.Render(s)
	case mood >= 3:
		return StyleWarning.Render(s)
	case mood > 0:
		return StyleError.Render(s)
	default:
		return StyleMuted.Render(s)
	}
}

// Section prints a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", 66))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}
