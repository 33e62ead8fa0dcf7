package render

import (
	"fmt"

	"github.com/KaramelBytes/statloom-cli/internal/report"
)

// Placeholder stands in for a value that could not be computed.
const Placeholder = "insufficient data"

const (
	ansiGreen = "\x1b[32m"
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

// Arrow maps a direction to its glyph, green for up and red for down when
// color is set.
func Arrow(d report.Direction, color bool) string {
	switch d {
	case report.Up:
		return paint("⬆", ansiGreen, color)
	case report.Down:
		return paint("⬇", ansiRed, color)
	default:
		return "➡"
	}
}

// Diff renders the percent difference of c with its arrow, e.g. "25.00% ⬆".
func Diff(c report.Comparison, color bool) string {
	if !c.Available {
		return Placeholder
	}
	return fmt.Sprintf("%.2f%% %s", c.PercentDiff, Arrow(c.Direction, color))
}

func paint(s, code string, color bool) string {
	if !color {
		return s
	}
	return code + s + ansiReset
}

func optional(p *float64, unit string) string {
	if p == nil {
		return Placeholder
	}
	return fmt.Sprintf("%.2f%s", *p, unit)
}

func optionalG(p *float64) string {
	if p == nil {
		return Placeholder
	}
	return fmt.Sprintf("%.4g", *p)
}
