// Package report builds the structured results shown to users: league versus
// overall comparisons, head-to-head summaries and team profiles.
package report

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Direction classifies a league value against the overall value.
type Direction int

const (
	Neutral Direction = iota
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "neutral"
	}
}

// MarshalText renders the direction by name in JSON and YAML output.
func (d Direction) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText parses a direction name.
func (d *Direction) UnmarshalText(b []byte) error {
	switch string(b) {
	case "up":
		*d = Up
	case "down":
		*d = Down
	case "neutral":
		*d = Neutral
	default:
		return errors.Newf("unknown direction %q", b)
	}
	return nil
}

// Comparison is one statistic computed for a subset and for the whole dataset.
type Comparison struct {
	Label            string    `json:"label" yaml:"label"`
	Unit             string    `json:"unit,omitempty" yaml:"unit,omitempty"`
	LeagueValue      float64   `json:"league_value" yaml:"league_value"`
	OverallValue     float64   `json:"overall_value" yaml:"overall_value"`
	PercentDiff      float64   `json:"percent_diff" yaml:"percent_diff"`
	Direction        Direction `json:"direction" yaml:"direction"`
	FormattedOverall string    `json:"formatted_overall" yaml:"formatted_overall"`
	// Available is false when either side had insufficient data; Reason says why.
	Available bool   `json:"available" yaml:"available"`
	Reason    string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// PercentDiff is (league-overall)/overall*100, or 0 when overall is 0.
func PercentDiff(league, overall float64) float64 {
	if overall == 0 {
		return 0
	}
	return (league - overall) / overall * 100
}

// Classify returns Up, Down or Neutral for league against overall.
func Classify(league, overall float64) Direction {
	switch {
	case league > overall:
		return Up
	case league < overall:
		return Down
	default:
		return Neutral
	}
}

// Compare builds a Comparison for a unitless statistic.
func Compare(label string, league, overall float64) Comparison {
	return compareUnit(label, "", league, overall)
}

func compareUnit(label, unit string, league, overall float64) Comparison {
	return Comparison{
		Label:            label,
		Unit:             unit,
		LeagueValue:      league,
		OverallValue:     overall,
		PercentDiff:      PercentDiff(league, overall),
		Direction:        Classify(league, overall),
		FormattedOverall: fmt.Sprintf("%.2f%s", overall, unit),
		Available:        true,
	}
}

func unavailable(label, unit string, err error) Comparison {
	return Comparison{Label: label, Unit: unit, Reason: err.Error()}
}
