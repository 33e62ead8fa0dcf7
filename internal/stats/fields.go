// Package stats computes descriptive aggregates and correlations over match
// record subsets.
package stats

import (
	"strings"

	"github.com/KaramelBytes/statloom-cli/internal/match"
	"github.com/cockroachdb/errors"
)

// Field names a numeric record attribute.
type Field string

const (
	HomeGoals      Field = "home_goals"
	AwayGoals      Field = "away_goals"
	HomeGoalsFH    Field = "home_goals_fh"
	AwayGoalsFH    Field = "away_goals_fh"
	FirstHalfGoals Field = "first_half_goals"
	HomeWinOdds    Field = "home_win_odds"
	DrawOdds       Field = "draw_odds"
	AwayWinOdds    Field = "away_win_odds"
	HomePossession Field = "home_possession"
	AwayPossession Field = "away_possession"
)

// Fields lists every numeric field.
var Fields = []Field{
	HomeGoals, AwayGoals, HomeGoalsFH, AwayGoalsFH, FirstHalfGoals,
	HomeWinOdds, DrawOdds, AwayWinOdds, HomePossession, AwayPossession,
}

var labels = map[Field]string{
	HomeGoals:      match.ColHomeGoals,
	AwayGoals:      match.ColAwayGoals,
	HomeGoalsFH:    match.ColHomeGoalsFH,
	AwayGoalsFH:    match.ColAwayGoalsFH,
	FirstHalfGoals: "First Half Goals",
	HomeWinOdds:    match.ColHomeWinOdds,
	DrawOdds:       match.ColDrawOdds,
	AwayWinOdds:    match.ColAwayWinOdds,
	HomePossession: match.ColHomePossession,
	AwayPossession: match.ColAwayPossession,
}

// Label is the source column name of the field.
func (f Field) Label() string {
	if l, ok := labels[f]; ok {
		return l
	}
	return string(f)
}

// Value reads the field. ok is false for a null (possession only).
func (f Field) Value(r match.Record) (v float64, ok bool) {
	switch f {
	case HomeGoals:
		return float64(r.HomeGoals), true
	case AwayGoals:
		return float64(r.AwayGoals), true
	case HomeGoalsFH:
		return float64(r.HomeGoalsFH), true
	case AwayGoalsFH:
		return float64(r.AwayGoalsFH), true
	case FirstHalfGoals:
		return float64(r.FirstHalfGoals()), true
	case HomeWinOdds:
		return r.HomeWinOdds, true
	case DrawOdds:
		return r.DrawOdds, true
	case AwayWinOdds:
		return r.AwayWinOdds, true
	case HomePossession:
		return deref(r.HomePossession)
	case AwayPossession:
		return deref(r.AwayPossession)
	}
	return 0, false
}

func deref(p *float64) (float64, bool) {
	if p == nil {
		return 0, false
	}
	return *p, true
}

// ParseField accepts the field key ("home_goals") or its column label
// ("Home Goals FH").
func ParseField(s string) (Field, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	for _, f := range Fields {
		if string(f) == strings.NewReplacer(" ", "_", "-", "_").Replace(norm) || strings.ToLower(f.Label()) == norm {
			return f, nil
		}
	}
	return "", errors.Newf("unknown numeric field %q", s)
}

// Values returns the non-null values of f in record order.
func Values(s match.Subset, f Field) []float64 {
	out := make([]float64, 0, len(s))
	for _, r := range s {
		if v, ok := f.Value(r); ok {
			out = append(out, v)
		}
	}
	return out
}
