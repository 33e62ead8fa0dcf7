package report

import (
	"slices"
	"strings"

	"github.com/KaramelBytes/statloom-cli/internal/filter"
	"github.com/KaramelBytes/statloom-cli/internal/match"
)

// MatchQuery selects matches by exact categorical values. Empty fields do not
// filter.
type MatchQuery struct {
	League   string
	Season   string
	HomeTeam string
	AwayTeam string
}

type term struct {
	field filter.Field
	value string
}

func (q MatchQuery) terms() []term {
	return []term{
		{filter.League, q.League},
		{filter.Season, q.Season},
		{filter.HomeTeam, q.HomeTeam},
		{filter.AwayTeam, q.AwayTeam},
	}
}

// Matches returns the records matching q ordered by league, season, home
// team and away team. A value absent from all yields InvalidFilterError.
func Matches(all match.Subset, q MatchQuery) (match.Subset, error) {
	var preds []filter.Predicate
	for _, t := range q.terms() {
		if t.value == "" {
			continue
		}
		if err := filter.Require(all, t.field, t.value); err != nil {
			return nil, err
		}
		preds = append(preds, filter.Eq(t.field, t.value))
	}
	out := filter.Apply(all, preds...)
	slices.SortStableFunc(out, func(a, b match.Record) int {
		for _, c := range []int{
			strings.Compare(a.League, b.League),
			strings.Compare(a.Season, b.Season),
			strings.Compare(a.HomeTeam, b.HomeTeam),
			strings.Compare(a.AwayTeam, b.AwayTeam),
		} {
			if c != 0 {
				return c
			}
		}
		return 0
	})
	return out, nil
}
