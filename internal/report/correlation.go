package report

import (
	"math"
	"sort"

	"github.com/KaramelBytes/statloom-cli/internal/filter"
	"github.com/KaramelBytes/statloom-cli/internal/match"
	"github.com/KaramelBytes/statloom-cli/internal/stats"
)

// Pair is one off-diagonal correlation coefficient.
type Pair struct {
	A stats.Field `json:"a" yaml:"a"`
	B stats.Field `json:"b" yaml:"b"`
	R float64     `json:"r" yaml:"r"`
}

// CorrelationReport is the correlation matrix of a league/season scope.
// Empty League or Season means every league or season.
type CorrelationReport struct {
	League  string            `json:"league,omitempty" yaml:"league,omitempty"`
	Season  string            `json:"season,omitempty" yaml:"season,omitempty"`
	Matches int               `json:"matches" yaml:"matches"`
	Matrix  *stats.CorrMatrix `json:"matrix" yaml:"matrix"`
	// Pairs are sorted by |r| descending.
	Pairs []Pair `json:"pairs" yaml:"pairs"`
}

// Correlation computes the matrix for the records matching league and season.
func Correlation(all match.Subset, league, season string) (*CorrelationReport, error) {
	if league != "" {
		if err := filter.Require(all, filter.League, league); err != nil {
			return nil, err
		}
	}
	if season != "" {
		if err := filter.Require(all, filter.Season, season); err != nil {
			return nil, err
		}
	}
	sub := filter.Apply(all, optionalEq(filter.League, league), optionalEq(filter.Season, season))
	m, err := stats.Correlate(sub)
	if err != nil {
		return nil, err
	}
	return &CorrelationReport{
		League:  league,
		Season:  season,
		Matches: sub.Len(),
		Matrix:  m,
		Pairs:   TopPairs(m),
	}, nil
}

// TopPairs lists the upper triangle of m by decreasing |r|.
func TopPairs(m *stats.CorrMatrix) []Pair {
	var pairs []Pair
	for i := range m.Fields {
		for j := i + 1; j < len(m.Fields); j++ {
			pairs = append(pairs, Pair{A: m.Fields[i], B: m.Fields[j], R: m.Values[i][j]})
		}
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		return math.Abs(pairs[i].R) > math.Abs(pairs[j].R)
	})
	return pairs
}

func optionalEq(f filter.Field, v string) filter.Predicate {
	if v == "" {
		return nil
	}
	return filter.Eq(f, v)
}
