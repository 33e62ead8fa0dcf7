package report

import (
	"runtime"
	"sort"

	"github.com/KaramelBytes/statloom-cli/internal/filter"
	"github.com/KaramelBytes/statloom-cli/internal/match"
	"github.com/KaramelBytes/statloom-cli/internal/stats"
	"github.com/cockroachdb/errors"
	"github.com/sourcegraph/conc/pool"
)

type statistic struct {
	label   string
	unit    string
	compute func(match.Subset) (float64, error)
}

func meanOf(f stats.Field) func(match.Subset) (float64, error) {
	return func(s match.Subset) (float64, error) { return stats.Mean(s, f) }
}

func rateOf(pred func(match.Record) bool) func(match.Subset) (float64, error) {
	return func(s match.Subset) (float64, error) { return stats.Rate(s, pred) }
}

// leagueStatistics are compared in this order.
var leagueStatistics = []statistic{
	{"Home Goals Avg", "", meanOf(stats.HomeGoals)},
	{"Away Goals Avg", "", meanOf(stats.AwayGoals)},
	{"Home Win %", "%", rateOf(stats.HomeWin)},
	{"Draw %", "%", rateOf(stats.Drawn)},
	{"Away Win %", "%", rateOf(stats.AwayWin)},
	{"First Half Goals Avg", "", meanOf(stats.FirstHalfGoals)},
	{"Home Goals Avg FH", "", meanOf(stats.HomeGoalsFH)},
	{"Away Goals Avg FH", "", meanOf(stats.AwayGoalsFH)},
	{"Standard Deviation", "", func(s match.Subset) (float64, error) { return stats.StdDev(s, stats.HomeGoals) }},
	{"Variance", "", func(s match.Subset) (float64, error) { return stats.Variance(s, stats.HomeGoals) }},
	{"Home Ball Poss Avg", "%", meanOf(stats.HomePossession)},
	{"Away Ball Poss Avg", "%", meanOf(stats.AwayPossession)},
}

// StatisticLabels returns the compared statistic labels in report order.
func StatisticLabels() []string {
	out := make([]string, len(leagueStatistics))
	for i, st := range leagueStatistics {
		out[i] = st.label
	}
	return out
}

type outcome struct {
	value float64
	err   error
}

// LeagueReport compares one league against the whole dataset.
type LeagueReport struct {
	League       string       `json:"league" yaml:"league"`
	Matches      int          `json:"matches" yaml:"matches"`
	TotalMatches int          `json:"total_matches" yaml:"total_matches"`
	Comparisons  []Comparison `json:"comparisons" yaml:"comparisons"`
	// Correlation is nil when the league has fewer than two complete rows.
	Correlation     *stats.CorrMatrix `json:"correlation,omitempty" yaml:"correlation,omitempty"`
	CorrelationNote string            `json:"correlation_note,omitempty" yaml:"correlation_note,omitempty"`
}

// Comparer evaluates overall statistics once and compares leagues against
// them. It only reads the subset it was built from.
type Comparer struct {
	all     match.Subset
	overall []outcome
}

// NewComparer precomputes the overall side of every statistic.
func NewComparer(all match.Subset) *Comparer {
	c := &Comparer{all: all, overall: make([]outcome, len(leagueStatistics))}
	for i, st := range leagueStatistics {
		v, err := st.compute(all)
		c.overall[i] = outcome{value: v, err: err}
	}
	return c
}

// League builds the report for one league. An unknown league fails with
// InvalidFilterError.
func (c *Comparer) League(league string) (*LeagueReport, error) {
	if err := filter.Require(c.all, filter.League, league); err != nil {
		return nil, err
	}
	sub := filter.ByEquality(c.all, filter.League, league)
	rep := &LeagueReport{
		League:       league,
		Matches:      sub.Len(),
		TotalMatches: c.all.Len(),
		Comparisons:  make([]Comparison, 0, len(leagueStatistics)),
	}
	for i, st := range leagueStatistics {
		lv, err := st.compute(sub)
		if err != nil {
			rep.Comparisons = append(rep.Comparisons, unavailable(st.label, st.unit, err))
			continue
		}
		if oerr := c.overall[i].err; oerr != nil {
			rep.Comparisons = append(rep.Comparisons, unavailable(st.label, st.unit, oerr))
			continue
		}
		rep.Comparisons = append(rep.Comparisons, compareUnit(st.label, st.unit, lv, c.overall[i].value))
	}
	corr, err := stats.Correlate(sub)
	switch {
	case err == nil:
		rep.Correlation = corr
	case match.IsNoData(err):
		rep.CorrelationNote = err.Error()
	default:
		return nil, errors.Wrapf(err, "correlate %s", league)
	}
	return rep, nil
}

// All builds a report for every league, fanning out over at most workers
// goroutines (GOMAXPROCS when workers <= 0). Reports are sorted by league.
func (c *Comparer) All(workers int) ([]*LeagueReport, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	leagues := filter.Distinct(c.all, filter.League)
	p := pool.NewWithResults[*LeagueReport]().WithErrors().WithMaxGoroutines(workers)
	for _, name := range leagues {
		name := name
		p.Go(func() (*LeagueReport, error) {
			return c.League(name)
		})
	}
	reports, err := p.Wait()
	if err != nil {
		return nil, errors.Wrap(err, "compare leagues")
	}
	sort.Slice(reports, func(i, j int) bool { return reports[i].League < reports[j].League })
	return reports, nil
}

// CompareLeague compares one league of all against the whole of all.
func CompareLeague(all match.Subset, league string) (*LeagueReport, error) {
	return NewComparer(all).League(league)
}

// CompareAllLeagues builds one report per league of all.
func CompareAllLeagues(all match.Subset, workers int) ([]*LeagueReport, error) {
	return NewComparer(all).All(workers)
}
