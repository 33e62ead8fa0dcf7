package report

import (
	"testing"

	"github.com/KaramelBytes/statloom-cli/internal/filter"
	"github.com/KaramelBytes/statloom-cli/internal/match"
	"github.com/KaramelBytes/statloom-cli/internal/stats"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pct(v float64) *float64 { return &v }

func rec(league, home, away string, hg, ag, hfh, afh int) match.Record {
	return match.Record{
		League: league, Season: "2023/2024", HomeTeam: home, AwayTeam: away,
		HomeGoals: hg, AwayGoals: ag, HomeGoalsFH: hfh, AwayGoalsFH: afh,
		HomeWinOdds: 2.1, DrawOdds: 3.3, AwayWinOdds: 3.5,
		HomePossession: pct(50), AwayPossession: pct(50),
	}
}

func dataset() match.Subset {
	s := match.Subset{
		rec("EPL", "A", "B", 2, 1, 1, 0),
		rec("EPL", "B", "A", 0, 0, 0, 0),
		rec("EPL", "A", "C", 3, 0, 2, 0),
		rec("EPL", "C", "A", 1, 1, 1, 0),
		rec("EPL", "B", "C", 0, 2, 0, 1),
		rec("Liga", "D", "E", 1, 0, 0, 0),
		rec("Liga", "E", "D", 2, 2, 1, 1),
		rec("Liga", "D", "F", 4, 1, 2, 0),
		rec("Serie", "G", "H", 1, 1, 0, 0),
	}
	s[0].HomePossession, s[0].AwayPossession = pct(58), pct(42)
	s[2].HomePossession, s[2].AwayPossession = pct(63), pct(37)
	s[4].HomePossession, s[4].AwayPossession = pct(44), pct(56)
	s[7].HomePossession, s[7].AwayPossession = nil, nil
	return s
}

func TestHeadToHeadTwoRecordExample(t *testing.T) {
	all := match.Subset{
		rec("EPL", "A", "B", 2, 1, 1, 0),
		rec("EPL", "B", "A", 0, 0, 0, 0),
	}
	rep, err := HeadToHead(all, "A", "B")
	require.NoError(t, err)
	assert.Equal(t, 2, rep.Count)
	assert.Equal(t, 1, rep.HomeWins)
	assert.Equal(t, 1, rep.Draws)
	assert.Equal(t, 0, rep.AwayWins)
	assert.InDelta(t, 0.5, rep.AvgFirstHalfGoals, 1e-12)
	assert.InDelta(t, 1.0, rep.AvgHomeGoals, 1e-12)
	assert.InDelta(t, 0.5, rep.AvgAwayGoals, 1e-12)
	assert.Equal(t, 1, rep.HomeTeamWins)
	assert.Equal(t, 0, rep.AwayTeamWins)
	require.NotNil(t, rep.AvgHomePossession)
	assert.InDelta(t, 50.0, *rep.AvgHomePossession, 1e-12)
}

func TestHeadToHeadCountsVenueSpecificWins(t *testing.T) {
	all := match.Subset{
		rec("EPL", "A", "B", 0, 1, 0, 0), // B wins away: counts as AwayWin
		rec("EPL", "B", "A", 0, 3, 0, 1), // A wins away: not a home win for A
		rec("EPL", "B", "A", 2, 0, 1, 0), // B wins at home: not an away win for B
	}
	rep, err := HeadToHead(all, "A", "B")
	require.NoError(t, err)
	assert.Equal(t, 3, rep.Count)
	assert.Equal(t, 0, rep.HomeWins)
	assert.Equal(t, 1, rep.AwayWins)
	assert.Equal(t, 0, rep.Draws)
	assert.Equal(t, 1, rep.HomeTeamWins)
	assert.Equal(t, 2, rep.AwayTeamWins)

	swapped, err := HeadToHead(all, "B", "A")
	require.NoError(t, err)
	assert.ElementsMatch(t, rep.Matches, swapped.Matches)
}

func TestHeadToHeadNoMeetings(t *testing.T) {
	_, err := HeadToHead(dataset(), "A", "G")
	require.Error(t, err)
	assert.True(t, errors.Is(err, match.ErrNoData))
}

func TestPercentDiffAndDirection(t *testing.T) {
	pairs := [][2]float64{{1.5, 1.2}, {0.8, 1.2}, {1.2, 1.2}, {-1, 2}, {3, -2}, {0, 5}, {5, 0}, {0, 0}}
	for _, p := range pairs {
		c := Compare("x", p[0], p[1])
		switch c.Direction {
		case Up:
			assert.Greater(t, p[0], p[1])
		case Down:
			assert.Less(t, p[0], p[1])
		case Neutral:
			assert.Equal(t, p[0], p[1])
		}
		if p[1] > 0 {
			switch c.Direction {
			case Up:
				assert.Greater(t, c.PercentDiff, 0.0)
			case Down:
				assert.Less(t, c.PercentDiff, 0.0)
			}
		}
		if p[1] != 0 {
			assert.Equal(t, c.PercentDiff == 0, c.Direction == Neutral, "pair %v", p)
		}
	}

	c := Compare("Home Goals Avg", 1.5, 1.2)
	assert.InDelta(t, 25.0, c.PercentDiff, 1e-9)
	assert.Equal(t, Up, c.Direction)
	assert.Equal(t, "1.20", c.FormattedOverall)
	assert.True(t, c.Available)
}

func TestPercentDiffZeroOverall(t *testing.T) {
	assert.Equal(t, 0.0, PercentDiff(3.7, 0))
	c := Compare("Goals", 3.7, 0)
	assert.Equal(t, 0.0, c.PercentDiff)
	assert.Equal(t, Up, c.Direction)
}

func TestDirectionText(t *testing.T) {
	for _, d := range []Direction{Up, Down, Neutral} {
		b, err := d.MarshalText()
		require.NoError(t, err)
		var back Direction
		require.NoError(t, back.UnmarshalText(b))
		assert.Equal(t, d, back)
	}
	var d Direction
	assert.Error(t, d.UnmarshalText([]byte("sideways")))
}

func TestCompareLeague(t *testing.T) {
	all := dataset()
	rep, err := CompareLeague(all, "EPL")
	require.NoError(t, err)
	assert.Equal(t, 5, rep.Matches)
	assert.Equal(t, 9, rep.TotalMatches)
	require.Len(t, rep.Comparisons, len(StatisticLabels()))
	assert.Equal(t, StatisticLabels()[0], rep.Comparisons[0].Label)

	epl := filter.ByEquality(all, filter.League, "EPL")
	wantLeague, _ := stats.Mean(epl, stats.HomeGoals)
	wantOverall, _ := stats.Mean(all, stats.HomeGoals)
	home := rep.Comparisons[0]
	assert.InDelta(t, wantLeague, home.LeagueValue, 1e-9)
	assert.InDelta(t, wantOverall, home.OverallValue, 1e-9)
	assert.InDelta(t, PercentDiff(wantLeague, wantOverall), home.PercentDiff, 1e-9)

	win := rep.Comparisons[2]
	assert.Equal(t, "Home Win %", win.Label)
	assert.Equal(t, "%", win.Unit)
	assert.InDelta(t, 40.0, win.LeagueValue, 1e-9)
	assert.InDelta(t, 400.0/9.0, win.OverallValue, 1e-9)
	assert.Equal(t, Down, win.Direction)

	require.NotNil(t, rep.Correlation)
	assert.Equal(t, 5, rep.Correlation.N)
}

func TestCompareLeagueSingleMatchMarksSpreadUnavailable(t *testing.T) {
	rep, err := CompareLeague(dataset(), "Serie")
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Matches)
	for _, c := range rep.Comparisons {
		switch c.Label {
		case "Standard Deviation", "Variance":
			assert.False(t, c.Available, c.Label)
			assert.Contains(t, c.Reason, "insufficient data")
		default:
			assert.True(t, c.Available, c.Label)
		}
	}
	assert.Nil(t, rep.Correlation)
	assert.NotEmpty(t, rep.CorrelationNote)
}

func TestCompareLeagueUnknown(t *testing.T) {
	_, err := CompareLeague(dataset(), "Ligue 1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, match.ErrInvalidFilter))
}

func TestCompareLeagueZeroOverallMean(t *testing.T) {
	all := match.Subset{
		rec("X", "A", "B", 0, 1, 0, 0),
		rec("Y", "C", "D", 0, 2, 0, 1),
	}
	rep, err := CompareLeague(all, "X")
	require.NoError(t, err)
	home := rep.Comparisons[0]
	require.True(t, home.Available)
	assert.Equal(t, 0.0, home.OverallValue)
	assert.Equal(t, 0.0, home.PercentDiff)
	assert.Equal(t, Neutral, home.Direction)
}

func TestCompareAllLeagues(t *testing.T) {
	reps, err := CompareAllLeagues(dataset(), 2)
	require.NoError(t, err)
	require.Len(t, reps, 3)
	assert.Equal(t, "EPL", reps[0].League)
	assert.Equal(t, "Liga", reps[1].League)
	assert.Equal(t, "Serie", reps[2].League)

	single, err := CompareLeague(dataset(), "Liga")
	require.NoError(t, err)
	assert.Equal(t, single.Comparisons, reps[1].Comparisons)
}

func TestTeamProfileHome(t *testing.T) {
	rep, err := TeamProfile(dataset(), "A", filter.Home, "C")
	require.NoError(t, err)
	assert.Equal(t, "home", rep.Role)
	assert.Equal(t, 2, rep.Matches)
	assert.InDelta(t, 2.5, rep.AvgScored, 1e-9)
	assert.InDelta(t, 0.5, rep.AvgConceded, 1e-9)
	assert.InDelta(t, 1.5, rep.AvgFirstHalfScored, 1e-9)
	assert.InDelta(t, 100.0, rep.WinPct, 1e-9)
	assert.Equal(t, 0.0, rep.DrawPct)
	assert.Equal(t, LossFromWinner, rep.LossSource)
	assert.Equal(t, rep.LossPctByWinner, rep.LossPct)
	require.NotNil(t, rep.LossPctVsOpponent)
	assert.Equal(t, 0.0, *rep.LossPctVsOpponent)
	require.NotNil(t, rep.GoalsStdDev)
	assert.InDelta(t, 0.7071067811865476, *rep.GoalsStdDev, 1e-9)
	require.NotNil(t, rep.GoalsVariance)
	assert.InDelta(t, 0.5, *rep.GoalsVariance, 1e-9)
}

func TestTeamProfileAwayUsesGoalComparisonForLoss(t *testing.T) {
	rep, err := TeamProfile(dataset(), "C", filter.Away, "")
	require.NoError(t, err)
	assert.Equal(t, 2, rep.Matches) // A 3-0 C, B 0-2 C
	assert.InDelta(t, 50.0, rep.WinPct, 1e-9)
	assert.InDelta(t, 50.0, rep.LossPct, 1e-9)
	assert.Equal(t, LossFromGoals, rep.LossSource)
	assert.Equal(t, rep.LossPctByGoals, rep.LossPct)
	// Winner is derived from goals, so both derivations agree.
	assert.Equal(t, rep.LossPctByWinner, rep.LossPctByGoals)
	assert.Nil(t, rep.LossPctVsOpponent)
}

func TestTeamProfileSingleMatchHasNoSpread(t *testing.T) {
	rep, err := TeamProfile(dataset(), "G", filter.Home, "")
	require.NoError(t, err)
	assert.Equal(t, 1, rep.Matches)
	assert.Nil(t, rep.GoalsStdDev)
	assert.Nil(t, rep.GoalsVariance)
}

func TestTeamProfileNoMatches(t *testing.T) {
	_, err := TeamProfile(dataset(), "H", filter.Home, "")
	assert.True(t, errors.Is(err, match.ErrNoData))
}

func TestCorrelationScope(t *testing.T) {
	rep, err := Correlation(dataset(), "EPL", "")
	require.NoError(t, err)
	assert.Equal(t, 5, rep.Matches)
	assert.Equal(t, 5, rep.Matrix.N)
	k := len(stats.CorrFields)
	require.Len(t, rep.Pairs, k*(k-1)/2)
	for i := 1; i < len(rep.Pairs); i++ {
		assert.GreaterOrEqual(t, abs(rep.Pairs[i-1].R), abs(rep.Pairs[i].R))
	}
	r, ok := rep.Matrix.At(stats.HomePossession, stats.AwayPossession)
	require.True(t, ok)
	assert.InDelta(t, -1.0, r, 1e-9)

	_, err = Correlation(dataset(), "Serie", "")
	assert.True(t, errors.Is(err, match.ErrNoData))
	_, err = Correlation(dataset(), "", "1999/2000")
	assert.True(t, errors.Is(err, match.ErrInvalidFilter))
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func TestMatchesListing(t *testing.T) {
	out, err := Matches(dataset(), MatchQuery{League: "EPL", HomeTeam: "A"})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "B", out[0].AwayTeam)
	assert.Equal(t, "C", out[1].AwayTeam)

	all, err := Matches(dataset(), MatchQuery{})
	require.NoError(t, err)
	require.Len(t, all, 9)
	assert.Equal(t, "EPL", all[0].League)
	assert.Equal(t, "Serie", all[8].League)

	empty, err := Matches(dataset(), MatchQuery{League: "Liga", HomeTeam: "A"})
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = Matches(dataset(), MatchQuery{AwayTeam: "Z"})
	assert.True(t, errors.Is(err, match.ErrInvalidFilter))
}

func TestDescribeGrouped(t *testing.T) {
	rep := Describe(dataset(), filter.League, stats.HomeGoals)
	require.Len(t, rep.Groups, 3)
	assert.Equal(t, "EPL", rep.Groups[0].Group)
	assert.Equal(t, 5, rep.Groups[0].Matches)
	require.Len(t, rep.Groups[0].Summaries, 1)
	assert.InDelta(t, 1.2, rep.Groups[0].Summaries[0].Mean, 1e-9)
	assert.Nil(t, rep.Groups[2].Summaries[0].StdDev)

	flat := Describe(dataset(), "")
	require.Len(t, flat.Groups, 1)
	assert.Len(t, flat.Groups[0].Summaries, len(stats.Fields))
	assert.Equal(t, 9, flat.Groups[0].Matches)
}
