package stats

import (
	"math"
	"testing"

	"github.com/KaramelBytes/statloom-cli/internal/match"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func poss(v float64) *float64 { return &v }

func game(home, away string, hg, ag, hfh, afh int, hp, ap *float64) match.Record {
	return match.Record{
		League: "EPL", Season: "2023", HomeTeam: home, AwayTeam: away,
		HomeGoals: hg, AwayGoals: ag, HomeGoalsFH: hfh, AwayGoalsFH: afh,
		HomeWinOdds: 2, DrawOdds: 3.2, AwayWinOdds: 3.8,
		HomePossession: hp, AwayPossession: ap,
	}
}

func sample() match.Subset {
	return match.Subset{
		game("A", "B", 2, 1, 1, 0, poss(55), poss(45)),
		game("B", "A", 0, 0, 0, 0, poss(48), poss(52)),
		game("A", "C", 3, 1, 2, 1, poss(61), poss(39)),
		game("C", "A", 1, 2, 0, 1, nil, nil),
		game("B", "C", 0, 2, 0, 1, poss(40), poss(60)),
	}
}

func TestMeanStdVariance(t *testing.T) {
	s := sample()
	vals := []float64{2, 0, 3, 1, 0}

	m, err := Mean(s, HomeGoals)
	require.NoError(t, err)
	assert.InDelta(t, mean(vals), m, 1e-9)

	v, err := Variance(s, HomeGoals)
	require.NoError(t, err)
	assert.InDelta(t, sampleVar(vals), v, 1e-9)

	sd, err := StdDev(s, HomeGoals)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(sampleVar(vals)), sd, 1e-9)

	fh, err := Mean(s, FirstHalfGoals)
	require.NoError(t, err)
	assert.InDelta(t, 6.0/5.0, fh, 1e-9)
}

func TestMeanSkipsNullPossession(t *testing.T) {
	m, err := Mean(sample(), HomePossession)
	require.NoError(t, err)
	assert.InDelta(t, (55.0+48+61+40)/4, m, 1e-9)
}

func TestIdenticalValuesHaveZeroSpread(t *testing.T) {
	s := match.Subset{
		game("A", "B", 2, 0, 0, 0, nil, nil),
		game("C", "D", 2, 1, 1, 0, nil, nil),
		game("E", "F", 2, 3, 1, 1, nil, nil),
	}
	sd, err := StdDev(s, HomeGoals)
	require.NoError(t, err)
	assert.Equal(t, 0.0, sd)
	v, err := Variance(s, HomeGoals)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)
}

func TestEmptySubsetIsNoData(t *testing.T) {
	_, err := Mean(nil, HomeGoals)
	assert.True(t, errors.Is(err, match.ErrNoData))
	_, err = StdDev(nil, HomeGoals)
	assert.True(t, errors.Is(err, match.ErrNoData))
	_, err = Variance(nil, AwayGoals)
	assert.True(t, errors.Is(err, match.ErrNoData))
	_, err = Rate(match.Subset{}, HomeWin)
	assert.True(t, errors.Is(err, match.ErrNoData))

	var nd *match.NoDataError
	require.True(t, errors.As(err, &nd))
	assert.Equal(t, "rate", nd.Op)
}

func TestSpreadNeedsTwoValues(t *testing.T) {
	one := match.Subset{game("A", "B", 1, 0, 0, 0, nil, nil)}
	_, err := StdDev(one, HomeGoals)
	var nd *match.NoDataError
	require.True(t, errors.As(err, &nd))
	assert.Equal(t, 2, nd.Need)
	assert.Equal(t, 1, nd.Have)

	m, err := Mean(one, HomeGoals)
	require.NoError(t, err)
	assert.Equal(t, 1.0, m)
}

func TestRate(t *testing.T) {
	s := sample()
	for _, pred := range []func(match.Record) bool{HomeWin, AwayWin, Drawn, WonBy("A"), func(match.Record) bool { return true }} {
		r, err := Rate(s, pred)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, r, 0.0)
		assert.LessOrEqual(t, r, 100.0)
	}
	hw, _ := Rate(s, HomeWin)
	assert.InDelta(t, 40.0, hw, 1e-9)
	d, _ := Rate(s, Drawn)
	assert.InDelta(t, 20.0, d, 1e-9)
	aw, _ := Rate(s, AwayWin)
	assert.InDelta(t, 40.0, aw, 1e-9)
	assert.Equal(t, 2, Tally(s, HomeWin))
}

func TestTeamPercentages(t *testing.T) {
	s := sample()
	win, err := WinPct(s, "A")
	require.NoError(t, err)
	assert.InDelta(t, 60.0, win, 1e-9)

	draw, err := DrawPct(s)
	require.NoError(t, err)
	assert.InDelta(t, 20.0, draw, 1e-9)

	away := match.Subset{s[1], s[3]} // A away: drew at B, won at C
	byWinner, err := LossPctByWinner(away, "A")
	require.NoError(t, err)
	byGoals, err := LossPctByGoals(away, "A")
	require.NoError(t, err)
	assert.Equal(t, 0.0, byWinner)
	assert.Equal(t, byWinner, byGoals)

	bLoss, err := LossPctByGoals(s, "B")
	require.NoError(t, err)
	assert.InDelta(t, 40.0, bLoss, 1e-9)
}

func TestDescribeAndSummarize(t *testing.T) {
	sum, err := Describe(sample(), AwayGoals)
	require.NoError(t, err)
	assert.Equal(t, 5, sum.Count)
	assert.Equal(t, 0.0, sum.Min)
	assert.Equal(t, 2.0, sum.Max)
	require.NotNil(t, sum.StdDev)
	assert.InDelta(t, math.Sqrt(sampleVar([]float64{1, 0, 1, 2, 2})), *sum.StdDev, 1e-9)

	_, err = Describe(nil, AwayGoals)
	assert.True(t, errors.Is(err, match.ErrNoData))

	all := Summarize(sample())
	require.Len(t, all, len(Fields))
	one := Summarize(match.Subset{game("A", "B", 1, 0, 0, 0, nil, nil)}, HomeGoals, HomePossession)
	require.Len(t, one, 2)
	assert.Equal(t, 1, one[0].Count)
	assert.Nil(t, one[0].StdDev)
	assert.Equal(t, 0, one[1].Count)
}

func TestParseField(t *testing.T) {
	for in, want := range map[string]Field{
		"home_goals":       HomeGoals,
		"Home Goals FH":    HomeGoalsFH,
		"away ball poss":   AwayPossession,
		"first-half-goals": FirstHalfGoals,
	} {
		got, err := ParseField(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseField("corners")
	assert.Error(t, err)
}

func TestCorrelateMatrixShape(t *testing.T) {
	m, err := Correlate(sample())
	require.NoError(t, err)
	assert.Equal(t, 4, m.N)
	assert.Equal(t, 1, m.Excluded)
	require.Len(t, m.Values, len(CorrFields))

	for i := range m.Values {
		assert.Equal(t, 1.0, m.Values[i][i])
		for j := range m.Values {
			assert.Equal(t, m.Values[i][j], m.Values[j][i])
			assert.LessOrEqual(t, math.Abs(m.Values[i][j]), 1.0)
		}
	}

	complete := match.Subset{sample()[0], sample()[1], sample()[2], sample()[4]}
	want := correlation(Values(complete, HomeGoals), Values(complete, HomePossession))
	got, ok := m.At(HomeGoals, HomePossession)
	require.True(t, ok)
	assert.InDelta(t, want, got, 1e-9)

	hp, _ := m.At(HomePossession, AwayPossession)
	assert.InDelta(t, -1.0, hp, 1e-9)
}

func TestCorrelateConstantField(t *testing.T) {
	s := match.Subset{
		game("A", "B", 2, 0, 1, 0, poss(50), poss(50)),
		game("C", "D", 2, 1, 1, 0, poss(60), poss(40)),
		game("E", "F", 2, 3, 1, 2, poss(45), poss(55)),
	}
	m, err := Correlate(s)
	require.NoError(t, err)
	assert.Contains(t, m.Constant, HomeGoals)
	assert.Contains(t, m.Constant, HomeGoalsFH)
	v, _ := m.At(HomeGoals, AwayGoals)
	assert.Equal(t, 0.0, v)
	d, _ := m.At(HomeGoals, HomeGoals)
	assert.Equal(t, 1.0, d)
}

func TestCorrelateNeedsTwoCompleteRows(t *testing.T) {
	s := match.Subset{
		game("A", "B", 2, 0, 1, 0, poss(50), poss(50)),
		game("C", "D", 2, 1, 1, 0, nil, poss(40)),
	}
	_, err := Correlate(s)
	require.Error(t, err)
	assert.True(t, errors.Is(err, match.ErrNoData))

	_, err = Correlate(nil)
	assert.True(t, errors.Is(err, match.ErrNoData))
}

func mean(vals []float64) float64 {
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func sampleVar(vals []float64) float64 {
	m := mean(vals)
	var sum float64
	for _, v := range vals {
		d := v - m
		sum += d * d
	}
	return sum / float64(len(vals)-1)
}

func correlation(a, b []float64) float64 {
	ma, mb := mean(a), mean(b)
	var num, da2, db2 float64
	for i := range a {
		da, db := a[i]-ma, b[i]-mb
		num += da * db
		da2 += da * da
		db2 += db * db
	}
	return num / math.Sqrt(da2*db2)
}
