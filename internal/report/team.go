package report

import (
	"github.com/KaramelBytes/statloom-cli/internal/filter"
	"github.com/KaramelBytes/statloom-cli/internal/match"
	"github.com/KaramelBytes/statloom-cli/internal/stats"
	"github.com/cockroachdb/errors"
)

// Loss percentage derivations.
const (
	LossFromWinner = "winner"
	LossFromGoals  = "goals"
)

// TeamProfileReport describes a team's record in one role (home or away).
type TeamProfileReport struct {
	Team     string `json:"team" yaml:"team"`
	Role     string `json:"role" yaml:"role"`
	Opponent string `json:"opponent,omitempty" yaml:"opponent,omitempty"`
	Matches  int    `json:"matches" yaml:"matches"`

	AvgScored          float64 `json:"avg_scored" yaml:"avg_scored"`
	AvgConceded        float64 `json:"avg_conceded" yaml:"avg_conceded"`
	AvgFirstHalfScored float64 `json:"avg_first_half_scored" yaml:"avg_first_half_scored"`

	WinPct  float64 `json:"win_pct" yaml:"win_pct"`
	DrawPct float64 `json:"draw_pct" yaml:"draw_pct"`
	// LossPct is LossPctByWinner for the home role and LossPctByGoals for the
	// away role; LossSource names the one used.
	LossPct         float64 `json:"loss_pct" yaml:"loss_pct"`
	LossSource      string  `json:"loss_source" yaml:"loss_source"`
	LossPctByWinner float64 `json:"loss_pct_by_winner" yaml:"loss_pct_by_winner"`
	LossPctByGoals  float64 `json:"loss_pct_by_goals" yaml:"loss_pct_by_goals"`
	// LossPctVsOpponent is the share of these matches won by Opponent.
	LossPctVsOpponent *float64 `json:"loss_pct_vs_opponent,omitempty" yaml:"loss_pct_vs_opponent,omitempty"`

	// Spread of goals scored; nil with fewer than two matches.
	GoalsStdDev   *float64 `json:"goals_stddev,omitempty" yaml:"goals_stddev,omitempty"`
	GoalsVariance *float64 `json:"goals_variance,omitempty" yaml:"goals_variance,omitempty"`
}

// TeamProfile builds the profile of team playing in role over all. opponent
// is optional. A team without matches in that role yields a NoDataError.
func TeamProfile(all match.Subset, team string, role filter.Role, opponent string) (*TeamProfileReport, error) {
	s := filter.ByRole(all, team, role)
	if s.Len() == 0 {
		return nil, &match.NoDataError{Op: role.String() + " profile", What: team, Need: 1, Have: 0}
	}
	scored, conceded, firstHalf := stats.HomeGoals, stats.AwayGoals, stats.HomeGoalsFH
	if role == filter.Away {
		scored, conceded, firstHalf = stats.AwayGoals, stats.HomeGoals, stats.AwayGoalsFH
	}

	rep := &TeamProfileReport{Team: team, Role: role.String(), Opponent: opponent, Matches: s.Len()}
	var err error
	collect := func(dst *float64, v float64, e error) {
		*dst = v
		if err == nil && e != nil {
			err = e
		}
	}
	v, e := stats.Mean(s, scored)
	collect(&rep.AvgScored, v, e)
	v, e = stats.Mean(s, conceded)
	collect(&rep.AvgConceded, v, e)
	v, e = stats.Mean(s, firstHalf)
	collect(&rep.AvgFirstHalfScored, v, e)
	v, e = stats.WinPct(s, team)
	collect(&rep.WinPct, v, e)
	v, e = stats.DrawPct(s)
	collect(&rep.DrawPct, v, e)
	v, e = stats.LossPctByWinner(s, team)
	collect(&rep.LossPctByWinner, v, e)
	v, e = stats.LossPctByGoals(s, team)
	collect(&rep.LossPctByGoals, v, e)
	if err != nil {
		return nil, errors.Wrapf(err, "profile %s", team)
	}

	if role == filter.Away {
		rep.LossPct, rep.LossSource = rep.LossPctByGoals, LossFromGoals
	} else {
		rep.LossPct, rep.LossSource = rep.LossPctByWinner, LossFromWinner
	}
	if opponent != "" {
		rep.LossPctVsOpponent = optionalValue(stats.Rate(s, stats.WonBy(opponent)))
	}
	rep.GoalsStdDev = optionalValue(stats.StdDev(s, scored))
	rep.GoalsVariance = optionalValue(stats.Variance(s, scored))
	return rep, nil
}
