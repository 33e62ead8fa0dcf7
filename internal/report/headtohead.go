package report

import (
	"fmt"

	"github.com/KaramelBytes/statloom-cli/internal/filter"
	"github.com/KaramelBytes/statloom-cli/internal/match"
	"github.com/KaramelBytes/statloom-cli/internal/stats"
)

// HeadToHeadReport summarizes every meeting of two teams, whoever hosted.
// HomeTeam and AwayTeam are the framing of the request, not of each match.
type HeadToHeadReport struct {
	HomeTeam string       `json:"home_team" yaml:"home_team"`
	AwayTeam string       `json:"away_team" yaml:"away_team"`
	Matches  match.Subset `json:"matches" yaml:"matches"`
	Count    int          `json:"count" yaml:"count"`

	// HomeWins counts HomeTeam wins while hosting, AwayWins counts AwayTeam
	// wins while visiting. Draws counts every drawn meeting.
	HomeWins int `json:"home_wins" yaml:"home_wins"`
	Draws    int `json:"draws" yaml:"draws"`
	AwayWins int `json:"away_wins" yaml:"away_wins"`
	// Venue-independent win tallies read from Winner.
	HomeTeamWins int `json:"home_team_wins" yaml:"home_team_wins"`
	AwayTeamWins int `json:"away_team_wins" yaml:"away_team_wins"`

	// Averages of the home and away side of each meeting.
	AvgHomeGoals      float64  `json:"avg_home_goals" yaml:"avg_home_goals"`
	AvgAwayGoals      float64  `json:"avg_away_goals" yaml:"avg_away_goals"`
	AvgFirstHalfGoals float64  `json:"avg_first_half_goals" yaml:"avg_first_half_goals"`
	AvgHomePossession *float64 `json:"avg_home_possession,omitempty" yaml:"avg_home_possession,omitempty"`
	AvgAwayPossession *float64 `json:"avg_away_possession,omitempty" yaml:"avg_away_possession,omitempty"`
}

// HeadToHead builds the report for home versus away over all. Teams that never
// met yield a NoDataError.
func HeadToHead(all match.Subset, home, away string) (*HeadToHeadReport, error) {
	h2h := filter.ByTeamPairing(all, home, away)
	if h2h.Len() == 0 {
		return nil, &match.NoDataError{Op: "head-to-head", What: fmt.Sprintf("%s vs %s", home, away), Need: 1, Have: 0}
	}
	rep := &HeadToHeadReport{
		HomeTeam: home,
		AwayTeam: away,
		Matches:  h2h,
		Count:    h2h.Len(),
		HomeWins: stats.Tally(h2h, func(r match.Record) bool { return r.HomeTeam == home && stats.HomeWin(r) }),
		Draws:    stats.Tally(h2h, stats.Drawn),
		AwayWins: stats.Tally(h2h, func(r match.Record) bool { return r.AwayTeam == away && stats.AwayWin(r) }),

		HomeTeamWins: stats.Tally(h2h, stats.WonBy(home)),
		AwayTeamWins: stats.Tally(h2h, stats.WonBy(away)),
	}
	// the subset is non-empty, so goal means cannot fail
	rep.AvgHomeGoals, _ = stats.Mean(h2h, stats.HomeGoals)
	rep.AvgAwayGoals, _ = stats.Mean(h2h, stats.AwayGoals)
	rep.AvgFirstHalfGoals, _ = stats.Mean(h2h, stats.FirstHalfGoals)
	rep.AvgHomePossession = optionalMean(h2h, stats.HomePossession)
	rep.AvgAwayPossession = optionalMean(h2h, stats.AwayPossession)
	return rep, nil
}

func optionalMean(s match.Subset, f stats.Field) *float64 {
	m, err := stats.Mean(s, f)
	if err != nil {
		return nil
	}
	return &m
}

func optionalValue(v float64, err error) *float64 {
	if err != nil {
		return nil
	}
	return &v
}
