package stats

import "github.com/KaramelBytes/statloom-cli/internal/match"

// Goal-comparison outcome predicates.
func HomeWin(r match.Record) bool { return r.HomeGoals > r.AwayGoals }
func AwayWin(r match.Record) bool { return r.AwayGoals > r.HomeGoals }
func Drawn(r match.Record) bool   { return r.HomeGoals == r.AwayGoals }

// WonBy matches records whose Winner is team.
func WonBy(team string) func(match.Record) bool {
	return func(r match.Record) bool { return r.Winner() == team }
}

// WinPct is the share of s won by team, read from Winner.
func WinPct(s match.Subset, team string) (float64, error) {
	return Rate(s, WonBy(team))
}

// DrawPct is the share of s whose Winner is Draw.
func DrawPct(s match.Subset) (float64, error) {
	return Rate(s, WonBy(match.Draw))
}

// LossPctByWinner is the share of s won by team's opponent, read from Winner.
func LossPctByWinner(s match.Subset, team string) (float64, error) {
	return Rate(s, func(r match.Record) bool {
		w := r.Winner()
		return w != team && w != match.Draw
	})
}

// LossPctByGoals is the share of s where team scored fewer goals than its
// opponent, compared directly on goals.
func LossPctByGoals(s match.Subset, team string) (float64, error) {
	return Rate(s, func(r match.Record) bool {
		switch team {
		case r.HomeTeam:
			return r.HomeGoals < r.AwayGoals
		case r.AwayTeam:
			return r.AwayGoals < r.HomeGoals
		}
		return false
	})
}
