// Package filter selects subsets of match records by categorical equality,
// head-to-head pairing and team role.
package filter

import (
	"sort"
	"strings"

	"github.com/KaramelBytes/statloom-cli/internal/match"
	"github.com/cockroachdb/errors"
)

// Field names a categorical record attribute.
type Field string

const (
	League   Field = "league"
	Season   Field = "season"
	HomeTeam Field = "home_team"
	AwayTeam Field = "away_team"
	Winner   Field = "winner"
)

// Fields lists the categorical fields in display order.
var Fields = []Field{League, Season, HomeTeam, AwayTeam, Winner}

// ParseField accepts "league", "Home Team", "home-team" and similar spellings.
func ParseField(s string) (Field, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer(" ", "_", "-", "_").Replace(norm)
	for _, f := range Fields {
		if string(f) == norm {
			return f, nil
		}
	}
	return "", errors.Newf("unknown field %q", s)
}

// Value reads the categorical field from a record.
func (f Field) Value(r match.Record) string {
	switch f {
	case League:
		return r.League
	case Season:
		return r.Season
	case HomeTeam:
		return r.HomeTeam
	case AwayTeam:
		return r.AwayTeam
	case Winner:
		return r.Winner()
	}
	return ""
}

// Role is the side a team played on.
type Role int

const (
	Home Role = iota
	Away
)

func (r Role) String() string {
	if r == Away {
		return "away"
	}
	return "home"
}

// ParseRole accepts "home" or "away" in any case.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "home", "h":
		return Home, nil
	case "away", "a":
		return Away, nil
	}
	return Home, errors.Newf("invalid role %q (use home or away)", s)
}

// Predicate decides whether a record belongs to a subset.
type Predicate func(match.Record) bool

// Eq matches records whose field equals value.
func Eq(field Field, value string) Predicate {
	return func(r match.Record) bool { return field.Value(r) == value }
}

// Pairing matches fixtures between a and b regardless of who hosted.
func Pairing(a, b string) Predicate {
	return func(r match.Record) bool {
		return (r.HomeTeam == a && r.AwayTeam == b) || (r.HomeTeam == b && r.AwayTeam == a)
	}
}

// Plays matches records where team played in the given role.
func Plays(team string, role Role) Predicate {
	if role == Away {
		return func(r match.Record) bool { return r.AwayTeam == team }
	}
	return func(r match.Record) bool { return r.HomeTeam == team }
}

// Apply keeps the records that satisfy every predicate, in order. Nil
// predicates are skipped. The result never aliases s.
func Apply(s match.Subset, preds ...Predicate) match.Subset {
	out := make(match.Subset, 0, len(s))
	for _, r := range s {
		keep := true
		for _, p := range preds {
			if p != nil && !p(r) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, r)
		}
	}
	return out
}

// ByEquality returns the records where field == value. No match yields an
// empty subset.
func ByEquality(s match.Subset, field Field, value string) match.Subset {
	return Apply(s, Eq(field, value))
}

// ByTeamPairing returns the head-to-head history of a and b.
func ByTeamPairing(s match.Subset, a, b string) match.Subset {
	return Apply(s, Pairing(a, b))
}

// ByRole returns the matches team played at home or away.
func ByRole(s match.Subset, team string, role Role) match.Subset {
	return Apply(s, Plays(team, role))
}

// Distinct returns the sorted distinct values of field.
func Distinct(s match.Subset, field Field) []string {
	seen := make(map[string]struct{})
	for _, r := range s {
		seen[field.Value(r)] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Require returns an InvalidFilterError when no record has field == value.
func Require(s match.Subset, field Field, value string) error {
	for _, r := range s {
		if field.Value(r) == value {
			return nil
		}
	}
	return &match.InvalidFilterError{Field: string(field), Value: value}
}

// RequireTeam is Require over both team columns.
func RequireTeam(s match.Subset, team string) error {
	for _, r := range s {
		if r.HomeTeam == team || r.AwayTeam == team {
			return nil
		}
	}
	return &match.InvalidFilterError{Field: "team", Value: team}
}
