package match

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Draw is the Winner value of a drawn match.
const Draw = "Draw"

// Record is one played fixture in canonical typed form.
type Record struct {
	League   string `json:"league" yaml:"league" validate:"required"`
	Season   string `json:"season" yaml:"season" validate:"required"`
	HomeTeam string `json:"home_team" yaml:"home_team" validate:"required"`
	AwayTeam string `json:"away_team" yaml:"away_team" validate:"required"`

	HomeGoals   int `json:"home_goals" yaml:"home_goals" validate:"gte=0"`
	AwayGoals   int `json:"away_goals" yaml:"away_goals" validate:"gte=0"`
	HomeGoalsFH int `json:"home_goals_fh" yaml:"home_goals_fh" validate:"gte=0,ltefield=HomeGoals"`
	AwayGoalsFH int `json:"away_goals_fh" yaml:"away_goals_fh" validate:"gte=0,ltefield=AwayGoals"`

	HomeWinOdds float64 `json:"home_win_odds" yaml:"home_win_odds" validate:"gt=0"`
	DrawOdds    float64 `json:"draw_odds" yaml:"draw_odds" validate:"gt=0"`
	AwayWinOdds float64 `json:"away_win_odds" yaml:"away_win_odds" validate:"gt=0"`

	// Possession is nullable in source data; the pair is not forced to sum to 100.
	HomePossession *float64 `json:"home_possession,omitempty" yaml:"home_possession,omitempty" validate:"omitempty,gte=0,lte=100"`
	AwayPossession *float64 `json:"away_possession,omitempty" yaml:"away_possession,omitempty" validate:"omitempty,gte=0,lte=100"`
}

// FirstHalfGoals is the number of goals both teams scored before half-time.
func (r Record) FirstHalfGoals() int { return r.HomeGoalsFH + r.AwayGoalsFH }

// Winner returns the home team, the away team or Draw by goal comparison.
func (r Record) Winner() string {
	switch {
	case r.HomeGoals > r.AwayGoals:
		return r.HomeTeam
	case r.HomeGoals < r.AwayGoals:
		return r.AwayTeam
	default:
		return Draw
	}
}

// String renders "Home - Away 2:1 (1:0) 55:45".
func (r Record) String() string {
	s := fmt.Sprintf("%s - %s %d:%d (%d:%d)", r.HomeTeam, r.AwayTeam, r.HomeGoals, r.AwayGoals, r.HomeGoalsFH, r.AwayGoalsFH)
	if r.HomePossession != nil || r.AwayPossession != nil {
		s += fmt.Sprintf(" %s:%s", fmtPoss(r.HomePossession), fmtPoss(r.AwayPossession))
	}
	return s
}

// Clone returns a copy of r that shares no possession pointers with it.
func (r Record) Clone() Record {
	r.HomePossession = clonePtr(r.HomePossession)
	r.AwayPossession = clonePtr(r.AwayPossession)
	return r
}

func clonePtr(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneRecords(records []Record) []Record {
	if records == nil {
		return nil
	}
	out := make([]Record, len(records))
	for i, r := range records {
		out[i] = r.Clone()
	}
	return out
}

func fmtPoss(p *float64) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprintf("%g", *p)
}

// Subset is a read-only view over records. Every filter returns a new slice;
// the base collection is never written through a Subset.
type Subset []Record

// Len returns the number of records in the subset.
func (s Subset) Len() int { return len(s) }

// Collection is an immutable, normalized table of match records.
type Collection struct {
	id       string
	source   string
	loadedAt time.Time
	records  []Record
}

// NewCollection copies records into a new collection tagged with a fresh ID.
func NewCollection(source string, records []Record) *Collection {
	return &Collection{
		id:       uuid.NewString(),
		source:   source,
		loadedAt: time.Now(),
		records:  cloneRecords(records),
	}
}

// ID identifies this snapshot; a reload produces a new ID.
func (c *Collection) ID() string { return c.id }

// Source is the label the collection was loaded from (usually a file path).
func (c *Collection) Source() string { return c.source }

// LoadedAt is when the collection was normalized.
func (c *Collection) LoadedAt() time.Time { return c.loadedAt }

// Len returns the number of records.
func (c *Collection) Len() int {
	if c == nil {
		return 0
	}
	return len(c.records)
}

// All returns a copy of every record in file order.
func (c *Collection) All() Subset {
	if c == nil {
		return nil
	}
	return cloneRecords(c.records)
}
