package match

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Source column names.
const (
	ColLeague         = "League"
	ColSeason         = "Season"
	ColHomeTeam       = "Home Team"
	ColAwayTeam       = "Away Team"
	ColHomeGoals      = "Home Goals"
	ColAwayGoals      = "Away Goals"
	ColHomeGoalsFH    = "Home Goals FH"
	ColAwayGoalsFH    = "Away Goals FH"
	ColHomeWinOdds    = "Home Win"
	ColDrawOdds       = "Draw"
	ColAwayWinOdds    = "Away Win"
	ColHomePossession = "Home Ball Poss"
	ColAwayPossession = "Away Ball Poss"
)

// RequiredColumns lists every column a source table must carry.
var RequiredColumns = []string{
	ColLeague, ColSeason, ColHomeTeam, ColAwayTeam,
	ColHomeGoals, ColAwayGoals, ColHomeGoalsFH, ColAwayGoalsFH,
	ColHomeWinOdds, ColDrawOdds, ColAwayWinOdds,
	ColHomePossession, ColAwayPossession,
}

// struct field -> source column, for validation messages
var fieldColumns = map[string]string{
	"League":         ColLeague,
	"Season":         ColSeason,
	"HomeTeam":       ColHomeTeam,
	"AwayTeam":       ColAwayTeam,
	"HomeGoals":      ColHomeGoals,
	"AwayGoals":      ColAwayGoals,
	"HomeGoalsFH":    ColHomeGoalsFH,
	"AwayGoalsFH":    ColAwayGoalsFH,
	"HomeWinOdds":    ColHomeWinOdds,
	"DrawOdds":       ColDrawOdds,
	"AwayWinOdds":    ColAwayWinOdds,
	"HomePossession": ColHomePossession,
	"AwayPossession": ColAwayPossession,
}

var validate = validator.New()

// RawRow is one source row keyed by header name.
type RawRow map[string]string

// CheckHeader fails with a ParseError naming the first required column that
// the header lacks.
func CheckHeader(header []string) error {
	have := make(map[string]struct{}, len(header))
	for _, h := range header {
		have[strings.TrimSpace(h)] = struct{}{}
	}
	for _, col := range RequiredColumns {
		if _, ok := have[col]; !ok {
			return &ParseError{Column: col, Err: errors.New("required column is absent")}
		}
	}
	return nil
}

// Normalize converts raw rows into an immutable Collection. The first bad row
// aborts the whole load. lines[i] is the source line of rows[i] in errors;
// rows past the end of lines report their 1-based index.
func Normalize(source string, rows []RawRow, lines []int) (*Collection, error) {
	records := make([]Record, 0, len(rows))
	for i, row := range rows {
		line := i + 1
		if i < len(lines) {
			line = lines[i]
		}
		rec, err := NormalizeRow(line, row)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return NewCollection(source, records), nil
}

// NormalizeRow parses one raw row. Odds use a comma decimal separator in the
// source; possession may be empty.
func NormalizeRow(line int, row RawRow) (Record, error) {
	p := rowParser{line: line, row: row}
	rec := Record{
		League:      p.text(ColLeague),
		Season:      p.text(ColSeason),
		HomeTeam:    p.text(ColHomeTeam),
		AwayTeam:    p.text(ColAwayTeam),
		HomeGoals:   p.goals(ColHomeGoals),
		AwayGoals:   p.goals(ColAwayGoals),
		HomeGoalsFH: p.goals(ColHomeGoalsFH),
		AwayGoalsFH: p.goals(ColAwayGoalsFH),
		HomeWinOdds: p.odds(ColHomeWinOdds),
		DrawOdds:    p.odds(ColDrawOdds),
		AwayWinOdds: p.odds(ColAwayWinOdds),

		HomePossession: p.possession(ColHomePossession),
		AwayPossession: p.possession(ColAwayPossession),
	}
	if p.err != nil {
		return Record{}, p.err
	}
	if err := validate.Struct(rec); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			col := fieldColumns[fe.Field()]
			return Record{}, &ParseError{
				Line:   line,
				Column: col,
				Value:  strings.TrimSpace(row[col]),
				Err:    errors.Newf("violates %q constraint", constraint(fe)),
			}
		}
		return Record{}, &ParseError{Line: line, Err: err}
	}
	return rec, nil
}

func constraint(fe validator.FieldError) string {
	if fe.Param() == "" {
		return fe.Tag()
	}
	return fe.Tag() + "=" + fe.Param()
}

// rowParser keeps the first error so NormalizeRow reads as a flat field list.
type rowParser struct {
	line int
	row  RawRow
	err  error
}

func (p *rowParser) cell(col string) (string, bool) {
	if p.err != nil {
		return "", false
	}
	v, ok := p.row[col]
	if !ok {
		p.err = &ParseError{Line: p.line, Column: col, Err: errors.New("required column is absent")}
		return "", false
	}
	return strings.TrimSpace(v), true
}

func (p *rowParser) fail(col, raw string, err error) {
	p.err = &ParseError{Line: p.line, Column: col, Value: raw, Err: err}
}

func (p *rowParser) text(col string) string {
	v, _ := p.cell(col)
	return v
}

func (p *rowParser) number(col string) (decimal.Decimal, string, bool) {
	raw, ok := p.cell(col)
	if !ok {
		return decimal.Zero, raw, false
	}
	d, err := ParseLocaleDecimal(raw)
	if err != nil {
		p.fail(col, raw, err)
		return decimal.Zero, raw, false
	}
	return d, raw, true
}

func (p *rowParser) goals(col string) int {
	d, raw, ok := p.number(col)
	if !ok {
		return 0
	}
	if !d.IsInteger() {
		p.fail(col, raw, errors.New("goal count is not a whole number"))
		return 0
	}
	return int(d.IntPart())
}

func (p *rowParser) odds(col string) float64 {
	d, _, ok := p.number(col)
	if !ok {
		return 0
	}
	f, _ := d.Float64()
	return f
}

func (p *rowParser) possession(col string) *float64 {
	raw, ok := p.cell(col)
	if !ok {
		return nil
	}
	raw = strings.TrimSpace(strings.TrimSuffix(raw, "%"))
	if raw == "" {
		return nil
	}
	d, err := ParseLocaleDecimal(raw)
	if err != nil {
		p.fail(col, raw, err)
		return nil
	}
	f, _ := d.Float64()
	return &f
}

// ParseLocaleDecimal parses a number written with a comma decimal separator
// ("1,85"). Dot-decimal input is accepted unchanged.
func ParseLocaleDecimal(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return decimal.Zero, errors.New("empty value")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "not a numeric value")
	}
	return d, nil
}
