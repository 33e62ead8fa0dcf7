package match

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Sentinels matched with errors.Is against the typed errors below.
var (
	ErrParse         = errors.New("parse error")
	ErrNoData        = errors.New("insufficient data")
	ErrInvalidFilter = errors.New("invalid filter")
)

// ParseError reports a malformed source row or a missing column. Loading
// cannot recover from it.
type ParseError struct {
	Line   int // 1-based source line, header included; 0 for header problems
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	if e == nil {
		return ErrParse.Error()
	}
	var where string
	switch {
	case e.Line > 0 && e.Column != "":
		where = fmt.Sprintf("line %d, column %q", e.Line, e.Column)
	case e.Line > 0:
		where = fmt.Sprintf("line %d", e.Line)
	case e.Column != "":
		where = fmt.Sprintf("column %q", e.Column)
	default:
		where = "input"
	}
	if e.Value != "" {
		return fmt.Sprintf("parse error at %s (value %q): %v", where, e.Value, e.Err)
	}
	return fmt.Sprintf("parse error at %s: %v", where, e.Err)
}

func (e *ParseError) Unwrap() error        { return e.Err }
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// NoDataError reports that an aggregate has too few qualifying records.
type NoDataError struct {
	Op   string // e.g. "mean", "stddev", "correlation"
	What string // field or subject name
	Need int
	Have int
}

func (e *NoDataError) Error() string {
	if e == nil {
		return ErrNoData.Error()
	}
	subject := e.Op
	if e.What != "" {
		subject = fmt.Sprintf("%s of %s", e.Op, e.What)
	}
	return fmt.Sprintf("insufficient data for %s: need %d record(s), have %d", subject, e.Need, e.Have)
}

func (e *NoDataError) Is(target error) bool { return target == ErrNoData }

// InvalidFilterError reports a categorical value that does not occur in the
// collection. Callers should treat it as an empty result.
type InvalidFilterError struct {
	Field string
	Value string
}

func (e *InvalidFilterError) Error() string {
	if e == nil {
		return ErrInvalidFilter.Error()
	}
	return fmt.Sprintf("no records with %s = %q", e.Field, e.Value)
}

func (e *InvalidFilterError) Is(target error) bool { return target == ErrInvalidFilter }

// IsNoData reports whether err signals insufficient data.
func IsNoData(err error) bool { return errors.Is(err, ErrNoData) }
