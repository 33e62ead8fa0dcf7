// Package dataset reads match tables from CSV or XLSX files and keeps the
// current normalized collection.
package dataset

import (
	"encoding/csv"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/KaramelBytes/statloom-cli/internal/match"
	"github.com/cockroachdb/errors"
)

// DefaultDelimiter is the field separator of the published match exports.
const DefaultDelimiter = ';'

// ParseDelimiter decodes a delimiter setting. Empty means DefaultDelimiter;
// anything other than one character is an error.
func ParseDelimiter(s string) (rune, error) {
	if s == "" {
		return DefaultDelimiter, nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, errors.Newf("delimiter must be a single character, got %q", s)
	}
	return r, nil
}

// Table is a header plus the data rows keyed by column name. Lines holds the
// 1-based source line of each row, counting the header and skipped lines.
type Table struct {
	Header []string
	Rows   []match.RawRow
	Lines  []int
}

func (t *Table) add(line int, row match.RawRow) {
	t.Rows = append(t.Rows, row)
	t.Lines = append(t.Lines, line)
}

// ReadCSV reads a delimited table. A zero delimiter means DefaultDelimiter.
// Short rows leave their missing cells empty; blank lines are skipped.
func ReadCSV(r io.Reader, delim rune) (*Table, error) {
	if delim == 0 {
		delim = DefaultDelimiter
	}
	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &match.ParseError{Err: errors.New("empty input")}
		}
		return nil, errors.Wrap(err, "read header")
	}
	header = cleanHeader(header)

	t := &Table{Header: header}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, &match.ParseError{Line: pe.Line, Err: pe.Err}
			}
			return nil, errors.Wrap(err, "read csv")
		}
		if blank(rec) {
			continue
		}
		line, _ := cr.FieldPos(0)
		t.add(line, toRow(header, rec))
	}
	return t, nil
}

func cleanHeader(h []string) []string {
	out := make([]string, len(h))
	for i, name := range h {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		out[i] = strings.TrimSpace(name)
	}
	return out
}

func toRow(header, rec []string) match.RawRow {
	row := make(match.RawRow, len(header))
	for i, name := range header {
		if name == "" {
			continue
		}
		if i < len(rec) {
			row[name] = rec[i]
		} else {
			row[name] = ""
		}
	}
	return row
}

func blank(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
