package stats

import (
	"math"

	"github.com/KaramelBytes/statloom-cli/internal/match"
)

// CorrFields is the fixed field set of the correlation matrix.
var CorrFields = []Field{HomeGoals, AwayGoals, HomeGoalsFH, AwayGoalsFH, HomePossession, AwayPossession}

// CorrMatrix holds a symmetric Pearson correlation matrix.
type CorrMatrix struct {
	Fields []Field     `json:"fields" yaml:"fields"`
	Values [][]float64 `json:"values" yaml:"values"` // row-major, Values[i][j]
	// N is the number of complete rows used; Excluded rows had a null.
	N        int `json:"n" yaml:"n"`
	Excluded int `json:"excluded" yaml:"excluded"`
	// Constant fields have zero variance; their off-diagonal entries are 0.
	Constant []Field `json:"constant,omitempty" yaml:"constant,omitempty"`
}

// At returns the coefficient for fields a and b.
func (m *CorrMatrix) At(a, b Field) (float64, bool) {
	i, j := m.index(a), m.index(b)
	if i < 0 || j < 0 {
		return 0, false
	}
	return m.Values[i][j], true
}

func (m *CorrMatrix) index(f Field) int {
	for i, x := range m.Fields {
		if x == f {
			return i
		}
	}
	return -1
}

// Correlate computes Pearson coefficients across CorrFields. A row with a
// null in any field is dropped from the whole computation.
func Correlate(s match.Subset) (*CorrMatrix, error) {
	k := len(CorrFields)
	var rows [][]float64
	excluded := 0
	for _, r := range s {
		row := make([]float64, k)
		complete := true
		for i, f := range CorrFields {
			v, ok := f.Value(r)
			if !ok {
				complete = false
				break
			}
			row[i] = v
		}
		if !complete {
			excluded++
			continue
		}
		rows = append(rows, row)
	}
	n := len(rows)
	if n < 2 {
		return nil, &match.NoDataError{Op: "correlation", Need: 2, Have: n}
	}

	means := make([]float64, k)
	constant := make([]bool, k)
	for i := 0; i < k; i++ {
		constant[i] = true
		for _, row := range rows {
			means[i] += row[i]
			if row[i] != rows[0][i] {
				constant[i] = false
			}
		}
		means[i] /= float64(n)
	}

	m := &CorrMatrix{Fields: append([]Field(nil), CorrFields...), N: n, Excluded: excluded}
	m.Values = make([][]float64, k)
	for i := range m.Values {
		m.Values[i] = make([]float64, k)
	}
	for i := 0; i < k; i++ {
		if constant[i] {
			m.Constant = append(m.Constant, CorrFields[i])
		}
		m.Values[i][i] = 1
		for j := 0; j < i; j++ {
			var r float64
			if !constant[i] && !constant[j] {
				r = pearson(rows, i, j, means[i], means[j])
			}
			m.Values[i][j] = r
			m.Values[j][i] = r
		}
	}
	return m, nil
}

func pearson(rows [][]float64, a, b int, ma, mb float64) float64 {
	var sxy, sxx, syy float64
	for _, row := range rows {
		dx := row[a] - ma
		dy := row[b] - mb
		sxy += dx * dy
		sxx += dx * dx
		syy += dy * dy
	}
	denom := math.Sqrt(sxx * syy)
	if denom == 0 {
		return 0
	}
	r := sxy / denom
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	return r
}
