package stats

import (
	"math"

	"github.com/KaramelBytes/statloom-cli/internal/match"
)

// welford accumulates mean and squared deviations in one pass.
type welford struct {
	n        int
	mean, m2 float64
	min, max float64
}

func (w *welford) add(x float64) {
	if w.n == 0 {
		w.min, w.max = x, x
	}
	w.n++
	if x < w.min {
		w.min = x
	}
	if x > w.max {
		w.max = x
	}
	delta := x - w.mean
	w.mean += delta / float64(w.n)
	w.m2 += delta * (x - w.mean)
}

// variance is the sample variance; callers guarantee n >= 2.
func (w *welford) variance() float64 {
	if w.min == w.max {
		return 0
	}
	return w.m2 / float64(w.n-1)
}

func accumulate(s match.Subset, f Field) *welford {
	w := &welford{}
	for _, r := range s {
		if v, ok := f.Value(r); ok {
			w.add(v)
		}
	}
	return w
}

// Count returns the number of records in s.
func Count(s match.Subset) int { return len(s) }

// Mean averages the non-null values of f.
func Mean(s match.Subset, f Field) (float64, error) {
	w := accumulate(s, f)
	if w.n == 0 {
		return 0, &match.NoDataError{Op: "mean", What: f.Label(), Need: 1, Have: 0}
	}
	return w.mean, nil
}

// Variance is the sample variance (divisor n-1) of f.
func Variance(s match.Subset, f Field) (float64, error) {
	w := accumulate(s, f)
	if w.n < 2 {
		return 0, &match.NoDataError{Op: "variance", What: f.Label(), Need: 2, Have: w.n}
	}
	return w.variance(), nil
}

// StdDev is the sample standard deviation (divisor n-1) of f.
func StdDev(s match.Subset, f Field) (float64, error) {
	w := accumulate(s, f)
	if w.n < 2 {
		return 0, &match.NoDataError{Op: "stddev", What: f.Label(), Need: 2, Have: w.n}
	}
	return math.Sqrt(w.variance()), nil
}

// Rate returns the percentage of records in s that satisfy pred.
func Rate(s match.Subset, pred func(match.Record) bool) (float64, error) {
	if len(s) == 0 {
		return 0, &match.NoDataError{Op: "rate", Need: 1, Have: 0}
	}
	hits := 0
	for _, r := range s {
		if pred(r) {
			hits++
		}
	}
	return float64(hits) * 100 / float64(len(s)), nil
}

// Tally counts the records in s that satisfy pred.
func Tally(s match.Subset, pred func(match.Record) bool) int {
	n := 0
	for _, r := range s {
		if pred(r) {
			n++
		}
	}
	return n
}

// Summary describes one numeric field over a subset. StdDev and Variance are
// nil when fewer than two values are present.
type Summary struct {
	Field    Field    `json:"field" yaml:"field"`
	Label    string   `json:"label" yaml:"label"`
	Count    int      `json:"count" yaml:"count"`
	Mean     float64  `json:"mean" yaml:"mean"`
	Min      float64  `json:"min" yaml:"min"`
	Max      float64  `json:"max" yaml:"max"`
	StdDev   *float64 `json:"stddev,omitempty" yaml:"stddev,omitempty"`
	Variance *float64 `json:"variance,omitempty" yaml:"variance,omitempty"`
}

// Describe summarizes f over s, failing with NoDataError when f has no values.
func Describe(s match.Subset, f Field) (Summary, error) {
	w := accumulate(s, f)
	if w.n == 0 {
		return Summary{Field: f, Label: f.Label()}, &match.NoDataError{Op: "summary", What: f.Label(), Need: 1, Have: 0}
	}
	sum := Summary{Field: f, Label: f.Label(), Count: w.n, Mean: w.mean, Min: w.min, Max: w.max}
	if w.n >= 2 {
		v := w.variance()
		sd := math.Sqrt(v)
		sum.Variance, sum.StdDev = &v, &sd
	}
	return sum, nil
}

// Summarize describes each requested field (all fields when none are given).
// Fields without values are returned with Count 0.
func Summarize(s match.Subset, fields ...Field) []Summary {
	if len(fields) == 0 {
		fields = Fields
	}
	out := make([]Summary, 0, len(fields))
	for _, f := range fields {
		sum, _ := Describe(s, f)
		out = append(out, sum)
	}
	return out
}
