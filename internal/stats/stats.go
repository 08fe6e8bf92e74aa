// Package stats derives summary statistics from a vector.Vector.
//
// Every function reads a snapshot of the vector and never mutates it.
// Results are recomputed on each call. All functions fail with
// vector.ErrEmptyCollection for an empty vector.
package stats

import (
	"slices"

	"github.com/roach88/clampvec/internal/vector"
)

// Summary holds every statistic for one vector.
type Summary struct {
	Count  int     `json:"count"`
	Min    int     `json:"min"`
	Max    int     `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
}

// Min returns the smallest element.
func Min(v *vector.Vector) (int, error) {
	return scan(v, "min", func(x, best int) bool { return x < best })
}

// Max returns the largest element.
func Max(v *vector.Vector) (int, error) {
	return scan(v, "max", func(x, best int) bool { return x > best })
}

// scan returns the first element not beaten by any later element.
func scan(v *vector.Vector, op string, better func(x, best int) bool) (int, error) {
	vals := v.Values()
	if len(vals) == 0 {
		return 0, vector.NewEmptyCollectionError(op)
	}
	best := vals[0]
	for _, x := range vals[1:] {
		if better(x, best) {
			best = x
		}
	}
	return best, nil
}

// Mean returns the arithmetic mean. The sum is accumulated as int64.
func Mean(v *vector.Vector) (float64, error) {
	vals := v.Values()
	if len(vals) == 0 {
		return 0, vector.NewEmptyCollectionError("mean")
	}
	var sum int64
	for _, x := range vals {
		sum += int64(x)
	}
	return float64(sum) / float64(len(vals)), nil
}

// Median returns the middle element of a sorted copy, or the mean of the two
// middle elements when the length is even.
func Median(v *vector.Vector) (float64, error) {
	sorted := v.Values()
	if len(sorted) == 0 {
		return 0, vector.NewEmptyCollectionError("median")
	}
	slices.Sort(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return float64(sorted[mid-1]+sorted[mid]) / 2, nil
	}
	return float64(sorted[mid]), nil
}

// Summarize computes all statistics at once.
func Summarize(v *vector.Vector) (Summary, error) {
	var s Summary
	var err error

	s.Count = v.Len()
	if s.Min, err = Min(v); err != nil {
		return Summary{}, err
	}
	if s.Max, err = Max(v); err != nil {
		return Summary{}, err
	}
	if s.Mean, err = Mean(v); err != nil {
		return Summary{}, err
	}
	if s.Median, err = Median(v); err != nil {
		return Summary{}, err
	}
	return s, nil
}
