//Package rainflow implements rainflow cycle counting according to
//ASTM E1049-85 (2011), section 5.4.4, for fatigue assessment of response
//time series.
package rainflow

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// A Cycle is one counted stress/tension cycle: its range (peak to valley),
// its mean value, and its count. Counts are 1 for full cycles and 0.5 for
// half cycles; after rebinning they are bin totals.
type Cycle struct {
	Range float64
	Mean  float64
	Count float64
}

// Reversals returns the reversal points of the series, i.e. the points
// where its first difference changes sign. The first and last points of
// the series are never reversals and are left out, unless endpoints is
// true (useful when the series already is an array of reversal points).
func Reversals(series []float64, endpoints bool) []float64 {
	if len(series) < 2 {
		return nil
	}
	var rev []float64
	x := series[1]
	dLast := x - series[0]
	if endpoints {
		rev = append(rev, series[0])
	}
	for _, xNext := range series[2:] {
		if xNext == x {
			continue
		}
		dNext := xNext - x
		if dLast*dNext < 0 {
			rev = append(rev, x)
		}
		x = xNext
		dLast = dNext
	}
	if endpoints {
		rev = append(rev, x)
	}
	return rev
}

// Cycles extracts the full and half cycles of the series following the
// ASTM E1049 rainflow rules. Full cycles carry Count 1 and half cycles
// Count 0.5. endpoints is passed on to Reversals.
func Cycles(series []float64, endpoints bool) (full, half []Cycle) {
	var points []float64
	for _, r := range Reversals(series, endpoints) {
		points = append(points, r)
		for len(points) >= 3 {
			n := len(points)
			x := math.Abs(points[n-2] - points[n-1])
			y := math.Abs(points[n-3] - points[n-2])
			m := 0.5 * (points[n-2] + points[n-3])
			if x < y {
				//read the next point
				break
			}
			if n == 3 {
				//y contains the starting point; count y as a half
				//cycle and discard the first point
				half = append(half, Cycle{y, m, 0.5})
				points = points[1:]
			} else {
				//count y as one cycle and discard its peak and valley,
				//keeping the newest point
				full = append(full, Cycle{y, m, 1})
				points[n-3] = points[n-1]
				points = points[:n-2]
			}
		}
	}
	//count the remaining ranges as half cycles
	for n := len(points); n > 1; n-- {
		half = append(half, Cycle{math.Abs(points[n-2] - points[n-1]), 0.5 * (points[n-1] + points[n-2]), 0.5})
		points = points[:n-1]
	}
	return full, half
}

// CountCycles counts the cycle range and mean combinations of the series,
// returning them sorted by increasing range, then increasing mean. Since
// half cycles count 0.5, the counts are not necessarily whole numbers.
func CountCycles(series []float64, endpoints bool) []Cycle {
	full, half := Cycles(series, endpoints)
	counts := append(full, half...)
	sort.SliceStable(counts, func(i, j int) bool {
		if counts[i].Range != counts[j].Range {
			return counts[i].Range < counts[j].Range
		}
		return counts[i].Mean < counts[j].Mean
	})
	return counts
}

// Rebin gathers cycles into equidistant bins by range (binby "range") or
// by mean (binby "mean"). Either the number of bins n or the bin width w
// must be given; w overrules n. The binned quantity is represented by the
// bin midpoint and the other quantity by its count-weighted average within
// the bin (NaN for empty bins).
//
// Rebinning may shift cycles to bins whose midpoint differs notably from
// the original value; rebin for plotting, but compute fatigue damage from
// the raw cycles.
func Rebin(cycles []Cycle, binby string, n int, w float64) ([]Cycle, error) {
	if len(cycles) == 0 {
		return nil, fmt.Errorf("no cycles to rebin")
	}
	if n <= 0 && w <= 0 {
		return nil, fmt.Errorf("specify either the number of bins n or the bin width w")
	}
	byRange := false
	switch binby {
	case "range":
		byRange = true
	case "mean":
	default:
		return nil, fmt.Errorf("unable to bin by %q, must be either 'range' or 'mean'", binby)
	}

	var start, stop float64
	if byRange {
		for _, c := range cycles {
			stop = math.Max(stop, c.Range)
		}
	} else {
		start, stop = cycles[0].Mean, cycles[0].Mean
		for _, c := range cycles {
			start = math.Min(start, c.Mean)
			stop = math.Max(stop, c.Mean)
		}
	}

	var bins []float64
	if w > 0 {
		for v := start; v < stop+w; v += w {
			bins = append(bins, v)
		}
	} else {
		bins = floats.Span(make([]float64, n+1), start, stop)
	}

	out := make([]Cycle, 0, len(bins)-1)
	for i := 0; i < len(bins)-1; i++ {
		lo, hi := bins[i], bins[i+1]
		mid := 0.5 * (lo + hi)
		var count, wsum float64
		for _, c := range cycles {
			v := c.Mean
			if byRange {
				v = c.Range
			}
			if v > lo && v <= hi {
				count += c.Count
				if byRange {
					wsum += c.Count * c.Mean
				} else {
					wsum += c.Count * c.Range
				}
			}
		}
		other := math.NaN()
		if count > 0 {
			other = wsum / count
		}
		if byRange {
			out = append(out, Cycle{mid, other, count})
		} else {
			out = append(out, Cycle{other, mid, count})
		}
	}
	return out, nil
}
