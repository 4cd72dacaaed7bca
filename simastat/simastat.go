//Package simastat implements the statistical inference used on response
//time series: sample moments, mean-level crossing rates, peak extraction
//and empirical distribution functions.
package simastat

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Mean returns the sample mean of x.
func Mean(x []float64) float64 {
	return stat.Mean(x, nil)
}

// Std returns the sample standard deviation of x.
func Std(x []float64) float64 {
	return stat.StdDev(x, nil)
}

// Skewness returns the sample skewness of x.
func Skewness(x []float64) float64 {
	return stat.Skew(x, nil)
}

// Kurtosis returns the sample kurtosis of x (not excess kurtosis, so a
// Gaussian signal gives 3).
func Kurtosis(x []float64) float64 {
	return stat.ExKurtosis(x, nil) + 3
}

// AverageFrequency returns the average frequency (Hz) of mean-level
// crossings of the signal x sampled at times t. With up, the period is
// based on the average time between up-crossings, otherwise between
// down-crossings.
func AverageFrequency(t, x []float64, up bool) (float64, error) {
	if len(t) != len(x) {
		return 0, fmt.Errorf("time and signal lengths differ: %d vs %d", len(t), len(x))
	}
	ind := crossings(x, up)
	if len(ind) < 2 {
		return 0, fmt.Errorf("signal crosses its mean level fewer than twice")
	}
	d := (t[ind[len(ind)-1]] - t[ind[0]]) / float64(len(ind)-1)
	return 1 / d, nil
}

// FindMaxima returns the maxima of the signal x, sorted ascending, along
// with their indices in x. By default only global maxima are considered,
// i.e. the largest maximum between consecutive mean-level up-crossings
// (down-crossings if up is false). With local, every turning point with a
// negative second difference is included instead. threshold, if given,
// discards maxima below it. A signal that crosses its mean fewer than
// twice has no maxima in this sense, and empty slices are returned.
func FindMaxima(x []float64, local, up bool, threshold ...float64) ([]float64, []int) {
	ci := crossings(x, up)
	if len(ci) < 2 {
		return []float64{}, []int{}
	}
	var maxima []float64
	var indices []int
	if !local {
		//keep the largest value on each crossing-to-crossing stretch. The
		//last stretch is extended to the end of the signal so slow
		//oscillations don't lose their final peak.
		if ci[len(ci)-1] < len(x)-1 {
			ci = append(ci, len(x)-1)
		}
		for j := 0; j < len(ci)-1; j++ {
			imax := ci[j]
			for i := ci[j] + 1; i < ci[j+1]; i++ {
				if x[i] > x[imax] {
					imax = i
				}
			}
			maxima = append(maxima, x[imax])
			indices = append(indices, imax)
		}
	} else {
		for i := 1; i < len(x)-1; i++ {
			if x[i] >= x[i-1] && x[i] > x[i+1] {
				maxima = append(maxima, x[i])
				indices = append(indices, i)
			}
		}
	}
	if len(threshold) > 0 {
		var m []float64
		var ind []int
		for i, v := range maxima {
			if v >= threshold[0] {
				m = append(m, v)
				ind = append(ind, indices[i])
			}
		}
		maxima, indices = m, ind
	}
	order := make([]int, len(maxima))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return maxima[order[i]] < maxima[order[j]] })
	sm := make([]float64, len(maxima))
	si := make([]int, len(maxima))
	for i, o := range order {
		sm[i] = maxima[o]
		si[i] = indices[o]
	}
	return sm, si
}

//crossings returns the indices of mean-level up-crossings (or
//down-crossings) of x: the first sample on the far side of the mean.
func crossings(x []float64, up bool) []int {
	mean := stat.Mean(x, nil)
	var ind []int
	for i := 1; i < len(x); i++ {
		if up && x[i-1]-mean <= 0 && x[i]-mean > 0 {
			ind = append(ind, i)
		} else if !up && x[i-1]-mean >= 0 && x[i]-mean < 0 {
			ind = append(ind, i)
		}
	}
	return ind
}

// EmpiricalCDF returns the empirical cumulative distribution function for
// a sample of size n, i.e. the plotting positions for the sorted sample.
// kind selects the formulation:
//
//	"mean"         i/(n+1)            (Weibull, Gumbel's recommendation)
//	"median"       (i-0.3)/(n+0.4)
//	"symmetrical"  (i-0.5)/n
//	"beard"        (i-0.31)/(n+0.38)  (Jenkinson/Beard)
//	"gringorten"   (i-0.44)/(n+0.12)
func EmpiricalCDF(n int, kind string) ([]float64, error) {
	var a, b float64
	switch kind {
	case "mean":
		a, b = 0, 1
	case "median":
		a, b = 0.3, 0.4
	case "symmetrical":
		a, b = 0.5, 0
	case "beard":
		a, b = 0.31, 0.38
	case "gringorten":
		a, b = 0.44, 0.12
	default:
		return nil, fmt.Errorf("distribution kind must be one of 'mean', 'median', 'symmetrical', 'beard', 'gringorten', not %q", kind)
	}
	f := make([]float64, n)
	for i := range f {
		f[i] = (float64(i+1) - a) / (float64(n) + b)
	}
	return f, nil
}

// Autocorrelation returns the autocorrelation coefficients of x for all
// lags from 0 to len(x)-1. The coefficients can be plotted against the
// time vector associated with x.
func Autocorrelation(x []float64) []float64 {
	n := len(x)
	mean := stat.Mean(x, nil)
	c0 := 0.0
	for _, v := range x {
		c0 += (v - mean) * (v - mean)
	}
	c0 /= float64(n)
	acf := make([]float64, n)
	for h := 0; h < n; h++ {
		s := 0.0
		for i := 0; i < n-h; i++ {
			s += (x[i] - mean) * (x[i+h] - mean)
		}
		acf[h] = s / float64(n) / c0
	}
	return acf
}
