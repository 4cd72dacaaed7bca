//Package simafilt implements frequency-domain filtering of response time
//series: ideal low/high/band-pass and band-block FFT filters, plus
//window-convolution smoothing.
//
//The filters transform the signal with a real FFT (zero-padded to the next
//power of two), zero the coefficients outside the passing band and
//transform back. There is no roll-off; a component is either kept or
//blocked, which suits splitting offshore responses into wave-frequency and
//low-frequency parts at a well separated cut-off.
package simafilt

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Lowpass filters the signal x, sampled with time step dt (seconds),
// blocking harmonic content above the cut-off frequency fc (Hz).
func Lowpass(x []float64, dt, fc float64) []float64 {
	if fc == 0 {
		fc = macheps
	}
	return mask(x, dt, func(f float64) bool { return f <= fc })
}

// Highpass filters the signal x, blocking harmonic content below the
// cut-off frequency fc (Hz). Note that this blocks the signal mean.
func Highpass(x []float64, dt, fc float64) []float64 {
	if fc == 0 {
		fc = macheps
	}
	return mask(x, dt, func(f float64) bool { return f >= fc })
}

// Bandpass filters the signal x, blocking harmonic content outside the
// frequency band [flow, fupp] (Hz).
func Bandpass(x []float64, dt, flow, fupp float64) []float64 {
	if flow == 0 {
		flow = macheps
	}
	if fupp == 0 {
		fupp = macheps
	}
	return mask(x, dt, func(f float64) bool { return f >= flow && f <= fupp })
}

// Bandblock filters the signal x, blocking harmonic content inside the
// frequency band [flow, fupp] (Hz).
func Bandblock(x []float64, dt, flow, fupp float64) []float64 {
	if flow == 0 {
		flow = macheps
	}
	if fupp == 0 {
		fupp = macheps
	}
	return mask(x, dt, func(f float64) bool { return f < flow || f > fupp })
}

var macheps = math.Nextafter(1, 2) - 1

//mask runs the signal through an ideal filter keeping the frequency
//components for which pass returns true.
func mask(x []float64, dt float64, pass func(f float64) bool) []float64 {
	n := len(x)
	nfft := nextPow2(n)
	padded := make([]float64, nfft)
	copy(padded, x)
	fft := fourier.NewFFT(nfft)
	coeff := fft.Coefficients(nil, padded)
	for i := range coeff {
		if !pass(fft.Freq(i) / dt) {
			coeff[i] = 0
		}
	}
	//the gonum transform is unnormalized, the round trip scales by nfft
	y := fft.Sequence(nil, coeff)
	out := make([]float64, n)
	for i := range out {
		out[i] = y[i] / float64(nfft)
	}
	return out
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}

// Smooth smooths the signal x by convolution with a normalized window
// function of length windowLen; window is "rectangular" (moving average)
// or "hanning". The signal is extended with reflected copies at both ends
// so the output has the same length as the input with reduced transients
// at the boundaries. Window lengths below 3 return the signal unchanged.
func Smooth(x []float64, window string, windowLen int) ([]float64, error) {
	if len(x) < windowLen {
		return nil, fmt.Errorf("signal of %d samples is shorter than the %d-sample window", len(x), windowLen)
	}
	if windowLen < 3 {
		y := make([]float64, len(x))
		copy(y, x)
		return y, nil
	}
	w := make([]float64, windowLen)
	switch window {
	case "rectangular":
		for i := range w {
			w[i] = 1
		}
	case "hanning":
		for i := range w {
			w[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(windowLen-1))
		}
	default:
		return nil, fmt.Errorf("window must be 'rectangular' or 'hanning', not %q", window)
	}
	wsum := 0.0
	for _, v := range w {
		wsum += v
	}

	//reflect the signal about its end points
	n := len(x)
	p := windowLen - 1
	s := make([]float64, n+2*p)
	for i := 0; i < p; i++ {
		s[i] = 2*x[0] - x[p-i]
		s[n+p+i] = 2*x[n-1] - x[n-2-i]
	}
	copy(s[p:], x)

	h := (windowLen - 1) / 2
	y := make([]float64, n)
	for i := range y {
		acc := 0.0
		for k, wk := range w {
			acc += wk * s[i+h+p-k]
		}
		y[i] = acc / wsum
	}
	return y, nil
}
