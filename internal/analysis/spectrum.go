// Package analysis provides frequency analysis of energy-density series.
package analysis

import (
	"math"
	"math/cmplx"
)

// FFT computes the discrete Fourier transform of data, zero-padding to the
// next power of two.
func FFT(data []float64) []complex128 {
	padded := pad(data)
	c := make([]complex128, len(padded))
	for i, v := range padded {
		c[i] = complex(v, 0)
	}
	return fft(c)
}

func fft(data []complex128) []complex128 {
	n := len(data)
	if n <= 1 {
		return data
	}

	even := make([]complex128, n/2)
	odd := make([]complex128, n/2)
	for i := 0; i < n/2; i++ {
		even[i] = data[2*i]
		odd[i] = data[2*i+1]
	}

	feven := fft(even)
	fodd := fft(odd)

	result := make([]complex128, n)
	for k := 0; k < n/2; k++ {
		w := cmplx.Exp(complex(0, -2*math.Pi*float64(k)/float64(n)))
		result[k] = feven[k] + w*fodd[k]
		result[k+n/2] = feven[k] - w*fodd[k]
	}
	return result
}

func pad(data []float64) []float64 {
	n := 1
	for n < len(data) {
		n *= 2
	}
	if n == len(data) {
		return data
	}
	padded := make([]float64, n)
	copy(padded, data)
	return padded
}

// PowerSpectrum returns the magnitude of the positive-frequency half of
// the transform.
func PowerSpectrum(data []float64) []float64 {
	f := FFT(data)
	ps := make([]float64, len(f)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(f[i])
	}
	return ps
}

// DominantFrequency returns the strongest non-DC frequency in hertz for a
// series sampled every dt seconds. Returns 0 for series too short to
// analyze.
func DominantFrequency(data []float64, dt float64) float64 {
	if len(data) < 4 || dt <= 0 {
		return 0
	}

	ps := PowerSpectrum(data)
	n := 2 * len(ps)

	best, bestIdx := 0.0, 0
	for i := 1; i < len(ps); i++ {
		if ps[i] > best {
			best = ps[i]
			bestIdx = i
		}
	}

	return float64(bestIdx) / (float64(n) * dt)
}
