package metrics

import (
	"github.com/mjibson/go-dsp/fft"
)

// Autocorrelation returns the normalised autocorrelation of x for lags
// 0..len(x)-1, computed through a zero-padded FFT so the sum is linear, not
// circular. A constant or empty series returns nil.
func Autocorrelation(x []float64) []float64 {
	n := len(x)
	if n == 0 {
		return nil
	}

	mean := 0.0
	for _, v := range x {
		mean += v
	}
	mean /= float64(n)

	padded := make([]float64, 2*n)
	for i, v := range x {
		padded[i] = v - mean
	}

	power := fft.FFTReal(padded)
	for i, c := range power {
		power[i] = complex(real(c)*real(c)+imag(c)*imag(c), 0)
	}
	raw := fft.IFFT(power)

	c0 := real(raw[0])
	if c0 <= 1e-12*float64(n) {
		return nil
	}
	acf := make([]float64, n)
	for t := range acf {
		acf[t] = real(raw[t]) / c0
	}
	return acf
}

// IntegratedTime is the integrated autocorrelation time of x in sweeps,
// 1/2 + sum of rho(t), truncated at the first lag where rho drops to zero.
// Uncorrelated samples give 1/2; a constant series gives 0.
func IntegratedTime(x []float64) float64 {
	acf := Autocorrelation(x)
	if acf == nil {
		return 0
	}

	tau := 0.5
	for t := 1; t < len(acf); t++ {
		if acf[t] <= 0 {
			break
		}
		tau += acf[t]
	}
	return tau
}
