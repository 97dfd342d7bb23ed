// Package spectrum provides spectral diagnostics for generated strain
// series: a Hann-windowed one-sided power spectrum of either detector
// channel and the frequency of its strongest bin.
//
// Windowing uses github.com/mjibson/go-dsp/window; the transform is the
// real FFT of gonum.org/v1/gonum/dsp/fourier. The DC bin is excluded from
// peak search.
package spectrum
