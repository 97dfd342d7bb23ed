// SPDX-License-Identifier: MIT
// Package: spectrum
//
// spectrum.go - windowed power spectrum and peak search.

package spectrum

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/window"
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/floats"
)

// Channel selects one of the two detector outputs packed in a waveform
// sample h = hI − i·hII.
type Channel int

const (
	// ChannelI is real(h).
	ChannelI Channel = iota
	// ChannelII is −imag(h).
	ChannelII
)

// String names the channel.
func (c Channel) String() string {
	if c == ChannelII {
		return "II"
	}

	return "I"
}

// Extract copies channel c of h into a new real series.
func Extract(h []complex128, c Channel) []float64 {
	x := make([]float64, len(h))
	for i, v := range h {
		if c == ChannelII {
			x[i] = -imag(v)
		} else {
			x[i] = real(v)
		}
	}

	return x
}

// Spectrum is a one-sided power spectrum.
//
// Fields:
//   - Freqs: bin centre frequencies, Hz; Freqs[k] = k/(n·dt).
//   - Power: |X_k|² of the Hann-windowed series.
type Spectrum struct {
	Freqs []float64
	Power []float64
}

// Power computes the one-sided power spectrum of x sampled every dt
// seconds. x is not modified.
func Power(x []float64, dt float64) (Spectrum, error) {
	if len(x) < 2 {
		return Spectrum{}, spectrumErrorf(MethodPower, ErrTooShort, "n=%d", len(x))
	}
	if !(dt > 0) || math.IsInf(dt, 0) {
		return Spectrum{}, spectrumErrorf(MethodPower, ErrBadSpacing, "dt=%v", dt)
	}

	w := append([]float64(nil), x...)
	window.Apply(w, window.Hann)

	fft := fourier.NewFFT(len(w))
	coeff := fft.Coefficients(nil, w)
	s := Spectrum{
		Freqs: make([]float64, len(coeff)),
		Power: make([]float64, len(coeff)),
	}
	for k, c := range coeff {
		s.Freqs[k] = fft.Freq(k) / dt
		a := cmplx.Abs(c)
		s.Power[k] = a * a
	}

	return s, nil
}

// Peak returns the frequency of the strongest non-DC bin.
func (s Spectrum) Peak() float64 {
	if len(s.Power) < 2 {
		return 0
	}

	return s.Freqs[1+floats.MaxIdx(s.Power[1:])]
}

// DominantFrequency is Power(Extract(h, c), dt).Peak().
func DominantFrequency(h []complex128, dt float64, c Channel) (float64, error) {
	s, err := Power(Extract(h, c), dt)
	if err != nil {
		return 0, spectrumErrorf(MethodDominantFrequency, err, "channel %s", c)
	}

	return s.Peak(), nil
}
