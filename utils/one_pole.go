// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// OnePole is a single-pole low-pass filter:
//
//	y[i] = alpha*y[i-1] + (1-alpha)*x[i]
//
// with alpha = exp(-2*pi*cutoff/nyquist). The zero value passes input through
// unchanged.
type OnePole struct {
	alpha float64
	y     float64
}

// NewOnePole builds a filter for cutoff Hz at sampleRate Hz, starting from y[-1] = 0.
func NewOnePole(cutoff, sampleRate float64) *OnePole {
	return &OnePole{alpha: OnePoleAlpha(cutoff, sampleRate)}
}

// OnePoleAlpha returns the decay coefficient for cutoff at sampleRate.
func OnePoleAlpha(cutoff, sampleRate float64) float64 {
	ratio := cutoff / (sampleRate / 2)
	return math.Exp(-2 * math.Pi * ratio)
}

// Alpha is the decay coefficient in use.
func (f *OnePole) Alpha() float64 { return f.alpha }

// Reset sets the filter history to y.
func (f *OnePole) Reset(y float64) { f.y = y }

// Process filters one sample.
func (f *OnePole) Process(x float64) float64 {
	f.y = f.alpha*f.y + (1-f.alpha)*x
	return f.y
}
