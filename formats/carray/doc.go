// SPDX-License-Identifier: EPL-2.0

// Package carray renders 16-bit PCM buffers as C source files.
//
// The output is a fixed layout that embedded projects can drop into a build:
//
//	// Generated C array for sine wave data (1 cycle)
//	// Sample rate: 44100 Hz
//	// ...
//
//	#include <stdint.h>
//
//	const int16_t sine_wave_cycle[] = {
//	    0, 1867, 3729, ..., 27498,
//	    ...
//	};
//
//	const size_t sine_wave_cycle_size = 100;
//	const double sine_wave_cycle_frequency = 440;
//	const uint32_t sine_wave_cycle_sample_rate = 44100;
//
// Values are printed 16 per line, indented four spaces and separated by
// ", ". Real numbers in comments and constants use six significant digits.
//
// Write renders any Layout; WriteWave builds the layout from synth.Params
// and never synthesizes anything itself.
package carray
