// SPDX-License-Identifier: EPL-2.0

package pcmgen

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ik5/pcmgen/formats/aiff"
	"github.com/ik5/pcmgen/formats/carray"
	"github.com/ik5/pcmgen/formats/wav"
	"github.com/ik5/pcmgen/internal/output"
	"github.com/ik5/pcmgen/synth"
)

// Job describes one generation run. Empty paths are skipped.
type Job struct {
	Params synth.Params

	WAVPath  string
	AIFFPath string

	ArrayPath string
	ArrayName string

	CyclePath string
	CycleName string
}

// Result reports what Run produced.
type Result struct {
	Samples []int16
	Cycle   []int16
	Written []string
}

type runConfig struct {
	rng       synth.RandomSource
	logger    *zap.Logger
	outputOps []output.Option
}

// Option customizes Run.
type Option func(*runConfig)

// WithRandomSource sets the noise source. Ignored for sine jobs.
func WithRandomSource(rng synth.RandomSource) Option {
	return func(c *runConfig) { c.rng = rng }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(c *runConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithOutputOptions applies opts to every file Run writes.
func WithOutputOptions(opts ...output.Option) Option {
	return func(c *runConfig) { c.outputOps = append(c.outputOps, opts...) }
}

// Run validates job.Params, synthesizes the buffer and writes the
// requested files in order: WAV, AIFF, full array, single-cycle array.
//
// A WAV or AIFF failure aborts the run with a nil Result. Array failures
// do not stop the other array; they are joined and returned together with
// a non-nil Result.
func Run(job Job, opts ...Option) (*Result, error) {
	cfg := runConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.logger.With(
		zap.Stringer("kind", job.Params.Kind),
		zap.Int("sample_rate", job.Params.SampleRate),
	)

	if err := synth.Validate(job.Params); err != nil {
		return nil, err
	}
	samples, err := synth.Generate(job.Params, cfg.rng)
	if err != nil {
		return nil, err
	}
	log.Debug("generated samples", zap.Int("count", len(samples)))

	res := &Result{Samples: samples}

	if job.WAVPath != "" {
		if err := wav.WriteFile(job.WAVPath, job.Params.SampleRate, samples, cfg.outputOps...); err != nil {
			return nil, fmt.Errorf("writing %s: %w", job.WAVPath, err)
		}
		res.Written = append(res.Written, job.WAVPath)
		log.Info("wrote wav", zap.String("path", job.WAVPath), zap.Int("samples", len(samples)))
	}

	if job.AIFFPath != "" {
		if err := aiff.WriteFile(job.AIFFPath, job.Params.SampleRate, samples, cfg.outputOps...); err != nil {
			return nil, fmt.Errorf("writing %s: %w", job.AIFFPath, err)
		}
		res.Written = append(res.Written, job.AIFFPath)
		log.Info("wrote aiff", zap.String("path", job.AIFFPath))
	}

	var arrayErrs []error

	if job.ArrayPath != "" {
		err := carray.WriteFile(job.ArrayPath, samples, job.Params, job.ArrayName, false, cfg.outputOps...)
		if err != nil {
			log.Warn("array not written", zap.String("path", job.ArrayPath), zap.Error(err))
			arrayErrs = append(arrayErrs, fmt.Errorf("writing %s: %w", job.ArrayPath, err))
		} else {
			res.Written = append(res.Written, job.ArrayPath)
			log.Info("wrote array", zap.String("path", job.ArrayPath), zap.String("name", job.ArrayName))
		}
	}

	if job.CyclePath != "" {
		if err := writeCycle(job, res, cfg.outputOps); err != nil {
			log.Warn("cycle array not written", zap.String("path", job.CyclePath), zap.Error(err))
			arrayErrs = append(arrayErrs, fmt.Errorf("writing %s: %w", job.CyclePath, err))
		} else {
			res.Written = append(res.Written, job.CyclePath)
			log.Info("wrote cycle array",
				zap.String("path", job.CyclePath),
				zap.Int("samples", len(res.Cycle)),
			)
		}
	}

	return res, errors.Join(arrayErrs...)
}

func writeCycle(job Job, res *Result, opts []output.Option) error {
	cycle, err := synth.SingleCycle(job.Params)
	if err != nil {
		return err
	}
	res.Cycle = cycle

	return carray.WriteFile(job.CyclePath, cycle, job.Params, job.CycleName, true, opts...)
}
