// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ik5/pcmgen"
	"github.com/ik5/pcmgen/internal/config"
	"github.com/ik5/pcmgen/internal/output"
	"github.com/ik5/pcmgen/synth"
)

// derived is the NoOptDefVal for --c-array and --c-cycle; it asks for a
// file name next to the WAV output.
const derived = "-"

type generateOptions struct {
	arrayPath string
	arrayName string
	cyclePath string
	cycleName string
	aiffPath  string
	noClobber bool
}

func newGenerateCommand(a *app) *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Synthesize a tone or noise and write it out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runGenerate(cmd.OutOrStdout(), opts)
		},
	}

	f := cmd.Flags()
	f.Int("rate", 44100, "sample rate in Hz")
	f.Float64("freq", 440, "tone frequency in Hz, or noise low-pass cutoff (0 for full band)")
	f.Float64("duration", 1.0, "length in seconds")
	f.Float64("amplitude", 0.8, "peak amplitude, 0.0 to 1.0")
	f.String("kind", "sine", "waveform: sine or noise")
	f.StringP("output", "o", "output.wav", "WAV output path")
	f.Uint64("seed", 0, "noise seed (0 picks a random one)")
	f.Int("preview", 20, "number of leading samples to print")

	f.StringVar(&opts.arrayPath, "c-array", "", "also write the full buffer as a C array (default <output>_full.c)")
	f.Lookup("c-array").NoOptDefVal = derived
	f.StringVar(&opts.cyclePath, "c-cycle", "", "also write one sine period as a C array (default <output>_cycle.c)")
	f.Lookup("c-cycle").NoOptDefVal = derived
	f.StringVar(&opts.arrayName, "array-name", "", "C identifier for --c-array")
	f.StringVar(&opts.cycleName, "cycle-name", "sine_wave_cycle", "C identifier for --c-cycle")
	f.StringVar(&opts.aiffPath, "aiff", "", "also write an AIFF copy to this path")
	f.BoolVar(&opts.noClobber, "no-clobber", false, "fail instead of overwriting existing files")

	a.mustBindPFlag(config.KeySampleRate, f.Lookup("rate"))
	a.mustBindPFlag(config.KeyFrequency, f.Lookup("freq"))
	a.mustBindPFlag(config.KeyDuration, f.Lookup("duration"))
	a.mustBindPFlag(config.KeyAmplitude, f.Lookup("amplitude"))
	a.mustBindPFlag(config.KeyKind, f.Lookup("kind"))
	a.mustBindPFlag(config.KeyOutput, f.Lookup("output"))
	a.mustBindPFlag(config.KeySeed, f.Lookup("seed"))
	a.mustBindPFlag(config.KeyPreview, f.Lookup("preview"))

	return cmd
}

func (a *app) runGenerate(out io.Writer, opts generateOptions) error {
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}

	kind, err := synth.ParseWaveKind(cfg.Kind)
	if err != nil {
		return err
	}

	job := pcmgen.Job{
		Params: synth.Params{
			SampleRate: cfg.SampleRate,
			Frequency:  cfg.Frequency,
			Duration:   cfg.Duration,
			Amplitude:  cfg.Amplitude,
			Kind:       kind,
		},
		WAVPath:   cfg.Output,
		AIFFPath:  opts.aiffPath,
		ArrayPath: resolveArrayPath(opts.arrayPath, cfg.Output, "_full.c"),
		ArrayName: opts.arrayName,
		CyclePath: resolveArrayPath(opts.cyclePath, cfg.Output, "_cycle.c"),
		CycleName: opts.cycleName,
	}
	if job.ArrayName == "" {
		job.ArrayName = defaultArrayName(kind)
	}

	runOpts := []pcmgen.Option{pcmgen.WithLogger(a.logger)}
	if cfg.Seed != 0 {
		runOpts = append(runOpts, pcmgen.WithRandomSource(synth.NewSeededSource(cfg.Seed)))
	}
	if opts.noClobber {
		runOpts = append(runOpts, pcmgen.WithOutputOptions(output.NoClobber()))
	}

	res, err := pcmgen.Run(job, runOpts...)
	if res == nil {
		return err
	}

	printPreview(out, res.Samples, cfg.Preview)
	for _, path := range res.Written {
		fmt.Fprintf(out, "wrote %s\n", path)
	}

	// array failures are warnings
	if err != nil {
		a.logger.Warn("some arrays were not written", zap.Error(err))
		fmt.Fprintf(out, "warning: %v\n", err)
	}

	return nil
}

// resolveArrayPath turns the --c-array / --c-cycle value into a path.
// An empty flag disables the artifact.
func resolveArrayPath(flag, wavPath, suffix string) string {
	switch flag {
	case "":
		return ""
	case derived:
		return DerivedPath(wavPath, suffix)
	default:
		return flag
	}
}

// DerivedPath replaces the extension of base with suffix, or appends suffix
// when base has none.
func DerivedPath(base, suffix string) string {
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + suffix
}

func defaultArrayName(kind synth.WaveKind) string {
	if kind == synth.WhiteNoise {
		return "white_noise_full"
	}
	return "sine_wave_full"
}

func printPreview(w io.Writer, samples []int16, n int) {
	n = min(n, len(samples))
	if n <= 0 {
		return
	}

	fmt.Fprintf(w, "first %d of %d samples:\n", n, len(samples))
	for i, s := range samples[:n] {
		fmt.Fprintf(w, "  [%d] %d\n", i, s)
	}
}
