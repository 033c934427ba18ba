// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ik5/pcmgen"
	"github.com/ik5/pcmgen/formats/carray"
	"github.com/ik5/pcmgen/formats/wav"
	"github.com/ik5/pcmgen/internal/output"
)

type importOptions struct {
	output    string
	name      string
	rate      int
	bufSize   int
	noClobber bool
}

func newImportCommand(a *app) *cobra.Command {
	var opts importOptions

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Convert an audio file into a mono 16-bit C array or WAV",
		Long: `Decode FILE, mix it down to mono, resample it and write the result
as a C int16_t array. The output defaults to FILE with a .c extension.
An output ending in .wav gets a 16-bit mono WAV file instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.runImport(args[0], opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.output, "output", "o", "", "output path, .c or .wav")
	f.StringVar(&opts.name, "name", "pcm_data", "C identifier for the array")
	f.IntVar(&opts.rate, "rate", 8000, "target sample rate in Hz")
	f.IntVar(&opts.bufSize, "buffer", 4096, "samples read per pipeline step")
	f.BoolVar(&opts.noClobber, "no-clobber", false, "fail instead of overwriting an existing file")

	return cmd
}

func (a *app) runImport(path string, opts importOptions) (string, error) {
	if !carray.ValidIdentifier(opts.name) {
		return "", fmt.Errorf("%w: %q", carray.ErrInvalidIdentifier, opts.name)
	}

	out := opts.output
	if out == "" {
		out = DerivedPath(path, ".c")
	}

	src, closer, err := pcmgen.OpenFile(pcmgen.DefaultRegistry(), path)
	if err != nil {
		return "", err
	}
	defer closer.Close()

	srcRate, srcChannels := src.SampleRate(), src.Channels()

	pcm, err := pcmgen.ImportMono16(src, opts.rate, opts.bufSize)
	if err != nil {
		return "", err
	}
	a.logger.Info("imported audio",
		zap.String("path", path),
		zap.Int("source_rate", srcRate),
		zap.Int("source_channels", srcChannels),
		zap.Int("samples", len(pcm)),
	)

	layout := carray.Layout{
		Name: opts.name,
		Comments: []string{
			"Generated C array imported from " + filepath.Base(path),
			"Source: " + strconv.Itoa(srcRate) + " Hz, " + strconv.Itoa(srcChannels) + " channel(s)",
			"Sample rate: " + strconv.Itoa(opts.rate) + " Hz (mono)",
			"Duration: " + carray.FormatReal(float64(len(pcm))/float64(opts.rate)) + " seconds",
			"Total samples: " + strconv.Itoa(len(pcm)),
		},
		Trailers: []carray.Constant{
			{Type: "uint32_t", Name: opts.name + "_sample_rate", Value: strconv.Itoa(opts.rate)},
		},
	}

	var outOpts []output.Option
	if opts.noClobber {
		outOpts = append(outOpts, output.NoClobber())
	}

	if strings.EqualFold(filepath.Ext(out), ".wav") {
		if err := wav.WriteFile(out, opts.rate, pcm, outOpts...); err != nil {
			return "", err
		}
		return out, nil
	}

	if err := carray.WriteLayoutFile(out, pcm, layout, outOpts...); err != nil {
		return "", err
	}

	return out, nil
}
