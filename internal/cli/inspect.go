// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ik5/pcmgen"
	"github.com/ik5/pcmgen/audio"
)

// Stats summarizes a decoded stream.
type Stats struct {
	Format     string
	SampleRate int
	Channels   int
	Frames     int
	Peak       float32
}

// Duration in seconds.
func (s Stats) Duration() float64 {
	if s.SampleRate == 0 {
		return 0
	}
	return float64(s.Frames) / float64(s.SampleRate)
}

func newInspectCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "Print sample rate, channels, length and peak of an audio file",
		Long:  "Decode a WAV, AIFF, MP3 or Ogg Vorbis file and print basic stream statistics.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := inspectFile(args[0])
			if err != nil {
				return err
			}
			a.logger.Debug("inspected file", zap.String("path", args[0]), zap.Int("frames", stats.Frames))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "file:        %s\n", args[0])
			fmt.Fprintf(out, "format:      %s\n", stats.Format)
			fmt.Fprintf(out, "sample rate: %d Hz\n", stats.SampleRate)
			fmt.Fprintf(out, "channels:    %d\n", stats.Channels)
			fmt.Fprintf(out, "frames:      %d\n", stats.Frames)
			fmt.Fprintf(out, "duration:    %.3f s\n", stats.Duration())
			fmt.Fprintf(out, "peak:        %.4f (%.1f dBFS)\n", stats.Peak, dBFS(stats.Peak))

			return nil
		},
	}
}

func inspectFile(path string) (Stats, error) {
	reg := pcmgen.DefaultRegistry()
	_, format, _ := reg.ForPath(path)

	src, closer, err := pcmgen.OpenFile(reg, path)
	if err != nil {
		return Stats{}, err
	}
	defer closer.Close()

	stats, err := measure(src)
	stats.Format = format

	return stats, err
}

func measure(src audio.Source) (Stats, error) {
	stats := Stats{SampleRate: src.SampleRate(), Channels: src.Channels()}

	buf := make([]float32, max(src.BufSize(), stats.Channels))
	samples := 0
	for {
		n, err := src.ReadSamples(buf)
		for _, v := range buf[:n] {
			stats.Peak = max(stats.Peak, float32(math.Abs(float64(v))))
		}
		samples += n

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return stats, fmt.Errorf("reading samples: %w", err)
		}
		if n == 0 {
			break
		}
	}
	stats.Frames = samples / max(stats.Channels, 1)

	return stats, nil
}

func dBFS(peak float32) float64 {
	if peak <= 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(float64(peak))
}
