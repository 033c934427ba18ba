// SPDX-License-Identifier: EPL-2.0

// Package cli wires the pcmgen commands to cobra and viper.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ik5/pcmgen/internal/config"
	"github.com/ik5/pcmgen/internal/logging"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	logger  *zap.Logger
}

// NewRootCommand builds the command tree. Each call gets its own viper
// instance so commands can be built and executed repeatedly in tests.
func NewRootCommand(version string) *cobra.Command {
	a := &app{v: config.New(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "pcmgen",
		Short: "Generate 16-bit PCM test tones as WAV files and C arrays",
		Long: `Generate sine tones or white noise as mono 16-bit PCM and write them
as WAV, AIFF or C source arrays.

Examples:
  # One second of A4 at 44.1kHz
  pcmgen generate --rate 44100 --freq 440 --duration 1 -o a4.wav

  # Same tone plus a single-cycle lookup table (a4_cycle.c)
  pcmgen generate --freq 440 -o a4.wav --c-cycle

  # Band-limited noise with a 2kHz cutoff, reproducible
  pcmgen generate --kind noise --freq 2000 --seed 7 -o noise.wav

  # Turn a recording into an 8kHz table
  pcmgen import voice.mp3 --rate 8000 --name voice -o voice.c`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.ErrOrStderr())
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file path (default ./pcmgen.yaml or $HOME/.pcmgen.yaml)")
	flags.String("log-level", "info", "logging level (debug, info, warn, error)")
	flags.String("log-style", "console", "logging output style (console, json, noop)")
	a.mustBindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	a.mustBindPFlag(config.KeyLogStyle, flags.Lookup("log-style"))

	root.AddCommand(
		newGenerateCommand(a),
		newInspectCommand(a),
		newImportCommand(a),
	)

	return root
}

func (a *app) init(stderr io.Writer) error {
	used, err := config.ReadFile(a.v, a.cfgFile)
	if err != nil {
		return err
	}

	logger, err := logging.New(stderr,
		a.v.GetString(config.KeyLogLevel),
		logging.Style(a.v.GetString(config.KeyLogStyle)),
	)
	if err != nil {
		return err
	}
	a.logger = logger

	if used != "" {
		a.logger.Debug("using config file", zap.String("path", used))
	}

	return nil
}

func (a *app) mustBindPFlag(key string, flag *pflag.Flag) {
	if err := a.v.BindPFlag(key, flag); err != nil {
		panic(fmt.Sprintf("binding flag %s: %v", key, err))
	}
}
