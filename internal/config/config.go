// SPDX-License-Identifier: EPL-2.0

// Package config layers defaults, an optional YAML file, PCMGEN_ environment
// variables and command line flags into one settings value.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Keys shared between flags, the config file and the environment.
const (
	KeySampleRate = "sample_rate"
	KeyFrequency  = "frequency"
	KeyDuration   = "duration"
	KeyAmplitude  = "amplitude"
	KeyKind       = "kind"
	KeyOutput     = "output"
	KeySeed       = "seed"
	KeyPreview    = "preview"
	KeyLogLevel   = "log.level"
	KeyLogStyle   = "log.style"
)

const EnvPrefix = "PCMGEN"

// Config is the resolved set of generation settings.
type Config struct {
	SampleRate int     `mapstructure:"sample_rate"`
	Frequency  float64 `mapstructure:"frequency"`
	Duration   float64 `mapstructure:"duration"`
	Amplitude  float64 `mapstructure:"amplitude"`
	Kind       string  `mapstructure:"kind"`
	Output     string  `mapstructure:"output"`
	Seed       uint64  `mapstructure:"seed"`
	Preview    int     `mapstructure:"preview"`
	Log        Log     `mapstructure:"log"`
}

type Log struct {
	Level string `mapstructure:"level"`
	Style string `mapstructure:"style"`
}

// New returns a viper instance with defaults and environment lookup set up.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeySampleRate, 44100)
	v.SetDefault(KeyFrequency, 440.0)
	v.SetDefault(KeyDuration, 1.0)
	v.SetDefault(KeyAmplitude, 0.8)
	v.SetDefault(KeyKind, "sine")
	v.SetDefault(KeyOutput, "output.wav")
	v.SetDefault(KeySeed, 0)
	v.SetDefault(KeyPreview, 20)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogStyle, "console")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// ReadFile loads cfgFile into v. With an empty cfgFile it looks for
// pcmgen.yaml in the working directory, then .pcmgen.yaml in the home
// directory; not finding either is fine. It returns the file used, if any.
func ReadFile(v *viper.Viper, cfgFile string) (string, error) {
	v.SetConfigType("yaml")

	if cfgFile != "" {
		if _, err := os.Stat(cfgFile); err != nil {
			return "", fmt.Errorf("config file: %w", err)
		}
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return "", fmt.Errorf("reading config file %s: %w", cfgFile, err)
		}
		return v.ConfigFileUsed(), nil
	}

	v.SetConfigName("pcmgen")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err == nil {
		return v.ConfigFileUsed(), nil
	} else if !isNotFound(err) {
		return "", fmt.Errorf("reading config file: %w", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", nil
	}
	v.SetConfigFile(home + string(os.PathSeparator) + ".pcmgen.yaml")
	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, os.ErrNotExist) || isNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("reading config file: %w", err)
	}

	return v.ConfigFileUsed(), nil
}

func isNotFound(err error) bool {
	var nf viper.ConfigFileNotFoundError
	return errors.As(err, &nf)
}

// Load decodes the current state of v.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}

	return cfg, nil
}
