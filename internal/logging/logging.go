// SPDX-License-Identifier: EPL-2.0

// Package logging builds the zap logger used by the command line tool.
package logging

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Style selects the log encoding.
type Style string

const (
	StyleConsole Style = "console"
	StyleJSON    Style = "json"
	StyleNoop    Style = "noop"
)

var ErrUnknownStyle = errors.New("unknown log style")

// New builds a logger writing to w at level. Unknown levels and styles are
// rejected rather than silently defaulted.
func New(w io.Writer, level string, style Style) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return nil, fmt.Errorf("parsing log level %q: %w", level, err)
	}

	var enc zapcore.Encoder
	switch Style(strings.ToLower(string(style))) {
	case StyleNoop:
		return zap.NewNop(), nil
	case StyleJSON:
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	case StyleConsole, "":
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		enc = zapcore.NewConsoleEncoder(cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, style)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), zap.NewAtomicLevelAt(lvl))

	return zap.New(core), nil
}
