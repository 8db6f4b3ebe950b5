// Package telemetry provides the logger, loop probes and frame statistics
package telemetry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/fixcast/parameter"
)

// LogConfig selects where and how much to log
type LogConfig struct {
	Enabled bool
	Level   string
	Dir     string
}

// NewLogger builds the process logger
// Disabled config yields zerolog.Nop and a nil closer. Otherwise output goes to
// Dir/fixcast.log only, never to stdout or stderr, which the terminal owns.
// An existing file larger than MaxLogSize is renamed with a timestamp first
func NewLogger(cfg LogConfig) (zerolog.Logger, io.Closer, error) {
	if !cfg.Enabled {
		return zerolog.Nop(), nil, nil
	}

	level := zerolog.InfoLevel
	if cfg.Level != "" {
		l, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
		}
		level = l
	}

	dir := cfg.Dir
	if dir == "" {
		dir = parameter.LogDir
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(dir, parameter.LogFileName)
	if err := rotate(path); err != nil {
		return zerolog.Nop(), nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}

	logger := zerolog.New(f).Level(level).With().Timestamp().Logger()
	return logger, f, nil
}

// rotate renames an oversized log to fixcast-<timestamp>.log
func rotate(path string) error {
	info, err := os.Stat(path)
	if err != nil || info.Size() <= parameter.MaxLogSize {
		return nil
	}

	ext := filepath.Ext(path)
	stamp := time.Now().Format("20060102-150405")
	rotated := strings.TrimSuffix(path, ext) + "-" + stamp + ext
	if err := os.Rename(path, rotated); err != nil {
		return fmt.Errorf("rotate log: %w", err)
	}
	return nil
}
