package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

const DefaultLevel = logrus.WarnLevel

type Options struct {
	Level   string
	Verbose bool
	Output  io.Writer
}

// New builds the process logger. Verbose forces debug regardless of Level.
func New(opts Options) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:          true,
		TimestampFormat:        "15:04:05",
		DisableLevelTruncation: true,
	})
	if opts.Output != nil {
		logger.SetOutput(opts.Output)
	}

	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		level = logrus.DebugLevel
	}
	logger.SetLevel(level)

	return logger, nil
}

func parseLevel(raw string) (logrus.Level, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultLevel, nil
	}

	level, err := logrus.ParseLevel(raw)
	if err != nil {
		return DefaultLevel, fmt.Errorf("log level: %w", err)
	}
	return level, nil
}
