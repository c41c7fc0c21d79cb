package logging

import (
	"io"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.elastic.co/ecslogrus"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatECS  = "ecs"
)

type Options struct {
	// File receives log lines; empty means Fallback.
	File  string
	Level string
	// Format is one of FormatText, FormatJSON or FormatECS.
	Format string
	// Fallback is used when File is empty. Nil discards logs.
	Fallback io.Writer
}

// New returns a logger and a function releasing its output.
func New(options Options) (*logrus.Logger, func() error, error) {
	logger := logrus.New()

	level := options.Level
	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, nil, errors.Wrap(err, "parsing --log-level")
	}
	logger.SetLevel(lvl)

	switch options.Format {
	case "", FormatText:
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	case FormatJSON:
		logger.SetFormatter(&logrus.JSONFormatter{})
	case FormatECS:
		logger.SetFormatter(&ecslogrus.Formatter{})
	default:
		return nil, nil, errors.Errorf("unknown log format: %s", options.Format)
	}

	closer := func() error { return nil }
	switch {
	case options.File != "":
		f, err := os.OpenFile(options.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, errors.Wrap(err, "opening log file")
		}
		logger.SetOutput(f)
		closer = f.Close
	case options.Fallback != nil:
		logger.SetOutput(options.Fallback)
	default:
		logger.SetOutput(ioutil.Discard)
	}

	return logger, closer, nil
}
