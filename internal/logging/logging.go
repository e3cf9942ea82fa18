// Package logging configures the process-wide logrus logger used by
// cmd/hyena and internal/pipeline. Core packages (ingest, irbuild,
// depgraph, signal, result, validate) never log directly — they return
// errors and findings, and only the orchestration layer decides what to
// say out loud.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Options controls verbosity and output stream.
type Options struct {
	Verbose bool
	Quiet   bool
}

// Init configures the standard logrus logger per opts and returns it.
// Verbose selects debug level, Quiet raises the floor to warnings only,
// and the default sits at info. Output always goes to stderr so stdout
// stays free for export payloads (internal/export writes there).
func Init(opts Options) *logrus.Logger {
	logger := logrus.StandardLogger()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   false,
		DisableColors:   false,
		DisableSorting:  true,
	})

	switch {
	case opts.Quiet:
		logger.SetLevel(logrus.WarnLevel)
	case opts.Verbose:
		logger.SetLevel(logrus.DebugLevel)
	default:
		logger.SetLevel(logrus.InfoLevel)
	}

	return logger
}
