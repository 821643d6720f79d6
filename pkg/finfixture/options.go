// Package finfixture generates and checks the sample finance spreadsheet fixture.
package finfixture

import "go.uber.org/zap"

// DefaultOutputPath is where Generate writes when no path is given.
const DefaultOutputPath = "test_import.xlsx"

// Options configures generation and inspection.
type Options struct {
	// Logger receives progress logs. If nil, nothing is logged.
	Logger *zap.Logger
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

func outputPath(path string) string {
	if path == "" {
		return DefaultOutputPath
	}
	return path
}
