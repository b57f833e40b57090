// Package logging constructs the shared application logger.
package logging

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

func New(name string, output io.Writer, verbose bool) hclog.Logger {
	level := hclog.Warn
	if verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   name,
		Level:  level,
		Output: output,
	})
}
