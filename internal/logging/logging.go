// Package logging configures the process wide apex logger.
package logging

import (
	"io"

	"emperror.dev/errors"
	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/apex/log/handlers/json"

	"github.com/CristiGvl/picoArch/internal/config"
)

// Configure installs the handler and level described by c. Debug forces the
// debug level.
func Configure(w io.Writer, c config.LogConfiguration, debug bool) error {
	level, err := log.ParseLevel(c.Level)
	if err != nil {
		return errors.WrapIff(err, "invalid log level %q", c.Level)
	}
	if debug {
		level = log.DebugLevel
	}

	switch c.Format {
	case "json":
		log.SetHandler(json.New(w))
	case "cli", "":
		log.SetHandler(cli.New(w))
	default:
		return errors.Errorf("unknown log format %q", c.Format)
	}
	log.SetLevel(level)
	return nil
}
