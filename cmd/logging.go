package cmd

import (
	"io"

	log "github.com/sirupsen/logrus"
)

// configureLogging points logrus at w and applies the requested level,
// falling back to info on anything logrus cannot parse.
func configureLogging(w io.Writer, level string) {
	log.SetOutput(w)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.SetLevel(log.InfoLevel)
		log.Warnf("invalid log level %s, defaulting to info", level)
		return
	}
	log.SetLevel(lvl)
}
