package initializers

import (
	log "github.com/sirupsen/logrus"
)

func InitLogger(level string) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.Warnf("Unknown LOG_LEVEL %q, defaulting to info", level)
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}
