package main

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/samdwyer/termsnake/internal/config"
)

// setupLogging points the standard logrus logger at cfg.LogFile, or discards
// output when no file is configured. The caller closes the returned file.
func setupLogging(cfg *config.Config) (*os.File, error) {
	log.SetLevel(cfg.LogLevel)
	log.SetFormatter(&log.TextFormatter{DisableColors: true, FullTimestamp: true})

	if cfg.LogFile == "" {
		log.SetOutput(io.Discard)
		return nil, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	return f, nil
}
