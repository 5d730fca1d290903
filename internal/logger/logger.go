package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"news_analyzer/internal/config"
)

// New builds a logrus logger writing to stderr, optionally teed into a file.
// Results go to stdout, so logging must stay off it.
func New(cfg config.LogConfig) (*logrus.Logger, error) {
	log := logrus.New()

	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	writers := []io.Writer{os.Stderr}
	if cfg.File != "" {
		file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			return nil, err
		}
		writers = append(writers, file)
	}
	log.SetOutput(io.MultiWriter(writers...))

	return log, nil
}
