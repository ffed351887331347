package logger

import (
	"github.com/sirupsen/logrus"
	"github.com/turtletowerz/hlsparse/internal/config"
)

// New builds the m3u8info logger. Config.Load has already validated the level.
func New(cfg *config.Config) *logrus.Logger {
	log := logrus.New()

	level, err := cfg.App.Level()
	if err != nil {
		level = logrus.WarnLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{
		// DisableColors: true,
		FullTimestamp: true,
	})

	return log
}
