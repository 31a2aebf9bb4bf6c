package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"nestling/pkg/config"
)

var log *zap.Logger

// InitLogger builds the global logger. Production gets structured JSON,
// anything else gets the colored development encoder.
func InitLogger(cfg *config.Config) {
	var logConfig zap.Config

	if cfg.Server.Env == "production" {
		logConfig = zap.NewProductionConfig()
	} else {
		logConfig = zap.NewDevelopmentConfig()
		logConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		level = zapcore.InfoLevel
	}
	logConfig.Level.SetLevel(level)

	var err error
	log, err = logConfig.Build()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}

	log.Info("logger initialized", zap.String("level", level.String()))
}

// GetLogger returns the global logger, falling back to a production logger
// when InitLogger has not run (tests, mostly).
func GetLogger() *zap.Logger {
	if log == nil {
		var err error
		log, err = zap.NewProduction()
		if err != nil {
			panic("failed to create fallback logger: " + err.Error())
		}
	}
	return log
}
