package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Log struct {
	LogLevel zapcore.Level `yaml:"level" envconfig:"LOG_LEVEL" default:"info"`
	Sink     string        `yaml:"sink" envconfig:"LOG_SINK"`
}

// NewLogger builds a production json logger named after the component.
func NewLogger(cfg Log, name string) *zap.Logger {
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	zcfg.EncoderConfig.TimeKey = "ts"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg.DisableStacktrace = cfg.LogLevel > zapcore.DebugLevel
	if cfg.Sink != "" {
		zcfg.OutputPaths = []string{cfg.Sink}
	}
	log, err := zcfg.Build()
	if err != nil {
		log = zap.NewExample()
		log.Warn("logger build failed, fallback to example logger", zap.Error(err))
	}
	return log.Named(name)
}
