package logger

import (
	"fmt"

	"github.com/GlebRadaev/finboard/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	ServiceName = "finboard"
	timeLayout  = "15:04:05 02-01-2006"
)

var levels = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
}

// encoders maps LOG_FORMAT to an encoder config.
var encoders = map[string]func() zapcore.EncoderConfig{
	"console": func() zapcore.EncoderConfig {
		ec := zap.NewDevelopmentEncoderConfig()
		ec.EncodeTime = zapcore.TimeEncoderOfLayout(timeLayout)
		ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
		ec.EncodeDuration = zapcore.MillisDurationEncoder
		ec.StacktraceKey = ""
		return ec
	},
	"json": func() zapcore.EncoderConfig {
		ec := zap.NewProductionEncoderConfig()
		ec.EncodeTime = zapcore.ISO8601TimeEncoder
		ec.EncodeDuration = zapcore.MillisDurationEncoder
		return ec
	},
}

// New builds the service logger from LOG_LVL and LOG_FORMAT.
func New(conf *config.Config) (*zap.Logger, error) {
	lvl, ok := levels[conf.LogLvl]
	if !ok {
		return nil, fmt.Errorf("unsupported log lvl: %s", conf.LogLvl)
	}
	format := conf.LogFormat
	if format == "" {
		format = "console"
	}
	encoder, ok := encoders[format]
	if !ok {
		return nil, fmt.Errorf("unsupported log format: %s", format)
	}

	c := zap.Config{
		Level:            zap.NewAtomicLevelAt(lvl),
		Encoding:         format,
		EncoderConfig:    encoder(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
		InitialFields:    map[string]interface{}{"service": ServiceName},
	}

	logger, err := c.Build()
	if err != nil {
		return nil, fmt.Errorf("unable to create zap logger, error: %w", err)
	}
	return logger, nil
}

// InitLogger replaces the global zap logger; packages log through zap.L().
func InitLogger(conf *config.Config) error {
	logger, err := New(conf)
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(logger)
	return nil
}
