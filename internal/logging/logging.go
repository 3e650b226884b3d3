// Package logging собирает zap-логгер бота: stderr всегда, файл с ротацией
// (lumberjack) — если задан путь.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Options struct {
	Level  string // debug|info|warn|error
	Format string // console|json
	File   string // пусто — без файла

	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// New строит логгер. Второй результат закрывает файл ротации (может быть no-op).
func New(opts Options) (*zap.Logger, func() error, error) {
	level := zapcore.InfoLevel
	if opts.Level != "" {
		l, err := zapcore.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, nil, fmt.Errorf("log level %q: %w", opts.Level, err)
		}
		level = l
	}

	enc, err := encoder(opts.Format)
	if err != nil {
		return nil, nil, err
	}

	cores := []zapcore.Core{
		zapcore.NewCore(enc, zapcore.Lock(os.Stderr), level),
	}
	closer := func() error { return nil }

	if opts.File != "" {
		lj := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    orDefault(opts.MaxSizeMB, 50),
			MaxBackups: orDefault(opts.MaxBackups, 5),
			MaxAge:     orDefault(opts.MaxAgeDays, 28),
		}
		// в файл всегда json, так его проще грепать
		fileEnc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		cores = append(cores, zapcore.NewCore(fileEnc, zapcore.AddSync(lj), level))
		closer = lj.Close
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), closer, nil
}

// NewWriter — логгер поверх произвольного writer'а (для тестов и утилит).
func NewWriter(w io.Writer, level zapcore.Level) *zap.Logger {
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), level))
}

func encoder(format string) (zapcore.Encoder, error) {
	switch strings.ToLower(format) {
	case "", "console":
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		return zapcore.NewConsoleEncoder(cfg), nil
	case "json":
		return zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), nil
	default:
		return nil, fmt.Errorf("log format %q: want console or json", format)
	}
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
