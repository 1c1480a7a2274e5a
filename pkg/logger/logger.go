package logger

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init cấu hình global logger: console cho development, JSON cho các môi trường khác.
// LOG_LEVEL (debug, info, warn...) ghi đè level mặc định.
func Init(env, service string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	base := log.Logger
	if env == "development" {
		base = base.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	log.Logger = base.With().Str("service", service).Str("env", env).Logger()

	level := zerolog.InfoLevel
	if lvl, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil && lvl != zerolog.NoLevel {
		level = lvl
	}
	zerolog.SetGlobalLevel(level)
}

func Info(msg string, fields map[string]interface{}) {
	log.Info().Fields(fields).Msg(msg)
}

// Warn dành cho lỗi best-effort: request vẫn thành công
func Warn(msg string, err error, fields map[string]interface{}) {
	log.Warn().Err(err).Fields(fields).Msg(msg)
}

func Error(msg string, err error) {
	log.Error().Err(err).Msg(msg)
}
