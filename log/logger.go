package log

import (
	"log/slog"
	"os"

	"github.com/rs/zerolog"
	slogzerolog "github.com/samber/slog-zerolog"

	"github.com/initia-labs/bridgeinfo/config"
)

func NewLogger(cfg *config.Config) *slog.Logger {
	var zerologLogger zerolog.Logger
	if cfg.GetLogFormat() == "json" {
		zerologLogger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		zerologLogger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	return slog.New(slogzerolog.Option{Level: cfg.GetLogLevel(), Logger: &zerologLogger}.NewZerologHandler())
}
