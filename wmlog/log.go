// Package wmlog provides preconfigured loggers for the webmachine toolkit.
package wmlog

import (
	"log/slog"
	"os"
	"time"

	"github.com/golang-cz/devslog"
	conslog "github.com/phsym/console-slog"
	slogfmt "github.com/samber/slog-formatter"

	"github.com/gofrack/webmachine/header"
)

var newHandler = slogfmt.NewFormatterHandler(
	slogfmt.ErrorFormatter("error"),
	slogfmt.FormatByType(func(hv header.Value) slog.Value {
		return slog.StringValue(hv.String())
	}),
	slogfmt.FormatByType(func(mt header.MediaType) slog.Value {
		return slog.StringValue(mt.String())
	}),
)

var console = slog.New(newHandler(
	conslog.NewHandler(os.Stdout, &conslog.HandlerOptions{
		Level:      slog.LevelInfo,
		TimeFormat: time.RFC3339,
	}),
))

// Console returns the logger configured for console output, intended for
// normal operation.
func Console() *slog.Logger { return console }

var develop = slog.New(newHandler(
	devslog.NewHandler(os.Stdout, &devslog.Options{
		HandlerOptions: &slog.HandlerOptions{
			AddSource: true,
			Level:     slog.LevelDebug,
		},
	}),
))

// Develop returns a verbose logger intended for local debugging of the
// decision graph: it admits debug level, so a Dispatcher using it logs every
// transition, and it renders struct values expanded instead of via %+v.
func Develop() *slog.Logger { return develop }

// Discard returns a logger that drops everything, for callers that want no
// log output.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(discardWriter{}, &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	}))
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }
