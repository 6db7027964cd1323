// Package log provides logging utilities.
package log

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"

	"github.com/ghettovoice/sipfield/internal/constraints"
	"github.com/ghettovoice/sipfield/internal/types"
)

var formatValues = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
	slogformatter.FormatByType(func(p *types.Params) slog.Value {
		return slog.GroupValue(
			slog.String("sep", p.Separator()),
			slog.Int("len", p.Len()),
			slog.String("text", p.String()),
		)
	}),
	slogformatter.FormatByType(func(v types.Value) slog.Value {
		return slog.GroupValue(
			slog.String("type", fmt.Sprintf("%T", v)),
			slog.String("text", v.Render(nil)),
		)
	}),
)

// NewHandler wraps h so that errors, [types.Params] and other [types.Value] attributes
// are logged as groups with their wire text.
func NewHandler(h slog.Handler) slog.Handler { return formatValues(h) }

// Def is a default logger.
var Def = slog.New(NewHandler(
	console.NewHandler(os.Stderr, &console.HandlerOptions{
		AddSource:  true,
		Level:      slog.LevelDebug,
		TimeFormat: time.RFC3339Nano,
	}),
))

// Dev is a developer logger.
var Dev = slog.New(NewHandler(
	devslog.NewHandler(os.Stderr, &devslog.Options{
		HandlerOptions: &slog.HandlerOptions{
			AddSource: true,
			Level:     slog.LevelDebug,
		},
		SortKeys:   true,
		TimeFormat: time.RFC3339Nano,
	}),
))

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

// Noop is a noop logger.
var Noop = slog.New(noopHandler{})

var logger atomic.Pointer[slog.Logger]

// Logger returns the package-wide logger used by the field packages.
// It is [Noop] until [SetLogger] is called.
func Logger() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return Noop
}

// SetLogger replaces the package-wide logger. Nil restores [Noop].
func SetLogger(l *slog.Logger) {
	logger.Store(l)
}

type stringValue[T constraints.Byteseq] struct {
	v T
}

func (v stringValue[T]) LogValue() slog.Value {
	return slog.StringValue(string(v.v))
}

// StringValue returns a value logger that formats v as string.
func StringValue[T constraints.Byteseq](v T) slog.LogValuer { return stringValue[T]{v} }
