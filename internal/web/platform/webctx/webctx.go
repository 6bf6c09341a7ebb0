// Package webctx provides shared web request context helpers.
package webctx

import (
	"context"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type contextKey struct{ name string }

var (
	localizerKey = contextKey{name: "localizer"}
	languageKey  = contextKey{name: "language"}
)

// WithLocalizer returns a context carrying the resolved language and printer.
func WithLocalizer(ctx context.Context, tag language.Tag, printer *message.Printer) context.Context {
	ctx = context.WithValue(ctx, languageKey, tag)
	return context.WithValue(ctx, localizerKey, printer)
}

// Localizer returns the request-scoped message printer.
// It panics when language middleware is not installed, which indicates a
// composition bug rather than a runtime condition.
func Localizer(ctx context.Context) *message.Printer {
	printer, ok := ctx.Value(localizerKey).(*message.Printer)
	if !ok || printer == nil {
		panic("webctx: localizer missing from context; language middleware is not installed")
	}
	return printer
}

// Language returns the request-scoped language tag.
// It panics when language middleware is not installed.
func Language(ctx context.Context) language.Tag {
	tag, ok := ctx.Value(languageKey).(language.Tag)
	if !ok {
		panic("webctx: language missing from context; language middleware is not installed")
	}
	return tag
}
