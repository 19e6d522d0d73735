package field

import (
	"log/slog"

	"braces.dev/errtrace"

	"github.com/webfield/webfield/internal/errorutil"
	"github.com/webfield/webfield/internal/log"
)

// DeprecationPolicy selects how a [Deprecated] accessor signals its use.
type DeprecationPolicy int

const (
	// WarnOnUse logs a warning on each use and delegates to the wrapped
	// accessor.
	WarnOnUse DeprecationPolicy = iota
	// FailOnUse refuses each use with an error wrapping [ErrDeprecated].
	FailOnUse
)

// Deprecated wraps an accessor so that every operation signals the
// deprecation exactly once before it reaches the wrapped accessor.
type Deprecated[T any] struct {
	next   Accessor[T]
	name   string
	note   string
	policy DeprecationPolicy
	log    *slog.Logger
}

var _ Accessor[string] = Deprecated[string]{}

// DeprecateOptions configures [Deprecate].
type DeprecateOptions struct {
	// Policy selects the deprecation signal. Defaults to [WarnOnUse].
	Policy DeprecationPolicy
	// Logger receives the [WarnOnUse] warnings.
	// If nil, the default logger is used.
	Logger *slog.Logger
}

func (o *DeprecateOptions) policy() DeprecationPolicy {
	if o == nil {
		return WarnOnUse
	}
	return o.Policy
}

func (o *DeprecateOptions) log() *slog.Logger {
	if o == nil || o.Logger == nil {
		return log.Def
	}
	return o.Logger
}

// Deprecate wraps next so that every Get, Set and Del on the named field
// signals the deprecation first. The note tells users what to do instead.
// Options are optional, default options are used if nil (see
// [DeprecateOptions]).
func Deprecate[T any](next Accessor[T], name, note string, opts *DeprecateOptions) Deprecated[T] {
	return Deprecated[T]{
		next:   next,
		name:   name,
		note:   note,
		policy: opts.policy(),
		log:    opts.log(),
	}
}

// Name returns the deprecated field name.
func (d Deprecated[T]) Name() string { return d.name }

// Get signals the deprecation, then reads through the wrapped accessor.
func (d Deprecated[T]) Get(s Store) (T, error) {
	if err := d.signal(); err != nil {
		var zero T
		return zero, errtrace.Wrap(err)
	}
	return errtrace.Wrap2(d.next.Get(s))
}

// Set signals the deprecation, then writes through the wrapped accessor.
func (d Deprecated[T]) Set(s Store, v T) error {
	if err := d.signal(); err != nil {
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(d.next.Set(s, v))
}

// Del signals the deprecation, then deletes through the wrapped accessor.
func (d Deprecated[T]) Del(s Store) error {
	if err := d.signal(); err != nil {
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(d.next.Del(s))
}

func (d Deprecated[T]) signal() error {
	if d.policy == FailOnUse {
		return errorutil.NewWrapperError(ErrDeprecated, "%s: %s", d.name, d.note) //errtrace:skip
	}
	d.log.Warn("deprecated field used", "field", d.name, "note", d.note)
	return nil
}
