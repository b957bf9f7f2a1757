package usecase

import (
	"io"
	"log/slog"
	"time"
)

// Section is the outcome of one optional lookup. A nil Value with a non-nil Err
// is the normal way a lookup reports that it failed.
type Section[T any] struct {
	Value *T
	Err   error
}

// OK reports whether the lookup produced a value.
func (s Section[T]) OK() bool { return s.Value != nil }

func sectionOf[T any](v T, err error) Section[T] {
	if err != nil {
		return Section[T]{Err: err}
	}
	return Section[T]{Value: &v}
}

type options struct {
	now func() time.Time
	log *slog.Logger
}

type Option func(*options)

// WithClock overrides the clock used for "today" lookups.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		now: time.Now,
		log: slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
