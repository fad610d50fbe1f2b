package reader

import "github.com/jindo-lang/edn/pkg/edn/value"

// TagFn resolves a tagged literal's value into a final Value (spec.md §3
// "readers: mapping from tag Symbol to a function of one Value → Value").
type TagFn func(value.Value) (value.Value, error)

// DefaultFn is the fallback invoked when no tag-specific reader matches
// (spec.md §3 "default: fallback function of (tag, value) → Value").
type DefaultFn func(tag value.Symbol, v value.Value) (value.Value, error)

// Options configures a single top-level read (spec.md §3 "Options").
type Options struct {
	Eof     value.Value
	EofOK   bool
	Readers map[string]TagFn
	Default DefaultFn
}

// Option mutates an Options value being built by NewOptions.
type Option func(*Options)

// NewOptions builds Options with eof-error?=true (spec.md §6 default),
// applying functional options in the style pkg/jindo/scanner.Scanner.Init
// takes its errh callback.
func NewOptions(opts ...Option) Options {
	var o Options
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

// WithEOF sets the value returned on clean end-of-input, disabling the
// default EOF error.
func WithEOF(v value.Value) Option {
	return func(o *Options) {
		o.Eof = v
		o.EofOK = true
	}
}

// WithReaders installs per-call tag readers, consulted before the built-in
// defaults.
func WithReaders(readers map[string]TagFn) Option {
	return func(o *Options) { o.Readers = readers }
}

// WithDefault installs the fallback invoked when no tag reader matches.
func WithDefault(fn DefaultFn) Option {
	return func(o *Options) { o.Default = fn }
}

func (o Options) lookup(tag string) (TagFn, bool) {
	if o.Readers != nil {
		if fn, ok := o.Readers[tag]; ok {
			return fn, true
		}
	}
	if fn, ok := defaultTagReaders[tag]; ok {
		return fn, true
	}
	return nil, false
}
