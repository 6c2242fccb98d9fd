// SPDX-License-Identifier: MIT
// Package: csvgraph/csvimport
//
// options.go: functional options and the resolved, immutable Config.
//
// Contract:
//   • Options are functional (type Option func(*Config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs
//     (unknown Format, unusable delimiter, nil logger). Read never panics.
//   • Options are applied in order; later options override earlier ones.
//   • The resolved Config is copied into the Importer and never mutated again.

package csvimport

import (
	"fmt"
	"unicode/utf8"

	"go.uber.org/zap"
)

// DefaultDelimiter separates fields when WithDelimiter is not given.
const DefaultDelimiter = ';'

// Config is the resolved import configuration.
type Config struct {
	Format     Format
	Delimiter  rune
	Parameters Parameters
	Logger     *zap.Logger
	Metrics    *Metrics // nil disables instrumentation
}

// Option customizes an Importer at construction time.
type Option func(*Config)

// newConfig returns defaults (EdgeList, ';', no parameters, no-op logger)
// with opts applied left to right.
func newConfig(opts ...Option) Config {
	cfg := Config{
		Format:    EdgeList,
		Delimiter: DefaultDelimiter,
		Logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithFormat selects the input layout. Panics on an undeclared Format value.
func WithFormat(f Format) Option {
	if !f.valid() {
		panic(fmt.Sprintf("csvimport: WithFormat(%d)", uint8(f)))
	}
	return func(c *Config) { c.Format = f }
}

// WithDelimiter sets the field separator. Panics if d cannot separate fields:
// quote, carriage return, newline, or an invalid rune.
func WithDelimiter(d rune) Option {
	if !ValidDelimiter(d) {
		panic(fmt.Sprintf("csvimport: WithDelimiter(%q)", d))
	}
	return func(c *Config) { c.Delimiter = d }
}

// WithParameter switches a single Matrix parameter on or off.
func WithParameter(p Parameter, on bool) Option {
	if p >= parameterCount {
		panic(fmt.Sprintf("csvimport: WithParameter(%d)", uint8(p)))
	}
	return func(c *Config) { c.Parameters = c.Parameters.with(p, on) }
}

// WithParameters replaces the whole parameter set.
func WithParameters(ps ...Parameter) Option {
	set := NewParameters(ps...)
	return func(c *Config) { c.Parameters = set }
}

// WithLogger routes import diagnostics to l. Panics on nil; pass zap.NewNop()
// to silence.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("csvimport: WithLogger(nil)")
	}
	return func(c *Config) { c.Logger = l }
}

// WithMetrics records every Read on m. nil switches instrumentation off.
func WithMetrics(m *Metrics) Option {
	return func(c *Config) { c.Metrics = m }
}

// ValidDelimiter reports whether d is usable as a field separator.
func ValidDelimiter(d rune) bool {
	return d != 0 && d != '"' && d != '\r' && d != '\n' &&
		utf8.ValidRune(d) && d != utf8.RuneError
}
