// Package jlog is the injected trace/debug writer spec.md's design notes
// call for ("Global trace/debug writer → injected logger interface;
// defaults to a no-op sink"). It wraps go.uber.org/zap's SugaredLogger,
// grounded on the pack's avatar29A-midgard-ro engine, which uses zap for
// exactly this purpose.
package jlog

import "go.uber.org/zap"

// Logger is the minimal structured-logging surface the mesh depends on. Keeping it an interface (rather than
// depending on *zap.SugaredLogger directly) means a host application can
// substitute any sink without this module knowing about zap at all.
type Logger interface {
	Debugw(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
}

// zapLogger adapts *zap.SugaredLogger to Logger.
type zapLogger struct {
	s *zap.SugaredLogger
}

func (z zapLogger) Debugw(msg string, kv ...any) { z.s.Debugw(msg, kv...) }
func (z zapLogger) Warnw(msg string, kv ...any)  { z.s.Warnw(msg, kv...) }

// New wraps an existing zap logger.
func New(l *zap.Logger) Logger { return zapLogger{s: l.Sugar()} }

// Default builds a development-mode zap logger, suitable for the CLI demo
// and for tests that want to see mesh activity.
func Default() Logger {
	l, err := zap.NewDevelopment()
	if err != nil {
		return Nop()
	}
	return New(l)
}

type nopLogger struct{}

func (nopLogger) Debugw(string, ...any) {}
func (nopLogger) Warnw(string, ...any)  {}

// Nop returns a Logger that discards everything — the default for a Mesh
// constructed via New() rather than NewWithLogger().
func Nop() Logger { return nopLogger{} }
