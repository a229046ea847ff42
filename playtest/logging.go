// Copyright (C) 2025-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package playtest provides testing helpers for the playgrounds.
package playtest

import (
	"runtime"
	"slices"
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// logger fans every level out to a single handler, filtering below `level`.
type logger struct {
	level   logging.Level
	handler interface {
		log(logging.Level, string, ...zap.Field)
	}
	with []zap.Field
	// Unimplemented methods panic via the nil embedded interface.
	logging.Logger
}

var _ logging.Logger = (*logger)(nil)

func (l *logger) With(fields ...zap.Field) logging.Logger {
	return &logger{
		level:   l.level,
		handler: l.handler,
		with:    slices.Concat(l.with, fields),
	}
}

func (l *logger) log(lvl logging.Level, msg string, fields ...zap.Field) {
	if lvl < l.level {
		return
	}
	l.handler.log(lvl, msg, slices.Concat(l.with, fields)...)
}

func (l *logger) Verbo(msg string, fs ...zap.Field) { l.log(logging.Verbo, msg, fs...) }
func (l *logger) Debug(msg string, fs ...zap.Field) { l.log(logging.Debug, msg, fs...) }
func (l *logger) Trace(msg string, fs ...zap.Field) { l.log(logging.Trace, msg, fs...) }
func (l *logger) Info(msg string, fs ...zap.Field)  { l.log(logging.Info, msg, fs...) }
func (l *logger) Warn(msg string, fs ...zap.Field)  { l.log(logging.Warn, msg, fs...) }
func (l *logger) Error(msg string, fs ...zap.Field) { l.log(logging.Error, msg, fs...) }
func (l *logger) Fatal(msg string, fs ...zap.Field) { l.log(logging.Fatal, msg, fs...) }

// NewLogRecorder constructs a new [LogRecorder] at the specified level.
func NewLogRecorder(level logging.Level) *LogRecorder {
	r := new(LogRecorder)
	r.logger = &logger{
		handler: r,
		level:   level,
	}
	return r
}

// A LogRecorder is a [logging.Logger] that keeps every entry so tests can
// assert on what a runner logged.
type LogRecorder struct {
	*logger
	Records []*LogRecord
}

// A LogRecord is a single entry in a [LogRecorder].
type LogRecord struct {
	Level  logging.Level
	Msg    string
	Fields []zap.Field
}

// FieldMap returns the record's fields keyed by name.
func (r *LogRecord) FieldMap() map[string]any {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range r.Fields {
		f.AddTo(enc)
	}
	return enc.Fields
}

func (l *LogRecorder) log(lvl logging.Level, msg string, fields ...zap.Field) {
	l.Records = append(l.Records, &LogRecord{
		Level:  lvl,
		Msg:    msg,
		Fields: fields,
	})
}

// Filter returns the recorded logs for which `fn` returns true.
func (l *LogRecorder) Filter(fn func(*LogRecord) bool) []*LogRecord {
	var out []*LogRecord
	for _, r := range l.Records {
		if fn(r) {
			out = append(out, r)
		}
	}
	return out
}

// At returns all recorded logs at the specified [logging.Level].
func (l *LogRecorder) At(lvl logging.Level) []*LogRecord {
	return l.Filter(func(r *LogRecord) bool { return r.Level == lvl })
}

// AtLeast returns all recorded logs at or above the specified [logging.Level].
func (l *LogRecorder) AtLeast(lvl logging.Level) []*LogRecord {
	return l.Filter(func(r *LogRecord) bool { return r.Level >= lvl })
}

// Keys of the fields attached by a playground runner.
const (
	PlaygroundKey = "playground"
	ExampleKey    = "example"
)

// Field returns the value of the field named `key`, or false if the record has
// no such field. A repeated key resolves to its last value.
func (r *LogRecord) Field(key string) (any, bool) {
	v, ok := r.FieldMap()[key]
	return v, ok
}

// WithField returns the recorded logs carrying a field named `key` equal to
// `val`.
func (l *LogRecorder) WithField(key string, val any) []*LogRecord {
	return l.Filter(func(r *LogRecord) bool {
		v, ok := r.Field(key)
		return ok && v == val
	})
}

// ForPlayground returns the recorded logs emitted while running the named
// playground.
func (l *LogRecorder) ForPlayground(name string) []*LogRecord {
	return l.WithField(PlaygroundKey, name)
}

// ExamplesRun returns, in logging order, the names of the examples that the
// named playground reported running at the specified level.
func (l *LogRecorder) ExamplesRun(playground string, lvl logging.Level) []string {
	var names []string
	for _, r := range l.ForPlayground(playground) {
		if r.Level != lvl {
			continue
		}
		if v, ok := r.Field(ExampleKey); ok {
			if name, ok := v.(string); ok {
				names = append(names, name)
			}
		}
	}
	return names
}

// NewTBLogger constructs a logger that propagates logs to [testing.TB]. WARNING
// and ERROR logs are sent to [testing.TB.Errorf] while FATAL is sent to
// [testing.TB.Fatalf]. All other logs are sent to [testing.TB.Logf]. Although
// the level can be configured, it is silently capped at [logging.Warn].
//
//nolint:thelper // The outputs include the logging site while the TB site is most useful if here
func NewTBLogger(tb testing.TB, level logging.Level) *TBLogger {
	l := &TBLogger{tb: tb}
	l.logger = &logger{
		handler: l,
		level:   min(level, logging.Warn),
	}
	return l
}

// TBLogger is a [logging.Logger] that propagates logs to [testing.TB].
type TBLogger struct {
	*logger
	tb testing.TB
}

func (l *TBLogger) log(lvl logging.Level, msg string, fields ...zap.Field) {
	var to func(string, ...any)
	switch {
	case lvl == logging.Warn || lvl == logging.Error:
		to = l.tb.Errorf
	case lvl >= logging.Fatal:
		to = l.tb.Fatalf
	default:
		to = l.tb.Logf
	}

	enc := zapcore.NewMapObjectEncoder()
	for _, f := range fields {
		f.AddTo(enc)
	}
	_, file, line, _ := runtime.Caller(3)
	to("[Log@%s] %s %v - %s:%d", lvl, msg, enc.Fields, file, line)
}
