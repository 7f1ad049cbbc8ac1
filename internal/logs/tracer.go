package logs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/npillmayer/schuko/tracing"
)

// Tracer implements tracing.Trace on top of a slog logger. Trace levels
// map to slog levels Error, Info and Debug; the trace level filters
// before the logger's own level does.
type Tracer struct {
	logger *slog.Logger
	level  *atomic.Uint32 // shared with tracers derived by P
}

// NewTracer returns a tracer writing to logger at trace level level.
func NewTracer(logger *slog.Logger, level tracing.TraceLevel) *Tracer {
	t := &Tracer{logger: logger, level: new(atomic.Uint32)}
	t.level.Store(uint32(level))
	return t
}

// Adapter returns a tracing.Adapter producing a tracer on logger, for
// use with tracing.SelectorForAdapter.
func Adapter(logger *slog.Logger, level tracing.TraceLevel) tracing.Adapter {
	return func() tracing.Trace {
		return NewTracer(logger, level)
	}
}

// Install routes every tracing.Select key to a tracer on logger.
func Install(logger *slog.Logger, level tracing.TraceLevel) {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(Adapter(logger, level)))
}

// Errorf is part of interface Trace
func (t *Tracer) Errorf(s string, args ...interface{}) {
	t.output(tracing.LevelError, slog.LevelError, s, args...)
}

// Infof is part of interface Trace
func (t *Tracer) Infof(s string, args ...interface{}) {
	t.output(tracing.LevelInfo, slog.LevelInfo, s, args...)
}

// Debugf is part of interface Trace
func (t *Tracer) Debugf(s string, args ...interface{}) {
	t.output(tracing.LevelDebug, slog.LevelDebug, s, args...)
}

// P is part of interface Trace. The returned tracer adds key=val to
// every record and shares the trace level with t.
func (t *Tracer) P(key string, val interface{}) tracing.Trace {
	return &Tracer{logger: t.logger.With(key, val), level: t.level}
}

// SetTraceLevel is part of interface Trace
func (t *Tracer) SetTraceLevel(l tracing.TraceLevel) {
	t.level.Store(uint32(l))
}

// GetTraceLevel is part of interface Trace
func (t *Tracer) GetTraceLevel() tracing.TraceLevel {
	return tracing.TraceLevel(t.level.Load())
}

// SetOutput is part of interface Trace. It replaces the logger with a
// text logger on writer that passes every level.
func (t *Tracer) SetOutput(writer io.Writer) {
	t.logger = slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

func (t *Tracer) output(tl tracing.TraceLevel, sl slog.Level, s string, args ...interface{}) {
	if t.GetTraceLevel() < tl {
		return
	}
	t.logger.Log(context.Background(), sl, fmt.Sprintf(s, args...))
}

var _ tracing.Trace = (*Tracer)(nil)
