package rhttp

import (
	"log"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"
)

// Logger can be implemented to get informed about important states.
type Logger interface {
	LogHandlerError(r *Request, err error)
	LogEncodeError(r *Request, err error)
	LogPanic(r *Request, v any)
}

type stdLogger struct{ *log.Logger }

func (l stdLogger) LogHandlerError(r *Request, err error) {
	l.Logger.Printf("rhttp: handler error on %s %s: %s", r.Method, r.URL.Path, err)
}

func (l stdLogger) LogEncodeError(r *Request, err error) {
	l.Logger.Printf("rhttp: error while encoding response for %s %s: %s", r.Method, r.URL.Path, err)
}

func (l stdLogger) LogPanic(r *Request, v any) {
	l.Logger.Printf("rhttp: panic on %s %s: %v", r.Method, r.URL.Path, v)
}

func NewStdLogger(l *log.Logger) Logger {
	return stdLogger{l}
}

type zapLogger struct{ *zap.Logger }

func (l zapLogger) LogHandlerError(r *Request, err error) {
	l.Logger.Error("handler error",
		zap.String("method", r.Method), zap.String("path", r.URL.Path), zap.Error(err))
}

func (l zapLogger) LogEncodeError(r *Request, err error) {
	l.Logger.Error("error while encoding response",
		zap.String("method", r.Method), zap.String("path", r.URL.Path), zap.Error(err))
}

func (l zapLogger) LogPanic(r *Request, v any) {
	l.Logger.Error("panic while serving request",
		zap.String("method", r.Method), zap.String("path", r.URL.Path), zap.Any("panic", v))
}

// NewZapLogger adapts a zap logger to the [Logger] interface.
func NewZapLogger(l *zap.Logger) Logger {
	return zapLogger{l.Named("rhttp")}
}

type TestLogger struct {
	tb testing.TB

	NumLogHandlerError int64
	NumLogEncodeError  int64
	NumLogPanic        int64
}

func NewTestLogger(tb testing.TB) *TestLogger {
	return &TestLogger{tb: tb}
}

func (l *TestLogger) LogHandlerError(r *Request, err error) {
	atomic.AddInt64(&l.NumLogHandlerError, 1)
	l.tb.Logf("rhttp: handler error on %s %s: %s", r.Method, r.URL.Path, err)
}

func (l *TestLogger) LogEncodeError(r *Request, err error) {
	atomic.AddInt64(&l.NumLogEncodeError, 1)
	l.tb.Logf("rhttp: error while encoding response for %s %s: %s", r.Method, r.URL.Path, err)
}

func (l *TestLogger) LogPanic(r *Request, v any) {
	atomic.AddInt64(&l.NumLogPanic, 1)
	l.tb.Logf("rhttp: panic on %s %s: %v", r.Method, r.URL.Path, v)
}

var _ Logger = &TestLogger{}
