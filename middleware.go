package toolschema

import (
	"log/slog"
	"time"
)

// Middleware wraps an Invoker with cross-cutting behavior (logging,
// recovery).
type Middleware func(Invoker) Invoker

// WithLogging returns a middleware that logs start, end, duration, and
// errors of each invocation.
func WithLogging(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next Invoker) Invoker {
		return &loggingInvoker{invokerBase: invokerBase{next: next}, logger: logger}
	}
}

// WithRecovery returns a middleware that recovers panics in the wrapped
// callable and returns them as SystemError.
func WithRecovery() Middleware {
	return func(next Invoker) Invoker {
		return &recoveryInvoker{invokerBase{next: next}}
	}
}

// invokerBase delegates Name to the wrapped Invoker; used by middleware
// wrappers.
type invokerBase struct{ next Invoker }

func (b *invokerBase) Name() string { return b.next.Name() }

type loggingInvoker struct {
	invokerBase
	logger *slog.Logger
}

func (l *loggingInvoker) Call(args map[string]any) (any, error) {
	l.logger.Info("tool call start", "tool", l.next.Name())
	start := time.Now()
	res, err := l.next.Call(args)
	dur := time.Since(start)
	if err != nil {
		l.logger.Error("tool call error", "tool", l.next.Name(), "duration", dur, "error", err)
		return nil, err
	}
	l.logger.Info("tool call end", "tool", l.next.Name(), "duration", dur)
	return res, nil
}

type recoveryInvoker struct{ invokerBase }

func (r *recoveryInvoker) Call(args map[string]any) (res any, err error) {
	defer func() {
		if p := recover(); p != nil {
			res = nil
			err = &SystemError{Err: &panicError{p: p}}
		}
	}()
	return r.next.Call(args)
}
