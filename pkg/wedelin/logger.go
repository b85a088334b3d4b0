package wedelin

import "go.uber.org/zap"

// Logger is the caller-provided sink every component logs through
// (specification §6: "All logging goes through a caller-provided
// sink"). *zap.SugaredLogger satisfies it directly; NopLogger is the
// zero-cost default Solve and Optimize fall back to when given a nil
// logger.
type Logger interface {
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Debugw(msg string, keysAndValues ...interface{})
}

// NopLogger discards every message. It is the default when a caller
// does not wire a *zap.SugaredLogger.
func NopLogger() Logger {
	return zap.NewNop().Sugar()
}
