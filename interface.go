package rotolog

// Logger is implemented by the root logger and by scoped loggers derived
// from it. Message arguments are zero-argument thunks; a thunk is forced
// only after the record has passed the logger's own threshold, so callers
// can hand over expensive formatting without guarding it by level checks.
type Logger interface {
	// Write records a message at an explicit severity.
	Write(level Severity, msg func() string)

	Error(msg func() string)
	Warn(msg func() string)
	Info(msg func() string)
	Debug(msg func() string)
	Verbose(msg func() string)

	// Printf-style conveniences. Formatting is deferred behind the level
	// gate like any other thunk.
	Errorf(format string, args ...any)
	Warnf(format string, args ...any)
	Infof(format string, args ...any)
	Debugf(format string, args ...any)
	Verbosef(format string, args ...any)

	// WithScope derives a child logger that tags records with name before
	// delegating to this logger. The child starts at this logger's current
	// threshold and adjusts it independently afterwards.
	WithScope(name string) Logger

	SetLevel(level Severity)
	Level() Severity

	// write forwards an already-built record one hop up the chain.
	write(rec Record)
}
