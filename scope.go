package rotolog

import "go.uber.org/atomic"

// scopedLogger wraps a parent logger and tags records with a component
// name before delegating. It owns nothing: no writer, no lock, no queue.
// Its threshold is independent of the parent's, but the parent (and
// ultimately the root) still filters whatever is forwarded, so the
// stricter link of the chain wins.
type scopedLogger struct {
	parent Logger
	name   string
	level  atomic.Uint32
}

func newScopedLogger(parent Logger, name string) *scopedLogger {
	s := &scopedLogger{parent: parent, name: name}
	s.level.Store(uint32(parent.Level()))
	return s
}

func (s *scopedLogger) SetLevel(level Severity) { s.level.Store(uint32(level)) }

func (s *scopedLogger) Level() Severity { return Severity(s.level.Load()) }

func (s *scopedLogger) WithScope(name string) Logger {
	return newScopedLogger(s, name)
}

func (s *scopedLogger) Write(level Severity, msg func() string) { s.log(level, msg) }

func (s *scopedLogger) Error(msg func() string)   { s.log(SeverityError, msg) }
func (s *scopedLogger) Warn(msg func() string)    { s.log(SeverityWarn, msg) }
func (s *scopedLogger) Info(msg func() string)    { s.log(SeverityInfo, msg) }
func (s *scopedLogger) Debug(msg func() string)   { s.log(SeverityDebug, msg) }
func (s *scopedLogger) Verbose(msg func() string) { s.log(SeverityVerbose, msg) }

func (s *scopedLogger) Errorf(format string, args ...any) {
	s.log(SeverityError, sprintfThunk(format, args))
}

func (s *scopedLogger) Warnf(format string, args ...any) {
	s.log(SeverityWarn, sprintfThunk(format, args))
}

func (s *scopedLogger) Infof(format string, args ...any) {
	s.log(SeverityInfo, sprintfThunk(format, args))
}

func (s *scopedLogger) Debugf(format string, args ...any) {
	s.log(SeverityDebug, sprintfThunk(format, args))
}

func (s *scopedLogger) Verbosef(format string, args ...any) {
	s.log(SeverityVerbose, sprintfThunk(format, args))
}

func (s *scopedLogger) log(level Severity, msg func() string) {
	if msg == nil || !level.Enabled(s.Level()) {
		return
	}
	s.parent.write(newRecord(level, msg, callerSkip).withScope(s.name))
}

// write forwards a record arriving from an inner scope: check this
// logger's own threshold, tag, pass it on. Delegation is unconditional
// once the local check passes; whether the record reaches disk is the
// parent's call.
func (s *scopedLogger) write(rec Record) {
	if !rec.Level.Enabled(s.Level()) {
		return
	}
	s.parent.write(rec.withScope(s.name))
}
