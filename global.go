package rotolog

import "sync"

// The process default is explicit, not ambient: nothing is logged until
// the composition root constructs a Root and installs it with SetDefault.
// The package-level functions below are thin forwarders for call sites
// that have no logger threaded through; they are no-ops while no default
// is installed.

var (
	defaultMu     sync.RWMutex
	defaultLogger Logger
)

// SetDefault installs l as the process default. Passing nil uninstalls it.
func SetDefault(l Logger) {
	defaultMu.Lock()
	defaultLogger = l
	defaultMu.Unlock()
}

// Default returns the installed process default, or nil.
func Default() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

func Error(msg func() string)   { logDefault(SeverityError, msg) }
func Warn(msg func() string)    { logDefault(SeverityWarn, msg) }
func Info(msg func() string)    { logDefault(SeverityInfo, msg) }
func Debug(msg func() string)   { logDefault(SeverityDebug, msg) }
func Verbose(msg func() string) { logDefault(SeverityVerbose, msg) }

func Errorf(format string, args ...any)   { logDefault(SeverityError, sprintfThunk(format, args)) }
func Warnf(format string, args ...any)    { logDefault(SeverityWarn, sprintfThunk(format, args)) }
func Infof(format string, args ...any)    { logDefault(SeverityInfo, sprintfThunk(format, args)) }
func Debugf(format string, args ...any)   { logDefault(SeverityDebug, sprintfThunk(format, args)) }
func Verbosef(format string, args ...any) { logDefault(SeverityVerbose, sprintfThunk(format, args)) }

// logDefault mirrors Logger.log so the recorded call site is the user's
// line, not this file.
func logDefault(level Severity, msg func() string) {
	l := Default()
	if l == nil || msg == nil || !level.Enabled(l.Level()) {
		return
	}
	l.write(newRecord(level, msg, callerSkip))
}
