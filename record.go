package rotolog

import (
	"path/filepath"
	"runtime"
	"time"
)

// Record is a single log entry traveling down the logger chain. It is
// created once per accepted call and never mutated afterwards; scope
// tagging returns a copy. The message stays a thunk until the record has
// passed every threshold on its way to the writer.
type Record struct {
	Level    Severity
	Message  func() string
	Function string
	File     string
	Line     int
	Scope    string
	Time     time.Time
}

// newRecord captures the call site skip frames above this function.
// It is only called after a level check has passed, so suppressed records
// never pay for the caller lookup.
func newRecord(level Severity, msg func() string, skip int) Record {
	r := Record{
		Level:   level,
		Message: msg,
		Time:    time.Now(),
	}
	if pc, file, line, ok := runtime.Caller(skip); ok {
		r.File = filepath.Base(file)
		r.Line = line
		if fn := runtime.FuncForPC(pc); fn != nil {
			r.Function = filepath.Base(fn.Name())
		}
	}
	return r
}

// withScope returns a copy of the record tagged with name. A record that
// already carries a scope from an inner logger gets name composed in front,
// so a chain of scopes reads outermost-first: "outer/inner".
func (r Record) withScope(name string) Record {
	if name == emptyString {
		return r
	}
	if r.Scope != emptyString {
		name = name + scopeSeparator + r.Scope
	}
	r.Scope = name
	return r
}
