package rotolog

import (
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

// Root is the root logger. It owns the rotation-aware writer and is the
// final gate of every chain: a record forwarded by a scoped logger is
// still dropped here if it fails the root threshold. Construct one per
// process at the composition root and hand it (or scoped children) to
// dependents.
type Root struct {
	level      atomic.Uint32
	writer     atomic.Pointer[fileWriter]
	cfg        atomic.Pointer[Config]
	configured atomic.Bool
	diag       zerolog.Logger

	// reconfigMu serializes Reconfigure and Close against each other so a
	// writer is quiesced by exactly one of them.
	reconfigMu sync.Mutex
}

// callerSkip reaches the user's call site through log -> level method.
const callerSkip = 3

// New constructs a root logger at the given threshold and installs cfg.
func New(level Severity, cfg Config) (*Root, error) {
	r := &Root{diag: newDiagLogger(os.Stderr)}
	r.level.Store(uint32(level))
	if err := r.Reconfigure(cfg); err != nil {
		return nil, err
	}
	return r, nil
}

// Reconfigure validates cfg, installs a fresh writer for it and quiesces
// the old one: by the time Reconfigure returns, every write already
// submitted against the previous configuration has reached its file.
func (r *Root) Reconfigure(cfg Config) error {
	if err := validateConfig(&cfg); err != nil {
		return err
	}
	if cfg.Formatter == nil {
		cfg.Formatter = DefaultFormatter
	}

	w, err := newFileWriter(cfg, r.diag)
	if err != nil {
		return fmt.Errorf("configuring writer: %w", err)
	}

	r.reconfigMu.Lock()
	defer r.reconfigMu.Unlock()

	old := r.writer.Swap(w)
	r.cfg.Store(&cfg)
	r.configured.Store(true)

	if old != nil {
		old.close()
	}
	return nil
}

// Close quiesces the writer and drops any later writes. Safe to call more
// than once; the logger can be revived with Reconfigure.
func (r *Root) Close() error {
	r.reconfigMu.Lock()
	defer r.reconfigMu.Unlock()

	if w := r.writer.Swap(nil); w != nil {
		w.close()
	}
	return nil
}

// Config returns the active configuration. Requesting it before any
// configuration was ever installed is a contract violation, not an
// environment condition, and panics; every other failure in this package
// is diagnosed and absorbed.
func (r *Root) Config() Config {
	if !r.configured.Load() {
		panic(errMsgNotConfigured)
	}
	return *r.cfg.Load()
}

// SetLevel adjusts the root threshold. Records above the threshold (less
// severe) are dropped before their message thunk is forced.
func (r *Root) SetLevel(level Severity) { r.level.Store(uint32(level)) }

func (r *Root) Level() Severity { return Severity(r.level.Load()) }

// WithScope derives a logger that tags records with name and delegates
// here. The child holds a non-owning reference: it never touches the
// writer, and closing or reconfiguring the root affects it immediately.
func (r *Root) WithScope(name string) Logger {
	return newScopedLogger(r, name)
}

func (r *Root) Write(level Severity, msg func() string) { r.log(level, msg) }

func (r *Root) Error(msg func() string)   { r.log(SeverityError, msg) }
func (r *Root) Warn(msg func() string)    { r.log(SeverityWarn, msg) }
func (r *Root) Info(msg func() string)    { r.log(SeverityInfo, msg) }
func (r *Root) Debug(msg func() string)   { r.log(SeverityDebug, msg) }
func (r *Root) Verbose(msg func() string) { r.log(SeverityVerbose, msg) }

func (r *Root) Errorf(format string, args ...any) { r.log(SeverityError, sprintfThunk(format, args)) }
func (r *Root) Warnf(format string, args ...any)  { r.log(SeverityWarn, sprintfThunk(format, args)) }
func (r *Root) Infof(format string, args ...any)  { r.log(SeverityInfo, sprintfThunk(format, args)) }
func (r *Root) Debugf(format string, args ...any) { r.log(SeverityDebug, sprintfThunk(format, args)) }
func (r *Root) Verbosef(format string, args ...any) {
	r.log(SeverityVerbose, sprintfThunk(format, args))
}

func (r *Root) log(level Severity, msg func() string) {
	if msg == nil || !level.Enabled(r.Level()) {
		return
	}
	r.write(newRecord(level, msg, callerSkip))
}

// write is the last hop of the chain: re-check the threshold for records
// arriving from scoped loggers, format (forcing the thunk exactly once)
// and hand the line to the scheduler. The formatter comes from the loaded
// writer's own configuration, so a concurrent Reconfigure can never pair
// one configuration's formatter with another configuration's writer.
func (r *Root) write(rec Record) {
	if !rec.Level.Enabled(r.Level()) {
		return
	}
	w := r.writer.Load()
	if w == nil {
		return
	}
	w.write(w.cfg.Formatter(rec))
}

// sprintfThunk defers printf formatting behind the level gate.
func sprintfThunk(format string, args []any) func() string {
	return func() string { return fmt.Sprintf(format, args...) }
}
