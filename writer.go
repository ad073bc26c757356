package rotolog

import (
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/atomic"
	"golang.org/x/text/encoding"
)

// fileWriter owns the base file lifecycle: it appends formatted lines and
// rotates the file by size or age. The handle is never held across calls;
// every append reopens the path, so an external tool rotating or deleting
// the file between writes is tolerated.
//
// Exactly one logical write (append, then maybe rotate) is in flight per
// writer at any time: the async queue has a single worker, and the sync
// path serializes under mu. born and the rotation walk are only ever
// touched from inside that single flight.
type fileWriter struct {
	cfg     Config
	encoder *encoding.Encoder
	diag    zerolog.Logger

	// born is when this writer first created or observed the base file;
	// age-based rotation measures from it. Reset on rotation.
	born time.Time

	mu     sync.Mutex
	queue  chan string
	done   chan struct{}
	closed atomic.Bool
}

// newFileWriter wires a writer from an already-validated configuration.
// The only work done here is resolving the charset and, in async mode,
// starting the worker; the file itself is not touched until the first
// write.
func newFileWriter(cfg Config, diag zerolog.Logger) (*fileWriter, error) {
	enc, err := lookupEncoding(cfg.Encoding)
	if err != nil {
		return nil, err
	}

	w := &fileWriter{
		cfg:     cfg,
		encoder: enc,
		diag:    diag,
	}

	if cfg.Async {
		size := cfg.BufferSize
		if size <= 0 {
			size = defaultBufferSize
		}
		w.queue = make(chan string, size)
		w.done = make(chan struct{})
		go w.run()
	}

	return w, nil
}

// append runs the whole per-write algorithm: open, encode, write, flush,
// close, then the rotation check. Every failure is non-fatal; the line is
// dropped with a diagnostic and the writer stays usable.
func (w *fileWriter) append(line string) {
	_, statErr := os.Stat(w.cfg.FilePath)
	fresh := os.IsNotExist(statErr)

	f, err := os.OpenFile(w.cfg.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, logFileMode)
	if err != nil {
		w.diag.Error().Err(err).Str("path", w.cfg.FilePath).Msg("open log file")
		return
	}
	if fresh || w.born.IsZero() {
		w.born = time.Now()
	}

	data, err := w.encode(line)
	if err != nil {
		_ = f.Close()
		w.diag.Error().Err(err).Str("charset", w.cfg.Encoding).Msg("encode log line")
		return
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		w.diag.Error().Err(err).Str("path", w.cfg.FilePath).Msg("append log line")
		return
	}
	if w.cfg.AlwaysFlush {
		if err := f.Sync(); err != nil {
			w.diag.Warn().Err(err).Str("path", w.cfg.FilePath).Msg("sync log file")
		}
	}
	_ = f.Close()

	if w.cfg.MaxSizeBytes <= 0 && w.cfg.MaxAge <= 0 {
		return
	}

	fi, err := os.Stat(w.cfg.FilePath)
	if err != nil {
		// Rotation goes inert for this write; appends keep working.
		w.diag.Warn().Err(err).Str("path", w.cfg.FilePath).Msg("stat log file")
		return
	}

	switch {
	case w.cfg.MaxSizeBytes > 0 && fi.Size() >= w.cfg.MaxSizeBytes:
		w.rotate()
	case w.cfg.MaxAge > 0 && !w.born.IsZero() && time.Since(w.born) >= w.cfg.MaxAge:
		w.rotate()
	}
}

func (w *fileWriter) encode(line string) ([]byte, error) {
	raw := []byte(line + lineSeparator)
	if w.encoder == nil {
		return raw, nil
	}
	return w.encoder.Bytes(raw)
}
