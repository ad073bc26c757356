package rotolog

import "time"

// Config is the writer configuration. It is pure data: constructing a
// writer from it performs no I/O beyond what the writes themselves need,
// and an installed configuration is never mutated. Install a changed copy
// with Root.Reconfigure instead.
type Config struct {
	// FilePath is the base log file. Rotated backups live next to it with
	// numbered suffixes inserted before the extension: app.log, app.1.log,
	// app.2.log, ...
	FilePath string `json:"file_path" yaml:"file_path" koanf:"file_path" validate:"required"`

	// Encoding is the IANA charset name used for the on-disk bytes.
	// Empty means UTF-8 (written as-is).
	Encoding string `json:"encoding" yaml:"encoding" koanf:"encoding"`

	// Async selects the single-worker queue; when false each write blocks
	// the caller under the writer lock.
	Async bool `json:"async" yaml:"async" koanf:"async"`

	// AlwaysFlush forces a durable sync after every append.
	AlwaysFlush bool `json:"always_flush" yaml:"always_flush" koanf:"always_flush"`

	// MaxSizeBytes rotates the base file once its size reaches the
	// threshold. Zero disables rotation by size.
	MaxSizeBytes int64 `json:"max_size_bytes" yaml:"max_size_bytes" koanf:"max_size_bytes" validate:"gte=0"`

	// MaxAge rotates the base file once it has existed for the duration.
	// Zero disables rotation by age. When both thresholds are configured
	// and both fire on the same write, size wins.
	MaxAge time.Duration `json:"max_age" yaml:"max_age" koanf:"-" validate:"gte=0"`

	// MaxBackups bounds the rotation set; the slot at the boundary is
	// deleted rather than renamed past it. Zero keeps every backup.
	MaxBackups int `json:"max_backups" yaml:"max_backups" koanf:"max_backups" validate:"gte=0"`

	// BufferSize is the async queue capacity; zero means a default.
	BufferSize int `json:"buffer_size" yaml:"buffer_size" koanf:"buffer_size" validate:"gte=0"`

	// Formatter renders records into lines; nil means DefaultFormatter.
	Formatter Formatter `json:"-" yaml:"-" koanf:"-"`
}
