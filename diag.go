package rotolog

import (
	"io"

	"github.com/rs/zerolog"
)

// newDiagLogger builds the fallback diagnostics channel. Writer failures
// (unwritable path, bad encoding, failed stat or rename) never propagate
// to callers; they are reported here instead, off to the side of the log
// file itself. Production roots point it at os.Stderr; tests inject a
// buffer.
func newDiagLogger(out io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: out, NoColor: true}).With().Timestamp().Logger()
}
