package rotolog

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// lookupEncoding resolves an IANA charset name to an encoder for the
// on-disk bytes. Empty name and UTF-8 (under any alias) resolve to nil,
// meaning lines are written as-is. The returned encoder is strict: runes
// the charset cannot represent surface as an encode error rather than
// being silently replaced, which is what lets the writer drop the line
// with a diagnostic.
func lookupEncoding(name string) (*encoding.Encoder, error) {
	if name == emptyString {
		return nil, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("charset %q: %w", name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("charset %q is not supported", name)
	}
	if enc == unicode.UTF8 {
		return nil, nil
	}
	return enc.NewEncoder(), nil
}
