package rotolog

import "strings"

// Formatter renders a record into the single line appended to the log
// file. Forcing the message thunk is the formatter's job; the write path
// calls the formatter exactly once per accepted record, after the final
// threshold check.
type Formatter func(rec Record) string

// timestampLayout is ISO-8601 with millisecond precision.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// DefaultFormatter emits "<timestamp> [<scope>] <message>", dropping the
// bracket pair for unscoped records.
func DefaultFormatter(rec Record) string {
	var b strings.Builder
	b.WriteString(rec.Time.Format(timestampLayout))
	b.WriteByte(' ')
	if rec.Scope != emptyString {
		b.WriteByte('[')
		b.WriteString(rec.Scope)
		b.WriteString("] ")
	}
	b.WriteString(rec.Message())
	return b.String()
}
