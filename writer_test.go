package rotolog

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestWriter builds a sync-mode writer unless cfg says otherwise,
// routing diagnostics into diag so tests can assert on them.
func newTestWriter(t testing.TB, cfg Config, diag *bytes.Buffer) *fileWriter {
	t.Helper()
	w, err := newFileWriter(cfg, newDiagLogger(diag))
	require.NoError(t, err)
	t.Cleanup(w.close)
	return w
}

func readFile(t testing.TB, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestWriterAppendsWithSeparator(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	var diag bytes.Buffer
	w := newTestWriter(t, Config{FilePath: path}, &diag)

	w.write("one")
	w.write("two")

	require.Equal(t, "one\ntwo\n", readFile(t, path))
	assert.Empty(t, diag.String())
}

func TestWriterToleratesExternalDeletion(t *testing.T) {
	// The handle is reacquired per write, so removing the file between
	// calls just starts a fresh one.
	path := filepath.Join(t.TempDir(), "app.log")
	var diag bytes.Buffer
	w := newTestWriter(t, Config{FilePath: path}, &diag)

	w.write("first")
	require.NoError(t, os.Remove(path))
	w.write("second")

	require.Equal(t, "second\n", readFile(t, path))
}

func TestWriterOpenFailureIsDiagnosedAndDropped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "app.log")
	var diag bytes.Buffer
	w := newTestWriter(t, Config{FilePath: path}, &diag)

	w.write("lost")

	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err), "no partial file may be left behind")
	assert.Contains(t, diag.String(), "open log file")
}

func TestWriterAlwaysFlush(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	var diag bytes.Buffer
	w := newTestWriter(t, Config{FilePath: path, AlwaysFlush: true}, &diag)

	w.write("durable")
	require.Equal(t, "durable\n", readFile(t, path))
	assert.Empty(t, diag.String())
}

func TestWriterEncodesConfiguredCharset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	var diag bytes.Buffer
	w := newTestWriter(t, Config{FilePath: path, Encoding: "ISO-8859-1"}, &diag)

	w.write("café")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []byte{'c', 'a', 'f', 0xe9, '\n'}, data)
}

func TestWriterEncodingFailureDropsLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	var diag bytes.Buffer
	w := newTestWriter(t, Config{FilePath: path, Encoding: "ISO-8859-1"}, &diag)

	w.write("arrow → nowhere")
	w.write("plain")

	require.Equal(t, "plain\n", readFile(t, path))
	assert.Contains(t, diag.String(), "encode log line")
}

func TestWriterUnknownCharsetRejectedAtConstruction(t *testing.T) {
	_, err := newFileWriter(Config{
		FilePath: filepath.Join(t.TempDir(), "app.log"),
		Encoding: "no-such-charset",
	}, newDiagLogger(&bytes.Buffer{}))
	require.Error(t, err)
}

func TestNoRotationWithoutThresholds(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")
	var diag bytes.Buffer
	w := newTestWriter(t, Config{FilePath: path}, &diag)

	line := strings.Repeat("x", 200)
	for i := 0; i < 10; i++ {
		w.write(line)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "the base file grows unbounded, no rotation slots appear")

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(10*201), fi.Size())
}

func TestSizeRotationShiftsSlots(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")
	var diag bytes.Buffer
	w := newTestWriter(t, Config{FilePath: path, MaxSizeBytes: 100, MaxBackups: 2}, &diag)

	// 60 bytes + separator per line: every second line crosses the
	// threshold, and the crossing line lands in the pre-rotation file.
	a := strings.Repeat("a", 60)
	b := strings.Repeat("b", 60)
	c := strings.Repeat("c", 60)

	w.write(a)
	w.write(a) // rotates: base -> .1
	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err), "base is absent until the next write")
	require.Contains(t, readFile(t, filepath.Join(dir, "app.1.log")), a)

	w.write(b)
	w.write(b) // rotates: .1 -> .2, base -> .1
	require.Contains(t, readFile(t, filepath.Join(dir, "app.1.log")), b)
	require.Contains(t, readFile(t, filepath.Join(dir, "app.2.log")), a)

	w.write(c)
	w.write(c) // rotates: .2 deleted at the boundary, .1 -> .2, base -> .1
	require.Contains(t, readFile(t, filepath.Join(dir, "app.1.log")), c)
	require.Contains(t, readFile(t, filepath.Join(dir, "app.2.log")), b)
	require.NotContains(t, readFile(t, filepath.Join(dir, "app.2.log")), a)

	_, err = os.Stat(filepath.Join(dir, "app.3.log"))
	require.True(t, os.IsNotExist(err), "nothing is renamed past the retention limit")
}

func TestAgeRotation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")
	var diag bytes.Buffer
	w := newTestWriter(t, Config{FilePath: path, MaxAge: 50 * time.Millisecond}, &diag)

	w.write("old")
	time.Sleep(70 * time.Millisecond)
	w.write("still old") // triggers rotation after landing in the old file

	rotated := readFile(t, filepath.Join(dir, "app.1.log"))
	require.Contains(t, rotated, "old")
	require.Contains(t, rotated, "still old")

	w.write("new")
	require.Equal(t, "new\n", readFile(t, path))
}

func TestRotationUnboundedKeepsAllSlots(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")
	var diag bytes.Buffer
	w := newTestWriter(t, Config{FilePath: path, MaxSizeBytes: 10}, &diag)

	for i := 0; i < 4; i++ {
		w.write(strings.Repeat("x", 20)) // every write rotates
	}

	for i := 1; i <= 4; i++ {
		_, err := os.Stat(w.slotPath(i))
		require.NoError(t, err, "slot %d", i)
	}
}

func TestSlotPath(t *testing.T) {
	w := &fileWriter{cfg: Config{FilePath: filepath.Join("logs", "app.log")}}
	assert.Equal(t, filepath.Join("logs", "app.log"), w.slotPath(0))
	assert.Equal(t, filepath.Join("logs", "app.1.log"), w.slotPath(1))
	assert.Equal(t, filepath.Join("logs", "app.12.log"), w.slotPath(12))

	w = &fileWriter{cfg: Config{FilePath: "noext"}}
	assert.Equal(t, "noext.1", w.slotPath(1))
}

func TestWriteAfterCloseIsDropped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	var diag bytes.Buffer
	w, err := newFileWriter(Config{FilePath: path}, newDiagLogger(&diag))
	require.NoError(t, err)

	w.write("kept")
	w.close()
	w.close() // idempotent
	w.write("dropped")

	require.Equal(t, "kept\n", readFile(t, path))
	assert.Contains(t, diag.String(), "write after close dropped")
}
