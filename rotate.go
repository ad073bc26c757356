package rotolog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// slotPath returns the on-disk path of rotation slot i. Slot 0 is the base
// file; higher slots take the index inserted before the extension, so
// logs/app.log shifts into logs/app.1.log, logs/app.2.log, and so on.
func (w *fileWriter) slotPath(i int) string {
	if i == 0 {
		return w.cfg.FilePath
	}
	ext := filepath.Ext(w.cfg.FilePath)
	base := strings.TrimSuffix(w.cfg.FilePath, ext)
	return fmt.Sprintf("%s.%d%s", base, i, ext)
}

// rotate shifts the whole rotation set up by one slot, finishing with the
// base file in slot 1. Slots are walked from the highest existing index
// downward; renaming upward would overwrite files that have not moved yet.
// The slot at the retention boundary is deleted outright instead of being
// renamed past the limit.
//
// Each rename or delete is best-effort: a failed slot is diagnosed and
// skipped, because a partially shifted chain is preferable to giving up on
// rotation and letting the base file grow forever. After the walk the base
// path is absent; the next append recreates it empty.
func (w *fileWriter) rotate() {
	limit := w.cfg.MaxBackups
	if limit <= 0 {
		limit = unboundedBackups
	}

	highest := 0
	for i := 1; i <= limit; i++ {
		if _, err := os.Stat(w.slotPath(i)); err != nil {
			break
		}
		highest = i
	}

	if highest == limit {
		if err := os.Remove(w.slotPath(limit)); err != nil {
			w.diag.Warn().Err(err).Str("path", w.slotPath(limit)).Msg("drop oldest rotation slot")
		}
		highest--
	}

	for i := highest; i >= 0; i-- {
		from, to := w.slotPath(i), w.slotPath(i+1)
		if err := os.Rename(from, to); err != nil {
			w.diag.Warn().Err(err).Str("from", from).Str("to", to).Msg("shift rotation slot")
		}
	}

	w.born = time.Time{}
}
