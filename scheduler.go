package rotolog

// The write scheduler: one logical write at a time per writer, file order
// equal to submission order, in both modes. Async mode funnels lines
// through a FIFO channel drained by a single worker goroutine, so callers
// never block on disk I/O. Sync mode runs the append inline under the
// writer lock. Rotation only ever happens as the tail of an append, so it
// can never interleave between two lines.

// write hands one formatted line to the writer. A closed writer drops the
// line with a diagnostic.
func (w *fileWriter) write(line string) {
	if w.closed.Load() {
		w.diag.Warn().Msg("write after close dropped")
		return
	}
	if w.cfg.Async {
		w.enqueue(line)
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.append(line)
}

// enqueue sends the line to the worker. The recover absorbs the
// send-on-closed-channel race with close(): a line submitted while the
// writer is shutting down is dropped, same as the closed-writer path
// above.
func (w *fileWriter) enqueue(line string) {
	defer func() {
		if recover() != nil {
			w.diag.Warn().Msg("write during shutdown dropped")
		}
	}()
	w.queue <- line
}

// run is the single worker draining the queue in submission order.
func (w *fileWriter) run() {
	defer close(w.done)
	for line := range w.queue {
		w.append(line)
	}
}

// close quiesces the writer. In async mode it closes the queue and blocks
// until the worker has drained every line already submitted; in sync mode
// it waits out any in-flight append. Safe to call more than once.
func (w *fileWriter) close() {
	if !w.closed.CompareAndSwap(false, true) {
		return
	}
	if w.cfg.Async {
		close(w.queue)
		<-w.done
		return
	}
	w.mu.Lock()
	w.mu.Unlock() //nolint:staticcheck // acquire-release is the quiesce
}
