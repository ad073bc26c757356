// Package rotolog provides a leveled logger in front of a single rotating
// log file, with lazy message evaluation and serialized writes.
//
// Key features
//   - Five severities (error, warn, info, debug, verbose) with one fixed
//     comparison direction across the whole logger chain
//   - Lazy message thunks: a suppressed record costs a comparison, never a
//     string allocation
//   - Scoped child loggers that tag records with a component name and
//     delegate to their parent; the root logger is the final gate
//   - Size- and age-based rotation into numbered slots (app.log, app.1.log,
//     ...) with an optional retention limit
//   - Asynchronous (single worker, FIFO) or synchronous (per-writer mutex)
//     write scheduling; file order always equals submission order
//   - Fire and forget: writer failures are diagnosed on a fallback channel
//     and never crash or block the host application
//
// Typical usage
//
//	log, err := rotolog.New(rotolog.SeverityInfo, rotolog.Config{
//		FilePath:     filepath.Join(dir, "app.log"),
//		Async:        true,
//		MaxSizeBytes: 10 << 20,
//		MaxBackups:   5,
//	})
//	if err != nil { panic(err) }
//	defer log.Close()
//
//	log.Info(func() string { return "started" })
//	db := log.WithScope("db")
//	db.Errorf("connect %s: %v", addr, err)
package rotolog
