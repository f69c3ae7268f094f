package ports

// Watcher monitors a fixed set of files for modification and invokes a
// callback per changed file. Events are debounced by the adapter (editors
// often trigger multiple writes per save).
type Watcher interface {
	// Watch starts monitoring the given file paths. onChange receives the
	// absolute path of each changed file. Watch returns immediately; events
	// are delivered from a background goroutine until Stop.
	Watch(paths []string, onChange func(path string)) error

	// Stop terminates event delivery. Idempotent.
	Stop() error
}
