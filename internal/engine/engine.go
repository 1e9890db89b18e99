package engine

import "image"

// Engine is the recognition capability owned by a single worker. It is
// stateful and not safe for concurrent use; exclusivity comes from the
// one-engine-per-worker ownership rule, never from locking.
type Engine interface {
	// Init prepares the engine. It is called once, at worker startup,
	// because initialization is too expensive to repeat per task.
	Init() error
	// Recognize extracts text from a preprocessed pixel buffer. An empty
	// string is a valid result.
	Recognize(img image.Image, lang string) (string, error)
	// Close releases engine resources at worker shutdown.
	Close() error
}

// Factory builds one engine per worker.
type Factory func() Engine
