package task

import (
	"context"
	"sync"
	"time"
)

// DefaultLang is used when a request carries no language hint.
const DefaultLang = "eng"

// Task is one unit of recognition work derived from a single request.
// It is owned by the queue from Submit until a worker dequeues it, then by
// that worker until the result is fulfilled.
type Task struct {
	Filename  string
	Lang      string
	Image     []byte
	CreatedAt time.Time
	Result    *ResultChannel
}

// New builds a task with its result channel, capturing the creation time.
// An empty lang falls back to DefaultLang.
func New(filename, lang string, image []byte) *Task {
	if lang == "" {
		lang = DefaultLang
	}
	return &Task{
		Filename:  filename,
		Lang:      lang,
		Image:     image,
		CreatedAt: time.Now(),
		Result:    NewResultChannel(),
	}
}

// ResultChannel is a two-party handoff: one writer, one reader, written at
// most once. Fulfilling after the reader has abandoned the wait must not
// block, so the underlying channel is buffered.
type ResultChannel struct {
	once sync.Once
	ch   chan string
}

// NewResultChannel returns an unfulfilled result channel.
func NewResultChannel() *ResultChannel {
	return &ResultChannel{ch: make(chan string, 1)}
}

// Fulfill delivers the result. The first call wins; later calls are no-ops.
func (r *ResultChannel) Fulfill(text string) {
	r.once.Do(func() {
		r.ch <- text
	})
}

// Wait blocks until the result is fulfilled, the context is done, or the
// timeout elapses, whichever comes first.
func (r *ResultChannel) Wait(ctx context.Context, timeout time.Duration) (string, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case text := <-r.ch:
		return text, nil
	case <-ctx.Done():
		return "", ctx.Err()
	case <-timer.C:
		return "", context.DeadlineExceeded
	}
}
