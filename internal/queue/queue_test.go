package queue

import (
	"sync"
	"testing"
	"time"

	"github.com/lexrey20/STDISCM/internal/task"
)

func TestTakeReturnsTasksInSubmissionOrder(t *testing.T) {
	q := New()

	names := []string{"a.png", "b.png", "c.png", "d.png", "e.png"}
	for _, name := range names {
		q.Submit(task.New(name, "eng", nil))
	}

	for i, want := range names {
		got, ok := q.Take()
		if !ok {
			t.Fatalf("expected task %d, got stop signal", i)
		}
		if got.Filename != want {
			t.Fatalf("position %d: expected %q, got %q", i, want, got.Filename)
		}
	}
	if q.Len() != 0 {
		t.Fatalf("expected empty queue, got %d pending", q.Len())
	}
}

func TestTakeBlocksUntilSubmit(t *testing.T) {
	q := New()

	got := make(chan *task.Task, 1)
	go func() {
		tk, ok := q.Take()
		if ok {
			got <- tk
		}
	}()

	select {
	case <-got:
		t.Fatal("Take returned before any submission")
	case <-time.After(20 * time.Millisecond):
	}

	q.Submit(task.New("wake.png", "eng", nil))

	select {
	case tk := <-got:
		if tk.Filename != "wake.png" {
			t.Fatalf("unexpected task: %q", tk.Filename)
		}
	case <-time.After(time.Second):
		t.Fatal("Take did not wake on submission")
	}
}

func TestShutdownWakesBlockedTakers(t *testing.T) {
	q := New()

	const takers = 3
	var wg sync.WaitGroup
	stopped := make(chan bool, takers)
	for i := 0; i < takers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, ok := q.Take()
			stopped <- ok
		}()
	}

	time.Sleep(10 * time.Millisecond)
	q.Shutdown()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("blocked takers were not woken by shutdown")
	}

	for i := 0; i < takers; i++ {
		if ok := <-stopped; ok {
			t.Fatal("expected stop signal, got a task")
		}
	}
}

func TestShutdownDrainsPendingTasksFirst(t *testing.T) {
	q := New()
	q.Submit(task.New("one.png", "eng", nil))
	q.Submit(task.New("two.png", "eng", nil))
	q.Shutdown()

	for _, want := range []string{"one.png", "two.png"} {
		tk, ok := q.Take()
		if !ok {
			t.Fatalf("expected pending task %q after shutdown, got stop", want)
		}
		if tk.Filename != want {
			t.Fatalf("expected %q, got %q", want, tk.Filename)
		}
	}

	if _, ok := q.Take(); ok {
		t.Fatal("expected stop signal once the queue drained")
	}
}

func TestShutdownIsIdempotent(t *testing.T) {
	q := New()
	q.Shutdown()
	q.Shutdown()

	if _, ok := q.Take(); ok {
		t.Fatal("expected stop signal on shut down queue")
	}
}
