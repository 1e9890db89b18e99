package pool

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/lexrey20/STDISCM/internal/engine"
	"github.com/lexrey20/STDISCM/internal/queue"
	"github.com/lexrey20/STDISCM/internal/task"
)

type fakeEngine struct {
	mu         sync.Mutex
	initErr    error
	recognize  func(lang string) (string, error)
	recognized []string
	closed     bool
}

func (f *fakeEngine) Init() error { return f.initErr }

func (f *fakeEngine) Recognize(img image.Image, lang string) (string, error) {
	f.mu.Lock()
	f.recognized = append(f.recognized, lang)
	f.mu.Unlock()
	if f.recognize != nil {
		return f.recognize(lang)
	}
	return "", nil
}

func (f *fakeEngine) Close() error {
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()
	return nil
}

func (f *fakeEngine) recognizedLangs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.recognized...)
}

func whitePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

func awaitResult(t *testing.T, tk *task.Task) string {
	t.Helper()
	text, err := tk.Result.Wait(context.Background(), 2*time.Second)
	if err != nil {
		t.Fatalf("task %q was not fulfilled: %v", tk.Filename, err)
	}
	return text
}

func TestSingleWorkerProcessesInSubmissionOrder(t *testing.T) {
	q := queue.New()
	eng := &fakeEngine{}
	p := New(1, q, func() engine.Engine { return eng }, zap.NewNop())
	defer p.Stop()

	img := whitePNG(t, 4, 4)
	const n = 10
	tasks := make([]*task.Task, 0, n)
	for i := 0; i < n; i++ {
		tk := task.New(fmt.Sprintf("img-%d.png", i), fmt.Sprintf("l%d", i), img)
		tasks = append(tasks, tk)
		q.Submit(tk)
	}

	for _, tk := range tasks {
		awaitResult(t, tk)
	}

	langs := eng.recognizedLangs()
	for i, lang := range langs {
		if want := fmt.Sprintf("l%d", i); lang != want {
			t.Fatalf("position %d: expected %q, got %q (order: %v)", i, want, lang, langs)
		}
	}
}

func TestBadTaskDoesNotKillWorker(t *testing.T) {
	q := queue.New()
	eng := &fakeEngine{recognize: func(lang string) (string, error) {
		if lang == "boom" {
			panic("engine blew up")
		}
		return "recovered text", nil
	}}
	p := New(1, q, func() engine.Engine { return eng }, zap.NewNop())
	defer p.Stop()

	img := whitePNG(t, 4, 4)
	bad := task.New("bad.png", "boom", img)
	good := task.New("good.png", "eng", img)
	q.Submit(bad)
	q.Submit(good)

	if text := awaitResult(t, bad); !strings.HasPrefix(text, "ERROR:") {
		t.Fatalf("expected error marker for panicking task, got %q", text)
	}
	if text := awaitResult(t, good); text != "recovered text" {
		t.Fatalf("expected the same worker to keep serving, got %q", text)
	}
}

func TestRecognitionErrorYieldsMarkerText(t *testing.T) {
	q := queue.New()
	eng := &fakeEngine{recognize: func(string) (string, error) {
		return "", errors.New("trained data missing")
	}}
	p := New(1, q, func() engine.Engine { return eng }, zap.NewNop())
	defer p.Stop()

	tk := task.New("scan.png", "eng", whitePNG(t, 4, 4))
	q.Submit(tk)

	if text := awaitResult(t, tk); text != "ERROR: trained data missing" {
		t.Fatalf("unexpected marker text: %q", text)
	}
	if got := p.Stats().RecognitionFailures; got != 1 {
		t.Fatalf("expected 1 recognition failure, got %d", got)
	}
}

func TestDecodeFailureYieldsEmptyText(t *testing.T) {
	q := queue.New()
	eng := &fakeEngine{}
	p := New(1, q, func() engine.Engine { return eng }, zap.NewNop())
	defer p.Stop()

	tk := task.New("garbage.bin", "eng", []byte("definitely not an image"))
	q.Submit(tk)

	if text := awaitResult(t, tk); text != "" {
		t.Fatalf("expected empty text on decode failure, got %q", text)
	}
	if got := p.Stats().DecodeFailures; got != 1 {
		t.Fatalf("expected 1 decode failure, got %d", got)
	}
	if len(eng.recognizedLangs()) != 0 {
		t.Fatal("engine must not be invoked when decoding fails")
	}
}

func TestStopDrainsQueuedTasks(t *testing.T) {
	q := queue.New()

	// Tasks queued before any worker exists must still complete under the
	// drain-before-stopping shutdown semantics.
	img := whitePNG(t, 4, 4)
	const k = 8
	tasks := make([]*task.Task, 0, k)
	for i := 0; i < k; i++ {
		tk := task.New(fmt.Sprintf("queued-%d.png", i), "eng", img)
		tasks = append(tasks, tk)
		q.Submit(tk)
	}

	eng := &fakeEngine{recognize: func(string) (string, error) {
		time.Sleep(5 * time.Millisecond)
		return "drained", nil
	}}
	p := New(2, q, func() engine.Engine { return eng }, zap.NewNop())
	p.Stop()

	for _, tk := range tasks {
		if text := awaitResult(t, tk); text != "drained" {
			t.Fatalf("task %q not drained before stop: %q", tk.Filename, text)
		}
	}
	if got := p.Stats().Processed; got != k {
		t.Fatalf("expected %d processed tasks, got %d", k, got)
	}
	if !eng.closed {
		t.Fatal("expected engines to be closed after stop")
	}

	// Idempotent.
	p.Stop()
}

func TestEngineInitFailureIsNonFatal(t *testing.T) {
	q := queue.New()
	eng := &fakeEngine{
		initErr:   errors.New("tessdata not found"),
		recognize: func(string) (string, error) { return "", errors.New("engine not initialized") },
	}
	p := New(1, q, func() engine.Engine { return eng }, zap.NewNop())
	defer p.Stop()

	if p.Healthy() {
		t.Fatal("pool must report degraded after an engine init failure")
	}
	if got := p.Stats().EngineInitFailures; got != 1 {
		t.Fatalf("expected 1 init failure, got %d", got)
	}

	tk := task.New("scan.png", "eng", whitePNG(t, 4, 4))
	q.Submit(tk)
	if text := awaitResult(t, tk); !strings.HasPrefix(text, "ERROR:") {
		t.Fatalf("degraded worker should still serve with marker text, got %q", text)
	}
}
