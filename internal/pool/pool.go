package pool

import (
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lexrey20/STDISCM/internal/engine"
	"github.com/lexrey20/STDISCM/internal/preprocess"
	"github.com/lexrey20/STDISCM/internal/queue"
	"github.com/lexrey20/STDISCM/internal/task"
)

// DefaultWorkers is the pool size used when none is configured.
const DefaultWorkers = 4

// Stats is a point-in-time snapshot of pool counters.
type Stats struct {
	Workers             int   `json:"workers"`
	Pending             int   `json:"pending"`
	Processed           int64 `json:"processed"`
	DecodeFailures      int64 `json:"decode_failures"`
	RecognitionFailures int64 `json:"recognition_failures"`
	EngineInitFailures  int64 `json:"engine_init_failures"`
}

// Pool owns a fixed set of long-lived workers draining the task queue. Each
// worker initializes exactly one engine at startup and keeps it for life.
type Pool struct {
	queue   *queue.Queue
	factory engine.Factory
	logger  *zap.Logger
	workers int

	wg       sync.WaitGroup
	stopOnce sync.Once

	processed           atomic.Int64
	decodeFailures      atomic.Int64
	recognitionFailures atomic.Int64
	initFailures        atomic.Int64
}

// New starts workers workers draining q. A non-positive count falls back to
// DefaultWorkers.
func New(workers int, q *queue.Queue, factory engine.Factory, logger *zap.Logger) *Pool {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	p := &Pool{
		queue:   q,
		factory: factory,
		logger:  logger.Named("pool"),
		workers: workers,
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.run(i)
	}
	return p
}

// run is the worker loop: initialize the engine once, then dequeue and
// process until the queue reports stop.
func (p *Pool) run(id int) {
	defer p.wg.Done()
	logger := p.logger.With(zap.Int("worker", id))

	eng := p.factory()
	if err := eng.Init(); err != nil {
		// Non-fatal: the worker keeps serving with a degraded engine and
		// recognition calls surface error-marker text. The failure is
		// counted so /health can report the degradation.
		p.initFailures.Add(1)
		logger.Error("engine initialization failed", zap.Error(err))
	}
	defer func() {
		if err := eng.Close(); err != nil {
			logger.Warn("engine close failed", zap.Error(err))
		}
	}()

	logger.Info("worker started")
	for {
		t, ok := p.queue.Take()
		if !ok {
			logger.Info("worker stopping")
			return
		}

		logger.Info("task dequeued",
			zap.String("filename", t.Filename),
			zap.Int("pending", p.queue.Len()))

		text := p.process(logger, eng, t)
		t.Result.Fulfill(text)
		p.processed.Add(1)

		logger.Info("task finished",
			zap.String("filename", t.Filename),
			zap.Int("chars", len(text)))
	}
}

// process runs preprocessing and recognition, converting every failure into
// a text result so a bad task can never terminate its worker.
func (p *Pool) process(logger *zap.Logger, eng engine.Engine, t *task.Task) (text string) {
	defer func() {
		if r := recover(); r != nil {
			p.recognitionFailures.Add(1)
			logger.Error("panic while processing task",
				zap.String("filename", t.Filename),
				zap.Any("panic", r))
			text = fmt.Sprintf("ERROR: %v", r)
		}
	}()

	img, err := preprocess.Run(t.Image)
	if err != nil {
		// Malformed input yields empty text, not an error response.
		p.decodeFailures.Add(1)
		logger.Warn("failed to decode image",
			zap.String("filename", t.Filename),
			zap.Error(err))
		return ""
	}

	text, err = eng.Recognize(img, t.Lang)
	if err != nil {
		p.recognitionFailures.Add(1)
		logger.Error("recognition failed",
			zap.String("filename", t.Filename),
			zap.Error(err))
		return "ERROR: " + err.Error()
	}
	return text
}

// Stop shuts the queue down, waits for workers to drain remaining tasks and
// exit, and releases their engines. Idempotent.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		p.queue.Shutdown()
		p.wg.Wait()
		p.logger.Info("all workers stopped")
	})
}

// Stats returns a snapshot of the pool counters.
func (p *Pool) Stats() Stats {
	return Stats{
		Workers:             p.workers,
		Pending:             p.queue.Len(),
		Processed:           p.processed.Load(),
		DecodeFailures:      p.decodeFailures.Load(),
		RecognitionFailures: p.recognitionFailures.Load(),
		EngineInitFailures:  p.initFailures.Load(),
	}
}

// Healthy reports whether every worker runs a fully initialized engine.
func (p *Pool) Healthy() bool {
	return p.initFailures.Load() == 0
}
