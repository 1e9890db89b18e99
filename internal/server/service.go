package server

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lexrey20/STDISCM/internal/cache"
	"github.com/lexrey20/STDISCM/internal/logging"
	"github.com/lexrey20/STDISCM/internal/queue"
	"github.com/lexrey20/STDISCM/internal/repository"
	"github.com/lexrey20/STDISCM/internal/task"
	"github.com/lexrey20/STDISCM/proto"
)

// DefaultWaitTimeout bounds the handler's wait for a result.
const DefaultWaitTimeout = 120 * time.Second

const timeoutMessage = "Image processing timeout"

// LogStore persists completed recognition requests.
type LogStore interface {
	SaveLog(ctx context.Context, log *repository.RecognitionLog) error
}

// Options carries the optional collaborators of the service. Cache and Logs
// may be nil; the request path works without them.
type Options struct {
	WaitTimeout time.Duration
	DefaultLang string
	Cache       cache.Cache
	CacheTTL    time.Duration
	Logs        LogStore
}

// Service implements the OCRService RPC boundary. Each request builds a
// task, submits it to the queue, and waits a bounded time for the result.
type Service struct {
	proto.UnimplementedOCRServiceServer

	queue       *queue.Queue
	logger      *zap.Logger
	wait        time.Duration
	defaultLang string
	cache       cache.Cache
	cacheTTL    time.Duration
	logs        LogStore
}

// New constructs the service around an active queue.
func New(q *queue.Queue, logger *zap.Logger, opts Options) *Service {
	if opts.WaitTimeout <= 0 {
		opts.WaitTimeout = DefaultWaitTimeout
	}
	if opts.DefaultLang == "" {
		opts.DefaultLang = task.DefaultLang
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 5 * time.Minute
	}
	return &Service{
		queue:       q,
		logger:      logger.Named("ocr_service"),
		wait:        opts.WaitTimeout,
		defaultLang: opts.DefaultLang,
		cache:       opts.Cache,
		cacheTTL:    opts.CacheTTL,
		logs:        opts.Logs,
	}
}

// ProcessImage handles one recognition request. The request moves through
// RECEIVED -> QUEUED -> (COMPLETED | TIMED_OUT); a timeout abandons the
// wait but never the in-flight work, whose late result is simply dropped.
func (s *Service) ProcessImage(ctx context.Context, req *proto.ProcessImageRequest) (*proto.ProcessImageResponse, error) {
	requestID := uuid.NewString()
	received := time.Now()
	opLogger := logging.WithOperation(s.logger, "server.process_image", requestID).With(
		zap.String("filename", req.GetFilename()),
		zap.String("client_id", req.GetClientId()),
		zap.String("batch_id", req.GetBatchId()))

	opLogger.Info("request received")

	lang := req.GetLang()
	if lang == "" {
		lang = s.defaultLang
	}

	cacheKey := cache.ResultKey(req.GetImage())
	if s.cache != nil {
		if text, err := s.cache.Get(ctx, cacheKey); err == nil {
			opLogger.Info("cache hit")
			return &proto.ProcessImageResponse{
				Ok:               true,
				Text:             text,
				ProcessingTimeMs: time.Since(received).Milliseconds(),
			}, nil
		} else if !errors.Is(err, cache.ErrMiss) {
			opLogger.Warn("cache lookup failed", zap.Error(err))
		}
	}

	t := task.New(req.GetFilename(), lang, req.GetImage())
	s.queue.Submit(t)
	opLogger.Info("task queued", zap.Int("pending", s.queue.Len()))

	text, err := t.Result.Wait(ctx, s.wait)
	if err != nil {
		opLogger.Warn("request timed out", zap.Error(err))
		return &proto.ProcessImageResponse{
			Ok:      false,
			Message: timeoutMessage,
		}, nil
	}

	elapsed := time.Since(t.CreatedAt).Milliseconds()
	opLogger.Info("request completed",
		zap.Int64("processing_time_ms", elapsed),
		zap.Int("chars", len(text)))

	s.storeResult(requestID, req, lang, cacheKey, text, elapsed)

	return &proto.ProcessImageResponse{
		Ok:               true,
		Text:             text,
		ProcessingTimeMs: elapsed,
	}, nil
}

// storeResult records a completed request in the cache and the recognition
// log. Both are best-effort and run off the request goroutine so a slow
// store never delays the response.
func (s *Service) storeResult(requestID string, req *proto.ProcessImageRequest, lang, cacheKey, text string, elapsed int64) {
	if s.cache == nil && s.logs == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		opLogger := logging.WithOperation(s.logger, "server.store_result", requestID)

		// Error-marker results are transient by nature and not worth reuse.
		if s.cache != nil && !strings.HasPrefix(text, "ERROR:") {
			if err := s.cache.Set(ctx, cacheKey, text, s.cacheTTL); err != nil {
				opLogger.Warn("failed to cache result", zap.Error(err))
			}
		}

		if s.logs != nil {
			log := &repository.RecognitionLog{
				RequestID:    requestID,
				ClientID:     req.GetClientId(),
				BatchID:      req.GetBatchId(),
				Filename:     req.GetFilename(),
				Lang:         lang,
				SHA1Hash:     strings.TrimPrefix(cacheKey, "ocr:result:"),
				TextLength:   len(text),
				ProcessingMs: elapsed,
				CreatedAt:    time.Now().UTC(),
			}
			if err := s.logs.SaveLog(ctx, log); err != nil {
				opLogger.Warn("failed to persist recognition log", zap.Error(err))
			}
		}
	}()
}
