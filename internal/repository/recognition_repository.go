package repository

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/lexrey20/STDISCM/internal/logging"
)

// RecognitionLog represents a completed recognition request.
type RecognitionLog struct {
	ID           uint      `gorm:"primaryKey"`
	RequestID    string    `gorm:"column:request_id;uniqueIndex;size:64"`
	ClientID     string    `gorm:"column:client_id;size:64"`
	BatchID      string    `gorm:"column:batch_id;size:64"`
	Filename     string    `gorm:"column:filename;type:text"`
	Lang         string    `gorm:"column:lang;size:16"`
	SHA1Hash     string    `gorm:"column:sha1_hash;index;size:40"`
	TextLength   int       `gorm:"column:text_length"`
	ProcessingMs int64     `gorm:"column:processing_ms"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

// TableName overrides the default table name.
func (RecognitionLog) TableName() string {
	return "recognition_logs"
}

// MetricsAggregation holds the raw aggregates consumed by the admin surface.
type MetricsAggregation struct {
	TotalCount          int64
	AverageProcessingMs float64
}

// RecognitionRepository provides persistence APIs for recognition logs.
type RecognitionRepository struct {
	db             *gorm.DB
	logger         *zap.Logger
	retryAttempts  int
	initialBackoff time.Duration
	maxBackoff     time.Duration
}

// NewRecognitionRepository creates a new repository instance.
func NewRecognitionRepository(db *gorm.DB, logger *zap.Logger) *RecognitionRepository {
	return &RecognitionRepository{
		db:             db,
		logger:         logger.Named("recognition_repository"),
		retryAttempts:  3,
		initialBackoff: 50 * time.Millisecond,
		maxBackoff:     time.Second,
	}
}

// AutoMigrate ensures the schema is available.
func (r *RecognitionRepository) AutoMigrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&RecognitionLog{})
}

// SaveLog persists a recognition log entry, retrying transient failures.
func (r *RecognitionRepository) SaveLog(ctx context.Context, log *RecognitionLog) error {
	return r.executeWithRetry(ctx, "repository.save_log", log.RequestID, func() error {
		return r.db.WithContext(ctx).Create(log).Error
	})
}

// FindByRequestID retrieves a recognition log by request id.
func (r *RecognitionRepository) FindByRequestID(ctx context.Context, requestID string) (*RecognitionLog, error) {
	var log RecognitionLog
	if err := r.db.WithContext(ctx).First(&log, "request_id = ?", requestID).Error; err != nil {
		return nil, logging.NewOperationError("repository.find_by_request_id", requestID, err)
	}
	return &log, nil
}

// AggregateMetrics computes totals over all persisted logs.
func (r *RecognitionRepository) AggregateMetrics(ctx context.Context) (*MetricsAggregation, error) {
	var agg MetricsAggregation
	row := r.db.WithContext(ctx).
		Model(&RecognitionLog{}).
		Select("COUNT(*) AS total_count, COALESCE(AVG(processing_ms), 0) AS average_processing_ms").
		Row()
	if err := row.Scan(&agg.TotalCount, &agg.AverageProcessingMs); err != nil {
		return nil, logging.NewOperationError("repository.aggregate_metrics", "", err)
	}
	return &agg, nil
}

func (r *RecognitionRepository) executeWithRetry(ctx context.Context, operation, requestID string, fn func() error) error {
	if r.retryAttempts <= 1 {
		return logging.NewOperationError(operation, requestID, fn())
	}

	backoff := r.initialBackoff
	opLogger := logging.WithOperation(r.logger, operation, requestID)
	var err error
	for attempt := 0; attempt < r.retryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return logging.NewOperationError(operation, requestID, ctx.Err())
			case <-time.After(backoff):
			}
			if next := backoff * 2; next <= r.maxBackoff {
				backoff = next
			}
		}

		err = fn()
		if err == nil {
			if attempt > 0 {
				opLogger.Info("database operation succeeded after retry", zap.Int("attempt", attempt+1))
			}
			return nil
		}

		if !isTransientError(err) || attempt == r.retryAttempts-1 {
			opLogger.Error("database operation failed", zap.Error(err), zap.Int("attempt", attempt+1))
			return logging.NewOperationError(operation, requestID, err)
		}

		opLogger.Warn("transient database error", zap.Error(err), zap.Int("attempt", attempt+1))
	}
	return logging.NewOperationError(operation, requestID, err)
}

func isTransientError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var temporary interface{ Temporary() bool }
	if errors.As(err, &temporary) && temporary.Temporary() {
		return true
	}

	return false
}
