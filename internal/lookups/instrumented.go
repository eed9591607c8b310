package lookups

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/record-filter-service/internal/domain"
	"github.com/preston-bernstein/record-filter-service/internal/logging"
	"github.com/preston-bernstein/record-filter-service/internal/metrics"
)

// instrumentedLookup wraps a Lookup with timing, metrics and failure logging.
type instrumentedLookup struct {
	inner    Lookup
	logger   *slog.Logger
	recorder *metrics.Recorder
	name     string
	now      func() time.Time
}

// NewInstrumentedLookup wraps inner so each call is timed and recorded under name.
func NewInstrumentedLookup(inner Lookup, logger *slog.Logger, recorder *metrics.Recorder, name string) Lookup {
	if name == "" {
		name = "unknown"
	}
	return &instrumentedLookup{
		inner:    inner,
		logger:   logger,
		recorder: recorder,
		name:     name,
		now:      time.Now,
	}
}

func (l *instrumentedLookup) GetMatchingObjects(ctx context.Context, searchKey string) ([]*domain.Record, error) {
	if l.inner == nil {
		l.logWarn(ctx, "lookup unavailable")
		return nil, ErrLookupUnavailable
	}

	start := l.now()
	records, err := l.inner.GetMatchingObjects(ctx, searchKey)
	duration := l.now().Sub(start)
	l.recorder.RecordLookupAttempt(l.name, duration, err)

	if err != nil {
		l.logWarn(ctx, "lookup failed",
			slog.String(logging.FieldSearchKey, searchKey),
			slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
			"error", err,
		)
		return nil, err
	}
	return records, nil
}

func (l *instrumentedLookup) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, l.logger)
	if logger == nil {
		return
	}
	args = append(args, slog.String(logging.FieldLookup, l.name))
	logger.Warn(msg, args...)
}
