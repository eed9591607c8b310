package records

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/preston-bernstein/record-filter-service/internal/domain"
	"github.com/preston-bernstein/record-filter-service/internal/logging"
	"github.com/preston-bernstein/record-filter-service/internal/metrics"
)

// ErrInvalidArgument is returned when any of the three filter values is absent.
var ErrInvalidArgument = errors.New("must provide valid filter parameters")

// Lookup fetches candidate records for a search key.
type Lookup interface {
	GetMatchingObjects(ctx context.Context, searchKey string) ([]*domain.Record, error)
}

// Persister stores the records that survived filtering.
type Persister interface {
	SaveObjects(ctx context.Context, records []*domain.Record) error
}

// Service looks records up, filters them and persists what is kept.
type Service struct {
	lookup    Lookup
	persister Persister
	logger    *slog.Logger
	recorder  *metrics.Recorder
}

// NewService constructs a Service. logger and recorder may be nil.
func NewService(lookup Lookup, persister Persister, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		lookup:    lookup,
		persister: persister,
		logger:    logger,
		recorder:  recorder,
	}
}

// Process looks up records for searchKey, keeps those whose two properties each
// equal one of filterA, filterB or filterC, saves them and returns them.
//
// An empty searchKey yields an empty result without touching the collaborators.
// An empty filter value yields ErrInvalidArgument. A lookup failure is logged
// and yields an empty result; nothing is saved in that case.
func (s *Service) Process(ctx context.Context, searchKey, filterA, filterB, filterC string) ([]*domain.Record, error) {
	if searchKey == "" {
		s.recorder.RecordProcess(metrics.OutcomeSkipped, 0, 0)
		return []*domain.Record{}, nil
	}

	filters := domain.NewFilterSet(filterA, filterB, filterC)
	if filters.Missing() {
		s.recorder.RecordProcess(metrics.OutcomeInvalid, 0, 0)
		return nil, ErrInvalidArgument
	}

	logger := logging.FromContext(ctx, s.logger)

	found, err := s.lookup.GetMatchingObjects(ctx, searchKey)
	if err != nil {
		logging.Warn(logger, "failed to get objects from lookup, returning empty results",
			slog.String(logging.FieldSearchKey, searchKey),
			"error", err,
		)
		s.recorder.RecordProcess(metrics.OutcomeLookupFailed, 0, 0)
		return []*domain.Record{}, nil
	}

	kept := filters.Apply(found)
	logging.Debug(logger, "filtered lookup results",
		slog.String(logging.FieldSearchKey, searchKey),
		slog.Int(logging.FieldKept, len(kept)),
		slog.Int(logging.FieldDropped, len(found)-len(kept)),
	)

	if err := s.persister.SaveObjects(ctx, kept); err != nil {
		s.recorder.RecordProcess(metrics.OutcomePersistFailed, len(found), len(kept))
		return nil, fmt.Errorf("save records: %w", err)
	}

	s.recorder.RecordProcess(metrics.OutcomePersisted, len(found), len(kept))
	return kept, nil
}
