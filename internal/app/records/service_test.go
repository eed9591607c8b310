package records

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/preston-bernstein/record-filter-service/internal/domain"
	"github.com/preston-bernstein/record-filter-service/internal/metrics"
)

type stubLookup struct {
	result []*domain.Record
	err    error

	calls   int
	lastKey string
}

func (s *stubLookup) GetMatchingObjects(ctx context.Context, searchKey string) ([]*domain.Record, error) {
	_ = ctx
	s.calls++
	s.lastKey = searchKey
	return s.result, s.err
}

type stubPersister struct {
	err error

	calls int
	saved []*domain.Record
}

func (s *stubPersister) SaveObjects(ctx context.Context, records []*domain.Record) error {
	_ = ctx
	s.calls++
	s.saved = records
	return s.err
}

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func assertRecords(t *testing.T, got []*domain.Record, want ...*domain.Record) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d records, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Fatalf("index %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestProcessWithoutSearchKeyReturnsEmpty(t *testing.T) {
	lookup := &stubLookup{}
	persister := &stubPersister{}
	svc := NewService(lookup, persister, nil, nil)

	got, err := svc.Process(context.Background(), "", "A", "B", "C")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil result, got %#v", got)
	}
	if lookup.calls != 0 || persister.calls != 0 {
		t.Fatalf("expected no collaborator calls, got lookup=%d persister=%d", lookup.calls, persister.calls)
	}
}

func TestProcessWithoutSearchKeyIgnoresMissingFilters(t *testing.T) {
	svc := NewService(&stubLookup{}, &stubPersister{}, nil, nil)

	got, err := svc.Process(context.Background(), "", "", "", "")
	if err != nil {
		t.Fatalf("expected absent search key to win over missing filters, got %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}

func TestProcessMissingFilterIsInvalidArgument(t *testing.T) {
	cases := []struct {
		name    string
		a, b, c string
	}{
		{"first", "", "B", "C"},
		{"second", "A", "", "C"},
		{"third", "A", "B", ""},
		{"all", "", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lookup := &stubLookup{}
			persister := &stubPersister{}
			rec := metrics.NewRecorder()
			svc := NewService(lookup, persister, nil, rec)

			got, err := svc.Process(context.Background(), "x", tc.a, tc.b, tc.c)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("expected ErrInvalidArgument, got %v", err)
			}
			if got != nil {
				t.Fatalf("expected nil result on error, got %v", got)
			}
			if lookup.calls != 0 || persister.calls != 0 {
				t.Fatalf("expected no collaborator calls, got lookup=%d persister=%d", lookup.calls, persister.calls)
			}
			if rec.ProcessOutcomes(metrics.OutcomeInvalid) != 1 {
				t.Fatalf("expected invalid outcome recorded")
			}
		})
	}
}

func TestProcessFiltersAndPersists(t *testing.T) {
	lookup := &stubLookup{result: []*domain.Record{
		domain.NewRecord("A", "B"),
		domain.NewRecord("A", "C"),
		domain.NewRecord("Z", "Z"),
	}}
	persister := &stubPersister{}
	svc := NewService(lookup, persister, nil, nil)

	got, err := svc.Process(context.Background(), "x", "A", "B", "C")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertRecords(t, got, domain.NewRecord("A", "B"), domain.NewRecord("A", "C"))

	if lookup.calls != 1 || lookup.lastKey != "x" {
		t.Fatalf("expected one lookup for x, got calls=%d key=%q", lookup.calls, lookup.lastKey)
	}
	if persister.calls != 1 {
		t.Fatalf("expected persister to be called once, got %d", persister.calls)
	}
	assertRecords(t, persister.saved, got...)
}

func TestProcessDropsNullEntriesAndAttributes(t *testing.T) {
	lookup := &stubLookup{result: []*domain.Record{
		nil,
		{PropertyOne: domain.StringPtr("A")},
		{PropertyTwo: domain.StringPtr("B")},
		{},
		domain.NewRecord("A", "A"),
	}}
	persister := &stubPersister{}
	svc := NewService(lookup, persister, nil, nil)

	got, err := svc.Process(context.Background(), "x", "A", "B", "C")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertRecords(t, got, domain.NewRecord("A", "A"))
}

func TestProcessPersistsEmptyResult(t *testing.T) {
	lookup := &stubLookup{result: []*domain.Record{domain.NewRecord("Z", "Z")}}
	persister := &stubPersister{}
	svc := NewService(lookup, persister, nil, nil)

	got, err := svc.Process(context.Background(), "x", "A", "B", "C")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil result, got %#v", got)
	}
	if persister.calls != 1 {
		t.Fatalf("expected persister to be called with the empty result, got %d calls", persister.calls)
	}
	if persister.saved == nil || len(persister.saved) != 0 {
		t.Fatalf("expected empty slice to be saved, got %#v", persister.saved)
	}
}

func TestProcessLookupFailureDegrades(t *testing.T) {
	lookup := &stubLookup{err: errors.New("lookup exploded")}
	persister := &stubPersister{}
	logger, buf := newBufferLogger()
	rec := metrics.NewRecorder()
	svc := NewService(lookup, persister, logger, rec)

	got, err := svc.Process(context.Background(), "x", "A", "B", "C")
	if err != nil {
		t.Fatalf("expected lookup failure to be absorbed, got %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil result, got %#v", got)
	}
	if persister.calls != 0 {
		t.Fatalf("expected persister not to be called, got %d", persister.calls)
	}

	out := buf.String()
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "lookup exploded") {
		t.Fatalf("expected warning with error in log, got %q", out)
	}
	if rec.ProcessOutcomes(metrics.OutcomeLookupFailed) != 1 {
		t.Fatalf("expected lookup failure outcome recorded")
	}
}

func TestProcessLookupFailureWithoutLogger(t *testing.T) {
	svc := NewService(&stubLookup{err: errors.New("boom")}, &stubPersister{}, nil, nil)

	got, err := svc.Process(context.Background(), "x", "A", "B", "C")
	if err != nil || len(got) != 0 {
		t.Fatalf("expected empty result without error, got %v, %v", got, err)
	}
}

func TestProcessPersistFailureIsReturned(t *testing.T) {
	persistErr := errors.New("disk full")
	lookup := &stubLookup{result: []*domain.Record{domain.NewRecord("A", "B")}}
	persister := &stubPersister{err: persistErr}
	rec := metrics.NewRecorder()
	svc := NewService(lookup, persister, nil, rec)

	got, err := svc.Process(context.Background(), "x", "A", "B", "C")
	if !errors.Is(err, persistErr) {
		t.Fatalf("expected wrapped persist error, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil result on error, got %v", got)
	}
	if rec.ProcessOutcomes(metrics.OutcomePersistFailed) != 1 {
		t.Fatalf("expected persist failure outcome recorded")
	}
}

func TestProcessIsIdempotentForDeterministicLookup(t *testing.T) {
	lookup := &stubLookup{result: []*domain.Record{
		domain.NewRecord("B", "C"),
		domain.NewRecord("C", "Q"),
		domain.NewRecord("A", "A"),
	}}
	persister := &stubPersister{}
	rec := metrics.NewRecorder()
	svc := NewService(lookup, persister, nil, rec)

	first, err := svc.Process(context.Background(), "x", "A", "B", "C")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Process(context.Background(), "x", "A", "B", "C")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertRecords(t, second, first...)

	if persister.calls != 2 {
		t.Fatalf("expected persister once per call, got %d", persister.calls)
	}
	if rec.RecordsReceived() != 6 || rec.RecordsKept() != 4 {
		t.Fatalf("unexpected counters received=%d kept=%d", rec.RecordsReceived(), rec.RecordsKept())
	}
}
