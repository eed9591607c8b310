package metrics

import (
	"sync"
	"time"
)

// Process outcomes recorded by RecordProcess.
const (
	OutcomeSkipped       = "skipped"
	OutcomeInvalid       = "invalid"
	OutcomeLookupFailed  = "lookup_failed"
	OutcomePersisted     = "persisted"
	OutcomePersistFailed = "persist_failed"
)

type lookupStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

type processStats struct {
	outcomes map[string]int
	received int
	kept     int
}

// Recorder captures lightweight, in-memory metrics about lookups and process calls.
// When built by Setup it also forwards every observation to OpenTelemetry.
type Recorder struct {
	mu      sync.Mutex
	lookups map[string]*lookupStats
	process processStats
	otel    *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		lookups: make(map[string]*lookupStats),
		process: processStats{outcomes: make(map[string]int)},
		otel:    otel,
	}
}

// RecordLookupAttempt increments counters for a lookup call and stores the last observed latency.
func (r *Recorder) RecordLookupAttempt(lookup string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.lookups[lookup]
	if !ok {
		stats = &lookupStats{}
		r.lookups[lookup] = stats
	}
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordLookupAttempt(lookup, duration, err)
	}
}

// RecordProcess tracks one process call: its outcome plus how many records came
// back from the lookup and how many survived filtering.
func (r *Recorder) RecordProcess(outcome string, received, kept int) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.process.outcomes[outcome]++
	r.process.received += received
	r.process.kept += kept
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProcess(outcome, received, kept)
	}
}

// LookupCalls returns the total attempts recorded for a lookup.
func (r *Recorder) LookupCalls(lookup string) int {
	return r.Snapshot(lookup).Calls
}

// LookupErrors returns the total failed attempts recorded for a lookup.
func (r *Recorder) LookupErrors(lookup string) int {
	return r.Snapshot(lookup).Errors
}

// LastCallLatency returns the last recorded latency for a lookup call.
func (r *Recorder) LastCallLatency(lookup string) time.Duration {
	return r.Snapshot(lookup).LastCallLatency
}

// ProcessOutcomes returns how many process calls ended with the given outcome.
func (r *Recorder) ProcessOutcomes(outcome string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.process.outcomes[outcome]
}

// RecordsReceived returns the total records handed back by lookups during process calls.
func (r *Recorder) RecordsReceived() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.process.received
}

// RecordsKept returns the total records that survived filtering.
func (r *Recorder) RecordsKept() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.process.kept
}

// Snapshot returns a copy of the current stats for the lookup.
type Snapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(lookup string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.lookups[lookup]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		LastCallLatency: stats.lastCallLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}
