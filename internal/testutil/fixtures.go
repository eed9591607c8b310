package testutil

import "github.com/preston-bernstein/record-filter-service/internal/domain"

// SampleRecords returns a lookup result mixing matches, misses and null data
// for filters (A, B, C): only {A,B} and {C,A} survive.
func SampleRecords() []*domain.Record {
	return []*domain.Record{
		domain.NewRecord("A", "B"),
		nil,
		domain.NewRecord("Z", "A"),
		{PropertyOne: domain.StringPtr("A")},
		domain.NewRecord("C", "A"),
	}
}
