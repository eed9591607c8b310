package fixture

import (
	"context"

	"github.com/preston-bernstein/record-filter-service/internal/domain"
)

// Lookup returns static records useful for local testing and bootstrapping.
type Lookup struct {
	data     map[string][]*domain.Record
	fallback []*domain.Record
}

// New creates a fixture lookup seeded with the default data set.
func New() *Lookup {
	return &Lookup{
		data:     defaultData(),
		fallback: defaultFallback(),
	}
}

// NewWithData creates a fixture lookup that serves data and nothing for unknown keys.
func NewWithData(data map[string][]*domain.Record) *Lookup {
	return &Lookup{data: data}
}

// GetMatchingObjects returns a fresh copy of the records registered for searchKey.
func (l *Lookup) GetMatchingObjects(ctx context.Context, searchKey string) ([]*domain.Record, error) {
	_ = ctx

	src, ok := l.data[searchKey]
	if !ok {
		src = l.fallback
	}
	out := make([]*domain.Record, len(src))
	for i, r := range src {
		if r == nil {
			continue
		}
		cp := *r
		out[i] = &cp
	}
	return out, nil
}

func defaultData() map[string][]*domain.Record {
	return map[string][]*domain.Record{
		"colors": {
			domain.NewRecord("red", "green"),
			domain.NewRecord("red", "blue"),
			domain.NewRecord("purple", "purple"),
			nil,
			{PropertyOne: domain.StringPtr("green")},
		},
		"letters": {
			domain.NewRecord("A", "B"),
			domain.NewRecord("A", "C"),
			domain.NewRecord("Z", "Z"),
		},
	}
}

func defaultFallback() []*domain.Record {
	return []*domain.Record{
		domain.NewRecord("A", "A"),
		domain.NewRecord("B", "Z"),
	}
}
