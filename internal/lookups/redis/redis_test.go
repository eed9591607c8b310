package redis

import (
	"context"
	"errors"
	"testing"

	goredis "github.com/redis/go-redis/v9"

	"github.com/preston-bernstein/record-filter-service/internal/domain"
	"github.com/preston-bernstein/record-filter-service/internal/lookups"
)

type fakeGetter struct {
	values map[string]string
	err    error
	keys   []string
}

func (f *fakeGetter) Get(ctx context.Context, key string) *goredis.StringCmd {
	_ = ctx
	f.keys = append(f.keys, key)
	if f.err != nil {
		return goredis.NewStringResult("", f.err)
	}
	val, ok := f.values[key]
	if !ok {
		return goredis.NewStringResult("", goredis.Nil)
	}
	return goredis.NewStringResult(val, nil)
}

func TestRedisLookupDecodesRecords(t *testing.T) {
	fake := &fakeGetter{values: map[string]string{
		"records:lookup:x": `[{"propertyOne":"A","propertyTwo":"B"},null]`,
	}}
	lk := newLookup(fake, "")

	got, err := lk.GetMatchingObjects(context.Background(), "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || !got[0].Equal(domain.NewRecord("A", "B")) || got[1] != nil {
		t.Fatalf("unexpected records %v", got)
	}
	if len(fake.keys) != 1 || fake.keys[0] != "records:lookup:x" {
		t.Fatalf("unexpected keys %v", fake.keys)
	}
}

func TestRedisLookupMissingKeyIsEmpty(t *testing.T) {
	lk := newLookup(&fakeGetter{}, "custom:")

	got, err := lk.GetMatchingObjects(context.Background(), "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil result, got %#v", got)
	}
	if lk.Key("x") != "custom:x" {
		t.Fatalf("expected custom prefix, got %s", lk.Key("x"))
	}
}

func TestRedisLookupNullDocumentIsEmpty(t *testing.T) {
	lk := newLookup(&fakeGetter{values: map[string]string{"records:lookup:x": "null"}}, "")

	got, err := lk.GetMatchingObjects(context.Background(), "x")
	if err != nil || got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil result, got %#v, %v", got, err)
	}
}

func TestRedisLookupWrapsClientError(t *testing.T) {
	boom := errors.New("connection refused")
	lk := newLookup(&fakeGetter{err: boom}, "")

	_, err := lk.GetMatchingObjects(context.Background(), "x")
	if !errors.Is(err, boom) {
		t.Fatalf("expected client error to be wrapped, got %v", err)
	}
	if lkErr, ok := lookups.AsLookupError(err); !ok || lkErr.Source != "redis" {
		t.Fatalf("expected redis LookupError, got %v", err)
	}
}

func TestRedisLookupInvalidPayload(t *testing.T) {
	lk := newLookup(&fakeGetter{values: map[string]string{"records:lookup:x": "{"}}, "")

	if _, err := lk.GetMatchingObjects(context.Background(), "x"); err == nil {
		t.Fatal("expected decode error")
	}
}
