package cache

import (
	"context"
	"testing"
	"time"

	"camtourvisor/internal/model"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func newTestCache(t *testing.T) (*DestinationCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewDestinationCache(client, time.Minute, zap.NewNop()), mr
}

func TestDestinationRoundTrip(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	if _, ok := c.GetDestination(ctx, "kribi-beach"); ok {
		t.Fatal("expected miss on empty cache")
	}

	lat, lng := 2.94, 9.91
	c.SetDestination(ctx, &model.Destination{Slug: "kribi-beach", Name: "Kribi Beach", Latitude: &lat, Longitude: &lng})
	got, ok := c.GetDestination(ctx, "kribi-beach")
	if !ok {
		t.Fatal("expected hit")
	}
	if got.Name != "Kribi Beach" || got.Coordinates() == nil || got.Coordinates().Lat != lat {
		t.Errorf("unexpected cached destination: %+v", got)
	}
	if ttl := mr.TTL("destinations:slug:kribi-beach"); ttl != time.Minute {
		t.Errorf("ttl = %v, want 1m", ttl)
	}
}

func TestInvalidateRemovesOnlyDestinationKeys(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	c.SetList(ctx, "Nature", "", []model.Destination{{Slug: "waza-national-park"}})
	c.SetDestination(ctx, &model.Destination{Slug: "douala"})
	mr.Set("other:key", "x")

	if _, ok := c.GetList(ctx, "nature", ""); !ok {
		t.Fatal("category key should be case-insensitive")
	}
	if err := c.Invalidate(ctx); err != nil {
		t.Fatalf("Invalidate: %v", err)
	}
	if _, ok := c.GetList(ctx, "Nature", ""); ok {
		t.Error("list should be invalidated")
	}
	if _, ok := c.GetDestination(ctx, "douala"); ok {
		t.Error("destination should be invalidated")
	}
	if !mr.Exists("other:key") {
		t.Error("unrelated key removed")
	}
}

func TestCorruptEntryIsMiss(t *testing.T) {
	c, mr := newTestCache(t)
	mr.Set("destinations:slug:broken", "{not json")
	if _, ok := c.GetDestination(context.Background(), "broken"); ok {
		t.Fatal("corrupt entry should be a miss")
	}
}
