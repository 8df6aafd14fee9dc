package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"busbackend/internal/grid"

	"github.com/redis/go-redis/v9"
)

// SeatMapCache keeps rendered seat-state grids per (trip, schedule). Layouts
// are read-mostly, so the grid only changes when a booking row appears; the
// booking engine invalidates the key on every write. All methods are nil-safe
// so the engine runs unchanged without redis configured.
type SeatMapCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSeatMapCache(addr string, ttl time.Duration) *SeatMapCache {
	if addr == "" {
		return nil
	}
	return &SeatMapCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
	}
}

func (c *SeatMapCache) Get(ctx context.Context, tripID, scheduleID int64) (grid.StateGrid, bool) {
	if c == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, seatMapKey(tripID, scheduleID)).Bytes()
	if err != nil {
		return nil, false
	}
	var g grid.StateGrid
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, false
	}
	return g, true
}

func (c *SeatMapCache) Set(ctx context.Context, tripID, scheduleID int64, g grid.StateGrid) {
	if c == nil {
		return
	}
	payload, err := json.Marshal(g)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, seatMapKey(tripID, scheduleID), payload, c.ttl).Err()
}

func (c *SeatMapCache) Invalidate(ctx context.Context, tripID, scheduleID int64) {
	if c == nil {
		return
	}
	_ = c.client.Del(ctx, seatMapKey(tripID, scheduleID)).Err()
}

func seatMapKey(tripID, scheduleID int64) string {
	return fmt.Sprintf("seatmap:trip:%d:schedule:%d", tripID, scheduleID)
}
