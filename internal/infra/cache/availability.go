package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"clinic-booking/internal/domain/calendar"
	"clinic-booking/internal/domain/slot"
	"clinic-booking/internal/pkg/errs"
	"clinic-booking/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "availability:"
	genPrefix = "availability-gen:"

	// genTTL outlives any cached entry so a generation never resets under a reader.
	genTTL = 7 * 24 * time.Hour
)

// setIfGeneration writes KEYS[1] only while KEYS[2] still holds ARGV[1].
var setIfGeneration = redis.NewScript(`
local gen = redis.call('GET', KEYS[2]) or '0'
if gen ~= ARGV[1] then
	return 0
end
redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
return 1
`)

// AvailabilityCache stores the free hours of a date as a JSON array under
// availability:<YYYY-MM-DD>, next to a generation counter that writers bump.
// Entries also expire after ttl.
type AvailabilityCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewAvailabilityCache(client redis.Cmdable, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{client: client, ttl: ttl}
}

func availabilityKey(date calendar.Date) string {
	return keyPrefix + date.String()
}

func generationKey(date calendar.Date) string {
	return genPrefix + date.String()
}

func (c *AvailabilityCache) Get(ctx context.Context, date calendar.Date) (shared.CacheEntry, error) {
	vals, err := c.client.MGet(ctx, availabilityKey(date), generationKey(date)).Result()
	if err != nil {
		return shared.CacheEntry{}, errs.Wrap(err, "get cached availability")
	}

	var entry shared.CacheEntry
	if raw, ok := vals[1].(string); ok {
		gen, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return shared.CacheEntry{}, errs.Wrap(err, "decode availability generation")
		}
		entry.Generation = gen
	}

	raw, ok := vals[0].(string)
	if !ok {
		return entry, nil
	}
	var hours []slot.Hour
	if err := json.Unmarshal([]byte(raw), &hours); err != nil {
		return shared.CacheEntry{}, errs.Wrap(err, "decode cached availability")
	}
	if hours == nil {
		hours = []slot.Hour{}
	}
	entry.Hours = hours
	entry.Hit = true
	return entry, nil
}

func (c *AvailabilityCache) Set(ctx context.Context, date calendar.Date, generation int64, hours []slot.Hour) error {
	if hours == nil {
		hours = []slot.Hour{}
	}
	raw, err := json.Marshal(hours)
	if err != nil {
		return errs.Wrap(err, "encode availability")
	}
	err = setIfGeneration.Run(ctx, c.client,
		[]string{availabilityKey(date), generationKey(date)},
		strconv.FormatInt(generation, 10), raw, c.ttl.Milliseconds(),
	).Err()
	if err != nil {
		return errs.Wrap(err, "set cached availability")
	}
	return nil
}

func (c *AvailabilityCache) Invalidate(ctx context.Context, dates ...calendar.Date) error {
	if len(dates) == 0 {
		return nil
	}
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, d := range dates {
			pipe.Incr(ctx, generationKey(d))
			pipe.Expire(ctx, generationKey(d), genTTL)
			pipe.Del(ctx, availabilityKey(d))
		}
		return nil
	})
	if err != nil {
		return errs.Wrap(err, "invalidate cached availability")
	}
	return nil
}
