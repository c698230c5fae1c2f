package shared

import (
	"context"

	"clinic-booking/internal/domain/calendar"
	"clinic-booking/internal/domain/slot"
)

// NopAvailabilityCache is used when no cache backend is configured.
type NopAvailabilityCache struct{}

func (NopAvailabilityCache) Get(context.Context, calendar.Date) (CacheEntry, error) {
	return CacheEntry{}, nil
}

func (NopAvailabilityCache) Set(context.Context, calendar.Date, int64, []slot.Hour) error {
	return nil
}

func (NopAvailabilityCache) Invalidate(context.Context, ...calendar.Date) error {
	return nil
}
