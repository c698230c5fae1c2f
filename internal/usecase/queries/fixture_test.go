//go:build unit

package queries_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"clinic-booking/internal/domain/calendar"
	"clinic-booking/internal/domain/slot"
	"clinic-booking/internal/infra/memstore"
	"clinic-booking/internal/pkg/clock"
	"clinic-booking/internal/usecase/shared"
	"clinic-booking/tests/common/builder"

	"github.com/stretchr/testify/require"
)

// 2030-06-05 is a Wednesday.
var now = time.Date(2030, time.June, 5, 12, 0, 0, 0, time.UTC)

type fixture struct {
	store *memstore.Store
	clock *clock.MockClock
	admin *builder.PatientBuilder
	anna  *builder.PatientBuilder
	piotr *builder.PatientBuilder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		store: memstore.New(),
		clock: clock.NewMockClock(now),
		admin: builder.NewAdminBuilder(),
		anna:  builder.NewPatientBuilder(),
		piotr: builder.NewPatientBuilder().With(func(b *builder.PatientBuilder) {
			b.Email = "piotr.nowak@example.com"
			b.FirstName = "Piotr"
			b.LastName = "Nowak"
		}),
	}
	for _, b := range []*builder.PatientBuilder{f.admin, f.anna, f.piotr} {
		p := b.MustBuildDomain()
		require.NoError(t, f.store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
			return tx.Patients().Create(ctx, p)
		}))
	}
	return f
}

func (f *fixture) seedVisit(t *testing.T, owner *builder.PatientBuilder, date calendar.Date, hour slot.Hour) *builder.VisitBuilder {
	t.Helper()
	b := builder.NewVisitBuilder().For(owner.ID).On(date, hour)
	v := b.BuildDomain()
	require.NoError(t, f.store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		return tx.Visits().Create(ctx, v)
	}))
	return b
}

func (f *fixture) seedBlock(t *testing.T, date calendar.Date, hour slot.Hour) *builder.VisitBuilder {
	t.Helper()
	b := builder.NewVisitBuilder().For(f.admin.ID).On(date, hour).AsBlock()
	v := b.BuildDomain()
	require.NoError(t, f.store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		return tx.Visits().Create(ctx, v)
	}))
	return b
}

// mapCache is an in-process AvailabilityCache. beforeSet runs ahead of every
// write, outside the lock.
type mapCache struct {
	mu          sync.Mutex
	entries     map[calendar.Date][]slot.Hour
	generations map[calendar.Date]int64
	sets        int
	beforeSet   func()
}

func newMapCache() *mapCache {
	return &mapCache{
		entries:     make(map[calendar.Date][]slot.Hour),
		generations: make(map[calendar.Date]int64),
	}
}

func (c *mapCache) Get(_ context.Context, date calendar.Date) (shared.CacheEntry, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	hours, ok := c.entries[date]
	return shared.CacheEntry{Hours: hours, Hit: ok, Generation: c.generations[date]}, nil
}

func (c *mapCache) Set(_ context.Context, date calendar.Date, generation int64, hours []slot.Hour) error {
	if c.beforeSet != nil {
		c.beforeSet()
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generations[date] != generation {
		return nil
	}
	c.entries[date] = hours
	c.sets++
	return nil
}

func (c *mapCache) Invalidate(_ context.Context, dates ...calendar.Date) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, d := range dates {
		delete(c.entries, d)
		c.generations[d]++
	}
	return nil
}
