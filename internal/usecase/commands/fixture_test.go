//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"clinic-booking/internal/domain/calendar"
	"clinic-booking/internal/domain/patient"
	"clinic-booking/internal/domain/slot"
	"clinic-booking/internal/domain/visit"
	"clinic-booking/internal/infra/memstore"
	"clinic-booking/internal/pkg/clock"
	"clinic-booking/internal/usecase/shared"
	"clinic-booking/tests/common/builder"

	"github.com/stretchr/testify/require"
)

var (
	// 2029-12-20 is a Thursday; every scenario date below lies after it.
	now = time.Date(2029, time.December, 20, 9, 0, 0, 0, time.UTC)

	monday     = calendar.NewDate(2030, time.June, 10)
	tuesday    = calendar.NewDate(2030, time.June, 11)
	saturday   = calendar.NewDate(2030, time.June, 8)
	newYearDay = calendar.NewDate(2030, time.January, 1)
	pastDay    = calendar.NewDate(2020, time.January, 1)
)

type fixture struct {
	store      *memstore.Store
	clock      *clock.MockClock
	calculator *shared.AvailabilityCalculator
	cache      *spyCache

	admin *builder.PatientBuilder
	anna  *builder.PatientBuilder
	piotr *builder.PatientBuilder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		store:      memstore.New(),
		clock:      clock.NewMockClock(now),
		calculator: shared.NewAvailabilityCalculator(slot.DefaultCatalog()),
		cache:      &spyCache{},
		admin:      builder.NewAdminBuilder(),
		anna:       builder.NewPatientBuilder(),
		piotr: builder.NewPatientBuilder().With(func(b *builder.PatientBuilder) {
			b.Email = "piotr.nowak@example.com"
			b.FirstName = "Piotr"
			b.LastName = "Nowak"
		}),
	}
	for _, b := range []*builder.PatientBuilder{f.admin, f.anna, f.piotr} {
		f.seedPatient(t, b.MustBuildDomain())
	}
	return f
}

func (f *fixture) seedPatient(t *testing.T, p *patient.Patient) {
	t.Helper()
	err := f.store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		return tx.Patients().Create(ctx, p)
	})
	require.NoError(t, err)
}

func (f *fixture) seedVisit(t *testing.T, owner *builder.PatientBuilder, date calendar.Date, hour slot.Hour) *visit.Visit {
	t.Helper()
	v := builder.NewVisitBuilder().For(owner.ID).On(date, hour).BuildDomain()
	err := f.store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		return tx.Visits().Create(ctx, v)
	})
	require.NoError(t, err)
	return v
}

func (f *fixture) available(t *testing.T, date calendar.Date) []slot.Hour {
	t.Helper()
	hours, err := f.calculator.AvailableSlots(context.Background(), f.store.Reads().Visits(), date)
	require.NoError(t, err)
	return hours
}

func (f *fixture) visitsOf(t *testing.T, owner *builder.PatientBuilder) []*visit.Visit {
	t.Helper()
	visits, err := f.store.Reads().Visits().ListByPatient(context.Background(), owner.ID)
	require.NoError(t, err)
	return visits
}

func hours(from, to slot.Hour) []slot.Hour {
	out := []slot.Hour{}
	for h := from; h <= to; h++ {
		out = append(out, h)
	}
	return out
}

func at(hour, minute int) slot.ClockTime {
	t, err := slot.NewClockTime(hour, minute)
	if err != nil {
		panic(err)
	}
	return t
}

// spyCache records invalidations.
type spyCache struct {
	shared.NopAvailabilityCache
	mu          sync.Mutex
	invalidated []calendar.Date
}

func (c *spyCache) Invalidate(_ context.Context, dates ...calendar.Date) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, dates...)
	return nil
}

func (c *spyCache) Invalidated() []calendar.Date {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]calendar.Date(nil), c.invalidated...)
}
