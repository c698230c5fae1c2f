package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/availability.go -package=queriesmock

import (
	"context"
	"log/slog"

	"clinic-booking/internal/domain/calendar"
	"clinic-booking/internal/domain/slot"
	"clinic-booking/internal/pkg/clock"
	"clinic-booking/internal/pkg/errs"
	"clinic-booking/internal/pkg/metrics"
	"clinic-booking/internal/usecase/shared"
)

type AvailabilityQueries interface {
	AvailableSlots(ctx context.Context, date calendar.Date) ([]slot.Hour, error)
	// Week returns the booking window for anchor after moving it in dir.
	// A nil anchor starts at tomorrow.
	Week(ctx context.Context, anchor *calendar.Date, dir calendar.Direction) (*WeekView, error)
}

type availabilityQueriesImpl struct {
	uow        shared.UnitOfWork
	calculator *shared.AvailabilityCalculator
	policy     *calendar.Policy
	cache      shared.AvailabilityCache
	clock      clock.Clock
}

func NewAvailabilityQueries(
	uow shared.UnitOfWork,
	calculator *shared.AvailabilityCalculator,
	policy *calendar.Policy,
	cache shared.AvailabilityCache,
	clock clock.Clock,
) AvailabilityQueries {
	if cache == nil {
		cache = shared.NopAvailabilityCache{}
	}
	return &availabilityQueriesImpl{
		uow:        uow,
		calculator: calculator,
		policy:     policy,
		cache:      cache,
		clock:      clock,
	}
}

func (q *availabilityQueriesImpl) AvailableSlots(ctx context.Context, date calendar.Date) ([]slot.Hour, error) {
	entry, err := q.cache.Get(ctx, date)
	switch {
	case err != nil:
		metrics.AvailabilityCacheTotal.WithLabelValues("error").Inc()
		slog.Warn("availability cache read failed", "date", date.String(), "error", err.Error())
	case entry.Hit:
		metrics.AvailabilityCacheTotal.WithLabelValues("hit").Inc()
		return entry.Hours, nil
	default:
		metrics.AvailabilityCacheTotal.WithLabelValues("miss").Inc()
	}

	// The generation is read before the ledger so a booking committed in
	// between makes the write below a no-op.
	hours, ledgerErr := q.calculator.AvailableSlots(ctx, q.uow.Reads().Visits(), date)
	if ledgerErr != nil {
		return nil, errs.Mark(ledgerErr, errs.ErrDatabaseOperationFailed)
	}

	if err == nil {
		if err := q.cache.Set(ctx, date, entry.Generation, hours); err != nil {
			slog.Warn("availability cache write failed", "date", date.String(), "error", err.Error())
		}
	}
	return hours, nil
}

func (q *availabilityQueriesImpl) Week(ctx context.Context, anchor *calendar.Date, dir calendar.Direction) (*WeekView, error) {
	today := calendar.DateOf(q.clock.Now())
	tomorrow := today.AddDays(1)

	start := tomorrow
	if anchor != nil {
		start = *anchor
	}
	window := calendar.NewWindow(start).Shift(dir).Clamp(tomorrow)

	days := make([]DayView, 0, calendar.WindowDays)
	for _, d := range window.Days() {
		day, err := q.day(ctx, d, today)
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}

	return &WeekView{
		Anchor: window.Anchor(),
		End:    window.End(),
		Days:   days,
	}, nil
}

func (q *availabilityQueriesImpl) day(ctx context.Context, d, today calendar.Date) (DayView, error) {
	kind := q.policy.Classify(d)
	holiday, _ := q.policy.HolidayName(d)
	view := DayView{
		Date:           d,
		Weekday:        d.Weekday().String(),
		Kind:           kind.String(),
		HolidayName:    holiday,
		Bookable:       kind == calendar.BusinessDay && d.After(today),
		AvailableHours: []slot.Hour{},
	}
	if !view.Bookable {
		return view, nil
	}

	hours, err := q.AvailableSlots(ctx, d)
	if err != nil {
		return DayView{}, err
	}
	view.AvailableHours = hours
	return view, nil
}
