package shared

import (
	"context"

	"clinic-booking/internal/domain/calendar"
	"clinic-booking/internal/domain/slot"
	"clinic-booking/internal/domain/visit"
)

// AvailabilityCalculator derives the free hours of a date from the Visit Ledger.
type AvailabilityCalculator struct {
	catalog slot.Catalog
}

func NewAvailabilityCalculator(catalog slot.Catalog) *AvailabilityCalculator {
	return &AvailabilityCalculator{catalog: catalog}
}

func (c *AvailabilityCalculator) Catalog() slot.Catalog {
	return c.catalog
}

// AvailableSlots returns the catalog minus the hours already reserved on date,
// in catalog order.
func (c *AvailabilityCalculator) AvailableSlots(ctx context.Context, visits VisitRepository, date calendar.Date) ([]slot.Hour, error) {
	booked, err := visits.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	return c.catalog.Minus(visit.Hours(booked)), nil
}
