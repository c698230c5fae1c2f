package visit

import (
	"errors"
	"time"

	"clinic-booking/internal/domain/calendar"
	"clinic-booking/internal/domain/slot"

	"github.com/google/uuid"
)

var (
	ErrInvalidKind    = errors.New("invalid visit kind")
	ErrMissingPatient = errors.New("visit requires a patient")
	ErrMissingDate    = errors.New("visit requires a date")
)

// Visit is a reservation of one slot. At most one visit exists per (date, hour).
type Visit struct {
	id        uuid.UUID
	date      calendar.Date
	hour      slot.Hour
	patientID uuid.UUID
	confirmed bool
	kind      Kind
	createdAt time.Time
}

type NewParams struct {
	Date      calendar.Date
	Hour      slot.Hour
	PatientID uuid.UUID
	Confirmed bool
	Kind      Kind
}

func New(p NewParams, now time.Time) (*Visit, error) {
	if p.PatientID == uuid.Nil {
		return nil, ErrMissingPatient
	}
	if p.Date.IsZero() {
		return nil, ErrMissingDate
	}
	if !p.Kind.IsValid() {
		return nil, ErrInvalidKind
	}
	return &Visit{
		id:        uuid.New(),
		date:      p.Date,
		hour:      p.Hour,
		patientID: p.PatientID,
		confirmed: p.Confirmed,
		kind:      p.Kind,
		createdAt: now,
	}, nil
}

func Reconstruct(id uuid.UUID, p NewParams, createdAt time.Time) *Visit {
	return &Visit{
		id:        id,
		date:      p.Date,
		hour:      p.Hour,
		patientID: p.PatientID,
		confirmed: p.Confirmed,
		kind:      p.Kind,
		createdAt: createdAt,
	}
}

func (v *Visit) ID() uuid.UUID        { return v.id }
func (v *Visit) Date() calendar.Date  { return v.date }
func (v *Visit) Hour() slot.Hour      { return v.hour }
func (v *Visit) PatientID() uuid.UUID { return v.patientID }
func (v *Visit) IsConfirmed() bool    { return v.confirmed }
func (v *Visit) Kind() Kind           { return v.kind }
func (v *Visit) CreatedAt() time.Time { return v.createdAt }

// IsUpcoming reports whether the visit is on or after today.
func (v *Visit) IsUpcoming(today calendar.Date) bool {
	return !v.date.Before(today)
}

// Occupies reports whether the visit holds the given slot.
func (v *Visit) Occupies(d calendar.Date, h slot.Hour) bool {
	return v.date == d && v.hour == h
}

// Hours returns the start hours of the given visits.
func Hours(visits []*Visit) []slot.Hour {
	hours := make([]slot.Hour, len(visits))
	for i, v := range visits {
		hours[i] = v.hour
	}
	return hours
}
