package commands

import (
	"fmt"

	"clinic-booking/internal/domain/calendar"
	"clinic-booking/internal/domain/slot"
	"clinic-booking/internal/pkg/errs"
)

var (
	ErrAlreadyBooked   = errs.New("patient already holds an upcoming visit")
	ErrSlotTaken       = errs.New("slot already taken")
	ErrDateNotInFuture = errs.New("visit date must be after today")
	ErrNonBusinessDay  = errs.New("clinic is closed on that day")
	// ErrHolidayClosed also matches ErrNonBusinessDay.
	ErrHolidayClosed   = errs.Wrap(ErrNonBusinessDay, "public holiday")
	ErrHourOutOfRange  = errs.New("hour outside clinic hours")
	ErrNotOwner        = errs.New("visit belongs to another patient")
	ErrVisitNotFound   = errs.New("visit not found")
	ErrPatientNotFound = errs.New("patient not found")
	ErrDuplicateEmail  = errs.New("email already registered")
	ErrForbidden       = errs.New("operation requires administrator")
	ErrInvalidPatient  = errs.New("invalid patient data")
)

// SlotTakenError is returned when the requested slot is occupied. It matches
// ErrSlotTaken and carries the hours still free on that date.
type SlotTakenError struct {
	Date      calendar.Date
	Hour      slot.Hour
	Available []slot.Hour
}

func (e *SlotTakenError) Error() string {
	return fmt.Sprintf("slot %s %s already taken", e.Date, e.Hour)
}

func (e *SlotTakenError) Unwrap() error {
	return ErrSlotTaken
}

// ClosedDayError matches ErrNonBusinessDay, and ErrHolidayClosed for holidays.
type ClosedDayError struct {
	Date        calendar.Date
	Kind        calendar.DayKind
	HolidayName string
}

func (e *ClosedDayError) Error() string {
	if e.Kind == calendar.Holiday {
		return fmt.Sprintf("clinic is closed on %s (%s)", e.Date, e.HolidayName)
	}
	return fmt.Sprintf("clinic is closed on %s (%s)", e.Date, e.Kind)
}

func (e *ClosedDayError) Unwrap() error {
	if e.Kind == calendar.Holiday {
		return ErrHolidayClosed
	}
	return ErrNonBusinessDay
}
