package request

import (
	"clinic-booking/internal/domain/calendar"
)

type AvailabilityQuery struct {
	Date string `form:"date" binding:"required,isodate"`
}

func (q AvailabilityQuery) ToDate() (calendar.Date, error) {
	return calendar.ParseDate(q.Date)
}

// WeekQuery moves the window shown to the caller. Without an anchor the
// window starts tomorrow.
type WeekQuery struct {
	Anchor    string `form:"anchor" binding:"omitempty,isodate"`
	Direction string `form:"direction" binding:"omitempty,oneof=next prev"`
}

func (q WeekQuery) ToWindow() (*calendar.Date, calendar.Direction, error) {
	dir, err := calendar.ParseDirection(q.Direction)
	if err != nil {
		return nil, calendar.Stay, err
	}
	if q.Anchor == "" {
		return nil, dir, nil
	}
	anchor, err := calendar.ParseDate(q.Anchor)
	if err != nil {
		return nil, calendar.Stay, err
	}
	return &anchor, dir, nil
}
