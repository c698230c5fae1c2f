package request

import (
	"clinic-booking/internal/domain/calendar"
	"clinic-booking/internal/domain/slot"
	"clinic-booking/internal/domain/visit"
	"clinic-booking/internal/pkg/ptr"
	"clinic-booking/internal/usecase/commands"
	"clinic-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

// SlotRequest is a date and a time of day. The time may carry minutes.
type SlotRequest struct {
	Date string `json:"date" binding:"required,isodate"`
	Time string `json:"time" binding:"required,clocktime"`
}

func (r SlotRequest) ToSlot() (calendar.Date, slot.ClockTime, error) {
	date, err := calendar.ParseDate(r.Date)
	if err != nil {
		return calendar.Date{}, slot.ClockTime{}, err
	}
	at, err := slot.ParseClockTime(r.Time)
	if err != nil {
		return calendar.Date{}, slot.ClockTime{}, err
	}
	return date, at, nil
}

// BookVisitRequest books for the caller unless PatientID names someone else.
type BookVisitRequest struct {
	SlotRequest
	PatientID *uuid.UUID `json:"patient_id,omitempty"`
}

func (r BookVisitRequest) Target(self uuid.UUID) uuid.UUID {
	return ptr.Or(r.PatientID, self)
}

type BlockRequest struct {
	SlotRequest
}

type WalkInRequest struct {
	SlotRequest
	Email     string `json:"email" binding:"required,email,max=254"`
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
	Mobile    string `json:"mobile" binding:"required,max=20"`
}

func (r WalkInRequest) ToInput() commands.WalkInInput {
	return commands.WalkInInput{
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Mobile:    r.Mobile,
	}
}

type VisitListQuery struct {
	From      string `form:"from" binding:"omitempty,isodate"`
	To        string `form:"to" binding:"omitempty,isodate"`
	Kind      string `form:"kind" binding:"omitempty,oneof=booking block"`
	PatientID string `form:"patient_id" binding:"omitempty,uuid"`
	Confirmed *bool  `form:"confirmed"`
	Limit     *int   `form:"limit" binding:"omitempty,min=1,max=200"`
	Offset    int    `form:"offset" binding:"omitempty,min=0"`
}

func (q VisitListQuery) ToFilter() (queries.VisitFilter, error) {
	filter := queries.VisitFilter{
		Confirmed: q.Confirmed,
		Limit:     ptr.Or(q.Limit, queries.DefaultPageSize),
		Offset:    q.Offset,
	}
	if q.From != "" {
		from, err := calendar.ParseDate(q.From)
		if err != nil {
			return queries.VisitFilter{}, err
		}
		filter.From = &from
	}
	if q.To != "" {
		to, err := calendar.ParseDate(q.To)
		if err != nil {
			return queries.VisitFilter{}, err
		}
		filter.To = &to
	}
	if q.Kind != "" {
		kind, err := visit.NewKind(q.Kind)
		if err != nil {
			return queries.VisitFilter{}, err
		}
		filter.Kind = &kind
	}
	if q.PatientID != "" {
		id, err := uuid.Parse(q.PatientID)
		if err != nil {
			return queries.VisitFilter{}, err
		}
		filter.PatientID = &id
	}
	return filter, nil
}
