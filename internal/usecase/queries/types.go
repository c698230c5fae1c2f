package queries

import (
	"time"

	"clinic-booking/internal/domain/calendar"
	"clinic-booking/internal/domain/patient"
	"clinic-booking/internal/domain/slot"
	"clinic-booking/internal/domain/visit"

	"github.com/google/uuid"
)

// VisitView represents read-optimized visit data joined with its owner
type VisitView struct {
	ID           uuid.UUID     `json:"id"`
	Date         calendar.Date `json:"date"`
	Hour         slot.Hour     `json:"hour"`
	PatientID    uuid.UUID     `json:"patient_id"`
	PatientEmail string        `json:"patient_email"`
	PatientName  string        `json:"patient_name"`
	Confirmed    bool          `json:"confirmed"`
	Kind         string        `json:"kind"`
	CreatedAt    time.Time     `json:"created_at"`
}

// PatientView represents read-optimized patient data
type PatientView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Mobile    string    `json:"mobile"`
	Role      string    `json:"role"`
	Confirmed bool      `json:"confirmed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PatientDetailView struct {
	PatientView
	UpcomingVisits []*VisitView `json:"upcoming_visits"`
}

// DayView is one day of the booking window.
type DayView struct {
	Date           calendar.Date `json:"date"`
	Weekday        string        `json:"weekday"`
	Kind           string        `json:"kind"`
	HolidayName    string        `json:"holiday_name,omitempty"`
	Bookable       bool          `json:"bookable"`
	AvailableHours []slot.Hour   `json:"available_hours"`
}

type WeekView struct {
	Anchor calendar.Date `json:"anchor"`
	End    calendar.Date `json:"end"`
	Days   []DayView     `json:"days"`
}

type VisitFilter struct {
	From      *calendar.Date
	To        *calendar.Date
	Kind      *visit.Kind
	PatientID *uuid.UUID
	Confirmed *bool
	Limit     int
	Offset    int
}

type PatientFilter struct {
	Search string
	Limit  int
	Offset int
}

const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// Normalize clamps paging into [1, MaxPageSize] and a non-negative offset.
func (f VisitFilter) Normalize() VisitFilter {
	f.Limit, f.Offset = normalizePage(f.Limit, f.Offset)
	return f
}

func (f PatientFilter) Normalize() PatientFilter {
	f.Limit, f.Offset = normalizePage(f.Limit, f.Offset)
	return f
}

func normalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// NewVisitView builds the view of a visit from write-side entities.
func NewVisitView(v *visit.Visit, owner *patient.Patient) *VisitView {
	view := &VisitView{
		ID:        v.ID(),
		Date:      v.Date(),
		Hour:      v.Hour(),
		PatientID: v.PatientID(),
		Confirmed: v.IsConfirmed(),
		Kind:      v.Kind().String(),
		CreatedAt: v.CreatedAt(),
	}
	if owner != nil {
		view.PatientEmail = owner.Email().Value()
		view.PatientName = owner.FirstName().Value() + " " + owner.LastName().Value()
	}
	return view
}

func NewPatientView(p *patient.Patient) *PatientView {
	return &PatientView{
		ID:        p.ID(),
		Email:     p.Email().Value(),
		FirstName: p.FirstName().Value(),
		LastName:  p.LastName().Value(),
		Mobile:    p.Mobile().Value(),
		Role:      p.Role().String(),
		Confirmed: p.IsConfirmed(),
		CreatedAt: p.CreatedAt(),
		UpdatedAt: p.UpdatedAt(),
	}
}
