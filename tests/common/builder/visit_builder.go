//go:build unit || integration || e2e

package builder

import (
	"time"

	"clinic-booking/internal/domain/calendar"
	"clinic-booking/internal/domain/slot"
	"clinic-booking/internal/domain/visit"
	reqdto "clinic-booking/internal/handler/dto/request"
	sqlc "clinic-booking/internal/infra/sqlc/generated"
	"clinic-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type VisitBuilder struct {
	ID        uuid.UUID
	Date      calendar.Date
	Hour      slot.Hour
	PatientID uuid.UUID
	Confirmed bool
	Kind      visit.Kind
	CreatedAt time.Time
}

func NewVisitBuilder() *VisitBuilder {
	return &VisitBuilder{
		ID:        uuid.New(),
		Date:      calendar.NewDate(2030, time.June, 10), // a Monday
		Hour:      10,
		PatientID: uuid.New(),
		Kind:      visit.KindBooking,
		CreatedAt: time.Date(2030, time.January, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *VisitBuilder) With(mutate func(*VisitBuilder)) *VisitBuilder {
	mutate(b)
	return b
}

func (b *VisitBuilder) On(date calendar.Date, hour slot.Hour) *VisitBuilder {
	b.Date = date
	b.Hour = hour
	return b
}

func (b *VisitBuilder) For(patientID uuid.UUID) *VisitBuilder {
	b.PatientID = patientID
	return b
}

func (b *VisitBuilder) AsBlock() *VisitBuilder {
	b.Kind = visit.KindBlock
	b.Confirmed = true
	return b
}

// Build methods
func (b *VisitBuilder) BuildDomain() *visit.Visit {
	return visit.Reconstruct(b.ID, visit.NewParams{
		Date:      b.Date,
		Hour:      b.Hour,
		PatientID: b.PatientID,
		Confirmed: b.Confirmed,
		Kind:      b.Kind,
	}, b.CreatedAt)
}

func (b *VisitBuilder) BuildInfra() sqlc.Visits {
	return sqlc.Visits{
		ID:        b.ID,
		VisitDate: pgtype.Date{Time: b.Date.Time(), Valid: true},
		StartHour: int16(b.Hour),
		PatientID: b.PatientID,
		Confirmed: b.Confirmed,
		Kind:      b.Kind.String(),
		CreatedAt: pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *VisitBuilder) BuildView(owner *PatientBuilder) *queries.VisitView {
	view := &queries.VisitView{
		ID:        b.ID,
		Date:      b.Date,
		Hour:      b.Hour,
		PatientID: b.PatientID,
		Confirmed: b.Confirmed,
		Kind:      b.Kind.String(),
		CreatedAt: b.CreatedAt,
	}
	if owner != nil {
		view.PatientEmail = owner.Email
		view.PatientName = owner.FirstName + " " + owner.LastName
	}
	return view
}

func (b *VisitBuilder) BuildSlotDTO() reqdto.SlotRequest {
	return reqdto.SlotRequest{
		Date: b.Date.String(),
		Time: slot.AtHour(b.Hour).String(),
	}
}

func (b *VisitBuilder) BuildBookDTO() reqdto.BookVisitRequest {
	return reqdto.BookVisitRequest{SlotRequest: b.BuildSlotDTO()}
}
