package repository

import (
	"context"

	"clinic-booking/internal/domain/calendar"
	"clinic-booking/internal/domain/slot"
	"clinic-booking/internal/domain/visit"
	"clinic-booking/internal/infra"
	"clinic-booking/internal/infra/repository/converter"
	sqlc "clinic-booking/internal/infra/sqlc/generated"
	"clinic-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type VisitQueries interface {
	CreateVisit(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateVisitParams) error
	DeleteVisit(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	FindVisitByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Visits, error)
	FindVisitBySlot(ctx context.Context, db sqlc.DBTX, arg sqlc.FindVisitBySlotParams) (sqlc.Visits, error)
	ListUpcomingVisitsByPatient(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUpcomingVisitsByPatientParams) ([]sqlc.Visits, error)
	ListVisitsByDate(ctx context.Context, db sqlc.DBTX, visitDate pgtype.Date) ([]sqlc.Visits, error)
	ListVisitsByPatient(ctx context.Context, db sqlc.DBTX, patientID uuid.UUID) ([]sqlc.Visits, error)
}

// VisitRepository is the PostgreSQL Visit Ledger. The visits_slot_key
// unique constraint backs the one-visit-per-slot rule.
type VisitRepository struct {
	queries VisitQueries
	db      sqlc.DBTX
}

func NewVisitRepository(queries VisitQueries, db sqlc.DBTX) *VisitRepository {
	return &VisitRepository{
		queries: queries,
		db:      db,
	}
}

func (r *VisitRepository) Create(ctx context.Context, v *visit.Visit) error {
	if err := r.queries.CreateVisit(ctx, r.db, converter.VisitToCreateParams(v)); err != nil {
		return wrap("failed to create visit", err)
	}
	return nil
}

func (r *VisitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.queries.DeleteVisit(ctx, r.db, id)
	if err != nil {
		return wrap("failed to delete visit", err)
	}
	if affected == 0 {
		return notFound("visit not found")
	}
	return nil
}

func (r *VisitRepository) FindByID(ctx context.Context, id uuid.UUID) (*visit.Visit, error) {
	row, err := r.queries.FindVisitByID(ctx, r.db, id)
	if err != nil {
		return nil, wrap("failed to find visit", err)
	}
	return r.toDomain(row)
}

func (r *VisitRepository) FindBySlot(ctx context.Context, date calendar.Date, hour slot.Hour) (*visit.Visit, error) {
	row, err := r.queries.FindVisitBySlot(ctx, r.db, sqlc.FindVisitBySlotParams{
		VisitDate: pgconv.DateToPgtype(date),
		StartHour: int16(hour),
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, wrap("failed to find visit by slot", err)
	}
	return r.toDomain(row)
}

func (r *VisitRepository) FindUpcomingByPatient(ctx context.Context, patientID uuid.UUID, from calendar.Date) ([]*visit.Visit, error) {
	rows, err := r.queries.ListUpcomingVisitsByPatient(ctx, r.db, sqlc.ListUpcomingVisitsByPatientParams{
		PatientID: patientID,
		VisitDate: pgconv.DateToPgtype(from),
	})
	if err != nil {
		return nil, wrap("failed to list upcoming visits", err)
	}
	return r.toDomainList(rows)
}

func (r *VisitRepository) ListByDate(ctx context.Context, date calendar.Date) ([]*visit.Visit, error) {
	rows, err := r.queries.ListVisitsByDate(ctx, r.db, pgconv.DateToPgtype(date))
	if err != nil {
		return nil, wrap("failed to list visits by date", err)
	}
	return r.toDomainList(rows)
}

func (r *VisitRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*visit.Visit, error) {
	rows, err := r.queries.ListVisitsByPatient(ctx, r.db, patientID)
	if err != nil {
		return nil, wrap("failed to list visits by patient", err)
	}
	return r.toDomainList(rows)
}

func (r *VisitRepository) toDomain(row sqlc.Visits) (*visit.Visit, error) {
	v, err := converter.VisitFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr(nil, infra.KindDBFailure, "corrupt visit row", err)
	}
	return v, nil
}

func (r *VisitRepository) toDomainList(rows []sqlc.Visits) ([]*visit.Visit, error) {
	visits, err := converter.VisitsFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr(nil, infra.KindDBFailure, "corrupt visit row", err)
	}
	return visits, nil
}
