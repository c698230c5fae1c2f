package repository

import (
	"context"

	"clinic-booking/internal/domain/patient"
	"clinic-booking/internal/infra"
	"clinic-booking/internal/infra/repository/converter"
	sqlc "clinic-booking/internal/infra/sqlc/generated"
	"clinic-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PatientQueries interface {
	CreatePatient(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePatientParams) error
	FindPatientByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Patients, error)
	FindPatientByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Patients, error)
	FindPatientByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Patients, error)
	FindPatientByConfirmationToken(ctx context.Context, db sqlc.DBTX, confirmationToken pgtype.UUID) (sqlc.Patients, error)
	FindAdministrator(ctx context.Context, db sqlc.DBTX) (sqlc.Patients, error)
	UpdatePatient(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePatientParams) (int64, error)
	DeletePatient(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type PatientRepository struct {
	queries PatientQueries
	db      sqlc.DBTX
}

func NewPatientRepository(queries PatientQueries, db sqlc.DBTX) *PatientRepository {
	return &PatientRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PatientRepository) Create(ctx context.Context, p *patient.Patient) error {
	if err := r.queries.CreatePatient(ctx, r.db, converter.PatientToCreateParams(p)); err != nil {
		return wrap("failed to create patient", err)
	}
	return nil
}

func (r *PatientRepository) FindByID(ctx context.Context, id uuid.UUID) (*patient.Patient, error) {
	return r.one(r.queries.FindPatientByID(ctx, r.db, id))
}

func (r *PatientRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*patient.Patient, error) {
	return r.one(r.queries.FindPatientByIDForUpdate(ctx, r.db, id))
}

func (r *PatientRepository) FindByEmail(ctx context.Context, email patient.Email) (*patient.Patient, error) {
	return r.one(r.queries.FindPatientByEmail(ctx, r.db, email.Value()))
}

func (r *PatientRepository) FindByConfirmationToken(ctx context.Context, token uuid.UUID) (*patient.Patient, error) {
	return r.one(r.queries.FindPatientByConfirmationToken(ctx, r.db, pgconv.UUIDToPgtype(token)))
}

func (r *PatientRepository) FindAdministrator(ctx context.Context) (*patient.Patient, error) {
	return r.one(r.queries.FindAdministrator(ctx, r.db))
}

func (r *PatientRepository) Update(ctx context.Context, p *patient.Patient) error {
	affected, err := r.queries.UpdatePatient(ctx, r.db, converter.PatientToUpdateParams(p))
	if err != nil {
		return wrap("failed to update patient", err)
	}
	if affected == 0 {
		return notFound("patient not found")
	}
	return nil
}

// Delete relies on ON DELETE CASCADE to remove the patient's visits.
func (r *PatientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := r.queries.DeletePatient(ctx, r.db, id)
	if err != nil {
		return wrap("failed to delete patient", err)
	}
	if affected == 0 {
		return notFound("patient not found")
	}
	return nil
}

func (r *PatientRepository) one(row sqlc.Patients, err error) (*patient.Patient, error) {
	if err != nil {
		return nil, wrap("failed to find patient", err)
	}
	p, err := converter.PatientFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr(nil, infra.KindDBFailure, "corrupt patient row", err)
	}
	return p, nil
}
