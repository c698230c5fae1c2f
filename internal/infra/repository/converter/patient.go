package converter

import (
	"clinic-booking/internal/domain/patient"
	sqlc "clinic-booking/internal/infra/sqlc/generated"
	"clinic-booking/internal/pkg/pgconv"
)

func PatientToCreateParams(p *patient.Patient) sqlc.CreatePatientParams {
	return sqlc.CreatePatientParams{
		ID:                p.ID(),
		Email:             p.Email().Value(),
		FirstName:         p.FirstName().Value(),
		LastName:          p.LastName().Value(),
		Mobile:            p.Mobile().Value(),
		Role:              p.Role().String(),
		Confirmed:         p.IsConfirmed(),
		PasswordHash:      pgconv.OptionalStringToPgtype(p.PasswordHash()),
		ConfirmationToken: pgconv.UUIDPtrToPgtype(p.ConfirmationToken()),
		CreatedAt:         pgconv.TimeToPgtype(p.CreatedAt()),
		UpdatedAt:         pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}

func PatientToUpdateParams(p *patient.Patient) sqlc.UpdatePatientParams {
	return sqlc.UpdatePatientParams{
		ID:                p.ID(),
		FirstName:         p.FirstName().Value(),
		LastName:          p.LastName().Value(),
		Mobile:            p.Mobile().Value(),
		Confirmed:         p.IsConfirmed(),
		ConfirmationToken: pgconv.UUIDPtrToPgtype(p.ConfirmationToken()),
		UpdatedAt:         pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}

// PatientFromRow re-validates stored values; a failure means the row was
// written around the domain rules.
func PatientFromRow(row sqlc.Patients) (*patient.Patient, error) {
	email, err := patient.NewEmail(row.Email)
	if err != nil {
		return nil, err
	}
	first, err := patient.NewName(row.FirstName)
	if err != nil {
		return nil, err
	}
	last, err := patient.NewName(row.LastName)
	if err != nil {
		return nil, err
	}
	mobile, err := patient.NewMobile(row.Mobile)
	if err != nil {
		return nil, err
	}
	role, err := patient.NewRole(row.Role)
	if err != nil {
		return nil, err
	}

	return patient.Reconstruct(
		row.ID,
		email,
		patient.Profile{FirstName: first, LastName: last, Mobile: mobile},
		role,
		row.Confirmed,
		pgconv.StringFromPgtype(row.PasswordHash),
		pgconv.UUIDPtrFromPgtype(row.ConfirmationToken),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
