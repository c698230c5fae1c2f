//go:build unit

package converter_test

import (
	"testing"
	"time"

	"clinic-booking/internal/domain/calendar"
	"clinic-booking/internal/domain/patient"
	"clinic-booking/internal/domain/slot"
	"clinic-booking/internal/domain/visit"
	"clinic-booking/internal/infra/repository/converter"
	sqlc "clinic-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisitConversion(t *testing.T) {
	now := time.Date(2030, time.June, 1, 9, 0, 0, 0, time.UTC)
	v, err := visit.New(visit.NewParams{
		Date:      calendar.NewDate(2030, time.June, 10),
		Hour:      slot.Hour(14),
		PatientID: uuid.New(),
		Kind:      visit.KindBooking,
	}, now)
	require.NoError(t, err)

	params := converter.VisitToCreateParams(v)
	assert.Equal(t, int16(14), params.StartHour)
	assert.True(t, params.VisitDate.Valid)

	back, err := converter.VisitFromRow(sqlc.Visits{
		ID:        params.ID,
		VisitDate: params.VisitDate,
		StartHour: params.StartHour,
		PatientID: params.PatientID,
		Confirmed: params.Confirmed,
		Kind:      params.Kind,
		CreatedAt: params.CreatedAt,
	})
	require.NoError(t, err)
	assert.Equal(t, v.ID(), back.ID())
	assert.True(t, v.Date().Equal(back.Date()))
	assert.Equal(t, v.Hour(), back.Hour())
	assert.Equal(t, v.Kind(), back.Kind())
}

func TestVisitFromRow_UnknownKind(t *testing.T) {
	_, err := converter.VisitFromRow(sqlc.Visits{ID: uuid.New(), Kind: "walk-in"})
	assert.ErrorIs(t, err, visit.ErrInvalidKind)
}

func TestPatientFromRow(t *testing.T) {
	token := uuid.New()
	row := sqlc.Patients{
		ID:                uuid.New(),
		Email:             "anna.kowalska@example.com",
		FirstName:         "Anna",
		LastName:          "Kowalska",
		Mobile:            "+48 600 100 200",
		Role:              "patient",
		PasswordHash:      pgtype.Text{String: "hash", Valid: true},
		ConfirmationToken: pgtype.UUID{Bytes: token, Valid: true},
	}

	p, err := converter.PatientFromRow(row)
	require.NoError(t, err)
	assert.Equal(t, row.ID, p.ID())
	assert.Equal(t, patient.RolePatient, p.Role())
	assert.Equal(t, "hash", p.PasswordHash())
	require.NotNil(t, p.ConfirmationToken())
	assert.Equal(t, token, *p.ConfirmationToken())

	params := converter.PatientToCreateParams(p)
	assert.Equal(t, row.PasswordHash, params.PasswordHash)
	assert.Equal(t, row.ConfirmationToken, params.ConfirmationToken)
}

func TestPatientFromRow_WalkInHasNullHash(t *testing.T) {
	row := sqlc.Patients{
		ID:        uuid.New(),
		Email:     "walkin@example.com",
		FirstName: "Jan",
		LastName:  "Nowak",
		Mobile:    "600100200",
		Role:      "patient",
		Confirmed: true,
	}

	p, err := converter.PatientFromRow(row)
	require.NoError(t, err)
	assert.Empty(t, p.PasswordHash())
	assert.False(t, p.CanLogIn())
	assert.False(t, converter.PatientToCreateParams(p).PasswordHash.Valid)
}

func TestPatientFromRow_CorruptRole(t *testing.T) {
	_, err := converter.PatientFromRow(sqlc.Patients{
		Email:     "x@example.com",
		FirstName: "X",
		LastName:  "Y",
		Mobile:    "600100200",
		Role:      "superuser",
	})
	assert.ErrorIs(t, err, patient.ErrInvalidRole)
}
