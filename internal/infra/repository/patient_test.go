//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"clinic-booking/internal/domain/patient"
	"clinic-booking/internal/infra"
	sqlc "clinic-booking/internal/infra/sqlc/generated"
	"clinic-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPatientQueries struct {
	mock.Mock
}

func (m *MockPatientQueries) CreatePatient(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePatientParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockPatientQueries) FindPatientByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Patients, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Patients), args.Error(1)
}

func (m *MockPatientQueries) FindPatientByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Patients, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Patients), args.Error(1)
}

func (m *MockPatientQueries) FindPatientByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Patients, error) {
	args := m.Called(ctx, db, email)
	return args.Get(0).(sqlc.Patients), args.Error(1)
}

func (m *MockPatientQueries) FindPatientByConfirmationToken(ctx context.Context, db sqlc.DBTX, token pgtype.UUID) (sqlc.Patients, error) {
	args := m.Called(ctx, db, token)
	return args.Get(0).(sqlc.Patients), args.Error(1)
}

func (m *MockPatientQueries) FindAdministrator(ctx context.Context, db sqlc.DBTX) (sqlc.Patients, error) {
	args := m.Called(ctx, db)
	return args.Get(0).(sqlc.Patients), args.Error(1)
}

func (m *MockPatientQueries) UpdatePatient(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePatientParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPatientQueries) DeletePatient(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

// sqlc.DBTX implementation for MockPatientQueries
func (m *MockPatientQueries) Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockPatientQueries) Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Rows), mockArgs.Error(1)
}

func (m *MockPatientQueries) QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

func patientRow() sqlc.Patients {
	return sqlc.Patients{
		ID:           uuid.New(),
		Email:        "anna.kowalska@example.com",
		FirstName:    "Anna",
		LastName:     "Kowalska",
		Mobile:       "+48 600 100 200",
		Role:         "patient",
		Confirmed:    true,
		PasswordHash: pgtype.Text{String: "hash", Valid: true},
	}
}

func TestPatientRepository_FindByEmail(t *testing.T) {
	email, err := patient.NewEmail("Anna.Kowalska@example.com")
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		row := patientRow()
		mockQueries := new(MockPatientQueries)
		mockQueries.On("FindPatientByEmail", mock.Anything, mock.Anything, "anna.kowalska@example.com").Return(row, nil)

		got, err := NewPatientRepository(mockQueries, mockQueries).FindByEmail(context.Background(), email)

		require.NoError(t, err)
		assert.Equal(t, row.ID, got.ID())
		assert.True(t, got.CanLogIn())
	})

	t.Run("not found", func(t *testing.T) {
		mockQueries := new(MockPatientQueries)
		mockQueries.On("FindPatientByEmail", mock.Anything, mock.Anything, mock.Anything).Return(sqlc.Patients{}, pgx.ErrNoRows)

		_, err := NewPatientRepository(mockQueries, mockQueries).FindByEmail(context.Background(), email)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestPatientRepository_Create_DuplicateEmail(t *testing.T) {
	email, _ := patient.NewEmail("anna@example.com")
	first, _ := patient.NewName("Anna")
	last, _ := patient.NewName("Kowalska")
	mobile, _ := patient.NewMobile("600100200")
	p := patient.NewWalkIn(email, patient.Profile{FirstName: first, LastName: last, Mobile: mobile}, time.Now())

	mockQueries := new(MockPatientQueries)
	mockQueries.On("CreatePatient", mock.Anything, mock.Anything, mock.MatchedBy(func(arg sqlc.CreatePatientParams) bool {
		return arg.Email == "anna@example.com" && !arg.PasswordHash.Valid
	})).Return(&pgconn.PgError{Code: "23505", ConstraintName: "patients_email_key"})

	err := NewPatientRepository(mockQueries, mockQueries).Create(context.Background(), p)

	assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	mockQueries.AssertExpectations(t)
}

func TestPatientRepository_UpdateAndDelete_Missing(t *testing.T) {
	row := patientRow()
	p, err := NewPatientRepository(nil, nil).one(row, nil)
	require.NoError(t, err)

	mockQueries := new(MockPatientQueries)
	mockQueries.On("UpdatePatient", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), nil)
	mockQueries.On("DeletePatient", mock.Anything, mock.Anything, row.ID).Return(int64(0), nil)
	repo := NewPatientRepository(mockQueries, mockQueries)

	assert.True(t, infra.IsKind(repo.Update(context.Background(), p), infra.KindNotFound))
	assert.True(t, infra.IsKind(repo.Delete(context.Background(), row.ID), infra.KindNotFound))
}

func TestPatientRepository_FindByConfirmationToken(t *testing.T) {
	token := uuid.New()
	row := patientRow()
	row.Confirmed = false
	row.ConfirmationToken = pgtype.UUID{Bytes: token, Valid: true}

	mockQueries := new(MockPatientQueries)
	mockQueries.On("FindPatientByConfirmationToken", mock.Anything, mock.Anything, pgconv.UUIDToPgtype(token)).Return(row, nil)

	got, err := NewPatientRepository(mockQueries, mockQueries).FindByConfirmationToken(context.Background(), token)

	require.NoError(t, err)
	assert.False(t, got.IsConfirmed())
	require.NotNil(t, got.ConfirmationToken())
	assert.Equal(t, token, *got.ConfirmationToken())
}
