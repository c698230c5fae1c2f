//go:build unit || integration || e2e

package builder

import (
	"time"

	"clinic-booking/internal/domain/patient"
	reqdto "clinic-booking/internal/handler/dto/request"
	sqlc "clinic-booking/internal/infra/sqlc/generated"
	"clinic-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PatientBuilder struct {
	ID                uuid.UUID
	Email             string
	PasswordHash      string
	FirstName         string
	LastName          string
	Mobile            string
	Role              string
	Confirmed         bool
	ConfirmationToken *uuid.UUID
	CreatedAt         time.Time
}

func NewPatientBuilder() *PatientBuilder {
	return &PatientBuilder{
		ID:           uuid.New(),
		Email:        "anna.kowalska@example.com",
		PasswordHash: "hashed_password",
		FirstName:    "Anna",
		LastName:     "Kowalska",
		Mobile:       "+48 600 100 200",
		Role:         "patient",
		Confirmed:    true,
		CreatedAt:    time.Date(2030, time.January, 1, 9, 0, 0, 0, time.UTC),
	}
}

// NewAdminBuilder describes the clinic administrator.
func NewAdminBuilder() *PatientBuilder {
	return NewPatientBuilder().With(func(b *PatientBuilder) {
		b.Email = "admin@clinic.example"
		b.FirstName = "Clinic"
		b.LastName = "Administrator"
		b.Role = "admin"
	})
}

func (b *PatientBuilder) With(mutate func(*PatientBuilder)) *PatientBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *PatientBuilder) BuildDomain() (*patient.Patient, error) {
	email, err := patient.NewEmail(b.Email)
	if err != nil {
		return nil, err
	}
	first, err := patient.NewName(b.FirstName)
	if err != nil {
		return nil, err
	}
	last, err := patient.NewName(b.LastName)
	if err != nil {
		return nil, err
	}
	mobile, err := patient.NewMobile(b.Mobile)
	if err != nil {
		return nil, err
	}
	role, err := patient.NewRole(b.Role)
	if err != nil {
		return nil, err
	}

	return patient.Reconstruct(
		b.ID,
		email,
		patient.Profile{FirstName: first, LastName: last, Mobile: mobile},
		role,
		b.Confirmed,
		b.PasswordHash,
		b.ConfirmationToken,
		b.CreatedAt,
		b.CreatedAt,
	), nil
}

// MustBuildDomain panics on invalid builder values; builders are test fixtures.
func (b *PatientBuilder) MustBuildDomain() *patient.Patient {
	p, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return p
}

func (b *PatientBuilder) BuildActor() patient.Actor {
	return patient.NewActor(b.ID, b.Email, patient.Role(b.Role))
}

func (b *PatientBuilder) BuildInfra() sqlc.Patients {
	row := sqlc.Patients{
		ID:        b.ID,
		Email:     b.Email,
		FirstName: b.FirstName,
		LastName:  b.LastName,
		Mobile:    b.Mobile,
		Role:      b.Role,
		Confirmed: b.Confirmed,
		CreatedAt: pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt: pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
	if b.PasswordHash != "" {
		row.PasswordHash = pgtype.Text{String: b.PasswordHash, Valid: true}
	}
	if b.ConfirmationToken != nil {
		row.ConfirmationToken = pgtype.UUID{Bytes: *b.ConfirmationToken, Valid: true}
	}
	return row
}

func (b *PatientBuilder) BuildView() *queries.PatientView {
	return &queries.PatientView{
		ID:        b.ID,
		Email:     b.Email,
		FirstName: b.FirstName,
		LastName:  b.LastName,
		Mobile:    b.Mobile,
		Role:      b.Role,
		Confirmed: b.Confirmed,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.CreatedAt,
	}
}

func (b *PatientBuilder) BuildRegisterDTO(password string) reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Email:     b.Email,
		Password:  password,
		FirstName: b.FirstName,
		LastName:  b.LastName,
		Mobile:    b.Mobile,
	}
}

func (b *PatientBuilder) BuildWalkInDTO(slot reqdto.SlotRequest) reqdto.WalkInRequest {
	return reqdto.WalkInRequest{
		SlotRequest: slot,
		Email:       b.Email,
		FirstName:   b.FirstName,
		LastName:    b.LastName,
		Mobile:      b.Mobile,
	}
}

// Fluent builder methods
func (b *PatientBuilder) WithEmail(email string) *PatientBuilder {
	b.Email = email
	return b
}

func (b *PatientBuilder) WithPasswordHash(hash string) *PatientBuilder {
	b.PasswordHash = hash
	return b
}

func (b *PatientBuilder) AsWalkIn() *PatientBuilder {
	b.PasswordHash = ""
	return b
}

func (b *PatientBuilder) AsUnconfirmed() *PatientBuilder {
	token := uuid.New()
	b.Confirmed = false
	b.ConfirmationToken = &token
	return b
}
