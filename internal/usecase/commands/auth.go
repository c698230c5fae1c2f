package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/auth.go -package=commandsmock

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"clinic-booking/internal/domain/auth"
	"clinic-booking/internal/domain/patient"
	"clinic-booking/internal/infra"
	"clinic-booking/internal/pkg/clock"
	"clinic-booking/internal/pkg/config"
	"clinic-booking/internal/pkg/errs"
	"clinic-booking/internal/pkg/jwt"
	"clinic-booking/internal/pkg/password"
	"clinic-booking/internal/usecase/queries"
	"clinic-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials       = errs.New("invalid credentials")
	ErrAccountNotConfirmed      = errs.New("account not confirmed")
	ErrInvalidConfirmationToken = errs.New("invalid confirmation token")
	ErrTokenGeneration          = errs.New("token generation failed")
	ErrAdministratorConflict    = errs.New("administrator email belongs to a patient")
)

const (
	notificationKindEmail    = "email"
	topicAccountConfirmation = "account_confirmation"
)

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Mobile    string
}

type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
	Actor       patient.Actor
}

type AuthCommands interface {
	Register(ctx context.Context, in RegisterInput) (*queries.PatientView, error)
	Confirm(ctx context.Context, token uuid.UUID) error
	Login(ctx context.Context, credentials auth.Credentials) (*LoginResult, error)
	// EnsureAdministrator seeds the single administrator account. It is safe to call on every start.
	EnsureAdministrator(ctx context.Context) error
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
	hasher     password.Hasher
	clock      clock.Clock
	admin      config.AdminConfig
}

func NewAuthCommands(
	uow shared.UnitOfWork,
	jwtService *jwt.Service,
	hasher password.Hasher,
	clock clock.Clock,
	admin config.AdminConfig,
) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
		hasher:     hasher,
		clock:      clock,
		admin:      admin,
	}
}

type confirmationPayload struct {
	PatientID uuid.UUID `json:"patient_id"`
	Email     string    `json:"email"`
	Token     uuid.UUID `json:"token"`
}

func (a *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (*queries.PatientView, error) {
	email, err := patient.NewEmail(in.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPatient)
	}
	pw, err := patient.NewPassword(in.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPatient)
	}
	profile, err := newProfile(in.FirstName, in.LastName, in.Mobile)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPatient)
	}

	hash, err := a.hasher.Hash(pw.Value())
	if err != nil {
		return nil, errs.Wrap(err, "hash password")
	}

	now := a.clock.Now()
	registered := patient.NewRegistered(email, hash, profile, now)

	payload, err := json.Marshal(confirmationPayload{
		PatientID: registered.ID(),
		Email:     email.Value(),
		Token:     *registered.ConfirmationToken(),
	})
	if err != nil {
		return nil, errs.Wrap(err, "marshal confirmation payload")
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Patients().Create(ctx, registered); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateEmail
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := tx.Notifications().CreateJob(ctx, notificationKindEmail, topicAccountConfirmation, payload, now); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("patient registered", "patient_id", registered.ID().String())
	return queries.NewPatientView(registered), nil
}

func (a *authCommandsImpl) Confirm(ctx context.Context, token uuid.UUID) error {
	return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Patients().FindByConfirmationToken(ctx, token)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrInvalidConfirmationToken
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		p.Confirm(a.clock.Now())
		if err := tx.Patients().Update(ctx, p); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (a *authCommandsImpl) Login(ctx context.Context, credentials auth.Credentials) (*LoginResult, error) {
	p, err := a.uow.Reads().Patients().FindByEmail(ctx, credentials.Email())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same error as a password mismatch so accounts cannot be enumerated.
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if p.PasswordHash() == "" {
		return nil, ErrInvalidCredentials
	}
	if err := a.hasher.Compare(p.PasswordHash(), credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}
	if !p.CanLogIn() {
		return nil, ErrAccountNotConfirmed
	}

	actor := p.Actor()
	token, err := a.jwtService.GenerateToken(actor)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		AccessToken: token,
		ExpiresAt:   a.clock.Now().Add(a.jwtService.TokenDuration()),
		Actor:       actor,
	}, nil
}

func (a *authCommandsImpl) EnsureAdministrator(ctx context.Context) error {
	email, err := patient.NewEmail(a.admin.Email)
	if err != nil {
		return errs.Wrap(err, "ADMIN_EMAIL")
	}
	pw, err := patient.NewPassword(a.admin.Password)
	if err != nil {
		return errs.Wrap(err, "ADMIN_PASSWORD")
	}
	profile, err := newProfile(a.admin.FirstName, a.admin.LastName, a.admin.Mobile)
	if err != nil {
		return errs.Wrap(err, "administrator profile")
	}

	return a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, err := tx.Patients().FindAdministrator(ctx)
		switch {
		case err == nil:
			if !existing.Email().Matches(email.Value()) {
				slog.Warn("administrator already exists with another email",
					"existing", existing.Email().Value(),
					"configured", email.Value(),
				)
			}
			return nil
		case !infra.IsKind(err, infra.KindNotFound):
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		_, err = tx.Patients().FindByEmail(ctx, email)
		switch {
		case err == nil:
			return ErrAdministratorConflict
		case !infra.IsKind(err, infra.KindNotFound):
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		hash, err := a.hasher.Hash(pw.Value())
		if err != nil {
			return errs.Wrap(err, "hash administrator password")
		}

		admin := patient.NewAdministrator(email, hash, profile, a.clock.Now())
		if err := tx.Patients().Create(ctx, admin); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		slog.Info("administrator seeded", "patient_id", admin.ID().String(), "email", email.Value())
		return nil
	})
}
