package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/patient.go -package=commandsmock

import (
	"context"
	"log/slog"

	"clinic-booking/internal/domain/calendar"
	"clinic-booking/internal/domain/patient"
	"clinic-booking/internal/infra"
	"clinic-booking/internal/pkg/clock"
	"clinic-booking/internal/pkg/errs"
	"clinic-booking/internal/usecase/queries"
	"clinic-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// ProfileInput changes only the fields that are set.
type ProfileInput struct {
	FirstName *string
	LastName  *string
	Mobile    *string
}

type PatientCommands interface {
	UpdateProfile(ctx context.Context, actor patient.Actor, id uuid.UUID, in ProfileInput) (*queries.PatientView, error)
	Delete(ctx context.Context, actor patient.Actor, id uuid.UUID) error
}

type patientCommandsImpl struct {
	uow   shared.UnitOfWork
	cache shared.AvailabilityCache
	clock clock.Clock
}

func NewPatientCommands(uow shared.UnitOfWork, cache shared.AvailabilityCache, clock clock.Clock) PatientCommands {
	if cache == nil {
		cache = shared.NopAvailabilityCache{}
	}
	return &patientCommandsImpl{
		uow:   uow,
		cache: cache,
		clock: clock,
	}
}

func (c *patientCommandsImpl) UpdateProfile(ctx context.Context, actor patient.Actor, id uuid.UUID, in ProfileInput) (*queries.PatientView, error) {
	if id != actor.ID && !actor.Can(patient.CanManagePatients) {
		return nil, ErrForbidden
	}

	patch, err := in.toPatch()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPatient)
	}

	var view *queries.PatientView
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := lockPatient(ctx, tx, id)
		if err != nil {
			return err
		}

		p.ApplyProfile(patch, c.clock.Now())
		if err := tx.Patients().Update(ctx, p); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		view = queries.NewPatientView(p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (c *patientCommandsImpl) Delete(ctx context.Context, actor patient.Actor, id uuid.UUID) error {
	if id != actor.ID && !actor.Can(patient.CanManagePatients) {
		return ErrForbidden
	}

	var freed []calendar.Date
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := lockPatient(ctx, tx, id)
		if err != nil {
			return err
		}
		if p.IsAdmin() {
			return ErrForbidden
		}

		visits, err := tx.Visits().ListByPatient(ctx, id)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		for _, v := range visits {
			freed = append(freed, v.Date())
		}

		if err := tx.Patients().Delete(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrPatientNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("patient deleted", "patient_id", id.String(), "freed_visits", len(freed), "actor_id", actor.ID.String())
	if len(freed) > 0 {
		if err := c.cache.Invalidate(ctx, freed...); err != nil {
			slog.Warn("availability cache invalidation failed", "error", err.Error())
		}
	}
	return nil
}

func (in ProfileInput) toPatch() (patient.ProfilePatch, error) {
	var patch patient.ProfilePatch
	if in.FirstName != nil {
		n, err := patient.NewName(*in.FirstName)
		if err != nil {
			return patient.ProfilePatch{}, err
		}
		patch.FirstName = &n
	}
	if in.LastName != nil {
		n, err := patient.NewName(*in.LastName)
		if err != nil {
			return patient.ProfilePatch{}, err
		}
		patch.LastName = &n
	}
	if in.Mobile != nil {
		m, err := patient.NewMobile(*in.Mobile)
		if err != nil {
			return patient.ProfilePatch{}, err
		}
		patch.Mobile = &m
	}
	return patch, nil
}
