package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/booking.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"clinic-booking/internal/domain/calendar"
	"clinic-booking/internal/domain/patient"
	"clinic-booking/internal/domain/slot"
	"clinic-booking/internal/domain/visit"
	"clinic-booking/internal/infra"
	"clinic-booking/internal/pkg/clock"
	"clinic-booking/internal/pkg/errs"
	"clinic-booking/internal/pkg/metrics"
	"clinic-booking/internal/usecase/queries"
	"clinic-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// errSlotConflict marks a uniqueness violation raised by the ledger write.
// It is resolved into a SlotTakenError after the transaction rolls back.
var errSlotConflict = errs.New("slot claimed concurrently")

type WalkInInput struct {
	Email     string
	FirstName string
	LastName  string
	Mobile    string
}

type WalkInResult struct {
	Patient *queries.PatientView
	Visit   *queries.VisitView
}

type BookingCommands interface {
	Book(ctx context.Context, actor patient.Actor, target uuid.UUID, date calendar.Date, at slot.ClockTime) (*queries.VisitView, error)
	Block(ctx context.Context, actor patient.Actor, date calendar.Date, at slot.ClockTime) (*queries.VisitView, error)
	RegisterAndBook(ctx context.Context, actor patient.Actor, in WalkInInput, date calendar.Date, at slot.ClockTime) (*WalkInResult, error)
	Cancel(ctx context.Context, actor patient.Actor, visitID uuid.UUID) error
}

type bookingCommandsImpl struct {
	uow        shared.UnitOfWork
	calculator *shared.AvailabilityCalculator
	policy     *calendar.Policy
	cache      shared.AvailabilityCache
	clock      clock.Clock
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	calculator *shared.AvailabilityCalculator,
	policy *calendar.Policy,
	cache shared.AvailabilityCache,
	clock clock.Clock,
) BookingCommands {
	if cache == nil {
		cache = shared.NopAvailabilityCache{}
	}
	return &bookingCommandsImpl{
		uow:        uow,
		calculator: calculator,
		policy:     policy,
		cache:      cache,
		clock:      clock,
	}
}

func (b *bookingCommandsImpl) Book(
	ctx context.Context,
	actor patient.Actor,
	target uuid.UUID,
	date calendar.Date,
	at slot.ClockTime,
) (*queries.VisitView, error) {
	if target != actor.ID && !actor.Can(patient.CanBookForOthers) {
		return nil, ErrNotOwner
	}

	var view *queries.VisitView
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		owner, err := lockPatient(ctx, tx, target)
		if err != nil {
			return err
		}

		created, err := b.book(ctx, tx, actor, owner, date, at)
		if err != nil {
			return err
		}
		view = queries.NewVisitView(created, owner)
		return nil
	})
	if err != nil {
		err = b.resolveConflict(ctx, err, date, at)
		recordBooking(err)
		return nil, err
	}

	recordBooking(nil)
	b.invalidate(ctx, date)
	return view, nil
}

func (b *bookingCommandsImpl) Block(ctx context.Context, actor patient.Actor, date calendar.Date, at slot.ClockTime) (*queries.VisitView, error) {
	if !actor.Can(patient.CanBookForOthers) {
		return nil, ErrForbidden
	}
	return b.Book(ctx, actor, actor.ID, date, at)
}

func (b *bookingCommandsImpl) RegisterAndBook(
	ctx context.Context,
	actor patient.Actor,
	in WalkInInput,
	date calendar.Date,
	at slot.ClockTime,
) (*WalkInResult, error) {
	if !actor.Can(patient.CanBookForOthers) {
		return nil, ErrForbidden
	}

	walkIn, err := newWalkIn(in, b.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPatient)
	}

	var result *WalkInResult
	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Patients().Create(ctx, walkIn); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateEmail
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		created, err := b.book(ctx, tx, actor, walkIn, date, at)
		if err != nil {
			return err
		}
		result = &WalkInResult{
			Patient: queries.NewPatientView(walkIn),
			Visit:   queries.NewVisitView(created, walkIn),
		}
		return nil
	})
	if err != nil {
		err = b.resolveConflict(ctx, err, date, at)
		if !errs.Is(err, ErrDuplicateEmail) {
			recordBooking(err)
		}
		return nil, err
	}

	recordBooking(nil)
	b.invalidate(ctx, date)
	return result, nil
}

func (b *bookingCommandsImpl) Cancel(ctx context.Context, actor patient.Actor, visitID uuid.UUID) error {
	var cancelled *visit.Visit
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		v, err := tx.Visits().FindByID(ctx, visitID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrVisitNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if !actor.Can(patient.CanCancelAny) {
			owner, err := tx.Patients().FindByID(ctx, v.PatientID())
			if err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
			if !actor.Owns(owner.Email().Value()) {
				return ErrNotOwner
			}
		}

		if err := tx.Visits().Delete(ctx, v.ID()); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrVisitNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		cancelled = v
		return nil
	})
	if err != nil {
		return err
	}

	metrics.CancellationsTotal.WithLabelValues(actor.Role.String()).Inc()
	slog.Info("visit cancelled",
		"visit_id", cancelled.ID().String(),
		"date", cancelled.Date().String(),
		"hour", cancelled.Hour().String(),
		"actor_id", actor.ID.String(),
	)
	b.invalidate(ctx, cancelled.Date())
	return nil
}

// book runs the validation pipeline for owner and persists the visit.
// The order of the guards is part of the contract: the first failure wins.
func (b *bookingCommandsImpl) book(
	ctx context.Context,
	tx shared.Tx,
	actor patient.Actor,
	owner *patient.Patient,
	date calendar.Date,
	at slot.ClockTime,
) (*visit.Visit, error) {
	today := calendar.DateOf(b.clock.Now())
	visits := tx.Visits()

	if !actor.Can(patient.ExemptFromDuplicateGuard) {
		upcoming, err := visits.FindUpcomingByPatient(ctx, owner.ID(), today)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if len(upcoming) > 0 {
			return nil, ErrAlreadyBooked
		}
	}

	// Visits are stored on the hour, so only a whole-hour request can hit one exactly.
	if at.IsWhole() {
		existing, err := visits.FindBySlot(ctx, date, at.Floor())
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if existing != nil {
			available, err := b.calculator.AvailableSlots(ctx, visits, date)
			if err != nil {
				return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
			return nil, &SlotTakenError{Date: date, Hour: at.Floor(), Available: available}
		}
	}

	if !date.After(today) {
		return nil, ErrDateNotInFuture
	}

	if kind := b.policy.Classify(date); kind != calendar.BusinessDay {
		name, _ := b.policy.HolidayName(date)
		return nil, &ClosedDayError{Date: date, Kind: kind, HolidayName: name}
	}

	if !at.WithinBounds(b.calculator.Catalog()) {
		return nil, ErrHourOutOfRange
	}

	kind := visit.KindBooking
	if owner.IsAdmin() {
		kind = visit.KindBlock
	}
	v, err := visit.New(visit.NewParams{
		Date:      date,
		Hour:      at.Floor(),
		PatientID: owner.ID(),
		Confirmed: actor.IsAdmin(),
		Kind:      kind,
	}, b.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := visits.Create(ctx, v); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errSlotConflict
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	slog.Info("visit booked",
		"visit_id", v.ID().String(),
		"date", date.String(),
		"hour", v.Hour().String(),
		"kind", kind.String(),
		"patient_id", owner.ID().String(),
		"actor_id", actor.ID.String(),
	)
	return v, nil
}

// resolveConflict turns a write-time uniqueness violation into SlotTaken.
// Availability is read after the failed transaction is gone.
func (b *bookingCommandsImpl) resolveConflict(ctx context.Context, err error, date calendar.Date, at slot.ClockTime) error {
	if !errs.Is(err, errSlotConflict) {
		return err
	}

	available, readErr := b.calculator.AvailableSlots(ctx, b.uow.Reads().Visits(), date)
	if readErr != nil {
		slog.Warn("availability read after slot conflict failed", "date", date.String(), "error", readErr.Error())
		available = []slot.Hour{}
	}
	return &SlotTakenError{Date: date, Hour: at.Floor(), Available: available}
}

func (b *bookingCommandsImpl) invalidate(ctx context.Context, dates ...calendar.Date) {
	if err := b.cache.Invalidate(ctx, dates...); err != nil {
		slog.Warn("availability cache invalidation failed", "error", err.Error())
	}
}

func lockPatient(ctx context.Context, tx shared.Tx, id uuid.UUID) (*patient.Patient, error) {
	p, err := tx.Patients().FindByIDForUpdate(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return p, nil
}

func newWalkIn(in WalkInInput, now time.Time) (*patient.Patient, error) {
	email, err := patient.NewEmail(in.Email)
	if err != nil {
		return nil, err
	}
	profile, err := newProfile(in.FirstName, in.LastName, in.Mobile)
	if err != nil {
		return nil, err
	}
	return patient.NewWalkIn(email, profile, now), nil
}

func newProfile(firstName, lastName, mobile string) (patient.Profile, error) {
	first, err := patient.NewName(firstName)
	if err != nil {
		return patient.Profile{}, err
	}
	last, err := patient.NewName(lastName)
	if err != nil {
		return patient.Profile{}, err
	}
	m, err := patient.NewMobile(mobile)
	if err != nil {
		return patient.Profile{}, err
	}
	return patient.Profile{FirstName: first, LastName: last, Mobile: m}, nil
}

func recordBooking(err error) {
	metrics.BookingAttemptsTotal.WithLabelValues(bookingOutcome(err)).Inc()
}

func bookingOutcome(err error) string {
	switch {
	case err == nil:
		return "booked"
	case errs.Is(err, ErrAlreadyBooked):
		return "already_booked"
	case errs.Is(err, ErrSlotTaken):
		return "slot_taken"
	case errs.Is(err, ErrDateNotInFuture):
		return "date_not_in_future"
	case errs.Is(err, ErrHolidayClosed):
		return "holiday_closed"
	case errs.Is(err, ErrNonBusinessDay):
		return "non_business_day"
	case errs.Is(err, ErrHourOutOfRange):
		return "hour_out_of_range"
	case errs.IsAny(err, ErrNotOwner, ErrForbidden, ErrPatientNotFound, ErrInvalidPatient):
		return "rejected"
	default:
		return "error"
	}
}
