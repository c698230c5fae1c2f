package shared

import (
	"context"
	"time"

	"clinic-booking/internal/domain/calendar"
	"clinic-booking/internal/domain/patient"
	"clinic-booking/internal/domain/slot"
	"clinic-booking/internal/domain/visit"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: one atomic transaction; serialization failures and deadlocks are retried
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Reads: the same repositories outside any transaction. Must not be called from inside Within.
	Reads() Tx
}

type Tx interface {
	Visits() VisitRepository
	Patients() PatientRepository
	Notifications() NotificationRepository
}

// VisitRepository is the Visit Ledger. Create reports a taken (date, hour)
// as infra.KindDuplicateKey; lookups by id report infra.KindNotFound.
type VisitRepository interface {
	Create(ctx context.Context, v *visit.Visit) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*visit.Visit, error)
	// FindBySlot returns nil, nil for a free slot.
	FindBySlot(ctx context.Context, date calendar.Date, hour slot.Hour) (*visit.Visit, error)
	FindUpcomingByPatient(ctx context.Context, patientID uuid.UUID, from calendar.Date) ([]*visit.Visit, error)
	ListByDate(ctx context.Context, date calendar.Date) ([]*visit.Visit, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*visit.Visit, error)
}

// PatientRepository reports a taken email or a second administrator as
// infra.KindDuplicateKey.
type PatientRepository interface {
	Create(ctx context.Context, p *patient.Patient) error
	FindByID(ctx context.Context, id uuid.UUID) (*patient.Patient, error)
	// FindByIDForUpdate locks the row until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*patient.Patient, error)
	FindByEmail(ctx context.Context, email patient.Email) (*patient.Patient, error)
	FindByConfirmationToken(ctx context.Context, token uuid.UUID) (*patient.Patient, error)
	FindAdministrator(ctx context.Context) (*patient.Patient, error)
	Update(ctx context.Context, p *patient.Patient) error
	// Delete removes the patient and every visit they hold.
	Delete(ctx context.Context, id uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}

// CacheEntry is the cached state of one date. Generation is reported on a
// miss too and must be handed back to Set.
type CacheEntry struct {
	Hours      []slot.Hour
	Hit        bool
	Generation int64
}

// AvailabilityCache holds computed free hours per date. It is advisory:
// callers treat errors as misses.
type AvailabilityCache interface {
	Get(ctx context.Context, date calendar.Date) (CacheEntry, error)
	// Set stores hours only while the date is still at generation.
	Set(ctx context.Context, date calendar.Date, generation int64, hours []slot.Hour) error
	// Invalidate drops the entries and bumps the generation of every date.
	Invalidate(ctx context.Context, dates ...calendar.Date) error
}
