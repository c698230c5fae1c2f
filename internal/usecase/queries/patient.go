package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/patient.go -package=queriesmock

import (
	"context"

	"clinic-booking/internal/domain/calendar"
	"clinic-booking/internal/domain/patient"
	"clinic-booking/internal/infra"
	"clinic-booking/internal/pkg/clock"
	"clinic-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type PatientReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PatientView, error)
	List(ctx context.Context, filter PatientFilter) ([]*PatientView, int, error)
}

type PatientQueries interface {
	Me(ctx context.Context, actor patient.Actor) (*PatientDetailView, error)
	GetByID(ctx context.Context, actor patient.Actor, id uuid.UUID) (*PatientDetailView, error)
	List(ctx context.Context, actor patient.Actor, filter PatientFilter) (*Page[*PatientView], error)
}

type patientQueriesImpl struct {
	patients PatientReadStore
	visits   VisitReadStore
	clock    clock.Clock
}

func NewPatientQueries(patients PatientReadStore, visits VisitReadStore, clock clock.Clock) PatientQueries {
	return &patientQueriesImpl{
		patients: patients,
		visits:   visits,
		clock:    clock,
	}
}

func (q *patientQueriesImpl) Me(ctx context.Context, actor patient.Actor) (*PatientDetailView, error) {
	return q.detail(ctx, actor.ID)
}

func (q *patientQueriesImpl) GetByID(ctx context.Context, actor patient.Actor, id uuid.UUID) (*PatientDetailView, error) {
	if id != actor.ID && !actor.Can(patient.CanManagePatients) {
		return nil, ErrForbidden
	}
	return q.detail(ctx, id)
}

func (q *patientQueriesImpl) List(ctx context.Context, actor patient.Actor, filter PatientFilter) (*Page[*PatientView], error) {
	if !actor.Can(patient.CanManagePatients) {
		return nil, ErrForbidden
	}

	views, total, err := q.patients.List(ctx, filter.Normalize())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return &Page[*PatientView]{Items: views, Total: total}, nil
}

func (q *patientQueriesImpl) detail(ctx context.Context, id uuid.UUID) (*PatientDetailView, error) {
	view, err := q.patients.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	visits, err := q.visits.ListByPatient(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	today := calendar.DateOf(q.clock.Now())
	upcoming := make([]*VisitView, 0, len(visits))
	for _, v := range visits {
		if !v.Date.Before(today) {
			upcoming = append(upcoming, v)
		}
	}

	return &PatientDetailView{PatientView: *view, UpcomingVisits: upcoming}, nil
}
