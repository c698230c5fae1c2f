package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/visit.go -package=queriesmock

import (
	"context"

	"clinic-booking/internal/domain/patient"
	"clinic-booking/internal/infra"
	"clinic-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type VisitReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*VisitView, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*VisitView, error)
	List(ctx context.Context, filter VisitFilter) ([]*VisitView, int, error)
}

type VisitQueries interface {
	ListMine(ctx context.Context, actor patient.Actor) ([]*VisitView, error)
	GetByID(ctx context.Context, actor patient.Actor, id uuid.UUID) (*VisitView, error)
	List(ctx context.Context, actor patient.Actor, filter VisitFilter) (*Page[*VisitView], error)
}

type visitQueriesImpl struct {
	store VisitReadStore
}

func NewVisitQueries(store VisitReadStore) VisitQueries {
	return &visitQueriesImpl{store: store}
}

func (q *visitQueriesImpl) ListMine(ctx context.Context, actor patient.Actor) ([]*VisitView, error) {
	views, err := q.store.ListByPatient(ctx, actor.ID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *visitQueriesImpl) GetByID(ctx context.Context, actor patient.Actor, id uuid.UUID) (*VisitView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVisitNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if !actor.Can(patient.CanManagePatients) && !actor.Owns(view.PatientEmail) {
		return nil, ErrVisitAccess
	}
	return view, nil
}

func (q *visitQueriesImpl) List(ctx context.Context, actor patient.Actor, filter VisitFilter) (*Page[*VisitView], error) {
	if !actor.Can(patient.CanManagePatients) {
		return nil, ErrForbidden
	}

	views, total, err := q.store.List(ctx, filter.Normalize())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return &Page[*VisitView]{Items: views, Total: total}, nil
}
