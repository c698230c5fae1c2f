package memstore

import (
	"context"
	"sort"
	"strings"

	"clinic-booking/internal/domain/patient"
	"clinic-booking/internal/domain/visit"
	"clinic-booking/internal/infra"
	"clinic-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type VisitReadStore struct {
	store *Store
}

func NewVisitReadStore(store *Store) *VisitReadStore {
	return &VisitReadStore{store: store}
}

func (r *VisitReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.VisitView, error) {
	var view *queries.VisitView
	r.store.view(func(st *state) {
		if v, ok := st.visits[id]; ok {
			view = visitView(st, &v)
		}
	})
	if view == nil {
		return nil, infra.WrapRepoErr(nil, infra.KindNotFound, "visit not found", nil)
	}
	return view, nil
}

func (r *VisitReadStore) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*queries.VisitView, error) {
	views, _ := r.list(func(v *visit.Visit) bool { return v.PatientID() == patientID }, 0, 0)
	return views, nil
}

func (r *VisitReadStore) List(ctx context.Context, filter queries.VisitFilter) ([]*queries.VisitView, int, error) {
	views, total := r.list(func(v *visit.Visit) bool {
		switch {
		case filter.From != nil && v.Date().Before(*filter.From):
			return false
		case filter.To != nil && v.Date().After(*filter.To):
			return false
		case filter.Kind != nil && v.Kind() != *filter.Kind:
			return false
		case filter.PatientID != nil && v.PatientID() != *filter.PatientID:
			return false
		case filter.Confirmed != nil && v.IsConfirmed() != *filter.Confirmed:
			return false
		}
		return true
	}, filter.Limit, filter.Offset)
	return views, total, nil
}

func (r *VisitReadStore) list(keep func(v *visit.Visit) bool, limit, offset int) ([]*queries.VisitView, int) {
	var matched []*visit.Visit
	views := []*queries.VisitView{}
	r.store.view(func(st *state) {
		for _, v := range st.visits {
			v := v
			if keep(&v) {
				matched = append(matched, &v)
			}
		}
		sortVisits(matched)
		for _, v := range page(matched, limit, offset) {
			views = append(views, visitView(st, v))
		}
	})
	return views, len(matched)
}

func visitView(st *state, v *visit.Visit) *queries.VisitView {
	var owner *patient.Patient
	if p, ok := st.patients[v.PatientID()]; ok {
		owner = &p
	}
	return queries.NewVisitView(v, owner)
}

type PatientReadStore struct {
	store *Store
}

func NewPatientReadStore(store *Store) *PatientReadStore {
	return &PatientReadStore{store: store}
}

func (r *PatientReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PatientView, error) {
	var view *queries.PatientView
	r.store.view(func(st *state) {
		if p, ok := st.patients[id]; ok {
			view = queries.NewPatientView(&p)
		}
	})
	if view == nil {
		return nil, infra.WrapRepoErr(nil, infra.KindNotFound, "patient not found", nil)
	}
	return view, nil
}

// List matches Search case-insensitively against email and names.
func (r *PatientReadStore) List(ctx context.Context, filter queries.PatientFilter) ([]*queries.PatientView, int, error) {
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	var matched []*queries.PatientView
	r.store.view(func(st *state) {
		for _, p := range st.patients {
			p := p
			if search == "" || patientMatches(&p, search) {
				matched = append(matched, queries.NewPatientView(&p))
			}
		}
	})

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].LastName != matched[j].LastName {
			return matched[i].LastName < matched[j].LastName
		}
		return matched[i].Email < matched[j].Email
	})

	views := append([]*queries.PatientView{}, page(matched, filter.Limit, filter.Offset)...)
	return views, len(matched), nil
}

func patientMatches(p *patient.Patient, search string) bool {
	for _, field := range []string{p.Email().Value(), p.FirstName().Value(), p.LastName().Value()} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

// page applies offset and limit; a zero limit means no limit.
func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
