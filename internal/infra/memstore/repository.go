package memstore

import (
	"context"
	"sort"

	"clinic-booking/internal/domain/calendar"
	"clinic-booking/internal/domain/patient"
	"clinic-booking/internal/domain/slot"
	"clinic-booking/internal/domain/visit"
	"clinic-booking/internal/infra"

	"github.com/google/uuid"
)

type visitRepository struct {
	tx *tx
}

func (r *visitRepository) Create(ctx context.Context, v *visit.Visit) error {
	return r.tx.do(func(st *state) error {
		if _, ok := st.patients[v.PatientID()]; !ok {
			return infra.WrapRepoErr(nil, infra.KindForeignKeyViolated, "visit owner does not exist", nil)
		}
		for _, existing := range st.visits {
			if existing.Occupies(v.Date(), v.Hour()) {
				return infra.WrapRepoErr(nil, infra.KindDuplicateKey, "slot already reserved", nil)
			}
		}
		st.visits[v.ID()] = *v
		return nil
	})
}

func (r *visitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.tx.do(func(st *state) error {
		if _, ok := st.visits[id]; !ok {
			return infra.WrapRepoErr(nil, infra.KindNotFound, "visit not found", nil)
		}
		delete(st.visits, id)
		return nil
	})
}

func (r *visitRepository) FindByID(ctx context.Context, id uuid.UUID) (*visit.Visit, error) {
	var found *visit.Visit
	err := r.tx.do(func(st *state) error {
		v, ok := st.visits[id]
		if !ok {
			return infra.WrapRepoErr(nil, infra.KindNotFound, "visit not found", nil)
		}
		found = &v
		return nil
	})
	return found, err
}

func (r *visitRepository) FindBySlot(ctx context.Context, date calendar.Date, hour slot.Hour) (*visit.Visit, error) {
	var found *visit.Visit
	err := r.tx.do(func(st *state) error {
		for _, v := range st.visits {
			if v.Occupies(date, hour) {
				v := v
				found = &v
				return nil
			}
		}
		return nil
	})
	return found, err
}

func (r *visitRepository) FindUpcomingByPatient(ctx context.Context, patientID uuid.UUID, from calendar.Date) ([]*visit.Visit, error) {
	return r.filter(func(v *visit.Visit) bool {
		return v.PatientID() == patientID && v.IsUpcoming(from)
	})
}

func (r *visitRepository) ListByDate(ctx context.Context, date calendar.Date) ([]*visit.Visit, error) {
	return r.filter(func(v *visit.Visit) bool {
		return v.Date().Equal(date)
	})
}

func (r *visitRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*visit.Visit, error) {
	return r.filter(func(v *visit.Visit) bool {
		return v.PatientID() == patientID
	})
}

func (r *visitRepository) filter(keep func(v *visit.Visit) bool) ([]*visit.Visit, error) {
	out := []*visit.Visit{}
	err := r.tx.do(func(st *state) error {
		for _, v := range st.visits {
			v := v
			if keep(&v) {
				out = append(out, &v)
			}
		}
		return nil
	})
	sortVisits(out)
	return out, err
}

func sortVisits(visits []*visit.Visit) {
	sort.Slice(visits, func(i, j int) bool {
		if c := visits[i].Date().Compare(visits[j].Date()); c != 0 {
			return c < 0
		}
		return visits[i].Hour() < visits[j].Hour()
	})
}

type patientRepository struct {
	tx *tx
}

func (r *patientRepository) Create(ctx context.Context, p *patient.Patient) error {
	return r.tx.do(func(st *state) error {
		for _, existing := range st.patients {
			if existing.Email().Matches(p.Email().Value()) {
				return infra.WrapRepoErr(nil, infra.KindDuplicateKey, "email already registered", nil)
			}
			if existing.IsAdmin() && p.IsAdmin() {
				return infra.WrapRepoErr(nil, infra.KindDuplicateKey, "administrator already exists", nil)
			}
		}
		st.patients[p.ID()] = *p
		return nil
	})
}

func (r *patientRepository) FindByID(ctx context.Context, id uuid.UUID) (*patient.Patient, error) {
	return r.find(func(p *patient.Patient) bool { return p.ID() == id })
}

// FindByIDForUpdate needs no row lock: the whole transaction holds the store lock.
func (r *patientRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*patient.Patient, error) {
	return r.FindByID(ctx, id)
}

func (r *patientRepository) FindByEmail(ctx context.Context, email patient.Email) (*patient.Patient, error) {
	return r.find(func(p *patient.Patient) bool { return p.Email().Matches(email.Value()) })
}

func (r *patientRepository) FindByConfirmationToken(ctx context.Context, token uuid.UUID) (*patient.Patient, error) {
	return r.find(func(p *patient.Patient) bool {
		t := p.ConfirmationToken()
		return t != nil && *t == token
	})
}

func (r *patientRepository) FindAdministrator(ctx context.Context) (*patient.Patient, error) {
	return r.find(func(p *patient.Patient) bool { return p.IsAdmin() })
}

func (r *patientRepository) Update(ctx context.Context, p *patient.Patient) error {
	return r.tx.do(func(st *state) error {
		if _, ok := st.patients[p.ID()]; !ok {
			return infra.WrapRepoErr(nil, infra.KindNotFound, "patient not found", nil)
		}
		st.patients[p.ID()] = *p
		return nil
	})
}

func (r *patientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.tx.do(func(st *state) error {
		if _, ok := st.patients[id]; !ok {
			return infra.WrapRepoErr(nil, infra.KindNotFound, "patient not found", nil)
		}
		delete(st.patients, id)
		for vid, v := range st.visits {
			if v.PatientID() == id {
				delete(st.visits, vid)
			}
		}
		return nil
	})
}

func (r *patientRepository) find(match func(p *patient.Patient) bool) (*patient.Patient, error) {
	var found *patient.Patient
	err := r.tx.do(func(st *state) error {
		for _, p := range st.patients {
			p := p
			if match(&p) {
				found = &p
				return nil
			}
		}
		return infra.WrapRepoErr(nil, infra.KindNotFound, "patient not found", nil)
	})
	return found, err
}
