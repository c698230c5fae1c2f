// Package memstore keeps the ledger in process memory. Transactions work on
// a copy of the state that replaces the live state only when fn succeeds,
// so a rejected booking leaves no trace.
package memstore

import (
	"context"
	"sync"
	"time"

	"clinic-booking/internal/domain/patient"
	"clinic-booking/internal/domain/visit"
	"clinic-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type Job struct {
	ID      int64
	Kind    string
	Topic   string
	Payload []byte
	RunAt   time.Time
}

type state struct {
	patients map[uuid.UUID]patient.Patient
	visits   map[uuid.UUID]visit.Visit
	jobs     []Job
	nextJob  int64
}

func newState() *state {
	return &state{
		patients: make(map[uuid.UUID]patient.Patient),
		visits:   make(map[uuid.UUID]visit.Visit),
		nextJob:  1,
	}
}

func (s *state) clone() *state {
	c := &state{
		patients: make(map[uuid.UUID]patient.Patient, len(s.patients)),
		visits:   make(map[uuid.UUID]visit.Visit, len(s.visits)),
		jobs:     append([]Job(nil), s.jobs...),
		nextJob:  s.nextJob,
	}
	for id, p := range s.patients {
		c.patients[id] = p
	}
	for id, v := range s.visits {
		c.visits[id] = v
	}
	return c
}

// Store implements shared.UnitOfWork and the read stores.
// Transactions are serialized by one mutex.
type Store struct {
	mu    sync.Mutex
	state *state
}

func New() *Store {
	return &Store{state: newState()}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.state.clone()
	if err := fn(ctx, &tx{current: func() *state { return work }}); err != nil {
		return err
	}
	s.state = work
	return nil
}

// Reads must not be used from inside Within: it takes the same lock.
func (s *Store) Reads() shared.Tx {
	return &tx{current: func() *state { return s.state }, lock: &s.mu}
}

// Jobs returns the queued notification jobs.
func (s *Store) Jobs() []Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Job(nil), s.state.jobs...)
}

func (s *Store) view(fn func(st *state)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.state)
}

type tx struct {
	current func() *state
	lock    sync.Locker
}

func (t *tx) do(fn func(st *state) error) error {
	if t.lock != nil {
		t.lock.Lock()
		defer t.lock.Unlock()
	}
	return fn(t.current())
}

func (t *tx) Visits() shared.VisitRepository {
	return &visitRepository{tx: t}
}

func (t *tx) Patients() shared.PatientRepository {
	return &patientRepository{tx: t}
}

func (t *tx) Notifications() shared.NotificationRepository {
	return &notificationRepository{tx: t}
}

type notificationRepository struct {
	tx *tx
}

func (r *notificationRepository) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	return r.tx.do(func(st *state) error {
		st.jobs = append(st.jobs, Job{
			ID:      st.nextJob,
			Kind:    kind,
			Topic:   topic,
			Payload: append([]byte(nil), payload...),
			RunAt:   runAt,
		})
		st.nextJob++
		return nil
	})
}
