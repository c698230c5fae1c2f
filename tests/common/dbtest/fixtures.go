//go:build integration || e2e

package dbtest

import (
	"context"
	"sync"
	"testing"
	"time"

	"clinic-booking/internal/domain/calendar"
	"clinic-booking/internal/domain/slot"
	"clinic-booking/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Password is the password of every patient created by CreatePatient.
const Password = "password123"

var (
	hashOnce sync.Once
	hashed   string
	hashErr  error
)

func passwordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		hashed, hashErr = password.NewHasher(bcrypt.MinCost).Hash(Password)
	})
	require.NoError(t, hashErr)
	return hashed
}

type PatientRow struct {
	Email     string
	FirstName string
	LastName  string
	Role      string
	Confirmed bool
}

func CreatePatient(t *testing.T, db DBLike, row PatientRow) uuid.UUID {
	t.Helper()

	if row.Role == "" {
		row.Role = "patient"
	}
	if row.FirstName == "" {
		row.FirstName = "Test"
	}
	if row.LastName == "" {
		row.LastName = "Patient"
	}

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO patients (id, email, first_name, last_name, mobile, role, confirmed, password_hash)
		VALUES ($1, $2, $3, $4, '+48 600 000 000', $5, $6, $7)`,
		id, row.Email, row.FirstName, row.LastName, row.Role, row.Confirmed, passwordHash(t))
	require.NoError(t, err)
	return id
}

// InsertVisit writes a visit directly, bypassing every booking guard.
func InsertVisit(t *testing.T, db DBLike, patientID uuid.UUID, date calendar.Date, hour slot.Hour) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO visits (id, visit_date, start_hour, patient_id, confirmed, kind)
		VALUES ($1, $2, $3, $4, false, 'booking')`,
		id, date.Time(), int16(hour), patientID)
	require.NoError(t, err)
	return id
}

func ConfirmationToken(t *testing.T, db DBLike, email string) uuid.UUID {
	t.Helper()

	var token uuid.UUID
	err := db.QueryRow(context.Background(),
		"SELECT confirmation_token FROM patients WHERE email = $1", email).Scan(&token)
	require.NoError(t, err)
	return token
}

func CountVisits(t *testing.T, db DBLike) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow(context.Background(), "SELECT count(*) FROM visits").Scan(&n))
	return n
}

// ResetDB removes every row except the administrator seeded at start-up.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := pool.Exec(ctx, "TRUNCATE visits, notification_jobs RESTART IDENTITY"); err != nil {
		return err
	}
	_, err := pool.Exec(ctx, "DELETE FROM patients WHERE role <> 'admin'")
	return err
}
