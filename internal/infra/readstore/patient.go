package readstore

import (
	"context"
	"strings"

	"clinic-booking/internal/infra"
	sqlc "clinic-booking/internal/infra/sqlc/generated"
	"clinic-booking/internal/pkg/pgconv"
	"clinic-booking/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var patientColumns = []string{
	"id", "email", "first_name", "last_name", "mobile", "role", "confirmed",
	"password_hash", "confirmation_token", "created_at", "updated_at",
}

type PatientReadQueries interface {
	FindPatientByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Patients, error)
}

type PatientReadStore struct {
	queries PatientReadQueries
	db      sqlc.DBTX
}

func NewPatientReadStore(queries PatientReadQueries, db sqlc.DBTX) *PatientReadStore {
	return &PatientReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PatientReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PatientView, error) {
	row, err := r.queries.FindPatientByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr(nil, infra.Classify(err), "failed to find patient view", err)
	}
	return toPatientView(row), nil
}

func (r *PatientReadStore) List(ctx context.Context, filter queries.PatientFilter) ([]*queries.PatientView, int, error) {
	listSQL, listArgs, err := buildPatientListQuery(filter)
	if err != nil {
		return nil, 0, infra.WrapRepoErr(nil, infra.KindDBFailure, "failed to build patient list query", err)
	}
	countSQL, countArgs, err := buildPatientCountQuery(filter)
	if err != nil {
		return nil, 0, infra.WrapRepoErr(nil, infra.KindDBFailure, "failed to build patient count query", err)
	}

	rows, err := r.db.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, infra.WrapRepoErr(nil, infra.KindDBFailure, "failed to list patients", err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByPos[sqlc.Patients])
	if err != nil {
		return nil, 0, infra.WrapRepoErr(nil, infra.KindDBFailure, "failed to scan patients", err)
	}

	var total int
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr(nil, infra.KindDBFailure, "failed to count patients", err)
	}

	views := make([]*queries.PatientView, 0, len(items))
	for _, row := range items {
		views = append(views, toPatientView(row))
	}
	return views, total, nil
}

// patientSearch matches email and both names case-insensitively.
func patientSearch(search string) sq.Sqlizer {
	search = strings.TrimSpace(search)
	if search == "" {
		return sq.And{}
	}
	pattern := "%" + escapeLike(search) + "%"
	return sq.Or{
		sq.ILike{"email": pattern},
		sq.ILike{"first_name": pattern},
		sq.ILike{"last_name": pattern},
	}
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func buildPatientListQuery(filter queries.PatientFilter) (string, []interface{}, error) {
	q := psql.Select(patientColumns...).
		From("patients").
		Where(patientSearch(filter.Search)).
		OrderBy("last_name", "email")
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}
	return q.ToSql()
}

func buildPatientCountQuery(filter queries.PatientFilter) (string, []interface{}, error) {
	return psql.Select("count(*)").
		From("patients").
		Where(patientSearch(filter.Search)).
		ToSql()
}

func toPatientView(row sqlc.Patients) *queries.PatientView {
	return &queries.PatientView{
		ID:        row.ID,
		Email:     row.Email,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Mobile:    row.Mobile,
		Role:      row.Role,
		Confirmed: row.Confirmed,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
