package readstore

import (
	"context"

	"clinic-booking/internal/domain/slot"
	"clinic-booking/internal/infra"
	sqlc "clinic-booking/internal/infra/sqlc/generated"
	"clinic-booking/internal/pkg/pgconv"
	"clinic-booking/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var visitViewColumns = []string{
	"v.id", "v.visit_date", "v.start_hour", "v.patient_id", "v.confirmed", "v.kind", "v.created_at",
	"p.email", "p.first_name", "p.last_name",
}

type VisitReadQueries interface {
	FindVisitViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindVisitViewByIDRow, error)
	ListVisitViewsByPatient(ctx context.Context, db sqlc.DBTX, patientID uuid.UUID) ([]sqlc.ListVisitViewsByPatientRow, error)
}

type VisitReadStore struct {
	queries VisitReadQueries
	db      sqlc.DBTX
}

func NewVisitReadStore(queries VisitReadQueries, db sqlc.DBTX) *VisitReadStore {
	return &VisitReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *VisitReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.VisitView, error) {
	row, err := r.queries.FindVisitViewByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr(nil, infra.Classify(err), "failed to find visit view", err)
	}
	return toVisitView(sqlc.ListVisitViewsByPatientRow(row)), nil
}

func (r *VisitReadStore) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*queries.VisitView, error) {
	rows, err := r.queries.ListVisitViewsByPatient(ctx, r.db, patientID)
	if err != nil {
		return nil, infra.WrapRepoErr(nil, infra.KindDBFailure, "failed to list visit views by patient", err)
	}
	return toVisitViews(rows), nil
}

// List backs the administrator listing; filters combine with AND.
func (r *VisitReadStore) List(ctx context.Context, filter queries.VisitFilter) ([]*queries.VisitView, int, error) {
	listSQL, listArgs, err := buildVisitListQuery(filter)
	if err != nil {
		return nil, 0, infra.WrapRepoErr(nil, infra.KindDBFailure, "failed to build visit list query", err)
	}
	countSQL, countArgs, err := buildVisitCountQuery(filter)
	if err != nil {
		return nil, 0, infra.WrapRepoErr(nil, infra.KindDBFailure, "failed to build visit count query", err)
	}

	rows, err := r.db.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, infra.WrapRepoErr(nil, infra.KindDBFailure, "failed to list visits", err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByPos[sqlc.ListVisitViewsByPatientRow])
	if err != nil {
		return nil, 0, infra.WrapRepoErr(nil, infra.KindDBFailure, "failed to scan visits", err)
	}

	var total int
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, infra.WrapRepoErr(nil, infra.KindDBFailure, "failed to count visits", err)
	}

	return toVisitViews(items), total, nil
}

func visitFilterWhere(filter queries.VisitFilter) sq.And {
	where := sq.And{}
	if filter.From != nil {
		where = append(where, sq.GtOrEq{"v.visit_date": pgconv.DateToPgtype(*filter.From)})
	}
	if filter.To != nil {
		where = append(where, sq.LtOrEq{"v.visit_date": pgconv.DateToPgtype(*filter.To)})
	}
	if filter.Kind != nil {
		where = append(where, sq.Eq{"v.kind": filter.Kind.String()})
	}
	if filter.PatientID != nil {
		where = append(where, sq.Eq{"v.patient_id": *filter.PatientID})
	}
	if filter.Confirmed != nil {
		where = append(where, sq.Eq{"v.confirmed": *filter.Confirmed})
	}
	return where
}

func buildVisitListQuery(filter queries.VisitFilter) (string, []interface{}, error) {
	q := psql.Select(visitViewColumns...).
		From("visits v").
		Join("patients p ON p.id = v.patient_id").
		Where(visitFilterWhere(filter)).
		OrderBy("v.visit_date", "v.start_hour")
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}
	return q.ToSql()
}

func buildVisitCountQuery(filter queries.VisitFilter) (string, []interface{}, error) {
	return psql.Select("count(*)").
		From("visits v").
		Where(visitFilterWhere(filter)).
		ToSql()
}

func toVisitView(row sqlc.ListVisitViewsByPatientRow) *queries.VisitView {
	return &queries.VisitView{
		ID:           row.ID,
		Date:         pgconv.DateFromPgtype(row.VisitDate),
		Hour:         slot.Hour(row.StartHour),
		PatientID:    row.PatientID,
		PatientEmail: row.PatientEmail,
		PatientName:  row.PatientFirstName + " " + row.PatientLastName,
		Confirmed:    row.Confirmed,
		Kind:         row.Kind,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
	}
}

func toVisitViews(rows []sqlc.ListVisitViewsByPatientRow) []*queries.VisitView {
	views := make([]*queries.VisitView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toVisitView(row))
	}
	return views
}
