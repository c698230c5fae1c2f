package converter

import (
	"clinic-booking/internal/domain/slot"
	"clinic-booking/internal/domain/visit"
	sqlc "clinic-booking/internal/infra/sqlc/generated"
	"clinic-booking/internal/pkg/pgconv"
)

func VisitToCreateParams(v *visit.Visit) sqlc.CreateVisitParams {
	return sqlc.CreateVisitParams{
		ID:        v.ID(),
		VisitDate: pgconv.DateToPgtype(v.Date()),
		StartHour: int16(v.Hour()),
		PatientID: v.PatientID(),
		Confirmed: v.IsConfirmed(),
		Kind:      v.Kind().String(),
		CreatedAt: pgconv.TimeToPgtype(v.CreatedAt()),
	}
}

func VisitFromRow(row sqlc.Visits) (*visit.Visit, error) {
	kind, err := visit.NewKind(row.Kind)
	if err != nil {
		return nil, err
	}
	return visit.Reconstruct(row.ID, visit.NewParams{
		Date:      pgconv.DateFromPgtype(row.VisitDate),
		Hour:      slot.Hour(row.StartHour),
		PatientID: row.PatientID,
		Confirmed: row.Confirmed,
		Kind:      kind,
	}, pgconv.TimeFromPgtype(row.CreatedAt)), nil
}

func VisitsFromRows(rows []sqlc.Visits) ([]*visit.Visit, error) {
	out := make([]*visit.Visit, 0, len(rows))
	for _, row := range rows {
		v, err := VisitFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
