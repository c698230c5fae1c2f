package response

import (
	"time"

	"clinic-booking/internal/domain/slot"
	"clinic-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type VisitResponse struct {
	ID           uuid.UUID `json:"id"`
	Date         string    `json:"date"`
	Hour         int       `json:"hour"`
	Time         string    `json:"time"`
	PatientID    uuid.UUID `json:"patient_id"`
	PatientEmail string    `json:"patient_email"`
	PatientName  string    `json:"patient_name"`
	Confirmed    bool      `json:"confirmed"`
	Kind         string    `json:"kind"`
	CreatedAt    time.Time `json:"created_at"`
}

type VisitPageResponse struct {
	Items []VisitResponse `json:"items"`
	Total int             `json:"total"`
}

func FromVisitView(v *queries.VisitView) (VisitResponse, error) {
	var res VisitResponse
	if err := copyInto(&res, v); err != nil {
		return VisitResponse{}, err
	}
	res.Time = slot.AtHour(v.Hour).String()
	return res, nil
}

func FromVisitViews(views []*queries.VisitView) ([]VisitResponse, error) {
	res := make([]VisitResponse, 0, len(views))
	for _, v := range views {
		item, err := FromVisitView(v)
		if err != nil {
			return nil, err
		}
		res = append(res, item)
	}
	return res, nil
}

func FromVisitPage(page *queries.Page[*queries.VisitView]) (VisitPageResponse, error) {
	items, err := FromVisitViews(page.Items)
	if err != nil {
		return VisitPageResponse{}, err
	}
	return VisitPageResponse{Items: items, Total: page.Total}, nil
}
