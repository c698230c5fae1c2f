package response

import (
	"time"

	"clinic-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type PatientResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Mobile    string    `json:"mobile"`
	Role      string    `json:"role"`
	Confirmed bool      `json:"confirmed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PatientDetailResponse struct {
	PatientResponse
	UpcomingVisits []VisitResponse `json:"upcoming_visits"`
}

type PatientPageResponse struct {
	Items []PatientResponse `json:"items"`
	Total int               `json:"total"`
}

type WalkInResponse struct {
	Patient PatientResponse `json:"patient"`
	Visit   VisitResponse   `json:"visit"`
}

func FromPatientView(v *queries.PatientView) (PatientResponse, error) {
	var res PatientResponse
	if err := copyInto(&res, v); err != nil {
		return PatientResponse{}, err
	}
	return res, nil
}

func FromPatientDetail(v *queries.PatientDetailView) (PatientDetailResponse, error) {
	base, err := FromPatientView(&v.PatientView)
	if err != nil {
		return PatientDetailResponse{}, err
	}
	visits, err := FromVisitViews(v.UpcomingVisits)
	if err != nil {
		return PatientDetailResponse{}, err
	}
	return PatientDetailResponse{PatientResponse: base, UpcomingVisits: visits}, nil
}

func FromPatientPage(page *queries.Page[*queries.PatientView]) (PatientPageResponse, error) {
	items := make([]PatientResponse, 0, len(page.Items))
	for _, v := range page.Items {
		item, err := FromPatientView(v)
		if err != nil {
			return PatientPageResponse{}, err
		}
		items = append(items, item)
	}
	return PatientPageResponse{Items: items, Total: page.Total}, nil
}
