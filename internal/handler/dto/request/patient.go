package request

import (
	"clinic-booking/internal/pkg/ptr"
	"clinic-booking/internal/usecase/commands"
	"clinic-booking/internal/usecase/queries"
)

// UpdateProfileRequest leaves absent fields unchanged.
type UpdateProfileRequest struct {
	FirstName *string `json:"first_name" binding:"omitempty,min=1,max=100"`
	LastName  *string `json:"last_name" binding:"omitempty,min=1,max=100"`
	Mobile    *string `json:"mobile" binding:"omitempty,max=20"`
}

func (r UpdateProfileRequest) ToInput() commands.ProfileInput {
	return commands.ProfileInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Mobile:    r.Mobile,
	}
}

type PatientListQuery struct {
	Search string `form:"search" binding:"max=100"`
	Limit  *int   `form:"limit" binding:"omitempty,min=1,max=200"`
	Offset int    `form:"offset" binding:"omitempty,min=0"`
}

func (q PatientListQuery) ToFilter() queries.PatientFilter {
	return queries.PatientFilter{
		Search: q.Search,
		Limit:  ptr.Or(q.Limit, queries.DefaultPageSize),
		Offset: q.Offset,
	}
}
