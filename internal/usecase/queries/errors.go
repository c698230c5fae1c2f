package queries

import "clinic-booking/internal/pkg/errs"

var (
	ErrVisitNotFound   = errs.New("visit view not found")
	ErrVisitAccess     = errs.New("visit access denied")
	ErrPatientNotFound = errs.New("patient view not found")
	ErrForbidden       = errs.New("listing requires administrator")
)
