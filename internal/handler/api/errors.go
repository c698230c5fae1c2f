package api

import (
	"errors"
	"log/slog"
	"net/http"

	"clinic-booking/internal/domain/patient"
	resdto "clinic-booking/internal/handler/dto/response"
	"clinic-booking/internal/handler/httperr"
	"clinic-booking/internal/handler/middleware"
	"clinic-booking/internal/pkg/errs"
	"clinic-booking/internal/usecase/commands"
	"clinic-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errNoActor = errors.New("actor missing from context")

// SlotTakenDetail is the detail body of a 409 for an occupied slot.
type SlotTakenDetail struct {
	Date           string `json:"date"`
	Hour           int    `json:"hour"`
	AvailableHours []int  `json:"available_hours"`
}

type errorMapping struct {
	target  error
	status  int
	message string
}

// Order matters: ErrHolidayClosed also matches ErrNonBusinessDay.
var errorMappings = []errorMapping{
	{commands.ErrAlreadyBooked, http.StatusConflict, "Patient already has an upcoming visit"},
	{commands.ErrDuplicateEmail, http.StatusConflict, "Email already registered"},
	{commands.ErrDateNotInFuture, http.StatusUnprocessableEntity, "Visit date must be after today"},
	{commands.ErrHolidayClosed, http.StatusUnprocessableEntity, "Clinic is closed on public holidays"},
	{commands.ErrNonBusinessDay, http.StatusUnprocessableEntity, "Clinic is closed on that day"},
	{commands.ErrHourOutOfRange, http.StatusUnprocessableEntity, "Hour outside clinic hours"},
	{commands.ErrInvalidPatient, http.StatusBadRequest, "Invalid patient data"},
	{commands.ErrNotOwner, http.StatusForbidden, "Visit belongs to another patient"},
	{commands.ErrForbidden, http.StatusForbidden, "Administrator access required"},
	{queries.ErrForbidden, http.StatusForbidden, "Administrator access required"},
	{queries.ErrVisitAccess, http.StatusForbidden, "Visit belongs to another patient"},
	{commands.ErrVisitNotFound, http.StatusNotFound, "Visit not found"},
	{queries.ErrVisitNotFound, http.StatusNotFound, "Visit not found"},
	{commands.ErrPatientNotFound, http.StatusNotFound, "Patient not found"},
	{queries.ErrPatientNotFound, http.StatusNotFound, "Patient not found"},
	{commands.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{commands.ErrAccountNotConfirmed, http.StatusForbidden, "Account not confirmed"},
	{commands.ErrInvalidConfirmationToken, http.StatusNotFound, "Invalid confirmation token"},
}

// respondError maps a use case error onto the HTTP error contract.
func respondError(c *gin.Context, err error) {
	var taken *commands.SlotTakenError
	if errs.As(err, &taken) {
		httperr.AbortWithError(c, http.StatusConflict, err, "Slot already taken", SlotTakenDetail{
			Date:           taken.Date.String(),
			Hour:           int(taken.Hour),
			AvailableHours: resdto.Hours(taken.Available),
		})
		return
	}

	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.message, nil)
			return
		}
	}

	slog.Error("unhandled use case error",
		"error", err.Error(),
		"path", c.FullPath(),
		"stack", errs.ExtractStackLines(err, 8),
	)
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

func badRequest(c *gin.Context, err error, msg string) {
	if fields := httperr.ValidationDetail(err); len(fields) > 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msg, fields)
		return
	}
	httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
}

// actorOrAbort reads the caller stored by the auth middleware.
func actorOrAbort(c *gin.Context) (patient.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoActor, "Authentication required", nil)
		return actor, false
	}
	return actor, true
}
