package api

import (
	"net/http"

	reqdto "clinic-booking/internal/handler/dto/request"
	resdto "clinic-booking/internal/handler/dto/response"
	"clinic-booking/internal/usecase/commands"
	"clinic-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler serves the administrator-only routes. The use cases check
// capabilities themselves; RequireAdmin only rejects early.
type AdminHandler struct {
	booking  commands.BookingCommands
	visits   queries.VisitQueries
	patients queries.PatientQueries
}

func NewAdminHandler(
	bookingCommands commands.BookingCommands,
	visitQueries queries.VisitQueries,
	patientQueries queries.PatientQueries,
) *AdminHandler {
	return &AdminHandler{
		booking:  bookingCommands,
		visits:   visitQueries,
		patients: patientQueries,
	}
}

// @Summary Block a slot
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BlockRequest true "Slot"
// @Success 201 {object} resdto.VisitResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/admin/blocks [post]
func (h *AdminHandler) Block(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	var req reqdto.BlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}
	date, at, err := req.ToSlot()
	if err != nil {
		badRequest(c, err, "Invalid date or time")
		return
	}

	view, err := h.booking.Block(c.Request.Context(), actor, date, at)
	if err != nil {
		respondError(c, err)
		return
	}
	writeVisit(c, http.StatusCreated, view)
}

// @Summary Register a walk-in patient and book
// @Description Creates a confirmed patient without password and books the slot in one transaction.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.WalkInRequest true "Patient and slot"
// @Success 201 {object} resdto.WalkInResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/admin/walk-ins [post]
func (h *AdminHandler) WalkIn(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	var req reqdto.WalkInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}
	date, at, err := req.ToSlot()
	if err != nil {
		badRequest(c, err, "Invalid date or time")
		return
	}

	result, err := h.booking.RegisterAndBook(c.Request.Context(), actor, req.ToInput(), date, at)
	if err != nil {
		respondError(c, err)
		return
	}

	patientRes, err := resdto.FromPatientView(result.Patient)
	if err != nil {
		respondError(c, err)
		return
	}
	visitRes, err := resdto.FromVisitView(result.Visit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Location", "/api/visits/"+result.Visit.ID.String())
	c.JSON(http.StatusCreated, resdto.WalkInResponse{Patient: patientRes, Visit: visitRes})
}

// @Summary List visits
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date (YYYY-MM-DD)"
// @Param kind query string false "booking or block"
// @Param patient_id query string false "Patient ID"
// @Param confirmed query bool false "Confirmation state"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {object} resdto.VisitPageResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/admin/visits [get]
func (h *AdminHandler) ListVisits(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	var q reqdto.VisitListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err, "Invalid filter")
		return
	}
	filter, err := q.ToFilter()
	if err != nil {
		badRequest(c, err, "Invalid filter")
		return
	}

	page, err := h.visits.List(c.Request.Context(), actor, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	res, err := resdto.FromVisitPage(page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List patients
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param search query string false "Matches email, first or last name"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {object} resdto.PatientPageResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/admin/patients [get]
func (h *AdminHandler) ListPatients(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	var q reqdto.PatientListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err, "Invalid filter")
		return
	}

	page, err := h.patients.List(c.Request.Context(), actor, q.ToFilter())
	if err != nil {
		respondError(c, err)
		return
	}
	res, err := resdto.FromPatientPage(page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get patient
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Patient ID"
// @Success 200 {object} resdto.PatientDetailResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/patients/{id} [get]
func (h *AdminHandler) GetPatient(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, err, "Invalid patient ID format")
		return
	}

	view, err := h.patients.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	res, err := resdto.FromPatientDetail(view)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
