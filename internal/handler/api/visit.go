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

type VisitHandler struct {
	commands commands.BookingCommands
	queries  queries.VisitQueries
}

func NewVisitHandler(bookingCommands commands.BookingCommands, visitQueries queries.VisitQueries) *VisitHandler {
	return &VisitHandler{
		commands: bookingCommands,
		queries:  visitQueries,
	}
}

// @Summary Book a visit
// @Description Books the slot for the caller. An administrator may set patient_id to book for someone else.
// @Tags visits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BookVisitRequest true "Slot"
// @Success 201 {object} resdto.VisitResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response "Slot taken (detail.available_hours) or already booked"
// @Failure 422 {object} httperr.Response
// @Router /api/visits [post]
func (h *VisitHandler) Book(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	var req reqdto.BookVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}
	date, at, err := req.ToSlot()
	if err != nil {
		badRequest(c, err, "Invalid date or time")
		return
	}

	view, err := h.commands.Book(c.Request.Context(), actor, req.Target(actor.ID), date, at)
	if err != nil {
		respondError(c, err)
		return
	}
	writeVisit(c, http.StatusCreated, view)
}

// @Summary My visits
// @Tags visits
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.VisitResponse
// @Failure 401 {object} httperr.Response
// @Router /api/visits [get]
func (h *VisitHandler) ListMine(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	views, err := h.queries.ListMine(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	res, err := resdto.FromVisitViews(views)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get visit
// @Tags visits
// @Produce json
// @Security BearerAuth
// @Param id path string true "Visit ID"
// @Success 200 {object} resdto.VisitResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/visits/{id} [get]
func (h *VisitHandler) Get(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, err, "Invalid visit ID format")
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}
	writeVisit(c, http.StatusOK, view)
}

// @Summary Cancel visit
// @Description Patients cancel their own visits; the administrator may cancel any.
// @Tags visits
// @Security BearerAuth
// @Param id path string true "Visit ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/visits/{id} [delete]
func (h *VisitHandler) Cancel(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, err, "Invalid visit ID format")
		return
	}

	if err := h.commands.Cancel(c.Request.Context(), actor, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func writeVisit(c *gin.Context, status int, view *queries.VisitView) {
	res, err := resdto.FromVisitView(view)
	if err != nil {
		respondError(c, err)
		return
	}
	if status == http.StatusCreated {
		c.Header("Location", "/api/visits/"+view.ID.String())
	}
	c.JSON(status, res)
}
