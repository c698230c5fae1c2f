package api

import (
	"net/http"

	reqdto "clinic-booking/internal/handler/dto/request"
	resdto "clinic-booking/internal/handler/dto/response"
	"clinic-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	queries queries.AvailabilityQueries
}

func NewAvailabilityHandler(availabilityQueries queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{queries: availabilityQueries}
}

// @Summary Free slots of a day
// @Tags availability
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /api/availability [get]
func (h *AvailabilityHandler) Day(c *gin.Context) {
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err, "Invalid date, expected YYYY-MM-DD")
		return
	}
	date, err := q.ToDate()
	if err != nil {
		badRequest(c, err, "Invalid date, expected YYYY-MM-DD")
		return
	}

	hours, err := h.queries.AvailableSlots(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewAvailabilityResponse(date, hours))
}

// @Summary Seven-day booking window
// @Description Returns the window starting at anchor after moving it by direction. Without anchor the window starts tomorrow; it never starts earlier.
// @Tags availability
// @Produce json
// @Param anchor query string false "Window start (YYYY-MM-DD)"
// @Param direction query string false "next or prev"
// @Success 200 {object} resdto.WeekResponse
// @Failure 400 {object} httperr.Response
// @Router /api/availability/week [get]
func (h *AvailabilityHandler) Week(c *gin.Context) {
	var q reqdto.WeekQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err, "Invalid window parameters")
		return
	}
	anchor, dir, err := q.ToWindow()
	if err != nil {
		badRequest(c, err, "Invalid window parameters")
		return
	}

	week, err := h.queries.Week(c.Request.Context(), anchor, dir)
	if err != nil {
		respondError(c, err)
		return
	}

	res, err := resdto.FromWeekView(week)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
