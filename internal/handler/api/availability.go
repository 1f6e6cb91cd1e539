package api

import (
	"net/http"
	"time"

	"lab-reservation/internal/domain/booking"
	reqdto "lab-reservation/internal/handler/dto/request"
	resdto "lab-reservation/internal/handler/dto/response"
	"lab-reservation/internal/handler/middleware"
	"lab-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary Device availability
// @Description Per-slot availability for one date as seen by the caller. With slot set, only reports occupancy of that slot.
// @Tags devices
// @Produce json
// @Security BearerAuth
// @Param code path string true "Device code"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param slot query string false "Single slot to check"
// @Success 200 {object} queries.AvailabilityView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /devices/{code}/availability [get]
func (h *AvailabilityHandler) Get(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBadRequest(c, err)
		return
	}
	date, err := time.Parse(time.DateOnly, q.Date)
	if err != nil {
		abortBadRequest(c, err)
		return
	}
	code := c.Param("code")

	if q.Slot != "" {
		occupied, err := h.q.IsOccupied(c.Request.Context(), code, date, q.Slot)
		if err != nil {
			abortWithDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, resdto.SlotOccupancyResponse{
			DeviceCode: code,
			Date:       q.Date,
			Slot:       q.Slot,
			Occupied:   occupied,
		})
		return
	}

	// accounts without an applicant role see plain occupancy
	class, _ := booking.ClassOf(actor.Roles)
	view, err := h.q.ListAvailableSlots(c.Request.Context(), code, date, class)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
