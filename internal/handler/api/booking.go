package api

import (
	"net/http"

	reqdto "lab-reservation/internal/handler/dto/request"
	resdto "lab-reservation/internal/handler/dto/response"
	"lab-reservation/internal/handler/middleware"
	"lab-reservation/internal/usecase/commands"
	"lab-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Reserve a device slot. Internal applicants may displace external occupants.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	result, err := h.cmds.CreateBooking(c.Request.Context(), actor, cmd)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCreateResult(result))
}

// @Summary List my bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param status query []string false "Status filter" collectionFormat(multi)
// @Param after query string false "Cursor from a previous page"
// @Param limit query int false "Page size (max 200)"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	var q reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBadRequest(c, err)
		return
	}
	statuses, err := q.Statuses()
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	var after *queries.Cursor
	if q.After != "" {
		after = &queries.Cursor{After: q.After}
	}

	items, next, err := h.q.ListMine(c.Request.Context(), actor, queries.BookingFilter{Statuses: statuses}, after, q.Limit)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	resp := resdto.BookingListResponse{Items: items}
	if next != nil {
		resp.NextCursor = next.After
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get booking
// @Description Booking detail with its approval trail
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param code path string true "Booking code"
// @Success 200 {object} queries.BookingDetailView
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{code} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	view, err := h.q.GetByCode(c.Request.Context(), actor, c.Param("code"))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Cancel booking
// @Description Applicant cancels before the slot's start date. Paid fees are refunded at 95%.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param code path string true "Booking code"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{code}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	b, err := h.cmds.Cancel(c.Request.Context(), actor, c.Param("code"))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooking(b))
}

// @Summary Record device return
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param code path string true "Booking code"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{code}/return [post]
func (h *BookingHandler) RecordReturn(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	b, err := h.cmds.RecordReturn(c.Request.Context(), actor, c.Param("code"))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooking(b))
}
