package api

import (
	"net/http"
	"strconv"

	reqdto "lab-reservation/internal/handler/dto/request"
	resdto "lab-reservation/internal/handler/dto/response"
	"lab-reservation/internal/handler/middleware"
	"lab-reservation/internal/usecase/commands"
	"lab-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ApprovalHandler struct {
	cmds commands.ApprovalCommands
	q    queries.BookingQueries
}

func NewApprovalHandler(cmds commands.ApprovalCommands, q queries.BookingQueries) *ApprovalHandler {
	return &ApprovalHandler{cmds: cmds, q: q}
}

// @Summary Pending approvals
// @Description Bookings awaiting a decision from the caller's roles
// @Tags approvals
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Per-queue page size (max 200)"
// @Success 200 {array} queries.BookingView
// @Router /approvals/pending [get]
func (h *ApprovalHandler) ListPending(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			abortBadRequest(c, err)
			return
		}
		limit = n
	}

	items, err := h.q.ListPending(c.Request.Context(), actor, limit)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Decide booking
// @Description Approve or reject at the teacher, admin or manager level
// @Tags approvals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param code path string true "Booking code"
// @Param request body reqdto.DecisionRequest true "Decision"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /approvals/{code} [post]
func (h *ApprovalHandler) Decide(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	var req reqdto.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	d, err := req.ToCommand()
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	b, err := h.cmds.Decide(c.Request.Context(), actor, c.Param("code"), d)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooking(b))
}

// @Summary Batch decide
// @Description Applies each decision independently; failures are reported per item
// @Tags approvals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BatchDecisionRequest true "Decisions"
// @Success 200 {object} resdto.BatchDecisionResponse
// @Failure 400 {object} httperr.Response
// @Router /approvals/batch [post]
func (h *ApprovalHandler) BatchDecide(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	var req reqdto.BatchDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	items, err := req.ToCommand()
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	results := h.cmds.BatchDecide(c.Request.Context(), actor, items)
	c.JSON(http.StatusOK, resdto.FromBatchResults(results))
}
