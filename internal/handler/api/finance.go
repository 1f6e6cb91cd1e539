package api

import (
	"net/http"

	reqdto "lab-reservation/internal/handler/dto/request"
	resdto "lab-reservation/internal/handler/dto/response"
	"lab-reservation/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type FinanceHandler struct {
	cmds commands.PaymentCommands
}

func NewFinanceHandler(cmds commands.PaymentCommands) *FinanceHandler {
	return &FinanceHandler{cmds: cmds}
}

// @Summary Payment callback
// @Description Called by the finance office when a fee is paid or has failed. Redelivery is safe.
// @Tags finance
// @Accept json
// @Produce json
// @Param X-Finance-Token header string true "Shared finance token"
// @Param request body reqdto.PaymentCallbackRequest true "Payment notice"
// @Success 200 {object} resdto.PaymentCallbackResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /finance/callback [post]
func (h *FinanceHandler) Callback(c *gin.Context) {
	var req reqdto.PaymentCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	out, err := h.cmds.HandlePaymentCallback(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.PaymentCallbackResponse{
		BookingCode: out.Booking.Code(),
		Status:      out.Booking.Status().String(),
		Applied:     out.Applied,
	})
}
