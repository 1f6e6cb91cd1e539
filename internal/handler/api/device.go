package api

import (
	"net/http"

	"lab-reservation/internal/domain/device"
	reqdto "lab-reservation/internal/handler/dto/request"
	resdto "lab-reservation/internal/handler/dto/response"
	"lab-reservation/internal/handler/middleware"
	"lab-reservation/internal/usecase/commands"
	"lab-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DeviceHandler struct {
	cmds commands.DeviceCommands
	q    queries.DeviceQueries
}

func NewDeviceHandler(cmds commands.DeviceCommands, q queries.DeviceQueries) *DeviceHandler {
	return &DeviceHandler{cmds: cmds, q: q}
}

// @Summary List devices
// @Tags devices
// @Produce json
// @Param status query string false "Physical status filter"
// @Success 200 {array} resdto.DeviceResponse
// @Failure 400 {object} httperr.Response
// @Router /devices [get]
func (h *DeviceHandler) List(c *gin.Context) {
	var q reqdto.ListDevicesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBadRequest(c, err)
		return
	}
	var status *device.PhysicalStatus
	if q.Status != "" {
		s := device.PhysicalStatus(q.Status)
		status = &s
	}

	views, err := h.q.List(c.Request.Context(), status)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	resp, err := resdto.FromDeviceViews(views)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get device
// @Tags devices
// @Produce json
// @Param code path string true "Device code"
// @Success 200 {object} resdto.DeviceResponse
// @Failure 404 {object} httperr.Response
// @Router /devices/{code} [get]
func (h *DeviceHandler) Get(c *gin.Context) {
	view, err := h.q.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	resp, err := resdto.FromDeviceView(view)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Change device status
// @Description Admin only. Discarding writes a ledger entry and is final.
// @Tags devices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param code path string true "Device code"
// @Param request body reqdto.ChangeDeviceStatusRequest true "New status"
// @Success 200 {object} resdto.DeviceResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /devices/{code}/status [put]
func (h *DeviceHandler) ChangeStatus(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}
	var req reqdto.ChangeDeviceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}
	to, err := device.NewPhysicalStatus(req.Status)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	d, err := h.cmds.ChangeStatus(c.Request.Context(), actor, c.Param("code"), to, req.Reason)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDevice(d))
}
