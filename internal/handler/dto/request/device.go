package request

type ChangeDeviceStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=available maintenance discarded"`
	Reason string `json:"reason" binding:"max=500"`
}

type ListDevicesQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=available maintenance discarded"`
}
