package response

import (
	"time"

	"lab-reservation/internal/domain/device"
	"lab-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type DeviceResponse struct {
	ID            uuid.UUID       `json:"id"`
	Code          string          `json:"code"`
	Model         string          `json:"model"`
	Manufacturer  string          `json:"manufacturer"`
	Status        string          `json:"status"`
	PriceInternal decimal.Decimal `json:"price_internal"`
	PriceExternal decimal.Decimal `json:"price_external"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func FromDeviceView(v *queries.DeviceView) (*DeviceResponse, error) {
	var resp DeviceResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromDeviceViews(views []*queries.DeviceView) ([]*DeviceResponse, error) {
	out := make([]*DeviceResponse, 0, len(views))
	for _, v := range views {
		resp, err := FromDeviceView(v)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

func FromDevice(d *device.Device) *DeviceResponse {
	return &DeviceResponse{
		ID:            d.ID(),
		Code:          d.Code(),
		Model:         d.Model(),
		Manufacturer:  d.Manufacturer(),
		Status:        d.Status().String(),
		PriceInternal: d.PriceInternal(),
		PriceExternal: d.PriceExternal(),
		UpdatedAt:     d.UpdatedAt(),
	}
}
