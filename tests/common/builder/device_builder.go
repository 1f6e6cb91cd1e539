//go:build unit || e2e

package builder

import (
	"time"

	"lab-reservation/internal/domain/device"
	"lab-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DeviceBuilder struct {
	ID            uuid.UUID
	Code          string
	Model         string
	Manufacturer  string
	Status        string
	PriceInternal decimal.Decimal
	PriceExternal decimal.Decimal
	Now           time.Time
}

func NewDeviceBuilder() *DeviceBuilder {
	return &DeviceBuilder{
		ID:            uuid.New(),
		Code:          "D1",
		Model:         "Confocal Microscope LSM 900",
		Manufacturer:  "Zeiss",
		Status:        "available",
		PriceInternal: decimal.RequireFromString("20.00"),
		PriceExternal: decimal.RequireFromString("100.00"),
		Now:           time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (d *DeviceBuilder) With(mutate func(*DeviceBuilder)) *DeviceBuilder {
	mutate(d)
	return d
}

// Build methods
func (d *DeviceBuilder) BuildDomain() (*device.Device, error) {
	return device.NewDevice(d.Code, d.Model, d.Manufacturer, d.PriceInternal, d.PriceExternal, d.Now)
}

func (d *DeviceBuilder) BuildStored() *device.Device {
	return device.ReconstructDevice(d.ID, d.Code, d.Model, d.Manufacturer, device.PhysicalStatus(d.Status),
		d.PriceInternal, d.PriceExternal, d.Now, d.Now)
}

func (d *DeviceBuilder) BuildView() *queries.DeviceView {
	return &queries.DeviceView{
		ID:            d.ID,
		Code:          d.Code,
		Model:         d.Model,
		Manufacturer:  d.Manufacturer,
		Status:        d.Status,
		PriceInternal: d.PriceInternal,
		PriceExternal: d.PriceExternal,
		CreatedAt:     d.Now,
		UpdatedAt:     d.Now,
	}
}

// Fluent builder methods
func (d *DeviceBuilder) WithCode(code string) *DeviceBuilder {
	d.Code = code
	return d
}

func (d *DeviceBuilder) WithExternalPrice(price string) *DeviceBuilder {
	d.PriceExternal = decimal.RequireFromString(price)
	return d
}

func (d *DeviceBuilder) InMaintenance() *DeviceBuilder {
	d.Status = "maintenance"
	return d
}

func (d *DeviceBuilder) Discarded() *DeviceBuilder {
	d.Status = "discarded"
	return d
}
