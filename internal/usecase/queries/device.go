package queries

import (
	"context"

	"lab-reservation/internal/domain/device"
	"lab-reservation/internal/infra"
)

//go:generate mockgen -source=device.go -destination=../../../tests/mock/queries/device_mock.go -package=queriesmock

type DeviceQueries interface {
	List(ctx context.Context, status *device.PhysicalStatus) ([]*DeviceView, error)
	GetByCode(ctx context.Context, code string) (*DeviceView, error)
}

type DeviceReadStore interface {
	List(ctx context.Context, status *string) ([]*DeviceView, error)
	FindByCode(ctx context.Context, code string) (*DeviceView, error)
}

type deviceQueriesImpl struct {
	readStore DeviceReadStore
}

func NewDeviceQueries(readStore DeviceReadStore) DeviceQueries {
	return &deviceQueriesImpl{readStore: readStore}
}

func (q *deviceQueriesImpl) List(ctx context.Context, status *device.PhysicalStatus) ([]*DeviceView, error) {
	var filter *string
	if status != nil {
		s := string(*status)
		filter = &s
	}
	return q.readStore.List(ctx, filter)
}

func (q *deviceQueriesImpl) GetByCode(ctx context.Context, code string) (*DeviceView, error) {
	v, err := q.readStore.FindByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, device.ErrNotFound
		}
		return nil, err
	}
	return v, nil
}
