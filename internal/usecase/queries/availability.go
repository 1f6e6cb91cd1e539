package queries

import (
	"context"
	"time"

	"lab-reservation/internal/domain/booking"
	"lab-reservation/internal/domain/device"
	"lab-reservation/internal/infra"

	"github.com/google/uuid"
)

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/queries/availability_mock.go -package=queriesmock

type AvailabilityQueries interface {
	IsOccupied(ctx context.Context, deviceCode string, date time.Time, slot string) (bool, error)
	// ListAvailableSlots reports every catalog slot for the device and date
	// as seen by an applicant of the given class. An empty class sees no
	// displacement warnings.
	ListAvailableSlots(ctx context.Context, deviceCode string, date time.Time, class booking.ApplicantClass) (*AvailabilityView, error)
}

type AvailabilityReadStore interface {
	FindDevice(ctx context.Context, code string) (*DeviceView, error)
	// Occupancy groups occupying bookings of one device and date by slot.
	Occupancy(ctx context.Context, deviceID uuid.UUID, date time.Time) (booking.Occupancy, error)
}

type availabilityQueriesImpl struct {
	readStore AvailabilityReadStore
	catalog   booking.SlotCatalog
}

func NewAvailabilityQueries(readStore AvailabilityReadStore, catalog booking.SlotCatalog) AvailabilityQueries {
	return &availabilityQueriesImpl{readStore: readStore, catalog: catalog}
}

func (q *availabilityQueriesImpl) IsOccupied(ctx context.Context, deviceCode string, date time.Time, slot string) (bool, error) {
	if _, ok := q.catalog.Lookup(slot); !ok {
		return false, booking.ErrInvalidSlot
	}
	dev, err := q.findDevice(ctx, deviceCode)
	if err != nil {
		return false, err
	}
	occ, err := q.readStore.Occupancy(ctx, dev.ID, booking.DateOf(date))
	if err != nil {
		return false, err
	}
	return occ.IsOccupied(slot), nil
}

func (q *availabilityQueriesImpl) ListAvailableSlots(ctx context.Context, deviceCode string, date time.Time, class booking.ApplicantClass) (*AvailabilityView, error) {
	dev, err := q.findDevice(ctx, deviceCode)
	if err != nil {
		return nil, err
	}
	date = booking.DateOf(date)

	accepts := dev.Status == string(device.StatusAvailable)
	occ := booking.Occupancy{}
	if accepts {
		occ, err = q.readStore.Occupancy(ctx, dev.ID, date)
		if err != nil {
			return nil, err
		}
	}

	evaluated := booking.EvaluateSlots(q.catalog, accepts, class, occ)
	slots := make([]SlotAvailabilityView, 0, len(evaluated))
	for _, a := range evaluated {
		slots = append(slots, SlotAvailabilityView{
			Slot:   a.Slot.Name,
			Start:  a.Slot.Start,
			End:    a.Slot.End,
			State:  string(a.State),
			Reason: a.Reason,
		})
	}

	return &AvailabilityView{
		DeviceCode:   dev.Code,
		DeviceStatus: dev.Status,
		Date:         date,
		Slots:        slots,
	}, nil
}

func (q *availabilityQueriesImpl) findDevice(ctx context.Context, code string) (*DeviceView, error) {
	dev, err := q.readStore.FindDevice(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, device.ErrNotFound
		}
		return nil, err
	}
	return dev, nil
}
