package booking

type SlotState string

const (
	SlotAvailable            SlotState = "available"
	SlotAvailableWithWarning SlotState = "available_with_warning"
	SlotBooked               SlotState = "booked"
	SlotDeviceUnavailable    SlotState = "device_unavailable"
)

type SlotAvailability struct {
	Slot   Slot
	State  SlotState
	Reason string
}

func (a SlotAvailability) Bookable() bool {
	return a.State == SlotAvailable || a.State == SlotAvailableWithWarning
}

// Occupancy maps a slot name to the applicant classes of its occupying
// bookings on one device and date.
type Occupancy map[string][]ApplicantClass

func (o Occupancy) IsOccupied(slot string) bool {
	return len(o[slot]) > 0
}

// EvaluateSlots reports every catalog slot independently. A class of ""
// evaluates without displacement, as an anonymous observer would see it.
func EvaluateSlots(catalog SlotCatalog, deviceAccepts bool, class ApplicantClass, occ Occupancy) []SlotAvailability {
	out := make([]SlotAvailability, 0, len(catalog.slots))
	for _, s := range catalog.slots {
		out = append(out, evaluate(s, deviceAccepts, class, occ[s.Name]))
	}
	return out
}

func evaluate(s Slot, deviceAccepts bool, class ApplicantClass, occupants []ApplicantClass) SlotAvailability {
	if !deviceAccepts {
		return SlotAvailability{Slot: s, State: SlotDeviceUnavailable, Reason: "device is under maintenance or discarded"}
	}
	if len(occupants) == 0 {
		return SlotAvailability{Slot: s, State: SlotAvailable}
	}
	for _, o := range occupants {
		if !class.Displaces(o) {
			return SlotAvailability{Slot: s, State: SlotBooked, Reason: "slot already booked"}
		}
	}
	return SlotAvailability{Slot: s, State: SlotAvailableWithWarning, Reason: "held by an external booking that will be displaced"}
}
