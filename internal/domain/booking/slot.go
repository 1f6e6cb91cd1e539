package booking

import (
	"fmt"
	"time"

	"lab-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

// Slot is one named window of the day, e.g. "08:00-10:00" or "morning".
// Start and End are wall-clock "HH:MM" in the booking time zone.
type Slot struct {
	Name  string
	Start string
	End   string
}

// EndOn returns the end of the slot on the given civil date in loc.
func (s Slot) EndOn(date time.Time, loc *time.Location) (time.Time, error) {
	t, err := time.Parse("15:04", s.End)
	if err != nil {
		return time.Time{}, errs.Mark(errs.Wrapf(err, "slot %q end time", s.Name), ErrInvalidCatalog)
	}
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, loc), nil
}

// SlotCatalog is the closed, ordered slot enumeration shared by
// availability checks and admission.
type SlotCatalog struct {
	slots []Slot
}

func NewSlotCatalog(slots []Slot) (SlotCatalog, error) {
	if len(slots) == 0 {
		return SlotCatalog{}, errs.Wrap(ErrInvalidCatalog, "no slots")
	}
	seen := make(map[string]struct{}, len(slots))
	for _, s := range slots {
		if s.Name == "" {
			return SlotCatalog{}, errs.Wrap(ErrInvalidCatalog, "empty slot name")
		}
		if _, dup := seen[s.Name]; dup {
			return SlotCatalog{}, errs.Wrapf(ErrInvalidCatalog, "duplicate slot %q", s.Name)
		}
		if _, err := time.Parse("15:04", s.Start); err != nil {
			return SlotCatalog{}, errs.Mark(errs.Wrapf(err, "slot %q start", s.Name), ErrInvalidCatalog)
		}
		if _, err := time.Parse("15:04", s.End); err != nil {
			return SlotCatalog{}, errs.Mark(errs.Wrapf(err, "slot %q end", s.Name), ErrInvalidCatalog)
		}
		seen[s.Name] = struct{}{}
	}
	return SlotCatalog{slots: append([]Slot(nil), slots...)}, nil
}

// DefaultCatalog is six two-hour windows from 08:00 to 20:00.
func DefaultCatalog() SlotCatalog {
	slots := make([]Slot, 0, 6)
	for h := 8; h < 20; h += 2 {
		start := fmt.Sprintf("%02d:00", h)
		end := fmt.Sprintf("%02d:00", h+2)
		slots = append(slots, Slot{Name: start + "-" + end, Start: start, End: end})
	}
	return SlotCatalog{slots: slots}
}

func (c SlotCatalog) Slots() []Slot {
	return append([]Slot(nil), c.slots...)
}

func (c SlotCatalog) Lookup(name string) (Slot, bool) {
	for _, s := range c.slots {
		if s.Name == name {
			return s, true
		}
	}
	return Slot{}, false
}

func (c SlotCatalog) Names() []string {
	out := make([]string, len(c.slots))
	for i, s := range c.slots {
		out[i] = s.Name
	}
	return out
}

// SlotKey identifies one bookable unit.
type SlotKey struct {
	DeviceID uuid.UUID
	Date     time.Time
	Slot     string
}

// LockKey is the string hashed into the per-key advisory lock.
func (k SlotKey) LockKey() string {
	return fmt.Sprintf("booking-slot:%s:%s:%s", k.DeviceID, k.Date.Format(time.DateOnly), k.Slot)
}
