package slotcatalog

import (
	"lab-reservation/internal/domain/booking"
	"lab-reservation/internal/pkg/errs"

	"github.com/BurntSushi/toml"
)

// file is the on-disk shape:
//
//	[[slot]]
//	name  = "morning"
//	start = "08:00"
//	end   = "12:00"
type file struct {
	Slots []struct {
		Name  string `toml:"name"`
		Start string `toml:"start"`
		End   string `toml:"end"`
	} `toml:"slot"`
}

// Load reads a slot catalog. An empty path yields the default two-hour grid.
func Load(path string) (booking.SlotCatalog, error) {
	if path == "" {
		return booking.DefaultCatalog(), nil
	}

	var f file
	meta, err := toml.DecodeFile(path, &f)
	if err != nil {
		return booking.SlotCatalog{}, errs.Mark(errs.Wrapf(err, "failed to read slot catalog %s", path), booking.ErrInvalidCatalog)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return booking.SlotCatalog{}, errs.Wrapf(booking.ErrInvalidCatalog, "slot catalog %s: unknown keys %v", path, undecoded)
	}
	return build(f)
}

// Parse decodes catalog TOML held in memory.
func Parse(data string) (booking.SlotCatalog, error) {
	var f file
	if _, err := toml.Decode(data, &f); err != nil {
		return booking.SlotCatalog{}, errs.Mark(errs.Wrap(err, "failed to parse slot catalog"), booking.ErrInvalidCatalog)
	}
	return build(f)
}

func build(f file) (booking.SlotCatalog, error) {
	slots := make([]booking.Slot, 0, len(f.Slots))
	for _, s := range f.Slots {
		slots = append(slots, booking.Slot{Name: s.Name, Start: s.Start, End: s.End})
	}
	return booking.NewSlotCatalog(slots)
}
