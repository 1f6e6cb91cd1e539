//go:build unit

package booking_test

import (
	"testing"

	"lab-reservation/internal/domain/booking"
	"lab-reservation/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stateOf(t *testing.T, got []booking.SlotAvailability, slot string) booking.SlotState {
	t.Helper()
	for _, a := range got {
		if a.Slot.Name == slot {
			return a.State
		}
	}
	t.Fatalf("slot %s missing", slot)
	return ""
}

func TestEvaluateSlots(t *testing.T) {
	catalog := booking.DefaultCatalog()

	t.Run("スロットは独立に評価", func(t *testing.T) {
		occ := booking.Occupancy{"08:00-10:00": {booking.ClassTeacher}}
		got := booking.EvaluateSlots(catalog, true, booking.ClassStudent, occ)

		require.Len(t, got, 6)
		assert.Equal(t, booking.SlotBooked, stateOf(t, got, "08:00-10:00"))
		for _, name := range catalog.Names()[1:] {
			assert.Equal(t, booking.SlotAvailable, stateOf(t, got, name))
		}
	})

	t.Run("保守中の機器は全スロット利用不可", func(t *testing.T) {
		got := booking.EvaluateSlots(catalog, false, booking.ClassTeacher, booking.Occupancy{})
		for _, a := range got {
			assert.Equal(t, booking.SlotDeviceUnavailable, a.State)
			assert.False(t, a.Bookable())
		}
	})

	t.Run("学外のみの占有は学内から見て警告付き空き", func(t *testing.T) {
		occ := booking.Occupancy{"10:00-12:00": {booking.ClassExternal}}

		internal := booking.EvaluateSlots(catalog, true, booking.ClassStudent, occ)
		assert.Equal(t, booking.SlotAvailableWithWarning, stateOf(t, internal, "10:00-12:00"))

		external := booking.EvaluateSlots(catalog, true, booking.ClassExternal, occ)
		assert.Equal(t, booking.SlotBooked, stateOf(t, external, "10:00-12:00"))
	})

	t.Run("学外と学内が混在すれば予約済み", func(t *testing.T) {
		occ := booking.Occupancy{"10:00-12:00": {booking.ClassExternal, booking.ClassStudent}}
		got := booking.EvaluateSlots(catalog, true, booking.ClassTeacher, occ)
		assert.Equal(t, booking.SlotBooked, stateOf(t, got, "10:00-12:00"))
	})
}

func TestOccupancySet(t *testing.T) {
	occupying := map[booking.Status]bool{}
	for _, s := range booking.OccupiedStatuses {
		occupying[s] = true
	}
	all := []booking.Status{
		booking.StatusTeacherPending, booking.StatusPending, booking.StatusAdminApproved,
		booking.StatusManagerApproved, booking.StatusPaymentPending, booking.StatusTeacherRejected,
		booking.StatusAdminRejected, booking.StatusManagerRejected, booking.StatusCancelled,
	}
	for _, s := range all {
		assert.Equal(t, occupying[s], s.Occupies(), s)
		assert.Equal(t, !occupying[s], s.IsTerminal(), s)
	}
}

func TestSlotCatalog(t *testing.T) {
	t.Run("既定は2時間枠が6つ", func(t *testing.T) {
		c := booking.DefaultCatalog()
		assert.Equal(t, []string{
			"08:00-10:00", "10:00-12:00", "12:00-14:00", "14:00-16:00", "16:00-18:00", "18:00-20:00",
		}, c.Names())
		_, ok := c.Lookup("07:00-08:00")
		assert.False(t, ok)
	})

	t.Run("重複名NG", func(t *testing.T) {
		_, err := booking.NewSlotCatalog([]booking.Slot{
			{Name: "morning", Start: "08:00", End: "12:00"},
			{Name: "morning", Start: "13:00", End: "17:00"},
		})
		assert.True(t, errs.Is(err, booking.ErrInvalidCatalog))
	})

	t.Run("時刻形式NG", func(t *testing.T) {
		_, err := booking.NewSlotCatalog([]booking.Slot{{Name: "late", Start: "8am", End: "10:00"}})
		assert.True(t, errs.Is(err, booking.ErrInvalidCatalog))
		assert.Contains(t, err.Error(), `slot "late" start`)
	})

	t.Run("空カタログNG", func(t *testing.T) {
		_, err := booking.NewSlotCatalog(nil)
		assert.True(t, errs.Is(err, booking.ErrInvalidCatalog))
	})

	t.Run("午前午後終日の構成", func(t *testing.T) {
		c, err := booking.NewSlotCatalog([]booking.Slot{
			{Name: "morning", Start: "08:00", End: "12:00"},
			{Name: "afternoon", Start: "13:00", End: "17:00"},
			{Name: "full-day", Start: "08:00", End: "17:00"},
		})
		require.NoError(t, err)
		s, ok := c.Lookup("full-day")
		require.True(t, ok)
		assert.Equal(t, "17:00", s.End)
	})
}

func TestRefund(t *testing.T) {
	assert.Equal(t, "95.00", booking.RefundFor(booking.PaymentFor(booking.ClassExternal, mustDec("100"))).StringFixed(2))
	assert.Equal(t, "0.95", booking.RefundFor(mustDec("1")).StringFixed(2))
	assert.Equal(t, "33.24", booking.RefundFor(mustDec("34.99")).StringFixed(2))
	assert.True(t, booking.PaymentFor(booking.ClassStudent, mustDec("100")).IsZero())
	assert.True(t, booking.PaymentFor(booking.ClassTeacher, mustDec("100")).IsZero())
}

func mustDec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
