//go:build unit

package device_test

import (
	"testing"
	"time"

	"lab-reservation/internal/domain/device"
	"lab-reservation/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDevice(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		d, err := builder.NewDeviceBuilder().BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, device.StatusAvailable, d.Status())
		assert.True(t, d.AcceptsBookings())
	})

	t.Run("コード空NG", func(t *testing.T) {
		_, err := builder.NewDeviceBuilder().WithCode("  ").BuildDomain()
		require.ErrorIs(t, err, device.ErrInvalidCode)
	})

	t.Run("負の価格NG", func(t *testing.T) {
		_, err := builder.NewDeviceBuilder().With(func(b *builder.DeviceBuilder) {
			b.PriceExternal = decimal.NewFromInt(-1)
		}).BuildDomain()
		require.ErrorIs(t, err, device.ErrNegativePrice)
	})
}

func TestChangeStatus(t *testing.T) {
	now := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	t.Run("保守中は予約を受け付けない", func(t *testing.T) {
		d := builder.NewDeviceBuilder().BuildStored()
		require.NoError(t, d.ChangeStatus(device.StatusMaintenance, now))
		assert.False(t, d.AcceptsBookings())
		assert.Equal(t, now, d.UpdatedAt())

		require.NoError(t, d.ChangeStatus(device.StatusAvailable, now))
		assert.True(t, d.AcceptsBookings())
	})

	t.Run("廃棄済みは変更不可", func(t *testing.T) {
		d := builder.NewDeviceBuilder().Discarded().BuildStored()
		require.ErrorIs(t, d.ChangeStatus(device.StatusAvailable, now), device.ErrDiscardedIsTerminal)
		assert.False(t, d.AcceptsBookings())
	})

	t.Run("同一状態NG", func(t *testing.T) {
		d := builder.NewDeviceBuilder().BuildStored()
		require.ErrorIs(t, d.ChangeStatus(device.StatusAvailable, now), device.ErrStatusUnchanged)
	})

	t.Run("未知の状態NG", func(t *testing.T) {
		d := builder.NewDeviceBuilder().BuildStored()
		require.ErrorIs(t, d.ChangeStatus(device.PhysicalStatus("lost"), now), device.ErrInvalidStatus)
	})
}
