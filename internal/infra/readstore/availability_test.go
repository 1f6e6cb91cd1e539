//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"lab-reservation/internal/domain/booking"
	"lab-reservation/internal/infra"
	"lab-reservation/internal/infra/readstore"
	"lab-reservation/tests/common/dbtest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAvailabilityReadStore_Occupancy(t *testing.T) {
	ctx := context.Background()
	deviceID := uuid.New()
	date := time.Date(2026, 10, 21, 0, 0, 0, 0, time.UTC)

	t.Run("groups occupying classes by slot", func(t *testing.T) {
		db := new(dbtest.MockDBTX)
		db.On("Query", ctx, mock.Anything, mock.MatchedBy(func(args []any) bool {
			return len(args) == 2+len(booking.OccupiedStatuses) && args[0] == date && args[1] == deviceID.String()
		})).Return(&dbtest.FakeRows{Rows: [][]any{
			{"08:00-10:00", "external"},
			{"10:00-12:00", "student"},
		}}, nil)

		occ, err := readstore.NewAvailabilityReadStore(db).Occupancy(ctx, deviceID, date)

		require.NoError(t, err)
		assert.Equal(t, []booking.ApplicantClass{booking.ClassExternal}, occ["08:00-10:00"])
		assert.True(t, occ.IsOccupied("10:00-12:00"))
		assert.False(t, occ.IsOccupied("12:00-14:00"))
	})

	t.Run("query failure is a db failure", func(t *testing.T) {
		db := new(dbtest.MockDBTX)
		db.On("Query", ctx, mock.Anything, mock.Anything).Return(nil, assert.AnError)

		_, err := readstore.NewAvailabilityReadStore(db).Occupancy(ctx, deviceID, date)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
