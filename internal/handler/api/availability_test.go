//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"lab-reservation/internal/domain/booking"
	"lab-reservation/internal/domain/device"
	"lab-reservation/internal/handler/api"
	resdto "lab-reservation/internal/handler/dto/response"
	"lab-reservation/internal/usecase/queries"
	"lab-reservation/tests/common/builder"
	"lab-reservation/tests/common/httptest"
	queriesmock "lab-reservation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAvailabilityHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	setup := func(t *testing.T, roles func(*builder.UserBuilder) *builder.UserBuilder) (*gin.Engine, *queriesmock.MockAvailabilityQueries) {
		ctrl := gomock.NewController(t)
		q := queriesmock.NewMockAvailabilityQueries(ctrl)
		h := api.NewAvailabilityHandler(q)
		router := gin.New()
		router.GET("/devices/:code/availability", withActor(roles(builder.NewUserBuilder()).BuildActor(), h.Get))
		return router, q
	}

	t.Run("single slot reports occupancy", func(t *testing.T) {
		router, q := setup(t, (*builder.UserBuilder).AsExternal)
		q.EXPECT().IsOccupied(gomock.Any(), "D1", date, "08:00-10:00").Return(true, nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/devices/D1/availability?date=2025-06-10&slot=08:00-10:00", nil, "")

		var response resdto.SlotOccupancyResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &response)
		require.True(t, response.Occupied)
		require.Equal(t, "2025-06-10", response.Date)
	})

	t.Run("full day is evaluated for the caller's class", func(t *testing.T) {
		router, q := setup(t, (*builder.UserBuilder).AsStudent)
		view := &queries.AvailabilityView{DeviceCode: "D1", DeviceStatus: "available", Date: date, Slots: []queries.SlotAvailabilityView{
			{Slot: "08:00-10:00", State: string(booking.SlotAvailableWithWarning)},
		}}
		q.EXPECT().ListAvailableSlots(gomock.Any(), "D1", date, booking.ClassStudent).Return(view, nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/devices/D1/availability?date=2025-06-10", nil, "")

		var response queries.AvailabilityView
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &response)
		require.Len(t, response.Slots, 1)
	})

	t.Run("staff without an applicant role see plain occupancy", func(t *testing.T) {
		router, q := setup(t, (*builder.UserBuilder).AsAdmin)
		q.EXPECT().ListAvailableSlots(gomock.Any(), "D1", date, booking.ApplicantClass("")).
			Return(&queries.AvailabilityView{DeviceCode: "D1"}, nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/devices/D1/availability?date=2025-06-10", nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("date is required", func(t *testing.T) {
		router, _ := setup(t, (*builder.UserBuilder).AsExternal)
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/devices/D1/availability", nil, "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown device", func(t *testing.T) {
		router, q := setup(t, (*builder.UserBuilder).AsExternal)
		q.EXPECT().ListAvailableSlots(gomock.Any(), "NOPE", date, booking.ClassExternal).Return(nil, device.ErrNotFound)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/devices/NOPE/availability?date=2025-06-10", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "Device not found")
	})
}
