//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"lab-reservation/internal/domain/device"
	"lab-reservation/internal/domain/identity"
	"lab-reservation/internal/handler/api"
	reqdto "lab-reservation/internal/handler/dto/request"
	resdto "lab-reservation/internal/handler/dto/response"
	"lab-reservation/internal/usecase/queries"
	"lab-reservation/tests/common/builder"
	"lab-reservation/tests/common/httptest"
	commandsmock "lab-reservation/tests/mock/commands"
	queriesmock "lab-reservation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DeviceHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockDeviceCommands
	mockQueries  *queriesmock.MockDeviceQueries
	actor        identity.Actor
}

func (s *DeviceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockDeviceCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockDeviceQueries(s.mockCtrl)
	s.actor = builder.NewUserBuilder().AsAdmin().BuildActor()
	h := api.NewDeviceHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/devices", h.List)
	s.router.GET("/devices/:code", h.Get)
	s.router.PUT("/devices/:code/status", withActor(s.actor, h.ChangeStatus))
}

func (s *DeviceHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDeviceHandlerSuite(t *testing.T) {
	suite.Run(t, new(DeviceHandlerTestSuite))
}

func (s *DeviceHandlerTestSuite) TestList() {
	s.Run("success: lists every device", func() {
		views := []*queries.DeviceView{
			builder.NewDeviceBuilder().BuildView(),
			builder.NewDeviceBuilder().WithCode("D2").InMaintenance().BuildView(),
		}
		s.mockQueries.EXPECT().List(gomock.Any(), (*device.PhysicalStatus)(nil)).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/devices", nil, "")

		var response []resdto.DeviceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal("D1", response[0].Code)
		s.Equal("maintenance", response[1].Status)
		s.True(views[0].PriceExternal.Equal(response[0].PriceExternal))
	})

	s.Run("success: filters by status", func() {
		want := device.StatusMaintenance
		s.mockQueries.EXPECT().List(gomock.Any(), &want).Return([]*queries.DeviceView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/devices?status=maintenance", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})
}

func (s *DeviceHandlerTestSuite) TestGet() {
	s.Run("success", func() {
		view := builder.NewDeviceBuilder().BuildView()
		s.mockQueries.EXPECT().GetByCode(gomock.Any(), "D1").Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/devices/D1", nil, "")

		var response resdto.DeviceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
		s.Equal(view.Model, response.Model)
	})

	s.Run("error: 404", func() {
		s.mockQueries.EXPECT().GetByCode(gomock.Any(), "NOPE").Return(nil, device.ErrNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/devices/NOPE", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Device not found")
	})
}

func (s *DeviceHandlerTestSuite) TestChangeStatus() {
	url := "/devices/D1/status"

	s.Run("success: moves the device to maintenance", func() {
		updated := builder.NewDeviceBuilder().InMaintenance().BuildStored()
		s.mockCommands.EXPECT().ChangeStatus(gomock.Any(), s.actor, "D1", device.StatusMaintenance, "calibration").
			Return(updated, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			reqdto.ChangeDeviceStatusRequest{Status: "maintenance", Reason: "calibration"}, "")

		var response resdto.DeviceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("maintenance", response.Status)
	})

	s.Run("error: unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			reqdto.ChangeDeviceStatusRequest{Status: "broken"}, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("error: discarded devices stay discarded", func() {
		s.mockCommands.EXPECT().ChangeStatus(gomock.Any(), s.actor, "D1", device.StatusAvailable, "").
			Return(nil, device.ErrDiscardedIsTerminal).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			reqdto.ChangeDeviceStatusRequest{Status: "available"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Discarded")
	})
}
