//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"lab-reservation/internal/domain/booking"
	"lab-reservation/internal/domain/identity"
	"lab-reservation/internal/handler/api"
	reqdto "lab-reservation/internal/handler/dto/request"
	resdto "lab-reservation/internal/handler/dto/response"
	"lab-reservation/internal/usecase/commands"
	"lab-reservation/internal/usecase/queries"
	"lab-reservation/tests/common/builder"
	"lab-reservation/tests/common/httptest"
	commandsmock "lab-reservation/tests/mock/commands"
	queriesmock "lab-reservation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ApprovalHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockApprovalCommands
	mockQueries  *queriesmock.MockBookingQueries
	actor        identity.Actor
}

func (s *ApprovalHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockApprovalCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.actor = builder.NewUserBuilder().AsAdmin().BuildActor()
	h := api.NewApprovalHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/approvals/pending", withActor(s.actor, h.ListPending))
	s.router.POST("/approvals/batch", withActor(s.actor, h.BatchDecide))
	s.router.POST("/approvals/:code", withActor(s.actor, h.Decide))
}

func (s *ApprovalHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestApprovalHandlerSuite(t *testing.T) {
	suite.Run(t, new(ApprovalHandlerTestSuite))
}

func (s *ApprovalHandlerTestSuite) TestListPending() {
	s.Run("success: returns the actor's queue", func() {
		views := []*queries.BookingView{
			builder.NewBookingBuilder().AsExternal().BuildView(),
			builder.NewBookingBuilder().AsTeacher().WithCode("BOOK20250601002").BuildView(),
		}
		s.mockQueries.EXPECT().ListPending(gomock.Any(), s.actor, 10).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/approvals/pending?limit=10", nil, "")

		var response []queries.BookingView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("error: non-numeric limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/approvals/pending?limit=ten", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *ApprovalHandlerTestSuite) TestDecide() {
	code := "BOOK20250601001"

	s.Run("success: admin approval of an internal booking grants it", func() {
		granted := builder.NewBookingBuilder().AsTeacher().WithStatus("manager_approved").BuildStored()
		expected := commands.Decision{Level: booking.LevelAdmin, Action: booking.ActionApprove, Comment: "ok"}
		s.mockCommands.EXPECT().Decide(gomock.Any(), s.actor, code, expected).Return(granted, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/approvals/"+code,
			reqdto.DecisionRequest{Level: "admin", Action: "approve", Comment: "ok"}, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("manager_approved", response.Status)
	})

	s.Run("error: 400 on unknown level or action", func() {
		for _, body := range []reqdto.DecisionRequest{
			{Level: "dean", Action: "approve"},
			{Level: "admin", Action: "maybe"},
			{Level: "admin"},
		} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/approvals/"+code, body, "")
			s.Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
		}
	})

	s.Run("error: decision failures map to statuses", func() {
		cases := []struct {
			name   string
			err    error
			status int
		}{
			{"wrong level", booking.ErrUnauthorized, http.StatusForbidden},
			{"closed booking", booking.ErrInvalidTransition, http.StatusConflict},
			{"missing booking", booking.ErrNotFound, http.StatusNotFound},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Decide(gomock.Any(), s.actor, code, gomock.Any()).Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/approvals/"+code,
					reqdto.DecisionRequest{Level: "admin", Action: "reject"}, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, "")
			})
		}
	})
}

func (s *ApprovalHandlerTestSuite) TestBatchDecide() {
	s.Run("success: reports each item independently", func() {
		ok := builder.NewBookingBuilder().AsExternal().WithStatus("admin_approved").BuildStored()
		items := []commands.BatchItem{
			{Code: ok.Code(), Decision: commands.Decision{Level: booking.LevelAdmin, Action: booking.ActionApprove}},
			{Code: "BOOK20250601002", Decision: commands.Decision{Level: booking.LevelAdmin, Action: booking.ActionApprove}},
		}
		s.mockCommands.EXPECT().BatchDecide(gomock.Any(), s.actor, items).Return([]commands.BatchResult{
			{Code: ok.Code(), Booking: ok},
			{Code: "BOOK20250601002", Err: booking.ErrInvalidTransition},
		}).Times(1)

		body := reqdto.BatchDecisionRequest{Items: []reqdto.BatchDecisionItem{
			{Code: ok.Code(), DecisionRequest: reqdto.DecisionRequest{Level: "admin", Action: "approve"}},
			{Code: "BOOK20250601002", DecisionRequest: reqdto.DecisionRequest{Level: "admin", Action: "approve"}},
		}}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/approvals/batch", body, "")

		var response resdto.BatchDecisionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(1, response.Succeeded)
		s.Equal(1, response.Failed)
		s.Require().Len(response.Results, 2)
		s.Equal("admin_approved", response.Results[0].Booking.Status)
		s.NotEmpty(response.Results[1].Error)
	})

	s.Run("error: empty batch", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/approvals/batch", reqdto.BatchDecisionRequest{}, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
