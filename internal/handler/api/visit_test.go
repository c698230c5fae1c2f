//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"clinic-booking/internal/domain/calendar"
	"clinic-booking/internal/domain/patient"
	"clinic-booking/internal/domain/slot"
	"clinic-booking/internal/handler/api"
	resdto "clinic-booking/internal/handler/dto/response"
	"clinic-booking/internal/usecase/commands"
	"clinic-booking/internal/usecase/queries"
	"clinic-booking/tests/common/builder"
	"clinic-booking/tests/common/httptest"
	"clinic-booking/tests/common/testutil"
	commandsmock "clinic-booking/tests/mock/commands"
	queriesmock "clinic-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type VisitHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockVisitQueries
	handler      *api.VisitHandler
	caller       *builder.PatientBuilder
}

func (s *VisitHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockVisitQueries(s.mockCtrl)
	s.handler = api.NewVisitHandler(s.mockCommands, s.mockQueries)
	s.caller = builder.NewPatientBuilder()

	visits := s.router.Group("/visits", fakeAuth(func() patient.Actor { return s.caller.BuildActor() }))
	visits.POST("", s.handler.Book)
	visits.GET("", s.handler.ListMine)
	visits.GET("/:id", s.handler.Get)
	visits.DELETE("/:id", s.handler.Cancel)
}

func (s *VisitHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestVisitHandlerSuite(t *testing.T) {
	suite.Run(t, new(VisitHandlerTestSuite))
}

func (s *VisitHandlerTestSuite) TestBook() {
	url := "/visits"
	token := "bearer-token"
	vb := builder.NewVisitBuilder().For(s.caller.ID)
	reqBody := vb.BuildBookDTO()
	monday := calendar.NewDate(2030, time.June, 10)

	s.Run("success: floors the time and returns 201 Created", func() {
		requestMap := testutil.Body(s.T(), reqBody, testutil.Field("time", "10:45"))
		s.mockCommands.EXPECT().
			Book(gomock.Any(), s.caller.BuildActor(), s.caller.ID, monday, mustClock(s.T(), 10, 45)).
			Return(vb.BuildView(s.caller), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, token)

		var body resdto.VisitResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(vb.ID, body.ID)
		s.Equal("2030-06-10", body.Date)
		s.Equal(10, body.Hour)
		s.Equal("10:00", body.Time)
		s.Equal("booking", body.Kind)
		s.Equal("Anna Kowalska", body.PatientName)
		httptest.AssertLocation(s.T(), rec, "/api/visits/" + vb.ID.String())
	})

	s.Run("success: administrator books for another patient", func() {
		admin := builder.NewAdminBuilder()
		other := uuid.New()
		prev := s.caller
		s.caller = admin
		defer func() { s.caller = prev }()

		requestMap := testutil.Body(s.T(), reqBody, testutil.Field("patient_id", other.String()))
		s.mockCommands.EXPECT().
			Book(gomock.Any(), admin.BuildActor(), other, monday, mustClock(s.T(), 10, 0)).
			Return(builder.NewVisitBuilder().For(other).BuildView(nil), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 409 with the free hours when the slot is taken", func() {
		s.mockCommands.EXPECT().Book(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, &commands.SlotTakenError{Date: monday, Hour: 10, Available: []slot.Hour{11, 12, 17}}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Slot already taken")

		var body struct {
			Detail api.SlotTakenDetail `json:"detail"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal("2030-06-10", body.Detail.Date)
		s.Equal(10, body.Detail.Hour)
		s.Equal([]int{11, 12, 17}, body.Detail.AvailableHours)
	})

	s.Run("error: maps booking guards to proper statuses", func() {
		cases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{"already booked", commands.ErrAlreadyBooked, http.StatusConflict, "Patient already has an upcoming visit"},
			{"date not in future", commands.ErrDateNotInFuture, http.StatusUnprocessableEntity, "Visit date must be after today"},
			{"weekend", &commands.ClosedDayError{Date: calendar.NewDate(2030, time.June, 8), Kind: calendar.Weekend}, http.StatusUnprocessableEntity, "Clinic is closed on that day"},
			{"holiday", &commands.ClosedDayError{Date: calendar.NewDate(2030, time.December, 25), Kind: calendar.Holiday, HolidayName: "Christmas Day"}, http.StatusUnprocessableEntity, "Clinic is closed on public holidays"},
			{"hour out of range", commands.ErrHourOutOfRange, http.StatusUnprocessableEntity, "Hour outside clinic hours"},
			{"patient not found", commands.ErrPatientNotFound, http.StatusNotFound, "Patient not found"},
			{"forbidden", commands.ErrForbidden, http.StatusForbidden, "Administrator access required"},
			{"internal server error", errors.New("database error"), http.StatusInternalServerError, "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Book(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, token)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseAuth{
			{name: "missing date", mutate: testutil.Field("date", nil), expectCode: http.StatusBadRequest},
			{name: "missing time", mutate: testutil.Field("time", nil), expectCode: http.StatusBadRequest},
			{name: "date with slashes", mutate: testutil.Field("date", "2030/06/10"), expectCode: http.StatusBadRequest},
			{name: "impossible date", mutate: testutil.Field("date", "2030-02-30"), expectCode: http.StatusBadRequest},
			{name: "time without minutes", mutate: testutil.Field("time", "10"), expectCode: http.StatusBadRequest},
			{name: "minute out of range", mutate: testutil.Field("time", "10:75"), expectCode: http.StatusBadRequest},
			{name: "patient_id not a uuid", mutate: testutil.Field("patient_id", "nope"), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.Body(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, token)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *VisitHandlerTestSuite) TestListMine() {
	s.Run("success: returns the caller's visits", func() {
		first := builder.NewVisitBuilder().For(s.caller.ID)
		second := builder.NewVisitBuilder().For(s.caller.ID).On(calendar.NewDate(2030, time.June, 11), 14)
		s.mockQueries.EXPECT().ListMine(gomock.Any(), s.caller.BuildActor()).
			Return([]*queries.VisitView{first.BuildView(s.caller), second.BuildView(s.caller)}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/visits", nil, "bearer-token")

		var body []resdto.VisitResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal("14:00", body[1].Time)
	})

	s.Run("success: empty list encodes as an array", func() {
		s.mockQueries.EXPECT().ListMine(gomock.Any(), gomock.Any()).Return([]*queries.VisitView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/visits", nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})
}

func (s *VisitHandlerTestSuite) TestGet() {
	vb := builder.NewVisitBuilder().For(s.caller.ID)

	s.Run("success: returns 200 OK", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.caller.BuildActor(), vb.ID).
			Return(vb.BuildView(s.caller), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/visits/"+vb.ID.String(), nil, "bearer-token")

		var body resdto.VisitResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(vb.ID, body.ID)
		s.Empty(rec.Header().Get("Location"))
	})

	s.Run("error: maps query errors", func() {
		cases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{"not found", queries.ErrVisitNotFound, http.StatusNotFound, "Visit not found"},
			{"someone else's visit", queries.ErrVisitAccess, http.StatusForbidden, "Visit belongs to another patient"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any(), vb.ID).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/visits/"+vb.ID.String(), nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 400 for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/visits/123", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid visit ID format")
	})
}

func (s *VisitHandlerTestSuite) TestCancel() {
	id := uuid.New()
	url := fmt.Sprintf("/visits/%s", id)

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.caller.BuildActor(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("error: maps cancellation errors", func() {
		cases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{"not owner", commands.ErrNotOwner, http.StatusForbidden, "Visit belongs to another patient"},
			{"not found", commands.ErrVisitNotFound, http.StatusNotFound, "Visit not found"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Cancel(gomock.Any(), gomock.Any(), id).Return(tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
