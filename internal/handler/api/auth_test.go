//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"clinic-booking/internal/domain/auth"
	"clinic-booking/internal/domain/patient"
	"clinic-booking/internal/handler/api"
	resdto "clinic-booking/internal/handler/dto/response"
	"clinic-booking/internal/pkg/clock"
	"clinic-booking/internal/pkg/config"
	"clinic-booking/internal/pkg/cookie"
	"clinic-booking/internal/pkg/jwt"
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

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockPatientQueries
	handler      *api.AuthHandler
	anna         *builder.PatientBuilder
}

func (s *AuthHandlerTestSuite) SetupTest() {
	s.router = newTestRouter()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPatientQueries(s.mockCtrl)
	jwtService := jwt.NewService("test-secret", time.Hour, clock.NewMockClock(time.Date(2030, time.June, 5, 12, 0, 0, 0, time.UTC)))
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries, jwtService, config.NewTestConfig())
	s.anna = builder.NewPatientBuilder()

	requireAuth := fakeAuth(func() patient.Actor { return s.anna.BuildActor() })
	s.router.POST("/auth/register", s.handler.Register)
	s.router.GET("/auth/confirm/:token", s.handler.Confirm)
	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/logout", requireAuth, s.handler.Logout)
	s.router.GET("/auth/me", requireAuth, s.handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

type testCaseAuth struct {
	name       string
	mutate     testutil.Mutation
	expectCode int
}

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/auth/register"
	reqBody := s.anna.BuildRegisterDTO("password123")
	returnView := builder.NewPatientBuilder().AsUnconfirmed().BuildView()

	s.Run("success: returns 201 Created with the patient", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), reqBody.ToInput()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.PatientResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID, body.ID)
		s.Equal("anna.kowalska@example.com", body.Email)
		s.False(body.Confirmed)
		httptest.AssertLocation(s.T(), rec, "/api/admin/patients/" + returnView.ID.String())
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []testCaseAuth{
			{name: "invalid email", mutate: testutil.Field("email", "not-an-email"), expectCode: http.StatusBadRequest},
			{name: "password too short (7 chars)", mutate: testutil.Field("password", strings.Repeat("a", 7)), expectCode: http.StatusBadRequest},
			{name: "first name too long", mutate: testutil.Field("first_name", strings.Repeat("a", 101)), expectCode: http.StatusBadRequest},
			{name: "missing field: last_name", mutate: testutil.Field("last_name", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: mobile", mutate: testutil.Field("mobile", nil), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.Body(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request format")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{"duplicate email", commands.ErrDuplicateEmail, http.StatusConflict, "Email already registered"},
			{"invalid profile", commands.ErrInvalidPatient, http.StatusBadRequest, "Invalid patient data"},
			{"internal server error", errors.New("database error"), http.StatusInternalServerError, "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestConfirm() {
	token := uuid.New()

	s.Run("success: returns 200 OK", func() {
		s.mockCommands.EXPECT().Confirm(gomock.Any(), token).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/confirm/"+token.String(), nil, "")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("confirmed", body["status"])
	})

	s.Run("error: 400 Bad Request for a malformed token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/confirm/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid confirmation token format")
	})

	s.Run("error: 404 Not Found for an unknown or used token", func() {
		s.mockCommands.EXPECT().Confirm(gomock.Any(), token).Return(commands.ErrInvalidConfirmationToken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/confirm/"+token.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Invalid confirmation token")
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"
	reqBody := builder.NewAuthBuilder().BuildDTO()
	actor := s.anna.BuildActor()
	expectedToken := "test-jwt-token"
	expiresAt := time.Date(2030, time.June, 5, 13, 0, 0, 0, time.UTC)

	credentialsOf := func(email, password string) auth.Credentials {
		c, err := auth.NewCredentials(email, password)
		s.Require().NoError(err)
		return c
	}

	s.Run("success: returns 200 OK and sets the access cookie", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), credentialsOf(reqBody.Email, reqBody.Password)).
			Return(&commands.LoginResult{AccessToken: expectedToken, ExpiresAt: expiresAt, Actor: actor}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(expectedToken, response.AccessToken)
		s.Equal(actor.ID, response.Patient.ID)
		s.Equal("patient", response.Patient.Role)
		s.True(expiresAt.Equal(response.ExpiresAt))

		accessCookie := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(accessCookie)
		s.Equal(expectedToken, accessCookie.Value)
		s.True(accessCookie.HttpOnly)
		s.Equal(int(time.Hour.Seconds()), accessCookie.MaxAge)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		bound := []testCaseAuth{
			{name: "email boundary OK (valid email)", mutate: testutil.Field("email", "valid@example.com"), expectCode: http.StatusOK},
			{name: "email boundary invalid (invalid email)", mutate: testutil.Field("email", "invalid-email"), expectCode: http.StatusBadRequest},
			{name: "password boundary OK (8 chars)", mutate: testutil.Field("password", "password"), expectCode: http.StatusOK},
			{name: "password boundary invalid (7 chars)", mutate: testutil.Field("password", strings.Repeat("a", 7)), expectCode: http.StatusBadRequest},
		}
		missing := []testCaseAuth{
			{name: "missing field: email (required)", mutate: testutil.Field("email", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: password (required)", mutate: testutil.Field("password", nil), expectCode: http.StatusBadRequest},
		}
		empty := []testCaseAuth{
			{name: "empty email", mutate: testutil.Field("email", ""), expectCode: http.StatusBadRequest},
			{name: "empty password", mutate: testutil.Field("password", ""), expectCode: http.StatusBadRequest},
		}

		for _, group := range [][]testCaseAuth{bound, missing, empty} {
			for _, tc := range group {
				s.Run(tc.name, func() {
					requestMap := testutil.Body(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusOK {
						email, _ := requestMap["email"].(string)
						password, _ := requestMap["password"].(string)
						s.mockCommands.EXPECT().Login(gomock.Any(), credentialsOf(email, password)).
							Return(&commands.LoginResult{AccessToken: expectedToken, ExpiresAt: expiresAt, Actor: actor}, nil)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
					if tc.expectCode == http.StatusOK {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
					}
				})
			}
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{"invalid credentials", commands.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
			{"account not confirmed", commands.ErrAccountNotConfirmed, http.StatusForbidden, "Account not confirmed"},
			{"internal server error", errors.New("database error"), http.StatusInternalServerError, "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: returns 204 and clears the cookie", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)

		cleared := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(cleared)
		s.Empty(cleared.Value)
		s.Negative(cleared.MaxAge)
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"
	upcoming := builder.NewVisitBuilder().For(s.anna.ID).BuildView(s.anna)

	s.Run("success: returns the caller with upcoming visits", func() {
		detail := &queries.PatientDetailView{
			PatientView:    *s.anna.BuildView(),
			UpcomingVisits: []*queries.VisitView{upcoming},
		}
		s.mockQueries.EXPECT().Me(gomock.Any(), s.anna.BuildActor()).Return(detail, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.PatientDetailResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(s.anna.ID, body.ID)
		s.Equal("Kowalska", body.LastName)
		s.Require().Len(body.UpcomingVisits, 1)
		s.Equal("2030-06-10", body.UpcomingVisits[0].Date)
		s.Equal("10:00", body.UpcomingVisits[0].Time)
	})

	s.Run("error: 404 when the account was deleted", func() {
		s.mockQueries.EXPECT().Me(gomock.Any(), gomock.Any()).Return(nil, queries.ErrPatientNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Patient not found")
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}
