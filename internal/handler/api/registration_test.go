//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"paseos-api/internal/domain/user"
	"paseos-api/internal/handler/api"
	resdto "paseos-api/internal/handler/dto/response"
	"paseos-api/internal/usecase/commands"
	"paseos-api/tests/common/builder"
	"paseos-api/tests/common/httptest"
	"paseos-api/tests/common/testutil"
	commandsmock "paseos-api/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RegistrationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRegistrationCommands
}

func (s *RegistrationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRegistrationCommands(s.mockCtrl)
	h := api.NewRegistrationHandler(s.mockCommands)

	s.router.POST("/owners", h.RegisterOwner)
	s.router.POST("/walkers", h.RegisterWalker)
}

func (s *RegistrationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRegistrationHandlerSuite(t *testing.T) {
	suite.Run(t, new(RegistrationHandlerTestSuite))
}

func (s *RegistrationHandlerTestSuite) TestRegisterOwner() {
	reqBody := builder.NewRegistrationBuilder().BuildDTO()

	s.Run("success: returns 201 with the new owner", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().RegisterOwner(gomock.Any(), reqBody).
			Return(&commands.RegistrationResult{UserID: id, Role: user.RoleOwner}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/owners", reqBody, "")

		var response resdto.RegistrationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(id, response.ID)
		s.Equal("owner", response.Role)
		s.Nil(response.WalkerStatus)
	})

	s.Run("error: 400 when a required field is missing", func() {
		for _, field := range []string{"email", "password", "fullName", "phone", "cedula"} {
			s.Run(field, func() {
				body := testutil.DtoMap(s.T(), reqBody, testutil.Field(field, nil))
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/owners", body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "invalid cedula", commandsError: commands.ErrInvalidCedula, expectedStatus: http.StatusUnprocessableEntity, expectedMsg: "Invalid cédula"},
			{name: "invalid field", commandsError: commands.ErrInvalidRegistration, expectedStatus: http.StatusBadRequest, expectedMsg: "Invalid registration data"},
			{name: "duplicate account", commandsError: commands.ErrAccountAlreadyExists, expectedStatus: http.StatusConflict, expectedMsg: "Account already exists"},
			{name: "database failure", commandsError: errors.New("database error"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().RegisterOwner(gomock.Any(), reqBody).Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/owners", reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: invalid cedula names the offending field", func() {
		s.mockCommands.EXPECT().RegisterOwner(gomock.Any(), reqBody).Return(nil, commands.ErrInvalidCedula).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/owners", reqBody, "")
		httptest.AssertErrorDetail(s.T(), rec, http.StatusUnprocessableEntity, "Invalid cédula", map[string]any{"field": "cedula"})
	})
}

func (s *RegistrationHandlerTestSuite) TestRegisterWalker() {
	reqBody := builder.NewRegistrationBuilder().BuildDTO()

	s.Run("success: walker starts with a pending quiz", func() {
		status := user.WalkerStatusQuizPending
		s.mockCommands.EXPECT().RegisterWalker(gomock.Any(), reqBody).
			Return(&commands.RegistrationResult{UserID: uuid.New(), Role: user.RoleWalker, WalkerStatus: &status}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/walkers", reqBody, "")

		var response resdto.RegistrationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("walker", response.Role)
		s.Require().NotNil(response.WalkerStatus)
		s.Equal("quiz_pending", *response.WalkerStatus)
	})

	s.Run("error: 409 when the email is taken", func() {
		s.mockCommands.EXPECT().RegisterWalker(gomock.Any(), reqBody).
			Return(nil, commands.ErrAccountAlreadyExists).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/walkers", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Account already exists")
	})
}
