package api

import (
	"context"
	"net/http"

	reqdto "paseos-api/internal/handler/dto/request"
	resdto "paseos-api/internal/handler/dto/response"
	"paseos-api/internal/handler/httperr"
	"paseos-api/internal/pkg/errs"
	"paseos-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type RegistrationHandler struct {
	cmds commands.RegistrationCommands
}

func NewRegistrationHandler(cmds commands.RegistrationCommands) *RegistrationHandler {
	return &RegistrationHandler{cmds: cmds}
}

// @Summary Register owner
// @Description Create a pet owner account
// @Tags registration
// @Accept json
// @Produce json
// @Param request body reqdto.RegistrationRequest true "Registration request"
// @Success 201 {object} resdto.RegistrationResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /owners [post]
func (h *RegistrationHandler) RegisterOwner(c *gin.Context) {
	h.register(c, h.cmds.RegisterOwner)
}

// @Summary Register walker
// @Description Create a walker applicant account; the admission quiz is pending afterwards
// @Tags registration
// @Accept json
// @Produce json
// @Param request body reqdto.RegistrationRequest true "Registration request"
// @Success 201 {object} resdto.RegistrationResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /walkers [post]
func (h *RegistrationHandler) RegisterWalker(c *gin.Context) {
	h.register(c, h.cmds.RegisterWalker)
}

type registerFunc func(ctx context.Context, req reqdto.RegistrationRequest) (*commands.RegistrationResult, error)

func (h *RegistrationHandler) register(c *gin.Context, fn registerFunc) {
	var req reqdto.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := fn(c.Request.Context(), req)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidCedula):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid cédula", httperr.FieldDetail("cedula"))
		case errs.Is(err, commands.ErrInvalidRegistration):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid registration data", nil)
		case errs.Is(err, commands.ErrAccountAlreadyExists):
			httperr.AbortWithError(c, http.StatusConflict, err, "Account already exists", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRegistrationResult(result))
}
