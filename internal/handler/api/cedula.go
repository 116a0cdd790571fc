package api

import (
	"net/http"

	"paseos-api/internal/domain/cedula"
	reqdto "paseos-api/internal/handler/dto/request"
	resdto "paseos-api/internal/handler/dto/response"
	"paseos-api/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

type CedulaHandler struct{}

func NewCedulaHandler() *CedulaHandler {
	return &CedulaHandler{}
}

// @Summary Validate cédula
// @Description Check an Ecuadorian national id number; any string is accepted and answered
// @Tags validations
// @Accept json
// @Produce json
// @Param request body reqdto.ValidateCedulaRequest true "Cédula"
// @Success 200 {object} resdto.CedulaValidationResponse
// @Failure 400 {object} httperr.Response
// @Router /validations/cedula [post]
func (h *CedulaHandler) Validate(c *gin.Context) {
	var req reqdto.ValidateCedulaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.CedulaValidationResponse{Valid: cedula.IsValid(*req.Cedula)})
}
