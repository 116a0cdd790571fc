package api

import (
	"net/http"
	"strings"

	reqdto "paseos-api/internal/handler/dto/request"
	resdto "paseos-api/internal/handler/dto/response"
	"paseos-api/internal/handler/httperr"
	"paseos-api/internal/handler/middleware"
	"paseos-api/internal/pkg/errs"
	"paseos-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errEmptyGroupID = errs.New("group id is empty")

type ReservationHandler struct {
	q queries.ReservationQueries
}

func NewReservationHandler(q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{q: q}
}

// @Summary List reservations
// @Description List the caller's walk reservations with group bookings collapsed into one item
// @Tags reservations
// @Security BearerAuth
// @Produce json
// @Param after query string false "Cursor returned by the previous page"
// @Param limit query int false "Page size (1-200, default 20)"
// @Success 200 {object} resdto.ReservationListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errUnauthenticated, "Internal server error", nil)
		return
	}

	var req reqdto.ListReservationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	page, err := h.q.List(c.Request.Context(), actor, req.ToPage())
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrInvalidCursor):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
		case errs.Is(err, queries.ErrReservationAccessDenied):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationItemPage(page))
}

// @Summary Get reservation group
// @Description Get one group booking merged across all of its days
// @Tags reservations
// @Security BearerAuth
// @Produce json
// @Param groupId path string true "Group ID"
// @Success 200 {object} resdto.ReservationItemResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/groups/{groupId} [get]
func (h *ReservationHandler) GetGroup(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errUnauthenticated, "Internal server error", nil)
		return
	}

	groupID := strings.TrimSpace(c.Param("groupId"))
	if groupID == "" {
		httperr.AbortWithError(c, http.StatusNotFound, errEmptyGroupID, "Reservation group not found", nil)
		return
	}

	item, err := h.q.GetGroup(c.Request.Context(), actor, groupID)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrReservationGroupNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation group not found", nil)
		case errs.Is(err, queries.ErrReservationAccessDenied):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationItemView(item))
}

func actorFrom(c *gin.Context) (queries.Actor, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return queries.Actor{}, false
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		return queries.Actor{}, false
	}
	return queries.Actor{UserID: userID, Role: role}, true
}
