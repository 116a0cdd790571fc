package api

import (
	"net/http"

	reqdto "paseos-api/internal/handler/dto/request"
	resdto "paseos-api/internal/handler/dto/response"
	"paseos-api/internal/handler/httperr"
	"paseos-api/internal/handler/middleware"
	"paseos-api/internal/pkg/errs"
	"paseos-api/internal/usecase/commands"
	"paseos-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errMissingOption = errs.New("option is required")

type QuizHandler struct {
	cmds commands.QuizCommands
	q    queries.QuizQueries
}

func NewQuizHandler(cmds commands.QuizCommands, q queries.QuizQueries) *QuizHandler {
	return &QuizHandler{cmds: cmds, q: q}
}

// @Summary List quiz questions
// @Description List the walker admission quiz; correct answers are never exposed
// @Tags quiz
// @Produce json
// @Success 200 {array} resdto.QuizQuestionResponse
// @Router /quiz/questions [get]
func (h *QuizHandler) Questions(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromQuizQuestions(h.q.Questions()))
}

// @Summary Start quiz session
// @Description Start the admission quiz for the authenticated walker
// @Tags quiz
// @Security BearerAuth
// @Produce json
// @Success 201 {object} resdto.QuizProgressResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /quiz/sessions [post]
func (h *QuizHandler) StartSession(c *gin.Context) {
	walkerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errUnauthenticated, "Internal server error", nil)
		return
	}

	progress, err := h.cmds.Start(c.Request.Context(), walkerID)
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromQuizProgress(progress))
}

// @Summary Answer quiz question
// @Description Submit the selected option for the current question; the last answer returns the verdict
// @Tags quiz
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body reqdto.AnswerQuizRequest true "Selected option"
// @Success 200 {object} resdto.QuizProgressResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /quiz/sessions/{id}/answers [post]
func (h *QuizHandler) Answer(c *gin.Context) {
	walkerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errUnauthenticated, "Internal server error", nil)
		return
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid session ID", nil)
		return
	}

	var req reqdto.AnswerQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if req.Option == nil {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, errMissingOption, "must select an answer", nil)
		return
	}

	progress, err := h.cmds.Answer(c.Request.Context(), walkerID, sessionID, *req.Question, *req.Option)
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuizProgress(progress))
}

func (h *QuizHandler) abort(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrQuizInvalidOption):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "must select an answer", nil)
	case errs.Is(err, commands.ErrQuizWrongQuestion), errs.Is(err, commands.ErrQuizSessionConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Answer does not match the current question", nil)
	case errs.Is(err, commands.ErrQuizSessionNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Quiz session not found", nil)
	case errs.Is(err, commands.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
	case errs.Is(err, commands.ErrNotAWalker):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Only walkers can take the quiz", nil)
	case errs.Is(err, commands.ErrQuizNotPending):
		httperr.AbortWithError(c, http.StatusConflict, err, "Quiz already completed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
