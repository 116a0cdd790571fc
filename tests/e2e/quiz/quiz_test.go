//go:build e2e

package quiz_test

import (
	"net/http"
	"testing"

	"paseos-api/internal/domain/quiz"
	"paseos-api/internal/domain/user"
	resdto "paseos-api/internal/handler/dto/response"
	"paseos-api/tests/common/authtest"
	"paseos-api/tests/common/dbtest"
	"paseos-api/tests/common/httptest"
	"paseos-api/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const sessionsURL = "/api/quiz/sessions"

type quizSuite struct {
	e2e.SharedSuite
}

func TestQuizSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(quizSuite))
}

func answersURL(sessionID uuid.UUID) string {
	return sessionsURL + "/" + sessionID.String() + "/answers"
}

func (s *quizSuite) startSession(token string) resdto.QuizProgressResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, sessionsURL, nil, token)
	var res resdto.QuizProgressResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
	return res
}

func answer(question, option int) map[string]int {
	return map[string]int{"question": question, "option": option}
}

// answerAll submits pick(q) for every question and returns the final response.
func (s *quizSuite) answerAll(token string, sessionID uuid.UUID, pick func(q quiz.Question) int) resdto.QuizProgressResponse {
	var res resdto.QuizProgressResponse
	for i, q := range quiz.Bank() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, answersURL(sessionID),
			answer(i, pick(q)), token)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		require.Equal(s.T(), i+1, res.Answered)
	}
	return res
}

func (s *quizSuite) TestQuestions() {
	s.Run("question bank is public", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/quiz/questions", nil, "")
		var res []resdto.QuizQuestionResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		require.Len(s.T(), res, len(quiz.Bank()))
		for _, q := range res {
			require.Len(s.T(), q.Options, 4)
		}
	})
}

func (s *quizSuite) TestPassingQuiz() {
	s.Run("all correct answers approve the walker", func() {
		t := s.T()
		walkerID, token := authtest.CreateAndLogin(t, s.DB, s.Router, "walker@example.com",
			user.RoleWalker.String(), user.WalkerStatusQuizPending.String())

		started := s.startSession(token)
		require.Equal(t, 0, started.Answered)
		require.NotNil(t, started.Question)
		require.Equal(t, 0, started.Question.Index)

		final := s.answerAll(token, started.SessionID, func(q quiz.Question) int { return q.Correct })
		require.True(t, final.Finished)
		require.NotNil(t, final.Verdict)
		require.True(t, final.Verdict.Passed)
		require.Equal(t, "approved", final.Verdict.WalkerStatus)
		require.Equal(t, "approved", dbtest.WalkerStatus(t, s.DB, walkerID))

		require.Equal(t, 1, dbtest.CountQuizResults(t, s.DB, walkerID))

		// the finished session is gone and the walker cannot retake the quiz
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, answersURL(started.SessionID),
			answer(len(quiz.Bank())-1, 0), token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Quiz session not found")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, sessionsURL, nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Quiz already completed")
	})
}

func (s *quizSuite) TestFailingQuiz() {
	s.Run("wrong answers reject the walker", func() {
		t := s.T()
		walkerID, token := authtest.CreateAndLogin(t, s.DB, s.Router, "walker@example.com",
			user.RoleWalker.String(), user.WalkerStatusQuizPending.String())

		started := s.startSession(token)
		final := s.answerAll(token, started.SessionID, func(q quiz.Question) int { return (q.Correct + 1) % 4 })
		require.True(t, final.Finished)
		require.False(t, final.Verdict.Passed)
		require.Equal(t, 0, final.Verdict.TotalScore)
		require.Equal(t, "rejected", dbtest.WalkerStatus(t, s.DB, walkerID))
	})
}

func (s *quizSuite) TestAnswerValidation() {
	s.Run("missing and out of range options", func() {
		t := s.T()
		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "walker@example.com",
			user.RoleWalker.String(), user.WalkerStatusQuizPending.String())
		started := s.startSession(token)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, answersURL(started.SessionID),
			map[string]any{"question": 0}, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "must select an answer")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, answersURL(started.SessionID),
			answer(0, 4), token)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "must select an answer")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, answersURL(started.SessionID),
			map[string]any{"question": 0, "option": "b"}, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request")

		// rejected answers do not advance the session
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, answersURL(started.SessionID),
			answer(0, 1), token)
		var res resdto.QuizProgressResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, 1, res.Answered)
	})

	s.Run("a retried answer is not scored against the next question", func() {
		t := s.T()
		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "walker@example.com",
			user.RoleWalker.String(), user.WalkerStatusQuizPending.String())
		started := s.startSession(token)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, answersURL(started.SessionID), answer(0, 2), token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, answersURL(started.SessionID), answer(0, 2), token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Answer does not match the current question")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, answersURL(started.SessionID), answer(1, 0), token)
		var res resdto.QuizProgressResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Equal(t, 2, res.Answered)
	})

	s.Run("another walker's session is not found", func() {
		t := s.T()
		_, first := authtest.CreateAndLogin(t, s.DB, s.Router, "first@example.com",
			user.RoleWalker.String(), user.WalkerStatusQuizPending.String())
		_, second := authtest.CreateAndLogin(t, s.DB, s.Router, "second@example.com",
			user.RoleWalker.String(), user.WalkerStatusQuizPending.String())
		started := s.startSession(first)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, answersURL(started.SessionID),
			answer(0, 0), second)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Quiz session not found")
	})
}

func (s *quizSuite) TestAccess() {
	s.Run("owners cannot start the quiz", func() {
		_, token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "owner@example.com", user.RoleOwner.String(), "")
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, sessionsURL, nil, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("approved walkers cannot start again", func() {
		_, token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "walker@example.com",
			user.RoleWalker.String(), user.WalkerStatusApproved.String())
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, sessionsURL, nil, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "Quiz already completed")
	})

	s.Run("anonymous requests are rejected", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, sessionsURL, nil, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})
}
