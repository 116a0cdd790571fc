package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"paseos-api/internal/domain/quiz"
	"paseos-api/internal/domain/user"
	"paseos-api/internal/infra"
	"paseos-api/internal/pkg/clock"
	"paseos-api/internal/pkg/errs"
	"paseos-api/internal/usecase/queries"
	"paseos-api/internal/usecase/shared"
)

var (
	ErrNotAWalker          = errs.New("user is not a walker")
	ErrQuizNotPending      = errs.New("walker application is not waiting for the quiz")
	ErrQuizInvalidOption   = errs.New("invalid quiz option")
	ErrQuizWrongQuestion   = errs.New("answer is not for the current question")
	ErrQuizSessionCorrupt  = errs.New("quiz session state is corrupt")
	ErrQuizSessionTTLUnset = errs.New("quiz session ttl must be positive")
)

type QuizVerdict struct {
	ResultID       uuid.UUID
	Passed         bool
	TotalScore     int
	CriticalScore  int
	CategoryScores map[string]int
	DisplayScores  map[string]int
	WalkerStatus   user.WalkerStatus
}

// QuizProgress is what the applicant sees after each step: the next question, or the
// verdict once the last answer was submitted.
type QuizProgress struct {
	SessionID uuid.UUID
	Answered  int
	Total     int
	Question  *queries.QuizQuestionView
	Verdict   *QuizVerdict
}

func (p QuizProgress) Finished() bool {
	return p.Verdict != nil
}

type QuizCommands interface {
	Start(ctx context.Context, walkerID uuid.UUID) (*QuizProgress, error)
	// Answer records option for question, which must be the session's current question.
	// A replayed or concurrent submission fails with ErrQuizWrongQuestion or
	// ErrQuizSessionConflict instead of being scored against the next question.
	Answer(ctx context.Context, walkerID, sessionID uuid.UUID, question, option int) (*QuizProgress, error)
}

type quizCommandsImpl struct {
	uow        shared.UnitOfWork
	users      queries.UserReadStore
	sessions   QuizSessionStore
	publisher  shared.EventPublisher
	clock      clock.Clock
	sessionTTL time.Duration
}

func NewQuizCommands(
	uow shared.UnitOfWork,
	users queries.UserReadStore,
	sessions QuizSessionStore,
	publisher shared.EventPublisher,
	clock clock.Clock,
	sessionTTL time.Duration,
) (QuizCommands, error) {
	if sessionTTL <= 0 {
		return nil, ErrQuizSessionTTLUnset
	}
	return &quizCommandsImpl{
		uow:        uow,
		users:      users,
		sessions:   sessions,
		publisher:  publisher,
		clock:      clock,
		sessionTTL: sessionTTL,
	}, nil
}

func (q *quizCommandsImpl) Start(ctx context.Context, walkerID uuid.UUID) (*QuizProgress, error) {
	if err := q.ensurePending(ctx, walkerID); err != nil {
		return nil, err
	}

	state := QuizSessionState{
		ID:        uuid.New(),
		WalkerID:  walkerID,
		Answers:   []int{},
		StartedAt: q.clock.Now(),
	}
	if err := q.sessions.Save(ctx, state, q.sessionTTL); err != nil {
		return nil, errs.Wrap(err, "save quiz session")
	}

	return progressOf(state.ID, quiz.NewSession()), nil
}

func (q *quizCommandsImpl) Answer(ctx context.Context, walkerID, sessionID uuid.UUID, question, option int) (*QuizProgress, error) {
	state, err := q.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	// a session that belongs to somebody else is reported as missing
	if state.WalkerID != walkerID {
		return nil, ErrQuizSessionNotFound
	}

	session, err := quiz.Resume(state.Answers)
	if err != nil {
		return nil, errs.Mark(err, ErrQuizSessionCorrupt)
	}
	if question != session.CurrentIndex() {
		return nil, errs.Wrapf(ErrQuizWrongQuestion, "answered %d, current %d", question, session.CurrentIndex())
	}

	if err := session.Select(option); err != nil {
		if errors.Is(err, quiz.ErrInvalidOption) {
			return nil, errs.Mark(err, ErrQuizInvalidOption)
		}
		return nil, err
	}
	if err := session.Submit(); err != nil {
		return nil, err
	}

	if !session.Finished() {
		state.Answers = session.Answers()
		state.Version++
		if err := q.sessions.Replace(ctx, *state, q.sessionTTL); err != nil {
			if errs.Is(err, ErrQuizSessionConflict) || errs.Is(err, ErrQuizSessionNotFound) {
				return nil, err
			}
			return nil, errs.Wrap(err, "save quiz session")
		}
		return progressOf(sessionID, session), nil
	}

	// concurrent final answers both reach finish; the conditional status update lets
	// only one verdict through

	verdict, err := q.finish(ctx, walkerID, session)
	if err != nil {
		return nil, err
	}

	if err := q.sessions.Delete(ctx, sessionID); err != nil {
		slog.Warn("failed to delete finished quiz session", "session_id", sessionID, "error", err.Error())
	}

	progress := progressOf(sessionID, session)
	progress.Verdict = verdict
	return progress, nil
}

func (q *quizCommandsImpl) ensurePending(ctx context.Context, walkerID uuid.UUID) error {
	walker, err := q.users.FindByID(ctx, walkerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if walker.Role != user.RoleWalker.String() {
		return ErrNotAWalker
	}
	if walker.WalkerStatus == nil || *walker.WalkerStatus != user.WalkerStatusQuizPending.String() {
		return ErrQuizNotPending
	}
	return nil
}

func (q *quizCommandsImpl) finish(ctx context.Context, walkerID uuid.UUID, session *quiz.Session) (*QuizVerdict, error) {
	result, _ := session.Result()
	status := user.WalkerStatusFromVerdict(result.Passed)
	record := shared.QuizResultRecord{
		ID:        uuid.New(),
		WalkerID:  walkerID,
		Result:    result,
		Answers:   session.Answers(),
		CreatedAt: q.clock.Now(),
	}

	err := q.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.QuizResults().Create(ctx, record); err != nil {
			return err
		}
		return tx.Users().UpdateWalkerStatus(ctx, walkerID, status)
	})
	if err != nil {
		// a concurrent final answer already recorded the verdict
		if infra.IsKind(err, infra.KindStateConflict) {
			return nil, errs.Mark(err, ErrQuizNotPending)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	categories := categoryScores(result)
	event := shared.QuizEvaluatedEvent{
		ResultID:       record.ID,
		WalkerID:       walkerID,
		Passed:         result.Passed,
		TotalScore:     result.TotalScore,
		CriticalScore:  result.CriticalScore,
		CategoryScores: categories,
		WalkerStatus:   status.String(),
		EvaluatedAt:    record.CreatedAt,
	}
	// the verdict is already stored; a lost event must not fail the request
	if err := q.publisher.PublishQuizEvaluated(ctx, event); err != nil {
		slog.Warn("failed to publish quiz verdict", "result_id", record.ID, "error", err.Error())
	}

	slog.Info("walker quiz evaluated",
		"walker_id", walkerID,
		"passed", result.Passed,
		"total_score", result.TotalScore,
		"critical_score", result.CriticalScore)

	return &QuizVerdict{
		ResultID:       record.ID,
		Passed:         result.Passed,
		TotalScore:     result.TotalScore,
		CriticalScore:  result.CriticalScore,
		CategoryScores: categories,
		DisplayScores:  result.DisplayScores(),
		WalkerStatus:   status,
	}, nil
}

func progressOf(sessionID uuid.UUID, session *quiz.Session) *QuizProgress {
	p := &QuizProgress{
		SessionID: sessionID,
		Answered:  len(session.Answers()),
		Total:     session.Len(),
	}
	if question, err := session.Current(); err == nil {
		view := queries.ToQuizQuestionView(session.CurrentIndex(), question)
		p.Question = &view
	}
	return p
}

func categoryScores(r quiz.Result) map[string]int {
	out := make(map[string]int, len(r.CategoryScores))
	for c, v := range r.CategoryScores {
		out[c.String()] = v
	}
	return out
}
