package quiz

import (
	"errors"

	"paseos-api/internal/pkg/selection"
)

var (
	ErrNoAnswerSelected  = errors.New("must select an answer")
	ErrInvalidOption     = errors.New("option out of range")
	ErrQuizFinished      = errors.New("quiz already finished")
	ErrIncompleteAnswers = errors.New("answer count does not match the question bank")
)

type State string

const (
	StateAwaitingAnswer State = "AWAITING_ANSWER"
	StateFinished       State = "FINISHED"
)

// Session walks an applicant through the bank one question at a time. The pending answer
// lives in a selection.Tracker; Submit scores it and advances. Not safe for concurrent use.
type Session struct {
	questions []Question
	current   int
	answers   []int
	pending   *selection.Tracker
	score     scorer
	result    *Result
}

func NewSession() *Session {
	return &Session{
		questions: bank,
		pending:   selection.NewTracker(OptionsPerQuestion),
		score:     newScorer(),
	}
}

// Resume rebuilds a session by replaying previously submitted answers in order.
func Resume(answers []int) (*Session, error) {
	s := NewSession()
	for _, a := range answers {
		if err := s.Select(a); err != nil {
			return nil, err
		}
		if err := s.Submit(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Session) State() State {
	if s.result != nil {
		return StateFinished
	}
	return StateAwaitingAnswer
}

func (s *Session) Finished() bool {
	return s.result != nil
}

// Len is the number of questions in the session.
func (s *Session) Len() int {
	return len(s.questions)
}

// CurrentIndex is the zero-based position of the question awaiting an answer,
// or Len() once the session is finished.
func (s *Session) CurrentIndex() int {
	return s.current
}

func (s *Session) Current() (Question, error) {
	if s.Finished() {
		return Question{}, ErrQuizFinished
	}
	return s.questions[s.current], nil
}

// OnSelectionChange forwards pending-answer changes, e.g. to highlight the chosen option.
func (s *Session) OnSelectionChange(fn selection.ChangeFunc) {
	s.pending.OnChange(fn)
}

func (s *Session) Select(option int) error {
	if s.Finished() {
		return ErrQuizFinished
	}
	if err := s.pending.Select(option); err != nil {
		return ErrInvalidOption
	}
	return nil
}

func (s *Session) Selected() (int, bool) {
	return s.pending.Selected()
}

// Submit scores the pending answer and moves to the next question. Without a pending
// answer it returns ErrNoAnswerSelected and the session stays on the same question.
func (s *Session) Submit() error {
	if s.Finished() {
		return ErrQuizFinished
	}
	option, ok := s.pending.Selected()
	if !ok {
		return ErrNoAnswerSelected
	}

	s.score.add(s.questions[s.current], option)
	s.answers = append(s.answers, option)
	s.current++
	s.pending.Clear()

	if s.current == len(s.questions) {
		r := s.score.result()
		s.result = &r
	}
	return nil
}

// Result is only available once the session is finished.
func (s *Session) Result() (Result, bool) {
	if s.result == nil {
		return Result{}, false
	}
	return *s.result, true
}

// Answers returns the submitted options in question order.
func (s *Session) Answers() []int {
	out := make([]int, len(s.answers))
	copy(out, s.answers)
	return out
}

// Score grades a complete answer sequence, one option per question of the bank.
func Score(answers []int) (Result, error) {
	if len(answers) != len(bank) {
		return Result{}, ErrIncompleteAnswers
	}
	s, err := Resume(answers)
	if err != nil {
		return Result{}, err
	}
	r, _ := s.Result()
	return r, nil
}
