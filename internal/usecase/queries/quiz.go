package queries

import "paseos-api/internal/domain/quiz"

// QuizQuestionView never exposes the correct option.
type QuizQuestionView struct {
	Index    int      `json:"index"`
	Text     string   `json:"text"`
	Options  []string `json:"options"`
	Category string   `json:"category"`
	Weight   int      `json:"weight"`
}

type QuizQueries interface {
	Questions() []QuizQuestionView
}

type quizQueriesImpl struct{}

func NewQuizQueries() QuizQueries {
	return &quizQueriesImpl{}
}

func (q *quizQueriesImpl) Questions() []QuizQuestionView {
	bank := quiz.Bank()
	views := make([]QuizQuestionView, 0, len(bank))
	for i, question := range bank {
		views = append(views, ToQuizQuestionView(i, question))
	}
	return views
}

func ToQuizQuestionView(index int, q quiz.Question) QuizQuestionView {
	return QuizQuestionView{
		Index:    index,
		Text:     q.Text,
		Options:  q.Options[:],
		Category: q.Category.String(),
		Weight:   q.Weight(),
	}
}
