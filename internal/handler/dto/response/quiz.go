package response

import (
	"github.com/google/uuid"

	"paseos-api/internal/usecase/commands"
	"paseos-api/internal/usecase/queries"
)

type QuizQuestionResponse struct {
	Index    int      `json:"index"`
	Text     string   `json:"text"`
	Options  []string `json:"options"`
	Category string   `json:"category"`
	Weight   int      `json:"weight"`
}

type QuizVerdictResponse struct {
	ResultID       uuid.UUID      `json:"resultId"`
	Passed         bool           `json:"passed"`
	TotalScore     int            `json:"totalScore"`
	CriticalScore  int            `json:"criticalScore"`
	CategoryScores map[string]int `json:"categoryScores"`
	DisplayScores  map[string]int `json:"displayScores"`
	WalkerStatus   string         `json:"walkerStatus"`
}

type QuizProgressResponse struct {
	SessionID uuid.UUID             `json:"sessionId"`
	Answered  int                   `json:"answered"`
	Total     int                   `json:"total"`
	Finished  bool                  `json:"finished"`
	Question  *QuizQuestionResponse `json:"question,omitempty"`
	Verdict   *QuizVerdictResponse  `json:"verdict,omitempty"`
}

func FromQuizQuestionView(v queries.QuizQuestionView) QuizQuestionResponse {
	return QuizQuestionResponse{
		Index:    v.Index,
		Text:     v.Text,
		Options:  v.Options,
		Category: v.Category,
		Weight:   v.Weight,
	}
}

func FromQuizQuestions(views []queries.QuizQuestionView) []QuizQuestionResponse {
	res := make([]QuizQuestionResponse, len(views))
	for i, v := range views {
		res[i] = FromQuizQuestionView(v)
	}
	return res
}

func FromQuizProgress(p *commands.QuizProgress) *QuizProgressResponse {
	res := &QuizProgressResponse{
		SessionID: p.SessionID,
		Answered:  p.Answered,
		Total:     p.Total,
		Finished:  p.Finished(),
	}
	if p.Question != nil {
		q := FromQuizQuestionView(*p.Question)
		res.Question = &q
	}
	if v := p.Verdict; v != nil {
		res.Verdict = &QuizVerdictResponse{
			ResultID:       v.ResultID,
			Passed:         v.Passed,
			TotalScore:     v.TotalScore,
			CriticalScore:  v.CriticalScore,
			CategoryScores: v.CategoryScores,
			DisplayScores:  v.DisplayScores,
			WalkerStatus:   v.WalkerStatus.String(),
		}
	}
	return res
}
