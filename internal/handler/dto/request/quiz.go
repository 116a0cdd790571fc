package request

// AnswerQuizRequest names the question being answered so that a retried or duplicated
// submission cannot be scored against the following question.
type AnswerQuizRequest struct {
	Question *int `json:"question" binding:"required,min=0"`
	// left unbound: a missing option is an unanswered question, not a malformed request
	Option *int `json:"option"`
}
