package pgsql

import (
	"context"

	"paseos-api/internal/infra/db"
)

const createQuizResult = `INSERT INTO walker_quiz_results (
	id, walker_id, passed, total_score, critical_score, category_scores, answers, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

func (q *Queries) CreateQuizResult(ctx context.Context, dbtx db.DBTX, arg CreateQuizResultParams) error {
	_, err := dbtx.Exec(ctx, createQuizResult,
		arg.ID,
		arg.WalkerID,
		arg.Passed,
		arg.TotalScore,
		arg.CriticalScore,
		arg.CategoryScores,
		arg.Answers,
		arg.CreatedAt,
	)
	return err
}
