package repository

import (
	"context"
	"encoding/json"

	"paseos-api/internal/infra"
	"paseos-api/internal/infra/db"
	"paseos-api/internal/infra/pgsql"
	"paseos-api/internal/pkg/errs"
	"paseos-api/internal/pkg/pgconv"
	"paseos-api/internal/usecase/shared"
)

type QuizResultWriteQueries interface {
	CreateQuizResult(ctx context.Context, dbtx db.DBTX, arg pgsql.CreateQuizResultParams) error
}

type QuizResultRepository struct {
	queries QuizResultWriteQueries
	db      db.DBTX
}

func NewQuizResultRepository(queries QuizResultWriteQueries, db db.DBTX) *QuizResultRepository {
	return &QuizResultRepository{
		queries: queries,
		db:      db,
	}
}

func (r *QuizResultRepository) Create(ctx context.Context, rec shared.QuizResultRecord) error {
	categories := make(map[string]int, len(rec.Result.CategoryScores))
	for c, v := range rec.Result.CategoryScores {
		categories[c.String()] = v
	}
	categoryJSON, err := json.Marshal(categories)
	if err != nil {
		return errs.Wrap(err, "marshal category scores")
	}
	answers := rec.Answers
	if answers == nil {
		answers = []int{}
	}
	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return errs.Wrap(err, "marshal quiz answers")
	}

	err = r.queries.CreateQuizResult(ctx, r.db, pgsql.CreateQuizResultParams{
		ID:             rec.ID,
		WalkerID:       rec.WalkerID,
		Passed:         rec.Result.Passed,
		TotalScore:     int32(rec.Result.TotalScore),    // #nosec G115 -- bounded by the question bank
		CriticalScore:  int32(rec.Result.CriticalScore), // #nosec G115 -- bounded by the question bank
		CategoryScores: categoryJSON,
		Answers:        answersJSON,
		CreatedAt:      pgconv.TimeToPgtype(rec.CreatedAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to store quiz result", err)
	}
	return nil
}
