package broker

import (
	"context"
	"log/slog"

	"paseos-api/internal/usecase/shared"
)

// NopPublisher is used when no broker is configured; events are only logged.
type NopPublisher struct{}

func (NopPublisher) PublishQuizEvaluated(_ context.Context, event shared.QuizEvaluatedEvent) error {
	slog.Debug("broker disabled, dropping quiz event", "result_id", event.ResultID, "passed", event.Passed)
	return nil
}
