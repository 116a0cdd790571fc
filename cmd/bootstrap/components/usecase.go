package components

import (
	"paseos-api/internal/pkg/clock"
	"paseos-api/internal/pkg/config"
	"paseos-api/internal/pkg/password"
	"paseos-api/internal/usecase"
	"paseos-api/internal/usecase/commands"
	"paseos-api/internal/usecase/queries"
	"paseos-api/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	password.NewHasher,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewRegistrationCommands,
		NewQuizCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewReservationQueries,
		queries.NewQuizQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewQuizCommands(
	uow shared.UnitOfWork,
	users queries.UserReadStore,
	sessions commands.QuizSessionStore,
	publisher shared.EventPublisher,
	clk clock.Clock,
	cfg config.Config,
) (commands.QuizCommands, error) {
	return commands.NewQuizCommands(uow, users, sessions, publisher, clk, cfg.Quiz.SessionTTL)
}
