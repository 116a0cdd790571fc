package components

import (
	"paseos-api/internal/handler"
	"paseos-api/internal/handler/api"
	"paseos-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewRegistrationHandler,
		api.NewCedulaHandler,
		api.NewQuizHandler,
		api.NewReservationHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	registration *api.RegistrationHandler,
	cedula *api.CedulaHandler,
	quiz *api.QuizHandler,
	reservation *api.ReservationHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:         auth,
		Registration: registration,
		Cedula:       cedula,
		Quiz:         quiz,
		Reservation:  reservation,
	}
}
