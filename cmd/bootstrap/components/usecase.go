package components

import (
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/jwt"
	"hotel-booking/internal/usecase"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewSystem,
	fx.Annotate(
		booking.NewNightlyPriceCalculator,
		fx.As(new(booking.PriceCalculator)),
	),
	fx.Annotate(
		func(s *jwt.Service) *jwt.Service { return s },
		fx.As(new(commands.TokenIssuer), new(usecase.ClaimsParser)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		newAuthCommands,
		newBookingCommands,
		commands.NewRatingCommands,
		commands.NewCatalogCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewBookingQueries,
		queries.NewHotelQueries,
		queries.NewRoomQueries,
		queries.NewReportQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func newAuthCommands(
	uow shared.UnitOfWork,
	clk clock.Clock,
	tokens commands.TokenIssuer,
	cfg config.Config,
) commands.AuthCommands {
	return commands.NewAuthCommands(uow, clk, tokens, cfg.Auth.AdminSignupCode)
}

func newBookingCommands(
	uow shared.UnitOfWork,
	clk clock.Clock,
	pricing booking.PriceCalculator,
	publisher shared.EventPublisher,
	cfg config.Config,
) commands.BookingCommands {
	ttl := cfg.Booking.IdempotencyTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return commands.NewBookingCommands(uow, clk, pricing, publisher, ttl)
}
