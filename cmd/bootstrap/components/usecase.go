package components

import (
	"time"

	"venuebook/internal/domain/booking"
	"venuebook/internal/pkg/clock"
	"venuebook/internal/pkg/config"
	"venuebook/internal/report"
	"venuebook/internal/usecase"
	"venuebook/internal/usecase/commands"
	"venuebook/internal/usecase/queries"

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
	NewBookingServices,
	booking.NewFactory,
	report.NewExporter,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewBookingQueries,
		queries.NewSlotQueries,
		queries.NewEventQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewSlotCommands,
		commands.NewEventCommands,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

// NewBookingServices fixes the location in which calendar dates and
// times-of-day are composed into instants.
func NewBookingServices(cfg config.Config, clk clock.Clock) (*booking.Services, error) {
	loc, err := time.LoadLocation(cfg.Booking.TimeZone)
	if err != nil {
		return nil, err
	}
	return &booking.Services{
		Clock:    clk,
		Location: loc,
	}, nil
}
