package components

import (
	"context"
	"log/slog"

	"clinic-booking/internal/domain/calendar"
	"clinic-booking/internal/domain/slot"
	"clinic-booking/internal/pkg/clock"
	"clinic-booking/internal/pkg/config"
	"clinic-booking/internal/pkg/password"
	"clinic-booking/internal/usecase"
	"clinic-booking/internal/usecase/commands"
	"clinic-booking/internal/usecase/queries"
	"clinic-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	NewClinicClock,
	calendar.DefaultPolicy,
	slot.DefaultCatalog,
	shared.NewAvailabilityCalculator,
	func(cfg config.Config) password.Hasher {
		return password.NewHasher(cfg.Auth.BcryptCost)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		commands.NewPatientCommands,
	),
	fx.Invoke(ensureAdministrator),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewPatientQueries,
		queries.NewVisitQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

// NewClinicClock reports wall time in the clinic's zone so that "today"
// follows the clinic calendar.
func NewClinicClock(cfg config.Config) (clock.Clock, error) {
	loc, err := cfg.Clinic.Location()
	if err != nil {
		return nil, err
	}
	return clock.NewInLocation(clock.NewRealClock(), loc), nil
}

func ensureAdministrator(lc fx.Lifecycle, auth commands.AuthCommands) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := auth.EnsureAdministrator(ctx); err != nil {
				slog.Error("failed to seed administrator", "error", err.Error())
				return err
			}
			return nil
		},
	})
}
