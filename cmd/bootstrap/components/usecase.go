package components

import (
	"rodizio-reservas/internal/domain/pricing"
	"rodizio-reservas/internal/domain/reservation"
	"rodizio-reservas/internal/pkg/clock"
	"rodizio-reservas/internal/pkg/config"
	"rodizio-reservas/internal/pkg/errs"
	"rodizio-reservas/internal/pkg/jwt"
	"rodizio-reservas/internal/pkg/password"
	"rodizio-reservas/internal/usecase"
	"rodizio-reservas/internal/usecase/commands"
	"rodizio-reservas/internal/usecase/queries"
	"rodizio-reservas/internal/usecase/shared"

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
	fx.Annotate(
		pricing.NewDefaultCalculator,
		fx.As(new(pricing.Calculator)),
	),
	reservation.NewFactory,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		func(cfg config.Config, jwtService *jwt.Service) (commands.AuthCommands, error) {
			if err := password.ValidateHash(cfg.Admin.PasswordHash); err != nil {
				return nil, errs.Wrap(err, "ADMIN_PASSWORD_HASH")
			}
			return commands.NewAuthCommands(cfg.Admin.Username, cfg.Admin.PasswordHash, jwtService), nil
		},
		func(
			store shared.DraftStore,
			settingsQueries queries.SettingsQueries,
			uow shared.UnitOfWork,
			storage shared.ReceiptStorage,
			publisher shared.EventPublisher,
			factory *reservation.Factory,
			clk clock.Clock,
			cfg config.Config,
		) commands.DraftCommands {
			return commands.NewDraftCommands(store, settingsQueries, uow, storage, publisher, factory, clk, cfg.Notice.TTL)
		},
		commands.NewSettingsCommands,
		commands.NewCouponCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSettingsQueries,
		queries.NewPricingQueries,
		queries.NewReservationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
