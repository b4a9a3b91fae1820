package components

import (
	"rodizio-reservas/internal/handler"
	"rodizio-reservas/internal/handler/api"
	"rodizio-reservas/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewDraftHandler,
		api.NewSettingsHandler,
		api.NewAdminHandler,
		api.NewPricingHandler,
		middleware.NewAuthMiddleware,
		func(d *api.DraftHandler, s *api.SettingsHandler, a *api.AdminHandler, p *api.PricingHandler) handler.Handlers {
			return handler.Handlers{Draft: d, Settings: s, Admin: a, Pricing: p}
		},
	),
	fx.Invoke(handler.NewRouter),
)
