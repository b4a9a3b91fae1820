package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"rodizio-reservas/internal/handler/api"
	"rodizio-reservas/internal/handler/middleware"
	"rodizio-reservas/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

type Handlers struct {
	Draft    *api.DraftHandler
	Settings *api.SettingsHandler
	Admin    *api.AdminHandler
	Pricing  *api.PricingHandler
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
	engine.NoRoute(middleware.NoRoute())
	engine.MaxMultipartMemory = cfg.Server.MaxUploadSize
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/settings", Handler: h.Settings.GetAll},
			{Method: http.MethodPost, Path: "/pricing/quote", Handler: h.Pricing.Quote},
		})

		drafts := apiGroup.Group("/drafts")
		{
			addRoutes(drafts, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Draft.Start},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Draft.Get},
				{Method: http.MethodPut, Path: "/:id/party-size", Handler: h.Draft.SetPartySize},
				{Method: http.MethodPut, Path: "/:id/participants/:index/name", Handler: h.Draft.SetParticipantName},
				{Method: http.MethodPost, Path: "/:id/participants/:index/bracket", Handler: h.Draft.ToggleBracket},
				{Method: http.MethodPut, Path: "/:id/phone", Handler: h.Draft.SetPhone},
				{Method: http.MethodPost, Path: "/:id/coupon", Handler: h.Draft.ApplyCoupon},
				{Method: http.MethodPost, Path: "/:id/receipt", Handler: h.Draft.UploadReceipt},
				{Method: http.MethodPost, Path: "/:id/prices/refresh", Handler: h.Draft.RefreshPrices},
				{Method: http.MethodPost, Path: "/:id/submit", Handler: h.Draft.Submit},
			})
		}

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Admin.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Admin.Logout},
			})

			adminRequired := admin.Group("")
			adminRequired.Use(authMiddleware.RequireAdmin())
			addRoutes(adminRequired, []route{
				{Method: http.MethodGet, Path: "/settings/prices", Handler: h.Settings.GetPrices},
				{Method: http.MethodPut, Path: "/settings/prices", Handler: h.Settings.SavePrices},
				{Method: http.MethodGet, Path: "/settings/address", Handler: h.Settings.GetAddress},
				{Method: http.MethodPut, Path: "/settings/address", Handler: h.Settings.SaveAddress},
				{Method: http.MethodGet, Path: "/settings/popup", Handler: h.Settings.GetPopup},
				{Method: http.MethodPut, Path: "/settings/popup", Handler: h.Settings.SavePopup},
				{Method: http.MethodGet, Path: "/settings/payment", Handler: h.Settings.GetPayment},
				{Method: http.MethodPut, Path: "/settings/payment", Handler: h.Settings.SavePayment},
				{Method: http.MethodGet, Path: "/reservations", Handler: h.Admin.ListReservations},
				{Method: http.MethodGet, Path: "/reservations/:id", Handler: h.Admin.GetReservation},
				{Method: http.MethodPost, Path: "/coupons", Handler: h.Admin.UpsertCoupon},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
