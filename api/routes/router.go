package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/warefront/warefront-backend/api/controllers"
	"github.com/warefront/warefront-backend/api/middleware"
	"github.com/warefront/warefront-backend/internal/alerts"
	"github.com/warefront/warefront-backend/internal/auth"
	"github.com/warefront/warefront-backend/internal/inventory"
	"github.com/warefront/warefront-backend/internal/mismatches"
	"github.com/warefront/warefront-backend/internal/reports"
	"github.com/warefront/warefront-backend/internal/users"
	"github.com/warefront/warefront-backend/internal/warehouses"
	"github.com/warefront/warefront-backend/pkg/auth/session"
	"github.com/warefront/warefront-backend/pkg/config"
	"github.com/warefront/warefront-backend/pkg/db"
	"github.com/warefront/warefront-backend/pkg/enums"
	"github.com/warefront/warefront-backend/pkg/logger"
	"github.com/warefront/warefront-backend/pkg/metrics"
	"github.com/warefront/warefront-backend/pkg/redis"
)

// RouterParams bundles everything the HTTP surface depends on.
type RouterParams struct {
	Config          *config.Config
	Logger          *logger.Logger
	DB              db.Pinger
	Redis           *redis.Client
	SessionManager  *session.Manager
	Metrics         *metrics.HTTPMetrics
	MetricsGatherer prometheus.Gatherer

	AuthService      auth.Service
	RegisterService  auth.RegisterService
	UserService      users.Service
	InventoryService inventory.Service
	WarehouseService warehouses.Service
	MismatchService  mismatches.Service
	ReportService    reports.Service
	AlertService     alerts.Service
}

func NewRouter(p RouterParams) http.Handler {
	cfg := p.Config
	logg := p.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(p.Metrics),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, p.DB, p.Redis))
	})

	if p.MetricsGatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(p.MetricsGatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/user", func(r chi.Router) {
		r.Post("/register", controllers.AuthRegister(p.RegisterService, logg))
		r.With(middleware.AuthRateLimit(loginPolicy, p.Redis, logg)).
			Post("/login", controllers.AuthLogin(p.AuthService, logg))
		r.Post("/refresh", controllers.AuthRefresh(p.AuthService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, p.SessionManager, logg))
			r.Post("/logout", controllers.AuthLogout(p.AuthService, logg))
			r.Get("/me", controllers.UserMe(p.UserService, logg))
			r.Put("/", controllers.UserUpdate(p.UserService, logg))
			r.With(middleware.RequireRole(string(enums.UserRoleAdmin), logg)).
				Get("/{userId}", controllers.UserGet(p.UserService, logg))
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, p.SessionManager, logg))

		r.Route("/inventory", func(r chi.Router) {
			r.Get("/", controllers.InventoryList(p.InventoryService, logg))
			r.Post("/", controllers.InventoryCreate(p.InventoryService, logg))
			r.Get("/{itemId}", controllers.InventoryGet(p.InventoryService, logg))
			r.Put("/{itemId}", controllers.InventoryUpdate(p.InventoryService, logg))
			r.Delete("/{itemId}", controllers.InventoryDelete(p.InventoryService, logg))
		})

		r.Route("/warehouse", func(r chi.Router) {
			r.Get("/", controllers.WarehouseList(p.WarehouseService, logg))
			r.Post("/", controllers.WarehouseCreate(p.WarehouseService, logg))
			r.Get("/{warehouseId}", controllers.WarehouseGet(p.WarehouseService, logg))
			r.Put("/{warehouseId}", controllers.WarehouseUpdate(p.WarehouseService, logg))
			r.Delete("/{warehouseId}", controllers.WarehouseDelete(p.WarehouseService, logg))
		})

		r.Route("/mismatches", func(r chi.Router) {
			r.Get("/", controllers.MismatchList(p.MismatchService, logg))
			r.Post("/", controllers.MismatchCreate(p.MismatchService, logg))
		})

		r.Get("/reports", controllers.ReportGet(p.ReportService, logg))

		r.Route("/alerts", func(r chi.Router) {
			r.Get("/", controllers.AlertList(p.AlertService, logg))
			r.Get("/summary", controllers.AlertSummary(p.AlertService, logg))
			r.Post("/evaluate", controllers.AlertEvaluate(p.AlertService, logg))
			r.Post("/{alertId}/resolve", controllers.AlertResolve(p.AlertService, logg))
		})
	})

	return r
}
