// Package agromonitor предоставляет маршруты для основного приложения.
package agromonitor

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/agro-monitor/internal/config"
	"github.com/magabrotheeeer/agro-monitor/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/agro-monitor/internal/http/handlers/auth/logout"
	"github.com/magabrotheeeer/agro-monitor/internal/http/handlers/auth/session"
	"github.com/magabrotheeeer/agro-monitor/internal/http/handlers/auth/signup"
	cropslist "github.com/magabrotheeeer/agro-monitor/internal/http/handlers/crops/list"
	doctypeslist "github.com/magabrotheeeer/agro-monitor/internal/http/handlers/documenttypes/list"
	eventslist "github.com/magabrotheeeer/agro-monitor/internal/http/handlers/events/list"
	"github.com/magabrotheeeer/agro-monitor/internal/http/handlers/health"
	stationslist "github.com/magabrotheeeer/agro-monitor/internal/http/handlers/stations/list"
	"github.com/magabrotheeeer/agro-monitor/internal/http/middlewarectx"
	authservice "github.com/magabrotheeeer/agro-monitor/internal/services/auth"
	monitoringservice "github.com/magabrotheeeer/agro-monitor/internal/services/monitoring"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, cfg *config.Config,
	authService *authservice.AuthService, monitoringService *monitoringservice.MonitoringService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)
	// Страничные префиксы из конфига закрыты от неаутентифицированных запросов
	r.Use(middlewarectx.RouteGuard(cfg.RouteGuard, authService, logger))

	authLimiter := rate.NewLimiter(1, 5)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.RateLimitMiddleware(logger, authLimiter))
			r.Post("/auth/signup", signup.New(logger, authService).ServeHTTP)
			r.Post("/auth/login", login.New(logger, authService, cfg.TokenTTL).ServeHTTP)
		})
		r.Post("/auth/logout", logout.New(logger).ServeHTTP)
		// Справочник нужен странице регистрации, каталог культур кэшируется публично
		r.Get("/document-types", doctypeslist.New(logger, monitoringService).ServeHTTP)
		r.Get("/crops", cropslist.New(logger, monitoringService).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(authService, logger))
			r.Get("/auth/session", session.New(logger).ServeHTTP)
			r.Get("/capture-events", eventslist.New(logger, monitoringService).ServeHTTP)
			r.Get("/stations", stationslist.New(logger, monitoringService).ServeHTTP)
		})
	})

	r.Get("/health", health.New())
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
