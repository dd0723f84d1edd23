package middlewarectx

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/magabrotheeeer/agro-monitor/internal/config"
)

// RouteGuard возвращает middleware, закрывающее настроенные префиксы путей
// от неаутентифицированных запросов. Запрос без валидного токена к защищённому
// префиксу перенаправляется на страницу входа; остальные пути проходят насквозь.
//
// Валидная сессия, как и в JWTMiddleware, кладётся в контекст запроса.
func RouteGuard(cfg config.RouteGuard, authService Service, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.RouteGuard"

			if !isProtected(r.URL.Path, cfg.ProtectedPrefixes) {
				next.ServeHTTP(w, r)
				return
			}

			tokenStr := tokenFromRequest(r)
			if tokenStr != "" {
				if session, err := authService.ValidateToken(r.Context(), tokenStr); err == nil {
					ctx := r.Context()
					next.ServeHTTP(w, r.WithContext(contextWithSession(ctx, session)))
					return
				}
			}

			log.Info("unauthenticated request to protected path",
				slog.String("op", op),
				slog.String("path", r.URL.Path),
			)
			http.Redirect(w, r, cfg.SignInPath, http.StatusSeeOther)
		})
	}
}

func isProtected(path string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
