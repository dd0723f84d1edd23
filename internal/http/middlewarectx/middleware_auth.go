// Package middlewarectx содержит HTTP middleware для проверки JWT токенов сессии.
//
// JWTMiddleware извлекает токен из заголовка Authorization или из cookie сессии,
// проверяет его и кладёт восстановленную сессию в контекст запроса.
// RouteGuard перенаправляет неаутентифицированные браузерные запросы
// к защищённым префиксам на страницу входа.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/agro-monitor/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/agro-monitor/internal/http/response"
	"github.com/magabrotheeeer/agro-monitor/internal/lib/sl"
	"github.com/magabrotheeeer/agro-monitor/internal/models"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// SessionKey — ключ, под которым сессия запроса хранится в контексте.
const SessionKey Key = "session"

// Service описывает интерфейс сервиса для проверки JWT токена.
type Service interface {
	ValidateToken(ctx context.Context, token string) (models.Session, error)
}

// SessionFromContext достаёт сессию запроса из контекста.
func SessionFromContext(ctx context.Context) (models.Session, bool) {
	session, ok := ctx.Value(SessionKey).(models.Session)
	return session, ok
}

func contextWithSession(ctx context.Context, session models.Session) context.Context {
	return context.WithValue(ctx, SessionKey, session)
}

// tokenFromRequest извлекает токен из заголовка Authorization (Bearer)
// или, если заголовка нет, из cookie сессии.
func tokenFromRequest(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := r.Cookie(login.SessionCookieName); err == nil {
		return cookie.Value
	}
	return ""
}

// JWTMiddleware возвращает HTTP middleware, который проверяет токен сессии.
//
// Если токен валиден, восстановленная сессия добавляется в контекст запроса,
// иначе возвращается ошибка с HTTP статусом 401 Unauthorized.
func JWTMiddleware(authService Service, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.JWTMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			tokenStr := tokenFromRequest(r)
			if tokenStr == "" {
				log.Error("missing authorization token")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("missing authorization token"))
				return
			}

			session, err := authService.ValidateToken(r.Context(), tokenStr)
			if err != nil {
				log.Error("invalid or expired token", sl.Err(err))
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired token"))
				return
			}
			next.ServeHTTP(w, r.WithContext(contextWithSession(r.Context(), session)))
		})
	}
}
