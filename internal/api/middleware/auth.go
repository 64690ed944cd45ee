package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
)

type contextKey string

const userIDKey contextKey = "userID"

const msgUnauthorized = "требуется заголовок X-User-ID"

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Auth проверяет заголовок X-User-ID и кладёт ID пользователя в контекст.
// Аутентификацию выполняет API gateway - здесь только проверка наличия.
func Auth(log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get("X-User-ID")
			if raw == "" {
				log.Warn("%s %s - Missing X-User-ID header", r.Method, r.URL.Path)
				handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
				return
			}

			userID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				log.Warn("%s %s - Invalid X-User-ID header: %v", r.Method, r.URL.Path, err)
				handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext возвращает ID пользователя, положенный Auth middleware
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
