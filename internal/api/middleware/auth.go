package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/HMS-FrontdeskService/internal/api/handlers"
)

const userIDHeader = "X-User-ID"

const msgMissingUserID = "отсутствует или некорректен заголовок X-User-ID"

type contextKey string

const userIDKey contextKey = "userID"

// Auth извлекает ID сотрудника из заголовка X-User-ID и кладет его в контекст
// Запросы без валидного заголовка отклоняются с 401
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.ParseInt(r.Header.Get(userIDHeader), 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext возвращает ID сотрудника, положенный Auth middleware
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
