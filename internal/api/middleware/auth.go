// Package middleware содержит HTTP middleware для API
package middleware

import (
	"context"
	"net/http"
	"strconv"
)

// userIDKey ключ контекста для ID пользователя
type userIDKey struct{}

// HeaderUserID заголовок с ID аутентифицированного пользователя.
// Аутентификацию выполняет API gateway, сервис доверяет заголовку.
const HeaderUserID = "X-User-ID"

// Auth извлекает ID пользователя из заголовка и кладет его в контекст запроса.
// Запросы без корректного заголовка пропускаются дальше - обработчики сами
// решают, обязателен ли пользователь для их операции.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get(HeaderUserID)
		if userIDStr != "" {
			if userID, err := strconv.ParseInt(userIDStr, 10, 64); err == nil && userID > 0 {
				ctx := context.WithValue(r.Context(), userIDKey{}, userID)
				r = r.WithContext(ctx)
			}
		}
		next.ServeHTTP(w, r)
	})
}

// GetUserID возвращает ID пользователя из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey{}).(int64)
	return userID, ok
}
