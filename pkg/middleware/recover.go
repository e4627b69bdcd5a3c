package middleware

import (
	"net/http"

	"go.uber.org/zap"

	"account-service/pkg/apperror"
)

// Recover turns panics into the standard 500 envelope so the client never
// sees an unstructured error page.
func Recover(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("Panic recovered",
						zap.Any("error", err),
						zap.String("path", r.URL.Path),
						zap.String("method", r.Method),
						zap.Stack("stack"),
					)
					apperror.ServerError(apperror.ErrServerError.Error()).WriteJSON(w)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
