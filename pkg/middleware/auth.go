package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"account-service/internal/data/entity"
	"account-service/internal/data/repository"
	"account-service/pkg/apperror"
	"account-service/pkg/utils"
)

// AuthJWT authenticates the request from a bearer header or the token
// cookie, confirms the subject still exists, and stores id and role on the
// request context.
func AuthJWT(userRepo repository.UserRepository, config *utils.Config, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				apperror.Unauthorized(apperror.ErrTokenNotProvided.Error()).WriteJSON(w)
				return
			}

			subject, err := utils.ParseToken(token, config.JWTSecret)
			if err != nil {
				apperror.Unauthorized(apperror.ErrInvalidToken.Error()).WriteJSON(w)
				return
			}

			userID, err := uuid.Parse(subject)
			if err != nil {
				apperror.Unauthorized(apperror.ErrInvalidToken.Error()).WriteJSON(w)
				return
			}

			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil {
				logger.Error("Failed to load authenticated user",
					zap.Error(err),
					zap.String("user_id", userID.String()),
				)
				apperror.ServerError(apperror.ErrServerError.Error()).WriteJSON(w)
				return
			}
			if user == nil {
				apperror.BadRequest(apperror.ErrUserNoLongerExist.Error()).WriteJSON(w)
				return
			}

			ctx := utils.SetUserContext(r.Context(), user.ID, user.Role.String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin gates admin-only routes. Role violations answer 403.
func RequireAdmin(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				apperror.Unauthorized(apperror.ErrUserNotAuthenticated.Error()).WriteJSON(w)
				return
			}

			if role != entity.RoleAdmin.String() {
				logger.Warn("Non-admin access attempt",
					zap.String("role", role),
					zap.String("path", r.URL.Path),
				)
				apperror.Forbidden(apperror.ErrPermissionDenied.Error()).WriteJSON(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}

	if cookie, err := r.Cookie("token"); err == nil {
		return cookie.Value
	}
	return ""
}
