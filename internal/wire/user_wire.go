package wire

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"account-service/internal/adaptor"
	"account-service/internal/data/repository"
	"account-service/pkg/middleware"
	"account-service/pkg/utils"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	auth := middleware.AuthJWT(repo.User, config, log)
	admin := middleware.RequireAdmin(log)

	// Authenticated routes
	r.With(auth).Get("/api/users/me", userHandler.GetMe)
	r.With(auth).Put("/api/users/name", userHandler.UpdateName)
	r.With(auth).Put("/api/users/password", userHandler.UpdatePassword)

	// Admin routes
	r.With(auth, admin).Get("/api/users", userHandler.ListUsers)
	r.With(auth, admin).Put("/api/users/{id}/role", userHandler.UpdateRole)
}
