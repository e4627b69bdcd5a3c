package wire

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"account-service/internal/adaptor"
	"account-service/internal/data/repository"
	"account-service/pkg/middleware"
	"account-service/pkg/utils"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// Public routes
	r.Post("/api/auth/register", authHandler.Register)
	r.Post("/api/auth/login", authHandler.Login)
	r.Get("/api/auth/verify-email", authHandler.VerifyEmail)
	r.Post("/api/auth/forgot-password", authHandler.ForgotPassword)
	r.Post("/api/auth/reset-password", authHandler.ResetPassword)

	// Protected routes
	r.With(middleware.AuthJWT(repo.User, config, log)).Get("/api/auth/logout", authHandler.Logout)
}
