package usecase

import (
	"go.uber.org/zap"

	"account-service/internal/data/repository"
	"account-service/pkg/utils"
)

type Service struct {
	Auth AuthService
	User UserService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth: NewAuthService(repo.User, config, log),
		User: NewUserService(repo.User, log),
	}
}
