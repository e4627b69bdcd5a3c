package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"account-service/internal/data/entity"
	"account-service/internal/data/repository"
	"account-service/internal/dto/request"
	"account-service/pkg/apperror"
	"account-service/pkg/utils"
)

type UserService interface {
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
	ListUsers(ctx context.Context, query *request.PageQuery) ([]*entity.User, int64, error)
	UpdateName(ctx context.Context, id uuid.UUID, name string) (*entity.User, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role entity.UserRole) (*entity.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, req *request.PasswordUpdateRequest) error
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log,
	}
}

func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return s.mustFind(ctx, id)
}

func (s *userService) ListUsers(ctx context.Context, query *request.PageQuery) ([]*entity.User, int64, error) {
	users, err := s.userRepo.FindAll(ctx, query.LimitOrDefault(), query.Offset())
	if err != nil {
		s.log.Error("Failed to list users", zap.Error(err))
		return nil, 0, apperror.ServerError(apperror.ErrServerError.Error())
	}

	total, err := s.userRepo.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count users", zap.Error(err))
		return nil, 0, apperror.ServerError(apperror.ErrServerError.Error())
	}

	return users, total, nil
}

func (s *userService) UpdateName(ctx context.Context, id uuid.UUID, name string) (*entity.User, error) {
	user, err := s.mustFind(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Name = name
	user.UpdatedAt = time.Now()

	if err := s.update(ctx, user, "name"); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateRole(ctx context.Context, id uuid.UUID, role entity.UserRole) (*entity.User, error) {
	user, err := s.mustFind(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Role = role
	user.UpdatedAt = time.Now()

	if err := s.update(ctx, user, "role"); err != nil {
		return nil, err
	}

	s.log.Info("Role updated",
		zap.String("user_id", user.ID.String()),
		zap.String("role", role.String()),
	)
	return user, nil
}

func (s *userService) UpdatePassword(ctx context.Context, id uuid.UUID, req *request.PasswordUpdateRequest) error {
	user, err := s.mustFind(ctx, id)
	if err != nil {
		return err
	}

	ok, err := utils.ComparePassword(user.Password, req.OldPassword)
	if err != nil {
		s.log.Error("Failed to compare password",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
		)
		return apperror.ServerError(err.Error())
	}
	if !ok {
		return apperror.Unauthorized(apperror.ErrWrongCredentials.Error())
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		s.log.Error("Failed to hash new password", zap.Error(err))
		return apperror.ServerError(err.Error())
	}

	user.Password = hashed
	user.UpdatedAt = time.Now()

	return s.update(ctx, user, "password")
}

func (s *userService) mustFind(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", id.String()))
		return nil, apperror.ServerError(apperror.ErrServerError.Error())
	}
	if user == nil {
		return nil, apperror.BadRequest(apperror.ErrUserNoLongerExist.Error())
	}
	return user, nil
}

func (s *userService) update(ctx context.Context, user *entity.User, what string) error {
	if err := s.userRepo.Update(ctx, user); err != nil {
		s.log.Error("Failed to update user "+what,
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
		)
		return apperror.ServerError(apperror.ErrServerError.Error())
	}
	return nil
}
