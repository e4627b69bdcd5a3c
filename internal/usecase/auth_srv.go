package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"account-service/internal/data/entity"
	"account-service/internal/data/repository"
	"account-service/internal/dto/request"
	"account-service/pkg/apperror"
	"account-service/pkg/utils"
)

// Pending-token lifetimes.
const (
	verificationTokenTTL = time.Hour
	resetTokenTTL        = 30 * time.Minute
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*entity.User, error)
	Login(ctx context.Context, req *request.LoginRequest) (string, error)
	VerifyEmail(ctx context.Context, token string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error
}

type authService struct {
	userRepo repository.UserRepository
	config   *utils.Config
	log      *zap.Logger
}

func NewAuthService(userRepo repository.UserRepository, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		config:   config,
		log:      log,
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*entity.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err))
		return nil, apperror.ServerError(apperror.ErrServerError.Error())
	}
	if existing != nil {
		return nil, apperror.UniqueConstraintViolation(apperror.ErrEmailExist.Error())
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, apperror.ServerError(err.Error())
	}

	now := time.Now()
	code := uuid.NewString()
	expiresAt := now.Add(verificationTokenTTL)

	user := &entity.User{
		ID:               uuid.New(),
		Name:             req.Name,
		Email:            req.Email,
		Password:         hashed,
		Role:             entity.RoleUser,
		Verified:         false,
		VerificationCode: &code,
		TokenExpiresAt:   &expiresAt,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, apperror.ErrEmailExist) {
			return nil, apperror.UniqueConstraintViolation(apperror.ErrEmailExist.Error())
		}
		s.log.Error("Failed to create user", zap.Error(err))
		return nil, apperror.ServerError(apperror.ErrServerError.Error())
	}

	// Mail delivery is an external concern; the code is logged so the
	// verification flow works in development.
	s.log.Info("Verification code issued",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
		zap.String("verification_code", code),
		zap.Time("expires_at", expiresAt),
	)

	return user, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user for login", zap.Error(err))
		return "", apperror.ServerError(apperror.ErrServerError.Error())
	}
	if user == nil {
		return "", apperror.Unauthorized(apperror.ErrWrongCredentials.Error())
	}

	ok, err := utils.ComparePassword(user.Password, req.Password)
	if err != nil {
		s.log.Error("Failed to compare password",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
		)
		return "", apperror.ServerError(err.Error())
	}
	if !ok {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return "", apperror.Unauthorized(apperror.ErrWrongCredentials.Error())
	}

	maxAge := time.Duration(s.config.JWTMaxAge) * time.Minute
	token, err := utils.GenerateToken(user.ID.String(), s.config.JWTSecret, maxAge)
	if err != nil {
		s.log.Error("Failed to sign token", zap.Error(err))
		return "", apperror.ServerError(apperror.ErrServerError.Error())
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))
	return token, nil
}

func (s *authService) VerifyEmail(ctx context.Context, token string) error {
	user, err := s.findByValidCode(ctx, token)
	if err != nil {
		return err
	}

	user.Verified = true
	user.VerificationCode = nil
	user.TokenExpiresAt = nil
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.log.Error("Failed to mark user verified",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
		)
		return apperror.ServerError(apperror.ErrServerError.Error())
	}

	s.log.Info("Email verified", zap.String("user_id", user.ID.String()))
	return nil
}

func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to find user for password reset", zap.Error(err))
		return apperror.ServerError(apperror.ErrServerError.Error())
	}
	if user == nil {
		return apperror.BadRequest(apperror.ErrUserNoLongerExist.Error())
	}

	now := time.Now()
	code := uuid.NewString()
	expiresAt := now.Add(resetTokenTTL)

	user.VerificationCode = &code
	user.TokenExpiresAt = &expiresAt
	user.UpdatedAt = now

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.log.Error("Failed to store reset code",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
		)
		return apperror.ServerError(apperror.ErrServerError.Error())
	}

	s.log.Info("Password reset code issued",
		zap.String("user_id", user.ID.String()),
		zap.String("reset_code", code),
		zap.Time("expires_at", expiresAt),
	)

	return nil
}

func (s *authService) ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error {
	user, err := s.findByValidCode(ctx, req.Token)
	if err != nil {
		return err
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		s.log.Error("Failed to hash new password", zap.Error(err))
		return apperror.ServerError(err.Error())
	}

	user.Password = hashed
	user.VerificationCode = nil
	user.TokenExpiresAt = nil
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		s.log.Error("Failed to reset password",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
		)
		return apperror.ServerError(apperror.ErrServerError.Error())
	}

	s.log.Info("Password reset", zap.String("user_id", user.ID.String()))
	return nil
}

// findByValidCode resolves a pending verification/reset code; unknown or
// expired codes both surface as InvalidToken.
func (s *authService) findByValidCode(ctx context.Context, code string) (*entity.User, error) {
	user, err := s.userRepo.FindByVerificationCode(ctx, code)
	if err != nil {
		s.log.Error("Failed to look up verification code", zap.Error(err))
		return nil, apperror.ServerError(apperror.ErrServerError.Error())
	}
	if user == nil || user.TokenExpiresAt == nil || time.Now().After(*user.TokenExpiresAt) {
		return nil, apperror.Unauthorized(apperror.ErrInvalidToken.Error())
	}
	return user, nil
}
