package adaptor

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"account-service/internal/dto/request"
	"account-service/internal/dto/response"
	"account-service/internal/usecase"
	"account-service/pkg/apperror"
	"account-service/pkg/utils"
	"account-service/pkg/validation"
)

type AuthHandler struct {
	service usecase.AuthService
	config  *utils.Config
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, config *utils.Config, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		config:  config,
		log:     log,
	}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperror.BadRequest("Invalid request body").WriteJSON(w)
		return
	}

	if violations := req.Validate(); len(violations) > 0 {
		apperror.BadRequest(validation.Format(violations)).WriteJSON(w)
		return
	}

	user, err := h.service.Register(r.Context(), &req)
	if err != nil {
		writeError(w, h.log, "register", err)
		return
	}

	writeJSON(w, http.StatusCreated, response.NewUserResponse(user))
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperror.BadRequest("Invalid request body").WriteJSON(w)
		return
	}

	if violations := req.Validate(); len(violations) > 0 {
		apperror.BadRequest(validation.Format(violations)).WriteJSON(w)
		return
	}

	token, err := h.service.Login(r.Context(), &req)
	if err != nil {
		writeError(w, h.log, "login", err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		MaxAge:   h.config.JWTMaxAge * 60,
		HttpOnly: true,
	})
	writeJSON(w, http.StatusOK, response.NewLoginResponse(token))
}

// Logout handles GET /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	writeJSON(w, http.StatusOK, response.NewMessageResponse("Logged out successfully"))
}

// VerifyEmail handles GET /api/auth/verify-email?token=...
func (h *AuthHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	req := request.VerifyEmailRequest{Token: r.URL.Query().Get("token")}

	if violations := req.Validate(); len(violations) > 0 {
		apperror.BadRequest(validation.Format(violations)).WriteJSON(w)
		return
	}

	if err := h.service.VerifyEmail(r.Context(), req.Token); err != nil {
		writeError(w, h.log, "verify email", err)
		return
	}

	writeJSON(w, http.StatusOK, response.NewMessageResponse("Email verified successfully"))
}

// ForgotPassword handles POST /api/auth/forgot-password
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperror.BadRequest("Invalid request body").WriteJSON(w)
		return
	}

	if violations := req.Validate(); len(violations) > 0 {
		apperror.BadRequest(validation.Format(violations)).WriteJSON(w)
		return
	}

	if err := h.service.ForgotPassword(r.Context(), req.Email); err != nil {
		writeError(w, h.log, "forgot password", err)
		return
	}

	writeJSON(w, http.StatusOK, response.NewMessageResponse("Password reset link has been sent to your email"))
}

// ResetPassword handles POST /api/auth/reset-password
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperror.BadRequest("Invalid request body").WriteJSON(w)
		return
	}

	if violations := req.Validate(); len(violations) > 0 {
		apperror.BadRequest(validation.Format(violations)).WriteJSON(w)
		return
	}

	if err := h.service.ResetPassword(r.Context(), &req); err != nil {
		writeError(w, h.log, "reset password", err)
		return
	}

	writeJSON(w, http.StatusOK, response.NewMessageResponse("Password has been successfully reset"))
}
