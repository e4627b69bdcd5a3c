package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"account-service/internal/usecase"
	"account-service/pkg/apperror"
	"account-service/pkg/utils"
)

type Handler struct {
	Auth *AuthHandler
	User *UserHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth: NewAuthHandler(service.Auth, config, log),
		User: NewUserHandler(service.User, log),
	}
}

func writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// writeError converts a service failure into the wire envelope. Anything
// outside the taxonomy becomes a generic 500 so no internal text leaks.
func writeError(w http.ResponseWriter, log *zap.Logger, operation string, err error) {
	var httpErr *apperror.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Status >= http.StatusInternalServerError {
			log.Error("Operation failed", zap.String("operation", operation), zap.Error(err))
		} else {
			log.Warn("Operation rejected", zap.String("operation", operation), zap.Error(err))
		}
		httpErr.WriteJSON(w)
		return
	}

	log.Error("Operation failed", zap.String("operation", operation), zap.Error(err))
	apperror.ServerError(apperror.ErrServerError.Error()).WriteJSON(w)
}
