package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"account-service/internal/data/entity"
	"account-service/internal/dto/request"
	"account-service/internal/dto/response"
	"account-service/internal/usecase"
	"account-service/pkg/apperror"
	"account-service/pkg/utils"
	"account-service/pkg/validation"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log,
	}
}

// GetMe handles GET /api/users/me
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		apperror.Unauthorized(apperror.ErrUserNotAuthenticated.Error()).WriteJSON(w)
		return
	}

	user, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		writeError(w, h.log, "get profile", err)
		return
	}

	writeJSON(w, http.StatusOK, response.NewUserResponse(user))
}

// ListUsers handles GET /api/users?page=&limit= (admin only)
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	query, err := parsePageQuery(r)
	if err != nil {
		apperror.BadRequest("Invalid request query").WriteJSON(w)
		return
	}

	if violations := query.Validate(); len(violations) > 0 {
		apperror.BadRequest(validation.Format(violations)).WriteJSON(w)
		return
	}

	users, total, err := h.service.ListUsers(r.Context(), query)
	if err != nil {
		writeError(w, h.log, "list users", err)
		return
	}

	writeJSON(w, http.StatusOK, response.NewUserListResponse(users, total))
}

// UpdateName handles PUT /api/users/name
func (h *UserHandler) UpdateName(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		apperror.Unauthorized(apperror.ErrUserNotAuthenticated.Error()).WriteJSON(w)
		return
	}

	var req request.UpdateNameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperror.BadRequest("Invalid request body").WriteJSON(w)
		return
	}

	if violations := req.Validate(); len(violations) > 0 {
		apperror.BadRequest(validation.Format(violations)).WriteJSON(w)
		return
	}

	user, err := h.service.UpdateName(r.Context(), userID, req.Name)
	if err != nil {
		writeError(w, h.log, "update name", err)
		return
	}

	writeJSON(w, http.StatusOK, response.NewUserResponse(user))
}

// UpdateRole handles PUT /api/users/{id}/role (admin only)
func (h *UserHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	targetID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		apperror.BadRequest("Invalid user ID").WriteJSON(w)
		return
	}

	var req request.RoleUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperror.BadRequest("Invalid request body").WriteJSON(w)
		return
	}

	if violations := req.Validate(); len(violations) > 0 {
		apperror.BadRequest(validation.Format(violations)).WriteJSON(w)
		return
	}

	// Validation guarantees the token is a member of the role enum.
	role, _ := entity.ParseUserRole(req.Role)

	user, err := h.service.UpdateRole(r.Context(), targetID, role)
	if err != nil {
		writeError(w, h.log, "update role", err)
		return
	}

	writeJSON(w, http.StatusOK, response.NewUserResponse(user))
}

// UpdatePassword handles PUT /api/users/password
func (h *UserHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		apperror.Unauthorized(apperror.ErrUserNotAuthenticated.Error()).WriteJSON(w)
		return
	}

	var req request.PasswordUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperror.BadRequest("Invalid request body").WriteJSON(w)
		return
	}

	if violations := req.Validate(); len(violations) > 0 {
		apperror.BadRequest(validation.Format(violations)).WriteJSON(w)
		return
	}

	if err := h.service.UpdatePassword(r.Context(), userID, &req); err != nil {
		writeError(w, h.log, "update password", err)
		return
	}

	writeJSON(w, http.StatusOK, response.NewMessageResponse("Password updated successfully"))
}

// parsePageQuery reads optional page/limit query parameters; absence means
// "use the default", a non-numeric value is a parse error.
func parsePageQuery(r *http.Request) (*request.PageQuery, error) {
	var query request.PageQuery

	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return nil, err
		}
		query.Page = &page
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return nil, err
		}
		query.Limit = &limit
	}

	return &query, nil
}
