package adaptor_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"account-service/internal/adaptor"
	"account-service/internal/data/entity"
	"account-service/internal/dto/request"
	"account-service/pkg/utils"
)

type stubUserService struct {
	getUserFn        func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	listUsersFn      func(ctx context.Context, query *request.PageQuery) ([]*entity.User, int64, error)
	updateNameFn     func(ctx context.Context, id uuid.UUID, name string) (*entity.User, error)
	updateRoleFn     func(ctx context.Context, id uuid.UUID, role entity.UserRole) (*entity.User, error)
	updatePasswordFn func(ctx context.Context, id uuid.UUID, req *request.PasswordUpdateRequest) error
}

func (s *stubUserService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return s.getUserFn(ctx, id)
}

func (s *stubUserService) ListUsers(ctx context.Context, query *request.PageQuery) ([]*entity.User, int64, error) {
	return s.listUsersFn(ctx, query)
}

func (s *stubUserService) UpdateName(ctx context.Context, id uuid.UUID, name string) (*entity.User, error) {
	return s.updateNameFn(ctx, id, name)
}

func (s *stubUserService) UpdateRole(ctx context.Context, id uuid.UUID, role entity.UserRole) (*entity.User, error) {
	return s.updateRoleFn(ctx, id, role)
}

func (s *stubUserService) UpdatePassword(ctx context.Context, id uuid.UUID, req *request.PasswordUpdateRequest) error {
	return s.updatePasswordFn(ctx, id, req)
}

func newUserHandler(service *stubUserService) *adaptor.UserHandler {
	return adaptor.NewUserHandler(service, zap.NewNop())
}

func sampleUser(id uuid.UUID) *entity.User {
	now := time.Now()
	return &entity.User{
		ID:        id,
		Name:      "Ali",
		Email:     "a@b.co",
		Password:  "stored-hash",
		Role:      entity.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestGetMeWithoutAuthContext(t *testing.T) {
	handler := newUserHandler(&stubUserService{})

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	rec := httptest.NewRecorder()
	handler.GetMe(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "User not authenticated", decodeError(t, rec).Message)
}

func TestGetMeReturnsAuthenticatedUser(t *testing.T) {
	userID := uuid.New()
	handler := newUserHandler(&stubUserService{
		getUserFn: func(_ context.Context, id uuid.UUID) (*entity.User, error) {
			require.Equal(t, userID, id)
			return sampleUser(id), nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req = req.WithContext(utils.SetUserContext(req.Context(), userID, string(entity.RoleUser)))
	rec := httptest.NewRecorder()
	handler.GetMe(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status string `json:"status"`
		Data   struct {
			User map[string]any `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	assert.Equal(t, userID.String(), body.Data.User["id"])
	assert.NotContains(t, rec.Body.String(), "stored-hash")
}

func TestListUsersLimitOutOfRange(t *testing.T) {
	handler := newUserHandler(&stubUserService{
		listUsersFn: func(context.Context, *request.PageQuery) ([]*entity.User, int64, error) {
			t.Fatal("service must not be called for an invalid query")
			return nil, 0, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/users?limit=100", nil)
	rec := httptest.NewRecorder()
	handler.ListUsers(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "Limit must be between 1 and 50")
}

func TestListUsersNonNumericPage(t *testing.T) {
	handler := newUserHandler(&stubUserService{})

	req := httptest.NewRequest(http.MethodGet, "/api/users?page=abc", nil)
	rec := httptest.NewRecorder()
	handler.ListUsers(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request query", decodeError(t, rec).Message)
}

func TestListUsersDefaults(t *testing.T) {
	var got *request.PageQuery
	handler := newUserHandler(&stubUserService{
		listUsersFn: func(_ context.Context, query *request.PageQuery) ([]*entity.User, int64, error) {
			got = query
			return []*entity.User{sampleUser(uuid.New())}, 1, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()
	handler.ListUsers(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, 1, got.PageOrDefault())
	assert.Equal(t, 10, got.LimitOrDefault())

	var body struct {
		Status  string           `json:"status"`
		Users   []map[string]any `json:"users"`
		Results int64            `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	assert.Len(t, body.Users, 1)
	assert.Equal(t, int64(1), body.Results)
}

func TestUpdateRoleInvalidRole(t *testing.T) {
	handler := newUserHandler(&stubUserService{})

	router := chi.NewRouter()
	router.Put("/api/users/{id}/role", handler.UpdateRole)

	body, err := json.Marshal(map[string]string{"role": "owner"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/api/users/"+uuid.NewString()+"/role", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "Invalid user role")
}

func TestUpdateRoleInvalidUserID(t *testing.T) {
	handler := newUserHandler(&stubUserService{})

	router := chi.NewRouter()
	router.Put("/api/users/{id}/role", handler.UpdateRole)

	body, err := json.Marshal(map[string]string{"role": "admin"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/api/users/not-a-uuid/role", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid user ID", decodeError(t, rec).Message)
}

func TestUpdateRolePromotesUser(t *testing.T) {
	targetID := uuid.New()
	handler := newUserHandler(&stubUserService{
		updateRoleFn: func(_ context.Context, id uuid.UUID, role entity.UserRole) (*entity.User, error) {
			require.Equal(t, targetID, id)
			require.Equal(t, entity.RoleAdmin, role)
			user := sampleUser(id)
			user.Role = role
			return user, nil
		},
	})

	router := chi.NewRouter()
	router.Put("/api/users/{id}/role", handler.UpdateRole)

	body, err := json.Marshal(map[string]string{"role": "admin"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/api/users/"+targetID.String()+"/role", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var respBody struct {
		Data struct {
			User map[string]any `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &respBody))
	assert.Equal(t, "admin", respBody.Data.User["role"])
}

func TestUpdatePasswordSuccessMessage(t *testing.T) {
	userID := uuid.New()
	handler := newUserHandler(&stubUserService{
		updatePasswordFn: func(_ context.Context, id uuid.UUID, req *request.PasswordUpdateRequest) error {
			require.Equal(t, userID, id)
			require.Equal(t, "abcdef", req.OldPassword)
			return nil
		},
	})

	body, err := json.Marshal(map[string]string{
		"old_password":         "abcdef",
		"new_password":         "newpass",
		"new_password_confirm": "newpass",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/api/users/password", bytes.NewReader(body))
	req = req.WithContext(utils.SetUserContext(req.Context(), userID, string(entity.RoleUser)))
	rec := httptest.NewRecorder()
	handler.UpdatePassword(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var respBody struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &respBody))
	assert.Equal(t, "success", respBody.Status)
	assert.Equal(t, "Password updated successfully", respBody.Message)
}
