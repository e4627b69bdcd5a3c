package response

import (
	"time"

	"account-service/internal/data/entity"
)

// FilterUser is the public projection of a user record. Fields are
// allow-listed: a new User attribute stays out of the wire until it is
// added here explicitly. Password and verification code never appear.
type FilterUser struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FilterUserFrom(user *entity.User) FilterUser {
	return FilterUser{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role.String(),
		Verified:  user.Verified,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// FilterUsers projects a slice one-to-one, preserving order.
func FilterUsers(users []*entity.User) []FilterUser {
	filtered := make([]FilterUser, 0, len(users))
	for _, user := range users {
		filtered = append(filtered, FilterUserFrom(user))
	}
	return filtered
}

type UserData struct {
	User FilterUser `json:"user"`
}

type UserResponse struct {
	Status string   `json:"status"`
	Data   UserData `json:"data"`
}

func NewUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		Status: "success",
		Data:   UserData{User: FilterUserFrom(user)},
	}
}

type UserListResponse struct {
	Status  string       `json:"status"`
	Users   []FilterUser `json:"users"`
	Results int64        `json:"results"`
}

func NewUserListResponse(users []*entity.User, results int64) UserListResponse {
	return UserListResponse{
		Status:  "success",
		Users:   FilterUsers(users),
		Results: results,
	}
}

type LoginResponse struct {
	Status string `json:"status"`
	Token  string `json:"token"`
}

func NewLoginResponse(token string) LoginResponse {
	return LoginResponse{Status: "success", Token: token}
}

type MessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Status: "success", Message: message}
}
