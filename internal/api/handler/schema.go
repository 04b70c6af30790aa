package handler

import "github.com/ghiblihub/catalog-api/internal/core/domain"

// ErrorResponse is the envelope of every error answer.
type ErrorResponse struct {
	Detail     string `json:"detail"`
	StatusCode int    `json:"status_code"`
}

type loginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type createUserRequest struct {
	Username string `json:"username"  validate:"required,min=3,max=50"`
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=4,max=72"`
	RoleName string `json:"role_name" validate:"required,oneof=admin films people locations species vehicles"`
}

// updateUserRequest is a partial update: absent fields stay untouched.
type updateUserRequest struct {
	Username *string `json:"username"  validate:"omitempty,min=3,max=50"`
	Email    *string `json:"email"     validate:"omitempty,email"`
	Password *string `json:"password"  validate:"omitempty,min=4,max=72"`
	RoleName *string `json:"role_name" validate:"omitempty,min=1"`
	RoleID   *int64  `json:"role_id"   validate:"omitempty,gt=0"`
}

type roleResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type userResponse struct {
	ID       int64         `json:"id"`
	Username string        `json:"username"`
	Email    string        `json:"email"`
	RoleID   int64         `json:"role_id"`
	Role     *roleResponse `json:"role"`
}

func toUserResponse(u *domain.User) userResponse {
	resp := userResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		RoleID:   u.RoleID,
	}
	if u.Role != nil {
		resp.Role = &roleResponse{ID: u.Role.ID, Name: u.Role.Name}
	}
	return resp
}

func toUserResponses(users []*domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}
