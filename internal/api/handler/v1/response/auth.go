package response

import "github.com/swingthoughts/swing-thoughts-api/internal/domain"

type LoginResponse struct {
	Token string             `json:"token"`
	User  domain.UserProfile `json:"user"`
}
