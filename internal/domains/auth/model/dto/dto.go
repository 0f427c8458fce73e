package dto

import (
	"passat/infras/jwt"
)

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *LoginResponse) FromTokenPair(pair *jwt.TokenPair) {
	r.AccessToken = pair.AccessToken
	r.RefreshToken = pair.RefreshToken
	r.TokenType = pair.TokenType
	r.ExpiresIn = pair.ExpiresIn
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *RefreshTokenResponse) FromTokenPair(pair *jwt.TokenPair) {
	r.AccessToken = pair.AccessToken
	r.RefreshToken = pair.RefreshToken
	r.TokenType = pair.TokenType
	r.ExpiresIn = pair.ExpiresIn
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8"`
}

type UpdatePasswordRequest struct {
	Password string `db:"password"`
}
