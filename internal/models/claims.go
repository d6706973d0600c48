package models

import (
	"github.com/golang-jwt/jwt/v4"
)

// JwtCustomClaims are the claims this service accepts on bearer tokens. Users
// are owned by the auth service; the subject claim carries the user UUID.
type JwtCustomClaims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}
