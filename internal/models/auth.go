package models

import "github.com/golang-jwt/jwt/v5"

// SessionClaims are the JWT claims carried by an admin session token.
type SessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}
