package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User is an account document.
type User struct {
	ID           string    `json:"id" bson:"_id"`
	Email        string    `json:"email" bson:"email"`
	DisplayName  string    `json:"displayName,omitempty" bson:"displayName,omitempty"`
	PasswordHash string    `json:"-" bson:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}

// UserClaims are the JWT claims carried by a bearer token.
type UserClaims struct {
	UserID string `json:"uid"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// LoginResponse is returned on successful login or registration.
type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
	Email  string `json:"email"`
}
