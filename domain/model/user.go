package model

import (
	"time"

	"github.com/golang-jwt/jwt"
)

type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UserName  string    `json:"userName"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserClaims carries the session identity inside a JWT. Issuer holds the
// user id so handlers can gate author-only operations.
type UserClaims struct {
	UserName string `json:"user_name"`
	jwt.StandardClaims
}

type ReqLogin struct {
	UserName string `json:"userName" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ReqRegister struct {
	Name     string `json:"name"`
	UserName string `json:"userName" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}
