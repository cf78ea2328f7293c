package model

import (
	"github.com/golang-jwt/jwt/v5"
)

// Admin администратор кампании: настраивает призы и вероятности
type Admin struct {
	ID       int
	Name     string
	Login    string
	Password string
}

type AdminClaims struct {
	jwt.RegisteredClaims
}

// AuthData результат регистрации или входа
type AuthData struct {
	AccessToken  string
	RefreshToken string
	SessionID    string
}
