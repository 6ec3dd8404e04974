package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken создаёт access-токен (HS256). Субъект — имя пользователя:
// по нему обработчики восстанавливают доменную личность через AuthService.
func GenerateToken(secret, username, role string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":        username,
		"role":       role,
		"exp":        time.Now().Add(duration).Unix(),
		"iat":        time.Now().Unix(), // issued at — доп. уникальность
		"token_type": "access",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
