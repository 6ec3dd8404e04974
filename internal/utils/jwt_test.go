package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateToken(t *testing.T) {
	tokenString, err := GenerateToken("mysecret", "testuser", "USER", 15*time.Minute)
	if err != nil {
		t.Fatalf("ошибка генерации токена: %v", err)
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("mysecret"), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("токен не прошёл проверку: %v", err)
	}

	if claims["sub"] != "testuser" {
		t.Fatalf("ожидался sub=testuser, получено %v", claims["sub"])
	}
	if claims["role"] != "USER" {
		t.Fatalf("ожидалась роль USER, получено %v", claims["role"])
	}
	if claims["token_type"] != "access" {
		t.Fatalf("ожидался token_type=access, получено %v", claims["token_type"])
	}
}

func TestGenerateToken_WrongSecret(t *testing.T) {
	tokenString, err := GenerateToken("mysecret", "testuser", "USER", time.Minute)
	if err != nil {
		t.Fatalf("ошибка генерации токена: %v", err)
	}

	_, err = jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte("othersecret"), nil
	})
	if err == nil {
		t.Fatal("токен с чужим секретом не должен проходить проверку")
	}
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("ошибка хеширования: %v", err)
	}
	if hash == "secret1" {
		t.Fatal("хеш совпадает с паролем")
	}
	if !CheckPasswordHash("secret1", hash) {
		t.Fatal("верный пароль не прошёл проверку")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Fatal("неверный пароль прошёл проверку")
	}
}
