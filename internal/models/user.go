package models

import "time"

type User struct {
	ID           UserID    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	// json:"-" прячет хеш из API-ответов; cbor-тег обязателен, иначе кодек
	// хранилища пропустит поле вслед за json-тегом и хеш не будет сохранён.
	PasswordHash string    `json:"-" cbor:"password_hash"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Bio          string    `json:"bio,omitempty"`
	Avatar       string    `json:"avatar,omitempty"`
	Roles        []string  `json:"roles"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AuthPrincipal — минимальное представление учётных данных для проверки
// логина: ровно то, что нужно слою токенов, и ничего больше.
type AuthPrincipal struct {
	Username     string
	PasswordHash string
	Roles        []string
}

// swagger:model SignupRequest
type SignupRequest struct {
	FirstName string `json:"first_name" validate:"required,min=2,max=50,personname"`
	LastName  string `json:"last_name"  validate:"required,min=2,max=50,personname"`
	Username  string `json:"username"   validate:"required,min=3,max=30"`
	Email     string `json:"email"      validate:"required,email"`
	Password  string `json:"password"   validate:"required,min=6,max=100"`
	Bio       string `json:"bio"        validate:"omitempty,max=500"`
	Avatar    string `json:"avatar"     validate:"omitempty,url"`
}

// swagger:model LoginRequest
type LoginRequest struct {
	// Имя пользователя или email
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password"   validate:"required"`
}

type AuthResponse struct {
	AccessToken string `json:"access_token"`
	ID          UserID `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
}
