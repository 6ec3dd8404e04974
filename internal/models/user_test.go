package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/surrealdb/surrealdb.go/surrealcbor"
)

// Хеш пароля должен доезжать до хранилища (cbor), но не утекать в API (json).
func TestUserEncoding_PasswordHash(t *testing.T) {
	codec := surrealcbor.New()

	user := User{
		ID:           NewUserID(),
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "bcrypt-hash-value",
		FirstName:    "Alice",
		LastName:     "Liddell",
		Roles:        []string{"USER"},
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}

	encoded, err := codec.Marshal(user)
	if err != nil {
		t.Fatalf("ошибка кодирования пользователя: %v", err)
	}
	if !strings.Contains(string(encoded), "password_hash") {
		t.Fatalf("хеш пароля отсутствует в закодированном документе: %q", encoded)
	}

	var decoded User
	if err := codec.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("ошибка декодирования пользователя: %v", err)
	}
	if decoded.PasswordHash != user.PasswordHash {
		t.Fatalf("хеш пароля не пережил раунд-трип хранилища: %q", decoded.PasswordHash)
	}
	if decoded.Username != "alice" || decoded.Email != "alice@example.com" {
		t.Fatalf("поля пользователя не пережили раунд-трип: %+v", decoded)
	}
}

func TestUserJSON_HidesPasswordHash(t *testing.T) {
	user := User{
		ID:           NewUserID(),
		Username:     "alice",
		PasswordHash: "bcrypt-hash-value",
	}

	body, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("ошибка сериализации пользователя: %v", err)
	}
	if strings.Contains(string(body), "bcrypt-hash-value") || strings.Contains(string(body), "password_hash") {
		t.Fatalf("хеш пароля утёк в JSON-ответ: %s", body)
	}
}
