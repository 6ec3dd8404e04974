package config

import "testing"

func TestValidate_AccessTokenTTL(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_EXPIRY", "24 hours")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("ошибка загрузки конфига: %v", err)
	}

	if _, err := cfg.Validate(); err == nil {
		t.Fatal("ожидалась фатальная ошибка для невалидного ACCESS_TOKEN_EXPIRY")
	}

	t.Setenv("ACCESS_TOKEN_EXPIRY", "24h")
	cfg, err = LoadConfig()
	if err != nil {
		t.Fatalf("ошибка загрузки конфига: %v", err)
	}
	if _, err := cfg.Validate(); err != nil {
		t.Fatalf("валидный ACCESS_TOKEN_EXPIRY не должен быть фатальным: %v", err)
	}
}
