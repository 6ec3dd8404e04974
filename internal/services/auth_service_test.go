package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"inkwell/internal/models"
	"inkwell/internal/utils"
)

// Мок-репозиторий (заглушка)
type mockUserRepo struct {
	users    map[string]*models.User
	lastUser *models.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*models.User)}
}

func (m *mockUserRepo) IsUsernameTaken(_ context.Context, username string) (bool, error) {
	_, exists := m.users[username]
	return exists, nil
}

func (m *mockUserRepo) IsEmailTaken(_ context.Context, email string) (bool, error) {
	for _, u := range m.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockUserRepo) CreateUser(_ context.Context, user *models.User) error {
	m.users[user.Username] = user
	m.lastUser = user
	return nil
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	return m.users[username], nil
}

func (m *mockUserRepo) GetByUsernameOrEmail(_ context.Context, identifier string) (*models.User, error) {
	if u, ok := m.users[identifier]; ok {
		return u, nil
	}
	for _, u := range m.users {
		if u.Email == identifier {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id models.UserID) (*models.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func validSignup() models.SignupRequest {
	return models.SignupRequest{
		Username:  "testuser",
		Email:     "test@example.com",
		Password:  "secret1",
		FirstName: "Ivan",
		LastName:  "Petrov",
	}
}

func TestRegister(t *testing.T) {
	repo := newMockUserRepo()
	service := NewAuthService(repo)

	user, err := service.Register(context.Background(), validSignup())
	if err != nil {
		t.Fatalf("ошибка регистрации: %v", err)
	}

	if repo.lastUser == nil || repo.lastUser.PasswordHash == "" {
		t.Fatal("пароль не захеширован или пользователь не сохранён")
	}
	if repo.lastUser.PasswordHash == "secret1" {
		t.Fatal("пароль сохранён открытым текстом")
	}
	if user.ID.IsZero() {
		t.Fatal("пользователю не присвоен ID")
	}
	if len(user.Roles) != 1 || user.Roles[0] != "USER" {
		t.Fatalf("ожидалась роль USER, получено %v", user.Roles)
	}
}

func TestRegister_UsernameTaken(t *testing.T) {
	repo := newMockUserRepo()
	service := NewAuthService(repo)

	if _, err := service.Register(context.Background(), validSignup()); err != nil {
		t.Fatalf("ошибка первой регистрации: %v", err)
	}

	req := validSignup()
	req.Email = "other@example.com"
	_, err := service.Register(context.Background(), req)
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("ожидалась ErrUsernameTaken, получено %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatal("повторная регистрация не должна создавать запись")
	}
}

func TestRegister_EmailTaken(t *testing.T) {
	repo := newMockUserRepo()
	service := NewAuthService(repo)

	if _, err := service.Register(context.Background(), validSignup()); err != nil {
		t.Fatalf("ошибка первой регистрации: %v", err)
	}

	req := validSignup()
	req.Username = "otheruser"
	_, err := service.Register(context.Background(), req)
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("ожидалась ErrEmailTaken, получено %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatal("повторная регистрация не должна создавать запись")
	}
}

func TestRegister_Validation(t *testing.T) {
	repo := newMockUserRepo()
	service := NewAuthService(repo)

	cases := []struct {
		name   string
		mutate func(*models.SignupRequest)
	}{
		{"короткий username", func(r *models.SignupRequest) { r.Username = "ab" }},
		{"невалидный email", func(r *models.SignupRequest) { r.Email = "not-an-email" }},
		{"короткий пароль", func(r *models.SignupRequest) { r.Password = "12345" }},
		{"короткое имя", func(r *models.SignupRequest) { r.FirstName = "A" }},
		{"цифры в фамилии", func(r *models.SignupRequest) { r.LastName = "Petrov99" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validSignup()
			tc.mutate(&req)
			_, err := service.Register(context.Background(), req)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("ожидалась ErrValidation, получено %v", err)
			}
			if len(repo.users) != 0 {
				t.Fatal("невалидная регистрация не должна создавать запись")
			}
		})
	}
}

func TestLogin_ByUsernameAndEmail(t *testing.T) {
	repo := newMockUserRepo()
	service := NewAuthService(repo)

	hashed, _ := utils.HashPassword("secret1")
	repo.users["testuser"] = &models.User{
		ID:           models.NewUserID(),
		Username:     "testuser",
		Email:        "test@example.com",
		PasswordHash: hashed,
		Roles:        []string{"USER"},
	}

	for _, identifier := range []string{"testuser", "test@example.com"} {
		token, user, err := service.Login(context.Background(), identifier, "secret1", "mysecret", 15*time.Minute)
		if err != nil {
			t.Fatalf("ошибка логина по %q: %v", identifier, err)
		}
		if token == "" {
			t.Fatal("токен не сгенерирован")
		}
		if user == nil || user.Username != "testuser" {
			t.Fatalf("ожидался профиль testuser, получено %v", user)
		}
	}
}

func TestLogin_Fail(t *testing.T) {
	repo := newMockUserRepo()
	service := NewAuthService(repo)

	hashed, _ := utils.HashPassword("secret1")
	repo.users["testuser"] = &models.User{
		ID:           models.NewUserID(),
		Username:     "testuser",
		Email:        "test@example.com",
		PasswordHash: hashed,
	}

	// Неизвестный идентификатор и неверный пароль дают одну и ту же ошибку.
	if _, _, err := service.Login(context.Background(), "unknown", "secret1", "mysecret", time.Minute); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("ожидалась ErrInvalidCredentials для неизвестного пользователя, получено %v", err)
	}
	if _, _, err := service.Login(context.Background(), "testuser", "wrongpass", "mysecret", time.Minute); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("ожидалась ErrInvalidCredentials для неверного пароля, получено %v", err)
	}
}

func TestLoadCredentialPrincipal(t *testing.T) {
	repo := newMockUserRepo()
	service := NewAuthService(repo)

	repo.users["testuser"] = &models.User{
		ID:           models.NewUserID(),
		Username:     "testuser",
		Email:        "test@example.com",
		PasswordHash: "hash",
		Roles:        []string{"USER"},
	}

	principal, err := service.LoadCredentialPrincipal(context.Background(), "test@example.com")
	if err != nil {
		t.Fatalf("ошибка получения принципала: %v", err)
	}
	if principal.Username != "testuser" || principal.PasswordHash != "hash" {
		t.Fatalf("неожиданный принципал: %+v", principal)
	}

	if _, err := service.LoadCredentialPrincipal(context.Background(), "nobody"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("ожидалась ErrNotFound, получено %v", err)
	}
}
