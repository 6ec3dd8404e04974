package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"inkwell/internal/logger"
	"inkwell/internal/models"
	"inkwell/internal/utils"

	"go.uber.org/zap"
)

type AuthService struct {
	repo UserRepo
}

func NewAuthService(repo UserRepo) *AuthService {
	return &AuthService{repo: repo}
}

type UserRepo interface {
	IsUsernameTaken(ctx context.Context, username string) (bool, error)
	IsEmailTaken(ctx context.Context, email string) (bool, error)
	CreateUser(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByUsernameOrEmail(ctx context.Context, identifier string) (*models.User, error)
	GetByID(ctx context.Context, id models.UserID) (*models.User, error)
}

var (
	personNameRe = regexp.MustCompile(`^[A-Za-z\s'-]+$`)
	emailRe      = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// Register регистрирует аккаунт: валидация, проверка уникальности
// username/email, bcrypt-хеш, запись. Между проверкой и вставкой возможна
// гонка — хранилище уникальность не навязывает (см. DESIGN.md).
func (s *AuthService) Register(ctx context.Context, req models.SignupRequest) (*models.User, error) {
	log := logger.WithCtx(ctx)
	log.Info("Регистрация пользователя (service)", zap.String("username", req.Username), zap.String("email", req.Email))

	if err := validateSignup(req); err != nil {
		log.Warn("Валидация регистрации не пройдена", zap.Error(err))
		return nil, err
	}

	if taken, err := s.repo.IsUsernameTaken(ctx, req.Username); err != nil {
		log.Error("Ошибка проверки username", zap.Error(err))
		return nil, err
	} else if taken {
		return nil, ErrUsernameTaken
	}
	if taken, err := s.repo.IsEmailTaken(ctx, req.Email); err != nil {
		log.Error("Ошибка проверки email", zap.Error(err))
		return nil, err
	} else if taken {
		return nil, ErrEmailTaken
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Error("Ошибка хеширования пароля", zap.Error(err))
		return nil, err
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:           models.NewUserID(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashed,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Bio:          strings.TrimSpace(req.Bio),
		Avatar:       strings.TrimSpace(req.Avatar),
		Roles:        []string{"USER"},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		log.Error("Ошибка создания пользователя", zap.Error(err))
		return nil, err
	}

	log.Info("Пользователь зарегистрирован (service)", zap.String("user_id", user.ID.String()))
	return user, nil
}

// LoadCredentialPrincipal отдаёт минимальный принципал для проверки логина.
// Идентификатором может быть и username, и email.
func (s *AuthService) LoadCredentialPrincipal(ctx context.Context, identifier string) (*models.AuthPrincipal, error) {
	user, err := s.repo.GetByUsernameOrEmail(ctx, strings.TrimSpace(identifier))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return &models.AuthPrincipal{
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		Roles:        user.Roles,
	}, nil
}

// Login проверяет учётные данные и выдаёт access-токен вместе с профилем.
// Неизвестный идентификатор и неверный пароль отдаются одной и той же
// ошибкой — ответ не раскрывает, что именно не совпало.
func (s *AuthService) Login(ctx context.Context, identifier, password, jwtSecret string, accessTTL time.Duration) (string, *models.User, error) {
	log := logger.WithCtx(ctx)
	log.Info("Попытка входа (service)", zap.String("identifier", identifier))

	principal, err := s.LoadCredentialPrincipal(ctx, identifier)
	if err != nil {
		log.Warn("Пользователь не найден (service)", zap.String("identifier", identifier), zap.Error(err))
		return "", nil, ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, principal.PasswordHash) {
		log.Warn("Неверный пароль (service)", zap.String("username", principal.Username))
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(jwtSecret, principal.Username, primaryRole(principal.Roles), accessTTL)
	if err != nil {
		log.Error("Ошибка генерации access-токена", zap.Error(err))
		return "", nil, err
	}

	user, err := s.repo.GetByUsername(ctx, principal.Username)
	if err != nil || user == nil {
		log.Error("Не удалось получить профиль после входа", zap.Error(err))
		return "", nil, ErrInvalidCredentials
	}

	log.Info("Вход выполнен (service)", zap.String("username", user.Username))
	return token, user, nil
}

// FindByUsername восстанавливает доменную личность вызывающего по субъекту
// токена.
func (s *AuthService) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка получения пользователя по username (service)", zap.String("username", username), zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

func (s *AuthService) FindByID(ctx context.Context, id models.UserID) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		logger.WithCtx(ctx).Error("Ошибка получения пользователя по ID (service)", zap.String("user_id", id.String()), zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

func primaryRole(roles []string) string {
	if len(roles) == 0 {
		return "USER"
	}
	return roles[0]
}

func validateSignup(req models.SignupRequest) error {
	if err := validatePersonName("имя", req.FirstName); err != nil {
		return err
	}
	if err := validatePersonName("фамилия", req.LastName); err != nil {
		return err
	}
	if l := utf8.RuneCountInString(req.Username); l < 3 || l > 30 {
		return fmt.Errorf("%w: длина имени пользователя должна быть от 3 до 30 символов", ErrValidation)
	}
	if !emailRe.MatchString(req.Email) {
		return fmt.Errorf("%w: невалидный адрес электронной почты", ErrValidation)
	}
	if l := len(req.Password); l < 6 || l > 100 {
		return fmt.Errorf("%w: длина пароля должна быть от 6 до 100 символов", ErrValidation)
	}
	return nil
}

func validatePersonName(field, value string) error {
	value = strings.TrimSpace(value)
	if l := utf8.RuneCountInString(value); l < 2 || l > 50 {
		return fmt.Errorf("%w: %s — длина должна быть от 2 до 50 символов", ErrValidation, field)
	}
	if !personNameRe.MatchString(value) {
		return fmt.Errorf("%w: %s — допустимы только буквы, пробел, дефис и апостроф", ErrValidation, field)
	}
	return nil
}
