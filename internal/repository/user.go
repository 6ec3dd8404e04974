package repository

import (
	"context"

	"inkwell/internal/logger"
	"inkwell/internal/models"

	surrealdb "github.com/surrealdb/surrealdb.go"
	"go.uber.org/zap"
)

// Отсутствие записи репозитории отдают как (nil, nil): с кодеком surrealcbor
// Select несуществующей записи возвращает nil без ошибки, запросы — пустой
// список. Классификацию ("не найдено" и т.п.) делает сервисный слой.
type UserRepository struct {
	db *surrealdb.DB
}

func NewUserRepository(db *surrealdb.DB) *UserRepository {
	return &UserRepository{db: db}
}

type countResult struct {
	C int `json:"c"`
}

func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	logger.Log.Info("Создание пользователя (repo)", zap.String("username", user.Username), zap.String("email", user.Email))
	_, err := surrealdb.Create[models.User](ctx, r.db, user.ID.RecordID(), user)
	if err != nil {
		logger.Log.Error("Ошибка создания пользователя (repo)", zap.Error(err))
	}
	return err
}

func (r *UserRepository) IsUsernameTaken(ctx context.Context, username string) (bool, error) {
	logger.Log.Debug("Проверка username на уникальность (repo)", zap.String("username", username))
	res, err := surrealdb.Query[[]countResult](ctx, r.db,
		`SELECT count() AS c FROM users WHERE username = $username GROUP ALL`,
		map[string]any{"username": username},
	)
	if err != nil {
		logger.Log.Error("Ошибка проверки username (repo)", zap.Error(err))
		return false, err
	}
	rows := (*res)[0].Result
	return len(rows) > 0 && rows[0].C > 0, nil
}

func (r *UserRepository) IsEmailTaken(ctx context.Context, email string) (bool, error) {
	logger.Log.Debug("Проверка email на уникальность (repo)", zap.String("email", email))
	res, err := surrealdb.Query[[]countResult](ctx, r.db,
		`SELECT count() AS c FROM users WHERE email = $email GROUP ALL`,
		map[string]any{"email": email},
	)
	if err != nil {
		logger.Log.Error("Ошибка проверки email (repo)", zap.Error(err))
		return false, err
	}
	rows := (*res)[0].Result
	return len(rows) > 0 && rows[0].C > 0, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	logger.Log.Debug("Получение пользователя по username (repo)", zap.String("username", username))
	return r.selectOne(ctx,
		`SELECT * FROM users WHERE username = $username LIMIT 1`,
		map[string]any{"username": username},
	)
}

// GetByUsernameOrEmail ищет пользователя по любому из двух полей —
// логин принимает и username, и email.
func (r *UserRepository) GetByUsernameOrEmail(ctx context.Context, identifier string) (*models.User, error) {
	logger.Log.Debug("Получение пользователя по идентификатору (repo)", zap.String("identifier", identifier))
	return r.selectOne(ctx,
		`SELECT * FROM users WHERE username = $identifier OR email = $identifier LIMIT 1`,
		map[string]any{"identifier": identifier},
	)
}

func (r *UserRepository) GetByID(ctx context.Context, id models.UserID) (*models.User, error) {
	logger.Log.Debug("Получение пользователя по ID (repo)", zap.String("user_id", id.String()))
	user, err := surrealdb.Select[models.User](ctx, r.db, id.RecordID())
	if err != nil {
		logger.Log.Error("Ошибка получения пользователя по ID (repo)", zap.String("user_id", id.String()), zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) selectOne(ctx context.Context, query string, vars map[string]any) (*models.User, error) {
	res, err := surrealdb.Query[[]models.User](ctx, r.db, query, vars)
	if err != nil {
		logger.Log.Error("Ошибка выборки пользователя (repo)", zap.Error(err))
		return nil, err
	}
	rows := (*res)[0].Result
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}
