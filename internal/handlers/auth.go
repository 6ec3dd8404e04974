package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"inkwell/internal/config"
	"inkwell/internal/logger"
	"inkwell/internal/models"
	"inkwell/internal/services"
	"inkwell/internal/utils"
	"inkwell/internal/utils/helpers"

	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Signup godoc
// @Summary Регистрация нового пользователя
// @Tags auth
// @Accept json
// @Produce json
// @Param input body models.SignupRequest true "Данные регистрации"
// @Success 201 {object} models.AuthResponse
// @Failure 400 {string} string "Ошибка валидации"
// @Failure 409 {string} string "Username или email уже заняты"
// @Router /api/auth/signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Ошибка декодирования JSON в Signup", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}
	if err := utils.Validate.Struct(req); err != nil {
		logger.WithCtx(r.Context()).Warn("Валидация Signup не пройдена", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	logger.WithCtx(r.Context()).Info("Регистрация пользователя", zap.String("username", req.Username), zap.String("email", req.Email))

	user, err := h.authService.Register(r.Context(), req)
	if err != nil {
		logger.WithCtx(r.Context()).Warn("Ошибка регистрации пользователя", zap.Error(err))
		serviceError(w, err)
		return
	}

	token, err := h.mintToken(user)
	if err != nil {
		logger.WithCtx(r.Context()).Error("Ошибка генерации токена", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Ошибка генерации токена")
		return
	}

	helpers.JSON(w, http.StatusCreated, authResponse(token, user))
}

// Login godoc
// @Summary Авторизация по username или email
// @Tags auth
// @Accept json
// @Produce json
// @Param input body models.LoginRequest true "Данные для входа"
// @Success 200 {object} models.AuthResponse
// @Failure 401 {string} string "Неверный логин или пароль"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Ошибка декодирования JSON в Login", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}
	if err := utils.Validate.Struct(req); err != nil {
		helpers.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	logger.WithCtx(r.Context()).Info("Попытка входа", zap.String("identifier", req.Identifier))

	cfg, _ := config.LoadConfig()
	accessTTL, _ := time.ParseDuration(cfg.AccessTokenTTL)

	token, user, err := h.authService.Login(r.Context(), req.Identifier, req.Password, cfg.JWTSecret, accessTTL)
	if err != nil {
		logger.WithCtx(r.Context()).Warn("Ошибка входа пользователя", zap.String("identifier", req.Identifier), zap.Error(err))
		serviceError(w, err)
		return
	}

	logger.WithCtx(r.Context()).Info("Вход выполнен", zap.String("username", user.Username))
	helpers.JSON(w, http.StatusOK, authResponse(token, user))
}

func (h *AuthHandler) mintToken(user *models.User) (string, error) {
	cfg, _ := config.LoadConfig()
	accessTTL, _ := time.ParseDuration(cfg.AccessTokenTTL)

	role := "USER"
	if len(user.Roles) > 0 {
		role = user.Roles[0]
	}
	return utils.GenerateToken(cfg.JWTSecret, user.Username, role, accessTTL)
}

func authResponse(token string, user *models.User) models.AuthResponse {
	return models.AuthResponse{
		AccessToken: token,
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
	}
}
