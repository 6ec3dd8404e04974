package handlers

import (
	"net/http"

	"inkwell/internal/logger"
	"inkwell/internal/models"
	"inkwell/internal/services"
	"inkwell/internal/utils/helpers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type UserHandler struct {
	authService *services.AuthService
	posts       services.PostService
}

func NewUserHandler(authService *services.AuthService, posts services.PostService) *UserHandler {
	return &UserHandler{authService: authService, posts: posts}
}

// Profile godoc
// @Summary Профиль текущего пользователя
// @Tags users
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {string} string "Нет доступа"
// @Security ApiKeyAuth
// @Router /api/users/profile [get]
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	username, ok := callerUsername(r)
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "Нет доступа")
		return
	}

	user, err := h.authService.FindByUsername(r.Context(), username)
	if err != nil {
		logger.WithCtx(r.Context()).Warn("Профиль не найден", zap.String("username", username), zap.Error(err))
		serviceError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, user)
}

// Posts godoc
// @Summary Посты автора
// @Description Возвращает все посты автора, включая черновики.
// @Tags users
// @Produce json
// @Param id path string true "ID автора"
// @Param page query int false "Номер страницы"
// @Param size query int false "Размер страницы"
// @Success 200 {object} models.PostPage
// @Failure 400 {string} string "Невалидный ID"
// @Router /api/users/{id}/posts [get]
func (h *UserHandler) Posts(w http.ResponseWriter, r *http.Request) {
	authorID, err := models.ParseUserID(mux.Vars(r)["id"])
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный ID")
		return
	}
	page, size, offset := pagination(r)

	posts, total, err := h.posts.ListByAuthor(r.Context(), authorID, size, offset)
	if err != nil {
		logger.WithCtx(r.Context()).Error("Ошибка получения постов автора",
			zap.String("author_id", authorID.String()), zap.Error(err))
		serviceError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, postPage(posts, total, page, size))
}
