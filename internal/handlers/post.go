package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"inkwell/internal/logger"
	"inkwell/internal/models"
	"inkwell/internal/services"
	"inkwell/internal/utils"
	"inkwell/internal/utils/helpers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type PostHandler struct {
	svc         services.PostService
	authService *services.AuthService
}

func NewPostHandler(svc services.PostService, authService *services.AuthService) *PostHandler {
	return &PostHandler{svc: svc, authService: authService}
}

// List godoc
// @Summary Лента опубликованных постов
// @Tags posts
// @Produce json
// @Param page query int false "Номер страницы (начиная с 1)"
// @Param size query int false "Размер страницы"
// @Success 200 {object} models.PostPage
// @Router /api/posts [get]
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	page, size, offset := pagination(r)

	posts, total, err := h.svc.ListPublished(r.Context(), size, offset)
	if err != nil {
		logger.WithCtx(r.Context()).Error("Ошибка получения ленты постов", zap.Error(err))
		serviceError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, postPage(posts, total, page, size))
}

// GetByID godoc
// @Summary Получить пост по ID
// @Description Каждый успешный просмотр увеличивает счётчик прочтений.
// @Tags posts
// @Produce json
// @Param id path string true "ID поста"
// @Success 200 {object} models.Post
// @Failure 404 {string} string "Пост не найден"
// @Router /api/posts/{id} [get]
func (h *PostHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := models.ParsePostID(mux.Vars(r)["id"])
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный ID")
		return
	}

	post, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		serviceError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, post)
}

// Search godoc
// @Summary Поиск по опубликованным постам
// @Description Подстрока в заголовке/контенте без учёта регистра либо совпадение тега.
// @Tags posts
// @Produce json
// @Param q query string true "Поисковый запрос"
// @Param page query int false "Номер страницы"
// @Param size query int false "Размер страницы"
// @Success 200 {object} models.PostPage
// @Failure 400 {string} string "Пустой запрос"
// @Router /api/posts/search [get]
func (h *PostHandler) Search(w http.ResponseWriter, r *http.Request) {
	term := strings.TrimSpace(r.URL.Query().Get("q"))
	if term == "" {
		helpers.Error(w, http.StatusBadRequest, "Пустой запрос")
		return
	}
	page, size, offset := pagination(r)

	posts, total, err := h.svc.Search(r.Context(), term, size, offset)
	if err != nil {
		logger.WithCtx(r.Context()).Error("Ошибка поиска постов", zap.String("term", term), zap.Error(err))
		serviceError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, postPage(posts, total, page, size))
}

// ListByTag godoc
// @Summary Опубликованные посты с тегом
// @Tags posts
// @Produce json
// @Param tag path string true "Тег"
// @Success 200 {array} models.Post
// @Router /api/posts/tags/{tag} [get]
func (h *PostHandler) ListByTag(w http.ResponseWriter, r *http.Request) {
	posts, err := h.svc.ListByTag(r.Context(), mux.Vars(r)["tag"])
	if err != nil {
		serviceError(w, err)
		return
	}
	if posts == nil {
		posts = []*models.Post{}
	}
	helpers.JSON(w, http.StatusOK, posts)
}

// Create godoc
// @Summary Создать пост
// @Description Пост создаётся черновиком или сразу опубликованным.
// @Tags posts
// @Accept json
// @Produce json
// @Param input body models.PostRequest true "Данные поста"
// @Success 201 {object} models.Post
// @Failure 400 {string} string "Ошибка валидации"
// @Security ApiKeyAuth
// @Router /api/posts [post]
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}

	var req models.PostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Ошибка декодирования JSON при создании поста", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}
	if err := utils.Validate.Struct(req); err != nil {
		helpers.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	post, err := h.svc.Create(r.Context(), req, caller.ID)
	if err != nil {
		serviceError(w, err)
		return
	}
	helpers.JSON(w, http.StatusCreated, post)
}

// Update godoc
// @Summary Обновить пост
// @Description Доступно только автору. Публикация через обновление — односторонняя.
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "ID поста"
// @Param input body models.PostRequest true "Новые данные"
// @Success 200 {object} models.Post
// @Failure 403 {string} string "Не автор поста"
// @Failure 404 {string} string "Пост не найден"
// @Security ApiKeyAuth
// @Router /api/posts/{id} [put]
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	id, err := models.ParsePostID(mux.Vars(r)["id"])
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный ID")
		return
	}

	var req models.PostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}
	if err := utils.Validate.Struct(req); err != nil {
		helpers.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	post, err := h.svc.Update(r.Context(), id, req, caller.ID)
	if err != nil {
		serviceError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, post)
}

// Delete godoc
// @Summary Удалить пост
// @Description Доступно только автору. Вложенные комментарии удаляются вместе с постом.
// @Tags posts
// @Param id path string true "ID поста"
// @Success 200 {string} string "Пост удалён"
// @Failure 403 {string} string "Не автор поста"
// @Failure 404 {string} string "Пост не найден"
// @Security ApiKeyAuth
// @Router /api/posts/{id} [delete]
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	id, err := models.ParsePostID(mux.Vars(r)["id"])
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный ID")
		return
	}

	if err := h.svc.Delete(r.Context(), id, caller.ID); err != nil {
		serviceError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, "Пост удалён")
}

// Publish godoc
// @Summary Опубликовать черновик
// @Description Одностороний переход: повторная публикация — ошибка.
// @Tags posts
// @Produce json
// @Param id path string true "ID поста"
// @Success 200 {object} models.Post
// @Failure 403 {string} string "Не автор поста"
// @Failure 404 {string} string "Пост не найден"
// @Failure 409 {string} string "Пост уже опубликован"
// @Security ApiKeyAuth
// @Router /api/posts/{id}/publish [post]
func (h *PostHandler) Publish(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	id, err := models.ParsePostID(mux.Vars(r)["id"])
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный ID")
		return
	}

	post, err := h.svc.Publish(r.Context(), id, caller.ID)
	if err != nil {
		serviceError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, post)
}

// Like godoc
// @Summary Поставить или снять лайк
// @Description Тумблер: повторный вызов того же пользователя снимает лайк.
// @Tags posts
// @Produce json
// @Param id path string true "ID поста"
// @Success 200 {object} models.Post
// @Failure 404 {string} string "Пост не найден"
// @Security ApiKeyAuth
// @Router /api/posts/{id}/like [post]
func (h *PostHandler) Like(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	id, err := models.ParsePostID(mux.Vars(r)["id"])
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный ID")
		return
	}

	post, err := h.svc.ToggleLike(r.Context(), id, caller.ID)
	if err != nil {
		serviceError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, post)
}

// AddComment godoc
// @Summary Добавить комментарий
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "ID поста"
// @Param input body models.CommentRequest true "Текст комментария"
// @Success 200 {object} models.Post
// @Failure 400 {string} string "Ошибка валидации"
// @Failure 404 {string} string "Пост не найден"
// @Security ApiKeyAuth
// @Router /api/posts/{id}/comments [post]
func (h *PostHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.caller(w, r)
	if !ok {
		return
	}
	id, err := models.ParsePostID(mux.Vars(r)["id"])
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный ID")
		return
	}

	var req models.CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}
	if err := utils.Validate.Struct(req); err != nil {
		helpers.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	post, err := h.svc.AddComment(r.Context(), id, req, caller.ID)
	if err != nil {
		serviceError(w, err)
		return
	}
	helpers.JSON(w, http.StatusOK, post)
}

// Preview godoc
// @Summary Предпросмотр поста
// @Description Возвращает очищенный HTML (без сохранения в хранилище)
// @Tags posts
// @Accept json
// @Produce json
// @Param body body map[string]string true "Сырой HTML"
// @Success 200 {object} map[string]string
// @Failure 400 {string} string "Невалидный JSON"
// @Security ApiKeyAuth
// @Router /api/posts/preview [post]
func (h *PostHandler) Preview(w http.ResponseWriter, r *http.Request) {
	type reqT struct {
		Content string `json:"content"`
	}
	var req reqT
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WithCtx(r.Context()).Warn("Ошибка декодирования JSON при предпросмотре", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	safe := h.svc.PreviewHTML(req.Content)
	helpers.JSON(w, http.StatusOK, map[string]string{"content": safe})
}

// caller восстанавливает доменную личность по субъекту токена.
func (h *PostHandler) caller(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	username, ok := callerUsername(r)
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "Нет доступа")
		return nil, false
	}
	user, err := h.authService.FindByUsername(r.Context(), username)
	if err != nil {
		logger.WithCtx(r.Context()).Warn("Не удалось восстановить пользователя по токену",
			zap.String("username", username), zap.Error(err))
		helpers.Error(w, http.StatusUnauthorized, "Нет доступа")
		return nil, false
	}
	return user, true
}
