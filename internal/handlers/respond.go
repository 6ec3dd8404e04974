package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/services"
	"inkwell/internal/utils/helpers"
)

// serviceError сопоставляет доменную ошибку с HTTP-статусом.
func serviceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		helpers.Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrUsernameTaken), errors.Is(err, services.ErrEmailTaken):
		helpers.Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		helpers.Error(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrForbidden):
		helpers.Error(w, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrNotFound):
		helpers.Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrAlreadyPublished):
		helpers.Error(w, http.StatusConflict, err.Error())
	default:
		helpers.Error(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
	}
}

// pagination читает ?page&size: page с единицы, size в пределах 1..100.
func pagination(r *http.Request) (page, size, offset int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	size, _ = strconv.Atoi(r.URL.Query().Get("size"))
	if size < 1 || size > 100 {
		size = 10
	}
	return page, size, (page - 1) * size
}

func postPage(posts []*models.Post, total, page, size int) models.PostPage {
	if posts == nil {
		posts = []*models.Post{}
	}
	return models.PostPage{Data: posts, Total: total, Page: page, PageSize: size}
}

// callerUsername достаёт субъект токена, положенный JWT-миддлварью.
func callerUsername(r *http.Request) (string, bool) {
	username, ok := r.Context().Value(middleware.ContextUsername).(string)
	return username, ok && username != ""
}
