package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"inkwell/internal/models"
	"inkwell/internal/services"

	"github.com/gorilla/mux"
)

// Заглушка сервиса постов: отдаёт заранее заготовленные данные.
type stubPostService struct {
	posts map[models.PostID]*models.Post
}

func newStubPostService() *stubPostService {
	return &stubPostService{posts: make(map[models.PostID]*models.Post)}
}

func (s *stubPostService) ListPublished(_ context.Context, limit, offset int) ([]*models.Post, int, error) {
	var out []*models.Post
	for _, p := range s.posts {
		if p.Published {
			out = append(out, p)
		}
	}
	return out, len(out), nil
}

func (s *stubPostService) ListByAuthor(_ context.Context, authorID models.UserID, limit, offset int) ([]*models.Post, int, error) {
	return nil, 0, nil
}

func (s *stubPostService) GetByID(_ context.Context, id models.PostID) (*models.Post, error) {
	p, ok := s.posts[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	return p, nil
}

func (s *stubPostService) Search(_ context.Context, term string, limit, offset int) ([]*models.Post, int, error) {
	return nil, 0, nil
}

func (s *stubPostService) ListByTag(_ context.Context, tag string) ([]*models.Post, error) {
	return nil, nil
}

func (s *stubPostService) Create(_ context.Context, req models.PostRequest, authorID models.UserID) (*models.Post, error) {
	return nil, services.ErrValidation
}

func (s *stubPostService) Update(_ context.Context, id models.PostID, req models.PostRequest, authorID models.UserID) (*models.Post, error) {
	return nil, services.ErrForbidden
}

func (s *stubPostService) Delete(_ context.Context, id models.PostID, authorID models.UserID) error {
	return services.ErrForbidden
}

func (s *stubPostService) Publish(_ context.Context, id models.PostID, authorID models.UserID) (*models.Post, error) {
	return nil, services.ErrAlreadyPublished
}

func (s *stubPostService) ToggleLike(_ context.Context, id models.PostID, userID models.UserID) (*models.Post, error) {
	return nil, services.ErrNotFound
}

func (s *stubPostService) AddComment(_ context.Context, id models.PostID, req models.CommentRequest, authorID models.UserID) (*models.Post, error) {
	return nil, services.ErrNotFound
}

func (s *stubPostService) PreviewHTML(rawHTML string) string { return rawHTML }

// Заглушка хранилища пользователей для AuthService.
type stubUserRepo struct {
	byUsername map[string]*models.User
}

func (r *stubUserRepo) IsUsernameTaken(_ context.Context, username string) (bool, error) {
	_, ok := r.byUsername[username]
	return ok, nil
}
func (r *stubUserRepo) IsEmailTaken(_ context.Context, email string) (bool, error) { return false, nil }
func (r *stubUserRepo) CreateUser(_ context.Context, user *models.User) error      { return nil }
func (r *stubUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	return r.byUsername[username], nil
}
func (r *stubUserRepo) GetByUsernameOrEmail(_ context.Context, identifier string) (*models.User, error) {
	return r.byUsername[identifier], nil
}
func (r *stubUserRepo) GetByID(_ context.Context, id models.UserID) (*models.User, error) {
	for _, u := range r.byUsername {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func testRouter(svc services.PostService, users *stubUserRepo) *mux.Router {
	authService := services.NewAuthService(users)
	h := NewPostHandler(svc, authService)

	router := mux.NewRouter()
	router.HandleFunc("/api/posts", h.List).Methods("GET")
	router.HandleFunc("/api/posts/search", h.Search).Methods("GET")
	router.HandleFunc("/api/posts/{id}", h.GetByID).Methods("GET")
	router.HandleFunc("/api/posts", h.Create).Methods("POST")
	return router
}

func samplePost(published bool) *models.Post {
	now := time.Now().UTC()
	return &models.Post{
		ID:         models.NewPostID(),
		Title:      "Пост",
		Content:    "Текст",
		AuthorID:   models.NewUserID(),
		AuthorName: "author",
		Published:  published,
		LikedBy:    []models.UserID{},
		Comments:   []models.Comment{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestListPosts_Envelope(t *testing.T) {
	svc := newStubPostService()
	post := samplePost(true)
	svc.posts[post.ID] = post
	router := testRouter(svc, &stubUserRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/posts?page=1&size=5", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("ожидался 200, получен %d", rec.Code)
	}

	var body struct {
		Data struct {
			Data  []models.Post `json:"data"`
			Total int           `json:"total"`
			Page  int           `json:"page"`
			Size  int           `json:"page_size"`
		} `json:"data"`
		Error string `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("невалидный JSON ответа: %v", err)
	}
	if body.Error != "" {
		t.Fatalf("неожиданная ошибка в ответе: %q", body.Error)
	}
	if body.Data.Total != 1 || len(body.Data.Data) != 1 {
		t.Fatalf("ожидался один пост, получено total=%d len=%d", body.Data.Total, len(body.Data.Data))
	}
	if body.Data.Page != 1 || body.Data.Size != 5 {
		t.Fatalf("неожиданная пагинация: page=%d size=%d", body.Data.Page, body.Data.Size)
	}
}

func TestGetPost_NotFound(t *testing.T) {
	router := testRouter(newStubPostService(), &stubUserRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/posts/"+models.NewPostID().String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("ожидался 404, получен %d", rec.Code)
	}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("невалидный JSON ответа: %v", err)
	}
	if body.Error == "" {
		t.Fatal("ожидалось сообщение об ошибке в конверте")
	}
}

func TestGetPost_BadID(t *testing.T) {
	router := testRouter(newStubPostService(), &stubUserRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/posts/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("ожидался 400, получен %d", rec.Code)
	}
}

func TestSearch_EmptyQuery(t *testing.T) {
	router := testRouter(newStubPostService(), &stubUserRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/posts/search?q=%20", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("ожидался 400, получен %d", rec.Code)
	}
}

func TestCreatePost_Unauthenticated(t *testing.T) {
	router := testRouter(newStubPostService(), &stubUserRepo{})

	req := httptest.NewRequest(http.MethodPost, "/api/posts", strings.NewReader(`{"title":"t","content":"c"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// Без субъекта токена в контексте хендлер отвечает 401.
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("ожидался 401, получен %d", rec.Code)
	}
}
