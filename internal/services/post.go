package services

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"inkwell/internal/logger"
	"inkwell/internal/models"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

type PostService interface {
	ListPublished(ctx context.Context, limit, offset int) ([]*models.Post, int, error)
	ListByAuthor(ctx context.Context, authorID models.UserID, limit, offset int) ([]*models.Post, int, error)
	GetByID(ctx context.Context, id models.PostID) (*models.Post, error)
	Search(ctx context.Context, term string, limit, offset int) ([]*models.Post, int, error)
	ListByTag(ctx context.Context, tag string) ([]*models.Post, error)
	Create(ctx context.Context, req models.PostRequest, authorID models.UserID) (*models.Post, error)
	Update(ctx context.Context, id models.PostID, req models.PostRequest, authorID models.UserID) (*models.Post, error)
	Delete(ctx context.Context, id models.PostID, authorID models.UserID) error
	Publish(ctx context.Context, id models.PostID, authorID models.UserID) (*models.Post, error)
	ToggleLike(ctx context.Context, id models.PostID, userID models.UserID) (*models.Post, error)
	AddComment(ctx context.Context, id models.PostID, req models.CommentRequest, authorID models.UserID) (*models.Post, error)
	PreviewHTML(rawHTML string) string
}

type PostRepo interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id models.PostID) (*models.Post, error)
	FetchAndMarkRead(ctx context.Context, id models.PostID) (*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id models.PostID) error
	ListPublished(ctx context.Context, limit, start int) ([]*models.Post, int, error)
	ListByAuthor(ctx context.Context, authorID models.UserID, limit, start int) ([]*models.Post, int, error)
	Search(ctx context.Context, term string, limit, start int) ([]*models.Post, int, error)
	ListByTag(ctx context.Context, tag string) ([]*models.Post, error)
	ToggleLike(ctx context.Context, id models.PostID, userID models.UserID) (*models.Post, error)
	AppendComment(ctx context.Context, id models.PostID, comment models.Comment, now time.Time) (*models.Post, error)
	MarkPublished(ctx context.Context, id models.PostID, now time.Time) (*models.Post, error)
}

type postService struct {
	repo   PostRepo
	users  UserRepo
	policy *bluemonday.Policy
}

func NewPostService(repo PostRepo, users UserRepo) PostService {
	p := bluemonday.UGCPolicy()
	p.AllowElements("img")
	p.AllowAttrs("src", "alt").OnElements("img")
	return &postService{repo: repo, users: users, policy: p}
}

// PreviewHTML возвращает очищенный HTML без сохранения. Хранимый контент
// поста не трогаем — он записывается как есть.
func (s *postService) PreviewHTML(rawHTML string) string {
	log := logger.WithCtx(context.Background())
	clean := s.policy.Sanitize(rawHTML)
	log.Debug("Предпросмотр HTML (sanitize)",
		zap.Int("raw_len", len(rawHTML)),
		zap.Int("clean_len", len(clean)),
	)
	return clean
}

func (s *postService) ListPublished(ctx context.Context, limit, offset int) ([]*models.Post, int, error) {
	log := logger.WithCtx(ctx)
	log.Debug("Сервис: список опубликованных постов", zap.Int("limit", limit), zap.Int("offset", offset))

	posts, total, err := s.repo.ListPublished(ctx, limit, offset)
	if err != nil {
		log.Error("Сервис: ошибка получения списка постов", zap.Error(err))
		return nil, 0, err
	}
	return posts, total, nil
}

func (s *postService) ListByAuthor(ctx context.Context, authorID models.UserID, limit, offset int) ([]*models.Post, int, error) {
	log := logger.WithCtx(ctx)
	log.Debug("Сервис: посты автора", zap.String("author_id", authorID.String()), zap.Int("limit", limit), zap.Int("offset", offset))

	posts, total, err := s.repo.ListByAuthor(ctx, authorID, limit, offset)
	if err != nil {
		log.Error("Сервис: ошибка получения постов автора", zap.Error(err))
		return nil, 0, err
	}
	return posts, total, nil
}

// GetByID возвращает пост и как побочный эффект увеличивает счётчик
// прочтений — атомарно в хранилище, повторный просмотр снова инкрементирует.
func (s *postService) GetByID(ctx context.Context, id models.PostID) (*models.Post, error) {
	log := logger.WithCtx(ctx)
	log.Debug("Сервис: получение поста", zap.String("post_id", id.String()))

	post, err := s.repo.FetchAndMarkRead(ctx, id)
	if err != nil {
		log.Error("Сервис: ошибка получения поста", zap.String("post_id", id.String()), zap.Error(err))
		return nil, err
	}
	if post == nil {
		log.Warn("Сервис: пост не найден", zap.String("post_id", id.String()))
		return nil, ErrNotFound
	}
	return post, nil
}

func (s *postService) Search(ctx context.Context, term string, limit, offset int) ([]*models.Post, int, error) {
	log := logger.WithCtx(ctx)
	term = strings.TrimSpace(term)
	log.Debug("Сервис: поиск постов", zap.String("term", term), zap.Int("limit", limit), zap.Int("offset", offset))

	posts, total, err := s.repo.Search(ctx, strings.ToLower(term), limit, offset)
	if err != nil {
		log.Error("Сервис: ошибка поиска", zap.String("term", term), zap.Error(err))
		return nil, 0, err
	}
	return posts, total, nil
}

func (s *postService) ListByTag(ctx context.Context, tag string) ([]*models.Post, error) {
	log := logger.WithCtx(ctx)
	tag = strings.ToLower(strings.TrimSpace(tag))
	log.Debug("Сервис: посты по тегу", zap.String("tag", tag))

	posts, err := s.repo.ListByTag(ctx, tag)
	if err != nil {
		log.Error("Сервис: ошибка выборки по тегу", zap.String("tag", tag), zap.Error(err))
		return nil, err
	}
	return posts, nil
}

func (s *postService) Create(ctx context.Context, req models.PostRequest, authorID models.UserID) (*models.Post, error) {
	log := logger.WithCtx(ctx)
	log.Info("Сервис: создание поста",
		zap.String("author_id", authorID.String()),
		zap.String("title", strings.TrimSpace(req.Title)),
		zap.Bool("published", req.Published),
		zap.Int("tags_count", len(req.Tags)),
	)

	if err := validatePostRequest(req); err != nil {
		log.Warn("Валидация поста не пройдена", zap.Error(err))
		return nil, err
	}

	author, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		log.Error("Сервис: ошибка получения автора", zap.Error(err))
		return nil, err
	}
	if author == nil {
		return nil, ErrNotFound
	}

	now := time.Now().UTC()
	post := &models.Post{
		ID:         models.NewPostID(),
		Title:      strings.TrimSpace(req.Title),
		Content:    req.Content,
		Excerpt:    req.Excerpt,
		CoverImage: req.CoverImage,
		Tags:       normalizeTags(req.Tags),
		AuthorID:   author.ID,
		AuthorName: author.Username,
		Published:  req.Published,
		LikedBy:    []models.UserID{},
		Comments:   []models.Comment{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if req.Published {
		post.PublishedAt = &now
	}

	if err := s.repo.Create(ctx, post); err != nil {
		log.Error("Сервис: ошибка создания поста", zap.Error(err))
		return nil, err
	}

	log.Info("Сервис: пост создан", zap.String("post_id", post.ID.String()), zap.Bool("published", post.Published))
	return post, nil
}

func (s *postService) Update(ctx context.Context, id models.PostID, req models.PostRequest, authorID models.UserID) (*models.Post, error) {
	log := logger.WithCtx(ctx)
	log.Info("Сервис: обновление поста", zap.String("post_id", id.String()), zap.String("author_id", authorID.String()))

	if err := validatePostRequest(req); err != nil {
		log.Warn("Валидация поста не пройдена", zap.Error(err))
		return nil, err
	}

	post, err := s.authoredPost(ctx, id, authorID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	post.Title = strings.TrimSpace(req.Title)
	post.Content = req.Content
	post.Excerpt = req.Excerpt
	post.CoverImage = req.CoverImage
	post.Tags = normalizeTags(req.Tags)
	post.UpdatedAt = now

	// Публикация через Update — односторонняя: повторный запрос публикации
	// на уже опубликованном посте ничего не меняет.
	if req.Published && !post.Published {
		post.Published = true
		post.PublishedAt = &now
	}

	if err := s.repo.Update(ctx, post); err != nil {
		log.Error("Сервис: ошибка обновления поста", zap.String("post_id", id.String()), zap.Error(err))
		return nil, err
	}

	log.Info("Сервис: пост обновлён", zap.String("post_id", id.String()), zap.Bool("published", post.Published))
	return post, nil
}

func (s *postService) Delete(ctx context.Context, id models.PostID, authorID models.UserID) error {
	log := logger.WithCtx(ctx)
	log.Info("Сервис: удаление поста", zap.String("post_id", id.String()), zap.String("author_id", authorID.String()))

	if _, err := s.authoredPost(ctx, id, authorID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.Error("Сервис: ошибка удаления поста", zap.String("post_id", id.String()), zap.Error(err))
		return err
	}

	log.Info("Сервис: пост удалён", zap.String("post_id", id.String()))
	return nil
}

func (s *postService) Publish(ctx context.Context, id models.PostID, authorID models.UserID) (*models.Post, error) {
	log := logger.WithCtx(ctx)
	log.Info("Сервис: публикация поста", zap.String("post_id", id.String()), zap.String("author_id", authorID.String()))

	post, err := s.authoredPost(ctx, id, authorID)
	if err != nil {
		return nil, err
	}
	if post.Published {
		log.Warn("Сервис: пост уже опубликован", zap.String("post_id", id.String()))
		return nil, ErrAlreadyPublished
	}

	published, err := s.repo.MarkPublished(ctx, id, time.Now().UTC())
	if err != nil {
		log.Error("Сервис: ошибка публикации поста", zap.String("post_id", id.String()), zap.Error(err))
		return nil, err
	}
	if published == nil {
		return nil, ErrNotFound
	}

	log.Info("Сервис: пост опубликован", zap.String("post_id", id.String()))
	return published, nil
}

// ToggleLike — тумблер: повторный лайк того же пользователя снимает
// предыдущий. Ограничений по авторству нет, лайкать можно и свой пост.
func (s *postService) ToggleLike(ctx context.Context, id models.PostID, userID models.UserID) (*models.Post, error) {
	log := logger.WithCtx(ctx)
	log.Info("Сервис: переключение лайка", zap.String("post_id", id.String()), zap.String("user_id", userID.String()))

	post, err := s.repo.ToggleLike(ctx, id, userID)
	if err != nil {
		log.Error("Сервис: ошибка переключения лайка", zap.String("post_id", id.String()), zap.Error(err))
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}

	log.Info("Сервис: лайк переключён", zap.String("post_id", id.String()), zap.Int("like_count", post.LikeCount))
	return post, nil
}

func (s *postService) AddComment(ctx context.Context, id models.PostID, req models.CommentRequest, authorID models.UserID) (*models.Post, error) {
	log := logger.WithCtx(ctx)
	log.Info("Сервис: добавление комментария", zap.String("post_id", id.String()), zap.String("author_id", authorID.String()))

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, fmt.Errorf("%w: текст комментария обязателен", ErrValidation)
	}
	if utf8.RuneCountInString(content) > 1000 {
		return nil, fmt.Errorf("%w: комментарий не длиннее 1000 символов", ErrValidation)
	}

	author, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		log.Error("Сервис: ошибка получения автора комментария", zap.Error(err))
		return nil, err
	}
	if author == nil {
		return nil, ErrNotFound
	}

	// Имя и аватар автора денормализуются на момент добавления и задним
	// числом не обновляются.
	now := time.Now().UTC()
	comment := models.Comment{
		ID:           models.NewCommentID(),
		Content:      content,
		AuthorID:     author.ID,
		AuthorName:   author.Username,
		AuthorAvatar: author.Avatar,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	post, err := s.repo.AppendComment(ctx, id, comment, now)
	if err != nil {
		log.Error("Сервис: ошибка добавления комментария", zap.String("post_id", id.String()), zap.Error(err))
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}

	log.Info("Сервис: комментарий добавлен", zap.String("post_id", id.String()), zap.Int("comment_count", post.CommentCount))
	return post, nil
}

// authoredPost достаёт пост и проверяет, что вызывающий — его автор.
func (s *postService) authoredPost(ctx context.Context, id models.PostID, authorID models.UserID) (*models.Post, error) {
	log := logger.WithCtx(ctx)

	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Error("Сервис: ошибка выборки поста", zap.String("post_id", id.String()), zap.Error(err))
		return nil, err
	}
	if post == nil {
		log.Warn("Сервис: пост не найден", zap.String("post_id", id.String()))
		return nil, ErrNotFound
	}
	if post.AuthorID != authorID {
		log.Warn("Сервис: попытка изменить чужой пост",
			zap.String("post_id", id.String()),
			zap.String("author_id", post.AuthorID.String()),
			zap.String("caller_id", authorID.String()),
		)
		return nil, ErrForbidden
	}
	return post, nil
}

func validatePostRequest(req models.PostRequest) error {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return fmt.Errorf("%w: заголовок обязателен", ErrValidation)
	}
	if utf8.RuneCountInString(title) > 200 {
		return fmt.Errorf("%w: заголовок не длиннее 200 символов", ErrValidation)
	}
	if strings.TrimSpace(req.Content) == "" {
		return fmt.Errorf("%w: контент обязателен", ErrValidation)
	}
	return nil
}

func normalizeTags(in []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(in))
	for _, t := range in {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
