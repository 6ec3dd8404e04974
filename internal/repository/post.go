package repository

import (
	"context"
	"time"

	"inkwell/internal/logger"
	"inkwell/internal/models"

	surrealdb "github.com/surrealdb/surrealdb.go"
	"go.uber.org/zap"
)

type PostRepository struct {
	db *surrealdb.DB
}

func NewPostRepository(db *surrealdb.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(ctx context.Context, post *models.Post) error {
	logger.Log.Info("Создание поста (repo)", zap.String("post_id", post.ID.String()), zap.String("title", post.Title))
	_, err := surrealdb.Create[models.Post](ctx, r.db, post.ID.RecordID(), post)
	if err != nil {
		logger.Log.Error("Ошибка создания поста (repo)", zap.Error(err))
	}
	return err
}

func (r *PostRepository) GetByID(ctx context.Context, id models.PostID) (*models.Post, error) {
	logger.Log.Debug("Получение поста по ID (repo)", zap.String("post_id", id.String()))
	post, err := surrealdb.Select[models.Post](ctx, r.db, id.RecordID())
	if err != nil {
		logger.Log.Error("Ошибка получения поста (repo)", zap.String("post_id", id.String()), zap.Error(err))
		return nil, err
	}
	return post, nil
}

// FetchAndMarkRead возвращает пост, атомарно увеличив счётчик прочтений:
// выборка и инкремент — один UPDATE, без read-modify-write на стороне
// приложения. Nil без ошибки — поста нет.
func (r *PostRepository) FetchAndMarkRead(ctx context.Context, id models.PostID) (*models.Post, error) {
	logger.Log.Debug("Выборка поста с инкрементом прочтений (repo)", zap.String("post_id", id.String()))
	return r.updateOne(ctx,
		`UPDATE $post SET read_count += 1 RETURN AFTER`,
		map[string]any{"post": id.RecordID()},
	)
}

func (r *PostRepository) Update(ctx context.Context, post *models.Post) error {
	logger.Log.Info("Обновление поста (repo)", zap.String("post_id", post.ID.String()))
	_, err := surrealdb.Update[models.Post](ctx, r.db, post.ID.RecordID(), post)
	if err != nil {
		logger.Log.Error("Ошибка обновления поста (repo)", zap.String("post_id", post.ID.String()), zap.Error(err))
	}
	return err
}

func (r *PostRepository) Delete(ctx context.Context, id models.PostID) error {
	logger.Log.Info("Удаление поста (repo)", zap.String("post_id", id.String()))
	_, err := surrealdb.Delete[models.Post](ctx, r.db, id.RecordID())
	if err != nil {
		logger.Log.Error("Ошибка удаления поста (repo)", zap.String("post_id", id.String()), zap.Error(err))
	}
	return err
}

func (r *PostRepository) ListPublished(ctx context.Context, limit, start int) ([]*models.Post, int, error) {
	logger.Log.Debug("Список опубликованных постов (repo)", zap.Int("limit", limit), zap.Int("start", start))
	return r.listPaginated(ctx,
		`SELECT * FROM posts WHERE published = true ORDER BY created_at DESC LIMIT $limit START $start`,
		`SELECT count() AS c FROM posts WHERE published = true GROUP ALL`,
		map[string]any{"limit": limit, "start": start},
	)
}

func (r *PostRepository) ListByAuthor(ctx context.Context, authorID models.UserID, limit, start int) ([]*models.Post, int, error) {
	logger.Log.Debug("Список постов автора (repo)", zap.String("author_id", authorID.String()), zap.Int("limit", limit), zap.Int("start", start))
	return r.listPaginated(ctx,
		`SELECT * FROM posts WHERE author_id = $author ORDER BY created_at DESC LIMIT $limit START $start`,
		`SELECT count() AS c FROM posts WHERE author_id = $author GROUP ALL`,
		map[string]any{"author": authorID.RecordID(), "limit": limit, "start": start},
	)
}

// Search ищет по опубликованным: подстрока в title/content без учёта
// регистра либо точное вхождение в tags.
func (r *PostRepository) Search(ctx context.Context, term string, limit, start int) ([]*models.Post, int, error) {
	logger.Log.Debug("Поиск постов (repo)", zap.String("term", term), zap.Int("limit", limit), zap.Int("start", start))
	const where = `published = true AND (
		string::contains(string::lowercase(title), $term)
		OR string::contains(string::lowercase(content), $term)
		OR $raw IN tags
	)`
	return r.listPaginated(ctx,
		`SELECT * FROM posts WHERE `+where+` ORDER BY created_at DESC LIMIT $limit START $start`,
		`SELECT count() AS c FROM posts WHERE `+where+` GROUP ALL`,
		map[string]any{"term": term, "raw": term, "limit": limit, "start": start},
	)
}

func (r *PostRepository) ListByTag(ctx context.Context, tag string) ([]*models.Post, error) {
	logger.Log.Debug("Список постов по тегу (repo)", zap.String("tag", tag))
	res, err := surrealdb.Query[[]models.Post](ctx, r.db,
		`SELECT * FROM posts WHERE published = true AND $tag IN tags ORDER BY created_at DESC`,
		map[string]any{"tag": tag},
	)
	if err != nil {
		logger.Log.Error("Ошибка выборки постов по тегу (repo)", zap.Error(err))
		return nil, err
	}
	return toPtrs((*res)[0].Result), nil
}

// ToggleLike — атомарный тумблер лайка: membership в liked_by и пересчёт
// like_count выполняются одним UPDATE. Присваивания в SET видят результат
// предыдущих, поэтому like_count = array::len(liked_by) считается уже по
// обновлённому множеству — инвариант like_count == |liked_by| держит само
// хранилище.
func (r *PostRepository) ToggleLike(ctx context.Context, id models.PostID, userID models.UserID) (*models.Post, error) {
	logger.Log.Debug("Переключение лайка (repo)", zap.String("post_id", id.String()), zap.String("user_id", userID.String()))
	return r.updateOne(ctx,
		`UPDATE $post SET
			liked_by = IF $user IN liked_by
				THEN array::remove(liked_by, array::find_index(liked_by, $user))
				ELSE array::append(liked_by, $user)
			END,
			like_count = array::len(liked_by)
		RETURN AFTER`,
		map[string]any{"post": id.RecordID(), "user": userID.RecordID()},
	)
}

// AppendComment добавляет комментарий и пересчитывает comment_count одним
// атомарным UPDATE, заодно штампуя updated_at.
func (r *PostRepository) AppendComment(ctx context.Context, id models.PostID, comment models.Comment, now time.Time) (*models.Post, error) {
	logger.Log.Debug("Добавление комментария (repo)", zap.String("post_id", id.String()), zap.String("comment_id", comment.ID.String()))
	return r.updateOne(ctx,
		`UPDATE $post SET
			comments = array::append(comments, $comment),
			comment_count = array::len(comments),
			updated_at = $now
		RETURN AFTER`,
		map[string]any{"post": id.RecordID(), "comment": comment, "now": now},
	)
}

// MarkPublished — одноразовый переход Draft → Published. Проверку прав и
// повторной публикации делает сервис до вызова.
func (r *PostRepository) MarkPublished(ctx context.Context, id models.PostID, now time.Time) (*models.Post, error) {
	logger.Log.Info("Публикация поста (repo)", zap.String("post_id", id.String()))
	return r.updateOne(ctx,
		`UPDATE $post SET published = true, published_at = $now, updated_at = $now RETURN AFTER`,
		map[string]any{"post": id.RecordID(), "now": now},
	)
}

func (r *PostRepository) updateOne(ctx context.Context, query string, vars map[string]any) (*models.Post, error) {
	res, err := surrealdb.Query[[]models.Post](ctx, r.db, query, vars)
	if err != nil {
		logger.Log.Error("Ошибка изменения поста (repo)", zap.Error(err))
		return nil, err
	}
	rows := (*res)[0].Result
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (r *PostRepository) listPaginated(ctx context.Context, listQuery, countQuery string, vars map[string]any) ([]*models.Post, int, error) {
	res, err := surrealdb.Query[[]models.Post](ctx, r.db, listQuery, vars)
	if err != nil {
		logger.Log.Error("Ошибка выборки постов (repo)", zap.Error(err))
		return nil, 0, err
	}
	posts := toPtrs((*res)[0].Result)

	cnt, err := surrealdb.Query[[]countResult](ctx, r.db, countQuery, vars)
	if err != nil {
		logger.Log.Error("Ошибка подсчёта постов (repo)", zap.Error(err))
		return nil, 0, err
	}
	total := 0
	if rows := (*cnt)[0].Result; len(rows) > 0 {
		total = rows[0].C
	}
	return posts, total, nil
}

func toPtrs(rows []models.Post) []*models.Post {
	out := make([]*models.Post, 0, len(rows))
	for i := range rows {
		out = append(out, &rows[i])
	}
	return out
}
