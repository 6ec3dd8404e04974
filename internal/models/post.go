package models

import "time"

type Post struct {
	ID           PostID     `json:"id"`
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	Excerpt      string     `json:"excerpt,omitempty"`
	CoverImage   string     `json:"cover_image,omitempty"`
	Tags         []string   `json:"tags"`
	AuthorID     UserID     `json:"author_id"`
	AuthorName   string     `json:"author_name"`
	Published    bool       `json:"published"`
	PublishedAt  *time.Time `json:"published_at,omitempty"`
	ReadCount    int        `json:"read_count"`
	LikeCount    int        `json:"like_count"`
	LikedBy      []UserID   `json:"liked_by"`
	Comments     []Comment  `json:"comments"`
	CommentCount int        `json:"comment_count"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Comment живёт внутри поста: отдельной записи в хранилище у него нет,
// удаление поста уносит и комментарии.
type Comment struct {
	ID           CommentID `json:"id"`
	Content      string    `json:"content"`
	AuthorID     UserID    `json:"author_id"`
	AuthorName   string    `json:"author_name"`
	AuthorAvatar string    `json:"author_avatar,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// swagger:model PostRequest
type PostRequest struct {
	Title      string   `json:"title"       validate:"required,max=200"`
	Content    string   `json:"content"     validate:"required"`
	Excerpt    string   `json:"excerpt"`
	CoverImage string   `json:"cover_image"`
	Tags       []string `json:"tags"`
	Published  bool     `json:"published"`
}

// swagger:model CommentRequest
type CommentRequest struct {
	Content string `json:"content" validate:"required,max=1000"`
}

// PostPage — страница выдачи в конверте пагинации.
type PostPage struct {
	Data     []*Post `json:"data"`
	Total    int     `json:"total"`
	Page     int     `json:"page"`
	PageSize int     `json:"page_size"`
}
