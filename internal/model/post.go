package model

import "time"

// Post 文章主体
type Post struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"type:varchar(200);not null"`
	Content     string    `json:"content" gorm:"type:text;not null"`
	AuthorID    int64     `json:"author_id" gorm:"index:idx_post_author;not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"index:idx_post_created"`
	UpdatedAt   time.Time `json:"updated_at"`
	IsPublished bool      `json:"is_published" gorm:"not null;default:true"`
}

func (Post) TableName() string { return "posts" }
