package model

import "time"

// Comment 访客评论，parent_id 非空时是对另一条评论的回复
type Comment struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	PostID     int64     `json:"post_id" gorm:"index:idx_comment_post;not null"`
	ParentID   *int64    `json:"parent_id" gorm:"index:idx_comment_parent"`
	Name       string    `json:"name" gorm:"type:varchar(100);not null"`
	Email      string    `json:"email" gorm:"type:varchar(120);not null"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	CreatedAt  time.Time `json:"created_at" gorm:"index:idx_comment_created"`
	IsApproved bool      `json:"is_approved" gorm:"not null;default:false;index:idx_comment_approved"`
}

func (Comment) TableName() string { return "comments" }
