package models

import "time"

// Comment represents a row in the comments table.
type Comment struct {
	ID          int64     `db:"id" json:"id"`
	UserID      int64     `db:"user_id" json:"user_id"`
	NewsID      int64     `db:"news_id" json:"news_id"`
	CommentText string    `db:"comment_text" json:"comment_text"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// CommentWithAuthor is a comment joined to its author's display name.
type CommentWithAuthor struct {
	ID          int64     `db:"id" json:"id"`
	CommentText string    `db:"comment_text" json:"comment_text"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UserID      int64     `db:"user_id" json:"user_id"`
	UserName    string    `db:"user_name" json:"user_name"`
}

// AddCommentRequest posts a new comment on an article.
type AddCommentRequest struct {
	NewsID      int64  `json:"news_id" binding:"required"`
	CommentText string `json:"comment_text" binding:"required"`
}

// UpdateCommentRequest overwrites a comment's text.
type UpdateCommentRequest struct {
	NewCommentText string `json:"newCommentText" binding:"required"`
}
