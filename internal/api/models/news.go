package models

import (
	"encoding/base64"
	"time"
)

// News represents a row in the news table. The image is stored inline as
// raw bytes and re-encoded to base64 on the way out.
type News struct {
	ID           int64     `db:"id" json:"id"`
	Title        string    `db:"title" json:"title"`
	Description  string    `db:"description" json:"description"`
	Category     string    `db:"category" json:"category"`
	PublishedAt  time.Time `db:"published_at" json:"published_at"`
	Image        []byte    `db:"image" json:"-"`
	LikeCount    int       `db:"like_count" json:"-"`
	CommentCount int       `db:"comment_count" json:"-"`
}

// NewsItem is the wire form of an article: image as base64 text.
type NewsItem struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	PublishedAt time.Time `json:"published_at"`
	Image       string    `json:"image"`
}

// NewsWithLikes is a NewsItem annotated with the aggregate like count.
type NewsWithLikes struct {
	NewsItem
	LikeCount int `json:"like_count"`
}

// ToNewsItem converts a row to its wire form.
func (n *News) ToNewsItem() NewsItem {
	return NewsItem{
		ID:          n.ID,
		Title:       n.Title,
		Description: n.Description,
		Category:    n.Category,
		PublishedAt: n.PublishedAt,
		Image:       base64.StdEncoding.EncodeToString(n.Image),
	}
}

// ToNewsWithLikes converts a row to its wire form including the like count.
func (n *News) ToNewsWithLikes() NewsWithLikes {
	return NewsWithLikes{
		NewsItem:  n.ToNewsItem(),
		LikeCount: n.LikeCount,
	}
}
