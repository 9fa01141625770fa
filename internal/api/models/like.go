package models

// Like represents a row in the likes table. At most one row exists per
// (news, user) pair.
type Like struct {
	NewsID int64 `db:"news_id" json:"news_id"`
	UserID int64 `db:"user_id" json:"user_id"`
}

// ToggleLikeRequest toggles the caller's like on an article.
type ToggleLikeRequest struct {
	NewsID int64 `json:"news_id" binding:"required"`
}
