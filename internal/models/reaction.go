package models

const (
	ReactionLike    = "like"
	ReactionDislike = "dislike"
)

// Reaction holds at most one row per (post, user); switching a reaction
// updates the row in place rather than inserting a second one.
type Reaction struct {
	PostID   string `json:"postId" gorm:"primaryKey"`
	Login    string `json:"login" gorm:"primaryKey"`
	Reaction string `json:"reaction" gorm:"not null"`
}
