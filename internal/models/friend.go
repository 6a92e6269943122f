package models

// FriendEdge is a single directed friendship: FromLogin added ToLogin.
// Edges are never mirrored automatically, so visibility checks that ask
// "is X a friend of Y" must read rows where FromLogin is Y.
type FriendEdge struct {
	FromLogin string `json:"-" gorm:"primaryKey"`
	ToLogin   string `json:"login" gorm:"primaryKey"`
	AddedAt   string `json:"addedAt" gorm:"not null"`
}
