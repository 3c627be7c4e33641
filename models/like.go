package models

import (
	"time"
)

// A user can like a post at most once; the composite unique index is the
// authority, the handler's existence check only keeps the common path cheap.
type Like struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:uq_like_user_post" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:uq_like_user_post" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Post Post `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
}
