package models

import (
	"time"
)

// Follow records that FollowerID follows UserID. The pair is unique and
// self-follows are rejected before insert.
type Follow struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FollowerID uint      `gorm:"not null;uniqueIndex:uq_follow_pair" json:"follower_id"`
	UserID     uint      `gorm:"not null;uniqueIndex:uq_follow_pair" json:"user_id"`
	CreatedAt  time.Time `json:"created_at"`

	Follower User `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE" json:"-"`
	User     User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
