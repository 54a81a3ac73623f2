package model

import "time"

// Membership links a user to a room. The pair is the identity: a user belongs
// to a room at most once, enforced by the composite primary key.
type Membership struct {
	RoomID uint `gorm:"primaryKey;autoIncrement:false" json:"room_id"`
	UserID uint `gorm:"primaryKey;autoIncrement:false;index:idx_memberships_user" json:"user_id"`

	JoinedAt time.Time `gorm:"not null;autoCreateTime" json:"joined_at"`
}

func (Membership) TableName() string {
	return "memberships"
}
