package model

import (
	"time"
)

// User represents an account. UsernameKey holds the lower-cased form of
// Username and carries the unique index, so "Alice" and "alice" collide.
type User struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Username     string  `gorm:"not null;type:varchar(255);check:username <> ''" json:"username"`
	UsernameKey  string  `gorm:"column:username_key;uniqueIndex;not null;type:varchar(255)" json:"-"`
	PasswordHash string  `gorm:"not null;type:varchar(255)" json:"-"`
	AvatarHash   *string `gorm:"type:varchar(128)" json:"avatar_hash,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`

	// Dependent rows are removed by the engine when the user row goes away.
	OwnedRooms  []Room       `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
	Memberships []Membership `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Messages    []Message    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (User) TableName() string {
	return "users"
}
