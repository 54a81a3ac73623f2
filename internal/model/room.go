package model

import "time"

// Room represents a chat channel. Names are unique case-insensitively via
// NameKey. A nil PasswordHash means entry is not password gated.
type Room struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Name         string  `gorm:"not null;type:varchar(255);check:name <> ''" json:"name"`
	NameKey      string  `gorm:"column:name_key;uniqueIndex;not null;type:varchar(255)" json:"-"`
	OwnerID      uint    `gorm:"not null" json:"owner_id"`
	IconHash     *string `gorm:"type:varchar(128)" json:"icon_hash,omitempty"`
	PasswordHash *string `gorm:"type:varchar(255)" json:"-"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`

	Memberships []Membership `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE" json:"-"`
	Messages    []Message    `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Room) TableName() string {
	return "rooms"
}
