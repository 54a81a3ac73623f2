package model

import (
	"time"
)

// Message is an immutable chat utterance. Rows are append-only; nothing in
// this layer updates a message after creation. The composite (room_id,
// sent_at) index serves ordered timeline reads.
type Message struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	RoomID  uint      `gorm:"not null;index:idx_messages_room_time,priority:1" json:"room_id"`
	UserID  uint      `gorm:"not null;index" json:"user_id"`
	Content string    `gorm:"type:text;not null;check:content <> ''" json:"content"`
	SentAt  time.Time `gorm:"not null;index:idx_messages_room_time,priority:2" json:"sent_at"`
}

func (Message) TableName() string {
	return "messages"
}
