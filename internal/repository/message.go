package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/ferroxide/chatstore/internal/model"
	"github.com/ferroxide/chatstore/internal/storage"
)

// Order selects the timeline direction by send timestamp.
type Order string

const (
	OrderAsc  Order = "ASC"
	OrderDesc Order = "DESC"
)

// Page bounds a timeline read. A non-positive limit falls back to
// DefaultPageLimit; limits above MaxPageLimit are clamped.
type Page struct {
	Limit  int
	Offset int
}

const (
	DefaultPageLimit = 100
	MaxPageLimit     = 500
)

func (p Page) limit() int {
	if p.Limit <= 0 {
		return DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		return MaxPageLimit
	}
	return p.Limit
}

type IMessageRepository interface {
	Create(ctx context.Context, message *model.Message) error
	FindByID(ctx context.Context, id uint) (*model.Message, error)
	Timeline(ctx context.Context, roomID uint, order Order, page Page) ([]*model.Message, error)
	CountByRoom(ctx context.Context, roomID uint) (int64, error)
}

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) IMessageRepository {
	return &MessageRepository{db: db}
}

// Create appends a message. A dangling room or author reference surfaces as
// storage.ErrReferentialIntegrity. Messages are never updated afterwards.
func (r *MessageRepository) Create(ctx context.Context, message *model.Message) error {
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		return storage.Classify(err)
	}
	return nil
}

func (r *MessageRepository) FindByID(ctx context.Context, id uint) (*model.Message, error) {
	var message model.Message
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&message).Error; err != nil {
		return nil, storage.Classify(err)
	}
	return &message, nil
}

// Timeline reads a room's messages ordered by send timestamp, served by the
// composite (room_id, sent_at) index. The surrogate ID breaks ties between
// messages sharing a timestamp so pages are stable.
func (r *MessageRepository) Timeline(ctx context.Context, roomID uint, order Order, page Page) ([]*model.Message, error) {
	dir := "ASC"
	if order == OrderDesc {
		dir = "DESC"
	}

	var messages []*model.Message
	err := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("sent_at " + dir).
		Order("id " + dir).
		Limit(page.limit()).
		Offset(page.Offset).
		Find(&messages).Error
	if err != nil {
		return nil, storage.Classify(err)
	}
	return messages, nil
}

// CountByRoom returns the number of messages in a room.
func (r *MessageRepository) CountByRoom(ctx context.Context, roomID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Message{}).
		Where("room_id = ?", roomID).
		Count(&count).Error
	if err != nil {
		return 0, storage.Classify(err)
	}
	return count, nil
}
