package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ferroxide/chatstore/internal/logger"
	"github.com/ferroxide/chatstore/internal/model"
	"github.com/ferroxide/chatstore/internal/repository"
	"github.com/ferroxide/chatstore/internal/storage"
)

// IMessageService defines the interface for message operations
type IMessageService interface {
	Post(ctx context.Context, roomID, userID uint, content string, sentAt time.Time) (*model.Message, error)
	Timeline(ctx context.Context, roomID uint, order repository.Order, page repository.Page) ([]*model.Message, error)
	Count(ctx context.Context, roomID uint) (int64, error)
}

// MessageService implements the IMessageService interface
type MessageService struct {
	messages repository.IMessageRepository
	log      *logger.Logger
}

// NewMessageService creates a new IMessageService instance
func NewMessageService(messages repository.IMessageRepository, log *logger.Logger) IMessageService {
	return &MessageService{messages: messages, log: log}
}

// Post appends a message to a room's timeline. The send timestamp comes from
// the caller; a zero value falls back to the current time. Messages are
// immutable once written and are removed only by room or author cascades.
func (s *MessageService) Post(ctx context.Context, roomID, userID uint, content string, sentAt time.Time) (*model.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyMessage
	}
	if sentAt.IsZero() {
		sentAt = time.Now().UTC()
	}

	message := &model.Message{
		RoomID:  roomID,
		UserID:  userID,
		Content: content,
		SentAt:  sentAt,
	}

	if err := s.messages.Create(ctx, message); err != nil {
		if errors.Is(err, storage.ErrReferentialIntegrity) {
			return nil, ErrDanglingReference
		}
		return nil, fmt.Errorf("failed to post message: %w", err)
	}

	s.log.WithContext(ctx).Debug("message posted",
		zap.Uint("message_id", message.ID),
		zap.Uint("room_id", roomID),
		zap.Uint("user_id", userID),
	)
	return message, nil
}

// Timeline reads a room's messages in the requested send-timestamp order.
func (s *MessageService) Timeline(ctx context.Context, roomID uint, order repository.Order, page repository.Page) ([]*model.Message, error) {
	messages, err := s.messages.Timeline(ctx, roomID, order, page)
	if err != nil {
		return nil, fmt.Errorf("failed to read timeline: %w", err)
	}
	return messages, nil
}

// Count returns the number of messages in a room.
func (s *MessageService) Count(ctx context.Context, roomID uint) (int64, error) {
	count, err := s.messages.CountByRoom(ctx, roomID)
	if err != nil {
		return 0, fmt.Errorf("failed to count messages: %w", err)
	}
	return count, nil
}
