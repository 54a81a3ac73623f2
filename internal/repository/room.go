package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/ferroxide/chatstore/internal/model"
	"github.com/ferroxide/chatstore/internal/storage"
)

// IRoomRepository defines the interface for room and membership data operations
type IRoomRepository interface {
	Create(ctx context.Context, room *model.Room) error
	FindByID(ctx context.Context, id uint) (*model.Room, error)
	FindByName(ctx context.Context, name string) (*model.Room, error)
	Delete(ctx context.Context, id uint) error

	AddMember(ctx context.Context, roomID, userID uint) error
	RemoveMember(ctx context.Context, roomID, userID uint) error
	IsMember(ctx context.Context, roomID, userID uint) (bool, error)
	RoomsOfUser(ctx context.Context, userID uint) ([]*model.Room, error)
	MembersOfRoom(ctx context.Context, roomID uint) ([]*model.User, error)
}

// RoomRepository implements IRoomRepository interface
type RoomRepository struct {
	db *gorm.DB
}

// NewRoomRepository creates a new IRoomRepository instance
func NewRoomRepository(db *gorm.DB) IRoomRepository {
	return &RoomRepository{db: db}
}

// Create inserts a new room. A case-insensitive name clash surfaces as
// storage.ErrConstraintViolation; a dangling owner as
// storage.ErrReferentialIntegrity.
func (r *RoomRepository) Create(ctx context.Context, room *model.Room) error {
	room.NameKey = fold(room.Name)
	if err := r.db.WithContext(ctx).Create(room).Error; err != nil {
		return storage.Classify(err)
	}
	return nil
}

// FindByID finds a room by ID
func (r *RoomRepository) FindByID(ctx context.Context, id uint) (*model.Room, error) {
	var room model.Room
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&room).Error
	if err != nil {
		return nil, storage.Classify(err)
	}
	return &room, nil
}

// FindByName finds a room by name, compared case-insensitively.
func (r *RoomRepository) FindByName(ctx context.Context, name string) (*model.Room, error) {
	var room model.Room
	err := r.db.WithContext(ctx).Where("name_key = ?", fold(name)).First(&room).Error
	if err != nil {
		return nil, storage.Classify(err)
	}
	return &room, nil
}

// Delete removes a room; the engine cascades its memberships and messages in
// the same statement.
func (r *RoomRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Room{}, id)
	if res.Error != nil {
		return storage.Classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: room %d", storage.ErrNotFound, id)
	}
	return nil
}

// AddMember records that a user belongs to a room. There are no upsert
// semantics: inserting an existing pair collides on the composite primary key
// and returns storage.ErrConstraintViolation, which is also how concurrent
// duplicate joins resolve (one inserter wins).
func (r *RoomRepository) AddMember(ctx context.Context, roomID, userID uint) error {
	member := &model.Membership{
		RoomID: roomID,
		UserID: userID,
	}
	if err := r.db.WithContext(ctx).Create(member).Error; err != nil {
		return storage.Classify(err)
	}
	return nil
}

// RemoveMember deletes a membership pair. Deleting a pair that does not exist
// is not an error; zero rows affected is a valid outcome.
func (r *RoomRepository) RemoveMember(ctx context.Context, roomID, userID uint) error {
	err := r.db.WithContext(ctx).
		Where("room_id = ? AND user_id = ?", roomID, userID).
		Delete(&model.Membership{}).Error
	if err != nil {
		return storage.Classify(err)
	}
	return nil
}

// IsMember checks whether a user belongs to a room.
func (r *RoomRepository) IsMember(ctx context.Context, roomID, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Membership{}).
		Where("room_id = ? AND user_id = ?", roomID, userID).
		Count(&count).Error
	if err != nil {
		return false, storage.Classify(err)
	}
	return count > 0, nil
}

// RoomsOfUser retrieves all rooms a user is a member of. The user-side index
// on memberships serves this join.
func (r *RoomRepository) RoomsOfUser(ctx context.Context, userID uint) ([]*model.Room, error) {
	var rooms []*model.Room
	err := r.db.WithContext(ctx).
		Table("rooms").
		Joins("JOIN memberships ON rooms.id = memberships.room_id").
		Where("memberships.user_id = ?", userID).
		Find(&rooms).Error
	if err != nil {
		return nil, storage.Classify(err)
	}
	return rooms, nil
}

// MembersOfRoom retrieves all users that belong to a room.
func (r *RoomRepository) MembersOfRoom(ctx context.Context, roomID uint) ([]*model.User, error) {
	var users []*model.User
	err := r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN memberships ON users.id = memberships.user_id").
		Where("memberships.room_id = ?", roomID).
		Find(&users).Error
	if err != nil {
		return nil, storage.Classify(err)
	}
	return users, nil
}
