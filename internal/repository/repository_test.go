package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ferroxide/chatstore/config"
	"github.com/ferroxide/chatstore/internal/model"
	"github.com/ferroxide/chatstore/internal/storage"
)

// newTestDB opens a fresh in-memory SQLite database with foreign keys on, so
// the tests exercise real engine-enforced constraints.
func newTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := storage.Open(&config.DatabaseConfig{
		Driver:     storage.DriverSQLite,
		SQLitePath: "file::memory:",
	})
	require.NoError(t, err)
	require.NoError(t, storage.Migrate(db))
	return db
}

func seedUser(t testing.TB, db *gorm.DB, username string) *model.User {
	t.Helper()

	user := &model.User{Username: username, PasswordHash: "x"}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))
	return user
}

func seedRoom(t testing.TB, db *gorm.DB, name string, ownerID uint) *model.Room {
	t.Helper()

	room := &model.Room{Name: name, OwnerID: ownerID}
	require.NoError(t, NewRoomRepository(db).Create(context.Background(), room))
	return room
}
