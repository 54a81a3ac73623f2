package service

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ferroxide/chatstore/config"
	"github.com/ferroxide/chatstore/internal/logger"
	"github.com/ferroxide/chatstore/internal/repository"
	"github.com/ferroxide/chatstore/internal/storage"
)

type testEnv struct {
	db       *gorm.DB
	users    IUserService
	rooms    IRoomService
	messages IMessageService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := storage.Open(&config.DatabaseConfig{
		Driver:     storage.DriverSQLite,
		SQLitePath: "file::memory:",
	})
	require.NoError(t, err)
	require.NoError(t, storage.Migrate(db))

	log, err := logger.NewDevelopment()
	require.NoError(t, err)

	return &testEnv{
		db:       db,
		users:    NewUserService(repository.NewUserRepository(db), log),
		rooms:    NewRoomService(repository.NewRoomRepository(db), log),
		messages: NewMessageService(repository.NewMessageRepository(db), log),
	}
}
