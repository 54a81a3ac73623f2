package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferroxide/chatstore/internal/model"
	"github.com/ferroxide/chatstore/internal/storage"
)

func TestUserRepository_Create(t *testing.T) {
	t.Run("assigns an auto-increment ID", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewUserRepository(db)

		user := &model.User{Username: "alice", PasswordHash: "h1"}
		require.NoError(t, repo.Create(context.Background(), user))
		assert.NotZero(t, user.ID)

		second := &model.User{Username: "bob", PasswordHash: "h2"}
		require.NoError(t, repo.Create(context.Background(), second))
		assert.Greater(t, second.ID, user.ID)
	})

	t.Run("rejects duplicate username differing only in case", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewUserRepository(db)

		require.NoError(t, repo.Create(context.Background(), &model.User{Username: "Alice", PasswordHash: "h"}))

		err := repo.Create(context.Background(), &model.User{Username: "alice", PasswordHash: "h"})
		require.Error(t, err)
		assert.ErrorIs(t, err, storage.ErrConstraintViolation)
	})

	t.Run("rejects empty username", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewUserRepository(db)

		err := repo.Create(context.Background(), &model.User{Username: "", PasswordHash: "h"})
		require.Error(t, err)
		assert.ErrorIs(t, err, storage.ErrConstraintViolation)
	})

	t.Run("stores optional avatar hash", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewUserRepository(db)

		avatar := "sha256:abcdef"
		user := &model.User{Username: "carol", PasswordHash: "h", AvatarHash: &avatar}
		require.NoError(t, repo.Create(context.Background(), user))

		got, err := repo.FindByID(context.Background(), user.ID)
		require.NoError(t, err)
		require.NotNil(t, got.AvatarHash)
		assert.Equal(t, avatar, *got.AvatarHash)
	})
}

func TestUserRepository_FindByUsername(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	created := seedUser(t, db, "Alice")

	t.Run("matches regardless of case", func(t *testing.T) {
		for _, name := range []string{"Alice", "alice", "ALICE", "aLiCe"} {
			got, err := repo.FindByUsername(context.Background(), name)
			require.NoError(t, err, "lookup %q", name)
			assert.Equal(t, created.ID, got.ID)
			assert.Equal(t, "Alice", got.Username, "original casing is preserved")
		}
	})

	t.Run("returns ErrNotFound for unknown name", func(t *testing.T) {
		_, err := repo.FindByUsername(context.Background(), "nobody")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

func TestUserRepository_Delete(t *testing.T) {
	t.Run("removes the user", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewUserRepository(db)

		user := seedUser(t, db, "alice")
		require.NoError(t, repo.Delete(context.Background(), user.ID))

		_, err := repo.FindByID(context.Background(), user.ID)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("returns ErrNotFound for unknown ID", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewUserRepository(db)

		err := repo.Delete(context.Background(), 12345)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}
