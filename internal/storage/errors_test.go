package storage

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "nil stays nil",
			err:  nil,
			want: nil,
		},
		{
			name: "gorm record not found",
			err:  gorm.ErrRecordNotFound,
			want: ErrNotFound,
		},
		{
			name: "wrapped gorm record not found",
			err:  fmt.Errorf("lookup: %w", gorm.ErrRecordNotFound),
			want: ErrNotFound,
		},
		{
			name: "postgres unique violation",
			err:  &pgconn.PgError{Code: "23505"},
			want: ErrConstraintViolation,
		},
		{
			name: "postgres check violation",
			err:  &pgconn.PgError{Code: "23514"},
			want: ErrConstraintViolation,
		},
		{
			name: "postgres foreign key violation",
			err:  &pgconn.PgError{Code: "23503"},
			want: ErrReferentialIntegrity,
		},
		{
			name: "sqlite unique violation",
			err:  errors.New("constraint failed: UNIQUE constraint failed: users.username_key (2067)"),
			want: ErrConstraintViolation,
		},
		{
			name: "sqlite foreign key violation",
			err:  errors.New("constraint failed: FOREIGN KEY constraint failed (787)"),
			want: ErrReferentialIntegrity,
		},
		{
			name: "sqlite check violation",
			err:  errors.New("constraint failed: CHECK constraint failed: chk_messages_content (275)"),
			want: ErrConstraintViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}

	t.Run("unrecognized errors pass through", func(t *testing.T) {
		plain := errors.New("connection reset")
		got := Classify(plain)
		assert.Equal(t, plain, got)
		assert.NotErrorIs(t, got, ErrConstraintViolation)
		assert.NotErrorIs(t, got, ErrReferentialIntegrity)
		assert.NotErrorIs(t, got, ErrNotFound)
	})

	t.Run("postgres errors outside the constraint class pass through", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: "57014"} // query_canceled
		got := Classify(pgErr)
		assert.NotErrorIs(t, got, ErrConstraintViolation)
		assert.NotErrorIs(t, got, ErrReferentialIntegrity)
	})
}
