//go:build unit

package infra

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want RepositoryErrorKind
	}{
		{"no rows", pgx.ErrNoRows, KindNotFound},
		{"wrapped no rows", fmt.Errorf("scan: %w", pgx.ErrNoRows), KindNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505"}, KindDuplicateKey},
		{"foreign key violation", &pgconn.PgError{Code: "23503"}, KindForeignKeyViolated},
		{"serialization failure", &pgconn.PgError{Code: "40001"}, KindDBFailure},
		{"plain error", errors.New("connection reset"), KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestWrapRepoErr(t *testing.T) {
	cause := &pgconn.PgError{Code: "23505"}

	err := WrapRepoErr(nil, KindDuplicateKey, "create visit", cause)

	assert.True(t, IsKind(err, KindDuplicateKey))
	assert.False(t, IsKind(err, KindNotFound))
	assert.Contains(t, err.Error(), "DUPLICATE_KEY: create visit")

	var pgErr *pgconn.PgError
	assert.True(t, errors.As(err, &pgErr))
}

func TestWrapRepoErr_WithoutCause(t *testing.T) {
	err := WrapRepoErr(nil, KindNotFound, "visit not found", nil)

	assert.True(t, IsKind(err, KindNotFound))
	assert.Equal(t, "NOT_FOUND: visit not found", err.Error())
}
