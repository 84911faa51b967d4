package repository

import (
	"errors"
	"testing"

	"github.com/Domenick1991/busbooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTranslate_NoRows(t *testing.T) {
	err := translate(pgx.ErrNoRows, "booking")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "booking")
}

func TestTranslate_UniqueViolation(t *testing.T) {
	err := translate(&pgconn.PgError{Code: "23505"}, "user")
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestTranslate_Passthrough(t *testing.T) {
	cause := errors.New("connection refused")
	assert.Equal(t, cause, translate(cause, "route"))
	assert.NoError(t, translate(nil, "route"))
}
