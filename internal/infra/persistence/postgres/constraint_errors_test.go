package postgres

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(gorm.ErrDuplicatedKey, "create")))
	assert.False(t, isUniqueConstraintViolation(errors.New("connection refused")))
}

func TestIsForeignKeyConstraintViolation(t *testing.T) {
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.True(t, isForeignKeyConstraintViolation(errors.Wrap(gorm.ErrForeignKeyViolated, "create")))
	assert.False(t, isForeignKeyConstraintViolation(gorm.ErrDuplicatedKey))
}

func TestIsNotNullConstraintViolation(t *testing.T) {
	assert.True(t, isNotNullConstraintViolation(
		errors.New(`null value in column "recorded_at" violates not-null constraint`)))
	assert.True(t, isNotNullConstraintViolation(errors.New("SQLSTATE 23502")))
	assert.False(t, isNotNullConstraintViolation(errors.New("connection refused")))
}

func TestIsCheckConstraintViolation(t *testing.T) {
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))
	assert.True(t, isCheckConstraintViolation(errors.Wrap(gorm.ErrCheckConstraintViolated, "update")))
	assert.False(t, isCheckConstraintViolation(gorm.ErrForeignKeyViolated))
}
