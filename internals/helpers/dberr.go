package helper

import (
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// IsUniqueViolation reports whether err is a Postgres duplicate-key error
// (SQLSTATE 23505), so services can surface 409 instead of 500 when a
// uniqueness race slips past the pre-insert check.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
