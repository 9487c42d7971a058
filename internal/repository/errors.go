package repository

import (
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// IsDuplicate reports whether err comes from a unique-index violation. The
// GORM connection is opened with TranslateError, so the usual path is
// gorm.ErrDuplicatedKey; the pq check covers raw driver errors.
func IsDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	return false
}
