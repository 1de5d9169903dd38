package repo

import (
	"errors"

	"gorm.io/gorm"
)

// ErrDuplicateName reports a product name collision. Checked inside the
// write transaction, with the unique index on name as the backstop.
var ErrDuplicateName = errors.New("product name already exists")

type GormRepo struct {
	DB *gorm.DB
}
