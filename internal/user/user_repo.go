package user

import (
	"gorm.io/gorm"

	"github.com/hamzasysh/OfficeAccountsAttendanceApp/internal/resource"
)

// Repository is the generic store specialized to users.
type Repository = resource.Repository[User]

func NewRepository(db *gorm.DB) Repository {
	return resource.NewStore[User](db, Schema)
}
