package account

import (
	"gorm.io/gorm"

	"github.com/hamzasysh/OfficeAccountsAttendanceApp/internal/resource"
)

// Repository is the generic store specialized to salary accounts.
type Repository = resource.Repository[Account]

func NewRepository(db *gorm.DB) Repository {
	return resource.NewStore[Account](db, Schema)
}
