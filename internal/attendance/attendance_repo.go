package attendance

import (
	"gorm.io/gorm"

	"github.com/hamzasysh/OfficeAccountsAttendanceApp/internal/resource"
)

// Repository is the generic store specialized to attendance records.
type Repository = resource.Repository[Attendance]

func NewRepository(db *gorm.DB) Repository {
	return resource.NewStore[Attendance](db, Schema)
}
