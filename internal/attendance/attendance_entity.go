package attendance

import (
	"time"

	"github.com/hamzasysh/OfficeAccountsAttendanceApp/internal/resource"
	"github.com/hamzasysh/OfficeAccountsAttendanceApp/internal/user"
)

type Attendance struct {
	ID           uint       `gorm:"column:id;primaryKey;autoIncrement"`
	EmployeeID   uint       `gorm:"column:employee_id;not null;index;uniqueIndex:uq_attendance_employee_date,priority:1"`
	CheckInTime  time.Time  `gorm:"column:check_in_time;type:timestamptz;not null"`
	CheckOutTime *time.Time `gorm:"column:check_out_time;type:timestamptz"`
	Date         time.Time  `gorm:"column:date;type:date;not null;uniqueIndex:uq_attendance_employee_date,priority:2"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`

	// Owning edge: attendance rows die with their user.
	Employee *user.User `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

func (Attendance) TableName() string {
	return "attendances"
}

var Schema = resource.Schema{
	Name:  "attendance",
	Table: "attendances",
	Fields: map[string]string{
		"id":             "id",
		"employee":       "employee_id",
		"date":           "date",
		"check_in_time":  "check_in_time",
		"check_out_time": "check_out_time",
	},
	UniqueKey: []string{"employee", "date"},
}
