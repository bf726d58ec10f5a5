package account

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hamzasysh/OfficeAccountsAttendanceApp/internal/resource"
	"github.com/hamzasysh/OfficeAccountsAttendanceApp/internal/user"
)

type Account struct {
	ID         uint            `gorm:"column:id;primaryKey;autoIncrement"`
	EmployeeID uint            `gorm:"column:employee_id;not null;index;uniqueIndex:uq_accounts_employee_period,priority:1"`
	Month      int             `gorm:"column:month;not null;uniqueIndex:uq_accounts_employee_period,priority:2"`
	Year       int             `gorm:"column:year;not null;uniqueIndex:uq_accounts_employee_period,priority:3"`
	Salary     decimal.Decimal `gorm:"column:salary;type:numeric(10,2);not null"`
	CreatedAt  time.Time       `gorm:"column:created_at"`
	UpdatedAt  time.Time       `gorm:"column:updated_at"`

	// Owning edge: account rows die with their user.
	Employee *user.User `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

func (Account) TableName() string {
	return "accounts"
}

var Schema = resource.Schema{
	Name:  "account",
	Table: "accounts",
	Fields: map[string]string{
		"id":       "id",
		"employee": "employee_id",
		"month":    "month",
		"year":     "year",
		"salary":   "salary",
	},
	UniqueKey: []string{"employee", "month", "year"},
}
