package user

import (
	"time"

	"github.com/hamzasysh/OfficeAccountsAttendanceApp/internal/resource"
)

type User struct {
	ID                   uint       `gorm:"column:id;primaryKey;autoIncrement"`
	Username             string     `gorm:"column:username;type:varchar(150);not null;uniqueIndex:uq_users_identity,priority:1"`
	Email                string     `gorm:"column:email;type:varchar(254);not null;uniqueIndex:uq_users_identity,priority:2"`
	Password             string     `gorm:"column:password;type:text;not null"`
	Department           string     `gorm:"column:department;type:varchar(50);not null"`
	Position             string     `gorm:"column:position;type:varchar(50);not null"`
	ManagerID            *uint      `gorm:"column:manager_id;index"`
	DateOfBirth          time.Time  `gorm:"column:date_of_birth;type:date;not null"`
	Address              string     `gorm:"column:address;type:text;not null"`
	PhoneNumber          string     `gorm:"column:phone_number;type:varchar(15);not null;uniqueIndex:uq_users_identity,priority:3"`
	EmergencyContactInfo string     `gorm:"column:emergency_contact_info;type:text"`
	JoiningDate          time.Time  `gorm:"column:joining_date;type:date;not null"`
	TerminationDate      *time.Time `gorm:"column:termination_date;type:date"`
	SkillsExpertise      string     `gorm:"column:skills_expertise;type:text"`
	CreatedAt            time.Time  `gorm:"column:created_at"`
	UpdatedAt            time.Time  `gorm:"column:updated_at"`

	// Back-reference, never an ownership edge: deleting a manager nulls this
	// out instead of cascading.
	Manager *User `gorm:"foreignKey:ManagerID;constraint:OnDelete:SET NULL"`
}

func (User) TableName() string {
	return "users"
}

// Schema declares the filterable fields and the soft uniqueness key checked
// before a create.
var Schema = resource.Schema{
	Name:  "user",
	Table: "users",
	Fields: map[string]string{
		"id":               "id",
		"username":         "username",
		"email":            "email",
		"department":       "department",
		"position":         "position",
		"manager":          "manager_id",
		"phone_number":     "phone_number",
		"date_of_birth":    "date_of_birth",
		"joining_date":     "joining_date",
		"termination_date": "termination_date",
	},
	UniqueKey: []string{"username", "email", "phone_number"},
}
