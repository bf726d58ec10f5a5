package user

type CreateUserRequest struct {
	Username             string  `json:"username" binding:"required,max=150"`
	Email                string  `json:"email" binding:"required,email"`
	Password             string  `json:"password" binding:"required,min=8"`
	Department           string  `json:"department" binding:"required,max=50"`
	Position             string  `json:"position" binding:"required,max=50"`
	Manager              *uint   `json:"manager"`
	DateOfBirth          string  `json:"date_of_birth" binding:"required"`
	Address              string  `json:"address" binding:"required"`
	PhoneNumber          string  `json:"phone_number" binding:"required,max=15"`
	EmergencyContactInfo string  `json:"emergency_contact_info"`
	JoiningDate          string  `json:"joining_date" binding:"required"`
	TerminationDate      *string `json:"termination_date"`
	SkillsExpertise      string  `json:"skills_expertise"`
}

// UpdateUserRequest is a full replacement of every field, not a patch.
type UpdateUserRequest struct {
	Username             string  `json:"username" binding:"required,max=150"`
	Email                string  `json:"email" binding:"required,email"`
	Password             string  `json:"password" binding:"required,min=8"`
	Department           string  `json:"department" binding:"required,max=50"`
	Position             string  `json:"position" binding:"required,max=50"`
	Manager              *uint   `json:"manager"`
	DateOfBirth          string  `json:"date_of_birth" binding:"required"`
	Address              string  `json:"address" binding:"required"`
	PhoneNumber          string  `json:"phone_number" binding:"required,max=15"`
	EmergencyContactInfo string  `json:"emergency_contact_info"`
	JoiningDate          string  `json:"joining_date" binding:"required"`
	TerminationDate      *string `json:"termination_date"`
	SkillsExpertise      string  `json:"skills_expertise"`
}

type UserResponse struct {
	ID                   uint    `json:"id"`
	Username             string  `json:"username"`
	Email                string  `json:"email"`
	Department           string  `json:"department"`
	Position             string  `json:"position"`
	Manager              *uint   `json:"manager"`
	DateOfBirth          string  `json:"date_of_birth"`
	Address              string  `json:"address"`
	PhoneNumber          string  `json:"phone_number"`
	EmergencyContactInfo string  `json:"emergency_contact_info,omitempty"`
	JoiningDate          string  `json:"joining_date"`
	TerminationDate      *string `json:"termination_date,omitempty"`
	SkillsExpertise      string  `json:"skills_expertise,omitempty"`
}

// UserOption is the slim shape served by the cached directory endpoint.
type UserOption struct {
	ID         uint   `json:"id"`
	Username   string `json:"username"`
	Department string `json:"department"`
	Position   string `json:"position"`
}
