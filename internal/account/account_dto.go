package account

type CreateAccountRequest struct {
	Employee uint   `json:"employee" binding:"required"`
	Month    int    `json:"month" binding:"required,gte=1,lte=12"`
	Year     int    `json:"year" binding:"required,gte=1900"`
	Salary   string `json:"salary" binding:"required"`
}

// UpdateAccountRequest replaces the whole record.
type UpdateAccountRequest struct {
	Employee uint   `json:"employee" binding:"required"`
	Month    int    `json:"month" binding:"required,gte=1,lte=12"`
	Year     int    `json:"year" binding:"required,gte=1900"`
	Salary   string `json:"salary" binding:"required"`
}

type AccountResponse struct {
	ID       uint   `json:"id"`
	Employee uint   `json:"employee"`
	Month    int    `json:"month"`
	Year     int    `json:"year"`
	Salary   string `json:"salary"`
}
