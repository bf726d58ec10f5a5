package attendance

type CreateAttendanceRequest struct {
	Employee     uint    `json:"employee" binding:"required"`
	CheckInTime  string  `json:"check_in_time" binding:"required"`
	CheckOutTime *string `json:"check_out_time"`
	Date         string  `json:"date" binding:"required"`
}

// UpdateAttendanceRequest replaces the whole record.
type UpdateAttendanceRequest struct {
	Employee     uint    `json:"employee" binding:"required"`
	CheckInTime  string  `json:"check_in_time" binding:"required"`
	CheckOutTime *string `json:"check_out_time"`
	Date         string  `json:"date" binding:"required"`
}

type AttendanceResponse struct {
	ID           uint    `json:"id"`
	Employee     uint    `json:"employee"`
	CheckInTime  string  `json:"check_in_time"`
	CheckOutTime *string `json:"check_out_time,omitempty"`
	Date         string  `json:"date"`
}
