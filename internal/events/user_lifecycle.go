package events

import "time"

const UserLifecycleTopic = "hr.user.lifecycle.v1"

const (
	UserCreatedEventType = "user_created"
	UserDeletedEventType = "user_deleted"
)

type UserLifecycleEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	UserID     uint      `json:"user_id"`
	Username   string    `json:"username"`
	Department string    `json:"department,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
