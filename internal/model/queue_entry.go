package model

import "time"

// QueueStatus represents the state of a queue entry.
type QueueStatus string

const (
	QueueStatusWaiting QueueStatus = "waiting"
	QueueStatusDone    QueueStatus = "done"
)

// Valid reports whether s is one of the defined statuses.
func (s QueueStatus) Valid() bool {
	return s == QueueStatusWaiting || s == QueueStatusDone
}

// QueueEntry is a customer's place in the serving line.
// IDs are assigned in arrival order and double as the admission sequence.
type QueueEntry struct {
	ID        uint        `json:"id" gorm:"primaryKey"`
	Name      string      `json:"name,omitempty" gorm:"size:100"`
	Status    QueueStatus `json:"status" gorm:"type:varchar(20);not null;default:'waiting';index"`
	CreatedAt time.Time   `json:"created_at" gorm:"index"`
}

// DisplayName returns the customer name, or "Guest" when none was given.
func (e *QueueEntry) DisplayName() string {
	if e.Name != "" {
		return e.Name
	}
	return "Guest"
}
