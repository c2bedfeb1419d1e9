package domain

import "time"

// BatchNotification is sent to the matching workflow once a batch is loaded.
type BatchNotification struct {
	BatchID     string    `json:"batch_id"`
	UserCount   int       `json:"user_count"`
	TriggeredAt time.Time `json:"triggered_at"`
}
