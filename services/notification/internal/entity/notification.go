package entity

import "time"

// Notification is one rendered event in a user's inbox.
type Notification struct {
	ID        string                 `json:"id"`
	UserID    string                 `json:"user_id"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	Type      string                 `json:"type"`
	Data      map[string]interface{} `json:"data,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

// Page is a slice of an inbox plus the inbox size.
type Page struct {
	Notifications []Notification `json:"notifications"`
	Count         int            `json:"count"`
	Total         int64          `json:"total"`
	Offset        int            `json:"offset"`
}
