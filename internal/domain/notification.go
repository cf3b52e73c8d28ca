package domain

import "time"

// NotificationTypeNewPost tags notifications produced by the post-enrichment
// fan-out. Read-state management belongs to the client, not the pipeline.
const NotificationTypeNewPost = "new_post"

// Notification is a per-recipient record announcing an event. The store
// assigns ID and CreatedAt on insert.
type Notification struct {
	ID        string
	UserID    string
	Type      string
	Message   string
	PostID    string
	IsRead    bool
	CreatedAt time.Time
}
