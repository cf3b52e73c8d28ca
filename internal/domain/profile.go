package domain

import "time"

// Profile is a user's public display identity.
type Profile struct {
	ID        string
	UserID    string
	Username  string
	AvatarURL *string
	CreatedAt time.Time
}
