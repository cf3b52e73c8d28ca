package domain

import "time"

// Post is a user-submitted plant photo with an optional caption.
// Description is nil until either the author or the enrichment pipeline
// sets it; the pipeline never overwrites a non-empty value.
type Post struct {
	ID          string
	UserID      string
	ImageURL    string
	Description *string
	CreatedAt   time.Time
}
