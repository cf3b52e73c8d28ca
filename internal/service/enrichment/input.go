package enrichment

import (
	"net/url"

	"github.com/plantify/plantify-backend/internal/domain"
)

// Input is the enrichment trigger payload for one new post.
type Input struct {
	ImageURL string
	PostID   string
	UserID   string
}

// Validate checks all fields and collects every failure, so a caller with
// multiple mistakes sees them all at once.
func (i Input) Validate() error {
	var errs []domain.FieldError

	if i.ImageURL == "" {
		errs = append(errs, domain.FieldError{Field: "imageUrl", Message: "is required"})
	} else if u, err := url.Parse(i.ImageURL); err != nil || !u.IsAbs() {
		errs = append(errs, domain.FieldError{Field: "imageUrl", Message: "must be an absolute URL"})
	}
	if i.PostID == "" {
		errs = append(errs, domain.FieldError{Field: "postId", Message: "is required"})
	}
	if i.UserID == "" {
		errs = append(errs, domain.FieldError{Field: "userId", Message: "is required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
