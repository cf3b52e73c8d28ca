package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/plantify/plantify-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedProfile creates a profile with a generated username.
func SeedProfile(t *testing.T, pool *pgxpool.Pool) domain.Profile {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	profile := domain.Profile{
		ID:       uuid.New().String(),
		UserID:   uuid.New().String(),
		Username: "plantlover-" + suffix,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO profiles (id, user_id, username) VALUES ($1, $2, $3)`,
		profile.ID, profile.UserID, profile.Username,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProfile insert: %v", err)
	}

	return profile
}

// SeedPost creates a post owned by the given profile. An empty description
// is stored as NULL, matching what the mobile client submits when the
// author skips the field.
func SeedPost(t *testing.T, pool *pgxpool.Pool, userID, description string) domain.Post {
	t.Helper()
	ctx := context.Background()

	post := domain.Post{
		ID:       uuid.New().String(),
		UserID:   userID,
		ImageURL: "https://storage.plantify.app/" + uniqueSuffix() + ".jpg",
	}

	var desc *string
	if description != "" {
		desc = &description
		post.Description = desc
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO posts (id, user_id, image_url, description) VALUES ($1, $2, $3, $4)`,
		post.ID, post.UserID, post.ImageURL, desc,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPost insert: %v", err)
	}

	return post
}
