package post

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v2"

	"github.com/plantify/plantify-backend/internal/domain"
)

func sampleTime() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

func TestRepo_SetDescriptionIfEmpty(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(mock pgxmock.PgxPoolIface)
		wantUpdated bool
		wantErr     bool
	}{
		{
			name: "updates empty description",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`UPDATE posts`).
					WithArgs("Una suculenta feliz.", "p1").
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			wantUpdated: true,
		},
		{
			name: "skips non-empty description",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`UPDATE posts`).
					WithArgs("Una suculenta feliz.", "p1").
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			wantUpdated: false,
		},
		{
			name: "propagates exec error",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`UPDATE posts`).
					WithArgs("Una suculenta feliz.", "p1").
					WillReturnError(errors.New("connection reset"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			if err != nil {
				t.Fatalf("pgxmock: %v", err)
			}
			defer mock.Close()

			tt.setup(mock)

			repo := New(mock)
			updated, err := repo.SetDescriptionIfEmpty(context.Background(), "p1", "Una suculenta feliz.")

			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if updated != tt.wantUpdated {
				t.Errorf("updated: got %v, want %v", updated, tt.wantUpdated)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unmet expectations: %v", err)
			}
		})
	}
}

func TestRepo_GetByID(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock pgxmock.PgxPoolIface)
		wantErr error
	}{
		{
			name: "found",
			setup: func(mock pgxmock.PgxPoolIface) {
				desc := "Mi planta"
				rows := pgxmock.NewRows([]string{"id", "user_id", "image_url", "description", "created_at"}).
					AddRow("p1", "u1", "https://x/img.jpg", &desc, sampleTime())
				mock.ExpectQuery(`SELECT .+ FROM posts`).
					WithArgs("p1").
					WillReturnRows(rows)
			},
		},
		{
			name: "not found",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT .+ FROM posts`).
					WithArgs("p1").
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			if err != nil {
				t.Fatalf("pgxmock: %v", err)
			}
			defer mock.Close()

			tt.setup(mock)

			repo := New(mock)
			post, err := repo.GetByID(context.Background(), "p1")

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if post.ID != "p1" || post.UserID != "u1" {
				t.Errorf("unexpected post: %+v", post)
			}
			if post.Description == nil || *post.Description != "Mi planta" {
				t.Errorf("description: got %v", post.Description)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unmet expectations: %v", err)
			}
		})
	}
}
