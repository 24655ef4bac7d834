package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/manthanmittal/portfolio-server/internal/domain"
)

func newTestStore(t *testing.T) Repository {
	t.Helper()
	repo, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewSQLite() error = %v", err)
	}
	t.Cleanup(func() {
		if err := repo.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	return repo
}

func newSubmission(name string, createdAt time.Time) *domain.Submission {
	return &domain.Submission{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     "visitor@example.com",
		Reason:    "hiring",
		Message:   "Let's talk.",
		ClientKey: "1.2.3.4",
		CreatedAt: createdAt,
	}
}

func TestPing(t *testing.T) {
	repo := newTestStore(t)
	if err := repo.Ping(context.Background()); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
}

func TestSaveAndListSubmissions(t *testing.T) {
	repo := newTestStore(t)
	ctx := context.Background()

	now := time.Now().Truncate(time.Second)
	older := newSubmission("First Visitor", now.Add(-time.Hour))
	newer := newSubmission("Second Visitor", now)

	if err := repo.SaveSubmission(ctx, older); err != nil {
		t.Fatalf("SaveSubmission() error = %v", err)
	}
	if err := repo.SaveSubmission(ctx, newer); err != nil {
		t.Fatalf("SaveSubmission() error = %v", err)
	}

	subs, err := repo.ListSubmissions(ctx, 10)
	if err != nil {
		t.Fatalf("ListSubmissions() error = %v", err)
	}
	if len(subs) != 2 {
		t.Fatalf("listed %d submissions, want 2", len(subs))
	}

	// Newest first.
	if subs[0].ID != newer.ID || subs[1].ID != older.ID {
		t.Errorf("order = [%s, %s], want newest first", subs[0].Name, subs[1].Name)
	}

	got := subs[0]
	if got.Name != newer.Name || got.Email != newer.Email ||
		got.Reason != newer.Reason || got.Message != newer.Message ||
		got.ClientKey != newer.ClientKey {
		t.Errorf("round-tripped submission = %+v, want %+v", got, newer)
	}
	if !got.CreatedAt.Equal(newer.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, newer.CreatedAt)
	}
}

func TestListSubmissionsRespectsLimit(t *testing.T) {
	repo := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		sub := newSubmission("Visitor", time.Now().Add(time.Duration(i)*time.Second))
		if err := repo.SaveSubmission(ctx, sub); err != nil {
			t.Fatalf("SaveSubmission() error = %v", err)
		}
	}

	subs, err := repo.ListSubmissions(ctx, 3)
	if err != nil {
		t.Fatalf("ListSubmissions() error = %v", err)
	}
	if len(subs) != 3 {
		t.Errorf("listed %d submissions, want 3", len(subs))
	}
}

func TestDuplicateIDRejected(t *testing.T) {
	repo := newTestStore(t)
	ctx := context.Background()

	sub := newSubmission("Visitor", time.Now())
	if err := repo.SaveSubmission(ctx, sub); err != nil {
		t.Fatalf("SaveSubmission() error = %v", err)
	}
	if err := repo.SaveSubmission(ctx, sub); err == nil {
		t.Error("duplicate ID accepted, want error")
	}
}
