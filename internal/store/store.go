// Package store provides data persistence interfaces and implementations.
package store

import (
	"context"

	"github.com/manthanmittal/portfolio-server/internal/domain"
)

// Repository defines the interface for persisting contact submissions.
type Repository interface {
	// SaveSubmission records a validated contact-form submission.
	SaveSubmission(ctx context.Context, sub *domain.Submission) error

	// ListSubmissions retrieves the most recent submissions, newest first.
	ListSubmissions(ctx context.Context, limit int) ([]*domain.Submission, error)

	// Ping verifies database connectivity and returns an error if the database is unreachable.
	Ping(ctx context.Context) error

	// Close closes the database connection.
	Close() error
}
