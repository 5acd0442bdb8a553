package ports

import (
	"context"

	"github.com/jobledger/records-api/internal/core/domain"
)

// ListJobsFilter carries paging for the job listing.
type ListJobsFilter struct {
	Page  int // 1-based
	Limit int
}

// JobRepository defines persistence operations for job records.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) error
	// List returns a page of jobs, newest first, and the total count.
	List(ctx context.Context, filter ListJobsFilter) ([]*domain.Job, int64, error)
}
