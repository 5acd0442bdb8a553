package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// CreateJobInput carries the validated fields of a new job.
type CreateJobInput struct {
	JobNumber   string
	ClientName  string
	JobRef      string
	M2Area      decimal.Decimal
	HoursWorked decimal.Decimal
	DesignFee   decimal.Decimal
	// CreatedBy is the identifier of the authenticated submitter.
	CreatedBy string
}

// JobResult is the view of a stored job.
type JobResult struct {
	ID          string
	JobNumber   string
	ClientName  string
	JobRef      string
	M2Area      decimal.Decimal
	HoursWorked decimal.Decimal
	DesignFee   decimal.Decimal
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ListJobsInput struct {
	Page  int
	Limit int
}

type ListJobsResult struct {
	Items      []JobResult
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// JobService defines use-case operations for job records.
type JobService interface {
	CreateJob(ctx context.Context, input CreateJobInput) (*JobResult, error)
	ListJobs(ctx context.Context, input ListJobsInput) (*ListJobsResult, error)
}
