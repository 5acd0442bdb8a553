package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jobledger/records-api/internal/core/domain"
	"github.com/jobledger/records-api/internal/core/ports"
)

const (
	defaultJobPageLimit = 100
	maxJobPageLimit     = 100
	maxJobPage          = 1_000_000
	maxJobTextLength    = 100
)

type JobService struct {
	repo   ports.JobRepository
	logger zerolog.Logger
}

func NewJobService(repo ports.JobRepository, logger zerolog.Logger) *JobService {
	return &JobService{repo: repo, logger: logger}
}

// CreateJob validates and stores a new job attributed to input.CreatedBy.
func (s *JobService) CreateJob(ctx context.Context, input ports.CreateJobInput) (*ports.JobResult, error) {
	if err := validateJob(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	job := &domain.Job{
		JobNumber:   strings.TrimSpace(input.JobNumber),
		ClientName:  strings.TrimSpace(input.ClientName),
		JobRef:      strings.TrimSpace(input.JobRef),
		M2Area:      input.M2Area,
		HoursWorked: input.HoursWorked,
		DesignFee:   input.DesignFee,
		CreatedBy:   input.CreatedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, job); err != nil {
		s.logger.Error().Err(err).Msg("failed to create job")
		return nil, err
	}

	s.logger.Info().Str("job_id", job.ID).Str("job_number", job.JobNumber).Str("created_by", job.CreatedBy).Msg("job created")

	result := toJobResult(job)
	return &result, nil
}

// ListJobs returns one page of jobs, newest first.
func (s *JobService) ListJobs(ctx context.Context, input ports.ListJobsInput) (*ports.ListJobsResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	if page > maxJobPage {
		return nil, fmt.Errorf("%w: page must be at most %d", domain.ErrInvalidJob, maxJobPage)
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultJobPageLimit
	}
	if limit > maxJobPageLimit {
		limit = maxJobPageLimit
	}

	jobs, total, err := s.repo.List(ctx, ports.ListJobsFilter{Page: page, Limit: limit})
	if err != nil {
		return nil, err
	}

	items := make([]ports.JobResult, 0, len(jobs))
	for _, j := range jobs {
		items = append(items, toJobResult(j))
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &ports.ListJobsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

func validateJob(in ports.CreateJobInput) error {
	texts := []struct{ field, value string }{
		{"job_number", in.JobNumber},
		{"client_name", in.ClientName},
		{"job_ref", in.JobRef},
	}
	for _, t := range texts {
		v := strings.TrimSpace(t.value)
		if v == "" {
			return fmt.Errorf("%w: %s is required", domain.ErrInvalidJob, t.field)
		}
		if len([]rune(v)) > maxJobTextLength {
			return fmt.Errorf("%w: %s exceeds %d characters", domain.ErrInvalidJob, t.field, maxJobTextLength)
		}
	}

	amounts := []struct {
		field    string
		value    decimal.Decimal
		positive bool
	}{
		{"m2_area", in.M2Area, true},
		{"hours_worked", in.HoursWorked, true},
		{"design_fee", in.DesignFee, false},
	}
	for _, a := range amounts {
		if a.positive && !a.value.IsPositive() {
			return fmt.Errorf("%w: %s must be greater than zero", domain.ErrInvalidJob, a.field)
		}
		if a.value.IsNegative() {
			return fmt.Errorf("%w: %s must not be negative", domain.ErrInvalidJob, a.field)
		}
		if !domain.FitsColumn(a.value) {
			return fmt.Errorf("%w: %s must have at most 8 integer and 2 decimal digits", domain.ErrInvalidJob, a.field)
		}
	}

	if in.CreatedBy == "" {
		return fmt.Errorf("%w: missing submitter", domain.ErrInvalidJob)
	}
	return nil
}

func toJobResult(j *domain.Job) ports.JobResult {
	return ports.JobResult{
		ID:          j.ID,
		JobNumber:   j.JobNumber,
		ClientName:  j.ClientName,
		JobRef:      j.JobRef,
		M2Area:      j.M2Area,
		HoursWorked: j.HoursWorked,
		DesignFee:   j.DesignFee,
		CreatedBy:   j.CreatedBy,
		CreatedAt:   j.CreatedAt,
		UpdatedAt:   j.UpdatedAt,
	}
}
