package handler

import (
	"time"

	"github.com/shopspring/decimal"
)

// Decimal fields accept JSON numbers or strings and are never decoded
// through float64.
type createJobRequest struct {
	JobNumber   string           `json:"job_number"   validate:"required,max=100"`
	ClientName  string           `json:"client_name"  validate:"required,max=100"`
	JobRef      string           `json:"job_ref"      validate:"required,max=100"`
	M2Area      *decimal.Decimal `json:"m2_area"      validate:"required,dec_gt0,dec_column"`
	HoursWorked *decimal.Decimal `json:"hours_worked" validate:"required,dec_gt0,dec_column"`
	DesignFee   *decimal.Decimal `json:"design_fee"   validate:"required,dec_gte0,dec_column"`
}

type listJobsQuery struct {
	Page  int `query:"page"  validate:"omitempty,min=1,max=1000000"`
	Limit int `query:"limit" validate:"omitempty,min=1"`
}

type jobResponse struct {
	ID          string    `json:"id"`
	JobNumber   string    `json:"job_number"`
	ClientName  string    `json:"client_name"`
	JobRef      string    `json:"job_ref"`
	M2Area      string    `json:"m2_area"`
	HoursWorked string    `json:"hours_worked"`
	DesignFee   string    `json:"design_fee"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listJobsResponse struct {
	Data       []jobResponse      `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

type pingResponse struct {
	Message string `json:"message"`
}
