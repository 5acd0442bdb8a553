package handler

import (
	"github.com/jobledger/records-api/internal/core/ports"
)

func toCreateJobInput(req createJobRequest, createdBy string) ports.CreateJobInput {
	return ports.CreateJobInput{
		JobNumber:   req.JobNumber,
		ClientName:  req.ClientName,
		JobRef:      req.JobRef,
		M2Area:      *req.M2Area,
		HoursWorked: *req.HoursWorked,
		DesignFee:   *req.DesignFee,
		CreatedBy:   createdBy,
	}
}

// Amounts are rendered with exactly two decimals, as stored.
func toJobResponse(r ports.JobResult) jobResponse {
	return jobResponse{
		ID:          r.ID,
		JobNumber:   r.JobNumber,
		ClientName:  r.ClientName,
		JobRef:      r.JobRef,
		M2Area:      r.M2Area.StringFixed(2),
		HoursWorked: r.HoursWorked.StringFixed(2),
		DesignFee:   r.DesignFee.StringFixed(2),
		CreatedBy:   r.CreatedBy,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func toListJobsResponse(r *ports.ListJobsResult) listJobsResponse {
	items := make([]jobResponse, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, toJobResponse(it))
	}
	return listJobsResponse{
		Data: items,
		Pagination: paginationResponse{
			Total:      r.Total,
			Page:       r.Page,
			Limit:      r.Limit,
			TotalPages: r.TotalPages,
		},
	}
}
