package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobledger/records-api/internal/api/metrics"
	"github.com/jobledger/records-api/internal/core/ports"
)

// JobHandler handles HTTP requests for job records.
type JobHandler struct {
	service ports.JobService
}

func NewJobHandler(service ports.JobService) *JobHandler {
	return &JobHandler{service: service}
}

// Create handles POST /api/jobs.
//
// @Summary      Submit a job record
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createJobRequest  true  "Job details"
// @Success      201   {object}  jobResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	result, err := h.service.CreateJob(c.Request().Context(), toCreateJobInput(req, identity.Identifier))
	if err != nil {
		return err
	}

	metrics.JobsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toJobResponse(*result))
}

// List handles GET /api/jobs.
//
// @Summary      List job records
// @Description  Newest first. limit defaults to 100 and is capped at 100.
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number (1-based)"
// @Param        limit  query     int  false  "Page size"
// @Success      200    {object}  listJobsResponse
// @Failure      400    {object}  errorResponse
// @Failure      401    {object}  errorResponse
// @Failure      500    {object}  errorResponse
// @Router       /api/jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	if _, err := ctxIdentity(c); err != nil {
		return err
	}

	var q listJobsQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if err := c.Validate(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.service.ListJobs(c.Request().Context(), ports.ListJobsInput{
		Page:  q.Page,
		Limit: q.Limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListJobsResponse(result))
}

// Ping handles GET /api/ping.
//
// @Summary      Backend liveness message
// @Tags         health
// @Produce      json
// @Success      200  {object}  pingResponse
// @Router       /api/ping [get]
func Ping(c echo.Context) error {
	return c.JSON(http.StatusOK, pingResponse{Message: "Backend is alive!"})
}
