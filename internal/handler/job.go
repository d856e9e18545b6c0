package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/moraputalapraveen/hireme4u-backend/internal/repository"
	"github.com/moraputalapraveen/hireme4u-backend/pkg/model"
	"github.com/moraputalapraveen/hireme4u-backend/pkg/response"
)

// CreateJob creates one posting. Requires an admin token.
func (h *Handler) CreateJob(c *gin.Context) {
	var req model.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Sugar().Warnw("create job bad request", "err", err)
		response.BadRequest(c, err.Error())
		return
	}

	job := req.Job()
	if err := h.Jobs.Create(c.Request.Context(), job); err != nil {
		h.Logger.Sugar().Errorw("job create failed", "title", req.Title, "err", err)
		response.BadRequest(c, "could not create job")
		return
	}

	h.invalidateFacets(c.Request.Context())
	response.Created(c, gin.H{"job": job})
}

// ListJobs serves the filtered, sorted, paginated listing plus the facet
// metadata for the filter dropdowns. Malformed optional parameters degrade
// to defaults; they never fail the request.
func (h *Handler) ListJobs(c *gin.Context) {
	var q model.ListJobsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.Logger.Sugar().Debugw("ignoring malformed listing params", "err", err)
	}
	if q.SortBy == "" {
		q.SortBy = "postedDate"
	}
	if q.SortOrder == "" {
		q.SortOrder = "desc"
	}

	ctx := c.Request.Context()
	jobs, pagination, err := h.Jobs.List(ctx, &q)
	if err != nil {
		h.Logger.Sugar().Errorw("job listing failed", "err", err)
		response.InternalError(c, "")
		return
	}

	opts, err := h.filterOptions(ctx)
	if err != nil {
		h.Logger.Sugar().Errorw("facet query failed", "err", err)
		response.InternalError(c, "")
		return
	}

	response.OK(c, gin.H{
		"jobs":          jobs,
		"pagination":    pagination,
		"filterOptions": opts,
	})
}

// GetJobBySlug resolves a single posting.
func (h *Handler) GetJobBySlug(c *gin.Context) {
	job, err := h.Jobs.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			response.NotFound(c, "Job not found")
			return
		}
		h.Logger.Sugar().Errorw("job fetch failed", "slug", c.Param("slug"), "err", err)
		response.InternalError(c, "")
		return
	}
	response.OK(c, gin.H{"job": job})
}

// GetFilterOptions serves the standalone facet block, for the initial page
// load before any filter is applied.
func (h *Handler) GetFilterOptions(c *gin.Context) {
	opts, err := h.filterOptions(c.Request.Context())
	if err != nil {
		h.Logger.Sugar().Errorw("facet query failed", "err", err)
		response.InternalError(c, "")
		return
	}
	response.OK(c, gin.H{"filters": opts})
}
