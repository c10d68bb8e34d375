package handlers

import (
	"net/http"

	"creatorcrewz/internal/services"

	"github.com/gin-gonic/gin"
)

// JobHandler exposes the public, read-only side of the marketplace.
type JobHandler struct {
	*BaseHandler
	jobService    services.JobService
	reviewService services.ReviewService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService, reviewService services.ReviewService) *JobHandler {
	return &JobHandler{
		BaseHandler:   base,
		jobService:    jobService,
		reviewService: reviewService,
	}
}

func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	jobs := rg.Group("/jobs")
	{
		jobs.GET("", h.ListOpenJobs)
		jobs.GET("/:id", h.GetJob)
	}
	rg.GET("/users/:id/rating", h.GetUserRating)
}

func (h *JobHandler) ListOpenJobs(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	resp, err := h.jobService.ListOpenJobs(h.GetDB(c), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.jobService.GetJob(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) GetUserRating(c *gin.Context) {
	userID := c.Param("id")
	avg, total, err := h.reviewService.GetUserRating(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user_id":       userID,
		"average":       avg,
		"total_reviews": total,
	})
}
