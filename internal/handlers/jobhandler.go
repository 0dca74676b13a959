package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/marslan-elation/Jobs-Handler/internal/currency"
	"github.com/marslan-elation/Jobs-Handler/internal/dtos"
	"github.com/marslan-elation/Jobs-Handler/internal/services"
)

// Dependency injection: the handler only talks to services.
type JobHandler struct {
	JobService     *services.JobService
	SettingService *services.SettingService
	Rates          *currency.RateClient
}

// NewJobHandler creates the handler with dependencies
func NewJobHandler(jobs *services.JobService, settings *services.SettingService, rates *currency.RateClient) *JobHandler {
	return &JobHandler{
		JobService:     jobs,
		SettingService: settings,
		Rates:          rates,
	}
}

// ListJobs is GET /api/jobs — every record, newest first.
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.JobService.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// CreateJob is POST /api/jobs.
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dtos.JobCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON format: " + err.Error()})
		return
	}
	job, err := h.JobService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

// GetJob is GET /api/jobs/:id.
func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.JobService.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// PatchJob is PATCH /api/jobs/:id — named-field partial update.
func (h *JobHandler) PatchJob(c *gin.Context) {
	var patch dtos.JobPatchRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON format: " + err.Error()})
		return
	}
	job, err := h.JobService.UpdatePartial(c.Param("id"), &patch)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// ToggleJob is PATCH /api/jobs/:id/toggle.
func (h *JobHandler) ToggleJob(c *gin.Context) {
	job, err := h.JobService.ToggleActive(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// DeleteJob is DELETE /api/jobs/:id. Succeeds even for unknown ids.
func (h *JobHandler) DeleteJob(c *gin.Context) {
	if err := h.JobService.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}

// JobSalary is GET /api/jobs/:id/salary — the computed display figures for
// the record's offered and expected salaries. Withheld figures (conversion
// off, or rate lookup failed) are simply absent from the response.
func (h *JobHandler) JobSalary(c *gin.Context) {
	job, err := h.JobService.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	setting, err := h.SettingService.Get()
	if err != nil {
		respondError(c, err)
		return
	}

	resp := gin.H{}
	if setting != nil {
		var rate *float64
		needsRate := setting.ConvertCurrency && setting.LocalCurrency != "" &&
			!strings.EqualFold(job.Currency, setting.LocalCurrency)
		if needsRate {
			if r, err := h.Rates.Rate(c.Request.Context(), job.Currency, setting.LocalCurrency); err == nil {
				rate = &r
			} else {
				// best effort: the converted figure is withheld, not zeroed
				log.Printf("exchange rate unavailable: %v", err)
			}
		}
		if d := currency.SalaryDisplay("Offered", job.SalaryOffered, job.IsSalaryPerAnnum,
			job.Currency, setting.LocalCurrency, setting.ConvertCurrency, rate); d != nil {
			resp["offered"] = d
		}
		if d := currency.SalaryDisplay("Expected", job.SalaryExpected, job.IsSalaryPerAnnum,
			job.Currency, setting.LocalCurrency, setting.ConvertCurrency, rate); d != nil {
			resp["expected"] = d
		}
	}
	c.JSON(http.StatusOK, resp)
}
