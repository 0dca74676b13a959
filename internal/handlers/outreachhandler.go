package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/marslan-elation/Jobs-Handler/internal/dtos"
	"github.com/marslan-elation/Jobs-Handler/internal/services"
)

type OutreachHandler struct {
	OutreachService *services.OutreachService
}

func NewOutreachHandler(outreach *services.OutreachService) *OutreachHandler {
	return &OutreachHandler{
		OutreachService: outreach,
	}
}

func (h *OutreachHandler) ListOutreach(c *gin.Context) {
	list, err := h.OutreachService.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *OutreachHandler) CreateOutreach(c *gin.Context) {
	var req dtos.OutreachCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON format: " + err.Error()})
		return
	}
	outreach, err := h.OutreachService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, outreach)
}

func (h *OutreachHandler) GetOutreach(c *gin.Context) {
	outreach, err := h.OutreachService.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, outreach)
}

// PatchOutreach is PATCH /api/outreach/:id — a full shallow merge, so the
// raw body goes to the service untouched rather than through a DTO.
func (h *OutreachHandler) PatchOutreach(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Could not read request body"})
		return
	}
	outreach, err := h.OutreachService.UpdateMerge(c.Param("id"), body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, outreach)
}

func (h *OutreachHandler) ToggleOutreach(c *gin.Context) {
	outreach, err := h.OutreachService.ToggleActive(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, outreach)
}

// DeleteOutreach is DELETE /api/outreach/:id — 404 for unknown ids, unlike
// job deletion.
func (h *OutreachHandler) DeleteOutreach(c *gin.Context) {
	if err := h.OutreachService.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted successfully"})
}
