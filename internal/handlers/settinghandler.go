package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/marslan-elation/Jobs-Handler/internal/dtos"
	"github.com/marslan-elation/Jobs-Handler/internal/services"
)

type SettingHandler struct {
	SettingService *services.SettingService
}

func NewSettingHandler(settings *services.SettingService) *SettingHandler {
	return &SettingHandler{
		SettingService: settings,
	}
}

// GetSetting is GET /api/settings/job-application — the singleton, or {}
// when nothing was ever saved.
func (h *SettingHandler) GetSetting(c *gin.Context) {
	setting, err := h.SettingService.Get()
	if err != nil {
		respondError(c, err)
		return
	}
	if setting == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, setting)
}

// UpsertSetting is POST /api/settings/job-application.
func (h *SettingHandler) UpsertSetting(c *gin.Context) {
	var req dtos.SettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid JSON format: " + err.Error()})
		return
	}
	setting, err := h.SettingService.Upsert(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, setting)
}
