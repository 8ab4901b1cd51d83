package handlers

import (
	"net/http"

	"github.com/Codekiller51/brandconnect-server/models"
	"github.com/Codekiller51/brandconnect-server/services/creative"
	"github.com/Codekiller51/brandconnect-server/utils"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler manages a creative's weekly schedule.
type AvailabilityHandler struct {
	svc creative.CreativeService
}

func NewAvailabilityHandler(svc creative.CreativeService) *AvailabilityHandler {
	return &AvailabilityHandler{svc: svc}
}

// GetMine returns the authenticated creative's schedule, or an empty body if
// none has been saved.
func (h *AvailabilityHandler) GetMine(c *gin.Context) {
	accountID, _ := identity(c)
	settings, err := h.svc.GetAvailability(c.Request.Context(), accountID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Could not load availability", err.Error())
		return
	}
	if settings == nil {
		c.JSON(http.StatusOK, gin.H{"availability": nil})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// SetMine replaces the authenticated creative's schedule.
func (h *AvailabilityHandler) SetMine(c *gin.Context) {
	accountID, _ := identity(c)
	var settings models.AvailabilitySettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid availability payload", err.Error())
		return
	}

	saved, err := h.svc.SetAvailability(c.Request.Context(), accountID, settings)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Could not save availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, saved)
}
