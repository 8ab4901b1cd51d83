package handlers

import (
	"net/http"

	"github.com/Codekiller51/brandconnect-server/services/admin"
	"github.com/Codekiller51/brandconnect-server/services/review"
	"github.com/Codekiller51/brandconnect-server/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes moderation and dashboard endpoints.
type AdminHandler struct {
	svc     admin.AdminService
	reviews review.ReviewService
}

func NewAdminHandler(svc admin.AdminService, reviews review.ReviewService) *AdminHandler {
	return &AdminHandler{svc: svc, reviews: reviews}
}

// PendingCreatives is the approval queue.
func (h *AdminHandler) PendingCreatives(c *gin.Context) {
	page, pageSize := pageParams(c)
	creatives, err := h.svc.PendingCreatives(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Could not list pending creatives", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"creatives": creatives})
}

// SetCreativeStatus approves or rejects a profile.
func (h *AdminHandler) SetCreativeStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid status payload", err.Error())
		return
	}
	if err := h.svc.SetCreativeStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Could not update status", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "status updated"})
}

func (h *AdminHandler) SetUserSuspended(c *gin.Context) {
	var req struct {
		Suspended *bool `json:"suspended" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payload", err.Error())
		return
	}
	if err := h.svc.SetUserSuspended(c.Request.Context(), c.Param("id"), *req.Suspended); err != nil {
		utils.JSONError(c, http.StatusNotFound, "Could not update user", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user updated"})
}

func (h *AdminHandler) SetCreativeSuspended(c *gin.Context) {
	var req struct {
		Suspended *bool `json:"suspended" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payload", err.Error())
		return
	}
	if err := h.svc.SetCreativeSuspended(c.Request.Context(), c.Param("id"), *req.Suspended); err != nil {
		utils.JSONError(c, http.StatusNotFound, "Could not update creative", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "creative updated"})
}

// SetReviewHidden moderates a review in or out of public listings.
func (h *AdminHandler) SetReviewHidden(c *gin.Context) {
	var req struct {
		Hidden *bool `json:"hidden" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payload", err.Error())
		return
	}
	if err := h.reviews.SetHidden(c.Request.Context(), c.Param("id"), *req.Hidden); err != nil {
		utils.JSONError(c, http.StatusNotFound, "Could not update review", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "review updated"})
}

// Stats is the dashboard summary.
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Could not compute stats", err.Error())
		return
	}
	c.JSON(http.StatusOK, stats)
}
