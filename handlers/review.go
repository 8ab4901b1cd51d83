package handlers

import (
	"errors"
	"net/http"

	"github.com/Codekiller51/brandconnect-server/models"
	"github.com/Codekiller51/brandconnect-server/services/review"
	"github.com/Codekiller51/brandconnect-server/utils"

	"github.com/gin-gonic/gin"
)

// ReviewHandler exposes rating endpoints.
type ReviewHandler struct {
	svc review.ReviewService
}

func NewReviewHandler(svc review.ReviewService) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

// Create records a review of a completed booking.
func (h *ReviewHandler) Create(c *gin.Context) {
	accountID, _ := identity(c)
	var req models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid review payload", err.Error())
		return
	}

	r, err := h.svc.Create(c.Request.Context(), accountID, req)
	if err != nil {
		switch {
		case errors.Is(err, review.ErrNotReviewable):
			utils.JSONError(c, http.StatusUnprocessableEntity, "Booking cannot be reviewed", "")
		case errors.Is(err, review.ErrAlreadyReviewed):
			utils.JSONError(c, http.StatusConflict, "Booking already reviewed", "")
		default:
			utils.JSONError(c, http.StatusBadRequest, "Review failed", err.Error())
		}
		return
	}
	c.JSON(http.StatusCreated, r)
}

// ListForCreative is the public review listing.
func (h *ReviewHandler) ListForCreative(c *gin.Context) {
	page, pageSize := pageParams(c)
	reviews, err := h.svc.ListForCreative(c.Request.Context(), c.Param("id"), page, pageSize)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Could not list reviews", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// Reply lets the reviewed creative answer publicly.
func (h *ReviewHandler) Reply(c *gin.Context) {
	accountID, _ := identity(c)
	var req struct {
		Reply string `json:"reply" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid reply payload", err.Error())
		return
	}

	r, err := h.svc.Reply(c.Request.Context(), accountID, c.Param("id"), req.Reply)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Could not reply to review", err.Error())
		return
	}
	c.JSON(http.StatusOK, r)
}
