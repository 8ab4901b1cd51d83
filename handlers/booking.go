package handlers

import (
	"errors"
	"net/http"

	"github.com/Codekiller51/brandconnect-server/models"
	"github.com/Codekiller51/brandconnect-server/services/booking"
	"github.com/Codekiller51/brandconnect-server/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the booking lifecycle endpoints.
type BookingHandler struct {
	svc booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

// Create books a slot for the authenticated client. A lost race for the
// window returns 409.
func (h *BookingHandler) Create(c *gin.Context) {
	accountID, _ := identity(c)
	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking payload", err.Error())
		return
	}

	result, err := h.svc.Create(c.Request.Context(), accountID, req)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrSlotTaken):
			utils.JSONError(c, http.StatusConflict, "That time slot was just taken", "")
		case errors.Is(err, booking.ErrSlotNotAvailable):
			utils.JSONError(c, http.StatusConflict, "That time is not available", "")
		default:
			utils.JSONError(c, http.StatusBadRequest, "Booking failed", err.Error())
		}
		return
	}
	c.JSON(http.StatusCreated, result)
}

// UpdateStatus moves a booking one lifecycle step.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	accountID, role := identity(c)
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid status payload", err.Error())
		return
	}

	b, err := h.svc.UpdateStatus(c.Request.Context(), c.Param("id"), accountID, role, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrForbidden):
			utils.JSONError(c, http.StatusForbidden, "Not allowed", "")
		case errors.Is(err, booking.ErrInvalidTransition):
			utils.JSONError(c, http.StatusUnprocessableEntity, "Invalid status change", err.Error())
		default:
			utils.JSONError(c, http.StatusNotFound, "Update failed", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) GetByID(c *gin.Context) {
	accountID, role := identity(c)
	b, err := h.svc.GetByID(c.Request.Context(), c.Param("id"), accountID, role)
	if err != nil {
		if errors.Is(err, booking.ErrForbidden) {
			utils.JSONError(c, http.StatusForbidden, "Not allowed", "")
			return
		}
		utils.JSONError(c, http.StatusNotFound, "Booking not found", "")
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListMine returns the caller's bookings, either side of the marketplace.
func (h *BookingHandler) ListMine(c *gin.Context) {
	accountID, role := identity(c)
	page, pageSize := pageParams(c)

	var (
		bookings []models.Booking
		err      error
	)
	if role == utils.RoleCreative {
		bookings, err = h.svc.ListForCreative(c.Request.Context(), accountID, page, pageSize)
	} else {
		bookings, err = h.svc.ListForClient(c.Request.Context(), accountID, page, pageSize)
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Could not list bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
