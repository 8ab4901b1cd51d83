package handlers

import (
	"io"
	"net/http"

	"github.com/Codekiller51/brandconnect-server/events"
	"github.com/Codekiller51/brandconnect-server/models"
	"github.com/Codekiller51/brandconnect-server/services/booking"
	"github.com/Codekiller51/brandconnect-server/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SlotsHandler serves the public availability calendar: a snapshot endpoint
// and a live SSE stream that pushes recomputed slots whenever a booking for
// the watched day changes.
type SlotsHandler struct {
	svc booking.BookingService
}

func NewSlotsHandler(svc booking.BookingService) *SlotsHandler {
	return &SlotsHandler{svc: svc}
}

// Get returns the bookable slots for a creative on a date. serviceId is
// optional and sizes the slots to that service's duration.
func (h *SlotsHandler) Get(c *gin.Context) {
	creativeID := c.Param("id")
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing date query parameter", "")
		return
	}

	slots, err := h.svc.AvailableSlots(c.Request.Context(), creativeID, date, c.Query("serviceId"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Could not compute slots", err.Error())
		return
	}
	if slots == nil {
		slots = []models.Slot{}
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}

// Stream pushes the slot list over SSE. The first event is the current
// snapshot; further events follow whenever a booking changes the watched day.
func (h *SlotsHandler) Stream(c *gin.Context) {
	creativeID := c.Param("id")
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing date query parameter", "")
		return
	}
	serviceID := c.Query("serviceId")

	ctx := c.Request.Context()
	snapshot, err := h.svc.AvailableSlots(ctx, creativeID, date, serviceID)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Could not compute slots", err.Error())
		return
	}

	sub := events.Subscribe(ctx, creativeID)
	defer func() {
		if err := sub.Close(); err != nil {
			utils.GetLogger().Warn("slot stream: subscription close failed", zap.Error(err))
		}
	}()
	changes := sub.Changes(ctx)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.SSEvent("slots", gin.H{"date": date, "slots": orEmpty(snapshot)})
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case change, ok := <-changes:
			if !ok {
				return false
			}
			if change.Date != date {
				return true
			}
			slots, err := h.svc.AvailableSlots(ctx, creativeID, date, serviceID)
			if err != nil {
				utils.GetLogger().Warn("slot stream: recompute failed",
					zap.String("creativeID", creativeID), zap.Error(err))
				return true
			}
			c.SSEvent("slots", gin.H{"date": date, "slots": orEmpty(slots)})
			return true
		}
	})
}

func orEmpty(slots []models.Slot) []models.Slot {
	if slots == nil {
		return []models.Slot{}
	}
	return slots
}
