package scheduling

import (
	"testing"

	"github.com/Codekiller51/brandconnect-server/models"
)

func TestFilterConflicts_PartialOverlapRemoved(t *testing.T) {
	slots := []models.Slot{
		{Start: "09:00", End: "10:00"},
		{Start: "10:00", End: "11:00"},
		{Start: "11:00", End: "12:00"},
	}
	busy := []models.BookingWindow{
		{StartTime: "10:30", EndTime: "11:30"},
	}

	free := FilterConflicts(slots, busy)
	if len(free) != 1 {
		t.Fatalf("expected 1 free slot, got %d: %v", len(free), free)
	}
	if free[0].Start != "09:00" {
		t.Errorf("expected the 09:00 slot to survive, got %v", free[0])
	}
}

func TestFilterConflicts_EmptyBusyListKeepsAll(t *testing.T) {
	slots := []models.Slot{
		{Start: "09:00", End: "10:00"},
		{Start: "10:30", End: "11:30"},
	}
	free := FilterConflicts(slots, nil)
	if len(free) != len(slots) {
		t.Fatalf("expected all %d slots retained, got %d", len(slots), len(free))
	}
}

func TestFilterConflicts_ContainedBookingRemovesSlot(t *testing.T) {
	slots := []models.Slot{{Start: "09:00", End: "10:00"}}
	busy := []models.BookingWindow{{StartTime: "09:15", EndTime: "09:45"}}
	if free := FilterConflicts(slots, busy); len(free) != 0 {
		t.Fatalf("expected slot containing a booking to be dropped, got %v", free)
	}
}

func TestFilterConflicts_BackToBackIsNotAConflict(t *testing.T) {
	slots := []models.Slot{{Start: "09:00", End: "10:00"}}
	busy := []models.BookingWindow{
		{StartTime: "08:00", EndTime: "09:00"},
		{StartTime: "10:00", EndTime: "11:00"},
	}
	if free := FilterConflicts(slots, busy); len(free) != 1 {
		t.Fatalf("adjacent bookings must not conflict, got %v", free)
	}
}

func TestFilterConflicts_OrderPreserved(t *testing.T) {
	slots := []models.Slot{
		{Start: "09:00", End: "10:00"},
		{Start: "10:00", End: "11:00"},
		{Start: "11:00", End: "12:00"},
		{Start: "12:00", End: "13:00"},
	}
	busy := []models.BookingWindow{{StartTime: "10:00", EndTime: "11:00"}}
	free := FilterConflicts(slots, busy)
	if len(free) != 3 {
		t.Fatalf("expected 3 free slots, got %d", len(free))
	}
	for i := 1; i < len(free); i++ {
		if free[i-1].Start >= free[i].Start {
			t.Errorf("slots out of order: %v before %v", free[i-1], free[i])
		}
	}
}

func TestFilterConflicts_MalformedBusyWindowSkipped(t *testing.T) {
	slots := []models.Slot{{Start: "09:00", End: "10:00"}}
	busy := []models.BookingWindow{{StartTime: "garbage", EndTime: "10:00"}}
	if free := FilterConflicts(slots, busy); len(free) != 1 {
		t.Fatalf("malformed busy window must not block slots, got %v", free)
	}
}
