package scheduling

import (
	"testing"

	"github.com/Codekiller51/brandconnect-server/models"
)

func TestGenerateSlots_StandardDayWithBuffer(t *testing.T) {
	win := models.DayWindow{Start: "09:00", End: "17:00", IsAvailable: true}
	slots := GenerateSlots(win, 60, 30)

	want := []models.Slot{
		{Start: "09:00", End: "10:00"},
		{Start: "10:30", End: "11:30"},
		{Start: "12:00", End: "13:00"},
		{Start: "13:30", End: "14:30"},
		{Start: "15:00", End: "16:00"},
	}
	if len(slots) != len(want) {
		t.Fatalf("expected %d slots, got %d: %v", len(want), len(slots), slots)
	}
	for i := range want {
		if slots[i] != want[i] {
			t.Errorf("slot %d: expected %v, got %v", i, want[i], slots[i])
		}
	}
}

func TestGenerateSlots_UnavailableDay(t *testing.T) {
	win := models.DayWindow{Start: "09:00", End: "17:00", IsAvailable: false}
	if slots := GenerateSlots(win, 60, 0); len(slots) != 0 {
		t.Fatalf("expected no slots for an unavailable day, got %v", slots)
	}
}

func TestGenerateSlots_WindowShorterThanSlot(t *testing.T) {
	win := models.DayWindow{Start: "09:00", End: "09:30", IsAvailable: true}
	if slots := GenerateSlots(win, 60, 0); len(slots) != 0 {
		t.Fatalf("expected no slots when the window is shorter than a slot, got %v", slots)
	}
}

func TestGenerateSlots_ZeroBuffer(t *testing.T) {
	win := models.DayWindow{Start: "09:00", End: "12:00", IsAvailable: true}
	slots := GenerateSlots(win, 60, 0)
	want := []models.Slot{
		{Start: "09:00", End: "10:00"},
		{Start: "10:00", End: "11:00"},
		{Start: "11:00", End: "12:00"},
	}
	if len(slots) != len(want) {
		t.Fatalf("expected %d slots, got %d: %v", len(want), len(slots), slots)
	}
	for i := range want {
		if slots[i] != want[i] {
			t.Errorf("slot %d: expected %v, got %v", i, want[i], slots[i])
		}
	}
}

func TestGenerateSlots_InvertedWindow(t *testing.T) {
	win := models.DayWindow{Start: "17:00", End: "09:00", IsAvailable: true}
	if slots := GenerateSlots(win, 60, 0); len(slots) != 0 {
		t.Fatalf("expected no slots for an inverted window, got %v", slots)
	}
}

func TestGenerateSlots_ServiceDuration(t *testing.T) {
	win := models.DayWindow{Start: "09:00", End: "12:00", IsAvailable: true}
	slots := GenerateSlots(win, 90, 0)
	want := []models.Slot{
		{Start: "09:00", End: "10:30"},
		{Start: "10:30", End: "12:00"},
	}
	if len(slots) != len(want) {
		t.Fatalf("expected %d slots, got %d: %v", len(want), len(slots), slots)
	}
	for i := range want {
		if slots[i] != want[i] {
			t.Errorf("slot %d: expected %v, got %v", i, want[i], slots[i])
		}
	}
}

func TestGenerateSlots_Deterministic(t *testing.T) {
	win := models.DayWindow{Start: "08:30", End: "16:45", IsAvailable: true}
	first := GenerateSlots(win, 60, 15)
	second := GenerateSlots(win, 60, 15)
	if len(first) != len(second) {
		t.Fatalf("repeated calls disagree on length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("slot %d differs between calls: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestSlotsForDate_MissingDayKey(t *testing.T) {
	settings := models.AvailabilitySettings{
		CreativeID: "c1",
		Recurring: map[string]models.DayWindow{
			"1": {Start: "09:00", End: "17:00", IsAvailable: true},
		},
	}
	// 2026-03-01 is a Sunday; key "0" is absent.
	slots, err := SlotsForDate(settings, "2026-03-01", 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected no slots for a day missing from the schedule, got %v", slots)
	}
}

func TestSlotsForDate_WeekdayResolution(t *testing.T) {
	settings := models.AvailabilitySettings{
		CreativeID: "c1",
		Recurring: map[string]models.DayWindow{
			"1": {Start: "09:00", End: "11:00", IsAvailable: true},
		},
	}
	// 2026-03-02 is a Monday.
	slots, err := SlotsForDate(settings, "2026-03-02", 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots on Monday, got %d: %v", len(slots), slots)
	}
}

func TestSlotsForDate_BadDate(t *testing.T) {
	settings := models.AvailabilitySettings{Recurring: map[string]models.DayWindow{}}
	if _, err := SlotsForDate(settings, "02-03-2026", 60); err == nil {
		t.Fatal("expected an error for a malformed date")
	}
}
