package scheduling

import (
	"github.com/Codekiller51/brandconnect-server/models"
)

// DefaultSlotMinutes is the slot length used when no service duration applies.
const DefaultSlotMinutes = 60

// GenerateSlots produces the ordered candidate slots for one day's working
// window. The cursor starts at the window start and advances by slot length
// plus buffer after each emitted slot; a slot is emitted only when it fits
// entirely inside the window. Same inputs always yield the same output.
func GenerateSlots(win models.DayWindow, slotMinutes, bufferMinutes int) []models.Slot {
	if !win.IsAvailable {
		return nil
	}
	if slotMinutes <= 0 {
		slotMinutes = DefaultSlotMinutes
	}
	if bufferMinutes < 0 {
		bufferMinutes = 0
	}

	start, err := parseClock(win.Start)
	if err != nil {
		return nil
	}
	end, err := parseClock(win.End)
	if err != nil {
		return nil
	}
	if start >= end {
		return nil
	}

	var slots []models.Slot
	for cursor := start; cursor+slotMinutes <= end; cursor += slotMinutes + bufferMinutes {
		slots = append(slots, models.Slot{
			Start: formatClock(cursor),
			End:   formatClock(cursor + slotMinutes),
		})
	}
	return slots
}

// SlotsForDate resolves the weekday window for a calendar date and generates
// its candidate slots. A missing or unavailable day yields an empty result,
// not an error.
func SlotsForDate(settings models.AvailabilitySettings, date string, slotMinutes int) ([]models.Slot, error) {
	day, err := dayOfWeek(date)
	if err != nil {
		return nil, err
	}
	win, ok := settings.Recurring[day]
	if !ok {
		return nil, nil
	}
	return GenerateSlots(win, slotMinutes, settings.BufferMinutes), nil
}
