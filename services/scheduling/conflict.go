package scheduling

import (
	"github.com/Codekiller51/brandconnect-server/models"
)

// overlaps reports whether the half-open ranges [aStart,aEnd) and
// [bStart,bEnd) intersect. Back-to-back ranges do not overlap.
func overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

// FilterConflicts drops candidate slots that overlap any busy window and
// returns the survivors in their original chronological order. Busy windows
// that fail to parse are skipped rather than treated as blocking.
func FilterConflicts(slots []models.Slot, busy []models.BookingWindow) []models.Slot {
	if len(busy) == 0 {
		return slots
	}

	type window struct{ start, end int }
	parsed := make([]window, 0, len(busy))
	for _, b := range busy {
		s, err := parseClock(b.StartTime)
		if err != nil {
			continue
		}
		e, err := parseClock(b.EndTime)
		if err != nil {
			continue
		}
		parsed = append(parsed, window{s, e})
	}

	free := make([]models.Slot, 0, len(slots))
	for _, slot := range slots {
		s, err := parseClock(slot.Start)
		if err != nil {
			continue
		}
		e, err := parseClock(slot.End)
		if err != nil {
			continue
		}
		conflicted := false
		for _, w := range parsed {
			if overlaps(s, e, w.start, w.end) {
				conflicted = true
				break
			}
		}
		if !conflicted {
			free = append(free, slot)
		}
	}
	return free
}
