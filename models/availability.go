package models

import "time"

// DayWindow is one weekday's working window.
// Times are zero-padded 24-hour "HH:mm" strings.
type DayWindow struct {
	Start       string `bson:"start" json:"start"`
	End         string `bson:"end" json:"end"`
	IsAvailable bool   `bson:"isAvailable" json:"isAvailable"`
}

// AvailabilitySettings is a creative's recurring weekly schedule plus buffer time.
// Recurring is keyed by day-of-week index as a string: "0"=Sunday .. "6"=Saturday.
// Times are interpreted in the creative's Timezone.
type AvailabilitySettings struct {
	CreativeID    string               `bson:"creativeId" json:"creativeId"`
	Recurring     map[string]DayWindow `bson:"recurring" json:"recurring"`
	BufferMinutes int                  `bson:"bufferMinutes" json:"bufferMinutes"`
	Timezone      string               `bson:"timezone" json:"timezone"` // IANA name, e.g. "Africa/Dar_es_Salaam"
	UpdatedAt     time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// Slot is a candidate booking window on a given date. Slots are never
// persisted; they are recomputed from the schedule and existing bookings.
type Slot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// BookingWindow is the time range of an existing booking, as used by the
// conflict filter.
type BookingWindow struct {
	StartTime string `bson:"startTime" json:"startTime"`
	EndTime   string `bson:"endTime" json:"endTime"`
}
