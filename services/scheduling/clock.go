package scheduling

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// parseClock converts a zero-padded 24-hour "HH:mm" string to minutes from
// midnight. "24:00" is accepted as end-of-day.
func parseClock(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: want HH:mm", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	if h < 0 || h > 24 || m < 0 || m > 59 || (h == 24 && m != 0) {
		return 0, fmt.Errorf("time %q out of range", s)
	}
	return h*60 + m, nil
}

// formatClock converts minutes from midnight back to "HH:mm".
func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// AddMinutes returns start plus the given number of minutes, still as
// "HH:mm". The result may not pass end-of-day.
func AddMinutes(start string, minutes int) (string, error) {
	s, err := parseClock(start)
	if err != nil {
		return "", err
	}
	end := s + minutes
	if end > 24*60 {
		return "", fmt.Errorf("%d minutes from %s passes midnight", minutes, start)
	}
	return formatClock(end), nil
}

// ValidDate reports whether date is a well-formed "YYYY-MM-DD" string.
func ValidDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("invalid date %q: want YYYY-MM-DD", date)
	}
	return nil
}

// dayOfWeek resolves a "YYYY-MM-DD" date to its day-of-week key,
// "0"=Sunday .. "6"=Saturday.
func dayOfWeek(date string) (string, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", date, err)
	}
	return strconv.Itoa(int(t.Weekday())), nil
}
