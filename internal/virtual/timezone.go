package virtual

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidTime = errors.New("time must be formatted as HH:MM")

// TimezoneOffsets are fixed UTC offsets in hours. Daylight saving is not
// modelled.
var TimezoneOffsets = map[string]int{
	"America/New_York":    -5,
	"America/Los_Angeles": -8,
	"Europe/London":       0,
	"Asia/Tokyo":          9,
	"Australia/Sydney":    11,
}

// ConvertTime shifts an HH:MM wall-clock time from one zone to another and
// renders it as "H:MM AM". Unknown zones count as UTC.
func ConvertTime(hhmm, from, to string) (string, error) {
	hours, minutes, err := parseClock(hhmm)
	if err != nil {
		return "", err
	}

	diff := TimezoneOffsets[to] - TimezoneOffsets[from]
	hours = ((hours+diff)%24 + 24) % 24

	period := "AM"
	if hours >= 12 {
		period = "PM"
	}

	display := hours
	switch {
	case hours == 0:
		display = 12
	case hours > 12:
		display = hours - 12
	}

	return fmt.Sprintf("%d:%02d %s", display, minutes, period), nil
}

// StartsAt resolves the plan's scheduled date and wall-clock time in
// Timezone1 to an instant.
func (p Plan) StartsAt() (time.Time, error) {
	hours, minutes, err := parseClock(p.ScheduledTime)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := p.ScheduledDate.UTC().Date()
	local := time.Date(y, m, d, hours, minutes, 0, 0, time.UTC)
	return local.Add(-time.Duration(TimezoneOffsets[p.Timezone1]) * time.Hour), nil
}

func parseClock(hhmm string) (int, int, error) {
	h, m, ok := strings.Cut(strings.TrimSpace(hhmm), ":")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTime, hhmm)
	}

	hours, err := strconv.Atoi(h)
	if err != nil || hours < 0 || hours > 23 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTime, hhmm)
	}
	// one or two digits, so "09:5" reads as 09:05
	minutes, err := strconv.Atoi(m)
	if err != nil || len(m) > 2 || strings.Trim(m, "0123456789") != "" || minutes > 59 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTime, hhmm)
	}
	return hours, minutes, nil
}
