package engine

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

var minuteUnits = map[string]bool{
	"min":     true,
	"mins":    true,
	"minute":  true,
	"minutes": true,
}

// ParseDuration converts a stored step duration into minutes. Accepted forms:
//
//	HH:MM:SS   -> H*60 + M + S/60
//	HH:MM      -> H*60 + M
//	N minutes  -> N
//
// Hours may have any number of digits; minutes and seconds are two digits
// below 60.
func ParseDuration(s string) (float64, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return 0, invalidDuration(s, "empty")
	}
	if strings.Contains(raw, ":") {
		return parseClock(s, raw)
	}
	return parseMinuteCount(s, raw)
}

func parseClock(orig, raw string) (float64, error) {
	parts := strings.Split(raw, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, invalidDuration(orig, "expected HH:MM or HH:MM:SS")
	}

	h, ok := digits(parts[0])
	if !ok {
		return 0, invalidDuration(orig, "hours must be a whole number")
	}
	m, ok := digits(parts[1])
	if !ok || len(parts[1]) != 2 || m > 59 {
		return 0, invalidDuration(orig, "minutes must be two digits 00-59")
	}
	total := float64(h*60 + m)

	if len(parts) == 3 {
		sec, ok := digits(parts[2])
		if !ok || len(parts[2]) != 2 || sec > 59 {
			return 0, invalidDuration(orig, "seconds must be two digits 00-59")
		}
		total += float64(sec) / 60
	}
	return total, nil
}

func parseMinuteCount(orig, raw string) (float64, error) {
	fields := strings.Fields(raw)
	if len(fields) != 2 || !minuteUnits[strings.ToLower(fields[1])] {
		return 0, invalidDuration(orig, `expected "<N> minutes"`)
	}
	n, ok := digits(fields[0])
	if !ok {
		return 0, invalidDuration(orig, "minute count must be a whole number")
	}
	return float64(n), nil
}

// digits parses an unsigned decimal integer. strconv.Atoi alone would accept
// a sign.
func digits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

func invalidDuration(s, why string) *Error {
	return stepError(InvalidDurationFormat, -1, "duration", "invalid duration %q: %s", s, why)
}

// FormatDuration renders minutes as HH:MM:SS, rounding to the nearest second.
// Negative values render as 00:00:00.
func FormatDuration(minutes float64) string {
	if minutes <= 0 || math.IsNaN(minutes) {
		return "00:00:00"
	}
	secs := int64(math.Round(minutes * 60))
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs%3600)/60, secs%60)
}
