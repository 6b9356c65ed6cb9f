package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Weekdays maps the seven fixed weekday keys to display names.
var Weekdays = map[string]string{
	"mon": "Monday",
	"tue": "Tuesday",
	"wed": "Wednesday",
	"thu": "Thursday",
	"fri": "Friday",
	"sat": "Saturday",
	"sun": "Sunday",
}

// WeekdayKeys lists the weekday keys in calendar order.
var WeekdayKeys = []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

// FreeTimeBuckets are the fixed choices for how much time a client
// is ready to spend per week.
var FreeTimeBuckets = []string{
	"1-2 hours per week",
	"3-5 hours per week",
	"5-7 hours per week",
	"7-10 hours per week",
}

// IsWeekday reports whether key is one of the seven weekday keys.
func IsWeekday(key string) bool {
	_, ok := Weekdays[key]
	return ok
}

// IsFreeTimeBucket reports whether label is one of the fixed buckets.
func IsFreeTimeBucket(label string) bool {
	for _, b := range FreeTimeBuckets {
		if b == label {
			return true
		}
	}
	return false
}

// Weekly is a teacher's availability: weekday key -> open "HH:00" slots.
type Weekly map[string][]string

// Encode serializes the availability into the stored column form.
func (w Weekly) Encode() (string, error) {
	b, err := json.Marshal(w)
	if err != nil {
		return "", fmt.Errorf("encode weekly free time: %w", err)
	}
	return string(b), nil
}

// DecodeWeekly parses the stored column form back into a Weekly map.
func DecodeWeekly(s string) (Weekly, error) {
	var w Weekly
	if err := json.Unmarshal([]byte(s), &w); err != nil {
		return nil, fmt.Errorf("decode weekly free time: %w", err)
	}
	return w, nil
}

// ParseTimeToken turns a URL time token into its hour label.
// Tokens come in as "HHMM" with a zero minute ("1400", "900") or as
// an already-expanded "HH:00"; either way the result is the hour
// portion ("14", "9").
func ParseTimeToken(token string) (string, error) {
	hour := token
	if i := strings.IndexByte(token, ':'); i >= 0 {
		if token[i+1:] != "00" {
			return "", fmt.Errorf("time token %q: minutes must be 00", token)
		}
		hour = token[:i]
	} else {
		if len(token) < 3 || !strings.HasSuffix(token, "00") {
			return "", fmt.Errorf("invalid time token %q", token)
		}
		hour = token[:len(token)-2]
	}

	if len(hour) < 1 || len(hour) > 2 {
		return "", fmt.Errorf("invalid time token %q", token)
	}
	for i := 0; i < len(hour); i++ {
		if hour[i] < '0' || hour[i] > '9' {
			return "", fmt.Errorf("invalid time token %q", token)
		}
	}
	return hour, nil
}
