package slot

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidClockTime = errors.New("invalid time of day, expected HH:MM")

// ClockTime is a requested time of day. It may carry minutes; only whole
// hours are ever stored.
type ClockTime struct {
	hour   int
	minute int
}

func NewClockTime(hour, minute int) (ClockTime, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return ClockTime{}, ErrInvalidClockTime
	}
	return ClockTime{hour: hour, minute: minute}, nil
}

// ParseClockTime accepts "HH:MM" and "HH:MM:SS"; seconds are dropped.
func ParseClockTime(s string) (ClockTime, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return ClockTime{hour: t.Hour(), minute: t.Minute()}, nil
		}
	}
	return ClockTime{}, ErrInvalidClockTime
}

func AtHour(h Hour) ClockTime {
	return ClockTime{hour: int(h)}
}

func (t ClockTime) Hour() int     { return t.hour }
func (t ClockTime) Minute() int   { return t.minute }
func (t ClockTime) Floor() Hour   { return Hour(t.hour) }
func (t ClockTime) IsWhole() bool { return t.minute == 0 }

func (t ClockTime) minutes() int {
	return t.hour*60 + t.minute
}

func (t ClockTime) Before(o ClockTime) bool { return t.minutes() < o.minutes() }
func (t ClockTime) After(o ClockTime) bool  { return t.minutes() > o.minutes() }

// WithinBounds reports whether t lies between the catalog's first and last
// start hour inclusive. 18:30 is outside, 10:45 is inside.
func (t ClockTime) WithinBounds(c Catalog) bool {
	return !t.Before(AtHour(c.First())) && !t.After(AtHour(c.Last()))
}

func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}
