// Package date provides calendar dates and the clock that decides what
// "today" is for completion stamps.
package date

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // IANA names work without system zoneinfo

	"github.com/twiced-technology-gmbh/mdtodo/internal/clierr"
)

const format = "2006-01-02"

// Date represents a calendar date without time or timezone.
type Date struct {
	time.Time
}

// New creates a Date from year, month, day.
func New(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Parse parses a YYYY-MM-DD string into a Date.
func Parse(s string) (Date, error) {
	t, err := time.Parse(format, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return Date{t}, nil
}

// String returns the date as YYYY-MM-DD.
func (d Date) String() string {
	return d.Format(format)
}

// LocalName selects the system timezone in configuration.
const LocalName = "Local"

// Clock reports the current date in a configured timezone.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

// NewClock returns a clock for tz, which is "Local" (or empty) for the
// system timezone or an IANA name such as "Asia/Tokyo". Unknown names are
// an error rather than a silent fallback.
func NewClock(tz string) (*Clock, error) {
	loc, err := LoadLocation(tz)
	if err != nil {
		return nil, err
	}
	return &Clock{loc: loc, now: time.Now}, nil
}

// LoadLocation resolves a configured timezone name.
func LoadLocation(tz string) (*time.Location, error) {
	tz = strings.TrimSpace(tz)
	if tz == "" || strings.EqualFold(tz, LocalName) {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, clierr.Newf(clierr.InvalidConfig, "Invalid timezone: '%s'", tz).
			WithDetails(map[string]any{"timezone": tz})
	}
	return loc, nil
}

// SetNow overrides the time source (for testing).
func (c *Clock) SetNow(fn func() time.Time) {
	c.now = fn
}

// Location returns the clock's timezone.
func (c *Clock) Location() *time.Location {
	return c.loc
}

// Today returns the current date in the clock's timezone.
func (c *Clock) Today() Date {
	now := c.now().In(c.loc)
	return New(now.Year(), now.Month(), now.Day())
}
