package date

import (
	"testing"
	"time"

	"github.com/twiced-technology-gmbh/mdtodo/internal/clierr"
)

func TestParse(t *testing.T) {
	d, err := Parse("2026-02-13")
	if err != nil {
		t.Fatal(err)
	}
	if d.String() != "2026-02-13" {
		t.Errorf("String() = %q", d.String())
	}
	for _, bad := range []string{"2026-2-13", "13.02.2026", "2026-02-30", ""} {
		if _, err := Parse(bad); err == nil {
			t.Errorf("Parse(%q) succeeded", bad)
		}
	}
}

func TestClockTimezones(t *testing.T) {
	// 2026-02-13 23:30 UTC is already the 14th in Tokyo.
	instant := time.Date(2026, 2, 13, 23, 30, 0, 0, time.UTC)

	tests := []struct {
		tz   string
		want string
	}{
		{"UTC", "2026-02-13"},
		{"Asia/Tokyo", "2026-02-14"},
		{"America/Los_Angeles", "2026-02-13"},
	}
	for _, tt := range tests {
		t.Run(tt.tz, func(t *testing.T) {
			c, err := NewClock(tt.tz)
			if err != nil {
				t.Fatal(err)
			}
			c.SetNow(func() time.Time { return instant })
			if got := c.Today().String(); got != tt.want {
				t.Errorf("Today() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestClockLocal(t *testing.T) {
	for _, tz := range []string{"", "Local", "local"} {
		c, err := NewClock(tz)
		if err != nil {
			t.Fatalf("NewClock(%q): %v", tz, err)
		}
		if c.Location() != time.Local {
			t.Errorf("NewClock(%q) location = %v", tz, c.Location())
		}
	}
}

func TestClockInvalid(t *testing.T) {
	_, err := NewClock("Mars/Olympus_Mons")
	if clierr.CodeOf(err) != clierr.InvalidConfig {
		t.Fatalf("error = %v, want %s", err, clierr.InvalidConfig)
	}
	if err.Error() != "Invalid timezone: 'Mars/Olympus_Mons'" {
		t.Errorf("message = %q", err.Error())
	}
}
