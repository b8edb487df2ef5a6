package ofx

import (
	"regexp"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTimestamp(t *testing.T) {
	loc := time.FixedZone("PST", -8*3600)

	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{
			name: "zero-padded fields",
			in:   time.Date(2025, 3, 7, 9, 5, 2, 0, loc),
			want: "20250307090502",
		},
		{
			name: "end of year",
			in:   time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC),
			want: "20241231235959",
		},
		{
			name: "midnight",
			in:   time.Date(2025, 1, 1, 0, 0, 0, 0, loc),
			want: "20250101000000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatTimestamp(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, 14)
		})
	}
}

func TestFormatTimestampWithOffset(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{
			name: "zero offset renders without sign",
			in:   time.Date(2025, 1, 15, 23, 59, 59, 0, time.UTC),
			want: "20250115235959[0:UTC]",
		},
		{
			name: "positive offset gets explicit plus",
			in:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.FixedZone("PKT", 5*3600)),
			want: "20250601120000[+5:PKT]",
		},
		{
			name: "negative offset carries its own minus",
			in:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.FixedZone("PST", -8*3600)),
			want: "20250601120000[-8:PST]",
		},
		{
			name: "half-hour offset truncates toward zero",
			in:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.FixedZone("IST", 5*3600+1800)),
			want: "20250601120000[+5:IST]",
		},
		{
			name: "negative half-hour offset truncates toward zero",
			in:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.FixedZone("MART", -(9*3600 + 1800))),
			want: "20250601120000[-9:MART]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTimestampWithOffset(tt.in))
		})
	}
}

func TestFormatTimestampWithOffsetStripsDaylightSaving(t *testing.T) {
	tests := []struct {
		name string
		zone string
		in   func(loc *time.Location) time.Time
		want string
	}{
		{
			name: "northern hemisphere summer keeps standard offset",
			zone: "America/Los_Angeles",
			in: func(loc *time.Location) time.Time {
				// July is PDT (-7); the suffix must stay at the standard -8
				return time.Date(2025, 7, 15, 10, 0, 0, 0, loc)
			},
			want: "20250715100000[-8:PST]",
		},
		{
			name: "southern hemisphere summer keeps standard offset",
			zone: "Australia/Sydney",
			in: func(loc *time.Location) time.Time {
				// January is AEDT (+11); the suffix must stay at the standard +10
				return time.Date(2025, 1, 15, 10, 0, 0, 0, loc)
			},
			want: "20250115100000[+10:AEST]",
		},
		{
			name: "northern hemisphere winter already standard",
			zone: "America/Los_Angeles",
			in: func(loc *time.Location) time.Time {
				return time.Date(2025, 1, 15, 10, 0, 0, 0, loc)
			},
			want: "20250115100000[-8:PST]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := time.LoadLocation(tt.zone)
			require.NoError(t, err)

			assert.Equal(t, tt.want, FormatTimestampWithOffset(tt.in(loc)))
		})
	}
}

func TestNowMatchesWireShape(t *testing.T) {
	got := Now()

	// 14 digits, then [<sign><hours>:<abbrev>].
	pattern := regexp.MustCompile(`^\d{14}\[\+?-?\d{1,2}:[^\]]+\]$`)
	assert.Regexp(t, pattern, got)
}
