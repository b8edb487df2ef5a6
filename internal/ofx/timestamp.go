// Package ofx renders ledger accounts and their transactions as an OFX
// (Open Financial Exchange) response tree suitable for import by external
// financial software.
package ofx

import (
	"fmt"
	"time"
)

// timestampLayout is the OFX date layout: 4-digit year, then zero-padded
// month, day, hour (24h), minute and second.
const timestampLayout = "20060102150405"

// FormatTimestamp renders the instant's wall-clock fields in its own
// location as YYYYMMDDHHMMSS.
func FormatTimestamp(t time.Time) string {
	return t.Format(timestampLayout)
}

// FormatTimestampWithOffset renders the instant followed by a bracketed
// zone suffix: [<sign><hours>:<abbrev>].
//
// The hour count comes from the zone's raw (standard, non-DST) UTC offset,
// truncated toward zero and taken mod 24. The sign is "+" only when the raw
// offset is strictly positive; zero and negative offsets render bare, a
// negative hour printing its own minus. Importers consuming these files
// depend on that exact rendering, so it must not be normalized to the
// ISO-8601 "+00:00" style.
func FormatTimestampWithOffset(t time.Time) string {
	abbrev, offset := rawZone(t)

	hours := offset / 3600 % 24
	sign := ""
	if offset > 0 {
		sign = "+"
	}

	return fmt.Sprintf("%s[%s%d:%s]", FormatTimestamp(t), sign, hours, abbrev)
}

// Now returns the current time formatted with the zone offset suffix.
func Now() string {
	return FormatTimestampWithOffset(time.Now())
}

// rawZone returns the short name and UTC offset in seconds of t's zone with
// any daylight-saving adjustment removed. DST only ever adds to the standard
// offset, so probing January and July of t's year and keeping the smaller
// offset yields the standard zone in either hemisphere.
func rawZone(t time.Time) (string, int) {
	loc := t.Location()

	janName, janOffset := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, loc).Zone()
	julName, julOffset := time.Date(t.Year(), time.July, 1, 0, 0, 0, 0, loc).Zone()

	if julOffset < janOffset {
		return julName, julOffset
	}
	return janName, janOffset
}
