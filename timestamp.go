package uuidcheck

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	isoLayout = "2006-01-02T15:04:05.000Z"
	utcLayout = "Mon, 02 Jan 2006 15:04:05 GMT"
)

// V7Date is the creation time embedded in a UUIDv7, in the three renderings
// callers commonly need.
type V7Date struct {
	// ISOString is ISO 8601 in UTC with millisecond precision, e.g.
	// 2024-06-02T12:43:04.064Z. Years past 9999 use the expanded
	// +YYYYYY form.
	ISOString string
	// UnixMillis is the raw 48-bit timestamp field.
	UnixMillis int64
	// UTCString is the RFC 1123 form in GMT, e.g. Sun, 02 Jun 2024 12:43:04 GMT.
	UTCString string
}

// Time returns the timestamp as a UTC time.Time
func (d V7Date) Time() time.Time {
	return time.UnixMilli(d.UnixMillis).UTC()
}

// DateFromUUIDv7 extracts the millisecond timestamp held in the first 48 bits
// of a UUIDv7. It reports false when in is not a well-formed UUID or is a
// UUID of any other version.
func DateFromUUIDv7(in Input) (V7Date, bool) {
	s := Normalize(in)
	c, ok := matchFormat(s)
	if !ok || c != '7' {
		return V7Date{}, false
	}

	digits := strings.ReplaceAll(s, "-", "")
	ms, err := strconv.ParseUint(digits[:12], 16, 48)
	if err != nil {
		return V7Date{}, false
	}
	return newV7Date(int64(ms)), true
}

func newV7Date(ms int64) V7Date {
	t := time.UnixMilli(ms).UTC()
	return V7Date{
		ISOString:  formatISO(t),
		UnixMillis: ms,
		UTCString:  t.Format(utcLayout),
	}
}

// formatISO writes years 0-9999 with four digits and later years in the
// six-digit expanded form with a leading sign.
func formatISO(t time.Time) string {
	if y := t.Year(); y > 9999 {
		return fmt.Sprintf("+%06d", y) + t.Format(isoLayout[4:])
	}
	return t.Format(isoLayout)
}

// Timestamp extracts the Unix timestamp (in milliseconds) from a UUIDv7.
// It returns 0 for any other version.
func (u UUID) Timestamp() int64 {
	if u.Version() != VersionTimeSorted {
		return 0
	}
	// Extract 48-bit timestamp from bytes 0-5
	timestamp := uint64(u[0])<<40 |
		uint64(u[1])<<32 |
		uint64(u[2])<<24 |
		uint64(u[3])<<16 |
		uint64(u[4])<<8 |
		uint64(u[5])
	return int64(timestamp)
}

// Time returns the timestamp of a UUIDv7 as a UTC time.Time, and the zero
// time for any other version.
func (u UUID) Time() time.Time {
	if u.Version() != VersionTimeSorted {
		return time.Time{}
	}
	return time.UnixMilli(u.Timestamp()).UTC()
}
