package pipeline

import (
	"fmt"
	"time"

	"github.com/rotisserie/eris"
)

// Display format used by the sheet operators (Vietnamese day-first order).
const displayLayout = "02/01/2006 15:04:05"

// Pancake emits inserted_at as a naive timestamp in UTC.
const naiveLayout = "2006-01-02T15:04:05"

// vnLocation is the civil timezone everything is displayed and partitioned
// in. The IANA database entry should always resolve; the fixed-offset
// fallback covers minimal container images without tzdata.
var vnLocation = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	if err != nil {
		return time.FixedZone("ICT", 7*60*60)
	}
	return loc
}()

// ParseTimestamp parses the timestamp encodings seen across webhook
// deliveries: RFC 3339 with zone, or a naive timestamp taken as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, eris.New("empty timestamp")
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(naiveLayout, s, time.UTC); err == nil {
		return t, nil
	}
	return time.Time{}, eris.Errorf("unparseable timestamp %q", s)
}

// PartitionKey derives the monthly partition name, data_YYYYMM, from the
// comment's own timestamp in Ho Chi Minh civil time. Partitioning by the
// comment's timestamp rather than arrival time keeps a lead's activity
// history in one month even when a delivery arrives late.
func PartitionKey(t time.Time) string {
	local := t.In(vnLocation)
	return fmt.Sprintf("data_%04d%02d", local.Year(), int(local.Month()))
}

// FormatDisplay renders the timestamp in Ho Chi Minh civil time for the
// sheet's display column. A zero time renders as "".
func FormatDisplay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(vnLocation).Format(displayLayout)
}
