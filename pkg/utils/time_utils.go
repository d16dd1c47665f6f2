package utils

import "time"

// Korea Standard Time (+09:00), the timezone itineraries are written in.
var kstLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Asia/Seoul"); err == nil {
		return loc
	}
	return time.FixedZone("KST", 9*3600)
}()

// ShareExpiry returns the absolute expiry for a share created now.
func ShareExpiry(ttlDays int) time.Time {
	return time.Now().Add(time.Duration(ttlDays) * 24 * time.Hour)
}

// FormatRFC3339KST renders a timestamp for API responses, empty for the
// zero time so callers can omit the field.
func FormatRFC3339KST(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(kstLoc).Format(time.RFC3339)
}
