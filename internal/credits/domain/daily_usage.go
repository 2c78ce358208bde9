package domain

import "time"

// UsageDateLayout is the canonical YYYY-MM-DD form of a usage day.
const UsageDateLayout = "2006-01-02"

// DailyUsage aggregates credits consumed by one user on one UTC calendar
// day. Unique per (UserID, UsageDate).
type DailyUsage struct {
	ID              string
	UserID          string
	UsageDate       string // UsageDateLayout
	CreditsConsumed int64
}

// UsageDate returns the UTC calendar day for t in canonical form.
func UsageDate(t time.Time) string {
	return t.UTC().Format(UsageDateLayout)
}
