package stats

import "time"

const dateLayout = "2006-01-02"

// Daily holds the counters for a single calendar day. Field names match
// the on-disk JSON document.
type Daily struct {
	Date         string `json:"date"`
	Count        int    `json:"count"`
	ShortBreaks  int    `json:"short_breaks"`
	LongBreaks   int    `json:"long_breaks"`
	FocusSeconds int    `json:"focus_seconds"`
	BreakSeconds int    `json:"break_seconds"`
}

// Zero returns empty counters dated to the local calendar day of now.
func Zero(now time.Time) Daily {
	return Daily{Date: now.Format(dateLayout)}
}

// Rollover resets the counters when the stored date no longer matches
// the calendar day of now. It reports whether a reset happened.
func (d *Daily) Rollover(now time.Time) bool {
	today := now.Format(dateLayout)
	if d.Date == today {
		return false
	}
	*d = Daily{Date: today}
	return true
}

// valid rejects documents that would break the non-negative invariant.
func (d Daily) valid() bool {
	if _, err := time.ParseInLocation(dateLayout, d.Date, time.Local); err != nil {
		return false
	}
	return d.Count >= 0 && d.ShortBreaks >= 0 && d.LongBreaks >= 0 &&
		d.FocusSeconds >= 0 && d.BreakSeconds >= 0
}
