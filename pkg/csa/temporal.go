package csa

import (
	"strings"
	"time"
)

// Date-time and time-limit values reach us two ways: as structured grammar
// captures, or as free text when an attribute value did not match the
// structured form. Both paths converge on the same Time / TimeLimit shapes,
// so nothing downstream knows which syntactic path produced a value.

func parseDatetimeNode(n *node) *Time {
	var dateStr, timeStr string
	for _, inner := range n.children {
		switch inner.kind {
		case nodeDate:
			dateStr = inner.text
		case nodeTime:
			timeStr = inner.text
		}
	}
	if dateStr == "" {
		return nil
	}
	return parseDatetimeParts(dateStr, timeStr)
}

// parseDatetimeText parses a free-text "date[ time]" value.
func parseDatetimeText(s string) *Time {
	parts := strings.SplitN(s, " ", 2)
	if parts[0] == "" {
		return nil
	}
	timeStr := ""
	if len(parts) == 2 {
		timeStr = parts[1]
	}
	return parseDatetimeParts(parts[0], timeStr)
}

func parseDatetimeParts(dateStr, timeStr string) *Time {
	dp := strings.Split(dateStr, "/")
	if len(dp) != 3 {
		return nil
	}
	year, okY := atoiStrict(dp[0])
	month, okM := atoiStrict(dp[1])
	day, okD := atoiStrict(dp[2])
	if !okY || !okM || !okD || !validDate(year, month, day) {
		return nil
	}

	t := &Time{Year: year, Month: time.Month(month), Day: day}

	if timeStr != "" {
		tp := strings.Split(timeStr, ":")
		// A malformed clock drops the clock only; an out-of-range one
		// invalidates the whole value.
		if len(tp) == 3 {
			hour, okH := atoiStrict(tp[0])
			minute, okMin := atoiStrict(tp[1])
			second, okS := atoiStrict(tp[2])
			if !okH || !okMin || !okS || !validClock(hour, minute, second) {
				return nil
			}
			t.Hour, t.Minute, t.Second = hour, minute, second
			t.HasClock = true
		}
	}
	return t
}

func validDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return d.Year() == year && d.Month() == time.Month(month) && d.Day() == day
}

func validClock(hour, minute, second int) bool {
	return hour >= 0 && hour <= 23 &&
		minute >= 0 && minute <= 59 &&
		second >= 0 && second <= 59
}

func parseTimeLimitNode(n *node) *TimeLimit {
	var hours, minutes, byoyomi int
	for _, inner := range n.children {
		switch inner.kind {
		case nodeTimelimitHours:
			hours = atoiDefault(inner.text)
		case nodeTimelimitMinutes:
			minutes = atoiDefault(inner.text)
		case nodeTimelimitByoyomi:
			byoyomi = atoiDefault(inner.text)
		}
	}
	return newTimeLimit(hours, minutes, byoyomi)
}

// parseTimeLimitText parses a free-text "HH:MM+SS" value.
func parseTimeLimitText(s string) *TimeLimit {
	parts := strings.Split(s, "+")
	if len(parts) != 2 {
		return nil
	}
	tp := strings.Split(parts[0], ":")
	if len(tp) != 2 {
		return nil
	}
	hours, okH := atoiStrict(tp[0])
	minutes, okM := atoiStrict(tp[1])
	byoyomi, okB := atoiStrict(parts[1])
	if !okH || !okM || !okB {
		return nil
	}
	return newTimeLimit(hours, minutes, byoyomi)
}

func newTimeLimit(hours, minutes, byoyomi int) *TimeLimit {
	return &TimeLimit{
		MainTime: time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute,
		Byoyomi:  time.Duration(byoyomi) * time.Second,
	}
}

func atoiStrict(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	v := 0
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
		v = v*10 + int(s[i]-'0')
	}
	return v, true
}
