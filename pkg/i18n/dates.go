package i18n

import (
	"strconv"
	"time"
)

// DayKey returns the calendar day of t in t's location, used to bucket activity by date.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatTime renders the time of day of an activity record.
func FormatTime(t time.Time) string {
	return t.Format("15:04")
}

// FormatGroupDate renders a date separator label: "Today", "Yesterday", "2 January" within the
// current year of now and "2 January 2023" otherwise. now must be in the same location as t.
func FormatGroupDate(lang string, t, now time.Time) string {
	now = now.In(t.Location())
	switch DayKey(t) {
	case DayKey(now):
		return T(lang, C{MessageID: "date.today"})
	case DayKey(now.AddDate(0, 0, -1)):
		return T(lang, C{MessageID: "date.yesterday"})
	}
	return formatDate(lang, t, now)
}

// FormatDetailsTime renders the date and time shown on a transaction details screen.
func FormatDetailsTime(lang string, t, now time.Time) string {
	return formatDate(lang, t, now.In(t.Location())) + ", " + FormatTime(t)
}

func formatDate(lang string, t, now time.Time) string {
	data := Template{
		"Day":   t.Day(),
		"Month": T(lang, C{MessageID: "month." + strconv.Itoa(int(t.Month()))}),
	}
	if t.Year() == now.Year() {
		return T(lang, C{MessageID: "date.day_month", TemplateData: data})
	}
	data["Year"] = t.Year()
	return T(lang, C{MessageID: "date.day_month_year", TemplateData: data})
}
