package activity

import (
	"github.com/tonkeeper/wallet-activity/pkg/core"
	"github.com/tonkeeper/wallet-activity/pkg/i18n"
)

// MapEvents converts events to a timeline split into calendar days.
// Days go in the order they are first seen in events and each one starts with a DateSeparator.
// Events are not sorted, the caller is expected to pass them in display order.
func (m *Mapper) MapEvents(events []core.AccountEvent, walletAddress string) []TimelineEntry {
	var days []string
	buckets := make(map[string][]MappedAction)
	total := 0
	for _, event := range events {
		actions := m.MapEvent(event, walletAddress)
		if len(actions) == 0 {
			continue
		}
		day := i18n.DayKey(m.localTime(event.Timestamp))
		if _, ok := buckets[day]; !ok {
			days = append(days, day)
		}
		buckets[day] = append(buckets[day], actions...)
		total += len(actions)
	}
	now := m.now()
	entries := make([]TimelineEntry, 0, total+len(days))
	for _, day := range days {
		actions := buckets[day]
		date := i18n.FormatGroupDate(m.lang, m.localTime(actions[0].Timestamp), now)
		entries = append(entries, DateSeparator{
			ContentType: ContentTypeDate,
			ID:          "date-" + date,
			Date:        date,
		})
		for _, action := range actions {
			entries = append(entries, action)
		}
	}
	return entries
}
