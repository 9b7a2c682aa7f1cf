package activity

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tonkeeper/tongo/ton"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/tonkeeper/wallet-activity/pkg/core"
)

type mockSpamFilter struct {
	spam bool
}

func (m mockSpamFilter) CheckActions(actions []core.Action, viewer *ton.AccountID) bool {
	return m.spam
}

func TestMapper_MapEvent(t *testing.T) {
	tests := []struct {
		name    string
		actions []core.Action
	}{
		{
			name:    "no actions",
			actions: nil,
		},
		{
			name:    "single action",
			actions: []core.Action{tonTransfer(alice(), wallet(), 1)},
		},
		{
			name: "two actions",
			actions: []core.Action{
				tonTransfer(wallet(), alice(), 1),
				jettonTransfer(alice(), wallet(), "1"),
			},
		},
		{
			name: "malformed action in the middle",
			actions: []core.Action{
				tonTransfer(wallet(), alice(), 1),
				{Type: core.JettonTransfer, SimplePreview: preview("Broken")},
				nftTransfer(alice(), wallet()),
				{Type: core.Unknown},
			},
		},
	}
	m := NewMapper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.MapEvent(event("e1", 1710496800, tt.actions...), walletRaw)
			require.Len(t, got, len(tt.actions))
			for i, action := range got {
				require.Equal(t, i == 0, action.TopCorner)
				require.Equal(t, i == len(got)-1, action.BottomCorner)
				require.Equal(t, actionID("e1", i), action.ID)
				require.Equal(t, int64(1710496800), action.Timestamp)
			}
		})
	}
}

func TestMapper_MapEvent_DegradedActionDoesNotAffectSiblings(t *testing.T) {
	observed, logs := observer.New(zap.WarnLevel)
	m := NewMapper(WithLogger(zap.New(observed)))

	got := m.MapEvent(event("e1", 1710496800,
		tonTransfer(alice(), wallet(), 1_000_000_000),
		jettonTransferWithoutJetton(),
		nftTransfer(wallet(), alice()),
	), walletRaw)

	require.Len(t, got, 3)
	require.Equal(t, "+1 TON", got[0].Amount)
	require.Equal(t, "Received", got[0].Operation)
	require.Equal(t, SimplePreview, got[1].Type)
	require.Equal(t, FallbackAmount, got[1].Amount)
	require.Equal(t, "Jetton Transfer", got[1].Operation)
	require.Equal(t, "NFT", got[2].Amount)
	require.Equal(t, "Sent", got[2].Operation)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	require.Equal(t, "e1", entry.ContextMap()["event_id"])
	require.Equal(t, int64(1), entry.ContextMap()["failed_actions"])
}

func jettonTransferWithoutJetton() core.Action {
	action := jettonTransfer(alice(), wallet(), "1")
	action.JettonTransfer.Jetton = nil
	return action
}

func TestMapper_MapEvent_EventFields(t *testing.T) {
	e := event("e1", 1710496800, tonTransfer(alice(), wallet(), 1), tonTransfer(wallet(), alice(), 1))
	e.InProgress = true
	e.IsScam = true

	got := NewMapper().MapEvent(e, walletRaw)
	require.True(t, got[0].InProgress)
	require.True(t, got[1].InProgress)
	require.True(t, got[0].IsScam)
	require.Equal(t, "Spam", got[0].Operation)
	require.False(t, got[1].IsScam)
	require.Equal(t, "Sent", got[1].Operation)
}

func TestMapper_MapEvent_SpamFilter(t *testing.T) {
	e := event("e1", 1710496800, tonTransfer(alice(), wallet(), 1))

	got := NewMapper(WithSpamFilter(mockSpamFilter{spam: true})).MapEvent(e, walletRaw)
	require.True(t, got[0].IsScam)
	require.Equal(t, "Spam", got[0].Operation)

	got = NewMapper(WithSpamFilter(mockSpamFilter{spam: false})).MapEvent(e, walletRaw)
	require.False(t, got[0].IsScam)
	require.Equal(t, "Received", got[0].Operation)
}

func TestMapper_MapEvents(t *testing.T) {
	today1 := event("today-1", 1710496800, tonTransfer(alice(), wallet(), 1), tonTransfer(wallet(), alice(), 2))
	yesterday := event("yesterday", 1710410400, nftTransfer(alice(), wallet()))
	today2 := event("today-2", 1710489600, jettonTransfer(wallet(), alice(), "1"))
	empty := event("empty", 1710475200)
	lastYear := event("last-year", 1678874400, tonTransfer(alice(), wallet(), 1))

	m := NewMapper(WithClock(testClock))
	tests := []struct {
		name   string
		events []core.AccountEvent
		want   []string
	}{
		{
			name: "nothing",
			want: []string{},
		},
		{
			name:   "same day",
			events: []core.AccountEvent{today1, today2},
			want:   []string{"date-Today", "today-1_0", "today-1_1", "today-2_0"},
		},
		{
			name:   "same day events are not adjacent",
			events: []core.AccountEvent{today1, yesterday, today2},
			want:   []string{"date-Today", "today-1_0", "today-1_1", "today-2_0", "date-Yesterday", "yesterday_0"},
		},
		{
			name:   "first seen order is kept",
			events: []core.AccountEvent{yesterday, today2, today1},
			want:   []string{"date-Yesterday", "yesterday_0", "date-Today", "today-2_0", "today-1_0", "today-1_1"},
		},
		{
			name:   "event without actions",
			events: []core.AccountEvent{empty, lastYear},
			want:   []string{"date-15 March 2023", "last-year_0"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := m.MapEvents(tt.events, walletRaw)
			ids := make([]string, 0, len(entries))
			for _, entry := range entries {
				ids = append(ids, entry.EntryID())
			}
			require.Equal(t, tt.want, ids)
		})
	}
}

func TestMapper_MapEvents_Separator(t *testing.T) {
	events := []core.AccountEvent{
		event("e1", 1710496800, tonTransfer(alice(), wallet(), 1)),
		event("e2", 1710489600, tonTransfer(alice(), wallet(), 1)),
	}
	entries := NewMapper(WithClock(testClock)).ForLang("ru-RU,ru;q=0.9").MapEvents(events, walletRaw)
	require.Len(t, entries, 3)
	require.Equal(t, DateSeparator{ContentType: ContentTypeDate, ID: "date-Сегодня", Date: "Сегодня"}, entries[0])
	action, ok := entries[1].(MappedAction)
	require.True(t, ok)
	require.Equal(t, "Получено", action.Operation)
}

func TestMapper_MapEvents_WarningsFollowEventOrder(t *testing.T) {
	observed, logs := observer.New(zap.WarnLevel)
	m := NewMapper(WithLogger(zap.New(observed)), WithClock(testClock))

	var events []core.AccountEvent
	var want []string
	for i := 0; i < 20; i++ {
		id := fmt.Sprintf("e%v", i)
		events = append(events, event(id, 1710496800-int64(i), jettonTransferWithoutJetton()))
		want = append(want, id)
	}
	m.MapEvents(events, walletRaw)

	var got []string
	for _, entry := range logs.All() {
		got = append(got, entry.ContextMap()["event_id"].(string))
	}
	require.Equal(t, want, got)
}

func TestMapper_MapEvents_Location(t *testing.T) {
	// 2024-03-14 22:30 UTC is already March 15 in Moscow.
	events := []core.AccountEvent{
		event("late", 1710455400, tonTransfer(alice(), wallet(), 1)),
		event("morning", 1710489600, tonTransfer(alice(), wallet(), 1)),
	}
	moscow := time.FixedZone("MSK", 3*60*60)

	entries := NewMapper(WithClock(testClock)).MapEvents(events, walletRaw)
	require.Len(t, entries, 4)

	entries = NewMapper(WithClock(testClock), WithLocation(moscow)).MapEvents(events, walletRaw)
	require.Len(t, entries, 3)
	require.Equal(t, "date-Today", entries[0].EntryID())
	require.Equal(t, "01:30", entries[1].(MappedAction).Time)
}

func TestMapper_ConcurrentUse(t *testing.T) {
	events := []core.AccountEvent{
		event("e1", 1710496800, tonTransfer(alice(), wallet(), 1), jettonTransfer(wallet(), alice(), "1")),
		event("e2", 1710410400, nftTransfer(alice(), wallet())),
	}
	m := NewMapper(WithClock(testClock))
	want := m.MapEvents(events, walletRaw)

	results := make([][]TimelineEntry, 8)
	var wg sync.WaitGroup
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = m.MapEvents(events, walletRaw)
		}(i)
	}
	wg.Wait()
	for _, got := range results {
		require.Equal(t, want, got)
	}
}
