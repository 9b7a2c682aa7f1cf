package activity

import (
	"time"

	"github.com/tonkeeper/tongo"
	"github.com/tonkeeper/tongo/ton"
	"go.uber.org/zap"

	"github.com/tonkeeper/wallet-activity/pkg/addressbook"
	"github.com/tonkeeper/wallet-activity/pkg/core"
	"github.com/tonkeeper/wallet-activity/pkg/i18n"
)

const defaultLang = "en"

// spamFilter decides whether an event should be shown as spam even if the indexer didn't mark it.
type spamFilter interface {
	CheckActions(actions []core.Action, viewer *ton.AccountID) bool
}

// addressBook provides names and images of well-known accounts.
type addressBook interface {
	GetAddressInfoByAddress(a tongo.AccountID) (addressbook.KnownAddress, bool)
}

// Mapper converts account events to the activity timeline.
// It holds only configuration and is safe for concurrent use.
type Mapper struct {
	logger      *zap.Logger
	lang        string
	location    *time.Location
	now         func() time.Time
	spamFilter  spamFilter
	addressBook addressBook
}

type Option func(m *Mapper)

func WithLogger(logger *zap.Logger) Option {
	return func(m *Mapper) {
		m.logger = logger
	}
}

// WithLang sets the language of labels, an Accept-Language value is accepted as well.
func WithLang(lang string) Option {
	return func(m *Mapper) {
		m.lang = lang
	}
}

// WithLocation sets the time zone used to split the timeline into days.
func WithLocation(location *time.Location) Option {
	return func(m *Mapper) {
		m.location = location
	}
}

func WithClock(now func() time.Time) Option {
	return func(m *Mapper) {
		m.now = now
	}
}

func WithSpamFilter(filter spamFilter) Option {
	return func(m *Mapper) {
		m.spamFilter = filter
	}
}

func WithAddressBook(book addressBook) Option {
	return func(m *Mapper) {
		m.addressBook = book
	}
}

func NewMapper(opts ...Option) *Mapper {
	m := &Mapper{
		logger:   zap.NewNop(),
		lang:     defaultLang,
		location: time.UTC,
		now:      time.Now,
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// ForLang returns a copy of the mapper producing labels in the given language.
func (m *Mapper) ForLang(lang string) *Mapper {
	mapper := *m
	if lang != "" {
		mapper.lang = lang
	}
	return &mapper
}

func (m *Mapper) t(messageID string) string {
	return i18n.T(m.lang, i18n.C{MessageID: messageID})
}

func (m *Mapper) tWithData(messageID string, data i18n.Template) string {
	return i18n.T(m.lang, i18n.C{MessageID: messageID, TemplateData: data})
}

func (m *Mapper) localTime(timestamp int64) time.Time {
	return time.Unix(timestamp, 0).In(m.location)
}
