package spam

import (
	rules "github.com/tonkeeper/scam_backoffice_rules"
	"github.com/tonkeeper/tongo"
	"github.com/tonkeeper/tongo/ton"

	"github.com/tonkeeper/wallet-activity/pkg/addressbook"
	"github.com/tonkeeper/wallet-activity/pkg/core"
)

type addressBook interface {
	GetAddressInfoByAddress(a tongo.AccountID) (addressbook.KnownAddress, bool)
}

type Filter struct {
	Rules       rules.Rules
	addressBook addressBook
}

type Option func(f *Filter)

// WithAddressBook makes transfers from accounts the book marks as scam spam.
func WithAddressBook(book addressBook) Option {
	return func(f *Filter) {
		f.addressBook = book
	}
}

func NewSpamFilter(opts ...Option) *Filter {
	f := &Filter{
		Rules: rules.GetDefaultRules(),
	}
	for _, o := range opts {
		o(f)
	}
	return f
}

// CheckActions reports whether the actions look like spam for the viewer.
// Only transfers received by the viewer are checked, all of them if the viewer is nil.
func (f Filter) CheckActions(actions []core.Action, viewer *ton.AccountID) bool {
	for _, action := range actions {
		if viewer != nil && !isRecipient(action, *viewer) {
			continue
		}
		if f.isScamSender(action.Sender()) {
			return true
		}
		comment, ok := actionComment(action)
		if !ok {
			continue
		}
		for _, rule := range f.Rules {
			rate := rule.Evaluate(comment)
			if rate == rules.Drop || rate == rules.MarkScam {
				return true
			}
		}
	}
	return false
}

func (f Filter) isScamSender(sender *core.AccountAddress) bool {
	if sender == nil {
		return false
	}
	if sender.IsScam {
		return true
	}
	if f.addressBook == nil {
		return false
	}
	account, err := tongo.ParseAddress(sender.Address)
	if err != nil {
		return false
	}
	known, ok := f.addressBook.GetAddressInfoByAddress(account.ID)
	return ok && known.IsScam
}

func isRecipient(action core.Action, viewer ton.AccountID) bool {
	recipient := action.Recipient()
	if recipient == nil {
		return false
	}
	account, err := tongo.ParseAddress(recipient.Address)
	if err != nil {
		return false
	}
	return account.ID == viewer
}

func actionComment(action core.Action) (string, bool) {
	var comment *string
	switch {
	case action.Type == core.TonTransfer && action.TonTransfer != nil:
		comment = action.TonTransfer.Comment
	case action.Type == core.JettonTransfer && action.JettonTransfer != nil:
		comment = action.JettonTransfer.Comment
	case action.Type == core.NftItemTransfer && action.NftItemTransfer != nil:
		comment = action.NftItemTransfer.Comment
	}
	if comment == nil {
		return "", false
	}
	return *comment, true
}
