package activity

import (
	"github.com/tonkeeper/tongo"

	"github.com/tonkeeper/wallet-activity/internal/g"
	"github.com/tonkeeper/wallet-activity/pkg/core"
)

const shortAddressSeparator = "···"

// IsReceive reports whether the wallet is the recipient of the action.
// Addresses are compared as accounts, so raw and user-friendly forms of the same account are equal.
func IsReceive(walletAddress string, action core.Action) bool {
	recipient := action.Recipient()
	if recipient == nil {
		return false
	}
	return EqualAddresses(walletAddress, recipient.Address)
}

// EqualAddresses reports whether both strings denote the same account.
// An address that cannot be parsed is not equal to anything.
func EqualAddresses(a, b string) bool {
	x, err := tongo.ParseAddress(a)
	if err != nil {
		return false
	}
	y, err := tongo.ParseAddress(b)
	if err != nil {
		return false
	}
	return x.ID == y.ID
}

// ResolveCounterparty picks the account the wallet interacted with in the action.
// For transfers it is the sender of an inbound action and the recipient of an outbound one,
// other variants have a fixed counterparty field.
func ResolveCounterparty(isReceive bool, action core.Action) CounterpartyAccount {
	var account *core.AccountAddress
	switch action.Type {
	case core.Subscription:
		if action.Subscribe != nil {
			account = &action.Subscribe.Beneficiary
		}
	case core.UnSubscription:
		if action.UnSubscribe != nil {
			account = &action.UnSubscribe.Beneficiary
		}
	case core.NftPurchase:
		if action.NftPurchase != nil {
			account = &action.NftPurchase.Seller
		}
	case core.SmartContractExec:
		if action.SmartContractExec != nil {
			account = &action.SmartContractExec.Contract
		}
	case core.JettonSwap:
		if action.JettonSwap != nil {
			account = &action.JettonSwap.UserWallet
		}
	case core.ContractDeploy:
		if action.ContractDeploy != nil {
			account = &core.AccountAddress{Address: action.ContractDeploy.Address}
		}
	default:
		sender, recipient := action.Sender(), action.Recipient()
		if isReceive {
			account = firstNotNil(sender, recipient)
		} else {
			account = firstNotNil(recipient, sender)
		}
	}
	if account == nil {
		return CounterpartyAccount{}
	}
	return newCounterpartyAccount(*account)
}

// DisplayName returns the name of the account or its short address if the name is unknown.
func (c CounterpartyAccount) DisplayName() string {
	if c.Name != nil && *c.Name != "" {
		return *c.Name
	}
	return c.Address.Short
}

func newCounterpartyAccount(account core.AccountAddress) CounterpartyAccount {
	return CounterpartyAccount{
		Address: NewAddressRef(account.Address, account.IsWallet),
		Name:    account.Name,
		Picture: account.Icon,
	}
}

// NewAddressRef converts an address to all its display forms.
// Wallets are shown in the non-bounceable form.
func NewAddressRef(address string, isWallet bool) AddressRef {
	if address == "" {
		return AddressRef{}
	}
	ref := AddressRef{Raw: address, Friendly: address}
	if a, err := tongo.ParseAddress(address); err == nil {
		ref.Raw = a.ID.ToRaw()
		ref.Friendly = a.ID.ToHuman(!isWallet, false)
	}
	ref.Short = ShortAddress(ref.Friendly)
	return ref
}

// ShortAddress keeps the first and the last four characters of an address.
func ShortAddress(address string) string {
	runes := []rune(address)
	if len(runes) <= 8 {
		return address
	}
	return string(runes[:4]) + shortAddressSeparator + string(runes[len(runes)-4:])
}

func firstNotNil(accounts ...*core.AccountAddress) *core.AccountAddress {
	for _, a := range accounts {
		if a != nil {
			return a
		}
	}
	return nil
}

// withKnownAddress fills the name and the picture of the counterparty from the address book
// when the indexer did not provide them.
func (m *Mapper) withKnownAddress(account CounterpartyAccount) CounterpartyAccount {
	if m.addressBook == nil || account.Address.Raw == "" {
		return account
	}
	if account.Name != nil && account.Picture != nil {
		return account
	}
	id, err := tongo.ParseAccountID(account.Address.Raw)
	if err != nil {
		return account
	}
	known, ok := m.addressBook.GetAddressInfoByAddress(id)
	if !ok {
		return account
	}
	if account.Name == nil && known.Name != "" {
		account.Name = g.Pointer(known.Name)
	}
	if account.Picture == nil && known.Image != "" {
		account.Picture = g.Pointer(known.Image)
	}
	return account
}
