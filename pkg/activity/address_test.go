package activity

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tonkeeper/tongo"

	"github.com/tonkeeper/wallet-activity/internal/g"
	"github.com/tonkeeper/wallet-activity/pkg/addressbook"
	"github.com/tonkeeper/wallet-activity/pkg/core"
)

func TestEqualAddresses(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want bool
	}{
		{
			name: "same raw",
			a:    walletRaw,
			b:    walletRaw,
			want: true,
		},
		{
			name: "raw and non-bounceable",
			a:    walletRaw,
			b:    walletFriendly,
			want: true,
		},
		{
			name: "bounceable and non-bounceable",
			a:    "EQAs87W4yJHlF8mt29ocA4agnMrLsOP69jC1HPyBUjJay-7l",
			b:    walletFriendly,
			want: true,
		},
		{
			name: "different accounts",
			a:    walletRaw,
			b:    aliceRaw,
			want: false,
		},
		{
			name: "workchain matters",
			a:    walletRaw,
			b:    "-1:2cf3b5b8c891e517c9addbda1c0386a09ccacbb0e3faf630b51cfc8152325acb",
			want: false,
		},
		{
			name: "garbage",
			a:    "not an address",
			b:    "not an address",
			want: false,
		},
		{
			name: "empty",
			a:    "",
			b:    walletRaw,
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, EqualAddresses(tt.a, tt.b))
		})
	}
}

func TestIsReceive(t *testing.T) {
	tests := []struct {
		name   string
		action core.Action
		want   bool
	}{
		{
			name:   "ton transfer to wallet",
			action: tonTransfer(alice(), wallet(), 1),
			want:   true,
		},
		{
			name:   "ton transfer from wallet",
			action: tonTransfer(wallet(), alice(), 1),
			want:   false,
		},
		{
			name:   "jetton transfer to wallet",
			action: jettonTransfer(alice(), wallet(), "1"),
			want:   true,
		},
		{
			name:   "nft transfer from wallet",
			action: nftTransfer(wallet(), alice()),
			want:   false,
		},
		{
			name: "friendly recipient",
			action: tonTransfer(alice(), core.AccountAddress{
				Address:  walletFriendly,
				IsWallet: true,
			}, 1),
			want: true,
		},
		{
			name: "variant without recipient",
			action: core.Action{
				Type:              core.SmartContractExec,
				SmartContractExec: &core.SmartContractExecAction{Executor: wallet(), Contract: alice()},
			},
			want: false,
		},
		{
			name:   "missing payload",
			action: core.Action{Type: core.TonTransfer},
			want:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsReceive(walletRaw, tt.action))
		})
	}
}

func TestResolveCounterparty(t *testing.T) {
	named := core.AccountAddress{
		Address:  contractRaw,
		Name:     g.Pointer("Fragment"),
		Icon:     g.Pointer("https://cache.tonapi.io/fragment.png"),
		IsWallet: false,
	}
	tests := []struct {
		name      string
		isReceive bool
		action    core.Action
		want      CounterpartyAccount
	}{
		{
			name:      "inbound transfer",
			isReceive: true,
			action:    tonTransfer(alice(), wallet(), 1),
			want: CounterpartyAccount{
				Address: AddressRef{Raw: aliceRaw, Friendly: aliceFriendly, Short: "UQB3···Tnjo"},
			},
		},
		{
			name:      "outbound transfer",
			isReceive: false,
			action:    tonTransfer(wallet(), alice(), 1),
			want: CounterpartyAccount{
				Address: AddressRef{Raw: aliceRaw, Friendly: aliceFriendly, Short: "UQB3···Tnjo"},
			},
		},
		{
			name:      "outbound jetton transfer without recipient",
			isReceive: false,
			action: core.Action{
				Type:           core.JettonTransfer,
				JettonTransfer: &core.JettonTransferAction{Sender: g.Pointer(wallet())},
			},
			want: CounterpartyAccount{
				Address: AddressRef{Raw: walletRaw, Friendly: walletFriendly, Short: "UQAs···y7Mg"},
			},
		},
		{
			name:      "nft purchase seller",
			isReceive: false,
			action: core.Action{
				Type:        core.NftPurchase,
				NftPurchase: &core.NftPurchaseAction{Seller: named, Buyer: wallet()},
			},
			want: CounterpartyAccount{
				Address: AddressRef{
					Raw:      contractRaw,
					Friendly: "EQCEeWxHozdxa-iRkBQHABa9FkmAIbJzJXeDlOoYk1RLplan",
					Short:    "EQCE···plan",
				},
				Name:    g.Pointer("Fragment"),
				Picture: g.Pointer("https://cache.tonapi.io/fragment.png"),
			},
		},
		{
			name: "subscription beneficiary",
			action: core.Action{
				Type:      core.Subscription,
				Subscribe: &core.SubscriptionAction{Subscriber: wallet(), Beneficiary: named},
			},
			want: CounterpartyAccount{
				Address: AddressRef{
					Raw:      contractRaw,
					Friendly: "EQCEeWxHozdxa-iRkBQHABa9FkmAIbJzJXeDlOoYk1RLplan",
					Short:    "EQCE···plan",
				},
				Name:    g.Pointer("Fragment"),
				Picture: g.Pointer("https://cache.tonapi.io/fragment.png"),
			},
		},
		{
			name: "contract deploy",
			action: core.Action{
				Type:           core.ContractDeploy,
				ContractDeploy: &core.ContractDeployAction{Address: nftRaw},
			},
			want: CounterpartyAccount{
				Address: AddressRef{
					Raw:      nftRaw,
					Friendly: "EQBTPzDeVyIVe4Rx9VA7n8WADI2Dl-eXQ_eWsR5gmtrmn4R1",
					Short:    "EQBT···n4R1",
				},
			},
		},
		{
			name:   "missing payload",
			action: core.Action{Type: core.UnSubscription},
			want:   CounterpartyAccount{},
		},
		{
			name:   "unknown",
			action: core.Action{Type: core.Unknown},
			want:   CounterpartyAccount{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ResolveCounterparty(tt.isReceive, tt.action))
		})
	}
}

func TestShortAddress(t *testing.T) {
	require.Equal(t, "EQAs···y-7l", ShortAddress("EQAs87W4yJHlF8mt29ocA4agnMrLsOP69jC1HPyBUjJay-7l"))
	require.Equal(t, "abcdefgh", ShortAddress("abcdefgh"))
	require.Equal(t, "", ShortAddress(""))
}

func TestNewAddressRef(t *testing.T) {
	require.Equal(t, AddressRef{}, NewAddressRef("", true))
	require.Equal(t, AddressRef{
		Raw:      "not an address",
		Friendly: "not an address",
		Short:    "not ···ress",
	}, NewAddressRef("not an address", true))
}

type mockAddressBook struct {
	addresses map[tongo.AccountID]addressbook.KnownAddress
}

func (m mockAddressBook) GetAddressInfoByAddress(a tongo.AccountID) (addressbook.KnownAddress, bool) {
	known, ok := m.addresses[a]
	return known, ok
}

func TestMapper_withKnownAddress(t *testing.T) {
	book := mockAddressBook{addresses: map[tongo.AccountID]addressbook.KnownAddress{
		tongo.MustParseAccountID(aliceRaw): {Name: "Alice", Address: aliceRaw, Image: "https://alice.png"},
	}}
	m := NewMapper(WithAddressBook(book))

	account := m.withKnownAddress(ResolveCounterparty(true, tonTransfer(alice(), wallet(), 1)))
	require.Equal(t, "Alice", account.DisplayName())
	require.Equal(t, g.Pointer("https://alice.png"), account.Picture)

	named := alice()
	named.Name = g.Pointer("Bob")
	account = m.withKnownAddress(ResolveCounterparty(true, tonTransfer(named, wallet(), 1)))
	require.Equal(t, "Bob", account.DisplayName())
	require.Equal(t, g.Pointer("https://alice.png"), account.Picture)

	account = m.withKnownAddress(ResolveCounterparty(false, tonTransfer(alice(), wallet(), 1)))
	require.Equal(t, "UQAs···y7Mg", account.DisplayName())
	require.Nil(t, account.Picture)
}
