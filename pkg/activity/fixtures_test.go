package activity

import (
	"time"

	"github.com/tonkeeper/wallet-activity/internal/g"
	"github.com/tonkeeper/wallet-activity/pkg/core"
)

const (
	walletRaw      = "0:2cf3b5b8c891e517c9addbda1c0386a09ccacbb0e3faf630b51cfc8152325acb"
	walletFriendly = "UQAs87W4yJHlF8mt29ocA4agnMrLsOP69jC1HPyBUjJay7Mg"
	aliceRaw       = "0:779dcc815138d9500e449c5291e7f12738c23d575b5310000f6a253bd607384e"
	aliceFriendly  = "UQB3ncyBUTjZUA5EnFKR5_EnOMI9V1tTEAAPaiU71gc4Tnjo"
	routerRaw      = "0:54887d7c01ead183691a703afff08adc7b653fba2022df3a4963dae5171aa2ca"
	contractRaw    = "0:84796c47a337716be8919014070016bd16498021b27325778394ea1893544ba6"
	nftRaw         = "0:533f30de5722157b8471f5503b9fc5800c8d8397e79743f796b11e609adae69f"

	// 2024-03-15 12:00:00 UTC
	testNow = 1710504000
)

var testClock = func() time.Time {
	return time.Unix(testNow, 0)
}

func wallet() core.AccountAddress {
	return core.AccountAddress{Address: walletRaw, IsWallet: true}
}

func alice() core.AccountAddress {
	return core.AccountAddress{Address: aliceRaw, IsWallet: true}
}

func preview(name string) core.SimplePreview {
	return core.SimplePreview{Name: name, Description: name + " description"}
}

func tonTransfer(sender, recipient core.AccountAddress, amount int64) core.Action {
	return core.Action{
		Type:          core.TonTransfer,
		Status:        core.ActionStatusOk,
		SimplePreview: preview("Ton Transfer"),
		TonTransfer: &core.TonTransferAction{
			Sender:    sender,
			Recipient: recipient,
			Amount:    amount,
			Comment:   g.Pointer("  thanks!  "),
		},
	}
}

func usdt() *core.JettonPreview {
	return &core.JettonPreview{
		Address:  routerRaw,
		Name:     "Tether USD",
		Symbol:   "USDT",
		Decimals: 6,
	}
}

func jettonTransfer(sender, recipient core.AccountAddress, amount string) core.Action {
	return core.Action{
		Type:          core.JettonTransfer,
		Status:        core.ActionStatusOk,
		SimplePreview: preview("Jetton Transfer"),
		JettonTransfer: &core.JettonTransferAction{
			Sender:    &sender,
			Recipient: &recipient,
			Amount:    amount,
			Jetton:    usdt(),
			EncryptedComment: &core.EncryptedComment{
				EncryptionType: "simple",
				CipherText:     "0a0b",
			},
		},
	}
}

func nftTransfer(sender, recipient core.AccountAddress) core.Action {
	return core.Action{
		Type:          core.NftItemTransfer,
		Status:        core.ActionStatusOk,
		SimplePreview: preview("NFT Transfer"),
		NftItemTransfer: &core.NftItemTransferAction{
			Sender:    &sender,
			Recipient: &recipient,
			Nft:       nftRaw,
			Comment:   g.Pointer("gift"),
		},
	}
}

func event(id string, timestamp int64, actions ...core.Action) core.AccountEvent {
	return core.AccountEvent{
		EventID:   id,
		Account:   wallet(),
		Timestamp: timestamp,
		Actions:   actions,
		Lt:        timestamp * 1000,
		Extra:     -5_500_000,
	}
}
