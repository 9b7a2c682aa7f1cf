package activity

import (
	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/tonkeeper/wallet-activity/internal/g"
	"github.com/tonkeeper/wallet-activity/pkg/core"
	"github.com/tonkeeper/wallet-activity/pkg/i18n"
)

// MapActionDetails describes one action of the event for the transaction details screen.
// It never fails: if the action is malformed, the details are built from the simple preview.
func (m *Mapper) MapActionDetails(event core.AccountEvent, action core.Action, walletAddress string) TransactionDetails {
	details := TransactionDetails{
		Type:       action.Type,
		EventID:    event.EventID,
		Operation:  action.SimplePreview.Name,
		InProgress: event.InProgress,
		Timestamp:  event.Timestamp,
		Amount:     FallbackAmount,
	}
	if details.Operation == "" {
		details.Operation = m.t("transactions.unknown")
	}
	result, err := m.safeActionDetails(event, action, walletAddress, details)
	if err != nil {
		m.logger.Warn("failed to map action details",
			zap.String("event_id", event.EventID),
			zap.String("action_type", string(action.Type)),
			zap.Error(err))
		return details
	}
	return result
}

func (m *Mapper) safeActionDetails(event core.AccountEvent, action core.Action, walletAddress string, details TransactionDetails) (result TransactionDetails, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Wrapf(ErrMalformedAction, "panic: %v", r)
		}
	}()
	return m.actionDetails(event, action, walletAddress, details)
}

func (m *Mapper) actionDetails(event core.AccountEvent, action core.Action, walletAddress string, details TransactionDetails) (TransactionDetails, error) {
	if _, ok := action.Payload(); !ok && action.Type.HasPayload() {
		return details, errors.Wrapf(ErrMalformedAction, "no %v payload", action.Type)
	}
	isReceive := IsReceive(walletAddress, action)
	counterparty := m.withKnownAddress(ResolveCounterparty(isReceive, action))
	prefix := i18n.MinusSign
	operation := m.t("transaction_type_sent")
	timeLabel := "transactionDetails.sent_time"
	if isReceive {
		prefix = i18n.PlusSign
		operation = m.t("transaction_type_receive")
		timeLabel = "transactionDetails.received_time"
	}
	details.IsReceive = isReceive
	details.Picture = counterparty.Picture
	details.TimeLabel = m.tWithData(timeLabel, i18n.Template{
		"Time": i18n.FormatDetailsTime(m.lang, m.localTime(event.Timestamp), m.now()),
	})
	details.FeeLabel = m.t("transaction_fee")
	if event.Extra < 0 {
		details.FeeLabel = m.t("transaction_refund")
	}
	details.Fee = i18n.FormatNanoInt(event.Extra, i18n.WithFormatDecimals(i18n.TonDecimals), i18n.WithPostfix(tonSymbol), i18n.Absolute())

	switch action.Type {
	case core.TonTransfer:
		data := action.TonTransfer
		details.Operation = operation
		details.Sender = g.Pointer(counterparty.Address)
		details.Comment = trimComment(data.Comment)
		details.EncryptedComment = data.EncryptedComment
		details.Amount = i18n.FormatNanoInt(data.Amount, i18n.WithPrefix(prefix), i18n.WithPostfix(tonSymbol))
		details.Title = i18n.FormatNanoInt(data.Amount,
			i18n.WithPrefix(prefix),
			i18n.WithFormatDecimals(i18n.TonDecimals),
			i18n.WithoutTruncate(),
			i18n.WithPostfix(tonSymbol))
	case core.JettonTransfer:
		data := action.JettonTransfer
		if data.Jetton == nil {
			return details, errors.Wrap(ErrMalformedAction, "jetton transfer without jetton")
		}
		amount, err := i18n.FormatNano(data.Amount,
			i18n.WithDecimals(data.Jetton.Decimals),
			i18n.WithPrefix(prefix),
			i18n.WithPostfix(data.Jetton.Symbol))
		if err != nil {
			return details, errors.Wrap(ErrMalformedAction, err.Error())
		}
		details.Operation = operation
		details.Sender = g.Pointer(counterparty.Address)
		details.Comment = trimComment(data.Comment)
		details.EncryptedComment = data.EncryptedComment
		details.Amount = amount
	case core.NftItemTransfer:
		data := action.NftItemTransfer
		details.Operation = operation
		details.Sender = g.Pointer(counterparty.Address)
		details.Comment = trimComment(data.Comment)
		details.Amount = nftAmount
		details.NftAddress = data.Nft
	case core.NftPurchase:
		data := action.NftPurchase
		amount, err := i18n.FormatNano(data.Amount.Value, i18n.WithPrefix(prefix), i18n.WithPostfix(data.Amount.TokenName))
		if err != nil {
			return details, errors.Wrap(ErrMalformedAction, err.Error())
		}
		details.Operation = m.t("transactions.nft_purchase")
		details.Sender = g.Pointer(counterparty.Address)
		details.NftItem = g.Pointer(data.Nft)
		details.Amount = amount
	case core.ContractDeploy:
		data := action.ContractDeploy
		details.Operation = m.t("transactions.contract_deploy")
		if EqualAddresses(data.Address, walletAddress) {
			details.Operation = m.t("transactions.wallet_initialized")
		}
		details.Sender = g.Pointer(counterparty.Address)
	case core.Subscription:
		data := action.Subscribe
		details.Operation = m.t("transactions.subscription")
		details.Subtitle = counterparty.DisplayName()
		details.Amount = i18n.FormatNanoInt(data.Amount, i18n.WithPrefix(prefix), i18n.WithPostfix(tonSymbol))
	case core.UnSubscription:
		details.Operation = m.t("transactions.unsubscription")
		details.Subtitle = counterparty.DisplayName()
	case core.SmartContractExec:
		data := action.SmartContractExec
		details.Operation = m.t("transactions.smartcontract_exec")
		details.Subtitle = data.Operation
		details.Sender = g.Pointer(counterparty.Address)
		details.Amount = i18n.FormatNanoInt(data.TonAttached, i18n.WithPrefix(prefix), i18n.WithPostfix(tonSymbol))
	case core.AuctionBid:
		m.logger.Debug("auction bid is not supported", zap.String("event_id", event.EventID))
	case core.JettonSwap:
		data := action.JettonSwap
		amountIn, err := formatSwapLeg(data.AmountIn, data.TonIn, data.JettonMasterIn, i18n.PlusSign)
		if err != nil {
			return details, err
		}
		amountOut, err := formatSwapLeg(data.AmountOut, data.TonOut, data.JettonMasterOut, i18n.MinusSign)
		if err != nil {
			return details, err
		}
		details.Operation = m.t("transactions.swap")
		details.Subtitle = counterparty.DisplayName()
		details.IsReceive = true
		details.Amount = amountIn
		details.Amount2 = amountOut
	case core.Unknown:
		fallthrough
	default:
		details.Operation = m.t("transactions.unknown")
		details.Subtitle = m.t("transactions.unknown_description")
	}

	if isReceive && m.isScam(event, walletAddress) {
		details.Operation = m.t("transactions.spam")
		details.Comment = ""
		details.EncryptedComment = nil
		details.NftItem = nil
		details.NftAddress = ""
		details.IsScam = true
	}
	if action.Status == core.ActionStatusFailed {
		details.Picture = nil
		details.IsFailed = true
	}
	return details, nil
}
