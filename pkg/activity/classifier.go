package activity

import (
	"fmt"
	"strings"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/tonkeeper/wallet-activity/internal/g"
	"github.com/tonkeeper/wallet-activity/pkg/core"
	"github.com/tonkeeper/wallet-activity/pkg/i18n"
)

// ErrMalformedAction means the payload of an action doesn't match its type.
var ErrMalformedAction = errors.New("malformed action")

const (
	// SimplePreview is the type of records built from the simple preview only.
	SimplePreview core.ActionType = "SimplePreview"

	nftAmount = "NFT"
	tonSymbol = "TON"
)

// ActionInput is an action together with the event fields the classifier needs.
type ActionInput struct {
	Action        core.Action
	WalletAddress string
	EventID       string
	Index         int
	Timestamp     int64
	InProgress    bool
	// IsScam is set when the whole event is considered spam.
	IsScam bool
}

// ClassifyAction converts one action to a timeline record.
// If the action is malformed, it returns the record built from the simple preview along with
// an error wrapping ErrMalformedAction.
func (m *Mapper) ClassifyAction(in ActionInput) (result MappedAction, err error) {
	fallback := m.fallbackAction(in)
	defer func() {
		if r := recover(); r != nil {
			result, err = fallback, errors.Wrapf(ErrMalformedAction, "panic: %v", r)
		}
	}()
	action, err := m.classify(in, fallback)
	if err != nil {
		return fallback, err
	}
	return action, nil
}

func (m *Mapper) fallbackAction(in ActionInput) MappedAction {
	preview := in.Action.SimplePreview
	action := MappedAction{
		ContentType: ContentTypeAction,
		ID:          actionID(in.EventID, in.Index),
		EventID:     in.EventID,
		Type:        SimplePreview,
		Operation:   preview.Name,
		Subtitle:    preview.Description,
		IconName:    IconGear,
		Amount:      FallbackAmount,
		InProgress:  in.InProgress,
		Timestamp:   in.Timestamp,
		Time:        i18n.FormatTime(m.localTime(in.Timestamp)),
	}
	if action.Operation == "" {
		action.Operation = m.t("transactions.unknown")
	}
	if sender := in.Action.Sender(); sender != nil {
		action.Sender = g.Pointer(m.withKnownAddress(newCounterpartyAccount(*sender)))
	}
	action.EncryptedComment = encryptedComment(in.Action)
	return action
}

func (m *Mapper) classify(in ActionInput, action MappedAction) (MappedAction, error) {
	if _, ok := in.Action.Payload(); !ok && in.Action.Type.HasPayload() {
		return action, errors.Wrapf(ErrMalformedAction, "no %v payload", in.Action.Type)
	}
	isReceive := IsReceive(in.WalletAddress, in.Action)
	counterparty := m.withKnownAddress(ResolveCounterparty(isReceive, in.Action))
	prefix := i18n.MinusSign
	operation := m.t("transaction_type_sent")
	arrowIcon := IconSend
	if isReceive {
		prefix = i18n.PlusSign
		operation = m.t("transaction_type_receive")
		arrowIcon = IconReceive
	}
	action.IsReceive = isReceive
	action.Picture = counterparty.Picture

	switch in.Action.Type {
	case core.TonTransfer:
		data := in.Action.TonTransfer
		action.IconName = arrowIcon
		action.Operation = operation
		action.Subtitle = counterparty.DisplayName()
		action.Comment = trimComment(data.Comment)
		action.Amount = i18n.FormatNanoInt(data.Amount, i18n.WithPrefix(prefix), i18n.WithPostfix(tonSymbol))
	case core.JettonTransfer:
		data := in.Action.JettonTransfer
		if data.Jetton == nil {
			return action, errors.Wrap(ErrMalformedAction, "jetton transfer without jetton")
		}
		amount, err := i18n.FormatNano(data.Amount,
			i18n.WithDecimals(data.Jetton.Decimals),
			i18n.WithPrefix(prefix),
			i18n.WithPostfix(data.Jetton.Symbol))
		if err != nil {
			return action, errors.Wrap(ErrMalformedAction, err.Error())
		}
		action.IconName = arrowIcon
		action.Operation = operation
		action.Subtitle = counterparty.DisplayName()
		action.Comment = trimComment(data.Comment)
		action.Amount = amount
	case core.NftItemTransfer:
		data := in.Action.NftItemTransfer
		action.IconName = arrowIcon
		action.Operation = operation
		action.Subtitle = counterparty.DisplayName()
		action.Comment = trimComment(data.Comment)
		action.Amount = nftAmount
		action.NftAddress = data.Nft
	case core.NftPurchase:
		data := in.Action.NftPurchase
		amount, err := i18n.FormatNano(data.Amount.Value, i18n.WithPrefix(prefix), i18n.WithPostfix(data.Amount.TokenName))
		if err != nil {
			return action, errors.Wrap(ErrMalformedAction, err.Error())
		}
		action.IconName = IconPurchase
		action.Operation = m.t("transactions.nft_purchase")
		action.Subtitle = counterparty.Address.Short
		action.Amount = amount
		action.NftItem = g.Pointer(data.Nft)
	case core.ContractDeploy:
		data := in.Action.ContractDeploy
		action.IconName = IconGear
		action.Operation = m.t("transactions.contract_deploy")
		if EqualAddresses(data.Address, in.WalletAddress) {
			action.IconName = IconWalletInitialized
			action.Operation = m.t("transactions.wallet_initialized")
		}
		action.Subtitle = counterparty.Address.Short
	case core.Subscription:
		data := in.Action.Subscribe
		action.IconName = IconSubscription
		action.Operation = m.t("transactions.subscription")
		action.Subtitle = counterparty.DisplayName()
		action.Amount = i18n.FormatNanoInt(data.Amount, i18n.WithPrefix(prefix), i18n.WithPostfix(tonSymbol))
	case core.UnSubscription:
		action.IconName = IconUnsubscription
		action.Operation = m.t("transactions.unsubscription")
		action.Subtitle = counterparty.DisplayName()
	case core.SmartContractExec:
		data := in.Action.SmartContractExec
		action.IconName = IconGear
		action.Operation = m.t("transactions.smartcontract_exec")
		action.Subtitle = data.Operation
		action.Amount = i18n.FormatNanoInt(data.TonAttached, i18n.WithPrefix(prefix), i18n.WithPostfix(tonSymbol))
	case core.AuctionBid:
		m.logger.Debug("auction bid is not supported", zap.String("event_id", in.EventID), zap.Int("action_index", in.Index))
	case core.JettonSwap:
		data := in.Action.JettonSwap
		amountIn, err := formatSwapLeg(data.AmountIn, data.TonIn, data.JettonMasterIn, i18n.PlusSign)
		if err != nil {
			return action, err
		}
		amountOut, err := formatSwapLeg(data.AmountOut, data.TonOut, data.JettonMasterOut, i18n.MinusSign)
		if err != nil {
			return action, err
		}
		action.IconName = IconSwap
		action.Operation = m.t("transactions.swap")
		action.Subtitle = counterparty.DisplayName()
		action.IsReceive = true
		action.Amount = amountIn
		action.Amount2 = amountOut
	case core.Unknown:
		fallthrough
	default:
		action.Operation = m.t("transactions.unknown")
		action.Subtitle = m.t("transactions.unknown_description")
	}

	if in.IsScam && isReceive {
		action.Operation = m.t("transactions.spam")
		action.Comment = ""
		action.EncryptedComment = nil
		action.NftItem = nil
		action.NftAddress = ""
		action.IsScam = true
	}
	if in.Action.Status == core.ActionStatusFailed {
		action.IconName = IconFailed
		action.Picture = nil
		action.IsFailed = true
	}
	action.Type = in.Action.Type
	return action, nil
}

// formatSwapLeg renders one side of a swap, a leg without a jetton master is TON.
func formatSwapLeg(amount string, tonAmount *int64, jetton *core.JettonPreview, prefix string) (string, error) {
	if jetton == nil {
		if amount == "" && tonAmount != nil {
			return i18n.FormatNanoInt(*tonAmount, i18n.WithPrefix(prefix), i18n.WithPostfix(tonSymbol)), nil
		}
		value, err := i18n.FormatNano(amount, i18n.WithPrefix(prefix), i18n.WithPostfix(tonSymbol))
		if err != nil {
			return "", errors.Wrap(ErrMalformedAction, err.Error())
		}
		return value, nil
	}
	value, err := i18n.FormatNano(amount,
		i18n.WithDecimals(jetton.Decimals),
		i18n.WithPrefix(prefix),
		i18n.WithPostfix(jetton.Symbol))
	if err != nil {
		return "", errors.Wrap(ErrMalformedAction, err.Error())
	}
	return value, nil
}

func trimComment(comment *string) string {
	if comment == nil {
		return ""
	}
	return strings.TrimSpace(*comment)
}

func encryptedComment(action core.Action) *core.EncryptedComment {
	switch {
	case action.Type == core.TonTransfer && action.TonTransfer != nil:
		return action.TonTransfer.EncryptedComment
	case action.Type == core.JettonTransfer && action.JettonTransfer != nil:
		return action.JettonTransfer.EncryptedComment
	}
	return nil
}

func actionID(eventID string, index int) string {
	return fmt.Sprintf("%v_%v", eventID, index)
}
