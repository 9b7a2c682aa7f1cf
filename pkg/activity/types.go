package activity

import (
	"github.com/tonkeeper/wallet-activity/pkg/core"
)

const (
	IconReceive           = "ic-tray-arrow-down-28"
	IconSend              = "ic-tray-arrow-up-28"
	IconPurchase          = "ic-shopping-bag-28"
	IconWalletInitialized = "ic-donemark-28"
	IconGear              = "ic-gear-28"
	IconSubscription      = "ic-bell-28"
	IconUnsubscription    = "ic-xmark-28"
	IconSwap              = "ic-swap-horizontal-alternative-28"
	IconFailed            = "ic-exclamationmark-circle-28"

	// FallbackAmount is shown when an action could not be classified.
	FallbackAmount = "—"

	ContentTypeAction = "action"
	ContentTypeDate   = "date"
)

// TimelineEntry is either a DateSeparator or a MappedAction.
type TimelineEntry interface {
	EntryID() string
	timelineEntry()
}

// DateSeparator precedes all actions of one calendar day.
type DateSeparator struct {
	ContentType string `json:"contentType"`
	ID          string `json:"id"`
	Date        string `json:"date"`
}

// AddressRef keeps the forms an address is displayed in.
type AddressRef struct {
	Raw      string `json:"raw"`
	Friendly string `json:"friendly"`
	Short    string `json:"short"`
}

type CounterpartyAccount struct {
	Address AddressRef `json:"address"`
	Name    *string    `json:"name,omitempty"`
	Picture *string    `json:"picture,omitempty"`
}

// MappedAction is a UI-ready record of one action of an event.
type MappedAction struct {
	ContentType      string                 `json:"contentType"`
	ID               string                 `json:"id"`
	EventID          string                 `json:"eventId"`
	Type             core.ActionType        `json:"type"`
	Operation        string                 `json:"operation"`
	Subtitle         string                 `json:"subtitle"`
	IconName         string                 `json:"iconName"`
	Picture          *string                `json:"picture"`
	Amount           string                 `json:"amount"`
	Amount2          string                 `json:"amount2,omitempty"`
	Comment          string                 `json:"comment,omitempty"`
	EncryptedComment *core.EncryptedComment `json:"encryptedComment,omitempty"`
	NftAddress       string                 `json:"nftAddress,omitempty"`
	NftItem          *core.NftItem          `json:"nftItem,omitempty"`
	Sender           *CounterpartyAccount   `json:"sender,omitempty"`
	IsReceive        bool                   `json:"isReceive"`
	IsScam           bool                   `json:"isScam"`
	IsFailed         bool                   `json:"isFailed"`
	InProgress       bool                   `json:"inProgress"`
	TopCorner        bool                   `json:"topCorner"`
	BottomCorner     bool                   `json:"bottomCorner"`
	Timestamp        int64                  `json:"timestamp"`
	Time             string                 `json:"time"`
}

// TransactionDetails describes a single action for the details view.
type TransactionDetails struct {
	Type             core.ActionType        `json:"type"`
	EventID          string                 `json:"eventId"`
	Operation        string                 `json:"operation"`
	InProgress       bool                   `json:"inProgress"`
	IsReceive        bool                   `json:"isReceive"`
	IsScam           bool                   `json:"isScam"`
	IsFailed         bool                   `json:"isFailed"`
	Timestamp        int64                  `json:"timestamp"`
	TimeLabel        string                 `json:"time"`
	Title            string                 `json:"title,omitempty"`
	Amount           string                 `json:"amount"`
	Amount2          string                 `json:"amount2,omitempty"`
	Subtitle         string                 `json:"subtitle,omitempty"`
	Picture          *string                `json:"picture"`
	Comment          string                 `json:"comment,omitempty"`
	EncryptedComment *core.EncryptedComment `json:"encryptedComment,omitempty"`
	Sender           *AddressRef            `json:"sender,omitempty"`
	NftAddress       string                 `json:"nftAddress,omitempty"`
	NftItem          *core.NftItem          `json:"nftItem,omitempty"`
	Fee              string                 `json:"fee"`
	FeeLabel         string                 `json:"feeLabel"`
}

func (d DateSeparator) EntryID() string {
	return d.ID
}

func (a MappedAction) EntryID() string {
	return a.ID
}

func (DateSeparator) timelineEntry() {}

func (MappedAction) timelineEntry() {}
