package core

const (
	TonTransfer       ActionType = "TonTransfer"
	JettonTransfer    ActionType = "JettonTransfer"
	NftItemTransfer   ActionType = "NftItemTransfer"
	NftPurchase       ActionType = "NftPurchase"
	ContractDeploy    ActionType = "ContractDeploy"
	Subscription      ActionType = "Subscribe"
	UnSubscription    ActionType = "UnSubscribe"
	SmartContractExec ActionType = "SmartContractExec"
	AuctionBid        ActionType = "AuctionBid"
	JettonSwap        ActionType = "JettonSwap"
	Unknown           ActionType = "Unknown"

	ActionStatusOk     ActionStatus = "ok"
	ActionStatusFailed ActionStatus = "failed"
)

type ActionType string
type ActionStatus string

// AccountEvents is a page of events returned by the indexer for one account.
type AccountEvents struct {
	Events   []AccountEvent `json:"events"`
	NextFrom int64          `json:"next_from"`
}

// AccountEvent is one trace as seen from a particular account.
// Extra is the account's balance change not explained by actions: fee if positive, refund if negative.
type AccountEvent struct {
	EventID    string         `json:"event_id"`
	Account    AccountAddress `json:"account"`
	Timestamp  int64          `json:"timestamp"`
	Actions    []Action       `json:"actions"`
	IsScam     bool           `json:"is_scam"`
	Lt         int64          `json:"lt"`
	InProgress bool           `json:"in_progress"`
	Extra      int64          `json:"extra"`
}

type (
	AccountAddress struct {
		Address  string  `json:"address"`
		Name     *string `json:"name,omitempty"`
		IsScam   bool    `json:"is_scam"`
		Icon     *string `json:"icon,omitempty"`
		IsWallet bool    `json:"is_wallet"`
	}

	SimplePreview struct {
		Name        string           `json:"name"`
		Description string           `json:"description"`
		ActionImage *string          `json:"action_image,omitempty"`
		Value       *string          `json:"value,omitempty"`
		ValueImage  *string          `json:"value_image,omitempty"`
		Accounts    []AccountAddress `json:"accounts,omitempty"`
	}

	Refund struct {
		Type   string `json:"type"`
		Origin string `json:"origin"`
	}

	EncryptedComment struct {
		EncryptionType string `json:"encryption_type"`
		CipherText     string `json:"cipher_text"`
	}

	JettonPreview struct {
		Address      string `json:"address"`
		Name         string `json:"name"`
		Symbol       string `json:"symbol"`
		Decimals     int32  `json:"decimals"`
		Image        string `json:"image"`
		Verification string `json:"verification"`
	}

	Price struct {
		Value     string `json:"value"`
		TokenName string `json:"token_name"`
	}

	ImagePreview struct {
		Resolution string `json:"resolution"`
		URL        string `json:"url"`
	}

	NftCollection struct {
		Address     string `json:"address"`
		Name        string `json:"name"`
		Description string `json:"description"`
	}

	NftItem struct {
		Address    string          `json:"address"`
		Index      int64           `json:"index"`
		Owner      *AccountAddress `json:"owner,omitempty"`
		Collection *NftCollection  `json:"collection,omitempty"`
		Verified   bool            `json:"verified"`
		Metadata   map[string]any  `json:"metadata,omitempty"`
		Previews   []ImagePreview  `json:"previews,omitempty"`
		DNS        *string         `json:"dns,omitempty"`
	}

	// Action is a tagged union: Type selects which of the payload pointers is set.
	Action struct {
		Type              ActionType               `json:"type"`
		Status            ActionStatus             `json:"status"`
		SimplePreview     SimplePreview            `json:"simple_preview"`
		TonTransfer       *TonTransferAction       `json:"TonTransfer,omitempty"`
		JettonTransfer    *JettonTransferAction    `json:"JettonTransfer,omitempty"`
		NftItemTransfer   *NftItemTransferAction   `json:"NftItemTransfer,omitempty"`
		NftPurchase       *NftPurchaseAction       `json:"NftPurchase,omitempty"`
		ContractDeploy    *ContractDeployAction    `json:"ContractDeploy,omitempty"`
		Subscribe         *SubscriptionAction      `json:"Subscribe,omitempty"`
		UnSubscribe       *UnSubscriptionAction    `json:"UnSubscribe,omitempty"`
		SmartContractExec *SmartContractExecAction `json:"SmartContractExec,omitempty"`
		AuctionBid        *AuctionBidAction        `json:"AuctionBid,omitempty"`
		JettonSwap        *JettonSwapAction        `json:"JettonSwap,omitempty"`
	}

	TonTransferAction struct {
		Sender           AccountAddress    `json:"sender"`
		Recipient        AccountAddress    `json:"recipient"`
		Amount           int64             `json:"amount"`
		Comment          *string           `json:"comment,omitempty"`
		EncryptedComment *EncryptedComment `json:"encrypted_comment,omitempty"`
		Refund           *Refund           `json:"refund,omitempty"`
	}

	JettonTransferAction struct {
		Sender           *AccountAddress   `json:"sender,omitempty"`
		Recipient        *AccountAddress   `json:"recipient,omitempty"`
		SendersWallet    string            `json:"senders_wallet"`
		RecipientsWallet string            `json:"recipients_wallet"`
		Amount           string            `json:"amount"`
		Comment          *string           `json:"comment,omitempty"`
		EncryptedComment *EncryptedComment `json:"encrypted_comment,omitempty"`
		Refund           *Refund           `json:"refund,omitempty"`
		Jetton           *JettonPreview    `json:"jetton,omitempty"`
	}

	NftItemTransferAction struct {
		Sender           *AccountAddress   `json:"sender,omitempty"`
		Recipient        *AccountAddress   `json:"recipient,omitempty"`
		Nft              string            `json:"nft"`
		Comment          *string           `json:"comment,omitempty"`
		EncryptedComment *EncryptedComment `json:"encrypted_comment,omitempty"`
		Payload          *string           `json:"payload,omitempty"`
		Refund           *Refund           `json:"refund,omitempty"`
	}

	NftPurchaseAction struct {
		AuctionType string         `json:"auction_type"`
		Amount      Price          `json:"amount"`
		Nft         NftItem        `json:"nft"`
		Seller      AccountAddress `json:"seller"`
		Buyer       AccountAddress `json:"buyer"`
	}

	ContractDeployAction struct {
		Address    string   `json:"address"`
		Interfaces []string `json:"interfaces,omitempty"`
	}

	SubscriptionAction struct {
		Subscriber   AccountAddress `json:"subscriber"`
		Subscription string         `json:"subscription"`
		Beneficiary  AccountAddress `json:"beneficiary"`
		Amount       int64          `json:"amount"`
		Initial      bool           `json:"initial"`
	}

	UnSubscriptionAction struct {
		Subscriber   AccountAddress `json:"subscriber"`
		Subscription string         `json:"subscription"`
		Beneficiary  AccountAddress `json:"beneficiary"`
	}

	SmartContractExecAction struct {
		Executor    AccountAddress `json:"executor"`
		Contract    AccountAddress `json:"contract"`
		TonAttached int64          `json:"ton_attached"`
		Operation   string         `json:"operation"`
		Payload     *string        `json:"payload,omitempty"`
		Refund      *Refund        `json:"refund,omitempty"`
	}

	AuctionBidAction struct {
		AuctionType string         `json:"auction_type"`
		Amount      Price          `json:"amount"`
		Nft         *NftItem       `json:"nft,omitempty"`
		Bidder      AccountAddress `json:"bidder"`
		Auction     AccountAddress `json:"auction"`
	}

	JettonSwapAction struct {
		Dex             string         `json:"dex"`
		AmountIn        string         `json:"amount_in"`
		AmountOut       string         `json:"amount_out"`
		TonIn           *int64         `json:"ton_in,omitempty"`
		TonOut          *int64         `json:"ton_out,omitempty"`
		UserWallet      AccountAddress `json:"user_wallet"`
		Router          AccountAddress `json:"router"`
		JettonMasterIn  *JettonPreview `json:"jetton_master_in,omitempty"`
		JettonMasterOut *JettonPreview `json:"jetton_master_out,omitempty"`
	}
)

// HasPayload reports whether actions of this type carry a variant payload.
func (t ActionType) HasPayload() bool {
	switch t {
	case TonTransfer, JettonTransfer, NftItemTransfer, NftPurchase, ContractDeploy,
		Subscription, UnSubscription, SmartContractExec, AuctionBid, JettonSwap:
		return true
	}
	return false
}

// Payload returns the variant payload selected by a.Type.
// The second value is false if the tag is not recognized or its payload is missing.
func (a Action) Payload() (any, bool) {
	switch a.Type {
	case TonTransfer:
		return a.TonTransfer, a.TonTransfer != nil
	case JettonTransfer:
		return a.JettonTransfer, a.JettonTransfer != nil
	case NftItemTransfer:
		return a.NftItemTransfer, a.NftItemTransfer != nil
	case NftPurchase:
		return a.NftPurchase, a.NftPurchase != nil
	case ContractDeploy:
		return a.ContractDeploy, a.ContractDeploy != nil
	case Subscription:
		return a.Subscribe, a.Subscribe != nil
	case UnSubscription:
		return a.UnSubscribe, a.UnSubscribe != nil
	case SmartContractExec:
		return a.SmartContractExec, a.SmartContractExec != nil
	case AuctionBid:
		return a.AuctionBid, a.AuctionBid != nil
	case JettonSwap:
		return a.JettonSwap, a.JettonSwap != nil
	default:
		return nil, false
	}
}

// Sender returns the account that initiated the action, if the variant has one.
func (a Action) Sender() *AccountAddress {
	switch a.Type {
	case TonTransfer:
		if a.TonTransfer != nil {
			return &a.TonTransfer.Sender
		}
	case JettonTransfer:
		if a.JettonTransfer != nil {
			return a.JettonTransfer.Sender
		}
	case NftItemTransfer:
		if a.NftItemTransfer != nil {
			return a.NftItemTransfer.Sender
		}
	}
	return nil
}

// Recipient returns the receiving account, if the variant has one.
func (a Action) Recipient() *AccountAddress {
	switch a.Type {
	case TonTransfer:
		if a.TonTransfer != nil {
			return &a.TonTransfer.Recipient
		}
	case JettonTransfer:
		if a.JettonTransfer != nil {
			return a.JettonTransfer.Recipient
		}
	case NftItemTransfer:
		if a.NftItemTransfer != nil {
			return a.NftItemTransfer.Recipient
		}
	}
	return nil
}
