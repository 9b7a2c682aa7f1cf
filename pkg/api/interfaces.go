package api

import (
	"context"

	"github.com/tonkeeper/tongo"

	"github.com/tonkeeper/wallet-activity/pkg/core"
	"github.com/tonkeeper/wallet-activity/pkg/tonapi"
)

// eventSource provides account events, usually tonapi.
type eventSource interface {
	GetAccountEvents(ctx context.Context, account tongo.AccountID, params tonapi.EventsParams) (*core.AccountEvents, error)
	GetAccountEvent(ctx context.Context, account tongo.AccountID, eventID string, acceptLanguage string) (*core.AccountEvent, error)
}
