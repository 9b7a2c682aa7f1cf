package activity

import (
	"github.com/go-faster/errors"
	"github.com/tonkeeper/tongo"
	"github.com/tonkeeper/tongo/ton"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/tonkeeper/wallet-activity/pkg/core"
)

// MapEvent converts every action of the event to a timeline record, keeping their order.
// An action that cannot be classified is shown using its simple preview,
// it never affects the other actions of the event.
func (m *Mapper) MapEvent(event core.AccountEvent, walletAddress string) []MappedAction {
	isScam := m.isScam(event, walletAddress)
	actions := make([]MappedAction, 0, len(event.Actions))
	var errs error
	for i, a := range event.Actions {
		action, err := m.ClassifyAction(ActionInput{
			Action:        a,
			WalletAddress: walletAddress,
			EventID:       event.EventID,
			Index:         i,
			Timestamp:     event.Timestamp,
			InProgress:    event.InProgress,
			IsScam:        isScam,
		})
		observeAction(a.Type, err)
		if err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "action %v (%v)", i, a.Type))
		}
		action.TopCorner = i == 0
		action.BottomCorner = i == len(event.Actions)-1
		actions = append(actions, action)
	}
	if errs != nil {
		m.logger.Warn("failed to classify actions",
			zap.String("event_id", event.EventID),
			zap.Int("failed_actions", len(multierr.Errors(errs))),
			zap.Error(errs))
	}
	return actions
}

func (m *Mapper) isScam(event core.AccountEvent, walletAddress string) bool {
	if event.IsScam {
		return true
	}
	if m.spamFilter == nil {
		return false
	}
	var viewer *ton.AccountID
	if wallet, err := tongo.ParseAddress(walletAddress); err == nil {
		viewer = &wallet.ID
	}
	return m.spamFilter.CheckActions(event.Actions, viewer)
}
