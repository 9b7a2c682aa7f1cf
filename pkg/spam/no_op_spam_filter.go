package spam

import (
	"github.com/tonkeeper/tongo/ton"

	"github.com/tonkeeper/wallet-activity/pkg/core"
)

// NoOpSpamFilter is a spam filter that does nothing and pretends there is no spam in the TON blockchain.
type NoOpSpamFilter struct {
}

func NewNoOpSpamFilter() *NoOpSpamFilter {
	return &NoOpSpamFilter{}
}

func (s *NoOpSpamFilter) CheckActions(actions []core.Action, viewer *ton.AccountID) bool {
	return false
}
