package activity

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/tonkeeper/wallet-activity/pkg/core"
)

var mappedActions = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "activity_mapped_actions_total",
		Help: "Number of mapped actions per action type and result",
	},
	[]string{"type", "result"},
)

func observeAction(actionType core.ActionType, err error) {
	label := string(actionType)
	if !actionType.HasPayload() && actionType != core.Unknown {
		label = "other"
	}
	result := "ok"
	if err != nil {
		result = "fallback"
	}
	mappedActions.WithLabelValues(label, result).Inc()
}
