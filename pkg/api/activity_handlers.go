package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/gorilla/mux"
	"github.com/tonkeeper/tongo"
	"go.uber.org/zap"

	"github.com/tonkeeper/wallet-activity/pkg/activity"
	"github.com/tonkeeper/wallet-activity/pkg/core"
	"github.com/tonkeeper/wallet-activity/pkg/i18n"
	"github.com/tonkeeper/wallet-activity/pkg/sentry"
	"github.com/tonkeeper/wallet-activity/pkg/tonapi"
)

// History is one page of the account's activity timeline.
type History struct {
	Entries []activity.TimelineEntry `json:"entries"`
	// NextFrom is the before_lt value of the next page, 0 if there are no more events.
	NextFrom int64 `json:"next_from"`
}

type historyKey struct {
	account  tongo.AccountID
	lang     string
	limit    int
	beforeLt int64
}

func (h *Handler) GetAccountHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.getAccountHistory(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, history)
}

func (h *Handler) getAccountHistory(r *http.Request) (*History, error) {
	account, err := tongo.ParseAddress(mux.Vars(r)["account_id"])
	if err != nil {
		return nil, BadRequest(err.Error())
	}
	query := r.URL.Query()
	key := historyKey{
		account: account.ID,
		lang:    h.requestLang(r),
	}
	if v := query.Get("limit"); v != "" {
		key.limit, err = strconv.Atoi(v)
		if err != nil || key.limit < 0 {
			return nil, BadRequest("invalid limit")
		}
	}
	if v := query.Get("before_lt"); v != "" {
		key.beforeLt, err = strconv.ParseInt(v, 10, 64)
		if err != nil || key.beforeLt < 0 {
			return nil, BadRequest("invalid before_lt")
		}
	}
	if history, ok := h.history.Get(key); ok {
		return &history, nil
	}
	events, err := h.source.GetAccountEvents(r.Context(), account.ID, tonapi.EventsParams{
		Limit:          key.limit,
		BeforeLt:       key.beforeLt,
		AcceptLanguage: key.lang,
	})
	if err != nil {
		return nil, h.upstreamError(r.Context(), account.ID, err)
	}
	history := History{
		Entries:  h.mapper.ForLang(key.lang).MapEvents(events.Events, account.ID.ToRaw()),
		NextFrom: events.NextFrom,
	}
	h.history.Set(key, history)
	return &history, nil
}

func (h *Handler) GetActionDetails(w http.ResponseWriter, r *http.Request) {
	details, err := h.getActionDetails(r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

func (h *Handler) getActionDetails(r *http.Request) (*activity.TransactionDetails, error) {
	vars := mux.Vars(r)
	account, err := tongo.ParseAddress(vars["account_id"])
	if err != nil {
		return nil, BadRequest(err.Error())
	}
	index, err := strconv.Atoi(vars["index"])
	if err != nil || index < 0 {
		return nil, BadRequest("invalid action index")
	}
	lang := h.requestLang(r)
	event, err := h.source.GetAccountEvent(r.Context(), account.ID, vars["event_id"], lang)
	if err != nil {
		return nil, h.upstreamError(r.Context(), account.ID, err)
	}
	if index >= len(event.Actions) {
		return nil, NotFound("action not found")
	}
	details := h.mapper.ForLang(lang).MapActionDetails(*event, event.Actions[index], account.ID.ToRaw())
	return &details, nil
}

// requestLang picks the language from the lang query parameter or the Accept-Language header.
func (h *Handler) requestLang(r *http.Request) string {
	lang := r.URL.Query().Get("lang")
	if lang == "" {
		lang = r.Header.Get("Accept-Language")
	}
	if lang == "" {
		lang = h.defaultLang
	}
	return i18n.Normalize(lang)
}

func (h *Handler) upstreamError(ctx context.Context, account tongo.AccountID, err error) error {
	if errors.Is(err, core.ErrEntityNotFound) {
		return NotFound("not found")
	}
	if errors.Is(err, context.Canceled) && ctx.Err() != nil {
		return err
	}
	var statusErr tonapi.StatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusBadRequest {
		return BadRequest(statusErr.Message)
	}
	h.logger.Error("failed to get account events", zap.String("account", account.ToRaw()), zap.Error(err))
	sentry.Send("failed to get account events", sentry.SentryInfoData{
		"account": account.ToRaw(),
		"error":   err.Error(),
	}, sentry.LevelError)
	return BadGateway("failed to get account events")
}
