package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/tonkeeper/tongo"
	"go.uber.org/zap"

	"github.com/tonkeeper/wallet-activity/pkg/activity"
	"github.com/tonkeeper/wallet-activity/pkg/app"
	"github.com/tonkeeper/wallet-activity/pkg/spam"
	"github.com/tonkeeper/wallet-activity/pkg/tonapi"
)

var config struct {
	Account  string `long:"account" short:"a" required:"true" description:"wallet address in raw or user-friendly form"`
	Endpoint string `long:"endpoint" env:"TONAPI_URL" description:"tonapi endpoint" default:"https://tonapi.io"`
	Token    string `long:"token" env:"TONAPI_TOKEN" description:"tonapi token"`
	Lang     string `long:"lang" description:"language of labels" default:"en"`
	Timezone string `long:"timezone" description:"timezone used to group events by day" default:"UTC"`
	Limit    int    `long:"limit" description:"number of events" default:"20"`
	BeforeLt int64  `long:"before-lt" description:"show events older than this logical time"`
	EventID  string `long:"event" description:"show details of an event action instead of the timeline"`
	Index    int    `long:"index" description:"action index within the event"`
	LogLevel string `long:"log-level" description:"log level" default:"WARN"`
}

func main() {
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		os.Exit(2)
	}
	logger := app.Logger(config.LogLevel)
	defer func() {
		_ = logger.Sync()
	}()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	account, err := tongo.ParseAddress(config.Account)
	if err != nil {
		logger.Fatal("invalid account", zap.Error(err))
	}
	location, err := time.LoadLocation(config.Timezone)
	if err != nil {
		logger.Fatal("invalid timezone", zap.Error(err))
	}
	client := tonapi.NewClient(config.Endpoint, tonapi.WithToken(config.Token))
	mapper := activity.NewMapper(
		activity.WithLogger(logger),
		activity.WithLang(config.Lang),
		activity.WithLocation(location),
		activity.WithSpamFilter(spam.NewSpamFilter()),
	)

	var result any
	if config.EventID != "" {
		event, err := client.GetAccountEvent(ctx, account.ID, config.EventID, config.Lang)
		if err != nil {
			logger.Fatal("failed to get event", zap.Error(err))
		}
		if config.Index < 0 || config.Index >= len(event.Actions) {
			logger.Fatal("action index out of range", zap.Int("index", config.Index), zap.Int("actions", len(event.Actions)))
		}
		result = mapper.MapActionDetails(*event, event.Actions[config.Index], account.ID.ToRaw())
	} else {
		events, err := client.GetAccountEvents(ctx, account.ID, tonapi.EventsParams{
			Limit:          config.Limit,
			BeforeLt:       config.BeforeLt,
			AcceptLanguage: config.Lang,
		})
		if err != nil {
			logger.Fatal("failed to get events", zap.Error(err))
		}
		result = mapper.MapEvents(events.Events, account.ID.ToRaw())
	}
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		logger.Fatal("failed to encode result", zap.Error(err))
	}
}
