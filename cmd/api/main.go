package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sourcegraph/conc"
	"go.uber.org/zap"

	"github.com/tonkeeper/wallet-activity/pkg/activity"
	"github.com/tonkeeper/wallet-activity/pkg/addressbook"
	"github.com/tonkeeper/wallet-activity/pkg/api"
	"github.com/tonkeeper/wallet-activity/pkg/app"
	"github.com/tonkeeper/wallet-activity/pkg/config"
	"github.com/tonkeeper/wallet-activity/pkg/sentry"
	"github.com/tonkeeper/wallet-activity/pkg/spam"
	"github.com/tonkeeper/wallet-activity/pkg/tonapi"
)

func main() {
	cfg := config.Load()
	log := app.Logger(cfg.App.LogLevel)
	defer func() {
		_ = log.Sync()
	}()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := sentry.Init(cfg.App.SentryDSN); err != nil {
		log.Fatal("sentry init", zap.Error(err))
	}
	defer sentry.Flush()

	mapperOptions := []activity.Option{
		activity.WithLogger(log),
		activity.WithLang(cfg.App.DefaultLang),
		activity.WithLocation(cfg.App.Timezone.Location),
	}
	var spamOptions []spam.Option
	if !cfg.AddressBook.Disabled {
		book := addressbook.NewAddressBook(log, cfg.AddressBook.Path)
		defer book.Close()
		mapperOptions = append(mapperOptions, activity.WithAddressBook(book))
		spamOptions = append(spamOptions, spam.WithAddressBook(book))
	}
	if cfg.App.SpamFilter {
		mapperOptions = append(mapperOptions, activity.WithSpamFilter(spam.NewSpamFilter(spamOptions...)))
	} else {
		mapperOptions = append(mapperOptions, activity.WithSpamFilter(spam.NewNoOpSpamFilter()))
	}

	client := tonapi.NewClient(cfg.TonAPI.URL,
		tonapi.WithToken(cfg.TonAPI.Token),
		tonapi.WithAttempts(cfg.TonAPI.Attempts),
		tonapi.WithRateLimit(cfg.TonAPI.RPS))

	h, err := api.NewHandler(log,
		api.WithEventSource(client),
		api.WithMapper(activity.NewMapper(mapperOptions...)),
		api.WithDefaultLang(cfg.App.DefaultLang),
		api.WithCache(cfg.API.CacheSize, cfg.API.CacheTTL))
	if err != nil {
		log.Fatal("failed to create api handler", zap.Error(err))
	}

	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%v", cfg.App.MetricsPort),
		Handler: promhttp.Handler(),
	}
	server := api.NewServer(log, h, fmt.Sprintf(":%v", cfg.API.Port))

	var wg conc.WaitGroup
	wg.Go(func() {
		if err := app.Serve(ctx, log, metricsServer); err != nil {
			log.Error("metrics server", zap.Error(err))
			stop()
		}
	})
	wg.Go(func() {
		if err := app.Serve(ctx, log, server); err != nil {
			log.Error("listen and serve", zap.Error(err))
			stop()
		}
	})
	wg.Wait()
	log.Info("wallet-activity quit")
}
