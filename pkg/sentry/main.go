package sentry

import (
	"time"

	"github.com/getsentry/sentry-go"
)

type SentryInfoData map[string]interface{}

type Level = sentry.Level

const (
	LevelWarning = sentry.LevelWarning
	LevelError   = sentry.LevelError
)

var inited = false

// Init enables reporting to the given DSN. Reporting stays disabled if dsn is empty.
func Init(dsn string) error {
	if dsn == "" {
		return nil
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		TracesSampleRate: 1.0,
	})
	if err != nil {
		return err
	}
	inited = true
	return nil
}

// Flush waits until buffered events are sent.
func Flush() {
	if inited {
		sentry.Flush(2 * time.Second)
	}
}

func Send(title string, data SentryInfoData, logLevel Level) {
	if !inited {
		return
	}

	go func(localHub *sentry.Hub) {
		localHub.ConfigureScope(func(scope *sentry.Scope) {
			scope.SetLevel(logLevel)
			scope.SetExtras(data)
		})
		localHub.CaptureMessage(title)
	}(sentry.CurrentHub().Clone())
}
