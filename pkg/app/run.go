package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	shutdownTimeout = time.Second * 5
)

func Logger(level string) *zap.Logger {

	cfg := zap.NewProductionConfig()

	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		panic(err)
	}
	cfg.Level.SetLevel(lvl)

	lg, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	return lg
}

// Serve runs the server until ctx is done and then shuts it down gracefully.
func Serve(ctx context.Context, logger *zap.Logger, server *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("start server", zap.String("address", server.Addr))
		errCh <- server.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
