package app

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestLogger(t *testing.T) {
	logger := Logger("DEBUG")
	require.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger = Logger("warn")
	require.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	require.True(t, logger.Core().Enabled(zapcore.WarnLevel))

	require.Panics(t, func() { Logger("LOUD") })
}

func TestServe(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.Nil(t, err)
	addr := listener.Addr().String()
	require.Nil(t, listener.Close())

	ctx, cancel := context.WithCancel(context.Background())
	server := &http.Server{Addr: addr, Handler: http.NotFoundHandler()}
	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, zap.NewNop(), server)
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusNotFound
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.Nil(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
