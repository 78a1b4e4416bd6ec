package main

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/phrazzld/exercise-tracker/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNewApplication(t *testing.T) {
	t.Run("memory driver", func(t *testing.T) {
		app, err := newApplication(context.Background(), testConfig(), discardLogger(), nil)
		require.NoError(t, err)
		assert.NotNil(t, app.userStore)
		assert.NotNil(t, app.exerciseStore)
		assert.NotNil(t, app.exerciseService)
		assert.Nil(t, app.db)
	})

	t.Run("postgres driver without connection", func(t *testing.T) {
		cfg := testConfig()
		cfg.Database.Driver = config.DriverPostgres
		cfg.Database.URL = "postgres://localhost/exercise"

		_, err := newApplication(context.Background(), cfg, discardLogger(), nil)
		assert.Error(t, err)
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := testConfig()
		cfg.Database.Driver = "mongo"

		_, err := newApplication(context.Background(), cfg, discardLogger(), nil)
		assert.ErrorContains(t, err, "unsupported database driver")
	})
}

func TestNewHTTPServerTimeouts(t *testing.T) {
	app, err := newApplication(context.Background(), testConfig(), discardLogger(), nil)
	require.NoError(t, err)

	srv := app.newHTTPServer(app.setupRouter())
	assert.Equal(t, ":0", srv.Addr)
	assert.Equal(t, 5*time.Second, srv.ReadTimeout)
	assert.Equal(t, 5*time.Second, srv.WriteTimeout)
	assert.Equal(t, 5*time.Second, srv.IdleTimeout)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	app, err := newApplication(context.Background(), testConfig(), discardLogger(), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("server did not shut down")
	}
}
