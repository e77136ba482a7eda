package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) Config {
	t.Helper()

	dir := t.TempDir()
	return Config{
		Issuer:              "http://localhost",
		BasePath:            "oidc",
		Scopes:              DefaultScopes,
		ClientIDBytes:       16,
		SecretBytes:         32,
		DatabaseFile:        filepath.Join(dir, "oidcreg.db"),
		PepperFile:          filepath.Join(dir, "pepper"),
		Env:                 "test",
		LogLevel:            "error",
		LogFormat:           "json",
		Port:                0,
		MaxRequestBytes:     64 << 10,
		ShutdownGracePeriod: time.Second,
	}
}

func TestApplicationServesRegistration(t *testing.T) {
	application, err := New(testConfig(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.db.Close() })

	srv := httptest.NewServer(application.Handler())
	t.Cleanup(srv.Close)

	resp, err := http.Post(srv.URL+"/oidc/register", "application/json",
		strings.NewReader(`{"scope": "openid profile", "redirect_uris": ["https://rp.example/cb"]}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	clients, err := application.db.Clients().ListClients(t.Context())
	require.NoError(t, err)
	require.Len(t, clients, 1)
	require.Equal(t, "https://rp.example/cb", clients[0].ServiceID)
}

func TestApplicationRejectsWeakGenerators(t *testing.T) {
	cfg := testConfig(t)
	cfg.SecretBytes = 8

	_, err := New(cfg)
	require.Error(t, err)
}

func TestApplicationRunStopsOnContext(t *testing.T) {
	application, err := New(testConfig(t))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- application.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after context cancellation")
	}
}
