package oidcsdk_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/oidcreg/pkg/oidcsdk"
	"github.com/stretchr/testify/require"
)

func TestClientRegister(t *testing.T) {
	t.Run("decodes created response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/oidc/register", r.URL.Path)
			require.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var req oidcsdk.RegistrationRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Equal(t, []string{"https://rp.example/cb"}, req.RedirectURIs)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(oidcsdk.RegistrationResponse{
				ClientID:     "id",
				ClientSecret: "secret",
				RedirectURIs: req.RedirectURIs,
			})
		}))
		defer srv.Close()

		c := oidcsdk.NewClient(srv.URL, "/oidc/")
		resp, err := c.Register(context.Background(), oidcsdk.RegistrationRequest{
			RedirectURIs: []string{"https://rp.example/cb"},
			Scope:        "openid",
		})
		require.NoError(t, err)
		require.Equal(t, "id", resp.ClientID)
		require.Equal(t, "secret", resp.ClientSecret)
	})

	t.Run("returns typed registration error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			oidcsdk.NewRegistrationError("scopes do not contain openid").WriteError(w)
		}))
		defer srv.Close()

		c := oidcsdk.NewClient(srv.URL, "oidc")
		_, err := c.Register(context.Background(), oidcsdk.RegistrationRequest{})

		var regErr *oidcsdk.RegistrationError
		require.True(t, errors.As(err, &regErr))
		require.Equal(t, http.StatusBadRequest, regErr.StatusCode)
		require.Equal(t, oidcsdk.ErrorCodeInvalidClientMetadata, regErr.Code)
		require.Contains(t, regErr.Message, "openid")
	})

	t.Run("falls back to status text", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		_, err := oidcsdk.NewClient(srv.URL, "oidc").Register(context.Background(), oidcsdk.RegistrationRequest{})

		var regErr *oidcsdk.RegistrationError
		require.ErrorAs(t, err, &regErr)
		require.Equal(t, http.StatusBadGateway, regErr.StatusCode)
		require.Equal(t, "server_error", regErr.Code)
	})
}

func TestRegistrationErrorWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	oidcsdk.NewRegistrationError("bad").WriteError(rec)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, map[string]string{
		"error":         "invalid_client_metadata",
		"error_message": "bad",
	}, body)
}
