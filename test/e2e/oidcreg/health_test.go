//go:build e2e

package oidcreg_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestReadyzEndpoint verifies the readiness check reports the client store as healthy.
func TestReadyzEndpoint(t *testing.T) {
	client := setupContainer(t)

	health, err := client.GetReadiness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Database)
}

// TestDiscoveryEndpoint verifies the provider metadata advertises the registration endpoint.
func TestDiscoveryEndpoint(t *testing.T) {
	client := setupContainer(t)

	doc, err := client.Discover(t.Context())
	require.NoError(t, err)
	require.Equal(t, "http://localhost:8080/oidc/register", doc.RegistrationEndpoint)
	require.Equal(t, []string{"openid", "profile", "email"}, doc.ScopesSupported)
	require.Contains(t, doc.SubjectTypesSupported, "pairwise")
}
