package service

import (
	"testing"

	"github.com/aussiebroadwan/oidcreg/internal/registration/domain"
	"github.com/stretchr/testify/require"
)

func TestBuildResponse(t *testing.T) {
	t.Parallel()

	req := validRequest()
	client := domain.RegisteredClient{
		ClientID:        "id",
		ClientSecret:    "secret",
		Name:            "RP",
		ServiceID:       req.RedirectURIs[0],
		SubjectType:     domain.SubjectTypePairwise,
		SubjectStrategy: domain.SubjectStrategyPairwise,
	}

	resp := BuildResponse(req, client)
	require.Equal(t, "web", resp.ApplicationType)
	require.Equal(t, "id", resp.ClientID)
	require.Equal(t, "secret", resp.ClientSecret)
	require.Equal(t, "public", resp.SubjectType)
	require.Equal(t, "client_secret_basic", resp.TokenEndpointAuthMethod)
	require.Equal(t, "RP", resp.ClientName)
	require.Equal(t, []string{"authorization_code", "refresh_token"}, resp.GrantTypes)
	require.Equal(t, []string{"https://rp.example/cb"}, resp.RedirectURIs)
	require.Equal(t, []string{"code"}, resp.ResponseTypes)

	resp.GrantTypes[0] = "implicit"
	require.Equal(t, "authorization_code", domain.RegisteredGrantTypes[0])
}
