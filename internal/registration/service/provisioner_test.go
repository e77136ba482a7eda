package service

import (
	"context"
	"strings"
	"testing"

	"github.com/aussiebroadwan/oidcreg/internal/registration/domain"
	"github.com/aussiebroadwan/oidcreg/internal/registration/store"
	"github.com/aussiebroadwan/oidcreg/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func validRequest() domain.RegistrationRequest {
	return domain.RegistrationRequest{
		ClientName:              "RP",
		RedirectURIs:            []string{"https://rp.example/cb", "https://rp.example/second"},
		Scopes:                  []string{"openid", "profile"},
		SubjectType:             "public",
		TokenEndpointAuthMethod: "client_secret_basic",
	}
}

func TestProvision(t *testing.T) {
	ctx := context.Background()

	t.Run("builds and persists the client", func(t *testing.T) {
		st := newTestStore(t)
		svc := newTestService(t, st)

		req := validRequest()
		req.PostLogoutRedirectURIs = []string{"https://rp.example/bye", "https://rp.example/bye2"}

		client, err := svc.Provision(ctx, req, testServerScopes)
		require.NoError(t, err)

		require.NotEmpty(t, client.ClientID)
		require.NotEmpty(t, client.ClientSecret)
		require.NotEqual(t, client.ClientID, client.ClientSecret)
		require.Equal(t, "https://rp.example/cb", client.ServiceID)
		require.Equal(t, []string{"openid", "profile"}, client.Scopes)
		require.Equal(t, "https://rp.example/bye,https://rp.example/bye2", client.LogoutURL)
		require.True(t, client.DynamicallyRegistered)
		require.Equal(t, domain.HighestPrecedence, client.EvaluationOrder)
		require.Equal(t, domain.SubjectStrategyDefault, client.SubjectStrategy)
		require.False(t, client.SignIDToken)
		require.Equal(t,
			"Dynamically registered service RP with grant types authorization_code,refresh_token "+
				"and with scopes openid,profile and response types code",
			client.Description)
		require.Contains(t, client.ReleasedAttributes, "preferred_username")
		require.False(t, client.CreatedAt.IsZero())

		stored, err := st.Clients().GetClientByID(ctx, client.ClientID)
		require.NoError(t, err)
		require.Empty(t, stored.ClientSecret, "plaintext secret must not be persisted")
		require.NoError(t, cryptox.VerifySecret(client.ClientSecret, stored.SecretHash))
		require.Equal(t, client.ReleasedAttributes, stored.ReleasedAttributes)
		require.Equal(t, client.Description, stored.Description)
	})

	t.Run("grants the intersection of requested and supported scopes", func(t *testing.T) {
		svc := newTestService(t, newTestStore(t))

		req := validRequest()
		req.Scopes = []string{"email", "admin", "openid"}

		client, err := svc.Provision(ctx, req, testServerScopes)
		require.NoError(t, err)
		require.Equal(t, []string{"openid", "email"}, client.Scopes)
	})

	t.Run("pairwise subject type selects pairwise strategy in any case", func(t *testing.T) {
		svc := newTestService(t, newTestStore(t))

		for _, st := range []string{"pairwise", "PAIRWISE", "PairWise"} {
			req := validRequest()
			req.SubjectType = st
			req.SectorIdentifierURI = "https://rp.example/sector.json"

			client, err := svc.Provision(ctx, req, testServerScopes)
			require.NoError(t, err)
			require.Equal(t, domain.SubjectStrategyPairwise, client.SubjectStrategy, st)
			require.True(t, client.IsPairwise())
			require.Equal(t, "https://rp.example/sector.json", client.SectorIdentifierURI)
		}

		for _, st := range []string{"public", "", "pair-wise", "other"} {
			req := validRequest()
			req.SubjectType = st

			client, err := svc.Provision(ctx, req, testServerScopes)
			require.NoError(t, err)
			require.Equal(t, domain.SubjectStrategyDefault, client.SubjectStrategy, st)
		}
	})

	t.Run("jwks uri enables id token signing", func(t *testing.T) {
		svc := newTestService(t, newTestStore(t))

		req := validRequest()
		req.JWKSURI = "https://rp.example/jwks.json"

		client, err := svc.Provision(ctx, req, testServerScopes)
		require.NoError(t, err)
		require.True(t, client.SignIDToken)
		require.Equal(t, "https://rp.example/jwks.json", client.JWKSURI)
	})

	t.Run("refuses requests without openid or redirect uris", func(t *testing.T) {
		st := newTestStore(t)
		svc := newTestService(t, st)

		req := validRequest()
		req.Scopes = []string{"profile"}
		_, err := svc.Provision(ctx, req, testServerScopes)
		require.ErrorIs(t, err, ErrMissingOpenIDScope)

		req = validRequest()
		req.RedirectURIs = nil
		_, err = svc.Provision(ctx, req, testServerScopes)
		require.ErrorIs(t, err, ErrMissingRedirectURI)

		all, err := st.Clients().ListClients(ctx)
		require.NoError(t, err)
		require.Empty(t, all)
	})

	t.Run("store failure is a persistence failure", func(t *testing.T) {
		fs := &failingStore{}
		svc := newTestService(t, fs)

		_, err := svc.Provision(ctx, validRequest(), testServerScopes)
		require.ErrorIs(t, err, ErrPersistenceFailure)
		require.Equal(t, 1, fs.Calls())
		require.NotContains(t, PublicMessage(err), "SQLITE_BUSY")
	})

	t.Run("duplicate client id is rejected by the store", func(t *testing.T) {
		st := newTestStore(t)
		svc := newTestService(t, st)
		svc.ClientIDs = fixedGenerator("same-client-id")

		_, err := svc.Provision(ctx, validRequest(), testServerScopes)
		require.NoError(t, err)

		_, err = svc.Provision(ctx, validRequest(), testServerScopes)
		require.ErrorIs(t, err, ErrPersistenceFailure)
		require.ErrorIs(t, err, store.ErrAlreadyExists)

		all, err := st.Clients().ListClients(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
	})

	t.Run("reconciliation failure persists nothing", func(t *testing.T) {
		st := newTestStore(t)
		svc := newTestService(t, st)
		svc.Reconciler = failingReconciler{}

		_, err := svc.Provision(ctx, validRequest(), testServerScopes)
		require.ErrorIs(t, err, ErrReconciliationFailure)

		all, err := st.Clients().ListClients(ctx)
		require.NoError(t, err)
		require.Empty(t, all)
	})

	t.Run("generator failures", func(t *testing.T) {
		svc := newTestService(t, &failingStore{})
		svc.ClientSecrets = brokenGenerator{}
		_, err := svc.Provision(ctx, validRequest(), testServerScopes)
		require.ErrorIs(t, err, ErrCredentialFailure)

		svc = newTestService(t, &failingStore{})
		svc.ClientIDs = fixedGenerator("x")
		svc.ClientSecrets = fixedGenerator("x")
		_, err = svc.Provision(ctx, validRequest(), testServerScopes)
		require.ErrorIs(t, err, ErrCredentialFailure)
	})
}

func TestDescribeIsDeterministic(t *testing.T) {
	t.Parallel()

	c := domain.RegisteredClient{Name: "RP", Scopes: []string{"openid", "email"}}
	require.Equal(t, describe(c), describe(c))
	require.True(t, strings.HasPrefix(describe(c), "Dynamically registered service RP "))
}
