package http

import (
	"net/http"
	"slices"

	"github.com/aussiebroadwan/oidcreg/internal/registration/domain"
	"github.com/aussiebroadwan/oidcreg/internal/registration/service"
	"github.com/aussiebroadwan/oidcreg/pkg/httpx"
	"github.com/aussiebroadwan/oidcreg/pkg/oidcsdk"
)

// DiscoveryHandler godoc
//
//	@Summary		OpenID Provider Metadata
//	@Description	Publishes the registration endpoint and the metadata dynamically registered clients receive.
//	@Tags			Discovery
//	@Produce		json
//	@Success		200	{object}	oidcsdk.DiscoveryResponse
//	@Router			/oidc/.well-known/openid-configuration [get].
func DiscoveryHandler(issuer, registrationEndpoint string, scopes service.ScopePolicy) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, oidcsdk.DiscoveryResponse{
			Issuer:                 issuer,
			RegistrationEndpoint:   registrationEndpoint,
			ScopesSupported:        scopes.SupportedScopes(),
			SubjectTypesSupported:  []string{domain.SubjectTypePublic, domain.SubjectTypePairwise},
			ResponseTypesSupported: slices.Clone(domain.RegisteredResponseTypes),
			GrantTypesSupported:    slices.Clone(domain.RegisteredGrantTypes),
		})
	}
}
