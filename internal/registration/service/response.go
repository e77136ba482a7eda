package service

import (
	"slices"

	"github.com/aussiebroadwan/oidcreg/internal/registration/domain"
	"github.com/aussiebroadwan/oidcreg/pkg/oidcsdk"
)

// ApplicationTypeWeb is the only application type this server registers.
const ApplicationTypeWeb = "web"

// BuildResponse projects a provisioned client into the registration response.
// The response always reports the public subject type; pairwise identifiers
// are an internal issuing strategy.
func BuildResponse(req domain.RegistrationRequest, client domain.RegisteredClient) oidcsdk.RegistrationResponse {
	return oidcsdk.RegistrationResponse{
		ApplicationType:         ApplicationTypeWeb,
		ClientID:                client.ClientID,
		ClientSecret:            client.ClientSecret,
		SubjectType:             domain.SubjectTypePublic,
		TokenEndpointAuthMethod: req.TokenEndpointAuthMethod,
		ClientName:              client.Name,
		GrantTypes:              slices.Clone(domain.RegisteredGrantTypes),
		RedirectURIs:            []string{client.ServiceID},
		ResponseTypes:           slices.Clone(domain.RegisteredResponseTypes),
	}
}
