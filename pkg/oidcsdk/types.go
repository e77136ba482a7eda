package oidcsdk

// ============================================================================
// Registration Types (OpenID Connect Dynamic Client Registration 1.0)
// ============================================================================

// RegistrationRequest is the JSON body POSTed to the registration endpoint.
// Scopes may be sent as the RFC 7591 space-delimited "scope" string, as a
// "scopes" array, or both; the server merges them.
type RegistrationRequest struct {
	ClientName              string   `json:"client_name,omitempty"`
	RedirectURIs            []string `json:"redirect_uris"`
	Scope                   string   `json:"scope,omitempty"`
	Scopes                  []string `json:"scopes,omitempty"`
	SubjectType             string   `json:"subject_type,omitempty"`
	SectorIdentifierURI     string   `json:"sector_identifier_uri,omitempty"`
	JWKSURI                 string   `json:"jwks_uri,omitempty"`
	PostLogoutRedirectURIs  []string `json:"post_logout_redirect_uris,omitempty"`
	TokenEndpointAuthMethod string   `json:"token_endpoint_auth_method,omitempty"`
}

// RegistrationResponse is returned with 201 Created on successful registration.
// ClientSecret is only ever disclosed here.
type RegistrationResponse struct {
	ApplicationType         string   `json:"application_type"`
	ClientID                string   `json:"client_id"`
	ClientSecret            string   `json:"client_secret"`
	SubjectType             string   `json:"subject_type"`
	TokenEndpointAuthMethod string   `json:"token_endpoint_auth_method"`
	ClientName              string   `json:"client_name"`
	GrantTypes              []string `json:"grant_types"`
	RedirectURIs            []string `json:"redirect_uris"`
	ResponseTypes           []string `json:"response_types"`
}

// ErrorResponse is the two-field body of a rejected registration.
type ErrorResponse struct {
	Error        string `json:"error"`
	ErrorMessage string `json:"error_message"`
}

// ============================================================================
// Discovery & Health
// ============================================================================

// DiscoveryResponse is the subset of OpenID Provider Metadata this service publishes.
type DiscoveryResponse struct {
	Issuer                 string   `json:"issuer"`
	RegistrationEndpoint   string   `json:"registration_endpoint"`
	ScopesSupported        []string `json:"scopes_supported"`
	SubjectTypesSupported  []string `json:"subject_types_supported"`
	ResponseTypesSupported []string `json:"response_types_supported"`
	GrantTypesSupported    []string `json:"grant_types_supported"`
}

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results for critical dependencies (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks represents the status of critical service dependencies.
type HealthChecks struct {
	// Database indicates the client store connection status
	Database string `json:"database"`
}
