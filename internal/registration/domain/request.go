package domain

// Subject types a relying party may ask for.
const (
	SubjectTypePublic   = "public"
	SubjectTypePairwise = "pairwise"
)

// ScopeOpenID must be present in every OIDC registration request.
const ScopeOpenID = "openid"

// RegistrationRequest is a parsed and validated dynamic registration request.
// RedirectURIs is never empty and keeps the order the relying party sent.
type RegistrationRequest struct {
	ClientName              string
	RedirectURIs            []string
	Scopes                  []string
	SubjectType             string
	SectorIdentifierURI     string
	JWKSURI                 string
	PostLogoutRedirectURIs  []string
	TokenEndpointAuthMethod string
}

// HasScope reports whether scope was requested.
func (r RegistrationRequest) HasScope(scope string) bool {
	for _, s := range r.Scopes {
		if s == scope {
			return true
		}
	}
	return false
}
