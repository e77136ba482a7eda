package service

import "errors"

// Registration failures. Every one of them is terminal for the request and is
// reported to the relying party as invalid_client_metadata.
var (
	ErrMalformedRequest      = errors.New("malformed registration request")
	ErrMissingScopes         = errors.New("registration request does not contain any scope values")
	ErrMissingOpenIDScope    = errors.New("registration request scopes do not contain openid")
	ErrMissingRedirectURI    = errors.New("registration request does not contain a redirect uri")
	ErrCredentialFailure     = errors.New("client credentials could not be generated")
	ErrPersistenceFailure    = errors.New("registered client could not be saved")
	ErrReconciliationFailure = errors.New("attribute release policy could not be reconciled")
)

var kinds = []struct {
	err  error
	name string
	// internal kinds only disclose the sentinel text.
	internal bool
}{
	{ErrMalformedRequest, "MalformedRequest", false},
	{ErrMissingScopes, "MissingScopes", false},
	{ErrMissingOpenIDScope, "MissingOpenIdScope", false},
	{ErrMissingRedirectURI, "MissingRedirectUri", false},
	{ErrCredentialFailure, "CredentialFailure", true},
	{ErrPersistenceFailure, "PersistenceFailure", true},
	{ErrReconciliationFailure, "ReconciliationFailure", true},
}

// ErrorKind names the failure class of err for logs and metrics.
func ErrorKind(err error) string {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return "Unknown"
}

// PublicMessage returns the message that may be echoed back to the relying
// party. Validation errors carry their detail; store and reconciler errors
// never leak driver internals.
func PublicMessage(err error) string {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			if k.internal {
				return k.err.Error()
			}
			return err.Error()
		}
	}
	return "registration failed"
}
