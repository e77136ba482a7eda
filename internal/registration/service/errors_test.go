package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorKindAndPublicMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		kind string
		msg  string
	}{
		{fmt.Errorf("%w: unexpected EOF", ErrMalformedRequest), "MalformedRequest", "malformed registration request: unexpected EOF"},
		{ErrMissingScopes, "MissingScopes", ErrMissingScopes.Error()},
		{ErrMissingOpenIDScope, "MissingOpenIdScope", "registration request scopes do not contain openid"},
		{ErrMissingRedirectURI, "MissingRedirectUri", ErrMissingRedirectURI.Error()},
		{fmt.Errorf("%w: no such table: registered_clients", ErrPersistenceFailure), "PersistenceFailure", ErrPersistenceFailure.Error()},
		{fmt.Errorf("%w: ldap down", ErrReconciliationFailure), "ReconciliationFailure", ErrReconciliationFailure.Error()},
		{fmt.Errorf("%w: entropy", ErrCredentialFailure), "CredentialFailure", ErrCredentialFailure.Error()},
		{errors.New("boom"), "Unknown", "registration failed"},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			require.Equal(t, tt.kind, ErrorKind(tt.err))
			require.Equal(t, tt.msg, PublicMessage(tt.err))
		})
	}
}
