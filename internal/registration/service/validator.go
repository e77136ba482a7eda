package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aussiebroadwan/oidcreg/internal/registration/domain"
	"github.com/aussiebroadwan/oidcreg/pkg/httpx"
	"github.com/aussiebroadwan/oidcreg/pkg/oidcsdk"
)

// ValidateRequest parses a raw registration body and checks it against the
// OIDC registration rules. It has no side effects.
func ValidateRequest(raw []byte) (domain.RegistrationRequest, error) {
	body, err := decodeRequest(raw)
	if err != nil {
		return domain.RegistrationRequest{}, err
	}

	req := domain.RegistrationRequest{
		ClientName:              strings.TrimSpace(body.ClientName),
		RedirectURIs:            body.RedirectURIs,
		Scopes:                  mergeScopes(body.Scope, body.Scopes),
		SubjectType:             strings.TrimSpace(body.SubjectType),
		SectorIdentifierURI:     strings.TrimSpace(body.SectorIdentifierURI),
		JWKSURI:                 strings.TrimSpace(body.JWKSURI),
		PostLogoutRedirectURIs:  body.PostLogoutRedirectURIs,
		TokenEndpointAuthMethod: strings.TrimSpace(body.TokenEndpointAuthMethod),
	}

	if len(req.Scopes) == 0 {
		return domain.RegistrationRequest{}, ErrMissingScopes
	}
	if !req.HasScope(domain.ScopeOpenID) {
		return domain.RegistrationRequest{}, ErrMissingOpenIDScope
	}
	if len(req.RedirectURIs) == 0 {
		return domain.RegistrationRequest{}, ErrMissingRedirectURI
	}

	for _, u := range req.RedirectURIs {
		if err := checkURI("redirect_uris", u); err != nil {
			return domain.RegistrationRequest{}, err
		}
	}
	for _, u := range req.PostLogoutRedirectURIs {
		if err := checkURI("post_logout_redirect_uris", u); err != nil {
			return domain.RegistrationRequest{}, err
		}
	}
	if req.JWKSURI != "" {
		if err := checkURI("jwks_uri", req.JWKSURI); err != nil {
			return domain.RegistrationRequest{}, err
		}
	}
	if req.SectorIdentifierURI != "" {
		if err := checkURI("sector_identifier_uri", req.SectorIdentifierURI); err != nil {
			return domain.RegistrationRequest{}, err
		}
	}

	return req, nil
}

func decodeRequest(raw []byte) (oidcsdk.RegistrationRequest, error) {
	var body oidcsdk.RegistrationRequest

	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(&body); err != nil {
		if errors.Is(err, io.EOF) {
			return body, fmt.Errorf("%w: empty body", ErrMalformedRequest)
		}
		return body, fmt.Errorf("%w: %v", ErrMalformedRequest, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return body, fmt.Errorf("%w: unexpected data after JSON object", ErrMalformedRequest)
	}
	return body, nil
}

// mergeScopes combines the space-delimited scope string and the scopes array,
// keeping first-seen order and dropping blanks and duplicates.
func mergeScopes(scope string, scopes []string) []string {
	var merged []string
	seen := make(map[string]struct{})

	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		merged = append(merged, s)
	}

	for _, s := range httpx.ParseSpaceDelimitedFields(scope) {
		add(s)
	}
	for _, s := range scopes {
		add(s)
	}
	return merged
}

func checkURI(field, raw string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("%w: %s contains a blank uri", ErrMalformedRequest, field)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %s contains an invalid uri %q", ErrMalformedRequest, field, raw)
	}

	switch strings.ToLower(u.Scheme) {
	case "":
		return fmt.Errorf("%w: %s must contain absolute uris, got %q", ErrMalformedRequest, field, raw)
	case "javascript", "data", "vbscript", "file":
		return fmt.Errorf("%w: %s uses a forbidden scheme %q", ErrMalformedRequest, field, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: %s must contain a host, got %q", ErrMalformedRequest, field, raw)
	}
	if u.Fragment != "" || strings.Contains(raw, "#") {
		return fmt.Errorf("%w: %s must not contain a fragment, got %q", ErrMalformedRequest, field, raw)
	}
	return nil
}
