package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/oidcreg/internal/registration/domain"
	"github.com/aussiebroadwan/oidcreg/internal/registration/store"
	"github.com/aussiebroadwan/oidcreg/pkg/cryptox"
	"github.com/aussiebroadwan/oidcreg/pkg/slogx"
)

// RegistrationService turns validated registration requests into persisted
// clients. It holds no per-request state and is safe for concurrent use as
// long as its collaborators are.
type RegistrationService struct {
	Store         store.Store
	Scopes        ScopePolicy
	Reconciler    ScopeReconciler
	ClientIDs     CredentialGenerator
	ClientSecrets CredentialGenerator
}

// Provision builds a new client for req, grants it the scopes both req and
// serverScopes contain, reconciles its attribute release and saves it.
// The returned client carries the plaintext secret; the store only holds its
// hash. Nothing is persisted when an error is returned.
func (s *RegistrationService) Provision(
	ctx context.Context,
	req domain.RegistrationRequest,
	serverScopes []string,
) (domain.RegisteredClient, error) {
	l := slogx.FromContext(ctx)

	if len(req.RedirectURIs) == 0 {
		return domain.RegisteredClient{}, ErrMissingRedirectURI
	}
	if !req.HasScope(domain.ScopeOpenID) {
		return domain.RegisteredClient{}, ErrMissingOpenIDScope
	}

	clientID, secret, err := s.newCredentials()
	if err != nil {
		return domain.RegisteredClient{}, err
	}

	secretHash, err := cryptox.HashSecret(secret)
	if err != nil {
		return domain.RegisteredClient{}, fmt.Errorf("%w: hash secret: %v", ErrCredentialFailure, err)
	}

	scopes := IntersectScopes(serverScopes, req.Scopes)
	if len(scopes) < len(req.Scopes) {
		scopesNarrowed.Inc()
		l.Info("registration scopes narrowed by server policy",
			"requested", req.Scopes,
			"granted", scopes,
		)
	}

	subjectType := strings.ToLower(req.SubjectType)
	if subjectType == "" {
		subjectType = domain.SubjectTypePublic
	}

	client := domain.RegisteredClient{
		ClientID:                clientID,
		ClientSecret:            secret,
		SecretHash:              secretHash,
		Name:                    req.ClientName,
		ServiceID:               req.RedirectURIs[0],
		Scopes:                  scopes,
		SubjectType:             subjectType,
		SubjectStrategy:         domain.SubjectStrategyFor(req.SubjectType),
		SectorIdentifierURI:     req.SectorIdentifierURI,
		LogoutURL:               strings.Join(req.PostLogoutRedirectURIs, ","),
		TokenEndpointAuthMethod: req.TokenEndpointAuthMethod,
		DynamicallyRegistered:   true,
		EvaluationOrder:         domain.HighestPrecedence,
		CreatedAt:               time.Now().UTC(),
	}
	if req.JWKSURI != "" {
		client.JWKSURI = req.JWKSURI
		client.SignIDToken = true
	}
	client.Description = describe(client)

	if err := s.Reconciler.Reconcile(ctx, &client); err != nil {
		return domain.RegisteredClient{}, fmt.Errorf("%w: %w", ErrReconciliationFailure, err)
	}

	saved, err := s.save(ctx, client)
	if err != nil {
		return domain.RegisteredClient{}, fmt.Errorf("%w: %w", ErrPersistenceFailure, err)
	}
	saved.ClientSecret = secret

	l.Info("client registered",
		"client_id", saved.ClientID,
		"service_id", saved.ServiceID,
		"scopes", saved.Scopes,
		"subject_strategy", saved.SubjectStrategy,
	)
	return saved, nil
}

func (s *RegistrationService) newCredentials() (clientID, secret string, err error) {
	clientID, err = s.ClientIDs.Next()
	if err != nil {
		return "", "", fmt.Errorf("%w: client id: %v", ErrCredentialFailure, err)
	}
	secret, err = s.ClientSecrets.Next()
	if err != nil {
		return "", "", fmt.Errorf("%w: client secret: %v", ErrCredentialFailure, err)
	}
	if clientID == "" || secret == "" || clientID == secret {
		return "", "", fmt.Errorf("%w: generators returned unusable output", ErrCredentialFailure)
	}
	return clientID, secret, nil
}

// save inserts the client and reads it back inside one transaction.
func (s *RegistrationService) save(ctx context.Context, client domain.RegisteredClient) (domain.RegisteredClient, error) {
	var saved domain.RegisteredClient
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Clients().SaveClient(ctx, client); err != nil {
			return err
		}
		got, err := tx.Clients().GetClientByID(ctx, client.ClientID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("client %s missing after insert", client.ClientID)
			}
			return err
		}
		saved = got
		return nil
	})
	return saved, err
}

// describe renders the administrative description of a registered client.
func describe(c domain.RegisteredClient) string {
	return fmt.Sprintf(
		"Dynamically registered service %s with grant types %s and with scopes %s and response types %s",
		c.Name,
		strings.Join(domain.RegisteredGrantTypes, ","),
		strings.Join(c.Scopes, ","),
		strings.Join(domain.RegisteredResponseTypes, ","),
	)
}
