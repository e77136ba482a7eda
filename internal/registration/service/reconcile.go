package service

import (
	"context"
	"fmt"
	"maps"

	"github.com/aussiebroadwan/oidcreg/internal/registration/domain"
)

// ScopeReconciler adjusts the attribute release policy of a client once its
// scopes are final. It runs before the client is saved.
type ScopeReconciler interface {
	Reconcile(ctx context.Context, client *domain.RegisteredClient) error
}

// StandardScopeClaims maps the OpenID Connect standard scopes to the claims
// they release (OIDC Core 5.4).
var StandardScopeClaims = map[string][]string{
	domain.ScopeOpenID: {},
	"offline_access":   {},
	"profile": {
		"name", "family_name", "given_name", "middle_name", "nickname",
		"preferred_username", "profile", "picture", "website", "gender",
		"birthdate", "zoneinfo", "locale", "updated_at",
	},
	"email":   {"email", "email_verified"},
	"address": {"address"},
	"phone":   {"phone_number", "phone_number_verified"},
}

// ClaimReconciler releases claims per scope using a fixed rule table.
// A granted scope without a rule is an error, so a custom scope cannot be
// granted unless someone decided what it releases.
type ClaimReconciler struct {
	Rules map[string][]string
}

// NewClaimReconciler returns a reconciler with the standard scope rules plus
// any extra rules. Extra rules replace standard ones with the same scope.
func NewClaimReconciler(extra map[string][]string) *ClaimReconciler {
	rules := maps.Clone(StandardScopeClaims)
	maps.Copy(rules, extra)
	return &ClaimReconciler{Rules: rules}
}

func (r *ClaimReconciler) Reconcile(_ context.Context, client *domain.RegisteredClient) error {
	var released []string
	seen := make(map[string]struct{})

	for _, scope := range client.Scopes {
		claims, ok := r.Rules[scope]
		if !ok {
			return fmt.Errorf("no attribute release rule for scope %q", scope)
		}
		for _, c := range claims {
			if _, dup := seen[c]; dup {
				continue
			}
			seen[c] = struct{}{}
			released = append(released, c)
		}
	}

	client.ReleasedAttributes = released
	return nil
}
