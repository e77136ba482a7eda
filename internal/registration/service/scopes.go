package service

import "slices"

// ScopePolicy lists the scopes this server is willing to grant to a
// dynamically registered client. Order is significant: granted scopes are
// reported in policy order.
type ScopePolicy interface {
	SupportedScopes() []string
}

// StaticScopePolicy is a fixed, configuration-driven ScopePolicy.
type StaticScopePolicy []string

func (p StaticScopePolicy) SupportedScopes() []string { return slices.Clone(p) }

// IntersectScopes returns the scopes present in both lists, in the order
// they appear in supported. Unsupported requested scopes are dropped without
// error.
func IntersectScopes(supported, requested []string) []string {
	want := make(map[string]struct{}, len(requested))
	for _, s := range requested {
		want[s] = struct{}{}
	}

	granted := make([]string, 0, len(supported))
	for _, s := range supported {
		if _, ok := want[s]; !ok {
			continue
		}
		if slices.Contains(granted, s) {
			continue
		}
		granted = append(granted, s)
	}
	return granted
}
