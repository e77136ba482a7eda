package domain

import (
	"math"
	"strings"
	"time"
)

// HighestPrecedence is the evaluation order given to dynamically registered
// clients so they are matched before statically configured services.
const HighestPrecedence = math.MinInt32

// SubjectStrategy selects how subject identifiers are issued to a client.
type SubjectStrategy string

const (
	// SubjectStrategyDefault issues the same global subject identifier to every client.
	SubjectStrategyDefault SubjectStrategy = "default"
	// SubjectStrategyPairwise issues a distinct subject identifier per sector.
	SubjectStrategyPairwise SubjectStrategy = "pairwise"
)

// SubjectStrategyFor returns the strategy implied by a requested subject_type.
// Only "pairwise" (any case) selects the pairwise strategy.
func SubjectStrategyFor(subjectType string) SubjectStrategy {
	if strings.EqualFold(strings.TrimSpace(subjectType), SubjectTypePairwise) {
		return SubjectStrategyPairwise
	}
	return SubjectStrategyDefault
}

// Grant and response types every dynamically registered client receives.
var (
	RegisteredGrantTypes    = []string{"authorization_code", "refresh_token"}
	RegisteredResponseTypes = []string{"code"}
)

type RegisteredClient struct {
	ClientID string
	// ClientSecret is only populated on the freshly provisioned record and is
	// never persisted. SecretHash is what the store keeps.
	ClientSecret string
	SecretHash   string

	Name                    string
	ServiceID               string
	Scopes                  []string
	SubjectType             string
	SubjectStrategy         SubjectStrategy
	SectorIdentifierURI     string
	JWKSURI                 string
	SignIDToken             bool
	LogoutURL               string
	Description             string
	TokenEndpointAuthMethod string
	ReleasedAttributes      []string
	DynamicallyRegistered   bool
	EvaluationOrder         int
	CreatedAt               time.Time
}

// IsPairwise reports whether the client receives pairwise subject identifiers.
func (c RegisteredClient) IsPairwise() bool {
	return c.SubjectStrategy == SubjectStrategyPairwise
}
