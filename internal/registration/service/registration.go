package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/oidcreg/pkg/oidcsdk"
	"github.com/aussiebroadwan/oidcreg/pkg/slogx"
)

// Register runs the full registration pipeline over a raw request body:
// validate, provision against the configured scope policy, build the
// response. Errors belong to the taxonomy in errors.go; use PublicMessage to
// render them for the relying party.
func (s *RegistrationService) Register(ctx context.Context, raw []byte) (oidcsdk.RegistrationResponse, error) {
	start := time.Now()
	defer func() { registrationDuration.Observe(time.Since(start).Seconds()) }()

	req, err := ValidateRequest(raw)
	if err != nil {
		s.reject(ctx, err, raw)
		return oidcsdk.RegistrationResponse{}, err
	}

	client, err := s.Provision(ctx, req, s.Scopes.SupportedScopes())
	if err != nil {
		s.reject(ctx, err, raw)
		return oidcsdk.RegistrationResponse{}, err
	}

	registrationsTotal.WithLabelValues("created").Inc()
	return BuildResponse(req, client), nil
}

// reject records a failed registration with enough of the request to audit
// it. The body is summarised, never logged verbatim.
func (s *RegistrationService) reject(ctx context.Context, err error, raw []byte) {
	kind := ErrorKind(err)
	registrationsTotal.WithLabelValues(kind).Inc()

	// Best effort: a malformed body yields an empty summary.
	var summary oidcsdk.RegistrationRequest
	_ = json.Unmarshal(raw, &summary)

	level := slog.LevelWarn
	switch kind {
	case "PersistenceFailure", "ReconciliationFailure", "CredentialFailure", "Unknown":
		level = slog.LevelError
	}

	slogx.FromContext(ctx).Log(ctx, level, "registration rejected",
		"kind", kind,
		"error", err,
		"client_name", summary.ClientName,
		"redirect_uri_count", len(summary.RedirectURIs),
		"scope", summary.Scope,
		"scopes", summary.Scopes,
		"subject_type", summary.SubjectType,
		"body_bytes", len(raw),
	)
}
