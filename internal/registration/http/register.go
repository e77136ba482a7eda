package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/aussiebroadwan/oidcreg/internal/registration/service"
	"github.com/aussiebroadwan/oidcreg/pkg/httpx"
	"github.com/aussiebroadwan/oidcreg/pkg/oidcsdk"
	"github.com/aussiebroadwan/oidcreg/pkg/slogx"
)

// RegisterHandler handles OIDC dynamic client registration.
type RegisterHandler struct {
	RegistrationService *service.RegistrationService
}

// ServeHTTP handles POST /{base}/register
//
//	@Summary		Register Client
//	@Description	Registers a relying party (OpenID Connect Dynamic Client Registration 1.0).
//	@Description	Scopes may be sent as a space-delimited "scope" string, a "scopes" array or both; "openid" is required.
//	@Description	Unsupported scopes are dropped without error. The client secret is only ever returned here.
//	@Tags			Registration
//	@Accept			json
//	@Produce		json
//	@Param			request	body		oidcsdk.RegistrationRequest		true	"Client metadata"
//	@Success		201		{object}	oidcsdk.RegistrationResponse	"client_id, client_secret and registered metadata"
//	@Failure		400		{object}	oidcsdk.ErrorResponse			"error, error_message"
//	@Failure		429		{object}	map[string]string				"rate limit exceeded"
//	@Router			/oidc/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	// Every failure, including an unexpected panic further down, ends as a 400 envelope.
	defer func() {
		if rec := recover(); rec != nil {
			log.Error("registration panicked", "panic", fmt.Sprint(rec))
			oidcsdk.NewRegistrationError("registration failed").WriteError(w)
		}
	}()

	if !httpx.IsJSONContentType(r.Header.Get("Content-Type")) {
		log.Warn("registration rejected",
			"kind", service.ErrorKind(service.ErrMalformedRequest),
			"content_type", r.Header.Get("Content-Type"),
		)
		oidcsdk.NewRegistrationError(service.ErrMalformedRequest.Error() + ": content type must be application/json").WriteError(w)
		return
	}

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		msg := service.ErrMalformedRequest.Error() + ": unreadable body"
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			msg = fmt.Sprintf("%s: body exceeds %d bytes", service.ErrMalformedRequest, tooLarge.Limit)
		}
		log.Warn("registration rejected",
			"kind", service.ErrorKind(service.ErrMalformedRequest),
			"error", err,
		)
		oidcsdk.NewRegistrationError(msg).WriteError(w)
		return
	}

	resp, err := h.RegistrationService.Register(ctx, raw)
	if err != nil {
		oidcsdk.NewRegistrationError(service.PublicMessage(err)).WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, resp)
}
