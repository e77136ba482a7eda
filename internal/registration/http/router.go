package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aussiebroadwan/oidcreg/internal/registration/service"
	"github.com/aussiebroadwan/oidcreg/internal/registration/store"
	"github.com/aussiebroadwan/oidcreg/pkg/httpx"
	"github.com/aussiebroadwan/oidcreg/pkg/slogx"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/aussiebroadwan/oidcreg/api/oidcreg" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// DefaultMaxRequestBytes caps registration bodies when MaxRequestBytes is unset.
const DefaultMaxRequestBytes = 64 << 10

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	issuer       string
	basePath     string
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	RegistrationService *service.RegistrationService
	ScopePolicy         service.ScopePolicy

	// CORSOrigins lists browser origins allowed to call the OIDC endpoints.
	CORSOrigins     []string
	MaxRequestBytes int64
	RegisterLimit   httpx.RateLimitConfig
}

func NewRouter(
	issuer, basePath, buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:             http.NewServeMux(),
		issuer:          strings.TrimRight(issuer, "/"),
		basePath:        strings.Trim(basePath, "/"),
		buildVersion:    buildVersion,
		startTime:       time.Now(),
		store:           st,
		logger:          logger,
		MaxRequestBytes: DefaultMaxRequestBytes,
		RegisterLimit:   httpx.StrictLimit,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerOIDC()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			OIDC Dynamic Client Registration API
//	@version		0.1.0
//	@description	OpenID Connect Dynamic Client Registration 1.0 endpoint. Relying parties POST their
//	@description	metadata and receive a client_id and client_secret. Rejections use the
//	@description	invalid_client_metadata error envelope.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/oidcreg
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// Path joins elem onto the configured OIDC base path.
func (r *Router) Path(elem string) string {
	if r.basePath == "" {
		return "/" + elem
	}
	return "/" + r.basePath + "/" + elem
}

// RegistrationEndpoint is the absolute URL relying parties register at.
func (r *Router) RegistrationEndpoint() string {
	return r.issuer + r.Path("register")
}

func (r *Router) registerOIDC() {
	registerHandler := &RegisterHandler{RegistrationService: r.RegistrationService}

	// POST /{base}/register - strict rate limit by IP (unauthenticated client creation)
	register := httpx.Chain(registerHandler,
		httpx.CORS(r.CORSOrigins, http.MethodPost),
		httpx.RateLimitByIP(r.RegisterLimit),
		httpx.LimitBody(r.MaxRequestBytes),
	)
	r.Mux.Handle("POST "+r.Path("register"), register)
	r.Mux.Handle("OPTIONS "+r.Path("register"), register)

	// GET /{base}/.well-known/openid-configuration - public endpoint with high limit
	discovery := httpx.Chain(DiscoveryHandler(r.issuer, r.RegistrationEndpoint(), r.ScopePolicy),
		httpx.CORS(r.CORSOrigins, http.MethodGet),
		httpx.RateLimitByIP(httpx.PublicLimit),
	)
	r.Mux.Handle("GET "+r.Path(".well-known/openid-configuration"), discovery)
	r.Mux.Handle("OPTIONS "+r.Path(".well-known/openid-configuration"), discovery)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
	r.Mux.Handle("GET /metrics", promhttp.Handler())
}
