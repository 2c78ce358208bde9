package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/lumenart/credits/internal/credits/service"
	"github.com/lumenart/credits/internal/credits/store"
	"github.com/lumenart/credits/pkg/httpx"
	"github.com/lumenart/credits/pkg/jwtx"
	"github.com/lumenart/credits/pkg/slogx"

	_ "github.com/lumenart/credits/api/credits" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier       jwtx.Verifier
	serviceKeyHash string
	buildVersion   string
	startTime      time.Time
	logger         *slog.Logger

	store         store.Store
	LedgerService *service.LedgerService
	InviteService *service.InviteService
	UserService   *service.UserService
}

func NewRouter(
	verifier jwtx.Verifier,
	serviceKeyHash string,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:            http.NewServeMux(),
		verifier:       verifier,
		serviceKeyHash: serviceKeyHash,
		buildVersion:   buildVersion,
		startTime:      time.Now(),
		store:          st,
		logger:         logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerCredits()
	r.registerAdmin()
	r.registerInvites()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			LumenArt Credits Service API
//	@version		0.1.0
//	@description	Credit ledger and consumption engine for the LumenArt image-generation platform.
//	@description
//	@description				Users spend credits on generation jobs; credits arrive by purchase, admin grant,
//	@description				or invite-code redemption. All mutating endpoints are atomic: a failed call
//	@description				leaves the ledger untouched.
//
//	@contact.name				LumenArt Platform Team
//	@contact.url				https://github.com/lumenart/credits
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerCredits() {
	consumeHandler := &ConsumeHandler{Ledger: r.LedgerService}
	balanceHandler := &BalanceHandler{Ledger: r.LedgerService}

	// POST /credits/consume - the hot path; moderate per-user limit so one
	// misbehaving client can't monopolize the ledger lock
	r.Mux.Handle("POST /v1/credits/consume",
		httpx.Chain(consumeHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope("credits:spend"),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// GET /credits/balance and /credits/limit - cheap reads, lenient limit
	r.Mux.Handle("GET /v1/credits/balance",
		httpx.Chain(http.HandlerFunc(balanceHandler.HandleBalance),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope("credits:read", "credits:spend"),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /v1/credits/limit",
		httpx.Chain(http.HandlerFunc(balanceHandler.HandleLimit),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope("credits:read", "credits:spend"),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerAdmin() {
	creditsHandler := &AdminCreditsHandler{Ledger: r.LedgerService}
	usersHandler := &AdminUsersHandler{Users: r.UserService}

	// POST /admin/credits - issuance; the billing pipeline authenticates
	// with a service key instead of a user token
	r.Mux.Handle("POST /v1/admin/credits",
		httpx.Chain(creditsHandler,
			httpx.AuthnOrServiceKey(r.verifier, r.serviceKeyHash),
			httpx.RequireAnyScope("admin:write"),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("POST /v1/admin/users",
		httpx.Chain(http.HandlerFunc(usersHandler.HandleRegister),
			httpx.AuthnOrServiceKey(r.verifier, r.serviceKeyHash),
			httpx.RequireAnyScope("admin:write"),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/admin/users/{id}",
		httpx.Chain(http.HandlerFunc(usersHandler.HandleGet),
			httpx.AuthnOrServiceKey(r.verifier, r.serviceKeyHash),
			httpx.RequireAnyScope("admin:read", "admin:write"),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerInvites() {
	adminHandler := &InviteAdminHandler{Invites: r.InviteService}
	redeemHandler := &InviteRedeemHandler{Invites: r.InviteService}

	r.Mux.Handle("POST /v1/invites",
		httpx.Chain(http.HandlerFunc(adminHandler.HandleCreate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope("admin:write"),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/invites",
		httpx.Chain(http.HandlerFunc(adminHandler.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope("admin:read", "admin:write"),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/invites/{code}/analytics",
		httpx.Chain(http.HandlerFunc(adminHandler.HandleAnalytics),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope("admin:read", "admin:write"),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /v1/invites/{code}/deactivate",
		httpx.Chain(http.HandlerFunc(adminHandler.HandleDeactivate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireAnyScope("admin:write"),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// Validation is cheap and users poke at codes; redemption is strict so
	// nobody brute-forces the code space
	r.Mux.Handle("POST /v1/invites/validate",
		httpx.Chain(http.HandlerFunc(redeemHandler.HandleValidate),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("POST /v1/invites/redeem",
		httpx.Chain(http.HandlerFunc(redeemHandler.HandleRedeem),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
