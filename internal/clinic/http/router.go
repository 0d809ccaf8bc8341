package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/clinic/internal/clinic/service"
	"github.com/aussiebroadwan/clinic/internal/clinic/store"
	"github.com/aussiebroadwan/clinic/pkg/httpx"
	"github.com/aussiebroadwan/clinic/pkg/jwtx"
	"github.com/aussiebroadwan/clinic/pkg/slogx"
	"github.com/go-chi/cors"

	_ "github.com/aussiebroadwan/clinic/api/clinic" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// RateLimits groups the limiter profiles used per route class.
type RateLimits struct {
	Auth  httpx.RateLimitConfig // signup, login
	Write httpx.RateLimitConfig // booking changes, logout
	Read  httpx.RateLimitConfig // listing, me, availability
	Probe httpx.RateLimitConfig // health checks
}

// DefaultRateLimits uses the shared httpx profiles, which honour the
// RATELIMIT_* environment overrides.
func DefaultRateLimits() RateLimits {
	return RateLimits{
		Auth:  httpx.StrictLimit,
		Write: httpx.ModerateLimit,
		Read:  httpx.LenientLimit,
		Probe: httpx.PublicLimit,
	}
}

// Options are the router settings that come from configuration.
type Options struct {
	BuildVersion   string
	AllowedOrigins []string
	Cookie         CookieConfig
	Debug          bool // include error detail in responses
	Limits         RateLimits
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys      *jwtx.KeySet
	opts      Options
	startTime time.Time
	logger    *slog.Logger

	store          store.Store
	AuthService    *service.AuthService
	BookingService *service.BookingService
}

func NewRouter(keys *jwtx.KeySet, st store.Store, logger *slog.Logger, opts Options) *Router {
	if opts.Cookie.Name == "" {
		opts.Cookie.Name = DefaultCookieName
	}
	if opts.Limits == (RateLimits{}) {
		opts.Limits = DefaultRateLimits()
	}

	r := &Router{
		Mux:       http.NewServeMux(),
		keys:      keys,
		opts:      opts,
		startTime: time.Now(),
		store:     st,
		logger:    logger,
	}

	// Set default middleware chain, request logging outermost so CORS
	// rejections are logged too.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		cors.Handler(cors.Options{
			AllowedOrigins:   opts.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", slogx.RequestIDHeader},
			ExposedHeaders:   []string{slogx.RequestIDHeader, "Retry-After"},
			AllowCredentials: true,
			MaxAge:           300,
		}),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerAppointments()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Clinic Booking API
//	@version		0.1.0
//	@description	Appointment booking for a single clinic. Users sign up, sign in and manage their own appointments.
//	@description
//	@description				The identity token is an EdDSA-signed JWT delivered in an HTTP-only "token" cookie.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/clinic
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	CookieAuth
//	@in							cookie
//	@name						token
//	@description				Identity token set by signup or login.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// authn resolves the identity cookie through the AuthService.
func (r *Router) authn() httpx.Middleware {
	return httpx.AuthnMiddleware(callerAuthenticator{r.AuthService}, r.opts.Cookie.Name)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		AuthService: r.AuthService,
		Cookie:      r.opts.Cookie,
		Debug:       r.opts.Debug,
	}

	// POST /signup - strict rate limit by IP (public account creation)
	r.Mux.Handle("POST /api/auth/signup",
		httpx.Chain(http.HandlerFunc(h.HandleSignup),
			httpx.RateLimitByIP(r.opts.Limits.Auth),
		),
	)

	// POST /login - strict rate limit by IP + email to slow down guessing
	r.Mux.Handle("POST /api/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIPAndJSONField(r.opts.Limits.Auth, "email"),
		),
	)

	// POST /logout - best effort, works without a valid token
	r.Mux.Handle("POST /api/auth/logout",
		httpx.Chain(http.HandlerFunc(h.HandleLogout),
			httpx.RateLimitByIP(r.opts.Limits.Write),
		),
	)

	r.Mux.Handle("GET /api/auth/me",
		httpx.Chain(http.HandlerFunc(h.HandleMe),
			r.authn(),
			httpx.RateLimitByUser(r.opts.Limits.Read),
		),
	)
}

func (r *Router) registerAppointments() {
	h := &AppointmentsHandler{
		BookingService: r.BookingService,
		Debug:          r.opts.Debug,
	}

	write := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn, r.authn(), httpx.RateLimitByUser(r.opts.Limits.Write))
	}
	read := func(fn http.HandlerFunc) http.Handler {
		return httpx.Chain(fn, r.authn(), httpx.RateLimitByUser(r.opts.Limits.Read))
	}

	r.Mux.Handle("POST /api/appointments", write(h.HandleCreate))
	r.Mux.Handle("GET /api/appointments/my", read(h.HandleListMine))
	r.Mux.Handle("GET /api/appointments/availability", read(h.HandleAvailability))
	r.Mux.Handle("GET /api/appointments/{id}", read(h.HandleGet))
	r.Mux.Handle("PUT /api/appointments/{id}", write(h.HandleUpdate))
	r.Mux.Handle("DELETE /api/appointments/{id}", write(h.HandleCancel))
}

func (r *Router) registerSystem() {
	// Health check endpoints - monitoring systems may poll frequently
	r.Mux.Handle("GET /api/health",
		httpx.Chain(LivezHandler(r.startTime, r.opts.BuildVersion),
			httpx.RateLimitByIP(r.opts.Limits.Probe),
		),
	)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.opts.BuildVersion),
			httpx.RateLimitByIP(r.opts.Limits.Probe),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.opts.BuildVersion, r.store, r.keys),
			httpx.RateLimitByIP(r.opts.Limits.Probe),
		),
	)
}
