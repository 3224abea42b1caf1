package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/roster/internal/roster/service"
	"github.com/aussiebroadwan/roster/internal/roster/store"
	"github.com/aussiebroadwan/roster/pkg/httpx"
	"github.com/aussiebroadwan/roster/pkg/jwtx"
	"github.com/aussiebroadwan/roster/pkg/slogx"

	_ "github.com/aussiebroadwan/roster/api/roster" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store             store.Store
	UserService       *service.UserService
	EmployeeService   *service.EmployeeService
	OfficeService     *service.OfficeService
	AssignmentService *service.AssignmentService
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerEmployees()
	r.registerOffices()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Roster API
//	@version		0.1.0
//	@description	Employee and office registry. Employees are linked to any number of offices.
//	@description
//	@description				Every /api/v1 route except register and login requires a bearer token issued by /api/v1/auth/login.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/roster
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

// read wraps h for an authenticated read.
func (r *Router) read(h http.HandlerFunc) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)
}

// write wraps h for an authenticated write.
func (r *Router) write(h http.HandlerFunc) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{UserService: r.UserService}

	r.Mux.Handle("POST /api/v1/auth/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// Limited by IP + username to slow down password guessing
	r.Mux.Handle("POST /api/v1/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIPAndJSONField(httpx.StrictLimit, "username"),
		),
	)
}

func (r *Router) registerEmployees() {
	h := &EmployeesHandler{
		EmployeeService:   r.EmployeeService,
		AssignmentService: r.AssignmentService,
	}

	r.Mux.Handle("POST /api/v1/employees", r.write(h.HandleCreate))
	r.Mux.Handle("GET /api/v1/employees", r.read(h.HandleList))
	r.Mux.Handle("GET /api/v1/employees/withOffices", r.read(h.HandleListWithOffices))
	r.Mux.Handle("GET /api/v1/employees/{id}", r.read(h.HandleGet))
	r.Mux.Handle("GET /api/v1/employees/{id}/withOffices", r.read(h.HandleGetWithOffices))
	r.Mux.Handle("GET /api/v1/employees/{id}/offices", r.read(h.HandleGetOffices))
	r.Mux.Handle("PUT /api/v1/employees/{id}", r.write(h.HandleUpdate))
	r.Mux.Handle("DELETE /api/v1/employees/{id}", r.write(h.HandleDelete))
	r.Mux.Handle("PATCH /api/v1/employees/{id}/assignOffices", r.write(h.HandleAssignOffices))
}

func (r *Router) registerOffices() {
	h := &OfficesHandler{OfficeService: r.OfficeService}

	r.Mux.Handle("POST /api/v1/offices", r.write(h.HandleCreate))
	r.Mux.Handle("GET /api/v1/offices", r.read(h.HandleList))
	r.Mux.Handle("GET /api/v1/offices/{id}", r.read(h.HandleGet))
	r.Mux.Handle("PUT /api/v1/offices/{id}", r.write(h.HandleUpdate))
	r.Mux.Handle("DELETE /api/v1/offices/{id}", r.write(h.HandleDelete))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /.well-known/jwks.json",
		httpx.Chain(JWKSHandler(r.keys),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	// Monitoring may poll frequently
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
