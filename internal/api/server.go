package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/digital-menu-api/internal/authz"
	"github.com/kingrain94/digital-menu-api/internal/middleware"
)

// Route is one entry of the API route table. Every route names the access
// it requires; Enforce runs before the handler on all of them.
type Route struct {
	Method string
	Path   string
	Access authz.Access
	// ResolveTenant runs the host based tenant resolver before the route.
	// Auth, public and provisioning routes are tenant-independent and skip it.
	ResolveTenant bool
	Handler       gin.HandlerFunc
}

type Server struct {
	auth       *AuthHandler
	tenant     *TenantHandler
	catalog    *CatalogHandler
	public     *PublicHandler
	export     *ExportHandler
	stream     *MenuStreamHandler
	authMW     *middleware.AuthMiddleware
	tenantMW   *middleware.TenantMiddleware
	rateLimit  *middleware.RateLimitMiddleware
	validation *middleware.ValidationMiddleware
	globalRate int
}

type ServerDeps struct {
	Base       *BaseHandler
	Users      UserService
	Auth       AuthService
	Tenants    TenantService
	Catalog    CatalogService
	Public     PublicService
	Exports    ExportService
	Stream     *MenuStreamHandler
	AuthMW     *middleware.AuthMiddleware
	TenantMW   *middleware.TenantMiddleware
	RateLimit  *middleware.RateLimitMiddleware
	Validation *middleware.ValidationMiddleware
	// GlobalRateLimit is requests per minute per client IP
	GlobalRateLimit int
}

func NewServer(deps ServerDeps) *Server {
	return &Server{
		auth:       NewAuthHandler(deps.Base, deps.Users, deps.Auth),
		tenant:     NewTenantHandler(deps.Base, deps.Tenants, deps.Users),
		catalog:    NewCatalogHandler(deps.Base, deps.Catalog),
		public:     NewPublicHandler(deps.Base, deps.Public),
		export:     NewExportHandler(deps.Base, deps.Exports),
		stream:     deps.Stream,
		authMW:     deps.AuthMW,
		tenantMW:   deps.TenantMW,
		rateLimit:  deps.RateLimit,
		validation: deps.Validation,
		globalRate: deps.GlobalRateLimit,
	}
}

// Routes is the complete route table, relative to the /api group.
func (s *Server) Routes() []Route {
	routes := []Route{
		// Authentication
		{http.MethodPost, "/register", authz.AccessPublic, false, s.auth.Register},
		{http.MethodPost, "/login", authz.AccessPublic, false, s.auth.Login},
		{http.MethodPost, "/logout", authz.AccessAuthenticated, false, s.auth.Logout},
		{http.MethodGet, "/user", authz.AccessAuthenticated, false, s.auth.CurrentUser},

		// Provisioning
		{http.MethodPost, "/tenants", authz.AccessSuperAdmin, false, s.tenant.CreateTenant},
		{http.MethodGet, "/tenants", authz.AccessSuperAdmin, false, s.tenant.ListTenants},
		{http.MethodPost, "/tenants/:t/users", authz.AccessSuperAdmin, false, s.tenant.CreateTenantUser},

		// Tenant management
		{http.MethodGet, "/tenants/:t/settings", authz.AccessTenantMember, true, s.tenant.GetSettings},
		{http.MethodPatch, "/tenants/:t/settings", authz.AccessTenantMember, true, s.tenant.UpdateSettings},
		{http.MethodPost, "/tenants/:t/exports", authz.AccessTenantMember, true, s.export.RequestExport},

		{http.MethodPost, "/tenants/:t/categories", authz.AccessTenantMember, true, s.catalog.CreateCategory},
		{http.MethodGet, "/tenants/:t/categories", authz.AccessTenantMember, true, s.catalog.ListCategories},
		{http.MethodPatch, "/tenants/:t/categories/:c", authz.AccessTenantMember, true, s.catalog.UpdateCategory},
		{http.MethodPost, "/tenants/:t/categories/:c/products", authz.AccessTenantMember, true, s.catalog.CreateProduct},
		{http.MethodGet, "/tenants/:t/categories/:c/products", authz.AccessTenantMember, true, s.catalog.ListProductsByCategory},
		{http.MethodGet, "/tenants/:t/products", authz.AccessTenantMember, true, s.catalog.ListProducts},
		{http.MethodPatch, "/tenants/:t/products/:p", authz.AccessTenantMember, true, s.catalog.UpdateProduct},
		{http.MethodPost, "/tenants/:t/products/:p/variants", authz.AccessTenantMember, true, s.catalog.CreateVariant},
		{http.MethodGet, "/tenants/:t/products/:p/variants", authz.AccessTenantMember, true, s.catalog.ListVariants},
		{http.MethodPatch, "/tenants/:t/products/:p/variants/:v", authz.AccessTenantMember, true, s.catalog.UpdateVariant},

		// Public menu
		{http.MethodGet, "/public/tenant-by-subdomain/:s", authz.AccessPublic, false, s.public.TenantBySubdomain},
		{http.MethodGet, "/public/categories/:t", authz.AccessPublic, false, s.public.Categories},
		{http.MethodGet, "/public/products/:t", authz.AccessPublic, false, s.public.Products},
		{http.MethodGet, "/public/products/:t/search", authz.AccessPublic, false, s.public.Search},
		{http.MethodGet, "/public/menu/:t", authz.AccessPublic, false, s.public.Menu},
	}
	if s.stream != nil {
		routes = append(routes, Route{http.MethodGet, "/public/menu/:t/stream", authz.AccessPublic, false, s.stream.HandleMenuStream})
	}
	return routes
}

func (s *Server) SetupRoutes(api *gin.RouterGroup) {
	// Apply security middleware first
	api.Use(s.validation.BlockSuspiciousPatterns())
	api.Use(s.validation.SanitizeInput())
	api.Use(s.validation.ValidateRequestSize(10 * 1024 * 1024)) // 10MB max
	api.Use(s.validation.ValidateContentType("application/json"))

	api.Use(s.rateLimit.GlobalRateLimit(s.globalRate))

	for _, r := range s.Routes() {
		s.register(api, r)
	}
}

// register composes resolver, authentication, the access check and the
// tenant rate limit in front of the handler. A route without an access
// level is a programming error and stops the server from starting.
func (s *Server) register(api *gin.RouterGroup, r Route) {
	if !r.Access.Valid() {
		panic(fmt.Sprintf("route %s %s has no access requirement", r.Method, r.Path))
	}

	chain := make([]gin.HandlerFunc, 0, 5)
	if r.ResolveTenant {
		chain = append(chain, s.tenantMW.Resolve())
	}
	chain = append(chain,
		s.authMW.Authenticate(),
		s.authMW.Enforce(r.Access),
		s.rateLimit.TenantRateLimit(r.Access),
		r.Handler,
	)
	api.Handle(r.Method, r.Path, chain...)
}

// StartMenuStream starts the live menu hub.
func (s *Server) StartMenuStream() {
	if s.stream != nil {
		go s.stream.Start()
	}
}

func (s *Server) StopMenuStream() {
	if s.stream != nil {
		s.stream.Stop()
	}
}
