package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/board/domain"
	"github.com/aussiebroadwan/taskboard/internal/board/service"
	"github.com/aussiebroadwan/taskboard/internal/board/store"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/jwtx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"

	_ "github.com/aussiebroadwan/taskboard/api/board" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	signer       jwtx.Signer
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store    store.Store
	sessions store.Sessions

	SessionService      *service.SessionService
	TaskService         *service.TaskService
	WorkspaceService    *service.WorkspaceService
	TeamService         *service.TeamService
	NotificationService *service.NotificationService
	ActivityService     *service.ActivityService
	MeetingService      *service.MeetingService
	MetricsService      *service.MetricsService
	CalendarService     *service.CalendarService
	AssistantService    *service.AssistantService
}

func NewRouter(
	signer jwtx.Signer,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	sessions store.Sessions,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		signer:       signer,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		sessions:     sessions,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerSession()
	r.registerTasks()
	r.registerWorkspaces()
	r.registerMembers()
	r.registerNotifications()
	r.registerActivity()
	r.registerMeetings()
	r.registerCalendar()
	r.registerMetrics()
	r.registerAssistant()
	r.registerEvents()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Task Board Service API
//	@version		0.1.0
//	@description	Project management board service: workspaces, Kanban tasks, calendar, team roster, notifications and a canned assistant, backed by an in-memory store with a persisted session slot.
//	@description
//	@description				Access tokens are EdDSA-signed JWTs issued at login; the signing key is ephemeral and rotates on restart.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/taskboard
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

// secured wraps a handler with token verification and a per-user rate
// limit. Every authenticated route goes through this.
func (r *Router) secured(h http.Handler, cfg httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RateLimitByUser(cfg),
	)
}

// adminOnly additionally requires the Admin role.
func (r *Router) adminOnly(h http.Handler, cfg httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireAnyRole(string(domain.RoleAdmin)),
		httpx.RateLimitByUser(cfg),
	)
}

func (r *Router) registerSession() {
	h := &SessionHandler{SessionService: r.SessionService}

	// POST /login - strict rate limit by IP (authentication attempts)
	r.Mux.Handle("POST /v1/session/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /reset-password - strict rate limit by IP (public endpoint,
	// deliberately unauthenticated)
	r.Mux.Handle("POST /v1/session/reset-password",
		httpx.Chain(http.HandlerFunc(h.HandleResetPassword),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("GET /v1/session", r.secured(http.HandlerFunc(h.HandleMe), httpx.LenientLimit))
	r.Mux.Handle("DELETE /v1/session", r.secured(http.HandlerFunc(h.HandleLogout), httpx.ModerateLimit))
	r.Mux.Handle("PUT /v1/session/password", r.secured(http.HandlerFunc(h.HandleUpdatePassword), httpx.StrictLimit))
	r.Mux.Handle("PUT /v1/session/profile", r.secured(http.HandlerFunc(h.HandleUpdateProfile), httpx.ModerateLimit))
}

func (r *Router) registerTasks() {
	h := &TasksHandler{
		TaskService: r.TaskService,
		TeamService: r.TeamService,
	}

	r.Mux.Handle("GET /v1/tasks", r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("POST /v1/tasks", r.secured(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/tasks/{id}", r.secured(http.HandlerFunc(h.HandleGet), httpx.LenientLimit))
	r.Mux.Handle("PATCH /v1/tasks/{id}", r.secured(http.HandlerFunc(h.HandleUpdate), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/tasks/{id}", r.secured(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/tasks/{id}/move", r.secured(http.HandlerFunc(h.HandleMove), httpx.LenientLimit))
}

func (r *Router) registerWorkspaces() {
	h := &WorkspacesHandler{WorkspaceService: r.WorkspaceService}

	r.Mux.Handle("GET /v1/workspaces", r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("POST /v1/workspaces", r.secured(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/workspaces/current", r.secured(http.HandlerFunc(h.HandleCurrent), httpx.LenientLimit))
	r.Mux.Handle("POST /v1/workspaces/{id}/select", r.secured(http.HandlerFunc(h.HandleSelect), httpx.ModerateLimit))
}

func (r *Router) registerMembers() {
	h := &MembersHandler{TeamService: r.TeamService}

	// Reads are open to any authenticated user; writes are admin-only.
	r.Mux.Handle("GET /v1/members", r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("POST /v1/members", r.adminOnly(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
	r.Mux.Handle("PATCH /v1/members/{id}", r.adminOnly(http.HandlerFunc(h.HandleUpdate), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/members/{id}", r.adminOnly(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit))
}

func (r *Router) registerNotifications() {
	h := &NotificationsHandler{NotificationService: r.NotificationService}

	r.Mux.Handle("GET /v1/notifications", r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("GET /v1/notifications/unread-count", r.secured(http.HandlerFunc(h.HandleUnreadCount), httpx.LenientLimit))
	r.Mux.Handle("POST /v1/notifications/read-all", r.secured(http.HandlerFunc(h.HandleMarkAllRead), httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/notifications/{id}/read", r.secured(http.HandlerFunc(h.HandleMarkRead), httpx.ModerateLimit))
	r.Mux.Handle("DELETE /v1/notifications/{id}", r.secured(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit))
}

func (r *Router) registerActivity() {
	h := &ActivityHandler{ActivityService: r.ActivityService}

	r.Mux.Handle("GET /v1/activity", r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("POST /v1/activity", r.secured(http.HandlerFunc(h.HandleRecord), httpx.ModerateLimit))
}

func (r *Router) registerMeetings() {
	h := &MeetingsHandler{MeetingService: r.MeetingService}

	r.Mux.Handle("GET /v1/meetings", r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("POST /v1/meetings", r.secured(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit))
}

func (r *Router) registerCalendar() {
	h := &CalendarHandler{
		CalendarService: r.CalendarService,
		MeetingService:  r.MeetingService,
		TeamService:     r.TeamService,
	}

	r.Mux.Handle("GET /v1/calendar/{year}/{month}", r.secured(http.HandlerFunc(h.HandleMonth), httpx.LenientLimit))
	r.Mux.Handle("GET /v1/calendar/day/{date}", r.secured(http.HandlerFunc(h.HandleDay), httpx.LenientLimit))
}

func (r *Router) registerMetrics() {
	h := &MetricsHandler{MetricsService: r.MetricsService}

	r.Mux.Handle("GET /v1/metrics", r.secured(h, httpx.LenientLimit))
}

func (r *Router) registerAssistant() {
	h := &AssistantHandler{
		AssistantService: r.AssistantService,
		TeamService:      r.TeamService,
	}

	// Assistant calls simulate backend latency, keep the limit moderate.
	r.Mux.Handle("POST /v1/assistant", r.secured(http.HandlerFunc(h.HandleAsk), httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/assistant/apply", r.secured(http.HandlerFunc(h.HandleApply), httpx.ModerateLimit))
}

func (r *Router) registerEvents() {
	h := &EventsHandler{Bus: r.store.Events()}

	// Long-lived SSE connections, strict limit on how often they can be
	// (re)opened.
	r.Mux.Handle("GET /v1/events", r.secured(h, httpx.StrictLimit))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.sessions, r.signer),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
