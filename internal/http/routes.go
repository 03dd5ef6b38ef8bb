package httpx

import (
	"log/slog"
	"net/http"

	"github.com/aeroedge/hr-ui-api/internal/domain/identity"
	"github.com/aeroedge/hr-ui-api/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Sessions  *service.SessionManager
	Directory *service.DirectoryService
	Logger    *slog.Logger
}

// NewRouter creates and configures the screen API router. All screen routes
// are gated through the session store; the capability middleware guards the
// screens the role table restricts.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	logger := services.Logger
	if logger == nil {
		logger = slog.Default()
	}

	store := services.Sessions.Store()
	authHandlers := &AuthHandlers{Svc: services.Sessions, Logger: logger}
	sessionHandlers := &SessionHandlers{Feed: store, Logger: logger}
	screenHandlers := &ScreenHandlers{Directory: services.Directory, Logger: logger}

	mux.Handle("POST /api/auth/signin", http.HandlerFunc(authHandlers.SignIn))
	mux.Handle("POST /api/auth/signup", http.HandlerFunc(authHandlers.SignUp))
	mux.Handle("POST /api/auth/signout", http.HandlerFunc(authHandlers.SignOut))

	mux.Handle("GET /api/session", http.HandlerFunc(sessionHandlers.Session))
	mux.Handle("GET /api/session/events", http.HandlerFunc(sessionHandlers.Events))

	requireSession := RequireSession(store)
	requireDirectory := RequireCapability(store, identity.CapViewEmployeeDirectory)
	requireReports := RequireCapability(store, identity.CapViewReports)

	mux.Handle("GET /api/screens/dashboard", requireSession(http.HandlerFunc(screenHandlers.Dashboard)))
	mux.Handle("GET /api/screens/profile", requireSession(http.HandlerFunc(screenHandlers.Profile)))
	mux.Handle("GET /api/screens/employees", requireDirectory(http.HandlerFunc(screenHandlers.Employees)))
	mux.Handle("GET /api/screens/attendance", requireSession(http.HandlerFunc(screenHandlers.Attendance)))
	mux.Handle("GET /api/screens/leave", requireSession(http.HandlerFunc(screenHandlers.Leave)))
	mux.Handle("GET /api/screens/reports", requireReports(http.HandlerFunc(screenHandlers.Reports)))

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	var handler http.Handler = mux
	handler = Logging(logger)(handler)
	handler = Recover(logger)(handler)
	return handler
}
