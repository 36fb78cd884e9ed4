package http

import (
	"net/http"

	"medical-appointment-api/internal/delivery/http/handler"
	"medical-appointment-api/internal/delivery/http/middleware"
	"medical-appointment-api/pkg/response"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Router struct {
	router             *mux.Router
	log                *logrus.Logger
	authHandler        *handler.AuthHandler
	appointmentHandler *handler.AppointmentHandler
	profileHandler     *handler.ProfileHandler
	recordHandler      *handler.RecordHandler
	auditLogHandler    *handler.AuditLogHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
	rateLimiter        *middleware.RateLimiter
}

func NewRouter(
	log *logrus.Logger,
	authHandler *handler.AuthHandler,
	appointmentHandler *handler.AppointmentHandler,
	profileHandler *handler.ProfileHandler,
	recordHandler *handler.RecordHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	rateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		log:                log,
		authHandler:        authHandler,
		appointmentHandler: appointmentHandler,
		profileHandler:     profileHandler,
		recordHandler:      recordHandler,
		auditLogHandler:    auditLogHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
		rateLimiter:        rateLimiter,
	}
}

// Setup registers every route. CORS wraps the whole router so preflight
// requests are answered before method matching.
func (r *Router) Setup() http.Handler {
	r.router.Use(middleware.RequestLogger(r.log))

	// Health check
	r.router.HandleFunc("/", r.healthCheck).Methods(http.MethodGet)
	r.router.HandleFunc("/records/{userEmail}", r.recordHandler.ListRecords).Methods(http.MethodGet)

	api := r.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Credential routes (public, rate limited)
	api.Handle("/signup", r.rateLimiter.Handle(http.HandlerFunc(r.authHandler.Signup))).Methods(http.MethodPost)
	api.Handle("/login", r.rateLimiter.Handle(http.HandlerFunc(r.authHandler.Login))).Methods(http.MethodPost)
	api.Handle("/logout", r.authMiddleware.OptionalAuthenticate(http.HandlerFunc(r.authHandler.Logout))).Methods(http.MethodPost)

	// Appointment routes
	api.HandleFunc("/appointments", r.appointmentHandler.BookAppointment).Methods(http.MethodPost)
	api.HandleFunc("/appointments/upcoming/{userEmail}", r.appointmentHandler.ListUpcoming).Methods(http.MethodGet)
	api.HandleFunc("/appointments/history/{userEmail}", r.appointmentHandler.ListHistory).Methods(http.MethodGet)

	// Profile routes
	api.HandleFunc("/profile/update", r.profileHandler.UpdateProfile).Methods(http.MethodPut)
	api.Handle("/profile", r.authMiddleware.Authenticate(http.HandlerFunc(r.profileHandler.GetCurrentProfile))).Methods(http.MethodGet)
	api.HandleFunc("/profile/{email}", r.profileHandler.GetProfile).Methods(http.MethodGet)

	api.Handle("/activity", r.authMiddleware.Authenticate(http.HandlerFunc(r.auditLogHandler.ListActivity))).Methods(http.MethodGet)

	r.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		response.NotFound(w, "Route not found")
	})

	return r.corsMiddleware.Handle(r.router)
}

func (r *Router) healthCheck(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, http.StatusOK, "Server is running...", nil)
}
