package http

import (
	"net/http"

	"clinic-admin/internal/delivery/http/handler"
	"clinic-admin/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type RouterConfig struct {
	// Prefix is mounted in front of every route; empty mounts at the root
	Prefix      string
	RequireAuth bool
}

type Router struct {
	router             *mux.Router
	config             RouterConfig
	authHandler        *handler.AuthHandler
	doctorHandler      *handler.DoctorHandler
	appointmentHandler *handler.AppointmentHandler
	healthHandler      *handler.HealthHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
	loggingMiddleware  *middleware.LoggingMiddleware
}

func NewRouter(
	config RouterConfig,
	authHandler *handler.AuthHandler,
	doctorHandler *handler.DoctorHandler,
	appointmentHandler *handler.AppointmentHandler,
	healthHandler *handler.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		config:             config,
		authHandler:        authHandler,
		doctorHandler:      doctorHandler,
		appointmentHandler: appointmentHandler,
		healthHandler:      healthHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
		loggingMiddleware:  loggingMiddleware,
	}
}

// Setup registers every route and returns the handler to serve. CORS wraps
// the whole router so preflight requests never hit mux's 405.
func (r *Router) Setup() http.Handler {
	api := r.router
	if r.config.Prefix != "" {
		api = r.router.PathPrefix(r.config.Prefix).Subrouter()
	}

	// Health check
	api.HandleFunc("/health", r.healthHandler.Health).Methods(http.MethodGet)

	// Auth routes (public)
	api.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	api.Handle("/logout", r.authMiddleware.Authenticate(http.HandlerFunc(r.authHandler.Logout))).Methods(http.MethodPost)
	api.Handle("/me", r.authMiddleware.Authenticate(http.HandlerFunc(r.authHandler.GetCurrentUser))).Methods(http.MethodGet)

	// Doctors
	api.Handle("/doctors", r.clinic(r.doctorHandler.GetAllDoctors)).Methods(http.MethodGet)
	api.Handle("/doctors", r.clinic(r.doctorHandler.CreateDoctor)).Methods(http.MethodPost)
	api.Handle("/doctors", r.clinic(r.doctorHandler.UpdateDoctor)).Methods(http.MethodPut)
	api.Handle("/doctors/{id}", r.clinic(r.doctorHandler.GetDoctor)).Methods(http.MethodGet)
	api.Handle("/doctors/{id}", r.clinic(r.doctorHandler.UpdateDoctor)).Methods(http.MethodPut)
	api.Handle("/doctors/{id}", r.clinic(r.doctorHandler.DeleteDoctor)).Methods(http.MethodDelete)

	// Appointments
	api.Handle("/appointments", r.clinic(r.appointmentHandler.GetAllAppointments)).Methods(http.MethodGet)
	api.Handle("/appointments", r.clinic(r.appointmentHandler.CreateAppointment)).Methods(http.MethodPost)
	api.Handle("/appointments/{id}", r.clinic(r.appointmentHandler.GetAppointment)).Methods(http.MethodGet)
	api.Handle("/appointments/{id}", r.clinic(r.appointmentHandler.UpdateAppointment)).Methods(http.MethodPut)
	api.Handle("/appointments/{id}", r.clinic(r.appointmentHandler.DeleteAppointment)).Methods(http.MethodDelete)

	return r.loggingMiddleware.Handle(r.corsMiddleware.Handle(r.router))
}

// clinic guards doctor and appointment routes when auth is required
func (r *Router) clinic(h http.HandlerFunc) http.Handler {
	if r.config.RequireAuth {
		return r.authMiddleware.Authenticate(h)
	}
	return h
}
