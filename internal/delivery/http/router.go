package http

import (
	"net/http"

	"go-clinic-management/internal/delivery/http/handler"
	"go-clinic-management/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	patientHandler     *handler.PatientHandler
	doctorHandler      *handler.DoctorHandler
	appointmentHandler *handler.AppointmentHandler
	lockedSlotHandler  *handler.LockedSlotHandler
	waitingListHandler *handler.WaitingListHandler
	newsHandler        *handler.NewsHandler
	fileHandler        *handler.FileHandler
	auditLogHandler    *handler.AuditLogHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	doctorHandler *handler.DoctorHandler,
	appointmentHandler *handler.AppointmentHandler,
	lockedSlotHandler *handler.LockedSlotHandler,
	waitingListHandler *handler.WaitingListHandler,
	newsHandler *handler.NewsHandler,
	fileHandler *handler.FileHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		patientHandler:     patientHandler,
		doctorHandler:      doctorHandler,
		appointmentHandler: appointmentHandler,
		lockedSlotHandler:  lockedSlotHandler,
		waitingListHandler: waitingListHandler,
		newsHandler:        newsHandler,
		fileHandler:        fileHandler,
		auditLogHandler:    auditLogHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Public news feed: unauthenticated callers see published articles only
	api.HandleFunc("/news", r.newsHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/news/{id}", r.newsHandler.Get).Methods(http.MethodGet)

	// Appointment routes (protected)
	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.Use(r.authMiddleware.Authenticate)
	appointments.Handle("", middleware.RequireAdminOrDoctor(http.HandlerFunc(r.appointmentHandler.Create))).Methods(http.MethodPost)
	appointments.Handle("/book", middleware.RequirePatient(http.HandlerFunc(r.appointmentHandler.Book))).Methods(http.MethodPost)
	appointments.HandleFunc("", r.appointmentHandler.List).Methods(http.MethodGet)
	appointments.HandleFunc("/today", r.appointmentHandler.ListToday).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}", r.appointmentHandler.Get).Methods(http.MethodGet)
	appointments.Handle("/{id}", middleware.RequireAdminOrDoctor(http.HandlerFunc(r.appointmentHandler.Update))).Methods(http.MethodPut)
	appointments.Handle("/{id}", middleware.RequireAdminOrDoctor(http.HandlerFunc(r.appointmentHandler.Delete))).Methods(http.MethodDelete)

	// Locked slot routes (protected, staff-managed)
	lockedSlots := api.PathPrefix("/locked-slots").Subrouter()
	lockedSlots.Use(r.authMiddleware.Authenticate)
	lockedSlots.Handle("", middleware.RequireAdminOrDoctor(http.HandlerFunc(r.lockedSlotHandler.Create))).Methods(http.MethodPost)
	lockedSlots.HandleFunc("/check", r.lockedSlotHandler.Check).Methods(http.MethodGet)
	lockedSlots.HandleFunc("/doctor/{doctorId}", r.lockedSlotHandler.ListByDoctor).Methods(http.MethodGet)
	lockedSlots.HandleFunc("/doctor/{doctorId}/date/{date}", r.lockedSlotHandler.ListByDoctor).Methods(http.MethodGet)
	lockedSlots.Handle("/doctor/{doctorId}/date/{date}/time/{time}", middleware.RequireAdminOrDoctor(http.HandlerFunc(r.lockedSlotHandler.DeleteByDetails))).Methods(http.MethodDelete)
	lockedSlots.Handle("/{id}", middleware.RequireAdminOrDoctor(http.HandlerFunc(r.lockedSlotHandler.Delete))).Methods(http.MethodDelete)

	// Waiting list routes (protected, staff-managed)
	waitingList := api.PathPrefix("/waiting-list").Subrouter()
	waitingList.Use(r.authMiddleware.Authenticate)
	waitingList.Use(middleware.RequireAdminOrDoctor)
	waitingList.HandleFunc("", r.waitingListHandler.Add).Methods(http.MethodPost)
	waitingList.HandleFunc("", r.waitingListHandler.List).Methods(http.MethodGet)
	waitingList.HandleFunc("/{id}", r.waitingListHandler.Get).Methods(http.MethodGet)
	waitingList.HandleFunc("/{id}", r.waitingListHandler.Update).Methods(http.MethodPut)
	waitingList.HandleFunc("/{id}", r.waitingListHandler.Remove).Methods(http.MethodDelete)
	waitingList.HandleFunc("/{id}/book", r.waitingListHandler.Book).Methods(http.MethodPost)

	// Patient routes (protected, staff-managed)
	patients := api.PathPrefix("/patients").Subrouter()
	patients.Use(r.authMiddleware.Authenticate)
	patients.Use(middleware.RequireAdminOrDoctor)
	patients.HandleFunc("", r.patientHandler.Create).Methods(http.MethodPost)
	patients.HandleFunc("", r.patientHandler.List).Methods(http.MethodGet)
	patients.HandleFunc("/{id}", r.patientHandler.Get).Methods(http.MethodGet)
	patients.HandleFunc("/{id}", r.patientHandler.Update).Methods(http.MethodPut)
	patients.HandleFunc("/{id}", r.patientHandler.Delete).Methods(http.MethodDelete)

	// Doctor routes (protected; writes are admin only)
	doctors := api.PathPrefix("/doctors").Subrouter()
	doctors.Use(r.authMiddleware.Authenticate)
	doctors.Handle("", middleware.RequireAdmin(http.HandlerFunc(r.doctorHandler.Create))).Methods(http.MethodPost)
	doctors.HandleFunc("", r.doctorHandler.List).Methods(http.MethodGet)
	doctors.HandleFunc("/{id}", r.doctorHandler.Get).Methods(http.MethodGet)
	doctors.Handle("/{id}", middleware.RequireAdmin(http.HandlerFunc(r.doctorHandler.Update))).Methods(http.MethodPut)
	doctors.Handle("/{id}", middleware.RequireAdmin(http.HandlerFunc(r.doctorHandler.Delete))).Methods(http.MethodDelete)

	// File routes (protected; delete is admin only)
	files := api.PathPrefix("/files").Subrouter()
	files.Use(r.authMiddleware.Authenticate)
	files.HandleFunc("", r.fileHandler.Create).Methods(http.MethodPost)
	files.HandleFunc("", r.fileHandler.List).Methods(http.MethodGet)
	files.HandleFunc("/{id}", r.fileHandler.Get).Methods(http.MethodGet)
	files.Handle("/{id}", middleware.RequireAdmin(http.HandlerFunc(r.fileHandler.Delete))).Methods(http.MethodDelete)

	// Admin routes
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/users", r.authHandler.ListUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users/{id}/role", r.authHandler.UpdateRole).Methods(http.MethodPut)
	admin.HandleFunc("/news", r.newsHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/news", r.newsHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/news/{id}", r.newsHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/news/{id}", r.newsHandler.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.ListRecent).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
