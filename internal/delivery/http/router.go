package http

import (
	"net/http"

	"docrech/internal/delivery/http/handler"
	"docrech/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	catalogHandler    *handler.CatalogHandler
	specialtyHandler  *handler.SpecialtyHandler
	diseaseHandler    *handler.DiseaseHandler
	doctorHandler     *handler.DoctorHandler
	pharmacyHandler   *handler.PharmacyHandler
	authMiddleware    *middleware.AuthMiddleware
	corsMiddleware    *middleware.CORSMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
}

// NewRouter wires the handlers. A nil authMiddleware leaves the API open.
func NewRouter(
	catalogHandler *handler.CatalogHandler,
	specialtyHandler *handler.SpecialtyHandler,
	diseaseHandler *handler.DiseaseHandler,
	doctorHandler *handler.DoctorHandler,
	pharmacyHandler *handler.PharmacyHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		catalogHandler:    catalogHandler,
		specialtyHandler:  specialtyHandler,
		diseaseHandler:    diseaseHandler,
		doctorHandler:     doctorHandler,
		pharmacyHandler:   pharmacyHandler,
		authMiddleware:    authMiddleware,
		corsMiddleware:    corsMiddleware,
		loggingMiddleware: loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet, http.MethodOptions)

	// Directory routes (read only); OPTIONS is accepted for CORS preflight
	directory := api.NewRoute().Subrouter()
	if r.authMiddleware != nil {
		directory.Use(r.authMiddleware.Authenticate)
	}

	directory.HandleFunc("/categories", r.catalogHandler.GetCategories).Methods(http.MethodGet, http.MethodOptions)
	directory.HandleFunc("/search/popular", r.catalogHandler.GetPopularSearches).Methods(http.MethodGet, http.MethodOptions)
	directory.HandleFunc("/specialties", r.specialtyHandler.GetAll).Methods(http.MethodGet, http.MethodOptions)
	directory.HandleFunc("/diseases", r.diseaseHandler.GetAll).Methods(http.MethodGet, http.MethodOptions)
	directory.HandleFunc("/doctors", r.doctorHandler.GetAll).Methods(http.MethodGet, http.MethodOptions)
	directory.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet, http.MethodOptions)
	directory.HandleFunc("/pharmacies", r.pharmacyHandler.GetAll).Methods(http.MethodGet, http.MethodOptions)

	// Add logging and CORS middleware
	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
