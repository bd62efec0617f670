package http

import (
	"net/http"

	"clinic-records/internal/delivery/http/handler"
	"clinic-records/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	patientHandler      *handler.PatientHandler
	visitHandler        *handler.VisitHandler
	icd10Handler        *handler.ICD10Handler
	templateHandler     *handler.TemplateHandler
	dashboardHandler    *handler.DashboardHandler
	requestIDMiddleware *middleware.RequestIDMiddleware
	corsMiddleware      *middleware.CORSMiddleware
}

func NewRouter(
	patientHandler *handler.PatientHandler,
	visitHandler *handler.VisitHandler,
	icd10Handler *handler.ICD10Handler,
	templateHandler *handler.TemplateHandler,
	dashboardHandler *handler.DashboardHandler,
	requestIDMiddleware *middleware.RequestIDMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		patientHandler:      patientHandler,
		visitHandler:        visitHandler,
		icd10Handler:        icd10Handler,
		templateHandler:     templateHandler,
		dashboardHandler:    dashboardHandler,
		requestIDMiddleware: requestIDMiddleware,
		corsMiddleware:      corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Dashboard
	api.HandleFunc("/dashboard", r.dashboardHandler.GetStats).Methods(http.MethodGet)

	// Patients
	api.HandleFunc("/patients", r.patientHandler.RegisterPatient).Methods(http.MethodPost)
	api.HandleFunc("/patients", r.patientHandler.ListPatients).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)

	// Visits
	api.HandleFunc("/visits", r.visitHandler.CreateVisit).Methods(http.MethodPost)
	api.HandleFunc("/visits", r.visitHandler.ListVisits).Methods(http.MethodGet)
	api.HandleFunc("/visits/calendar", r.visitHandler.ListVisitsByDay).Methods(http.MethodGet)
	api.HandleFunc("/visits/{id}", r.visitHandler.GetVisit).Methods(http.MethodGet)
	api.HandleFunc("/visits/{id}", r.visitHandler.UpdateVisit).Methods(http.MethodPut)
	api.HandleFunc("/visits/{id}/diagnoses", r.visitHandler.ListDiagnoses).Methods(http.MethodGet)
	api.HandleFunc("/visits/{id}/pdf", r.visitHandler.DownloadVisitPDF).Methods(http.MethodGet)

	// ICD-10 reference lookup
	api.HandleFunc("/icd10", r.icd10Handler.Search).Methods(http.MethodGet)

	// Clinical text templates
	api.HandleFunc("/templates", r.templateHandler.CreateTemplate).Methods(http.MethodPost)
	api.HandleFunc("/templates", r.templateHandler.ListTemplates).Methods(http.MethodGet)

	r.router.Use(r.requestIDMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
