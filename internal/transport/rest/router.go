package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/adelicia-js/milestone-monitor-sub001/internal/auth"
	"github.com/adelicia-js/milestone-monitor-sub001/internal/faculty"
	"github.com/adelicia-js/milestone-monitor-sub001/internal/report"
	"github.com/adelicia-js/milestone-monitor-sub001/internal/submission"
	"github.com/adelicia-js/milestone-monitor-sub001/internal/transport/middleware"
	"github.com/adelicia-js/milestone-monitor-sub001/internal/transport/swagger"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
)

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, authHandler *auth.Handler, roles *auth.RoleAuthorization, facultyHandler *faculty.Handler, submissionHandler *submission.Handler, reportHandler *report.Handler, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	// Apply global middleware
	router.Use(middleware.CORS)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	// Mount API under /api/v1 to match OpenAPI basePath
	router.Route("/api/v1", func(r chi.Router) {
		// Health check route
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		// Auth routes
		if authHandler != nil {
			r.Route("/auth", func(sr chi.Router) {
				sr.Post("/login", authHandler.Login)
				sr.Post("/refresh", authHandler.RefreshToken)
				sr.Post("/logout", authHandler.Logout)
			})
		}

		if authHandler != nil {
			// Protected routes that require authentication
			r.Group(func(pr chi.Router) {
				pr.Use(authHandler.AuthMiddleware)

				// Faculty account routes
				if facultyHandler != nil {
					pr.Route("/faculty", func(fr chi.Router) {
						fr.Get("/me", facultyHandler.GetCurrentFaculty)
						fr.Get("/{id}", facultyHandler.GetFaculty)
						fr.Patch("/{id}", facultyHandler.UpdateFaculty)
						fr.Post("/{id}/password", facultyHandler.ResetPassword)

						// HOD-only account management
						fr.Group(func(hr chi.Router) {
							hr.Use(roles.RequireHOD())
							hr.Get("/", facultyHandler.ListFaculty)
							hr.Post("/", facultyHandler.CreateFaculty)
							hr.Delete("/{id}", facultyHandler.DeleteFaculty)
						})
					})
				}

				// Submission routes
				if submissionHandler != nil {
					pr.Route("/submissions", func(er chi.Router) {
						er.Get("/", submissionHandler.ListOwnSubmissions)
						er.Post("/{category}", submissionHandler.CreateSubmission)
						er.Patch("/{category}/{id}", submissionHandler.UpdateSubmission)
						er.Delete("/{category}/{id}", submissionHandler.DeleteSubmission)

						// HOD review routes
						er.Group(func(mr chi.Router) {
							mr.Use(roles.RequireHOD())
							mr.Get("/pending", submissionHandler.ListPendingSubmissions)
							mr.Patch("/{category}/{id}/approve", submissionHandler.ApproveSubmission)
							mr.Patch("/{category}/{id}/reject", submissionHandler.RejectSubmission)
						})
					})
				}

				// Report routes (editor or HOD)
				if reportHandler != nil {
					pr.Group(func(rr chi.Router) {
						rr.Use(roles.RequireReportAccess())
						rr.Get("/reports", reportHandler.GenerateReport)
					})
				}
			})
		}
	})
}
