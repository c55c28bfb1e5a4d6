package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/guardtrack/guardtrack-backend-go/internal/handler/http/middleware"
	"github.com/guardtrack/guardtrack-backend-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	guardHandler GuardHandler,
	shiftHandler ShiftHandler,
	incidentHandler IncidentHandler,
	dashboardHandler DashboardHandler,
	reportHandler ReportHandler,
	notificationHandler NotificationHandler,
	uploadsPath string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "guardtrack"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	// Uploaded files (check-out photos, incident photos, avatars)
	fileServer := http.FileServer(http.Dir(uploadsPath))
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", fileServer))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
				r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

				r.Post("/logout", authHandler.Logout)
				r.Get("/me", authHandler.GetProfile)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", attendanceHandler.CheckIn)
				r.Post("/check-out", attendanceHandler.CheckOut)
				r.Get("/today", attendanceHandler.GetToday)
				r.Get("/my", attendanceHandler.GetMyAttendance)

				// Supervisor only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireSupervisor)
					r.Get("/", attendanceHandler.ListByDate)
				})
			})

			r.Route("/guards", func(r chi.Router) {
				r.Use(middleware.RequireSupervisor)
				r.Get("/", guardHandler.List)
				r.Post("/", guardHandler.Create)
				r.Get("/{id}", guardHandler.Get)
				r.Put("/{id}", guardHandler.Update)
				r.Delete("/{id}", guardHandler.Delete)
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/my", shiftHandler.ListMy)

				// Supervisor only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireSupervisor)
					r.Get("/", shiftHandler.ListByDate)
					r.Post("/", shiftHandler.Create)
					r.Get("/{id}", shiftHandler.Get)
					r.Put("/{id}", shiftHandler.Update)
					r.Delete("/{id}", shiftHandler.Delete)
				})
			})

			r.Route("/incidents", func(r chi.Router) {
				r.Post("/", incidentHandler.Report)
				r.Get("/my", incidentHandler.ListMy)
				r.Get("/{id}", incidentHandler.Get)

				// Supervisor only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireSupervisor)
					r.Get("/", incidentHandler.List)
					r.Patch("/{id}/status", incidentHandler.UpdateStatus)
				})
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", notificationHandler.List)
				r.Get("/unread-count", notificationHandler.UnreadCount)
				r.Post("/mark-read", notificationHandler.MarkAsRead)
				r.Post("/mark-all-read", notificationHandler.MarkAllAsRead)
				r.Delete("/{id}", notificationHandler.Delete)

				// Supervisor only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireSupervisor)
					r.Post("/announce", notificationHandler.Announce)
				})
			})

			// Supervisor only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireSupervisor)
				r.Get("/dashboard", dashboardHandler.Get)
				r.Get("/reports/attendance", reportHandler.Get)
				r.Get("/reports/attendance/export", reportHandler.Export)
			})
		})
	})
	return r
}
