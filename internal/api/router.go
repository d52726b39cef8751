package api

import (
	"net/http"
	"time"

	"campus_portal/internal/api/handler"
	"campus_portal/internal/api/middleware"
	"campus_portal/internal/app/service"
	"campus_portal/internal/app/session"
	"campus_portal/internal/common/security"
	"campus_portal/internal/domain/model"
	"campus_portal/internal/platform/campus"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
)

type Services struct {
	Sessions *session.Manager
	AuthAPI  *campus.AuthAPI
	Users    *service.UsersService
	Events   *service.EventsService
	Notices  *service.NoticesService
	Programs *service.ProgramsService
	Blogs    *service.BlogsService
	Uploader *campus.Uploader
}

func NewRouter(svcs Services) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Verifier parses the portal session token (cookie or bearer); the
	// loader resolves it into a rehydrated session store. Both run on every
	// route so public pages can still personalize when a session exists.
	r.Use(jwtauth.Verifier(security.TokenAuth))
	r.Use(middleware.SessionLoader(svcs.Sessions))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	r.Route("/api/v1", func(v1 chi.Router) {
		authHandler := handler.NewAuthHandler(svcs.Sessions, svcs.AuthAPI)
		v1.Route("/auth", authHandler.RegisterRoutes)

		publicHandler := handler.NewPublicHandler(svcs.Events, svcs.Notices, svcs.Programs, svcs.Blogs)
		v1.Route("/public", publicHandler.RegisterRoutes)

		// User management is the admin dashboard only.
		usersHandler := handler.NewUsersHandler(svcs.Users)
		v1.Route("/users", func(users chi.Router) {
			users.Use(middleware.RequireRole(model.RoleAdmin))
			usersHandler.RegisterRoutes(users)
		})

		// Content management is shared between admin and faculty dashboards.
		staffOnly := middleware.RequireRole(model.RoleAdmin, model.RoleFaculty)

		eventsHandler := handler.NewEventsHandler(svcs.Events)
		v1.Route("/events", func(events chi.Router) {
			events.Use(staffOnly)
			eventsHandler.RegisterRoutes(events)
		})

		noticesHandler := handler.NewNoticesHandler(svcs.Notices)
		v1.Route("/notices", func(notices chi.Router) {
			notices.Use(staffOnly)
			noticesHandler.RegisterRoutes(notices)
		})

		programsHandler := handler.NewProgramsHandler(svcs.Programs)
		v1.Route("/programs", func(programs chi.Router) {
			programs.Use(staffOnly)
			programsHandler.RegisterRoutes(programs)
		})

		blogsHandler := handler.NewBlogsHandler(svcs.Blogs)
		v1.Route("/blogs", func(blogs chi.Router) {
			blogs.Use(staffOnly)
			blogsHandler.RegisterRoutes(blogs)
		})

		uploadsHandler := handler.NewUploadsHandler(svcs.Uploader)
		v1.Route("/uploads", func(uploads chi.Router) {
			uploads.Use(middleware.RequireRole(model.RoleAdmin, model.RoleFaculty, model.RoleStudent))
			uploadsHandler.RegisterRoutes(uploads)
		})
	})

	return r
}
