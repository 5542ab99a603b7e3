package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"nutriverse/internal/appointment"
	"nutriverse/internal/catalog"
	"nutriverse/internal/config"
	"nutriverse/internal/metrics"
	"nutriverse/internal/planner"
	"nutriverse/internal/recipe"
	"nutriverse/internal/user"
)

// Notifier pushes out-of-band notifications, e.g. to a linked Telegram
// account. A nil Notifier disables notifications.
type Notifier interface {
	NotifyAppointmentDecided(appt appointment.Appointment, patientTelegramID int64)
}

// Server wires the HTTP surface to the domain services.
type Server struct {
	cfg          *config.Config
	auth         *user.AuthService
	users        *user.Repository
	catalog      catalog.Provider
	generator    *planner.Generator
	plans        *planner.PlanRepository
	appointments *appointment.Service
	recipes      *recipe.Service
	metrics      *metrics.Store
	notifier     Notifier
}

// NewServer creates a Server over the given services.
func NewServer(
	cfg *config.Config,
	auth *user.AuthService,
	users *user.Repository,
	provider catalog.Provider,
	generator *planner.Generator,
	plans *planner.PlanRepository,
	appointments *appointment.Service,
	recipes *recipe.Service,
	store *metrics.Store,
) *Server {
	return &Server{
		cfg:          cfg,
		auth:         auth,
		users:        users,
		catalog:      provider,
		generator:    generator,
		plans:        plans,
		appointments: appointments,
		recipes:      recipes,
		metrics:      store,
	}
}

// SetNotifier installs an out-of-band notifier.
func (s *Server) SetNotifier(n Notifier) {
	s.notifier = n
}

// Router builds the chi router with all API routes mounted under /api.
func (s *Server) Router() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		r.Post("/auth/signup", s.handleSignup)
		r.Post("/auth/login", s.handleLogin)

		r.Get("/doctors", s.handleListDoctors)
		r.Get("/recipes", s.handleListRecipes)

		// Authenticated routes.
		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)

			r.Get("/auth/me", s.handleMe)

			r.Get("/profile", s.handleGetProfile)
			r.Put("/profile", s.handleUpdateProfile)

			r.Get("/meals", s.handleListMeals)
			r.Get("/exercises", s.handleListExercises)

			r.Get("/meal-planner", s.handleGetMealPlan)
			r.Post("/meal-planner/generate", s.handleGenerateMealPlan)
			r.Delete("/meal-planner", s.handleClearMealPlan)

			r.Post("/appointments", s.handleBookAppointment)
			r.Get("/appointments", s.handleListAppointments)
			r.Patch("/appointments/{id}/decide", s.handleDecideAppointment)
			r.Patch("/appointments/{id}/cancel", s.handleCancelAppointment)
			r.Delete("/appointments/{id}", s.handleDeleteAppointment)

			r.Post("/recipes", s.handleShareRecipe)
			r.Delete("/recipes/{id}", s.handleDeleteRecipe)
		})
	})

	return r
}

// Handler returns the root handler, for http.Server and tests.
func (s *Server) Handler() http.Handler {
	return s.Router()
}
