package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/gms-project/gms-backend/handlers"
	"github.com/gms-project/gms-backend/middleware"
)

type Handlers struct {
	Auth        *handlers.AuthHandler
	Competition *handlers.CompetitionHandler
	Format      *handlers.FormatHandler
	Schedule    *handlers.ScheduleHandler
	Match       *handlers.MatchHandler
	Standings   *handlers.StandingsHandler
	Club        *handlers.ClubHandler
	Participant *handlers.ParticipantHandler
	WebSocket   *handlers.WebSocketHandler
}

func SetupRoutes(h Handlers, jwtSecret string) *chi.Mux {
	router := chi.NewRouter()

	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	router.Post("/auth/register", h.Auth.Register)
	router.Post("/auth/login", h.Auth.Login)

	router.Get("/ws/competitions/{competitionID}", h.WebSocket.Subscribe)

	router.Route("/formats", func(r chi.Router) {
		r.Get("/", h.Format.List)
		r.Get("/{formatID}", h.Format.Get)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(jwtSecret))
			r.Use(middleware.Authorize("organizer", "admin"))
			r.Post("/", h.Format.Create)
		})
	})

	router.Route("/competitions", func(r chi.Router) {
		r.Get("/", h.Competition.List)
		r.Get("/{competitionID}", h.Competition.Get)
		r.Get("/{competitionID}/matches", h.Schedule.ListMatches)
		r.Get("/{competitionID}/overview", h.Schedule.Overview)
		r.Get("/{competitionID}/standings", h.Standings.List)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(jwtSecret))
			r.Use(middleware.Authorize("organizer", "admin"))

			r.Post("/", h.Competition.Create)
			r.Put("/{competitionID}", h.Competition.Update)
			r.Delete("/{competitionID}", h.Competition.Delete)

			r.Post("/{competitionID}/schedule/generate", h.Schedule.Generate)
			r.Post("/{competitionID}/schedule/draft", h.Schedule.GenerateDraft)
			r.Post("/{competitionID}/schedule/seeding", h.Schedule.SaveSeeding)
			r.Post("/{competitionID}/schedule/assign-dates", h.Schedule.AssignDates)
			r.Post("/{competitionID}/schedule/finalize", h.Schedule.Finalize)
			r.Delete("/{competitionID}/schedule", h.Schedule.Reset)

			r.Post("/{competitionID}/standings/recompute", h.Standings.Recompute)
		})
	})

	router.Route("/clubs", func(r chi.Router) {
		r.Get("/", h.Club.List)
		r.Get("/{clubID}", h.Club.Get)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(jwtSecret))
			r.Use(middleware.Authorize("organizer", "admin"))
			r.Post("/", h.Club.Create)
		})
	})

	router.Route("/participants", func(r chi.Router) {
		r.Get("/", h.Participant.List)
		r.Get("/{participantID}", h.Participant.Get)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(jwtSecret))
			r.Use(middleware.Authorize("organizer", "admin"))
			r.Post("/", h.Participant.Create)
		})
	})

	router.Route("/matches", func(r chi.Router) {
		r.Get("/{matchID}", h.Match.Get)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(jwtSecret))
			r.Use(middleware.Authorize("organizer", "admin"))

			r.Post("/{matchID}/result", h.Match.SubmitResult)
			r.Post("/{matchID}/postpone", h.Match.Postpone)
		})
	})

	return router
}
