package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/kuniyuki/beybattle-server/handlers"
	"github.com/kuniyuki/beybattle-server/middleware"
)

// SetupRoutes wires the full HTTP surface. Reads are public so spectator
// views work without a session; every mutation sits behind the operator
// token.
func SetupRoutes(
	router *chi.Mux,
	jwtSecret string,
	authHandler *handlers.AuthHandler,
	eventHandler *handlers.EventHandler,
	entryHandler *handlers.EntryHandler,
	userHandler *handlers.UserHandler,
	teamHandler *handlers.TeamHandler,
	scoreHandler *handlers.ScoreHandler,
	partsHandler *handlers.PartsHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	operator := func(r chi.Router) {
		r.Use(middleware.Authenticator([]byte(jwtSecret)))
		r.Use(middleware.RequireOperator)
	}

	router.Post("/auth/login", authHandler.LoginHandler)

	router.Get("/parts", partsHandler.CatalogHandler)
	router.Post("/parts/quick-parse", partsHandler.QuickParseHandler)

	router.Route("/events", func(r chi.Router) {
		r.Get("/", eventHandler.ListHandler)
		r.Get("/{eventID}", eventHandler.GetByIDHandler)
		r.Get("/{eventID}/bracket", eventHandler.BracketHandler)
		r.Get("/{eventID}/entries", entryHandler.ListHandler)
		r.Get("/{eventID}/battle", scoreHandler.StateHandler)

		r.Group(func(r chi.Router) {
			operator(r)
			r.Post("/", eventHandler.CreateHandler)
			r.Patch("/{eventID}", eventHandler.UpdateHandler)
			r.Delete("/{eventID}", eventHandler.DeleteHandler)
			r.Post("/{eventID}/entries", entryHandler.CreateHandler)
			r.Post("/{eventID}/battle/start", scoreHandler.StartHandler)
			r.Post("/{eventID}/battle/finish", scoreHandler.FinishHandler)
			r.Post("/{eventID}/battle/advance", scoreHandler.AdvanceHandler)
			r.Post("/{eventID}/battle/reset", scoreHandler.ResetHandler)
			r.Delete("/{eventID}/battle/winners", scoreHandler.ResetBracketHandler)
			r.Delete("/{eventID}/battle/winners/{slotKey}", scoreHandler.ReopenSlotHandler)
			r.Post("/{eventID}/finalize", scoreHandler.FinalizeHandler)
		})
	})

	router.Route("/entries", func(r chi.Router) {
		r.Get("/{entryID}/last-loadout", scoreHandler.LastLoadoutHandler)

		r.Group(func(r chi.Router) {
			operator(r)
			r.Delete("/{entryID}", entryHandler.DeleteHandler)
		})
	})

	router.Route("/users", func(r chi.Router) {
		r.Get("/", userHandler.ListHandler)
		r.Get("/{userID}", userHandler.GetByIDHandler)

		r.Group(func(r chi.Router) {
			operator(r)
			r.Post("/", userHandler.CreateHandler)
			r.Patch("/{userID}", userHandler.UpdateHandler)
			r.Delete("/{userID}", userHandler.DeleteHandler)
		})
	})

	router.Route("/teams", func(r chi.Router) {
		r.Get("/", teamHandler.ListHandler)
		r.Get("/{teamID}", teamHandler.GetByIDHandler)
		r.Get("/{teamID}/parts", teamHandler.ListPartsHandler)

		r.Group(func(r chi.Router) {
			operator(r)
			r.Post("/", teamHandler.CreateHandler)
			r.Patch("/{teamID}", teamHandler.RenameHandler)
			r.Delete("/{teamID}", teamHandler.DeleteHandler)
			r.Post("/{teamID}/parts", teamHandler.AddPartHandler)
			r.Delete("/parts/{partID}", teamHandler.RemovePartHandler)
		})
	})

	router.Get("/ws/events/{eventID}", webSocketHandler.ServeWs)
}
