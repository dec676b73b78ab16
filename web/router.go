package web

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mww/dynasty_tracker/controller"
	"github.com/mww/dynasty_tracker/logging"
	"github.com/rs/zerolog/log"
	"github.com/unrolled/render"
)

func getRouter(ctrl controller.C, render *render.Render, timeout time.Duration) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.RequestLogger(log.Logger))
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(timeout))

	r.Get("/", rootHandler(ctrl, render))
	r.Get("/bowls", listBowlsHandler(ctrl, render))

	r.Route("/teams", func(r chi.Router) {
		r.Get("/", listTeamsHandler(ctrl, render))
		r.Get("/{team}", getTeamHandler(ctrl, render))
	})

	r.Route("/dynasties", func(r chi.Router) {
		r.Get("/", listDynastiesHandler(ctrl, render))
		r.Post("/", createDynastyHandler(ctrl, render))

		r.Route("/{dynastyID}", func(r chi.Router) {
			r.Get("/", getDynastyHandler(ctrl, render))
			r.Delete("/", deleteDynastyHandler(ctrl, render))
			r.Post("/advance", advanceSeasonHandler(ctrl, render))
			r.Post("/awards", addAwardHandler(ctrl, render))
			r.Get("/bowls", bowlHistoryHandler(ctrl, render))
			r.Get("/cfp/{cfpID}", getCFPGameHandler(ctrl, render))

			r.Route("/games", func(r chi.Router) {
				r.Post("/", addGameHandler(ctrl, render))
				r.Post("/import", importScheduleHandler(ctrl, render))
				r.Get("/{gameID}", getGameHandler(ctrl, render))
				r.Put("/{gameID}", updateGameHandler(ctrl, render))
			})

			r.Route("/seasons", func(r chi.Router) {
				r.Get("/", seasonSummariesHandler(ctrl, render))
				r.Get("/{year:\\d+}", scheduleHandler(ctrl, render))
				r.Get("/{year:\\d+}/cfp", bracketHandler(ctrl, render))
				r.Put("/{year:\\d+}/standings", setStandingsHandler(ctrl, render))
			})
		})
	})

	return r
}
