package web

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/mww/dynasty_tracker/controller"
	"github.com/rs/zerolog/log"
	"github.com/unrolled/render"
)

type Server struct {
	server          *http.Server
	shutdownTimeout time.Duration
}

func NewServer(port int, ctrl controller.C, requestTimeout, shutdownTimeout time.Duration) (*Server, error) {
	if ctrl == nil {
		return nil, fmt.Errorf("a controller is required")
	}

	render := newRender()
	router := getRouter(ctrl, render, requestTimeout)

	s := &Server{
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		},
		shutdownTimeout: shutdownTimeout,
	}
	return s, nil
}

func (s *Server) ListenAndServe(shutdown chan bool, wg *sync.WaitGroup) {
	go func() {
		defer wg.Done()

		// Wait for the shutdown signal and safely close the server.
		<-shutdown

		ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			log.Fatal().Err(err).Msg("fatal error shutting down server")
		}
	}()

	log.Info().Str("addr", s.server.Addr).Msg("web server is listening")
	err := s.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("fatal error with server")
	}
}

func newRender() *render.Render {
	return render.New(render.Options{
		IndentJSON:   true,
		UnEscapeHTML: true,
	})
}
