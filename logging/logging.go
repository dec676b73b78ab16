package logging

import (
	"io"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init builds a console logger for app and installs it as the global logger.
func Init(app string) zerolog.Logger {
	return InitWithWriter(app, os.Stdout)
}

func InitWithWriter(app string, out io.Writer) zerolog.Logger {
	output := zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	logger := zerolog.New(output).With().Timestamp().Str("app", app).Logger()
	log.Logger = logger
	return logger
}

// RequestLogger logs one line per request, at warn for 4xx and error for 5xx.
func RequestLogger(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}

				event := logger.Info()
				if status >= 500 {
					event = logger.Error()
				} else if status >= 400 {
					event = logger.Warn()
				}

				event.
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Int("status", status).
					Dur("duration", time.Since(start)).
					Str("request_id", middleware.GetReqID(r.Context())).
					Str("client_ip", r.RemoteAddr).
					Int("bytes", ww.BytesWritten()).
					Msg("http_request")
			}()

			next.ServeHTTP(ww, r)
		}
		return http.HandlerFunc(fn)
	}
}
