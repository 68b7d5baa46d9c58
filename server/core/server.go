package core

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const maxRequestBody = 1 << 16 // 64 KB

// Server is the leaderboard HTTP service.
type Server struct {
	store *Store
	// levels is nil when every level ID is accepted.
	levels map[string]bool
	router chi.Router
	http   *http.Server
}

// NewServer wires the routes over store. A non-empty levels list restricts
// which level IDs accept and return scores.
func NewServer(store *Store, levels []string) *Server {
	s := &Server{store: store}
	if len(levels) > 0 {
		s.levels = make(map[string]bool, len(levels))
		for _, id := range levels {
			s.levels[id] = true
		}
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestSize(maxRequestBody))
	r.Use(allowOrigin)

	r.Get("/health", Health())
	r.Route("/level", func(r chi.Router) {
		r.Route("/{levelId}", func(r chi.Router) {
			r.Use(s.LevelCtx)
			r.Post("/", s.CreateScore)
			r.Get("/scores", s.ListScores)
		})
	})
	s.router = r
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves on addr until Stop is called.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
	}
	err := s.http.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Stop drains in-flight requests and closes the store.
func (s *Server) Stop(ctx context.Context) error {
	if s.http != nil {
		if err := s.http.Shutdown(ctx); err != nil {
			log.Printf("[highscore] shutdown: %v", err)
		}
	}
	return s.store.Close()
}

func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}

func allowOrigin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		next.ServeHTTP(w, r)
	})
}
