package core

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/splitsecond/splitsecond/shared/score"
)

const (
	defaultLimit = 10
	maxLimit     = 100

	maxLevelIDLength = 64
)

type ctxKey string

const levelKey ctxKey = "level"

// LevelCtx resolves the {levelId} URL parameter and stores it on the request
// context. Unknown levels are rejected when the server has a level list.
func (s *Server) LevelCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		level := chi.URLParam(r, "levelId")
		if level == "" || utf8.RuneCountInString(level) > maxLevelIDLength {
			render.Render(w, r, ErrInvalidRequest(errors.New("invalid level id")))
			return
		}
		if s.levels != nil && !s.levels[level] {
			render.Render(w, r, ErrNotFound(fmt.Errorf("unknown level %q", level)))
			return
		}
		ctx := context.WithValue(r.Context(), levelKey, level)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func levelFrom(r *http.Request) string {
	level, _ := r.Context().Value(levelKey).(string)
	return level
}

// CreateScore handles POST /level/{levelId}/.
func (s *Server) CreateScore(w http.ResponseWriter, r *http.Request) {
	data := &score.CreateRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}

	level := levelFrom(r)
	entry, err := s.store.CreateScore(r.Context(), level, data)
	if err != nil {
		log.Printf("[highscore] create score for %s: %v", level, err)
		render.Render(w, r, ErrInternal(err))
		return
	}
	log.Printf("[highscore] %s: %q finished in %s", level, entry.Username, score.FormatTime(entry.Duration()))

	render.Status(r, http.StatusCreated)
	render.Render(w, r, entry)
}

// ListScores handles GET /level/{levelId}/scores?limit=N.
func (s *Server) ListScores(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}

	level := levelFrom(r)
	scores, err := s.store.TopScores(r.Context(), level, limit)
	if err != nil {
		log.Printf("[highscore] list scores for %s: %v", level, err)
		render.Render(w, r, ErrInternal(err))
		return
	}

	list := make([]render.Renderer, 0, len(scores))
	for _, sc := range scores {
		list = append(list, sc)
	}
	render.RenderList(w, r, list)
}

// parseLimit reads the limit query value. Empty means the default; larger
// values are capped.
func parseLimit(raw string) (int, error) {
	if raw == "" {
		return defaultLimit, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return 0, fmt.Errorf("limit must be a positive integer, got %q", raw)
	}
	return min(limit, maxLimit), nil
}
