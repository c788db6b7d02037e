package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/hamed0406/gatewatch/internal/runner"
)

// Server is the on-demand trigger surface: POST /api/run executes one probe
// cycle and returns the report. It stands in for the external scheduler
// when someone wants a run right now.
type Server struct {
	Logger *zap.Logger
	Runner *runner.Runner
}

func NewServer(l *zap.Logger, r *runner.Runner) *Server {
	if l == nil {
		l = zap.NewNop()
	}
	return &Server{Logger: l, Runner: r}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.AllowAll().Handler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Post("/api/run", s.handleRun)
	r.Get("/api/profile", s.handleProfile)

	return r
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	rep, err := s.Runner.Run(r.Context())
	if err != nil {
		// The only error that escapes a run is a configuration one.
		s.Logger.Error("trigger_run_failed", zap.Error(err))
		http.Error(w, "run failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(rep)
}

type profileTarget struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Expected string `json:"expected"`
	Gating   bool   `json:"gating,omitempty"`
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	targets := s.Runner.Profile.Build(s.Runner.GatingURL)
	out := make([]profileTarget, 0, len(targets))
	for _, t := range targets {
		out = append(out, profileTarget{
			Name:     t.Name,
			URL:      t.URL,
			Expected: t.Expected.String(),
			Gating:   t.Name == s.Runner.Profile.GatingName,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"profile": s.Runner.Profile.Name,
		"targets": out,
	})
}
