// Package api exposes the layout engine over HTTP to an out-of-process GUI
// host. The handlers serialize all scene access through one mutex, which
// provides the single-caller ordering the engine assumes.
package api

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/kdmsoft/nodegrid/pkg/cache"
	"github.com/kdmsoft/nodegrid/pkg/errors"
	"github.com/kdmsoft/nodegrid/pkg/scene"
	"github.com/kdmsoft/nodegrid/pkg/snap"
)

// summaryTTL bounds how long a cached summary can outlive its scene hash.
// Keys already change with every scene edit, so this is only a cap on
// dead entries.
const summaryTTL = time.Hour

// Server wires the engine, a scene, and a cache behind a chi router.
type Server struct {
	mu     sync.Mutex
	scene  *scene.Scene
	engine *snap.Engine
	cache  cache.Cache
	logger *log.Logger
	router chi.Router
}

// NewServer creates a server around an initial scene. The cache may be a
// NullCache when summary caching is disabled.
func NewServer(logger *log.Logger, engine *snap.Engine, sc *scene.Scene, c cache.Cache) *Server {
	s := &Server{
		scene:  sc,
		engine: engine,
		cache:  c,
		logger: logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/healthz", s.handleHealth)
	r.Get("/scene", s.handleGetScene)
	r.Put("/scene", s.handlePutScene)
	r.Post("/nodes/{id}/position", s.handleMoveNode)
	r.Get("/containers", s.handleListContainers)
	r.Get("/containers/{id}", s.handleGetContainer)
	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Scene returns the scene the server currently owns. PUT /scene swaps the
// instance, so callers that held the startup scene must re-read it here
// before persisting.
func (s *Server) Scene() *scene.Scene {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scene
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGetScene(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	f := scene.FromScene(s.scene)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, f)
}

func (s *Server) handlePutScene(w http.ResponseWriter, r *http.Request) {
	var f scene.File
	if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode scene"))
		return
	}
	sc, err := scene.ToScene(f)
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidScene, err, "validate scene"))
		return
	}

	s.mu.Lock()
	s.scene = sc
	s.engine.LayoutAll(sc)
	nodes := sc.NodeCount()
	s.mu.Unlock()

	s.logger.Info("scene replaced", "nodes", nodes)
	writeJSON(w, http.StatusOK, map[string]int{"nodes": nodes})
}

// moveRequest is the position commit payload.
type moveRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (s *Server) handleMoveNode(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode position"))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.scene.Node(id)
	if !ok {
		writeError(w, errors.New(errors.ErrCodeNodeNotFound, "node %s not found", id))
		return
	}

	n.SetPos(req.X, req.Y)
	s.engine.NodeMoved(s.scene, n)

	writeJSON(w, http.StatusOK, n)
}

func (s *Server) handleListContainers(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	summaries := s.engine.SummarizeAll(s.scene)
	s.mu.Unlock()

	if summaries == nil {
		summaries = []snap.Summary{}
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleGetContainer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	defer s.mu.Unlock()

	key := s.summaryKey(r, id)
	if key != "" {
		if data, ok, err := s.cache.Get(r.Context(), key); err == nil && ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write(data)
			return
		}
	}

	summary, ok := s.engine.Summarize(s.scene, id)
	if !ok {
		writeError(w, errors.New(errors.ErrCodeNotFound, "container %s not found", id))
		return
	}

	if key != "" {
		if data, err := json.Marshal(summary); err == nil {
			if err := s.cache.Set(r.Context(), key, data, summaryTTL); err != nil {
				s.logger.Debug("summary cache write failed", "err", err)
			}
		}
	}
	writeJSON(w, http.StatusOK, summary)
}

// summaryKey derives the cache key for a container summary. Returns ""
// when the scene cannot be hashed; the handler then skips the cache.
func (s *Server) summaryKey(r *http.Request, containerID string) string {
	hash, err := s.scene.Hash()
	if err != nil {
		s.logger.Debug("scene hash failed", "err", err)
		return ""
	}
	return cache.SummaryKey(hash, containerID)
}

// errorResponse is the JSON error body.
type errorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err *errors.Error) {
	writeJSON(w, statusFor(err.Code), errorResponse{
		Code:    err.Code,
		Message: errors.UserMessage(err),
	})
}

func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidScene, errors.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeSceneNotFound, errors.ErrCodeNodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
