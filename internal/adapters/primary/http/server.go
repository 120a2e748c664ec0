// Package http serves the generated HTML replica for live preview. When
// the spec file changes on disk the deck is regenerated and connected
// browsers are told to reload over a websocket.
package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/deckgen/deckgen/internal/domain/entities"
	"github.com/deckgen/deckgen/internal/domain/ports"
	"github.com/deckgen/deckgen/internal/domain/services"
)

// Generator is the slice of the generator service the server needs.
type Generator interface {
	Generate(ctx context.Context, spec *entities.Spec) (*services.GenerationResult, error)
}

// Logger is the minimal leveled logger used by the server.
type Logger interface {
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

// Server is the preview HTTP server.
type Server struct {
	config    *entities.Config
	generator Generator
	store     ports.SpecStore
	watcher   ports.FileWatcher
	hub       *Hub
	logger    Logger

	specPath string

	mu       sync.RWMutex
	htmlPath string

	httpServer *http.Server
}

// NewServer creates a preview server for the given spec file.
func NewServer(config *entities.Config, generator Generator, store ports.SpecStore, watcher ports.FileWatcher, specPath string, logger Logger) *Server {
	return &Server{
		config:    config,
		generator: generator,
		store:     store,
		watcher:   watcher,
		hub:       NewHub(logger),
		logger:    logger,
		specPath:  specPath,
	}
}

// Start generates the deck, begins watching the spec file, and serves
// until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	if err := s.regenerate(ctx); err != nil {
		return err
	}

	events, err := s.watcher.Watch(ctx, s.specPath)
	if err != nil {
		return fmt.Errorf("watching spec: %w", err)
	}
	go s.watchLoop(ctx, events)

	router := mux.NewRouter()
	router.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	router.HandleFunc("/ws", s.handleWebSocket)
	router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	router.PathPrefix("/assets/").Handler(s.assetHandler())

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins: s.config.Server.GetCORSOrigins(),
		AllowedMethods: []string{http.MethodGet},
	})

	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           corsMiddleware.Handler(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("preview server listening on http://%s", addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("preview server: %w", err)
	case <-ctx.Done():
		return s.shutdown()
	}
}

func (s *Server) shutdown() error {
	s.hub.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.Server.GetShutdownTimeout())
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down preview server: %w", err)
	}
	return nil
}

// watchLoop regenerates the deck and notifies browsers on spec changes.
func (s *Server) watchLoop(ctx context.Context, events <-chan ports.FileChangeEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			if event.Type == ports.Deleted {
				s.logger.Warn("spec file removed: %s", event.Path)
				continue
			}

			s.logger.Info("spec changed, regenerating")
			if err := s.regenerate(ctx); err != nil {
				s.logger.Error("regeneration failed: %v", err)
				continue
			}
			s.hub.Broadcast(ReloadEvent{Type: "reload", Timestamp: event.Timestamp})
		}
	}
}

// regenerate runs the full generation flow and records the HTML artifact
// to serve.
func (s *Server) regenerate(ctx context.Context) error {
	spec, err := s.store.Load(ctx, s.specPath)
	if err != nil {
		return err
	}

	result, err := s.generator.Generate(ctx, spec)
	if err != nil {
		return err
	}

	htmlPath, ok := result.Paths["html"]
	if !ok {
		return errors.New("no HTML artifact produced; preview requires the html renderer")
	}

	s.mu.Lock()
	s.htmlPath = htmlPath
	s.mu.Unlock()

	return nil
}

// handleIndex serves the generated replica with the live reload client
// script injected before the closing body tag.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	htmlPath := s.htmlPath
	s.mu.RUnlock()

	content, err := os.ReadFile(htmlPath) // #nosec G304 - path produced by the generator
	if err != nil {
		s.logger.Error("reading replica: %v", err)
		http.Error(w, "presentation not available", http.StatusInternalServerError)
		return
	}

	html := strings.Replace(string(content), "</body>", reloadScript+"</body>", 1)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write([]byte(html))
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	s.hub.ServeWS(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// assetHandler serves images and other files referenced by the replica,
// rooted at the output directory. The directory is resolved per request: a
// spec edit can change output_dir, moving the replica between regenerations.
func (s *Server) assetHandler() http.Handler {
	return http.StripPrefix("/assets/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.RLock()
		dir := filepath.Dir(s.htmlPath)
		s.mu.RUnlock()

		http.FileServer(http.Dir(dir)).ServeHTTP(w, r)
	}))
}

// reloadScript reconnects-and-reloads when the server broadcasts a change.
const reloadScript = `<script>
(function() {
  'use strict';
  var proto = location.protocol === 'https:' ? 'wss://' : 'ws://';
  var ws = new WebSocket(proto + location.host + '/ws');
  ws.onmessage = function(ev) {
    try {
      var msg = JSON.parse(ev.data);
      if (msg.type === 'reload') location.reload();
    } catch (e) {}
  };
})();
</script>`
