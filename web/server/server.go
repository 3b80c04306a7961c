package server

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Request limits
const (
	MinImageSize = 16
	MaxImageSize = 2000
	MaxThreads   = 256
)

// Config holds the server's listen port and asset locations
type Config struct {
	Port      int
	StaticDir string // Files served at /
	ScenesDir string // Source of "file:" scenes, empty for the default search
}

// DefaultConfig serves static/ and the default scenes directory on port
func DefaultConfig(port int) Config {
	return Config{Port: port, StaticDir: "static/"}
}

// Server handles web requests for the raytracer
type Server struct {
	port      int
	staticDir string
	scenesDir string
	mux       *http.ServeMux
}

// NewServer creates a new web server with DefaultConfig
func NewServer(port int) *Server {
	return NewServerWithConfig(DefaultConfig(port))
}

// NewServerWithConfig creates a new web server from config
func NewServerWithConfig(config Config) *Server {
	s := &Server{port: config.Port, staticDir: config.StaticDir, scenesDir: config.ScenesDir}
	s.mux = http.NewServeMux()
	s.mux.Handle("/", http.FileServer(http.Dir(s.staticDir)))
	s.mux.HandleFunc("/api/health", s.handleHealth)
	s.mux.HandleFunc("/api/scenes", s.handleScenes)
	s.mux.HandleFunc("/api/render", s.handleRender)
	s.mux.HandleFunc("/api/inspect", s.handleInspect)
	return s
}

// Handler returns the request router
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.mux)
}

// RenderRequest represents a render or inspect request from the client
type RenderRequest struct {
	Scene   string `json:"scene"`   // Built-in ID or "file:<name>"
	Width   int    `json:"width"`   // Image width, 0 for the scene default
	Height  int    `json:"height"`  // Image height, 0 for the scene default
	Threads int    `json:"threads"` // Render threads, 0 for every CPU
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists built-in and file scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	response, err := scene.ListAllScenesIn(s.scenesDir)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// parseCommonSceneParams parses the parameters shared by render and inspect
func (s *Server) parseCommonSceneParams(r *http.Request, req *RenderRequest) error {
	query := r.URL.Query()
	req.Scene = query.Get("scene")
	if req.Scene == "" {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 0, MinImageSize, MaxImageSize); err != nil {
		return err
	}
	if req.Height, err = parseIntParam(query, "height", 0, MinImageSize, MaxImageSize); err != nil {
		return err
	}
	if req.Threads, err = parseIntParam(query, "threads", 0, 1, MaxThreads); err != nil {
		return err
	}
	return nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// createScene builds the requested scene with the request's size overrides.
// Only built-in and "file:" IDs resolve; the scene's own size is clamped to
// the request limits.
func (s *Server) createScene(req *RenderRequest, logger core.Logger) (*scene.Scene, error) {
	sceneObj, err := scene.NewIn(s.scenesDir, req.Scene, scene.CameraConfig{Width: req.Width, Height: req.Height})
	if err != nil {
		return nil, err
	}
	if err := sceneObj.Validate(); err != nil {
		return nil, err
	}
	width, height := clampImageSize(sceneObj.Camera.HSize(), sceneObj.Camera.VSize())
	if width != sceneObj.Camera.HSize() || height != sceneObj.Camera.VSize() {
		if logger != nil {
			logger.Printf("Warning: %s is %dx%d, rendering at %dx%d\n",
				sceneObj.Name, sceneObj.Camera.HSize(), sceneObj.Camera.VSize(), width, height)
		}
		sceneObj.Resize(width, height)
	}
	if req.Threads > 0 {
		sceneObj.Threads = req.Threads
	}
	if logger != nil {
		sceneObj.Camera.SetLogger(logger)
	}
	return sceneObj, nil
}

// clampImageSize scales a size larger than MaxImageSize down, keeping the
// aspect ratio, then raises any side below MinImageSize.
func clampImageSize(width, height int) (int, int) {
	if longest := max(width, height); longest > MaxImageSize {
		scale := float64(MaxImageSize) / float64(longest)
		width = int(math.Round(float64(width) * scale))
		height = int(math.Round(float64(height) * scale))
	}
	return min(max(width, MinImageSize), MaxImageSize), min(max(height, MinImageSize), MaxImageSize)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}
