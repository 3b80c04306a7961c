package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/canvas"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// progressInterval is how often progress events are sent while rendering
const progressInterval = 200 * time.Millisecond

// SSEEvent represents one Server-Sent Event
type SSEEvent struct {
	Type string `json:"type"` // "console", "progress", "error", "complete"
	Data string `json:"data"` // JSON-encoded data
}

// ProgressUpdate reports how much of the image has been shaded
type ProgressUpdate struct {
	Progress  float64 `json:"progress"` // 0..1
	ElapsedMs int64   `json:"elapsedMs"`
}

// CompleteUpdate carries the finished image and render statistics
type CompleteUpdate struct {
	ImageData      string `json:"imageData"` // Base64 encoded PNG
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	PixelsWritten  int    `json:"pixelsWritten"`
	TotalPixels    int    `json:"totalPixels"`
	Threads        int    `json:"threads"`
	ElapsedMs      int64  `json:"elapsedMs"`
	PrimitiveCount int    `json:"primitiveCount"`
}

// handleRender renders a scene and streams console output, progress and the
// final image via SSE. Only this goroutine writes to the response.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	s.setSSEHeaders(w)
	ctx := r.Context()

	req := &RenderRequest{}
	if err := s.parseCommonSceneParams(r, req); err != nil {
		s.writeEvent(w, SSEEvent{Type: "error", Data: fmt.Sprintf("Invalid request: %v", err)})
		return
	}

	consoleChan := make(chan ConsoleMessage, 50)
	logger := NewWebLogger(fmt.Sprintf("render-%d", time.Now().UnixNano()), consoleChan)

	sceneObj, err := s.createScene(req, logger)
	if err != nil {
		s.writeEvent(w, SSEEvent{Type: "error", Data: err.Error()})
		return
	}

	type renderResult struct {
		stats renderer.RenderStats
		err   error
	}
	img := canvas.NewAtomic(sceneObj.Camera.HSize(), sceneObj.Camera.VSize())
	done := make(chan renderResult, 1)
	startTime := time.Now()
	go func() {
		stats, err := sceneObj.Render(ctx, img)
		done <- renderResult{stats, err}
	}()

	ticker := time.NewTicker(progressInterval)
	defer ticker.Stop()

	for {
		select {
		case msg := <-consoleChan:
			s.writeJSONEvent(w, "console", msg)

		case <-ticker.C:
			s.writeJSONEvent(w, "progress", ProgressUpdate{
				Progress:  sceneObj.Camera.Progress(),
				ElapsedMs: time.Since(startTime).Milliseconds(),
			})

		case result := <-done:
			if ctx.Err() != nil {
				return
			}
			s.drainConsole(w, consoleChan)
			if result.err != nil {
				if errors.Is(result.err, renderer.ErrRenderStopped) {
					log.Printf("Render of %s stopped by client", sceneObj.Name)
					return
				}
				s.writeEvent(w, SSEEvent{Type: "error", Data: fmt.Sprintf("Rendering failed: %v", result.err)})
				return
			}
			s.sendComplete(w, img.ToImage(), result.stats, sceneObj.GetPrimitiveCount())
			return

		case <-ctx.Done():
			// client went away; the render sees the same context
			<-done
			return
		}
	}
}

// setSSEHeaders sets the required headers for Server-Sent Events
func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

func (s *Server) sendComplete(w http.ResponseWriter, img image.Image, stats renderer.RenderStats, primitives int) {
	imageData, err := s.imageToBase64PNG(img)
	if err != nil {
		s.writeEvent(w, SSEEvent{Type: "error", Data: fmt.Sprintf("Encoding image failed: %v", err)})
		return
	}
	s.writeJSONEvent(w, "complete", CompleteUpdate{
		ImageData:      imageData,
		Width:          stats.Width,
		Height:         stats.Height,
		PixelsWritten:  stats.PixelsWritten,
		TotalPixels:    stats.TotalPixels,
		Threads:        stats.Threads,
		ElapsedMs:      stats.Duration.Milliseconds(),
		PrimitiveCount: primitives,
	})
}

// drainConsole forwards console messages logged before the render returned
func (s *Server) drainConsole(w http.ResponseWriter, consoleChan chan ConsoleMessage) {
	for {
		select {
		case msg := <-consoleChan:
			s.writeJSONEvent(w, "console", msg)
		default:
			return
		}
	}
}

func (s *Server) writeJSONEvent(w http.ResponseWriter, eventType string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Error marshaling %s event: %v", eventType, err)
		return
	}
	s.writeEvent(w, SSEEvent{Type: eventType, Data: string(data)})
}

func (s *Server) writeEvent(w http.ResponseWriter, event SSEEvent) {
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, event.Data); err != nil {
		return
	}
	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}
}

// imageToBase64PNG converts an image to base64-encoded PNG
func (s *Server) imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
