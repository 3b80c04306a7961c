package server

import (
	"fmt"
	"net/http"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/material"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	GeometryType string                 `json:"geometryType"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Inside       bool                   `json:"inside"`
	N1           float64                `json:"n1"`
	N2           float64                `json:"n2"`
	Properties   map[string]interface{} `json:"properties"`
}

// handleInspect casts the camera ray through one pixel and reports what it hits
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "Method not allowed"})
		return
	}

	req := &RenderRequest{}
	if err := s.parseCommonSceneParams(r, req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	sceneObj, err := s.createScene(req, nil)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	query := r.URL.Query()
	x, err := parseIntParam(query, "x", -1, 0, sceneObj.Camera.HSize()-1)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	y, err := parseIntParam(query, "y", -1, 0, sceneObj.Camera.VSize()-1)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if x < 0 || y < 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "x and y are required"})
		return
	}

	ray := sceneObj.Camera.RayForPixel(x, y)
	list := sceneObj.World.Intersect(ray)
	hit, ok := list.Hit()
	if !ok {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false})
		return
	}

	state := geometry.NewIntersectionState(hit, ray, list)
	writeJSON(w, http.StatusOK, InspectResponse{
		Hit:          true,
		GeometryType: string(state.Object.Shape.Type()),
		Point:        [3]float64{state.Point.X, state.Point.Y, state.Point.Z},
		Normal:       [3]float64{state.NormalVector.X, state.NormalVector.Y, state.NormalVector.Z},
		Distance:     state.T,
		Inside:       state.Inside,
		N1:           state.N1,
		N2:           state.N2,
		Properties:   s.extractProperties(state.Object),
	})
}

// extractProperties reports the material and shape details of a primitive
func (s *Server) extractProperties(object *geometry.Primitive) map[string]interface{} {
	m := object.Material
	properties := map[string]interface{}{
		"color":           hexColor(m.Color),
		"ambient":         m.Ambient,
		"diffuse":         m.Diffuse,
		"specular":        m.Specular,
		"shininess":       m.Shininess,
		"reflective":      m.Reflective,
		"transparency":    m.Transparency,
		"refractiveIndex": m.RefractiveIndex,
	}
	if m.Pattern != nil {
		properties["pattern"] = patternName(m.Pattern)
	}
	if sphere, ok := object.Shape.(*geometry.Sphere); ok {
		properties["radius"] = sphere.Radius
	}
	return properties
}

func patternName(pattern material.Pattern) string {
	switch p := pattern.(type) {
	case *material.SolidPattern:
		return "solid"
	case *material.StripePattern:
		return "stripe"
	case *material.RingPattern:
		return "ring"
	case *material.CheckerPattern:
		return "checker"
	case *material.GradientPattern:
		return "gradient"
	case *material.PerturbedPattern:
		return "perturbed " + patternName(p.Inner)
	default:
		return fmt.Sprintf("%T", pattern)
	}
}

func hexColor(c core.Color) string {
	r, g, b := c.Bytes()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
