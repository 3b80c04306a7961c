package scene

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Scene types reported in SceneInfo.Type
const (
	TypeBuiltin = "builtin"
	TypeFile    = "file"
)

const (
	builtinGroup     = "Built-in Scenes"
	defaultFileGroup = "Scene Files"
	fileIDPrefix     = "file:"
	sceneFileExt     = ".ini"
)

// ErrUnknownScene is returned when a scene ID matches nothing
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	Name        string `json:"name"`        // Scene name
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
	Type        string `json:"type"`        // "builtin" or "file"
	FilePath    string `json:"filePath"`    // Path to the scene file (file type only)
	Variant     string `json:"variant"`     // Variant name (optional)
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

// ScenesResponse represents the complete response for /api/scenes
type ScenesResponse struct {
	Groups []SceneGroup `json:"groups"`
}

type builtinScene struct {
	info   SceneInfo
	create func(...CameraConfig) *Scene
}

var builtinScenes = []builtinScene{
	{
		info: SceneInfo{
			ID:          "default",
			Name:        "Default Scene",
			Description: "Three spheres in the corner of a room",
		},
		create: NewDefaultScene,
	},
	{
		info: SceneInfo{
			ID:          "reflections",
			Name:        "Reflections",
			Description: "Spheres of increasing reflectivity on a mirrored floor",
		},
		create: NewReflectionsScene,
	},
	{
		info: SceneInfo{
			ID:          "patterns",
			Name:        "Patterns",
			Description: "Stripe, ring, checker, gradient and perturbed patterns under a spot light",
		},
		create: NewPatternsScene,
	},
	{
		info: SceneInfo{
			ID:          "nested-glass",
			Name:        "Nested Glass",
			Description: "A glass ball holding an air bubble and a diamond core",
		},
		create: NewNestedGlassScene,
	},
}

// ListBuiltinScenes returns the scenes compiled into the binary
func ListBuiltinScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, b := range builtinScenes {
		info := b.info
		info.DisplayName = info.Name
		info.Group = builtinGroup
		info.Type = TypeBuiltin
		scenes = append(scenes, info)
	}
	return scenes
}

// findScenesDir tries the working directory and its parents, so the same
// lookup works from the repository root, web/ and package tests.
func findScenesDir() string {
	for _, path := range []string{"scenes", "../scenes", "../../scenes"} {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			return path
		}
	}
	return ""
}

// ListFileScenes scans the scenes directory and returns discovered scene files
func ListFileScenes() ([]SceneInfo, error) {
	scenesDir := findScenesDir()
	if scenesDir == "" {
		return []SceneInfo{}, nil
	}
	return ListFileScenesIn(scenesDir)
}

// ListFileScenesIn returns the scene files in dir, sorted by display name
func ListFileScenesIn(dir string) ([]SceneInfo, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*"+sceneFileExt))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := []SceneInfo{}
	for _, filePath := range files {
		sceneInfo, err := ParseSceneMetadata(filePath)
		if err != nil {
			fmt.Printf("Warning: failed to parse metadata for %s: %v\n", filePath, err)
			continue
		}
		scenes = append(scenes, sceneInfo)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})
	return scenes, nil
}

// ParseSceneMetadata extracts metadata from scene file header comments:
//
//	# Scene: Name
//	# Variant: Variant name
//	# Description: Free text
//	# Group: Group name
func ParseSceneMetadata(filePath string) (SceneInfo, error) {
	filename := filepath.Base(filePath)
	nameWithoutExt := strings.TrimSuffix(filename, filepath.Ext(filename))

	sceneInfo := SceneInfo{
		ID:          fileIDPrefix + nameWithoutExt,
		Name:        titleCase(nameWithoutExt),
		DisplayName: titleCase(nameWithoutExt),
		Group:       defaultFileGroup,
		Type:        TypeFile,
		FilePath:    filePath,
	}

	file, err := os.Open(filePath)
	if err != nil {
		// unreadable files keep the fallback values
		return sceneInfo, nil
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "#") {
			break
		}

		content := strings.TrimSpace(strings.TrimPrefix(line, "#"))
		key, value, found := strings.Cut(content, ":")
		if !found {
			continue
		}
		value = strings.TrimSpace(value)
		switch key {
		case "Scene":
			sceneInfo.Name = value
		case "Variant":
			sceneInfo.Variant = value
		case "Description":
			sceneInfo.Description = value
		case "Group":
			sceneInfo.Group = value
		}
	}

	if sceneInfo.Variant != "" {
		sceneInfo.DisplayName = fmt.Sprintf("%s - %s", sceneInfo.Name, sceneInfo.Variant)
	} else {
		sceneInfo.DisplayName = sceneInfo.Name
	}

	return sceneInfo, scanner.Err()
}

// ListAllScenes returns both built-in and file scenes, grouped by category
func ListAllScenes() (ScenesResponse, error) {
	return ListAllScenesIn("")
}

// ListAllScenesIn is ListAllScenes with scene files read from dir.
// An empty dir searches the default locations.
func ListAllScenesIn(dir string) (ScenesResponse, error) {
	var response ScenesResponse

	fileScenes, err := listFileScenes(dir)
	if err != nil {
		return response, fmt.Errorf("failed to list scene files: %w", err)
	}
	allScenes := append(ListBuiltinScenes(), fileScenes...)

	groupMap := make(map[string][]SceneInfo)
	for _, scene := range allScenes {
		groupMap[scene.Group] = append(groupMap[scene.Group], scene)
	}

	// Built-in first, then alphabetical
	var groupNames []string
	for groupName := range groupMap {
		if groupName != builtinGroup {
			groupNames = append(groupNames, groupName)
		}
	}
	sort.Strings(groupNames)

	if builtIn, exists := groupMap[builtinGroup]; exists {
		response.Groups = append(response.Groups, SceneGroup{Name: builtinGroup, Scenes: builtIn})
	}
	for _, groupName := range groupNames {
		response.Groups = append(response.Groups, SceneGroup{Name: groupName, Scenes: groupMap[groupName]})
	}

	return response, nil
}

// New creates a scene by ID. Built-in IDs come from ListBuiltinScenes,
// "file:<name>" selects a file from the scenes directory, and any path
// ending in .ini is loaded directly.
func New(id string, cameraOverrides ...CameraConfig) (*Scene, error) {
	if !isNamedID(id) && strings.HasSuffix(id, sceneFileExt) {
		return NewFileScene(id, cameraOverrides...)
	}
	return NewIn("", id, cameraOverrides...)
}

// NewIn creates a scene from a built-in ID or a "file:<name>" ID found in
// dir. An empty dir searches the default locations. Paths are never opened.
func NewIn(dir, id string, cameraOverrides ...CameraConfig) (*Scene, error) {
	for _, b := range builtinScenes {
		if b.info.ID == id {
			return b.create(cameraOverrides...), nil
		}
	}

	if strings.HasPrefix(id, fileIDPrefix) {
		fileScenes, err := listFileScenes(dir)
		if err != nil {
			return nil, err
		}
		for _, info := range fileScenes {
			if info.ID == id {
				return NewFileScene(info.FilePath, cameraOverrides...)
			}
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownScene, id)
}

func isNamedID(id string) bool {
	if strings.HasPrefix(id, fileIDPrefix) {
		return true
	}
	for _, b := range builtinScenes {
		if b.info.ID == id {
			return true
		}
	}
	return false
}

func listFileScenes(dir string) ([]SceneInfo, error) {
	if dir == "" {
		return ListFileScenes()
	}
	return ListFileScenesIn(dir)
}

// titleCase converts a filename-style string to title case
// e.g., "nested-glass" -> "Nested Glass"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
