package scenes

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed *.yaml levels/*.yaml
var ScenesFS embed.FS

// Scene is a parsed scene definition. Nodes are listed parents-first,
// with the root node at index zero.
type Scene struct {
	Name  string `yaml:"name"`
	Root  string `yaml:"root"`
	Nodes []Node `yaml:"nodes"`
}

type Node struct {
	Path       string            `yaml:"path"`
	Type       string            `yaml:"type"`
	X          float64           `yaml:"x"`
	Y          float64           `yaml:"y"`
	W          float64           `yaml:"w"`
	H          float64           `yaml:"h"`
	Text       string            `yaml:"text"`
	Properties map[string]string `yaml:"properties"`
}

func LoadScene(name string) (*Scene, error) {
	data, err := fs.ReadFile(ScenesFS, cleanScenePath(name))
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	var scene Scene
	if err := yaml.Unmarshal(data, &scene); err != nil {
		return nil, fmt.Errorf("unmarshal scene: %w", err)
	}
	return &scene, nil
}

func cleanScenePath(path string) string {
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "scenes/") {
		return strings.TrimPrefix(s, "scenes/")
	}
	return s
}
