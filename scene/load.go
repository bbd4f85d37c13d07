package scene

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed demo.yaml
var demoYAML []byte

// Load reads and parses the scene file at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("Load(%s): %w", path, err)
	}
	return s, nil
}

// Parse decodes a YAML or JSON scene and validates its structure.
// Unknown keys are errors.
func Parse(data []byte) (*Scene, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scene
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("Parse: empty document: %w", ErrInvalidScene)
		}
		return nil, fmt.Errorf("Parse: %v: %w", err, ErrInvalidScene)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Demo returns the built-in scene: sin(z) over [-4,4]² drawn with lines
// of constant real part, the edges of the square [1,2]×[1,2] and their
// images under sin.
func Demo() *Scene {
	s, err := Parse(demoYAML)
	if err != nil {
		panic(err)
	}
	return s
}

// DemoYAML returns the source of the built-in scene.
func DemoYAML() []byte { return bytes.Clone(demoYAML) }
