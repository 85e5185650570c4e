package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type AudioSpec struct {
	Name   string  `yaml:"name"`
	Path   string  `yaml:"path"`
	Volume float64 `yaml:"volume"`
	Loop   bool    `yaml:"loop"`
}

type PlayerSpec struct {
	Name         string      `yaml:"name"`
	MoveSpeed    float64     `yaml:"move_speed"`
	JumpVelocity float64     `yaml:"jump_velocity"`
	Gravity      float64     `yaml:"gravity"`
	Audio        []AudioSpec `yaml:"audio"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	data, err := Load("player.yaml")
	if err != nil {
		return nil, fmt.Errorf("prefabs: load player.yaml: %w", err)
	}
	var spec PlayerSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal player.yaml: %w", err)
	}
	return &spec, nil
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}
