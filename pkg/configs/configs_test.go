package configs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/yeisme/animations/pkg/animation"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestLoadConfig_YAML(t *testing.T) {
	path := writeConfig(t, "animations.yaml", `
animation:
  preset: pets
  max_iterations: 3
  delay: 250ms
  pre_text: "["
  post_text: "] working"
`)

	config, v, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned an error: %v", err)
	}
	if v.ConfigFileUsed() != path {
		t.Errorf("Expected config file %s, got %s", path, v.ConfigFileUsed())
	}

	a := config.Animation
	if a.Preset != "pets" || a.MaxIterations != 3 || a.Delay != 250*time.Millisecond {
		t.Errorf("Unexpected animation config: %+v", a)
	}
	if a.PreText != "[" || a.PostText != "] working" {
		t.Errorf("Unexpected surrounding text: %q %q", a.PreText, a.PostText)
	}
	if !a.HideCursor {
		t.Error("hide_cursor should default to true")
	}
	if config.App.Name != "animations" || config.Log.Mode != "console" {
		t.Errorf("Defaults not applied: %+v %+v", config.App, config.Log)
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	path := writeConfig(t, "animations.toml", "[animation]\nmax_iterations = 2\n")
	t.Setenv("ANIMATIONS_ANIMATION_MAX_ITERATIONS", "5")

	config, _, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned an error: %v", err)
	}
	if config.Animation.MaxIterations != 5 {
		t.Errorf("Expected env override 5, got %d", config.Animation.MaxIterations)
	}
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := writeConfig(t, "animations.json", "{not json")
	if _, _, err := LoadConfig(path); err == nil {
		t.Fatal("Expected an error for malformed config")
	}
}

func TestAnimationConfig_Options(t *testing.T) {
	tests := []struct {
		name   string
		config AnimationConfig
		want   string
	}{
		{
			name:   "preset",
			config: AnimationConfig{Preset: "pets", MaxIterations: 3},
			want:   `Animation(max_iterations=3, frames=["🐶" "🐱"])`,
		},
		{
			name:   "frames win over preset",
			config: AnimationConfig{Preset: "pets", Frames: []string{"a", "b"}, MaxIterations: 1, Delay: time.Second},
			want:   `Animation(max_iterations=1, frames=["a" "b"], delay=1s)`,
		},
		{
			name:   "forever",
			config: AnimationConfig{Preset: "line", MaxIterations: 4, Forever: true, RaiseOnFinish: true},
			want:   `Animation(max_iterations=-1, frames=["-" "\\" "|" "/"], raise_on_finish=true)`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := animation.New(tt.config.Options()...)
			if err != nil {
				t.Fatalf("New returned an error: %v", err)
			}
			if a.String() != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, a.String())
			}
		})
	}
}

func TestAnimationConfig_InvalidOptions(t *testing.T) {
	for _, c := range []AnimationConfig{
		{MaxIterations: -3},
		{MaxIterations: 0},
		{MaxIterations: 1, Delay: -time.Second},
		{MaxIterations: 1, Preset: "unknown"},
	} {
		if _, err := animation.New(c.Options()...); !errors.Is(err, animation.ErrInvalidConfiguration) {
			t.Errorf("%+v: expected ErrInvalidConfiguration, got %v", c, err)
		}
	}
}

func TestAnimationConfig_ZeroValuesFromFile(t *testing.T) {
	path := writeConfig(t, "animations.yaml", "animation:\n  max_iterations: 0\n")
	config, _, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned an error: %v", err)
	}
	if _, err := animation.New(config.Animation.Options()...); !errors.Is(err, animation.ErrInvalidConfiguration) {
		t.Errorf("max_iterations: 0 should be rejected, got %v", err)
	}

	path = writeConfig(t, "animations.yaml", "animation:\n  delay: 0s\n")
	config, _, err = LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned an error: %v", err)
	}
	a, err := animation.New(config.Animation.Options()...)
	if err != nil {
		t.Fatalf("delay: 0s should mean no delay, got %v", err)
	}
	if a.Delay() != 0 || a.MaxIterations() != animation.DefaultMaxIterations {
		t.Errorf("Unexpected animation: %s", a)
	}
}

func TestCreateDefaultConfig(t *testing.T) {
	for _, format := range []OutputFormat{FormatYAML, FormatJSON, FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "animations."+string(format))
			if err := CreateDefaultConfig(path, format); err != nil {
				t.Fatalf("CreateDefaultConfig returned an error: %v", err)
			}
			if err := CreateDefaultConfig(path, format); err == nil {
				t.Error("Expected an error when the file already exists")
			}

			config, _, err := LoadConfig(path)
			if err != nil {
				t.Fatalf("LoadConfig returned an error: %v", err)
			}
			a := config.Animation
			if a.Preset != animation.DefaultPreset || len(a.Frames) != 0 || a.MaxIterations != 1 {
				t.Errorf("Unexpected defaults: %+v", a)
			}
			if a.Delay != 100*time.Millisecond || !a.HideCursor || a.Forever || a.RaiseOnFinish {
				t.Errorf("Unexpected defaults: %+v", a)
			}
		})
	}
}

func TestCreateDefaultConfig_TextUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "animations.txt")
	if err := CreateDefaultConfig(path, FormatText); err == nil {
		t.Error("Expected an error for text format")
	}
}
