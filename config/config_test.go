package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultMatchesReferenceScene(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}

	if len(cfg.Bodies) != 8 {
		t.Fatalf("len(Bodies) = %d, want 8", len(cfg.Bodies))
	}
	earth := cfg.Bodies[2]
	if earth.Name != "Earth" || earth.Distance != 20 || earth.Speed != 0.03 || earth.Color != 0x2a56ff {
		t.Errorf("Earth record = %+v", earth)
	}
	if cfg.Flight.Duration() != time.Second {
		t.Errorf("flight duration = %v, want 1s", cfg.Flight.Duration())
	}
	if cfg.Meteors.Count != 6 || cfg.Meteors.Threshold != -50 {
		t.Errorf("meteors = %+v", cfg.Meteors)
	}
	if cfg.Simulation.SpeedMax != 0.1 || cfg.Simulation.Normalization != 60 {
		t.Errorf("simulation = %+v", cfg.Simulation)
	}
}

func TestBuildBodies(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}

	bodies := cfg.BuildBodies()
	if len(bodies) != len(cfg.Bodies) {
		t.Fatalf("built %d bodies, want %d", len(bodies), len(cfg.Bodies))
	}
	mercury := bodies[0]
	if mercury.Angle != 0 {
		t.Errorf("initial angle = %v, want 0", mercury.Angle)
	}
	if mercury.Position.X != 10 || mercury.Position.Y != 0 || mercury.Position.Z != 0 {
		t.Errorf("initial position = %+v, want (10,0,0)", mercury.Position)
	}
	if mercury.Color.Hex() != 0xb1b1b1 {
		t.Errorf("color = %#x, want 0xb1b1b1", mercury.Color.Hex())
	}
}

func TestParseOverridesKeepDefaults(t *testing.T) {
	data := []byte(`
[flight]
duration_ms = 500

[camera]
position = [0.0, 10.0, 50.0]
`)
	cfg, err := Parse(data, "test")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if cfg.Flight.Duration() != 500*time.Millisecond {
		t.Errorf("duration = %v, want 500ms", cfg.Flight.Duration())
	}
	if cfg.Flight.Offset != [3]float64{0, 5, 15} {
		t.Errorf("offset = %v, want default (0,5,15)", cfg.Flight.Offset)
	}
	if cfg.Camera.Position != [3]float64{0, 10, 50} {
		t.Errorf("camera position = %v", cfg.Camera.Position)
	}
	if len(cfg.Bodies) != 8 {
		t.Errorf("bodies = %d, want default table", len(cfg.Bodies))
	}
}

func TestParseBodyTableReplacesDefaults(t *testing.T) {
	data := []byte(`
[[bodies]]
name = "Vulcan"
size = 0.5
distance = 5.0
speed = 0.05
`)
	cfg, err := Parse(data, "test")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(cfg.Bodies) != 1 {
		t.Fatalf("bodies = %d, want 1", len(cfg.Bodies))
	}
	// Color is omitted and must not leak from the default Mercury record
	if cfg.Bodies[0].Color != 0 {
		t.Errorf("color = %#x, want 0", cfg.Bodies[0].Color)
	}
}

func TestParseRejectsInvalidTables(t *testing.T) {
	tests := []struct {
		name string
		toml string
		want string
	}{
		{
			name: "negative distance",
			toml: "[[bodies]]\nname = \"A\"\nsize = 1.0\ndistance = -1.0\nspeed = 0.01\n",
			want: "distance",
		},
		{
			name: "nan speed",
			toml: "[[bodies]]\nname = \"A\"\nsize = 1.0\ndistance = 1.0\nspeed = nan\n",
			want: "speed",
		},
		{
			name: "infinite distance",
			toml: "[[bodies]]\nname = \"A\"\nsize = 1.0\ndistance = inf\nspeed = 0.01\n",
			want: "distance",
		},
		{
			name: "speed above slider",
			toml: "[[bodies]]\nname = \"A\"\nsize = 1.0\ndistance = 1.0\nspeed = 0.5\n",
			want: "slider range",
		},
		{
			name: "duplicate name",
			toml: "[[bodies]]\nname = \"A\"\nsize = 1.0\ndistance = 1.0\nspeed = 0.01\n" +
				"[[bodies]]\nname = \"A\"\nsize = 1.0\ndistance = 2.0\nspeed = 0.01\n",
			want: "already used",
		},
		{
			name: "empty name",
			toml: "[[bodies]]\nname = \" \"\nsize = 1.0\ndistance = 1.0\nspeed = 0.01\n",
			want: "name",
		},
		{
			name: "zero size",
			toml: "[[bodies]]\nname = \"A\"\nsize = 0.0\ndistance = 1.0\nspeed = 0.01\n",
			want: "size",
		},
		{
			name: "empty table",
			toml: "bodies = []\n",
			want: "empty",
		},
		{
			name: "rising meteors",
			toml: "[meteors]\nvelocity_y = 1.0\n",
			want: "velocity_y",
		},
		{
			name: "respawn below threshold",
			toml: "[meteors]\nrespawn_y = [-80.0, 120.0]\n",
			want: "threshold",
		},
		{
			name: "zero duration",
			toml: "[flight]\nduration_ms = 0\n",
			want: "duration_ms",
		},
		{
			name: "unknown key",
			toml: "[flight]\nspeed = 2\n",
			want: "unknown keys",
		},
		{
			name: "syntax error",
			toml: "[flight\n",
			want: "test",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.toml), "test")
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error %v does not wrap ErrInvalidConfig", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.toml")
	if err := os.WriteFile(path, []byte("[simulation]\ntarget_fps = 30\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Simulation.FrameInterval() != time.Second/30 {
		t.Errorf("frame interval = %v", cfg.Simulation.FrameInterval())
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestMeteorBounds(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	rb := cfg.Meteors.RespawnBounds()
	if rb.MinX != -100 || rb.MaxX != 100 || rb.MinY != 80 || rb.MaxY != 120 || rb.Threshold != -50 {
		t.Errorf("respawn bounds = %+v", rb)
	}
	sb := cfg.Meteors.SpawnBounds()
	if sb.MinZ != -200 || sb.MaxZ != 200 || sb.MinX != -150 {
		t.Errorf("spawn bounds = %+v", sb)
	}
}
