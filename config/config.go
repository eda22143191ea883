package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/orrery/components"
	"github.com/lixenwraith/orrery/constants"
	"github.com/lixenwraith/orrery/vmath"
)

//go:embed bodies.toml
var defaultBodies []byte

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the full startup configuration
// Everything except body speeds is read-only once the simulation starts
type Config struct {
	Simulation SimulationConfig `toml:"simulation"`
	Camera     CameraConfig     `toml:"camera"`
	Flight     FlightConfig     `toml:"flight"`
	Sun        SunConfig        `toml:"sun"`
	Meteors    MeteorConfig     `toml:"meteors"`
	Bodies     []BodyConfig     `toml:"bodies"`
}

type SimulationConfig struct {
	TargetFPS     int     `toml:"target_fps"`
	Normalization float64 `toml:"normalization"`
	SpeedMin      float64 `toml:"speed_min"`
	SpeedMax      float64 `toml:"speed_max"`
	SpeedStep     float64 `toml:"speed_step"`
}

type CameraConfig struct {
	FOV         float64    `toml:"fov"`
	Near        float64    `toml:"near"`
	Far         float64    `toml:"far"`
	Position    [3]float64 `toml:"position"`
	MinDistance float64    `toml:"min_distance"`
	MaxDistance float64    `toml:"max_distance"`
	Damping     float64    `toml:"damping"`
	RotateSpeed float64    `toml:"rotate_speed"`
	ZoomFactor  float64    `toml:"zoom_factor"`
}

type FlightConfig struct {
	DurationMs int        `toml:"duration_ms"`
	Offset     [3]float64 `toml:"offset"`
}

type SunConfig struct {
	Radius float64 `toml:"radius"`
	Color  uint32  `toml:"color"`
}

// MeteorConfig holds [min, max] pairs for every randomized quantity
type MeteorConfig struct {
	Count     int        `toml:"count"`
	Radius    float64    `toml:"radius"`
	SpawnX    [2]float64 `toml:"spawn_x"`
	SpawnY    [2]float64 `toml:"spawn_y"`
	SpawnZ    [2]float64 `toml:"spawn_z"`
	RespawnX  [2]float64 `toml:"respawn_x"`
	RespawnY  [2]float64 `toml:"respawn_y"`
	RespawnZ  [2]float64 `toml:"respawn_z"`
	Threshold float64    `toml:"threshold"`
	VelocityX [2]float64 `toml:"velocity_x"`
	VelocityY float64    `toml:"velocity_y"`
	VelocityZ [2]float64 `toml:"velocity_z"`
}

// BodyConfig is one record of the body table
type BodyConfig struct {
	Name     string  `toml:"name"`
	Size     float64 `toml:"size"`
	Distance float64 `toml:"distance"`
	Speed    float64 `toml:"speed"`
	Color    uint32  `toml:"color"`
}

// Default returns the built-in scene
func Default() (*Config, error) {
	return Parse(nil, "defaults")
}

// Load reads a TOML file over the built-in scene
// Keys present in the file replace the defaults; a [[bodies]] list
// replaces the whole default table
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes TOML bytes over the built-in scene and validates the result
func Parse(data []byte, source string) (*Config, error) {
	cfg := builtin()
	md, err := decodeInto(cfg, data, source)
	if err != nil {
		return nil, err
	}
	// Bodies decode into a nil slice so records never inherit fields from
	// the default table at the same index
	if !md.IsDefined("bodies") {
		if _, err := decodeInto(cfg, defaultBodies, "embedded body table"); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decodeInto(cfg *Config, data []byte, source string) (toml.MetaData, error) {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return md, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, source, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return md, fmt.Errorf("%w: %s: unknown keys: %s", ErrInvalidConfig, source, strings.Join(keys, ", "))
	}
	return md, nil
}

// builtin mirrors the reference tunables, bodies come from the embedded table
func builtin() *Config {
	return &Config{
		Simulation: SimulationConfig{
			TargetFPS:     constants.TargetFPS,
			Normalization: constants.OrbitNormalization,
			SpeedMin:      constants.SpeedMin,
			SpeedMax:      constants.SpeedMax,
			SpeedStep:     constants.SpeedStep,
		},
		Camera: CameraConfig{
			FOV:         constants.CameraFOV,
			Near:        constants.CameraNear,
			Far:         constants.CameraFar,
			Position:    [3]float64{constants.CameraStartX, constants.CameraStartY, constants.CameraStartZ},
			MinDistance: constants.CameraMinDistance,
			MaxDistance: constants.CameraMaxDistance,
			Damping:     constants.CameraDamping,
			RotateSpeed: constants.CameraRotateSpeed,
			ZoomFactor:  constants.CameraZoomFactor,
		},
		Flight: FlightConfig{
			DurationMs: int(constants.FlightDuration / time.Millisecond),
			Offset:     [3]float64{constants.FlightOffsetX, constants.FlightOffsetY, constants.FlightOffsetZ},
		},
		Sun: SunConfig{
			Radius: constants.SunRadius,
			Color:  constants.SunColor,
		},
		Meteors: MeteorConfig{
			Count:     constants.MeteorCount,
			Radius:    constants.MeteorRadius,
			SpawnX:    [2]float64{constants.MeteorSpawnXMin, constants.MeteorSpawnXMax},
			SpawnY:    [2]float64{constants.MeteorYMin, constants.MeteorYMax},
			SpawnZ:    [2]float64{constants.MeteorSpawnZMin, constants.MeteorSpawnZMax},
			RespawnX:  [2]float64{constants.MeteorRespawnXMin, constants.MeteorRespawnXMax},
			RespawnY:  [2]float64{constants.MeteorYMin, constants.MeteorYMax},
			RespawnZ:  [2]float64{constants.MeteorRespawnZMin, constants.MeteorRespawnZMax},
			Threshold: constants.MeteorThreshold,
			VelocityX: [2]float64{constants.MeteorVelXMin, constants.MeteorVelXMax},
			VelocityY: constants.MeteorVelY,
			VelocityZ: [2]float64{constants.MeteorVelZMin, constants.MeteorVelZMax},
		},
	}
}

// Validate rejects values that would feed NaN or nonsense into the orbit
// and projection math; the first failure is returned
func (c *Config) Validate() error {
	if err := c.Simulation.validate(); err != nil {
		return err
	}
	if err := c.Camera.validate(); err != nil {
		return err
	}
	if err := c.Flight.validate(); err != nil {
		return err
	}
	if !vmath.IsFinite(c.Sun.Radius) || c.Sun.Radius <= 0 {
		return invalid("sun: radius %v must be finite and positive", c.Sun.Radius)
	}
	if err := c.Meteors.validate(); err != nil {
		return err
	}

	if len(c.Bodies) == 0 {
		return invalid("body table is empty")
	}
	seen := make(map[string]int, len(c.Bodies))
	for i, b := range c.Bodies {
		if err := b.validate(c.Simulation); err != nil {
			return fmt.Errorf("body %d: %w", i, err)
		}
		if prev, dup := seen[b.Name]; dup {
			return invalid("body %d: name %q already used by body %d", i, b.Name, prev)
		}
		seen[b.Name] = i
	}
	return nil
}

func (s SimulationConfig) validate() error {
	if s.TargetFPS <= 0 {
		return invalid("simulation: target_fps %d must be positive", s.TargetFPS)
	}
	if !nonNegative(s.Normalization) {
		return invalid("simulation: normalization %v must be finite and non-negative", s.Normalization)
	}
	if !nonNegative(s.SpeedMin) || !nonNegative(s.SpeedMax) || s.SpeedMin > s.SpeedMax {
		return invalid("simulation: speed range [%v, %v] must be finite, non-negative and ordered", s.SpeedMin, s.SpeedMax)
	}
	if !vmath.IsFinite(s.SpeedStep) || s.SpeedStep <= 0 {
		return invalid("simulation: speed_step %v must be finite and positive", s.SpeedStep)
	}
	return nil
}

func (c CameraConfig) validate() error {
	if !vmath.IsFinite(c.FOV) || c.FOV <= 0 || c.FOV >= 180 {
		return invalid("camera: fov %v must be in (0, 180)", c.FOV)
	}
	if !vmath.IsFinite(c.Near) || !vmath.IsFinite(c.Far) || c.Near <= 0 || c.Far <= c.Near {
		return invalid("camera: clip range near=%v far=%v must satisfy 0 < near < far", c.Near, c.Far)
	}
	if !vmath.V3Finite(c.StartPosition()) {
		return invalid("camera: position %v must be finite", c.Position)
	}
	if !nonNegative(c.MinDistance) || !vmath.IsFinite(c.MaxDistance) || c.MaxDistance < c.MinDistance {
		return invalid("camera: distance range [%v, %v] must be finite, non-negative and ordered", c.MinDistance, c.MaxDistance)
	}
	if !vmath.IsFinite(c.Damping) || c.Damping <= 0 || c.Damping > 1 {
		return invalid("camera: damping %v must be in (0, 1]", c.Damping)
	}
	if !nonNegative(c.RotateSpeed) {
		return invalid("camera: rotate_speed %v must be finite and non-negative", c.RotateSpeed)
	}
	if !vmath.IsFinite(c.ZoomFactor) || c.ZoomFactor <= 0 || c.ZoomFactor >= 1 {
		return invalid("camera: zoom_factor %v must be in (0, 1)", c.ZoomFactor)
	}
	return nil
}

func (f FlightConfig) validate() error {
	if f.DurationMs <= 0 {
		return invalid("flight: duration_ms %d must be positive", f.DurationMs)
	}
	if !vmath.V3Finite(f.OffsetVec()) {
		return invalid("flight: offset %v must be finite", f.Offset)
	}
	return nil
}

func (m MeteorConfig) validate() error {
	if m.Count < 0 {
		return invalid("meteors: count %d must be non-negative", m.Count)
	}
	if !nonNegative(m.Radius) {
		return invalid("meteors: radius %v must be finite and non-negative", m.Radius)
	}
	ranges := []struct {
		name string
		r    [2]float64
	}{
		{"spawn_x", m.SpawnX}, {"spawn_y", m.SpawnY}, {"spawn_z", m.SpawnZ},
		{"respawn_x", m.RespawnX}, {"respawn_y", m.RespawnY}, {"respawn_z", m.RespawnZ},
		{"velocity_x", m.VelocityX}, {"velocity_z", m.VelocityZ},
	}
	for _, rg := range ranges {
		if !vmath.IsFinite(rg.r[0]) || !vmath.IsFinite(rg.r[1]) || rg.r[0] > rg.r[1] {
			return invalid("meteors: %s %v must be a finite [min, max] pair", rg.name, rg.r)
		}
	}
	if !vmath.IsFinite(m.Threshold) {
		return invalid("meteors: threshold %v must be finite", m.Threshold)
	}
	// A respawned meteor must start above the threshold and keep falling
	if m.RespawnY[0] < m.Threshold || m.SpawnY[0] < m.Threshold {
		return invalid("meteors: spawn and respawn Y bands must lie above threshold %v", m.Threshold)
	}
	if !vmath.IsFinite(m.VelocityY) || m.VelocityY >= 0 {
		return invalid("meteors: velocity_y %v must be finite and negative", m.VelocityY)
	}
	return nil
}

func (b BodyConfig) validate(sim SimulationConfig) error {
	if strings.TrimSpace(b.Name) == "" {
		return invalid("name must not be empty")
	}
	if !vmath.IsFinite(b.Size) || b.Size <= 0 {
		return invalid("%q: size %v must be finite and positive", b.Name, b.Size)
	}
	if !nonNegative(b.Distance) {
		return invalid("%q: distance %v must be finite and non-negative", b.Name, b.Distance)
	}
	if !nonNegative(b.Speed) {
		return invalid("%q: speed %v must be finite and non-negative", b.Name, b.Speed)
	}
	if b.Speed < sim.SpeedMin || b.Speed > sim.SpeedMax {
		return invalid("%q: speed %v outside slider range [%v, %v]", b.Name, b.Speed, sim.SpeedMin, sim.SpeedMax)
	}
	if b.Color > 0xffffff {
		return invalid("%q: color %#x is not a 24-bit RGB value", b.Name, b.Color)
	}
	return nil
}

// BuildBodies creates the runtime bodies in table order
func (c *Config) BuildBodies() []*components.Body {
	bodies := make([]*components.Body, len(c.Bodies))
	for i, b := range c.Bodies {
		bodies[i] = components.NewBody(b.Name, b.Size, b.Distance, b.Speed, components.RGBFromHex(b.Color))
	}
	return bodies
}

// StartPosition returns the initial camera position
func (c CameraConfig) StartPosition() vmath.Vec3 {
	return vmath.V3(c.Position[0], c.Position[1], c.Position[2])
}

// OffsetVec returns the framing offset applied to a flight target
func (f FlightConfig) OffsetVec() vmath.Vec3 {
	return vmath.V3(f.Offset[0], f.Offset[1], f.Offset[2])
}

// Duration returns the flight duration
func (f FlightConfig) Duration() time.Duration {
	return time.Duration(f.DurationMs) * time.Millisecond
}

// FrameInterval returns the scheduler period
func (s SimulationConfig) FrameInterval() time.Duration {
	return time.Second / time.Duration(s.TargetFPS)
}

// RespawnBounds converts the respawn ranges into component bounds
func (m MeteorConfig) RespawnBounds() components.MeteorBounds {
	return components.MeteorBounds{
		MinX: m.RespawnX[0], MaxX: m.RespawnX[1],
		MinY: m.RespawnY[0], MaxY: m.RespawnY[1],
		MinZ: m.RespawnZ[0], MaxZ: m.RespawnZ[1],
		Threshold: m.Threshold,
	}
}

// SpawnBounds converts the initial spawn ranges into component bounds
func (m MeteorConfig) SpawnBounds() components.MeteorBounds {
	return components.MeteorBounds{
		MinX: m.SpawnX[0], MaxX: m.SpawnX[1],
		MinY: m.SpawnY[0], MaxY: m.SpawnY[1],
		MinZ: m.SpawnZ[0], MaxZ: m.SpawnZ[1],
		Threshold: m.Threshold,
	}
}

func nonNegative(f float64) bool {
	return vmath.IsFinite(f) && f >= 0
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
