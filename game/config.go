package game

import (
	"errors"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/jakecoffman/cp"
	"github.com/plus3/slingshot/physics"
)

// ErrInvalidConfig is wrapped by every error Validate returns.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds every tunable of a game. The zero value is not usable; start
// from DefaultConfig.
type Config struct {
	Viewport   Viewport         `toml:"viewport"`
	Projectile ProjectileConfig `toml:"projectile"`
	Targets    TargetConfig     `toml:"targets"`
	Round      RoundConfig      `toml:"round"`
	Input      InputConfig      `toml:"input"`
}

// Viewport is the logical playfield. GroundY is the line the projectile
// rests on.
type Viewport struct {
	Width   float64 `toml:"width"`
	Height  float64 `toml:"height"`
	GroundY float64 `toml:"ground_y"`
}

type ProjectileConfig struct {
	OriginX float64 `toml:"origin_x"`
	OriginY float64 `toml:"origin_y"`
	Radius  float64 `toml:"radius"`
	Gravity float64 `toml:"gravity"`

	// ReturnOnLanding puts the projectile back on the sling after it
	// touches the ground.
	ReturnOnLanding bool `toml:"return_on_landing"`
}

// TargetConfig describes the batch spawned each round: Count targets in a row
// starting at FirstX, Spacing apart, all at height Y.
type TargetConfig struct {
	Count   int     `toml:"count"`
	FirstX  float64 `toml:"first_x"`
	Spacing float64 `toml:"spacing"`
	Y       float64 `toml:"y"`
	Radius  float64 `toml:"radius"`
}

type RoundConfig struct {
	// Dwell is the delay in seconds between the last target dying and the
	// next batch appearing.
	Dwell float64 `toml:"dwell"`
}

type InputConfig struct {
	PowerMultiplier float64 `toml:"power_multiplier"`
}

// DefaultConfig returns the classic 800x600 layout.
func DefaultConfig() Config {
	return Config{
		Viewport: Viewport{
			Width:   800,
			Height:  600,
			GroundY: physics.DefaultGroundY,
		},
		Projectile: ProjectileConfig{
			OriginX:         100,
			OriginY:         450,
			Radius:          physics.DefaultRadius,
			Gravity:         physics.DefaultGravity,
			ReturnOnLanding: true,
		},
		Targets: TargetConfig{
			Count:   3,
			FirstX:  600,
			Spacing: 50,
			Y:       480,
			Radius:  physics.DefaultTargetRadius,
		},
		Round: RoundConfig{
			Dwell: 1.2,
		},
		Input: InputConfig{
			PowerMultiplier: 3.0,
		},
	}
}

// LoadConfig decodes a TOML file over DefaultConfig, so a file only needs the
// keys it changes. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: unknown keys %v in %s", ErrInvalidConfig, undecoded, path)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Write encodes the config as TOML.
func (c Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Validate reports every out of range value, joined into one error.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.Viewport.Width > 0, "viewport width %v must be positive", c.Viewport.Width)
	check(c.Viewport.Height > 0, "viewport height %v must be positive", c.Viewport.Height)
	check(c.Viewport.GroundY > 0, "ground line %v must be positive", c.Viewport.GroundY)
	check(c.Projectile.Radius > 0, "projectile radius %v must be positive", c.Projectile.Radius)
	check(c.Projectile.Gravity > 0, "gravity %v must be positive", c.Projectile.Gravity)
	check(c.Projectile.OriginY+c.Projectile.Radius <= c.Viewport.GroundY,
		"projectile origin y %v is below the ground line", c.Projectile.OriginY)
	check(c.Targets.Count > 0, "target count %d must be positive", c.Targets.Count)
	check(c.Targets.Radius > 0, "target radius %v must be positive", c.Targets.Radius)
	check(c.Round.Dwell > 0, "round dwell %v must be positive", c.Round.Dwell)
	check(c.Input.PowerMultiplier > 0, "power multiplier %v must be positive", c.Input.PowerMultiplier)

	return errors.Join(errs...)
}

// Origin is the projectile's launch point.
func (c Config) Origin() cp.Vector {
	return cp.Vector{X: c.Projectile.OriginX, Y: c.Projectile.OriginY}
}

// ProjectileParams converts the config into physics parameters.
func (c Config) ProjectileParams() physics.Params {
	return physics.Params{
		Gravity: c.Projectile.Gravity,
		Radius:  c.Projectile.Radius,
		GroundY: c.Viewport.GroundY,
	}
}

// TargetPosition returns where the target in the given slot is placed.
func (c TargetConfig) TargetPosition(slot int) cp.Vector {
	return cp.Vector{X: c.FirstX + float64(slot)*c.Spacing, Y: c.Y}
}
