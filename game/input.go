package game

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// Command is an abstract player input. Hosts translate device events into
// commands; the game never sees devices.
type Command interface {
	command()
}

// Start leaves the menu and seeds the first round.
type Start struct{}

// AimBegin records where the player pressed.
type AimBegin struct {
	At cp.Vector
}

// AimRelease launches the projectile. The launch velocity is the press point
// minus the release point, scaled by the power multiplier.
type AimRelease struct {
	At cp.Vector
}

// Reset restarts the current round immediately.
type Reset struct{}

func (Start) command()      {}
func (AimBegin) command()   {}
func (AimRelease) command() {}
func (Reset) command()      {}

func (Start) String() string        { return "start" }
func (c AimBegin) String() string   { return fmt.Sprintf("aim-begin(%.1f,%.1f)", c.At.X, c.At.Y) }
func (c AimRelease) String() string { return fmt.Sprintf("aim-release(%.1f,%.1f)", c.At.X, c.At.Y) }
func (Reset) String() string        { return "reset" }

// LaunchVelocity converts a drag from press to release into a launch velocity.
func LaunchVelocity(press, release cp.Vector, power float64) cp.Vector {
	return press.Sub(release).Mult(power)
}
