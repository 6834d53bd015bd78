package physics

import "github.com/jakecoffman/cp"

const (
	DefaultGravity = 980.0
	DefaultRadius  = 20.0
	DefaultGroundY = 600.0
)

// Params configures a Projectile. Zero fields take the package defaults.
type Params struct {
	Gravity float64
	Radius  float64
	GroundY float64
}

func (p Params) withDefaults() Params {
	if p.Gravity == 0 {
		p.Gravity = DefaultGravity
	}
	if p.Radius == 0 {
		p.Radius = DefaultRadius
	}
	if p.GroundY == 0 {
		p.GroundY = DefaultGroundY
	}
	return p
}

// Projectile is the launched body. It only moves while flying.
type Projectile struct {
	pos    cp.Vector
	vel    cp.Vector
	origin cp.Vector
	flying bool
	params Params
}

// NewProjectile creates a resting projectile at origin.
func NewProjectile(origin cp.Vector, params Params) *Projectile {
	return &Projectile{
		pos:    origin,
		origin: origin,
		params: params.withDefaults(),
	}
}

// Launch sets the velocity and starts flight. A projectile already in flight
// ignores the call; the return value reports whether the shot was taken.
func (p *Projectile) Launch(vx, vy float64) bool {
	if p.flying {
		return false
	}
	p.vel = cp.Vector{X: vx, Y: vy}
	p.flying = true
	return true
}

// Integrate advances a flying projectile by dt seconds using semi-implicit
// Euler: velocity first, then position with the new velocity. It returns true
// on the step that touches the ground, after which the projectile rests on the
// ground line and is no longer flying.
func (p *Projectile) Integrate(dt float64) bool {
	if !p.flying {
		return false
	}

	p.vel.Y += p.params.Gravity * dt
	p.pos = p.pos.Add(p.vel.Mult(dt))

	if p.pos.Y+p.params.Radius > p.params.GroundY {
		p.pos.Y = p.params.GroundY - p.params.Radius
		p.vel.Y = 0
		p.flying = false
		return true
	}

	return false
}

// ResetTo places the projectile at (x, y) at rest.
func (p *Projectile) ResetTo(x, y float64) {
	p.pos = cp.Vector{X: x, Y: y}
	p.vel = cp.Vector{}
	p.flying = false
}

// Reset places the projectile back at its launch origin at rest.
func (p *Projectile) Reset() {
	p.ResetTo(p.origin.X, p.origin.Y)
}

// Bounds returns the square bound around the projectile.
func (p *Projectile) Bounds() cp.BB {
	return SquareBounds(p.pos, p.params.Radius)
}

func (p *Projectile) IsFlying() bool      { return p.flying }
func (p *Projectile) Position() cp.Vector { return p.pos }
func (p *Projectile) Velocity() cp.Vector { return p.vel }
func (p *Projectile) Origin() cp.Vector   { return p.origin }
func (p *Projectile) Radius() float64     { return p.params.Radius }
func (p *Projectile) Params() Params      { return p.params }
