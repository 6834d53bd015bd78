package physics_test

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/plus3/slingshot/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var origin = cp.Vector{X: 100, Y: 450}

func TestNewProjectileDefaults(t *testing.T) {
	p := physics.NewProjectile(origin, physics.Params{})

	assert.Equal(t, physics.Params{Gravity: 980, Radius: 20, GroundY: 600}, p.Params())
	assert.Equal(t, origin, p.Position())
	assert.Equal(t, origin, p.Origin())
	assert.Equal(t, cp.Vector{}, p.Velocity())
	assert.False(t, p.IsFlying())
	assert.Equal(t, cp.BB{L: 80, B: 430, R: 120, T: 470}, p.Bounds())
}

func TestLaunch(t *testing.T) {
	p := physics.NewProjectile(origin, physics.Params{})

	require.True(t, p.Launch(300, -400))
	assert.True(t, p.IsFlying())
	assert.Equal(t, cp.Vector{X: 300, Y: -400}, p.Velocity())
	assert.Equal(t, origin, p.Position(), "launch does not move the projectile")

	assert.False(t, p.Launch(1, 1))
	assert.Equal(t, cp.Vector{X: 300, Y: -400}, p.Velocity())
}

func TestLaunchZeroVelocity(t *testing.T) {
	p := physics.NewProjectile(origin, physics.Params{})

	require.True(t, p.Launch(0, 0))
	assert.True(t, p.IsFlying())

	p.Integrate(0.1)
	assert.InDelta(t, 98.0, p.Velocity().Y, 1e-9)
	assert.Greater(t, p.Position().Y, origin.Y)
}

func TestIntegrateSemiImplicit(t *testing.T) {
	p := physics.NewProjectile(origin, physics.Params{})
	p.Launch(10, -100)

	landed := p.Integrate(0.1)

	assert.False(t, landed)
	assert.InDelta(t, -2.0, p.Velocity().Y, 1e-9)
	assert.InDelta(t, 101.0, p.Position().X, 1e-9)
	assert.InDelta(t, 449.8, p.Position().Y, 1e-9)
}

func TestIntegrateGroundClamp(t *testing.T) {
	p := physics.NewProjectile(origin, physics.Params{})
	p.Launch(50, 0)

	landed := p.Integrate(1)

	assert.True(t, landed)
	assert.False(t, p.IsFlying())
	assert.Equal(t, 580.0, p.Position().Y)
	assert.Equal(t, 0.0, p.Velocity().Y)
	assert.Equal(t, 50.0, p.Velocity().X)

	assert.False(t, p.Integrate(1), "a grounded projectile stays put")
	assert.Equal(t, 580.0, p.Position().Y)
}

func TestResetTo(t *testing.T) {
	p := physics.NewProjectile(origin, physics.Params{})
	p.Launch(100, -100)
	p.Integrate(0.1)

	p.ResetTo(10, 20)
	assert.Equal(t, cp.Vector{X: 10, Y: 20}, p.Position())
	assert.Equal(t, cp.Vector{}, p.Velocity())
	assert.False(t, p.IsFlying())
	assert.Equal(t, origin, p.Origin())

	p.Reset()
	assert.Equal(t, origin, p.Position())
}

// A shot straight up passes back through its launch height and then falls to
// the ground line.
func TestVerticalShotReturnsAndLands(t *testing.T) {
	p := physics.NewProjectile(origin, physics.Params{})
	p.Launch(0, -500)

	const dt = 1.0 / 120.0
	rose, returned, landed := false, false, false
	for range 10_000 {
		if p.Integrate(dt) {
			landed = true
			break
		}
		y := p.Position().Y
		if y < origin.Y {
			rose = true
		}
		if rose && y >= origin.Y {
			returned = true
		}
	}

	assert.True(t, rose)
	assert.True(t, returned)
	require.True(t, landed)
	assert.Equal(t, 600.0-20.0, p.Position().Y)
	assert.Equal(t, origin.X, p.Position().X)
	assert.False(t, p.IsFlying())
}

func TestIntegrateRestingIsNoop(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := rapid.Float64Range(-1000, 1000).Draw(t, "x")
		y := rapid.Float64Range(-1000, 580).Draw(t, "y")
		dt := rapid.Float64Range(0, 10).Draw(t, "dt")

		p := physics.NewProjectile(cp.Vector{X: x, Y: y}, physics.Params{})
		before := *p
		if p.Integrate(dt) {
			t.Fatalf("resting projectile reported landing")
		}
		if *p != before {
			t.Fatalf("resting projectile changed: %+v -> %+v", before, *p)
		}
	})
}

func TestIntegrateAcceleratesUntilGround(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		vx := rapid.Float64Range(-2000, 2000).Draw(t, "vx")
		vy := rapid.Float64Range(-2000, 2000).Draw(t, "vy")
		dt := rapid.Float64Range(0.001, 0.05).Draw(t, "dt")
		steps := rapid.IntRange(1, 500).Draw(t, "steps")

		p := physics.NewProjectile(origin, physics.Params{})
		p.Launch(vx, vy)

		for range steps {
			prev := p.Velocity().Y
			landed := p.Integrate(dt)

			if p.Position().Y+p.Radius() > 600 {
				t.Fatalf("projectile below ground: y=%v", p.Position().Y)
			}
			if landed {
				if p.IsFlying() || p.Velocity().Y != 0 {
					t.Fatalf("landing must stop vertical motion")
				}
				if !p.Launch(0, 0) {
					t.Fatalf("grounded projectile must accept a launch")
				}
				return
			}

			delta := p.Velocity().Y - prev
			if delta <= 0 || !approx(delta, 980*dt) {
				t.Fatalf("velocity.y changed by %v, want %v", delta, 980*dt)
			}
		}
	})
}

func TestLaunchWhileFlyingIsNoop(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := physics.NewProjectile(origin, physics.Params{})
		p.Launch(rapid.Float64Range(-500, 500).Draw(t, "vx"), rapid.Float64Range(-500, 0).Draw(t, "vy"))
		p.Integrate(rapid.Float64Range(0, 0.01).Draw(t, "dt"))

		before := p.Velocity()
		if p.Launch(rapid.Float64().Draw(t, "vx2"), rapid.Float64().Draw(t, "vy2")) {
			t.Fatalf("second launch accepted")
		}
		if p.Velocity() != before || !p.IsFlying() {
			t.Fatalf("second launch changed state")
		}
	})
}

func approx(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= 1e-6
}
