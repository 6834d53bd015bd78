// Package physics holds the projectile and target bodies of a slingshot round
// and the collision pass between them.
//
// Coordinates are screen space: x grows to the right, y grows downward, so
// gravity is positive and the ground line is the largest y a body may reach.
// Bounds use cp.BB where B is the numerically smaller y edge and T the larger.
package physics
