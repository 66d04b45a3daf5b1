// Package lighting provides lighting utilities for 3D rendering.
package lighting

import "math"

// SunDirection converts azimuth/elevation angles in degrees to a light
// direction vector in a Z-up world. Azimuth rotates around Z starting at +X,
// elevation is measured from the XY plane.
// Returns a normalized direction vector pointing towards the sun.
func SunDirection(azimuth, elevation float32) [3]float32 {
	azRad := float64(azimuth) * math.Pi / 180.0
	elRad := float64(elevation) * math.Pi / 180.0

	x := float32(math.Cos(elRad) * math.Cos(azRad))
	y := float32(math.Cos(elRad) * math.Sin(azRad))
	z := float32(math.Sin(elRad))

	return [3]float32{x, y, z}
}

// DefaultSun is the light used by the viewer: from the front right, above.
var DefaultSun = SunDirection(-45, 50)

// Ambient is the minimum light applied to faces turned away from the sun.
const Ambient float32 = 0.25
