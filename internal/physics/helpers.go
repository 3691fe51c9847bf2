package physics

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// clamp restricts a value to a range
func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Flatten drops the vertical component so vectors live on the field plane.
func Flatten(v rl.Vector3) rl.Vector3 {
	return rl.Vector3{X: v.X, Z: v.Z}
}

// HorizontalDistance is the distance between two points on the field plane.
func HorizontalDistance(a, b rl.Vector3) float32 {
	return rl.Vector3Length(Flatten(rl.Vector3Subtract(b, a)))
}

// RotateY rotates v around the vertical axis by angle radians.
func RotateY(v rl.Vector3, angle float64) rl.Vector3 {
	if angle == 0 {
		return v
	}
	sin, cos := math.Sincos(angle)
	x, z := float64(v.X), float64(v.Z)
	return rl.Vector3{
		X: float32(x*cos - z*sin),
		Y: v.Y,
		Z: float32(x*sin + z*cos),
	}
}

// capSpeed limits the horizontal speed of v to max.
func capSpeed(v rl.Vector3, max float32) rl.Vector3 {
	speed := rl.Vector3Length(v)
	if speed <= max || speed == 0 {
		return v
	}
	return rl.Vector3Scale(v, max/speed)
}
