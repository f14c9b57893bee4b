package anim

import "math"

// FrameIndex maps a key time to a 1-based frame number, rounding half away
// from zero: round(t / interFrameTime) + 1.
func FrameIndex(t float32, interFrameTime float64) int {
	return int(math.Round(float64(t)/interFrameTime)) + 1
}
