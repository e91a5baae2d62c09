package scene

import (
	"math"

	"github.com/scenectl/scenectl/pkg/editorclient"
)

// channelPhase offsets the green and blue waves from red by a third of a turn.
const channelPhase = 2 * math.Pi / 3

// RingAngle returns the angle in radians of entity i out of n on the ring.
// n must be positive; otherwise the angle is 0.
func RingAngle(i, n int) float64 {
	if n <= 0 {
		return 0
	}
	return 2 * math.Pi * float64(i) / float64(n)
}

// RingPosition places entity i out of n on a horizontal circle.
func RingPosition(i, n int, radius, height float64) editorclient.Vector3 {
	angle := RingAngle(i, n)
	return editorclient.Vector3{
		X: math.Cos(angle) * radius,
		Y: height,
		Z: math.Sin(angle) * radius,
	}
}

// RainbowColor maps entity i out of n onto a rainbow sweep.
// Each channel is a sine wave of the hue i/n, offset by 2π/3 per channel.
func RainbowColor(i, n int) editorclient.Color {
	phase := RingAngle(i, n)
	return editorclient.RGB(
		wave(phase),
		wave(phase+channelPhase),
		wave(phase+2*channelPhase),
	)
}

func wave(phase float64) float64 {
	return math.Sin(phase)*0.5 + 0.5
}
