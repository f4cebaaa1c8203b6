package vehicle

import "math"

// kphPerMps converts m/s to km/h.
const kphPerMps = 3.6

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float32) float32 { return clamp(v, 0, 1) }

func clampUnit(v float32) float32 { return clamp(v, -1, 1) }

func abs(v float32) float32 { return float32(math.Abs(float64(v))) }

func lerp(a, b, t float32) float32 {
	return a + (b-a)*clamp01(t)
}

// inverseLerp returns where v sits between a and b, clamped to [0, 1].
// With a == b it is a step at a.
func inverseLerp(a, b, v float32) float32 {
	if a == b {
		if v >= b {
			return 1
		}
		return 0
	}
	return clamp01((v - a) / (b - a))
}

// moveTowards moves current toward target by at most maxDelta.
func moveTowards(current, target, maxDelta float32) float32 {
	if maxDelta < 0 {
		maxDelta = 0
	}
	d := target - current
	if abs(d) <= maxDelta {
		return target
	}
	if d > 0 {
		return current + maxDelta
	}
	return current - maxDelta
}

// orZero maps NaN to 0. Infinities are left for clamp to saturate.
func orZero(v float32) float32 {
	if v != v {
		return 0
	}
	return v
}

// applyDeadzone zeroes samples inside the deadzone and NaN samples.
func applyDeadzone(v, deadzone float32) float32 {
	v = orZero(v)
	if abs(v) < deadzone {
		return 0
	}
	return v
}

// sign returns 1 for v >= 0 and -1 otherwise.
func sign(v float32) float32 {
	if v < 0 {
		return -1
	}
	return 1
}

// SpeedLimiter is 1 up to 90% of maxSpeed and falls linearly to 0 at maxSpeed.
func SpeedLimiter(speed, maxSpeed float32) float32 {
	return clamp01(1 - inverseLerp(maxSpeed*0.9, maxSpeed, speed))
}

// TurnScale is the turn multiplier at a given speed: 1 at rest, 1-dampening at maxSpeed and above.
func TurnScale(speed, maxSpeed, dampening float32) float32 {
	var t float32 = 1
	if maxSpeed > 0 {
		t = speed / maxSpeed
	}
	return lerp(1, 1-clamp01(dampening), t)
}
