package vehicle

import "fmt"

type Side uint8

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Side(%d)", uint8(s))
	}
}

func (s Side) valid() bool { return s == Left || s == Right }

// ParseSide accepts "left"/"l" and "right"/"r".
func ParseSide(s string) (Side, error) {
	switch s {
	case "left", "l", "L", "Left":
		return Left, nil
	case "right", "r", "R", "Right":
		return Right, nil
	}
	return Left, fmt.Errorf("unknown wheel side %q", s)
}

// Wheel binds one physical wheel to its roles and its visual mesh.
type Wheel struct {
	Name     string
	Side     Side
	Drives   bool // receives motor torque
	Steers   bool // receives steer angle in steered mode
	Collider WheelCollider
	Mesh     MeshTransform
}

// AxlePair indexes one left and one right wheel at the same longitudinal
// position. Pairs come from zipping the per-side lists in configuration order.
type AxlePair struct {
	Left, Right int
}

// pairAxles zips left and right wheels by their order within each side.
// It returns ok=false when the sides have different lengths.
func pairAxles(wheels []Wheel) (pairs []AxlePair, ok bool) {
	var left, right []int
	for i := range wheels {
		switch wheels[i].Side {
		case Left:
			left = append(left, i)
		case Right:
			right = append(right, i)
		}
	}
	if len(left) != len(right) {
		return nil, false
	}
	for i := range left {
		pairs = append(pairs, AxlePair{Left: left[i], Right: right[i]})
	}
	return pairs, true
}
