package input

import (
	"sort"
	"sync"
)

// Source is the input-polling surface. Axis returns the smoothed value,
// AxisRaw the unfiltered one. Unknown axes read 0.
type Source interface {
	Axis(name string) float32
	AxisRaw(name string) float32
}

// AxisSettings controls how a smoothed axis follows its raw value.
// Units are per second, like a gamepad/keyboard axis manager.
type AxisSettings struct {
	Sensitivity float32 `mapstructure:"sensitivity" json:"sensitivity"` // approach speed toward a non-zero raw value
	Gravity     float32 `mapstructure:"gravity" json:"gravity"`         // return speed toward 0 when raw is 0
	Snap        bool    `mapstructure:"snap" json:"snap"`               // jump to 0 on sign reversal
}

// DefaultAxisSettings matches a digital keyboard axis.
func DefaultAxisSettings() AxisSettings {
	return AxisSettings{Sensitivity: 3, Gravity: 3, Snap: true}
}

type axis struct {
	settings AxisSettings
	raw      float32
	value    float32
}

// Axes is a set of named virtual axes. It is safe for concurrent use: a
// polling goroutine may Set while the fixed step reads.
type Axes struct {
	mu   sync.RWMutex
	axes map[string]*axis
}

func NewAxes() *Axes {
	return &Axes{axes: make(map[string]*axis)}
}

// Define registers an axis (or replaces its settings).
func (a *Axes) Define(name string, settings AxisSettings) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if ax, ok := a.axes[name]; ok {
		ax.settings = settings
		return
	}
	a.axes[name] = &axis{settings: settings}
}

// Set stores the raw value for an axis, clamped to [-1, 1]. Undefined axes
// are created with default settings.
func (a *Axes) Set(name string, raw float32) {
	a.mu.Lock()
	defer a.mu.Unlock()

	ax, ok := a.axes[name]
	if !ok {
		ax = &axis{settings: DefaultAxisSettings()}
		a.axes[name] = ax
	}
	ax.raw = clampUnit(raw)
}

// Step advances every smoothed axis toward its raw value.
func (a *Axes) Step(dt float32) {
	if dt <= 0 {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, ax := range a.axes {
		ax.step(dt)
	}
}

func (ax *axis) step(dt float32) {
	s := ax.settings
	if ax.raw == 0 {
		ax.value = moveTowards(ax.value, 0, s.Gravity*dt)
		return
	}
	if s.Snap && ax.value != 0 && (ax.value > 0) != (ax.raw > 0) {
		ax.value = 0
	}
	ax.value = moveTowards(ax.value, ax.raw, s.Sensitivity*dt)
}

func (a *Axes) Axis(name string) float32 {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if ax, ok := a.axes[name]; ok {
		return ax.value
	}
	return 0
}

func (a *Axes) AxisRaw(name string) float32 {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if ax, ok := a.axes[name]; ok {
		return ax.raw
	}
	return 0
}

// Names returns the defined axis names in sorted order.
func (a *Axes) Names() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	names := make([]string, 0, len(a.axes))
	for name := range a.axes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func clampUnit(v float32) float32 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

func moveTowards(current, target, maxDelta float32) float32 {
	d := target - current
	if d <= maxDelta && d >= -maxDelta {
		return target
	}
	if d > 0 {
		return current + maxDelta
	}
	return current - maxDelta
}
