package input

import (
	"sort"
	"time"
)

// Keyframe sets an axis to a raw value from At onwards.
type Keyframe struct {
	At    time.Duration `mapstructure:"at" json:"at"`
	Axis  string        `mapstructure:"axis" json:"axis"`
	Value float32       `mapstructure:"value" json:"value"`
}

// Script is a scripted input timeline for headless runs.
type Script struct {
	frames []Keyframe
}

// NewScript copies and sorts the keyframes by time. Frames sharing a
// timestamp keep their given order.
func NewScript(frames []Keyframe) *Script {
	sorted := make([]Keyframe, len(frames))
	copy(sorted, frames)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].At < sorted[j].At })
	return &Script{frames: sorted}
}

// Apply writes, for every axis the script mentions, the value of its latest
// keyframe at or before t. Axes whose first keyframe is still ahead read 0.
func (s *Script) Apply(t time.Duration, axes *Axes) {
	latest := make(map[string]float32)
	for _, f := range s.frames {
		if _, seen := latest[f.Axis]; !seen {
			latest[f.Axis] = 0
		}
		if f.At <= t {
			latest[f.Axis] = f.Value
		}
	}
	for name, v := range latest {
		axes.Set(name, v)
	}
}

// Duration is the time of the last keyframe.
func (s *Script) Duration() time.Duration {
	if len(s.frames) == 0 {
		return 0
	}
	return s.frames[len(s.frames)-1].At
}
