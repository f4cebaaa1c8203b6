package main

import (
	"testing"
	"time"

	"Tankette/internal/config"
	"Tankette/internal/input"
	"Tankette/internal/turret"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSceneDrivesScript(t *testing.T) {
	s := config.Defaults()
	s.TelemetryEvery = 10
	s.Script = []input.Keyframe{
		{At: 0, Axis: "Vertical", Value: 1},
		{At: 3 * time.Second, Axis: "Vertical", Value: 0},
	}
	sc := newScene(s)

	require.NoError(t, sc.engine.RunFor(3*time.Second, 1/s.FrameRate))

	assert.Equal(t, sc.engine.Steps(), sc.drive.Ticks())
	assert.Less(t, sc.world.Body.Position.Z(), float32(-5))
	assert.InDelta(t, sc.world.Body.Position.Z(), sc.hull.Transform.Position.Z(), 1e-5, "hull follows the body")
	assert.Greater(t, sc.drive.LastCommands().SpeedKPH, float32(15))
	assert.False(t, sc.player.Done())

	require.NoError(t, sc.engine.RunFor(8*time.Second, 1/s.FrameRate))
	assert.True(t, sc.player.Done())
	assert.Less(t, sc.drive.LastCommands().SpeedKPH, float32(1), "stick released, hold brake")
}

func TestSceneTurretTracksTarget(t *testing.T) {
	s := config.Defaults()
	s.Targets = []turret.Target{{Name: "bunker", Center: mgl32.Vec3{-30, 1, 0}, Radius: 2}}
	s.AimAt = s.Targets[0].Center
	sc := newScene(s)

	require.NoError(t, sc.engine.RunFor(2*time.Second, 1/s.FrameRate))

	hit, ok := sc.turret.LastHit()
	require.True(t, ok)
	assert.Equal(t, "bunker", hit.Target)
	assert.InDelta(t, 90, sc.turret.Turret.Yaw(), 2, "aims at the near side of the target")
	pos := sc.world.Body.Position
	assert.InDelta(t, 0, mgl32.Vec2{pos.X(), pos.Z()}.Len(), 1e-3, "no input, no motion")
}

func TestChaseAimDegenerate(t *testing.T) {
	sc := newScene(config.Defaults())
	tr := sc.hull.Transform

	aim := &chaseAim{hull: sc.hull, camera: turret.NewCamera(640, 480), offset: chaseOffset}
	aim.point = tr.Position.Add(chaseOffset)
	_, ok := aim.AimRay()
	assert.False(t, ok, "camera sits on the aim point")

	aim.point = mgl32.Vec3{0, 0, -30}
	ray, ok := aim.AimRay()
	require.True(t, ok)
	assert.InDelta(t, 9, ray.Origin.Z(), 1e-4, "camera trails the hull")
	assert.Less(t, ray.Direction.Z(), float32(0))
}
