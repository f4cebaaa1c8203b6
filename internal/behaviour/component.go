package behaviour

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Component is the base interface for everything attached to a GameObject.
// dt is in seconds: the frame delta for Update, the fixed step for FixedUpdate.
type Component interface {
	// Lifecycle methods
	Awake()                 // Called when the component is attached
	Start()                 // Called once before the first update
	Update(dt float32)      // Called every frame
	FixedUpdate(dt float32) // Called once per fixed simulation step
	OnDestroy()             // Called when the component or its object is destroyed

	GetEnabled() bool
	SetEnabled(bool)
	GetGameObject() *GameObject
	SetGameObject(*GameObject)
}

// BaseComponent provides no-op lifecycle methods.
// Embed it and override only what is needed.
type BaseComponent struct {
	enabled    bool
	gameObject *GameObject
}

func (c *BaseComponent) Awake()                 {}
func (c *BaseComponent) Start()                 {}
func (c *BaseComponent) Update(dt float32)      {}
func (c *BaseComponent) FixedUpdate(dt float32) {}
func (c *BaseComponent) OnDestroy()             {}

func (c *BaseComponent) GetEnabled() bool {
	return c.enabled
}

func (c *BaseComponent) SetEnabled(enabled bool) {
	c.enabled = enabled
}

func (c *BaseComponent) GetGameObject() *GameObject {
	return c.gameObject
}

func (c *BaseComponent) SetGameObject(obj *GameObject) {
	c.gameObject = obj
}

// GameObject is a named entity in the scene owning a transform and components.
type GameObject struct {
	Name       string
	Tag        string
	Active     bool
	Transform  *Transform
	Components []Component
	started    []bool // parallel to Components
}

// Transform holds a world pose. Forward is -Z, up is +Y.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3
}

func NewTransform() *Transform {
	return &Transform{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

func (t *Transform) Translate(delta mgl32.Vec3) {
	t.Position = t.Position.Add(delta)
}

func (t *Transform) Rotate(axis mgl32.Vec3, angle float32) {
	t.Rotation = t.Rotation.Mul(mgl32.QuatRotate(angle, axis)).Normalize()
}

func (t *Transform) SetPosition(pos mgl32.Vec3) {
	t.Position = pos
}

func (t *Transform) SetRotation(rot mgl32.Quat) {
	t.Rotation = rot
}

func (t *Transform) SetScale(scale mgl32.Vec3) {
	t.Scale = scale
}

// SetPositionAndRotation sets the full pose in one call; wheel meshes are synced through it.
func (t *Transform) SetPositionAndRotation(pos mgl32.Vec3, rot mgl32.Quat) {
	t.Position = pos
	t.Rotation = rot
}

func (t *Transform) Forward() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 0, -1})
}

func (t *Transform) Up() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 1, 0})
}

func (t *Transform) Right() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{1, 0, 0})
}

func NewGameObject(name string) *GameObject {
	return &GameObject{
		Name:       name,
		Active:     true,
		Components: make([]Component, 0),
		Transform:  NewTransform(),
	}
}

func (obj *GameObject) AddComponent(component Component) {
	component.SetGameObject(obj)
	component.SetEnabled(true)
	obj.Components = append(obj.Components, component)
	obj.started = append(obj.started, false)
	component.Awake()
}

// GetComponent returns the first component whose type name matches, or nil.
func (obj *GameObject) GetComponent(typeName string) Component {
	for _, comp := range obj.Components {
		if comp != nil && GetComponentTypeName(comp) == typeName {
			return comp
		}
	}
	return nil
}

// GetComponents returns every component whose type name matches.
func (obj *GameObject) GetComponents(typeName string) []Component {
	var result []Component
	for _, comp := range obj.Components {
		if comp != nil && GetComponentTypeName(comp) == typeName {
			result = append(result, comp)
		}
	}
	return result
}

func (obj *GameObject) RemoveComponent(component Component) {
	for i, comp := range obj.Components {
		if comp == component {
			comp.OnDestroy()
			obj.Components = append(obj.Components[:i], obj.Components[i+1:]...)
			if i < len(obj.started) {
				obj.started = append(obj.started[:i], obj.started[i+1:]...)
			}
			return
		}
	}
}

// internalStart starts every enabled component that has not started yet, so
// components added or enabled later still get Start before their first update.
func (obj *GameObject) internalStart() {
	if !obj.Active {
		return
	}
	for len(obj.started) < len(obj.Components) {
		obj.started = append(obj.started, false)
	}

	for i, comp := range obj.Components {
		if comp.GetEnabled() && !obj.started[i] {
			obj.started[i] = true
			comp.Start()
		}
	}
}

func (obj *GameObject) internalUpdate(dt float32) {
	if !obj.Active {
		return
	}

	for _, comp := range obj.Components {
		if comp.GetEnabled() {
			comp.Update(dt)
		}
	}
}

func (obj *GameObject) internalFixedUpdate(dt float32) {
	if !obj.Active {
		return
	}

	for _, comp := range obj.Components {
		if comp.GetEnabled() {
			comp.FixedUpdate(dt)
		}
	}
}

func (obj *GameObject) Destroy() {
	for _, comp := range obj.Components {
		comp.OnDestroy()
	}
	obj.Active = false
}
