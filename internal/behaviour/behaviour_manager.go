package behaviour

// System is a scene-wide behaviour that is not attached to a GameObject,
// e.g. the physics world that integrates after all controllers have ticked.
type System interface {
	Start()
	Update(dt float32)
	UpdateFixed(dt float32)
}

type systemWrapper struct {
	system  System
	started bool
}

// BehaviourManager drives the component scene and the registered systems.
// Within a fixed step components run first, then systems, so commands written
// by controllers are consumed by the physics step of the same tick.
type BehaviourManager struct {
	Components *ComponentManager
	systems    []systemWrapper
}

func NewBehaviourManager() *BehaviourManager {
	return &BehaviourManager{Components: NewComponentManager()}
}

func (m *BehaviourManager) Add(system System) {
	m.systems = append(m.systems, systemWrapper{system: system})
}

func (m *BehaviourManager) Remove(system System) {
	for i := range m.systems {
		if m.systems[i].system == system {
			m.systems = append(m.systems[:i], m.systems[i+1:]...)
			return
		}
	}
}

// Clear removes all systems and GameObjects
func (m *BehaviourManager) Clear() {
	m.systems = m.systems[:0]
	m.Components.Clear()
}

func (m *BehaviourManager) startSystems() {
	for i := range m.systems {
		if !m.systems[i].started {
			m.systems[i].system.Start()
			m.systems[i].started = true
		}
	}
}

func (m *BehaviourManager) UpdateAll(dt float32) {
	m.Components.UpdateAll(dt)

	m.startSystems()
	for i := range m.systems {
		m.systems[i].system.Update(dt)
	}
}

func (m *BehaviourManager) UpdateAllFixed(dt float32) {
	m.Components.FixedUpdateAll(dt)

	m.startSystems()
	for i := range m.systems {
		m.systems[i].system.UpdateFixed(dt)
	}
}
