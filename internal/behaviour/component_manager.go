package behaviour

// ComponentManager owns the GameObjects of a scene and drives their lifecycle.
type ComponentManager struct {
	gameObjects []*GameObject
	toDestroy   []*GameObject
}

func NewComponentManager() *ComponentManager {
	return &ComponentManager{
		gameObjects: make([]*GameObject, 0),
		toDestroy:   make([]*GameObject, 0),
	}
}

// RegisterGameObject adds a GameObject to the manager and starts it.
func (cm *ComponentManager) RegisterGameObject(obj *GameObject) {
	cm.gameObjects = append(cm.gameObjects, obj)
	obj.internalStart()
}

func (cm *ComponentManager) UnregisterGameObject(obj *GameObject) {
	for i, o := range cm.gameObjects {
		if o == obj {
			cm.gameObjects = append(cm.gameObjects[:i], cm.gameObjects[i+1:]...)
			obj.Destroy()
			return
		}
	}
}

// FindGameObject finds a GameObject by name
func (cm *ComponentManager) FindGameObject(name string) *GameObject {
	for _, obj := range cm.gameObjects {
		if obj.Name == name {
			return obj
		}
	}
	return nil
}

// FindGameObjectsWithTag finds all GameObjects with a specific tag
func (cm *ComponentManager) FindGameObjectsWithTag(tag string) []*GameObject {
	var result []*GameObject
	for _, obj := range cm.gameObjects {
		if obj.Tag == tag {
			result = append(result, obj)
		}
	}
	return result
}

// UpdateAll flushes pending destroys and calls Update on all active GameObjects.
func (cm *ComponentManager) UpdateAll(dt float32) {
	cm.flushDestroyed()

	for _, obj := range cm.gameObjects {
		if obj.Active {
			obj.internalStart()
			obj.internalUpdate(dt)
		}
	}
}

// FixedUpdateAll calls FixedUpdate on all active GameObjects.
func (cm *ComponentManager) FixedUpdateAll(dt float32) {
	for _, obj := range cm.gameObjects {
		if obj.Active {
			obj.internalStart()
			obj.internalFixedUpdate(dt)
		}
	}
}

// DestroyGameObject marks a GameObject for destruction (removed on the next UpdateAll).
func (cm *ComponentManager) DestroyGameObject(obj *GameObject) {
	cm.toDestroy = append(cm.toDestroy, obj)
}

func (cm *ComponentManager) flushDestroyed() {
	if len(cm.toDestroy) == 0 {
		return
	}
	for _, obj := range cm.toDestroy {
		cm.UnregisterGameObject(obj)
	}
	cm.toDestroy = cm.toDestroy[:0]
}

// GetAllGameObjects returns all registered GameObjects
func (cm *ComponentManager) GetAllGameObjects() []*GameObject {
	return cm.gameObjects
}

// Clear removes all GameObjects
func (cm *ComponentManager) Clear() {
	for _, obj := range cm.gameObjects {
		obj.Destroy()
	}
	cm.gameObjects = cm.gameObjects[:0]
	cm.toDestroy = cm.toDestroy[:0]
}
