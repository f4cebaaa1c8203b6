package behaviour

import (
	"testing"
)

func TestComponentManagerRegister(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Test")
	comp := &MockComponent{}
	obj.AddComponent(comp)

	cm.RegisterGameObject(obj)

	all := cm.GetAllGameObjects()
	if len(all) != 1 {
		t.Errorf("Expected 1 registered object, got %d", len(all))
	}
	if comp.startCalls != 1 {
		t.Errorf("Expected Start once on register, got %d", comp.startCalls)
	}
}

func TestComponentManagerStartsOnce(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Test")
	comp := &MockComponent{}
	obj.AddComponent(comp)
	cm.RegisterGameObject(obj)

	cm.UpdateAll(0.016)
	cm.FixedUpdateAll(0.02)
	cm.UpdateAll(0.016)

	if comp.startCalls != 1 {
		t.Errorf("Start should run exactly once, got %d", comp.startCalls)
	}
}

func TestComponentManagerStartsLateComponents(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Test")
	cm.RegisterGameObject(obj)

	late := &MockComponent{}
	obj.AddComponent(late)
	cm.FixedUpdateAll(0.02)

	if late.startCalls != 1 {
		t.Errorf("Component added after register should start once, got %d", late.startCalls)
	}
	if late.fixedDt != 0.02 {
		t.Errorf("Expected fixed update after start, got dt=%f", late.fixedDt)
	}

	cm.UpdateAll(0.016)
	if late.startCalls != 1 {
		t.Errorf("Start should not repeat, got %d", late.startCalls)
	}
}

func TestComponentManagerStartsWhenEnabled(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Test")
	comp := &MockComponent{}
	obj.AddComponent(comp)
	comp.SetEnabled(false)
	cm.RegisterGameObject(obj)

	if comp.startCalls != 0 {
		t.Errorf("Disabled component should not start, got %d", comp.startCalls)
	}

	comp.SetEnabled(true)
	cm.UpdateAll(0.016)

	if comp.startCalls != 1 {
		t.Errorf("Component should start once enabled, got %d", comp.startCalls)
	}
	if !comp.updateCalled {
		t.Error("Update should run after the late start")
	}
}

func TestComponentManagerUnregister(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Test")

	cm.RegisterGameObject(obj)
	cm.UnregisterGameObject(obj)

	all := cm.GetAllGameObjects()
	if len(all) != 0 {
		t.Errorf("Expected 0 objects after unregister, got %d", len(all))
	}
}

func TestComponentManagerUpdateAll(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Test")
	comp := &MockComponent{}
	obj.AddComponent(comp)
	cm.RegisterGameObject(obj)

	cm.UpdateAll(0.016)

	if !comp.updateCalled {
		t.Error("Update() was not called on component")
	}
}

func TestComponentManagerFixedUpdateAll(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Test")
	comp := &MockComponent{}
	obj.AddComponent(comp)
	cm.RegisterGameObject(obj)

	cm.FixedUpdateAll(0.02)

	if comp.fixedDt != 0.02 {
		t.Errorf("FixedUpdate() should receive dt 0.02, got %v", comp.fixedDt)
	}
}

func TestComponentManagerInactiveObject(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Test")
	obj.Active = false
	comp := &MockComponent{}
	obj.AddComponent(comp)
	cm.RegisterGameObject(obj)

	cm.UpdateAll(0.016)

	if comp.updateCalled {
		t.Error("Update() should not be called on inactive object")
	}
	if comp.startCalls != 0 {
		t.Error("Start() should not be called on inactive object")
	}
}

func TestComponentManagerDisabledComponent(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Test")
	comp := &MockComponent{}
	obj.AddComponent(comp)
	comp.SetEnabled(false)
	cm.RegisterGameObject(obj)

	cm.FixedUpdateAll(0.02)

	if comp.fixedDt != 0 {
		t.Error("FixedUpdate() should not be called on disabled component")
	}
}

func TestComponentManagerDeferredDestroy(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("Doomed")
	comp := &MockComponent{}
	obj.AddComponent(comp)
	cm.RegisterGameObject(obj)

	cm.DestroyGameObject(obj)
	if len(cm.GetAllGameObjects()) != 1 {
		t.Fatal("Destroy should be deferred until the next UpdateAll")
	}

	cm.UpdateAll(0.016)

	if len(cm.GetAllGameObjects()) != 0 {
		t.Error("Object should be removed after UpdateAll")
	}
	if !comp.destroyed {
		t.Error("OnDestroy should be called")
	}
	if comp.updateCalled {
		t.Error("Destroyed object should not be updated")
	}
}

func TestComponentManagerFindGameObject(t *testing.T) {
	cm := NewComponentManager()
	obj := NewGameObject("FindMe")
	cm.RegisterGameObject(obj)

	found := cm.FindGameObject("FindMe")

	if found != obj {
		t.Error("FindGameObject returned wrong object")
	}
	if cm.FindGameObject("NotHere") != nil {
		t.Error("FindGameObject should return nil for non-existent object")
	}
}

func TestComponentManagerFindWithTag(t *testing.T) {
	cm := NewComponentManager()
	a := NewGameObject("A")
	a.Tag = "Vehicle"
	b := NewGameObject("B")
	cm.RegisterGameObject(a)
	cm.RegisterGameObject(b)

	found := cm.FindGameObjectsWithTag("Vehicle")

	if len(found) != 1 || found[0] != a {
		t.Errorf("Expected only A tagged Vehicle, got %v", found)
	}
}

func TestComponentManagerClear(t *testing.T) {
	cm := NewComponentManager()
	cm.RegisterGameObject(NewGameObject("A"))
	cm.RegisterGameObject(NewGameObject("B"))

	cm.Clear()

	all := cm.GetAllGameObjects()
	if len(all) != 0 {
		t.Errorf("Clear should remove all objects, got %d", len(all))
	}
}
