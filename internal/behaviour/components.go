package behaviour

// ComponentType defines the category of a component
type ComponentType string

const (
	ComponentTypeVehicle ComponentType = "Vehicle"
	ComponentTypeTurret  ComponentType = "Turret"
	ComponentTypeInput   ComponentType = "Input"
	ComponentTypeCustom  ComponentType = "Custom"
)

// TypedComponent extends Component with type information
type TypedComponent interface {
	Component
	GetComponentType() ComponentType
	GetTypeName() string
}

// GetComponentTypeName returns the declared type name, or "Unknown" for untyped components.
func GetComponentTypeName(comp Component) string {
	if typed, ok := comp.(TypedComponent); ok {
		return typed.GetTypeName()
	}
	return "Unknown"
}

// GetComponentCategory returns the declared category, or ComponentTypeCustom.
func GetComponentCategory(comp Component) ComponentType {
	if typed, ok := comp.(TypedComponent); ok {
		return typed.GetComponentType()
	}
	return ComponentTypeCustom
}
