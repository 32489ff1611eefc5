package ecs

// System represents a behavior that operates on entities with specific components.
// Systems are structs whose exported Query and Singleton fields are wired by
// Scheduler.Register; any other fields are private state kept between frames.
type System interface {
	Execute(frame *UpdateFrame)
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc func(frame *UpdateFrame)

func (f SystemFunc) Execute(frame *UpdateFrame) { f(frame) }
