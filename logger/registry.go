package logger

import "sync"

// Component names used by this module's packages.
const (
	ComponentBreaker = "breaker"
	ComponentConfig  = "config"
)

// components maps a component name to the logger its messages go to.
var components sync.Map

// Register routes the messages of component to l. A nil l drops the
// override again.
func Register(component string, l *Logger) {
	if l == nil {
		components.Delete(component)
		return
	}
	components.Store(component, l)
}

// Get returns the logger registered for component, or the global logger
// tagged with the component name.
func Get(component string) *Logger {
	if l, ok := components.Load(component); ok {
		return l.(*Logger)
	}
	return GetGlobalLogger().WithComponent(component)
}
