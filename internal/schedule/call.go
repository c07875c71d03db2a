package schedule

import "encoding/json"

// DependencyType classifies why one tool call must wait for another.
type DependencyType int

const (
	// None means the two calls have no ordering constraint.
	None DependencyType = iota
	// Resource means both calls touch the same or an overlapping resource,
	// at least one of them writing.
	Resource
	// Order means the earlier call changes ambient system state the later
	// call may implicitly rely on (e.g. creating a directory before a
	// write into it).
	Order
	// Data means the later call's arguments reference the earlier call's
	// id, an explicit producer-consumer link.
	Data
)

// String returns a human-readable representation of the dependency type.
func (d DependencyType) String() string {
	switch d {
	case None:
		return "none"
	case Resource:
		return "resource"
	case Order:
		return "order"
	case Data:
		return "data"
	default:
		return "unknown"
	}
}

// ToolCall represents a single tool invocation request awaiting scheduling.
// ID and Name are assigned by the caller before analysis and never mutated
// here. DependsOn and DependencyTypes start empty and are populated in place
// by Analyze.
type ToolCall struct {
	ID    string
	Name  string
	Input json.RawMessage

	// DependsOn lists ids of earlier calls in the same batch that must
	// complete before this one may start.
	DependsOn []string

	// DependencyTypes maps each DependsOn entry to the type that caused it.
	DependencyTypes map[string]DependencyType
}

// addDependency records an edge from an earlier call, once per pair.
func (c *ToolCall) addDependency(id string, dt DependencyType) {
	if c.DependencyTypes == nil {
		c.DependencyTypes = make(map[string]DependencyType)
	}
	if _, exists := c.DependencyTypes[id]; exists {
		return
	}
	c.DependencyTypes[id] = dt
	c.DependsOn = append(c.DependsOn, id)
}
