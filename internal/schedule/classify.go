package schedule

import (
	"encoding/json"
	"strings"

	"github.com/tidwall/gjson"
)

// ToolKind categorizes a tool's effect on the environment for the purposes of
// dependency classification.
type ToolKind int

const (
	// KindNone marks tools with no known read/write/state behavior.
	KindNone ToolKind = iota
	// KindRead marks tools that only read a resource.
	KindRead
	// KindWrite marks tools that modify a resource.
	KindWrite
	// KindState marks tools that change ambient system state, such as
	// shell execution or directory creation.
	KindState
)

// String returns a human-readable representation of the kind.
func (k ToolKind) String() string {
	switch k {
	case KindRead:
		return "read"
	case KindWrite:
		return "write"
	case KindState:
		return "state"
	default:
		return "none"
	}
}

// RegisterKind installs a kind classification for the named tool, overriding
// any built-in entry for that name.
func (a *Analyzer) RegisterKind(name string, kind ToolKind) {
	a.kinds[name] = kind
}

func (a *Analyzer) kindOf(name string) ToolKind {
	if k, ok := a.kinds[name]; ok {
		return k
	}
	return builtinKinds[name]
}

var builtinKinds = map[string]ToolKind{
	"read":             KindRead,
	"read_file":        KindRead,
	"multiread":        KindRead,
	"listdir":          KindRead,
	"list_dir":         KindRead,
	"list_directory":   KindRead,
	"tree":             KindRead,
	"glob":             KindRead,
	"grep":             KindRead,
	"search":           KindRead,
	"file_search":      KindRead,
	"write":            KindWrite,
	"write_file":       KindWrite,
	"edit":             KindWrite,
	"edit_file":        KindWrite,
	"create_file":      KindWrite,
	"append_file":      KindWrite,
	"delete_file":      KindWrite,
	"move":             KindWrite,
	"rename_file":      KindWrite,
	"bash":             KindState,
	"shell":            KindState,
	"exec":             KindState,
	"run_command":      KindState,
	"git":              KindState,
	"create_directory": KindState,
	"mkdir":            KindState,
}

// classifyRule inspects an ordered pair of calls (x precedes y in the batch)
// and reports whether it fires and with which dependency type.
type classifyRule func(x, y *ToolCall) (DependencyType, bool)

// Classify decides whether y must wait for x, where x precedes y in the
// batch. Rules are evaluated in order and the first match wins.
func (a *Analyzer) Classify(x, y *ToolCall) DependencyType {
	for _, rule := range a.rules {
		if dt, ok := rule(x, y); ok {
			return dt
		}
	}
	return None
}

// writeConflictRule: a write followed by any access of an overlapping
// resource must be serialized.
func (a *Analyzer) writeConflictRule(x, y *ToolCall) (DependencyType, bool) {
	if a.kindOf(x.Name) != KindWrite {
		return None, false
	}
	rx, ry := a.Extract(x), a.Extract(y)
	if rx != "" && ry != "" && pathsOverlap(rx, ry) {
		return Resource, true
	}
	return None, false
}

// readWriteRule: a write must not start before a concurrent read of the same
// resource has logically completed.
func (a *Analyzer) readWriteRule(x, y *ToolCall) (DependencyType, bool) {
	if a.kindOf(x.Name) != KindRead || a.kindOf(y.Name) != KindWrite {
		return None, false
	}
	rx, ry := a.Extract(x), a.Extract(y)
	if rx != "" && ry != "" && pathsOverlap(rx, ry) {
		return Resource, true
	}
	return None, false
}

// stateOrderRule: a state-changing predecessor orders later calls that
// plausibly rely on the state it establishes. Directory creation orders calls
// targeting paths under the new directory; shell commands containing a
// state-mutating verb order everything after them.
func (a *Analyzer) stateOrderRule(x, y *ToolCall) (DependencyType, bool) {
	if a.kindOf(x.Name) != KindState {
		return None, false
	}
	switch x.Name {
	case "create_directory", "mkdir":
		dir := a.Extract(x)
		res := a.Extract(y)
		if dir != "" && res != "" && pathsOverlap(dir, res) {
			return Order, true
		}
	default:
		cmd := gjson.GetBytes(x.Input, "command").Str
		if containsStateVerb(cmd) {
			return Order, true
		}
	}
	return None, false
}

// dataReferenceRule: an argument value of y naming x's id is an explicit
// producer-consumer link.
func (a *Analyzer) dataReferenceRule(x, y *ToolCall) (DependencyType, bool) {
	if x.ID != "" && inputReferences(y.Input, x.ID) {
		return Data, true
	}
	return None, false
}

// pathsOverlap reports whether two resource paths refer to the same file or
// stand in a parent/child relationship. Deliberately conservative: a shared
// prefix at a separator boundary counts, symlinks and aliases do not.
func pathsOverlap(p, q string) bool {
	p = strings.TrimSuffix(p, "/")
	q = strings.TrimSuffix(q, "/")
	if p == "" || q == "" {
		return false
	}
	if p == q {
		return true
	}
	return strings.HasPrefix(q, p+"/") || strings.HasPrefix(p, q+"/")
}

// stateVerbs are commands that mutate filesystem or environment state when
// they appear in shell input.
var stateVerbs = map[string]struct{}{
	"mkdir": {}, "rm": {}, "mv": {}, "cp": {}, "touch": {},
	"chmod": {}, "chown": {}, "ln": {},
	"git": {}, "npm": {}, "pip": {}, "pip3": {}, "make": {},
}

func containsStateVerb(command string) bool {
	fields := strings.FieldsFunc(command, func(r rune) bool {
		switch r {
		case ' ', '\t', '\n', ';', '&', '|', '(', ')':
			return true
		}
		return false
	})
	for _, f := range fields {
		if _, ok := stateVerbs[f]; ok {
			return true
		}
	}
	return false
}

// inputReferences walks every value in a call's input looking for id as a
// substring of a string value.
func inputReferences(input json.RawMessage, id string) bool {
	if len(input) == 0 {
		return false
	}
	return valueReferences(gjson.ParseBytes(input), id)
}

func valueReferences(v gjson.Result, id string) bool {
	if v.IsObject() || v.IsArray() {
		found := false
		v.ForEach(func(_, child gjson.Result) bool {
			if valueReferences(child, id) {
				found = true
				return false
			}
			return true
		})
		return found
	}
	return v.Type == gjson.String && strings.Contains(v.Str, id)
}
