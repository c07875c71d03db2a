package schedule

import (
	"encoding/json"
	"log/slog"

	"github.com/tidwall/gjson"
)

// ExtractorFunc pulls a resource identifier (typically a filesystem path) out
// of a tool call's input. It returns the empty string when the input carries
// no resource.
type ExtractorFunc func(input json.RawMessage) string

// Analyzer infers dependency edges between the tool calls of one batch and
// partitions the batch into concurrently executable groups. Caller overrides
// for extractors and tool kinds are scoped to the instance, not the process.
type Analyzer struct {
	logger     *slog.Logger
	extractors map[string]ExtractorFunc
	kinds      map[string]ToolKind
	rules      []classifyRule
}

// NewAnalyzer creates an analyzer with the built-in extractor table and rule
// chain. A nil logger falls back to slog.Default().
func NewAnalyzer(logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	a := &Analyzer{
		logger:     logger,
		extractors: make(map[string]ExtractorFunc),
		kinds:      make(map[string]ToolKind),
	}
	a.rules = []classifyRule{
		a.writeConflictRule,
		a.readWriteRule,
		a.stateOrderRule,
		a.dataReferenceRule,
	}
	return a
}

// RegisterExtractor installs an extractor for the named tool, overriding any
// built-in entry for that name.
func (a *Analyzer) RegisterExtractor(name string, fn ExtractorFunc) {
	a.extractors[name] = fn
}

// Extract returns the resource identifier for a call, checking caller
// registrations before the built-in table. A call whose tool has no extractor,
// or whose extractor finds nothing, has no resource and can never trigger a
// Resource dependency.
func (a *Analyzer) Extract(c *ToolCall) string {
	if fn, ok := a.extractors[c.Name]; ok {
		return fn(c.Input)
	}
	if fn, ok := builtinExtractors[c.Name]; ok {
		return fn(c.Input)
	}
	return ""
}

// PathExtractor returns an extractor that reads the first non-empty string at
// the given gjson paths. Nested paths such as "edits.0.path" work.
func PathExtractor(paths ...string) ExtractorFunc {
	return func(input json.RawMessage) string {
		for _, p := range paths {
			if v := gjson.GetBytes(input, p); v.Type == gjson.String && v.Str != "" {
				return v.Str
			}
		}
		return ""
	}
}

// builtinExtractors covers the common file and directory tools. Tool naming
// varies across agent frontends, so both short and _file/_dir forms appear.
var builtinExtractors = map[string]ExtractorFunc{
	"read":             PathExtractor("file_path", "path"),
	"read_file":        PathExtractor("file_path", "path"),
	"write":            PathExtractor("file_path", "path"),
	"write_file":       PathExtractor("file_path", "path"),
	"edit":             PathExtractor("file_path", "path"),
	"edit_file":        PathExtractor("file_path", "path"),
	"create_file":      PathExtractor("file_path", "path"),
	"append_file":      PathExtractor("file_path", "path"),
	"delete_file":      PathExtractor("file_path", "path"),
	"move":             PathExtractor("destination", "source"),
	"rename_file":      PathExtractor("destination", "source"),
	"listdir":          PathExtractor("path", "directory"),
	"list_dir":         PathExtractor("path", "directory"),
	"list_directory":   PathExtractor("path", "directory"),
	"tree":             PathExtractor("path", "directory"),
	"create_directory": PathExtractor("path", "directory"),
	"mkdir":            PathExtractor("path", "directory"),
	"glob":             PathExtractor("path", "directory"),
	"grep":             PathExtractor("path", "directory"),
	"search":           PathExtractor("path", "directory"),
	"file_search":      PathExtractor("path", "directory"),
}
