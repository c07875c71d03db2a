package schedule

import (
	"fmt"
	"strings"
)

// Plan is the ordered execution plan for one batch.
type Plan struct {
	Groups [][]*ToolCall
}

// BuildPlan analyzes the batch and wraps the resulting groups.
func (a *Analyzer) BuildPlan(calls []*ToolCall) Plan {
	return Plan{Groups: a.Group(calls)}
}

// Report renders the plan as markdown: one section per group, each call with
// the edges that constrain it.
func (p Plan) Report() string {
	var sb strings.Builder
	sb.WriteString("# Execution plan\n")
	for i, group := range p.Groups {
		fmt.Fprintf(&sb, "\n## Group %d\n\n", i+1)
		for _, c := range group {
			fmt.Fprintf(&sb, "- **%s** `%s`", c.Name, c.ID)
			if len(c.DependsOn) > 0 {
				deps := make([]string, len(c.DependsOn))
				for j, id := range c.DependsOn {
					deps[j] = fmt.Sprintf("`%s` (%s)", id, c.DependencyTypes[id])
				}
				fmt.Fprintf(&sb, " waits on %s", strings.Join(deps, ", "))
			}
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
