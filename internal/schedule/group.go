package schedule

// Group analyzes the batch and partitions it into an ordered list of groups.
// Every call in a group may run concurrently with its group-mates; a group may
// only start once all earlier groups have completed. Order within a group is
// unspecified.
//
// A dependency cycle cannot occur from Analyze alone (edges only point
// backward in batch order), but pre-populated DependsOn entries can introduce
// one. Cycles are not an error: the remainder is logged and drained into
// singleton groups in batch order, so the result is always a valid, complete
// partition.
func (a *Analyzer) Group(calls []*ToolCall) [][]*ToolCall {
	if len(calls) == 0 {
		return nil
	}
	a.Analyze(calls)

	remaining := make([]*ToolCall, len(calls))
	copy(remaining, calls)
	completed := make(map[string]bool, len(calls))

	var groups [][]*ToolCall
	for len(remaining) > 0 {
		var ready, blocked []*ToolCall
		for _, c := range remaining {
			if depsSatisfied(c, completed) {
				ready = append(ready, c)
			} else {
				blocked = append(blocked, c)
			}
		}

		if len(ready) == 0 {
			// No progress this iteration: the remainder forms a cycle.
			names := make([]string, len(remaining))
			for i, c := range remaining {
				names[i] = c.Name
			}
			a.logger.Error("dependency cycle detected, scheduling remainder sequentially",
				"tools", names)
			for _, c := range remaining {
				groups = append(groups, []*ToolCall{c})
			}
			return groups
		}

		for _, c := range ready {
			completed[c.ID] = true
		}
		groups = append(groups, ready)
		remaining = blocked
	}
	return groups
}

// CanParallelize reports whether two calls may run concurrently, where x
// precedes y. It is a cheap pairwise check for callers that do not need the
// full batch algorithm.
func (a *Analyzer) CanParallelize(x, y *ToolCall) bool {
	return a.Classify(x, y) == None
}

func depsSatisfied(c *ToolCall, completed map[string]bool) bool {
	for _, id := range c.DependsOn {
		if !completed[id] {
			return false
		}
	}
	return true
}
