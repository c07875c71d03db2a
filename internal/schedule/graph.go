package schedule

// Analyze evaluates every ordered pair of the batch and records each detected
// dependency on the later call, in place. Pairs are only considered in batch
// order, so no call ever depends on a later or identical id. The returned map
// mirrors the in-place edges, with an entry (possibly empty) for every call.
//
// Analyze mutates the batch. Running it twice over the same batch records no
// duplicate edges, since an edge is kept only once per ordered pair.
func (a *Analyzer) Analyze(calls []*ToolCall) map[string][]string {
	for i := 0; i < len(calls); i++ {
		for j := i + 1; j < len(calls); j++ {
			if dt := a.Classify(calls[i], calls[j]); dt != None {
				calls[j].addDependency(calls[i].ID, dt)
			}
		}
	}

	graph := make(map[string][]string, len(calls))
	for _, c := range calls {
		deps := make([]string, len(c.DependsOn))
		copy(deps, c.DependsOn)
		graph[c.ID] = deps
	}
	return graph
}
