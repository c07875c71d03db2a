package schedule

import (
	"encoding/json"

	"github.com/anthropics/anthropic-sdk-go"
)

// CallsFromBlocks converts the tool-use blocks of an assistant message into a
// batch ready for analysis. Blocks that aren't tool uses are skipped. An input
// that fails to marshal is kept as an empty input rather than dropping the
// call, so the batch still covers every requested invocation.
func CallsFromBlocks(blocks []anthropic.ContentBlockParamUnion) []*ToolCall {
	var calls []*ToolCall
	for _, block := range blocks {
		tu := block.OfToolUse
		if tu == nil {
			continue
		}
		input, err := json.Marshal(tu.Input)
		if err != nil {
			input = nil
		}
		calls = append(calls, &ToolCall{
			ID:    tu.ID,
			Name:  tu.Name,
			Input: input,
		})
	}
	return calls
}
