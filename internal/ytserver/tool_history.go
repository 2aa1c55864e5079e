package ytserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/tn3w/ytbpy/internal/engine"
)

type recentLookupsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Maximum history entries to return (default 50, capped at 100)"`
}

type recentLookupsOutput struct {
	Lookups []engine.LookupRecord `json:"lookups"`
	Count   int                   `json:"count"`
}

func registerRecentLookups(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "recent_lookups",
		Description: "List the most recent lookups this server handled (operation, input, result count, timestamp), newest first. Empty unless history is enabled via HISTORY_PATH.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input recentLookupsInput) (*mcp.CallToolResult, *recentLookupsOutput, error) {
		records, err := engine.RecentLookups(ctx, input.Limit)
		if err != nil {
			return nil, nil, err
		}
		return nil, &recentLookupsOutput{Lookups: records, Count: len(records)}, nil
	})
}
