package mcp

import (
	"context"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/kosho/kosho/internal/catalog"
	"github.com/kosho/kosho/internal/search"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// SearchInput defines the input schema for the search tool. Keyword is
// required; an empty keyword is accepted and matches every book. Limit
// is optional and defaults to search.DefaultLimit when absent.
type SearchInput struct {
	Keyword string `json:"keyword" jsonschema:"the search keyword, matched against title, author, and description"`
	Limit   *int   `json:"limit,omitempty" jsonschema:"maximum number of results (default 5)"`
}

// registerSearchTool registers the search tool with the SDK server.
func (s *Server) registerSearchTool() error {
	inputSchema, err := jsonschema.For[SearchInput](nil)
	if err != nil {
		return fmt.Errorf("schema for search: %w", err)
	}

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "search",
		Description: "Search for book in our fictional database",
		InputSchema: inputSchema,
	}, s.Search)

	return nil
}

// Search handles the search MCP tool call. An empty match set is a
// successful response carrying the "no results" text, never an error.
func (s *Server) Search(ctx context.Context, req *mcp.CallToolRequest, input SearchInput) (*mcp.CallToolResult, any, error) {
	limit := search.DefaultLimit
	if input.Limit != nil {
		limit = *input.Limit
	}

	matches := search.Match(catalog.Books(), input.Keyword, limit)
	text := search.Render(input.Keyword, matches)

	s.logger.Debug("search completed",
		"keyword", input.Keyword, "limit", limit, "matches", len(matches))

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}, nil, nil
}
