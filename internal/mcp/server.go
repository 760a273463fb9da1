package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/kosho/kosho/internal/i18n"
	"github.com/kosho/kosho/internal/log"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP SDK server and the book search tool.
type Server struct {
	mcpServer *mcp.Server
	logger    log.Logger
	name      string
	version   string
}

// Config holds MCP server configuration.
type Config struct {
	// Name identifies the server implementation to clients.
	Name string

	// Version is the server version reported during initialization,
	// supplied by the build environment via ldflags.
	Version string

	// Logger receives per-invocation debug logs. Defaults to
	// slog.Default() when nil.
	Logger log.Logger
}

// NewServer creates an MCP server advertising the search tool plus
// empty prompt and resource inventories.
func NewServer(cfg Config) (*Server, error) {
	if cfg.Name == "" {
		return nil, fmt.Errorf("server name is required")
	}
	if cfg.Version == "" {
		return nil, fmt.Errorf("server version is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    cfg.Name,
		Version: cfg.Version,
	}, &mcp.ServerOptions{
		Instructions: i18n.T("server.instructions"),
		// Declared with nothing registered: lists come back empty,
		// read_resource fails with resource-not-found, get_prompt with
		// invalid-parameters.
		HasPrompts:   true,
		HasResources: true,
	})

	s := &Server{
		mcpServer: mcpServer,
		logger:    logger,
		name:      cfg.Name,
		version:   cfg.Version,
	}

	if err := s.registerSearchTool(); err != nil {
		return nil, fmt.Errorf("registering search tool: %w", err)
	}

	return s, nil
}

// Run starts the MCP server on the given transport. This is a blocking
// call that handles all protocol communication until ctx is canceled or
// the client disconnects.
func (s *Server) Run(ctx context.Context, transport mcp.Transport) error {
	return s.mcpServer.Run(ctx, transport)
}

// HTTPHandler returns an http.Handler serving the MCP streamable HTTP
// transport, as an alternative to stdio.
func (s *Server) HTTPHandler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcpServer
	}, nil)
}
