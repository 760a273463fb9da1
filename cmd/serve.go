package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/kosho/kosho/internal/config"
	"github.com/kosho/kosho/internal/i18n"
	"github.com/kosho/kosho/internal/log"
	"github.com/kosho/kosho/internal/mcp"
	mcpSdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

var httpAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP book search server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&httpAddr, "http", "",
		"serve MCP over streamable HTTP on this address instead of stdio")
	rootCmd.AddCommand(serveCmd)
}

// runServe initializes and starts the MCP server. Stdio is the default
// transport; --http (or http_addr in the config) switches to streamable
// HTTP.
func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}

	// Logs go to stderr: stdout carries the JSON-RPC stream.
	logger := log.New(log.Config{Level: level, JSON: cfg.LogJSON})
	slog.SetDefault(logger)

	i18n.Init(cfg.Language)

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	server, err := mcp.NewServer(mcp.Config{
		Name:    "kosho",
		Version: Version,
		Logger:  logger,
	})
	if err != nil {
		return fmt.Errorf("creating MCP server: %w", err)
	}

	addr := cfg.HTTPAddr
	if httpAddr != "" {
		addr = httpAddr
	}
	if addr != "" {
		return serveHTTP(ctx, server, addr)
	}

	slog.Info("MCP server ready", "name", "kosho", "version", Version, "transport", "stdio")

	if err := server.Run(ctx, &mcpSdk.StdioTransport{}); err != nil {
		return fmt.Errorf("MCP server error: %w", err)
	}

	slog.Info("MCP server shut down gracefully")
	return nil
}

// serveHTTP serves the MCP streamable HTTP transport until ctx is
// canceled, then drains connections before returning.
func serveHTTP(ctx context.Context, server *mcp.Server, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           server.HTTPHandler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	slog.Info("MCP server ready", "name", "kosho", "version", Version, "transport", "http", "addr", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("HTTP shutdown: %w", err)
		}
		slog.Info("MCP server shut down gracefully")
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("HTTP server error: %w", err)
	}
}
