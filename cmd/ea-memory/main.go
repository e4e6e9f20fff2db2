package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ea-mcp-go/internal/config"
	"ea-mcp-go/internal/memory"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:          "ea-memory",
	Short:        "Tagged memory MCP server",
	Long:         "MCP server exposing a simple tagged memory store over stdio. Memories live in a single JSON file under ~/.ea-memory.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the server version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s v%s\n", memory.ServerName, memory.Version)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file path (default: $EA_MCP_CONFIG or ~/.ea-mcp.yaml)")
	rootCmd.AddCommand(versionCmd)
}

func serve() error {
	// stdout carries the MCP wire protocol; logs go to stderr.
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	cfg := config.Load(configPath)
	store, err := memory.NewStore(cfg.MemoryDir, logger)
	if err != nil {
		return fmt.Errorf("open memory storage: %w", err)
	}

	srv := server.NewMCPServer(memory.ServerName, memory.Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions("Simple memory system with tagging. Use ea_remember to store information, ea_recall to search it, ea_list to browse, and ea_forget to delete."),
	)
	memory.RegisterTools(srv, store)

	logger.Info("serving stdio", zap.String("server", memory.ServerName), zap.String("storage", store.Dir()))
	return server.ServeStdio(srv)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
