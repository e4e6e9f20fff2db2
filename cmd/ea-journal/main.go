package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ea-mcp-go/internal/config"
	"ea-mcp-go/internal/journal"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:          "ea-journal",
	Short:        "Daily work journal MCP server",
	Long:         "MCP server exposing a daily work journal over stdio. Entries are stored as one JSON file per day under ~/.ea-journal.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the server version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s v%s\n", journal.ServerName, journal.Version)
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
	store, err := journal.NewStore(cfg.JournalDir, logger)
	if err != nil {
		return fmt.Errorf("open journal storage: %w", err)
	}

	srv := server.NewMCPServer(journal.ServerName, journal.Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions("Daily work journal. Use ea_log to record work, decisions, blockers, notes, wins, and learnings; ea_today, ea_review, and ea_summary to read them back."),
	)
	journal.RegisterTools(srv, store)

	logger.Info("serving stdio", zap.String("server", journal.ServerName), zap.String("storage", store.Dir()))
	return server.ServeStdio(srv)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
