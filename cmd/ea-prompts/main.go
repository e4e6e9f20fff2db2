package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ea-mcp-go/internal/config"
	"ea-mcp-go/internal/prompts"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:          "ea-prompts",
	Short:        "Prompt library MCP server",
	Long:         "MCP server exposing a prompt template library over stdio, with built-in templates plus user-managed custom prompts stored under ~/.ea-prompts.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the server version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s v%s\n", prompts.ServerName, prompts.Version)
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
	store, err := prompts.NewStore(cfg.PromptsDir, logger)
	if err != nil {
		return fmt.Errorf("open prompts storage: %w", err)
	}

	srv := server.NewMCPServer(prompts.ServerName, prompts.Version,
		server.WithToolCapabilities(true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions("Prompt template library. Built-in prompts cover code review, explanation, testing, refactoring, and debugging; manage custom templates with ea_add_prompt, ea_list_prompts, and ea_remove_prompt."),
	)
	prompts.RegisterPrompts(srv)
	prompts.RegisterTools(srv, store)

	logger.Info("serving stdio", zap.String("server", prompts.ServerName), zap.String("storage", store.Dir()))
	return server.ServeStdio(srv)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
