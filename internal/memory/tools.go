package memory

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const ServerName = "ea-memory"

// RegisterTools wires the memory tools onto the MCP server.
func RegisterTools(srv *server.MCPServer, store *Store) {
	srv.AddTool(mcp.NewTool("ea_remember",
		mcp.WithDescription(`Store a memory with optional tags and importance.

Memories persist between sessions and can be searched by content or tags.

Examples:
- ea_remember(content="The API endpoint is /api/v1/users")
- ea_remember(content="Fixed the retry bug", tags="python,bugfix", importance=80)`),
		mcp.WithInputSchema[RememberArgs](),
		mcp.WithTitleAnnotation("Remember Information"),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(false),
	), wrapRemember(store))

	srv.AddTool(mcp.NewTool("ea_recall",
		mcp.WithDescription(`Search memories by keyword or phrase.

Results are sorted by importance (highest first), then by date.

Examples:
- ea_recall(query="API") - finds memories containing "API"
- ea_recall(query="database", tags="config") - database memories tagged 'config'`),
		mcp.WithInputSchema[RecallArgs](),
		mcp.WithTitleAnnotation("Search Memories"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	), wrapRecall(store))

	srv.AddTool(mcp.NewTool("ea_list",
		mcp.WithDescription(`List all stored memories with optional filtering.

Returns a summary table. Use offset for pagination through large
memory collections.

Examples:
- ea_list() - shows all memories
- ea_list(tags="api") - only API-tagged memories
- ea_list(offset=20) - memories 21-40`),
		mcp.WithInputSchema[ListArgs](),
		mcp.WithTitleAnnotation("List Memories"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	), wrapList(store))

	srv.AddTool(mcp.NewTool("ea_forget",
		mcp.WithDescription(`Delete a memory by ID.

Permanently removes a memory from storage. Requires confirm=true to
prevent accidental deletion.`),
		mcp.WithInputSchema[ForgetArgs](),
		mcp.WithTitleAnnotation("Delete Memory"),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	), wrapForget(store))
}

func wrapRemember(store *Store) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args RememberArgs
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if err := args.Validate(); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		result, err := store.Remember(args)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to save memory: %v", err)), nil
		}
		return mcp.NewToolResultText(result), nil
	}
}

func wrapRecall(store *Store) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args RecallArgs
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if err := args.Validate(); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(store.Recall(args)), nil
	}
}

func wrapList(store *Store) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args ListArgs
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if err := args.Validate(); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(store.List(args)), nil
	}
}

func wrapForget(store *Store) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args ForgetArgs
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if err := args.Validate(); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		result, err := store.Forget(args)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to update storage: %v", err)), nil
		}
		return mcp.NewToolResultText(result), nil
	}
}
