package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const ServerName = "ea-prompts"

// RegisterTools wires the prompt management tools onto the MCP server.
func RegisterTools(srv *server.MCPServer, store *Store) {
	srv.AddTool(mcp.NewTool("ea_add_prompt",
		mcp.WithDescription(`Add a custom prompt to your library.

Create a reusable prompt template that can be used later. Use {arg_name}
syntax in templates for variable substitution.

Examples:
- ea_add_prompt(name="summarize", description="Summarize text", template="Summarize: {text}", arguments="text")
- ea_add_prompt(name="compare", description="Compare two snippets", template="Compare {code1} with {code2}", arguments="code1,code2")`),
		mcp.WithInputSchema[AddArgs](),
		mcp.WithTitleAnnotation("Add Custom Prompt"),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(false),
	), wrapAdd(store))

	srv.AddTool(mcp.NewTool("ea_list_prompts",
		mcp.WithDescription(`List all available prompts.

Shows both built-in prompts and any custom prompts you've added.
Set include_templates=true to see the full template text.`),
		mcp.WithInputSchema[ListArgs](),
		mcp.WithTitleAnnotation("List Available Prompts"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	), wrapList(store))

	srv.AddTool(mcp.NewTool("ea_remove_prompt",
		mcp.WithDescription(`Remove a custom prompt.

Only custom prompts can be removed. Built-in prompts are permanent.
Requires confirm=true.`),
		mcp.WithInputSchema[RemoveArgs](),
		mcp.WithTitleAnnotation("Remove Custom Prompt"),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	), wrapRemove(store))
}

func wrapAdd(store *Store) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args AddArgs
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if err := args.Validate(); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		result, err := store.Add(args)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to save prompt: %v", err)), nil
		}
		return mcp.NewToolResultText(result), nil
	}
}

func wrapList(store *Store) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args ListArgs
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		return mcp.NewToolResultText(store.List(args)), nil
	}
}

func wrapRemove(store *Store) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args RemoveArgs
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if err := args.Validate(); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		result, err := store.Remove(args)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to update storage: %v", err)), nil
		}
		return mcp.NewToolResultText(result), nil
	}
}
