package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterPrompts exposes the built-in templates through the MCP Prompts
// capability.
func RegisterPrompts(srv *server.MCPServer) {
	for _, name := range builtinNames() {
		t := builtins[name]

		opts := []mcp.PromptOption{mcp.WithPromptDescription(t.Description)}
		for _, arg := range t.Arguments {
			argOpts := []mcp.ArgumentOption{mcp.ArgumentDescription(arg.Description)}
			if arg.Required {
				argOpts = append(argOpts, mcp.RequiredArgument())
			}
			opts = append(opts, mcp.WithArgument(arg.Name, argOpts...))
		}

		srv.AddPrompt(mcp.NewPrompt(t.Name, opts...), promptHandler(t))
	}
}

func promptHandler(t Template) server.PromptHandlerFunc {
	return func(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		values := map[string]string{}
		for _, arg := range t.Arguments {
			value, ok := request.Params.Arguments[arg.Name]
			if !ok {
				if arg.Required {
					return nil, fmt.Errorf("missing required argument: %s", arg.Name)
				}
				value = "Not provided"
			}
			values[arg.Name] = value
		}

		return mcp.NewGetPromptResult(t.Description, []mcp.PromptMessage{
			mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(t.Render(values))),
		}), nil
	}
}
