package journal

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	ServerName  = "ea-journal"
	description = "Daily work journal for tracking progress, decisions, and blockers"
	author      = "Early AI Adopters"
	course      = "Claude Code Fundamentals"
	moduleLabel = "04 - MCP Servers"
)

// toolCatalog drives both the status report and nothing else; keep it in
// sync with RegisterTools.
var toolCatalog = []struct {
	name    string
	summary string
}{
	{"ea_log", "Log an entry (work, decision, blocker, note, win, learning)"},
	{"ea_today", "View today's journal entries"},
	{"ea_review", "Review entries from a specific date or range"},
	{"ea_summary", "Generate a summary of work over time"},
	{"ea_journal_status", "Get server status and metadata"},
}

// RegisterTools wires the journal tools onto the MCP server.
func RegisterTools(srv *server.MCPServer, store *Store) {
	srv.AddTool(mcp.NewTool("ea_log",
		mcp.WithDescription(`Log a journal entry for today.

Entry types:
- work: What you worked on
- decision: A decision you made and why
- blocker: Something blocking your progress
- note: General note or observation
- win: Something that went well
- learning: Something you learned

Examples:
- ea_log(content="Implemented user authentication", entry_type="work", project="webapp")
- ea_log(content="Chose PostgreSQL over MongoDB for relational data", entry_type="decision")
- ea_log(content="Waiting on API keys from vendor", entry_type="blocker")`),
		mcp.WithInputSchema[LogArgs](),
		mcp.WithTitleAnnotation("Log Journal Entry"),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(false),
	), wrapLog(store))

	srv.AddTool(mcp.NewTool("ea_today",
		mcp.WithDescription(`View all journal entries for today, grouped by type.

Optionally filter by entry type:
- ea_today() - all of today's entries
- ea_today(entry_type="blocker") - only today's blockers`),
		mcp.WithInputSchema[TodayArgs](),
		mcp.WithTitleAnnotation("View Today's Journal"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	), wrapToday(store))

	srv.AddTool(mcp.NewTool("ea_review",
		mcp.WithDescription(`Review journal entries from a specific date or range.

Examples:
- ea_review(date="2025-01-10") - entries from a specific date
- ea_review(days=7) - entries from the last 7 days
- ea_review(days=30, entry_type="decision") - decisions from the last month`),
		mcp.WithInputSchema[ReviewArgs](),
		mcp.WithTitleAnnotation("Review Past Entries"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	), wrapReview(store))

	srv.AddTool(mcp.NewTool("ea_summary",
		mcp.WithDescription(`Generate a work summary for the last N days (default 7).

Shows entry counts by type, per-project breakdown, and highlights
recent wins, blockers, and learnings. Useful for standups and
weekly reviews.`),
		mcp.WithInputSchema[SummaryArgs](),
		mcp.WithTitleAnnotation("Generate Work Summary"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	), wrapSummary(store))

	srv.AddTool(mcp.NewTool("ea_journal_status",
		mcp.WithDescription("Check that the journal server is connected and see storage statistics."),
		mcp.WithTitleAnnotation("Server Status"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	), wrapStatus(store))
}

func wrapLog(store *Store) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args LogArgs
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if err := args.Validate(); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		result, err := store.Log(args)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to save entry: %v", err)), nil
		}
		return mcp.NewToolResultText(result), nil
	}
}

func wrapToday(store *Store) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args TodayArgs
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if err := args.Validate(); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(store.Today(args)), nil
	}
}

func wrapReview(store *Store) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args ReviewArgs
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if err := args.Validate(); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(store.Review(args)), nil
	}
}

func wrapSummary(store *Store) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args SummaryArgs
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if err := args.Validate(); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(store.Summary(args)), nil
	}
}

func wrapStatus(store *Store) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(store.Status()), nil
	}
}

// Status reports server identity, the tool catalog, and storage stats.
func (s *Store) Status() string {
	now := s.Now()
	today := s.LoadDay(now)

	todayLine := "No entries yet"
	if len(today) > 0 {
		// Counts appear in the order each type was first logged today.
		byType := map[string]int{}
		var seen []string
		for _, e := range today {
			if _, ok := byType[e.Type]; !ok {
				seen = append(seen, e.Type)
			}
			byType[e.Type]++
		}
		counts := make([]string, len(seen))
		for i, t := range seen {
			counts[i] = fmt.Sprintf("%d %s", byType[t], t)
		}
		todayLine = strings.Join(counts, ", ")
	}

	lines := []string{fmt.Sprintf("# %s v%s\n", ServerName, Version)}
	lines = append(lines, fmt.Sprintf("**Author:** %s", author))
	lines = append(lines, fmt.Sprintf("**Course:** %s", course))
	lines = append(lines, fmt.Sprintf("**Module:** %s", moduleLabel))
	lines = append(lines, "\n## Description")
	lines = append(lines, description)
	lines = append(lines, "\n## Available Tools")
	for _, t := range toolCatalog {
		lines = append(lines, fmt.Sprintf("  - **%s**: %s", t.name, t.summary))
	}
	lines = append(lines, "\n## Entry Types")
	lines = append(lines, strings.Join(EntryTypes, ", "))
	lines = append(lines, "\n## Current Stats")
	lines = append(lines, fmt.Sprintf("- **Today's date:** %s", now.Format("2006-01-02")))
	lines = append(lines, fmt.Sprintf("- **Today's entries:** %s", todayLine))
	lines = append(lines, fmt.Sprintf("- **Days with entries:** %d", s.DayCount()))
	lines = append(lines, fmt.Sprintf("- **Storage path:** %s", s.Dir()))
	lines = append(lines, "\n## Status: CONNECTED")
	lines = append(lines, "Server is running and ready to accept commands.")

	return strings.Join(lines, "\n")
}
