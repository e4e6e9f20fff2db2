package memory

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"ea-mcp-go/internal/storage"
)

// RememberArgs is the input for storing a memory.
type RememberArgs struct {
	Content    string `json:"content" jsonschema:"required,description=The information to remember"`
	Tags       string `json:"tags" jsonschema:"description=Comma-separated tags for organization"`
	Importance int    `json:"importance" jsonschema:"default=50,description=Priority 1-100 (default: 50)"`
}

func (a *RememberArgs) Validate() error {
	a.Content = strings.TrimSpace(a.Content)
	if a.Importance == 0 {
		a.Importance = 50
	}
	if a.Content == "" || utf8.RuneCountInString(a.Content) > 10000 {
		return fmt.Errorf("content must be between 1 and 10000 characters")
	}
	if a.Importance < 1 || a.Importance > 100 {
		return fmt.Errorf("importance must be between 1 and 100")
	}
	return nil
}

// RecallArgs is the input for searching memories.
type RecallArgs struct {
	Query string `json:"query" jsonschema:"required,description=Search term to find in memory content"`
	Tags  string `json:"tags" jsonschema:"description=Filter by comma-separated tags (optional)"`
	Limit int    `json:"limit" jsonschema:"default=10,description=Maximum results (default: 10)"`
}

func (a *RecallArgs) Validate() error {
	a.Query = strings.TrimSpace(a.Query)
	if a.Limit == 0 {
		a.Limit = 10
	}
	if a.Query == "" {
		return fmt.Errorf("query must not be empty")
	}
	if a.Limit < 1 || a.Limit > 50 {
		return fmt.Errorf("limit must be between 1 and 50")
	}
	return nil
}

// ListArgs is the input for listing memories.
type ListArgs struct {
	Tags   string `json:"tags" jsonschema:"description=Filter by comma-separated tags (optional)"`
	Limit  int    `json:"limit" jsonschema:"default=20,description=Maximum results (default: 20)"`
	Offset int    `json:"offset" jsonschema:"description=Skip this many results for pagination"`
}

func (a *ListArgs) Validate() error {
	if a.Limit == 0 {
		a.Limit = 20
	}
	if a.Limit < 1 || a.Limit > 100 {
		return fmt.Errorf("limit must be between 1 and 100")
	}
	if a.Offset < 0 {
		return fmt.Errorf("offset must not be negative")
	}
	return nil
}

// ForgetArgs is the input for deleting a memory.
type ForgetArgs struct {
	MemoryID string `json:"memory_id" jsonschema:"required,description=The memory ID to delete (e.g. mem_0001)"`
	Confirm  bool   `json:"confirm" jsonschema:"description=Must be true to confirm deletion"`
}

func (a *ForgetArgs) Validate() error {
	a.MemoryID = strings.TrimSpace(a.MemoryID)
	if a.MemoryID == "" {
		return fmt.Errorf("memory_id must not be empty")
	}
	return nil
}

// Remember stores a new memory and returns a confirmation.
func (s *Store) Remember(args RememberArgs) (string, error) {
	doc := s.load()

	m := Memory{
		ID:         fmt.Sprintf("mem_%04d", doc.NextID),
		Content:    args.Content,
		Tags:       ParseTags(args.Tags),
		Importance: args.Importance,
		CreatedAt:  storage.Timestamp(s.Now()),
	}
	doc.NextID++
	doc.Memories = append(doc.Memories, m)

	if err := s.save(doc); err != nil {
		return "", err
	}

	return fmt.Sprintf("Remembered: %s\nTags: %s\nImportance: %d/100\nCreated: %s",
		m.ID, tagDisplay(m.Tags, "none"), m.Importance, m.CreatedAt[:10]), nil
}

// Recall searches memory content for a substring, most important first.
func (s *Store) Recall(args RecallArgs) string {
	doc := s.load()
	if len(doc.Memories) == 0 {
		return "No memories stored yet. Use ea_remember to store your first memory."
	}

	filterTags := ParseTags(args.Tags)
	query := strings.ToLower(args.Query)

	var results []Memory
	for _, m := range doc.Memories {
		if !strings.Contains(strings.ToLower(m.Content), query) {
			continue
		}
		if !matchesAnyTag(m, filterTags) {
			continue
		}
		results = append(results, m)
	}

	// Importance descending; the oldest of any tie comes first.
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Importance != results[j].Importance {
			return results[i].Importance > results[j].Importance
		}
		return results[i].CreatedAt < results[j].CreatedAt
	})

	total := len(results)
	if total > args.Limit {
		results = results[:args.Limit]
	}

	if len(results) == 0 {
		return fmt.Sprintf("No memories found matching: %s", args.Query)
	}

	output := []string{fmt.Sprintf("# Found %d memories (showing %d)\n", total, len(results))}
	for _, m := range results {
		output = append(output, fmt.Sprintf("## [%s] Importance: %d/100\n**Tags:** %s\n**Created:** %s\n\n%s\n\n---",
			m.ID, m.Importance, tagDisplay(m.Tags, "none"), m.CreatedAt[:10], m.Content))
	}
	if total > len(results) {
		output = append(output, fmt.Sprintf("\n*%d more results available. Increase limit to see more.*",
			total-len(results)))
	}

	return strings.Join(output, "\n")
}

// List renders a paginated summary table of memories, newest first.
func (s *Store) List(args ListArgs) string {
	doc := s.load()
	if len(doc.Memories) == 0 {
		return "No memories stored yet. Use ea_remember to store your first memory."
	}

	filterTags := ParseTags(args.Tags)
	var results []Memory
	for _, m := range doc.Memories {
		if matchesAnyTag(m, filterTags) {
			results = append(results, m)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].CreatedAt > results[j].CreatedAt
	})

	total := len(results)
	start := args.Offset
	if start > total {
		start = total
	}
	end := start + args.Limit
	if end > total {
		end = total
	}
	page := results[start:end]

	if len(page) == 0 {
		if args.Offset > 0 {
			return fmt.Sprintf("No more memories. Total: %d", total)
		}
		return fmt.Sprintf("No memories found with tags: %s", args.Tags)
	}

	hasMore := args.Offset+len(page) < total

	output := []string{fmt.Sprintf("# Memories (%d of %d)\n", len(page), total)}
	output = append(output, "| ID | Preview | Tags | Importance | Created |")
	output = append(output, "|-----|---------|------|------------|---------|")

	for _, m := range page {
		runes := []rune(m.Content)
		truncated := len(runes) > 50
		cell := m.Content
		if truncated {
			cell = string(runes[:50])
		}
		cell = strings.ReplaceAll(cell, "\n", " ")
		cell = strings.ReplaceAll(cell, "|", "/")
		if truncated {
			cell += "..."
		}
		tags := m.Tags
		if len(tags) > 3 {
			tags = tags[:3]
		}
		output = append(output, fmt.Sprintf("| %s | %s | %s | %d | %s |",
			m.ID, cell, tagDisplay(tags, "-"), m.Importance, m.CreatedAt[:10]))
	}

	output = append(output, "")
	if hasMore {
		output = append(output, fmt.Sprintf("*More results available. Use offset=%d to see next page.*",
			args.Offset+len(page)))
	}
	output = append(output, fmt.Sprintf("**Total:** %d | **Showing:** %d-%d",
		total, args.Offset+1, args.Offset+len(page)))

	return strings.Join(output, "\n")
}

// Forget deletes a memory by ID. Freed IDs are never reused.
func (s *Store) Forget(args ForgetArgs) (string, error) {
	if !args.Confirm {
		return "Set confirm=True to delete. This action cannot be undone.", nil
	}

	doc := s.load()
	for i, m := range doc.Memories {
		if m.ID != args.MemoryID {
			continue
		}
		doc.Memories = append(doc.Memories[:i], doc.Memories[i+1:]...)
		if err := s.save(doc); err != nil {
			return "", err
		}
		return fmt.Sprintf("Deleted: %s\nContent was: %s", args.MemoryID, preview(m.Content, 100)), nil
	}

	return fmt.Sprintf("Memory not found: %s. Use ea_list to see available memory IDs.", args.MemoryID), nil
}
