package memory

import "strings"

const Version = "1.0.0"

// Memory is a single stored note with tags and a priority.
type Memory struct {
	ID         string   `json:"id"`
	Content    string   `json:"content"`
	Tags       []string `json:"tags"`
	Importance int      `json:"importance"`
	CreatedAt  string   `json:"created_at"`
}

// document is the on-disk shape of memories.json.
type document struct {
	Memories []Memory `json:"memories"`
	NextID   int      `json:"next_id"`
}

// ParseTags splits a comma-separated tag string into a lowercase list,
// dropping empty segments and preserving order.
func ParseTags(tags string) []string {
	if tags == "" {
		return nil
	}
	var out []string
	for _, t := range strings.Split(tags, ",") {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// matchesAnyTag reports whether the memory carries at least one of the
// filter tags. An empty filter matches everything.
func matchesAnyTag(m Memory, filter []string) bool {
	if len(filter) == 0 {
		return true
	}
	for _, want := range filter {
		for _, have := range m.Tags {
			if have == want {
				return true
			}
		}
	}
	return false
}

// preview truncates by rune so multi-byte content is never cut
// mid-character.
func preview(content string, max int) string {
	runes := []rune(content)
	if len(runes) <= max {
		return content
	}
	return string(runes[:max]) + "..."
}

func tagDisplay(tags []string, fallback string) string {
	if len(tags) == 0 {
		return fallback
	}
	return strings.Join(tags, ", ")
}
