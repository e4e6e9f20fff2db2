// Package journal implements the ea-journal server: an append-only daily
// work journal stored as one JSON array per UTC calendar day.
package journal

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// Version of the ea-journal server.
const Version = "1.0.0"

// Entry is a single journal record, owned by the daily file matching the
// UTC date of its timestamp. Entries are never mutated after being logged.
type Entry struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	Type      string `json:"type"`
	Project   string `json:"project,omitempty"`
	Timestamp string `json:"timestamp"`
}

// EntryTypes is the canonical display order for entry types. Grouped views
// always follow this order, never insertion or alphabetical order.
var EntryTypes = []string{"work", "decision", "blocker", "note", "win", "learning"}

// ValidType reports whether t is one of the known entry types.
func ValidType(t string) bool {
	for _, known := range EntryTypes {
		if t == known {
			return true
		}
	}
	return false
}

// entryID builds the display-only id for a new entry: the time of day plus
// a 4-digit suffix derived from the content. The suffix is decorative and
// may collide; no operation looks entries up by id.
func entryID(clock, content string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(content))
	return fmt.Sprintf("entry_%s_%04d", clock, h.Sum32()%10000)
}

// titleWord capitalizes a lowercase type name for section headings.
func titleWord(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// preview returns the first max characters of content. When ellipsis is
// set and content was truncated, "..." is appended. Truncation is by rune
// so multi-byte content is never cut mid-character.
func preview(content string, max int, ellipsis bool) string {
	runes := []rune(content)
	if len(runes) <= max {
		return content
	}
	if ellipsis {
		return string(runes[:max]) + "..."
	}
	return string(runes[:max])
}

// formatEntry renders one entry as markdown. The date prefix is only shown
// when the surrounding view spans multiple days without date headers.
func formatEntry(e Entry, showDate bool) string {
	timePart := ""
	if len(e.Timestamp) >= 16 {
		timePart = e.Timestamp[11:16]
	}
	datePrefix := ""
	if showDate && len(e.Timestamp) >= 10 {
		datePrefix = e.Timestamp[:10] + " "
	}
	projectPart := ""
	if e.Project != "" {
		projectPart = fmt.Sprintf(" [%s]", e.Project)
	}
	return fmt.Sprintf("**[%s%s] %s%s**\n%s\n", datePrefix, timePart, strings.ToUpper(e.Type), projectPart, e.Content)
}
