package journal

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"ea-mcp-go/internal/storage"
)

// LogArgs is the input for logging a journal entry.
type LogArgs struct {
	Content   string `json:"content" jsonschema:"required,description=What you want to log"`
	EntryType string `json:"entry_type" jsonschema:"default=note,enum=work,enum=decision,enum=blocker,enum=note,enum=win,enum=learning,description=Type of entry"`
	Project   string `json:"project" jsonschema:"description=Optional project name for context"`
}

// Validate normalizes and checks the input before any storage access.
// Length limits count characters, not bytes.
func (a *LogArgs) Validate() error {
	a.Content = strings.TrimSpace(a.Content)
	a.Project = strings.TrimSpace(a.Project)
	if a.EntryType == "" {
		a.EntryType = "note"
	}
	if a.Content == "" || utf8.RuneCountInString(a.Content) > 5000 {
		return fmt.Errorf("content must be between 1 and 5000 characters")
	}
	if !ValidType(a.EntryType) {
		return fmt.Errorf("entry_type must be one of: %s", strings.Join(EntryTypes, ", "))
	}
	if utf8.RuneCountInString(a.Project) > 100 {
		return fmt.Errorf("project must be at most 100 characters")
	}
	return nil
}

// TodayArgs is the input for viewing today's entries.
type TodayArgs struct {
	EntryType string `json:"entry_type" jsonschema:"enum=work,enum=decision,enum=blocker,enum=note,enum=win,enum=learning,description=Filter by type (optional)"`
}

func (a *TodayArgs) Validate() error {
	a.EntryType = strings.TrimSpace(a.EntryType)
	if a.EntryType != "" && !ValidType(a.EntryType) {
		return fmt.Errorf("entry_type must be one of: %s", strings.Join(EntryTypes, ", "))
	}
	return nil
}

// ReviewArgs is the input for reviewing past entries. Days is a pointer
// so an explicit 0 is rejected rather than read as "not set".
type ReviewArgs struct {
	Date      string `json:"date" jsonschema:"description=Specific date in YYYY-MM-DD format (default: today)"`
	Days      *int   `json:"days" jsonschema:"description=Number of days to look back (overrides date)"`
	EntryType string `json:"entry_type" jsonschema:"enum=work,enum=decision,enum=blocker,enum=note,enum=win,enum=learning,description=Filter by type (optional)"`
}

func (a *ReviewArgs) Validate() error {
	a.Date = strings.TrimSpace(a.Date)
	a.EntryType = strings.TrimSpace(a.EntryType)
	if a.Days != nil && (*a.Days < 1 || *a.Days > 365) {
		return fmt.Errorf("days must be between 1 and 365")
	}
	if a.Date != "" {
		if _, err := time.Parse("2006-01-02", a.Date); err != nil {
			return fmt.Errorf("Date must be in YYYY-MM-DD format")
		}
	}
	if a.EntryType != "" && !ValidType(a.EntryType) {
		return fmt.Errorf("entry_type must be one of: %s", strings.Join(EntryTypes, ", "))
	}
	return nil
}

// SummaryArgs is the input for generating a work summary. Days defaults
// to 7 when absent; an explicit 0 is out of range.
type SummaryArgs struct {
	Days *int `json:"days" jsonschema:"default=7,description=Number of days to summarize"`
}

func (a *SummaryArgs) Validate() error {
	if a.Days == nil {
		days := 7
		a.Days = &days
	}
	if *a.Days < 1 || *a.Days > 365 {
		return fmt.Errorf("days must be between 1 and 365")
	}
	return nil
}

// Log appends a new entry to today's file and returns a confirmation.
func (s *Store) Log(args LogArgs) (string, error) {
	now := s.Now()

	entry := Entry{
		ID:        entryID(now.Format("150405"), args.Content),
		Content:   args.Content,
		Type:      args.EntryType,
		Project:   args.Project,
		Timestamp: storage.Timestamp(now),
	}

	entries := s.LoadDay(now)
	entries = append(entries, entry)
	if err := s.SaveDay(now, entries); err != nil {
		return "", err
	}

	projectLine := ""
	if args.Project != "" {
		projectLine = fmt.Sprintf("Project: %s\n", args.Project)
	}
	return fmt.Sprintf("Logged %s at %s\n%sEntry: %s",
		strings.ToUpper(args.EntryType), now.Format("15:04"), projectLine,
		preview(args.Content, 100, true)), nil
}

// Today renders today's entries grouped by type in canonical order.
func (s *Store) Today(args TodayArgs) string {
	now := s.Now()
	entries := s.LoadDay(now)

	if len(entries) == 0 {
		return fmt.Sprintf("No journal entries for today (%s). Use ea_log to add your first entry!",
			now.Format("2006-01-02"))
	}

	if args.EntryType != "" {
		entries = filterByType(entries, args.EntryType)
		if len(entries) == 0 {
			return fmt.Sprintf("No %s entries for today.", args.EntryType)
		}
	}

	byType := map[string][]Entry{}
	for _, e := range entries {
		byType[e.Type] = append(byType[e.Type], e)
	}

	lines := []string{fmt.Sprintf("# Journal - %s\n", now.Format("Monday, January 02, 2006"))}

	// Summary line: alphabetical by type name, unlike the sections below.
	names := make([]string, 0, len(byType))
	for t := range byType {
		names = append(names, t)
	}
	sort.Strings(names)
	var counts []string
	for _, t := range names {
		n := len(byType[t])
		plural := ""
		if n > 1 {
			plural = "s"
		}
		counts = append(counts, fmt.Sprintf("%d %s%s", n, t, plural))
	}
	lines = append(lines, fmt.Sprintf("**Summary:** %s", strings.Join(counts, ", ")))
	lines = append(lines, "\n---\n")

	for _, t := range EntryTypes {
		group, ok := byType[t]
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("## %ss\n", titleWord(t)))
		for _, e := range group {
			lines = append(lines, formatEntry(e, false))
		}
	}

	return strings.Join(lines, "\n")
}

type datedEntry struct {
	Entry
	date string
}

// Review renders entries from a date window, newest first, grouped under
// date headers. A days window takes precedence over a specific date.
func (s *Store) Review(args ReviewArgs) string {
	now := s.Now()
	days := 0
	if args.Days != nil {
		days = *args.Days
	}

	var dates []time.Time
	switch {
	case days > 0:
		for i := 0; i < days; i++ {
			dates = append(dates, now.AddDate(0, 0, -i))
		}
	case args.Date != "":
		target, _ := time.Parse("2006-01-02", args.Date)
		dates = []time.Time{target}
	default:
		dates = []time.Time{now}
	}

	var all []datedEntry
	for _, d := range dates {
		day := d.UTC().Format("2006-01-02")
		for _, e := range s.LoadDay(d) {
			all = append(all, datedEntry{Entry: e, date: day})
		}
	}

	if len(all) == 0 {
		if days > 0 {
			return fmt.Sprintf("No journal entries in the last %d days.", days)
		}
		return fmt.Sprintf("No journal entries for %s.", dates[0].UTC().Format("2006-01-02"))
	}

	if args.EntryType != "" {
		var kept []datedEntry
		for _, e := range all {
			if e.Type == args.EntryType {
				kept = append(kept, e)
			}
		}
		if len(kept) == 0 {
			return fmt.Sprintf("No %s entries found.", args.EntryType)
		}
		all = kept
	}

	// Fixed-width UTC timestamps sort chronologically as strings.
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Timestamp > all[j].Timestamp
	})

	var lines []string
	if days > 0 {
		lines = append(lines, fmt.Sprintf("# Journal - Last %d Days\n", days))
	} else {
		lines = append(lines, fmt.Sprintf("# Journal - %s\n", dates[0].UTC().Format("2006-01-02")))
	}
	lines = append(lines, fmt.Sprintf("**Total entries:** %d\n", len(all)))
	lines = append(lines, "---\n")

	currentDate := ""
	for _, e := range all {
		if e.date != currentDate {
			currentDate = e.date
			lines = append(lines, fmt.Sprintf("\n## %s\n", e.date))
		}
		lines = append(lines, formatEntry(e.Entry, false))
	}

	return strings.Join(lines, "\n")
}

// Summary renders an aggregate report over the trailing days window.
func (s *Store) Summary(args SummaryArgs) string {
	now := s.Now()
	days := 7
	if args.Days != nil {
		days = *args.Days
	}

	var all []Entry
	activeDays := 0
	for i := 0; i < days; i++ {
		entries := s.LoadDay(now.AddDate(0, 0, -i))
		if len(entries) > 0 {
			activeDays++
			all = append(all, entries...)
		}
	}

	if len(all) == 0 {
		return fmt.Sprintf("No journal entries in the last %d days. Start journaling with ea_log!", days)
	}

	byType := map[string]int{}
	byProject := map[string]int{}
	for _, e := range all {
		byType[e.Type]++
		project := e.Project
		if project == "" {
			project = "General"
		}
		byProject[project]++
	}

	startDate := now.AddDate(0, 0, -(days - 1)).Format("2006-01-02")
	endDate := now.Format("2006-01-02")

	lines := []string{fmt.Sprintf("# Work Summary - Last %d Days\n", days)}
	lines = append(lines, fmt.Sprintf("**Period:** %s to %s", startDate, endDate))
	lines = append(lines, fmt.Sprintf("**Active days:** %d of %d", activeDays, days))
	lines = append(lines, fmt.Sprintf("**Total entries:** %d", len(all)))
	lines = append(lines, "")

	lines = append(lines, "## Entry Types\n")
	for _, t := range EntryTypes {
		if n, ok := byType[t]; ok {
			lines = append(lines, fmt.Sprintf("- **%ss:** %d", titleWord(t), n))
		}
	}

	_, onlyGeneral := byProject["General"]
	if len(byProject) > 1 || !onlyGeneral {
		lines = append(lines, "\n## Projects\n")
		type projectCount struct {
			name  string
			count int
		}
		var projects []projectCount
		for name, count := range byProject {
			projects = append(projects, projectCount{name, count})
		}
		sort.Slice(projects, func(i, j int) bool {
			if projects[i].count != projects[j].count {
				return projects[i].count > projects[j].count
			}
			return projects[i].name < projects[j].name
		})
		for _, p := range projects {
			lines = append(lines, fmt.Sprintf("- **%s:** %d entries", p.name, p.count))
		}
	}

	for _, highlight := range []string{"win", "blocker", "learning"} {
		matched := filterByType(all, highlight)
		if len(matched) == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("\n## %ss\n", titleWord(highlight)))
		for i, e := range matched {
			if i == 5 {
				break
			}
			lines = append(lines, fmt.Sprintf("- %s", preview(e.Content, 100, false)))
		}
	}

	return strings.Join(lines, "\n")
}

func filterByType(entries []Entry, t string) []Entry {
	var kept []Entry
	for _, e := range entries {
		if e.Type == t {
			kept = append(kept, e)
		}
	}
	return kept
}
