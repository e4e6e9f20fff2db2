package memory

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
)

// tickingClock hands out strictly increasing times so created_at ordering
// is deterministic in tests.
func tickingClock(start time.Time) func() time.Time {
	t := start
	return func() time.Time {
		t = t.Add(time.Minute)
		return t
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return &Store{
		dir: t.TempDir(),
		now: tickingClock(time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)),
		log: zap.NewNop(),
	}
}

func mustRemember(t *testing.T, s *Store, content, tags string, importance int) {
	t.Helper()
	args := RememberArgs{Content: content, Tags: tags, Importance: importance}
	if err := args.Validate(); err != nil {
		t.Fatalf("Validate(%q): %v", content, err)
	}
	if _, err := s.Remember(args); err != nil {
		t.Fatalf("Remember(%q): %v", content, err)
	}
}

func TestRememberAssignsSequentialIDs(t *testing.T) {
	s := newTestStore(t)

	got, err := s.Remember(RememberArgs{Content: "first", Importance: 50})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(got, "Remembered: mem_0001\n") {
		t.Fatalf("got %q", got)
	}

	mustRemember(t, s, "second", "", 50)
	doc := s.load()
	if len(doc.Memories) != 2 || doc.Memories[1].ID != "mem_0002" {
		t.Fatalf("memories = %+v", doc.Memories)
	}
	if doc.NextID != 3 {
		t.Fatalf("next_id = %d, want 3", doc.NextID)
	}
}

func TestForgottenIDsAreNeverReused(t *testing.T) {
	s := newTestStore(t)
	mustRemember(t, s, "first", "", 50)
	mustRemember(t, s, "second", "", 50)

	if _, err := s.Forget(ForgetArgs{MemoryID: "mem_0002", Confirm: true}); err != nil {
		t.Fatal(err)
	}

	mustRemember(t, s, "third", "", 50)
	doc := s.load()
	if doc.Memories[len(doc.Memories)-1].ID != "mem_0003" {
		t.Fatalf("id reused: %+v", doc.Memories)
	}
}

func TestRememberConfirmation(t *testing.T) {
	s := newTestStore(t)

	got, err := s.Remember(RememberArgs{Content: "endpoint is /api/v1/users", Tags: "API, Config", Importance: 80})
	if err != nil {
		t.Fatal(err)
	}
	want := "Remembered: mem_0001\nTags: api, config\nImportance: 80/100\nCreated: 2025-03-14"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRememberValidation(t *testing.T) {
	cases := []RememberArgs{
		{Content: "  "},
		{Content: strings.Repeat("a", 10001)},
		{Content: "x", Importance: 101},
		{Content: "x", Importance: -1},
	}
	for _, args := range cases {
		if err := args.Validate(); err == nil {
			t.Errorf("expected error for %+v", args)
		}
	}

	args := RememberArgs{Content: "x"}
	if err := args.Validate(); err != nil {
		t.Fatal(err)
	}
	if args.Importance != 50 {
		t.Fatalf("default importance = %d, want 50", args.Importance)
	}
}

func TestParseTags(t *testing.T) {
	got := ParseTags(" Python, API ,, bugfix ")
	want := []string{"python", "api", "bugfix"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
	if ParseTags("") != nil {
		t.Fatal("empty input should yield nil")
	}
}

func TestRecallSortsByImportanceThenOldestFirst(t *testing.T) {
	s := newTestStore(t)
	mustRemember(t, s, "alpha match", "", 90)
	mustRemember(t, s, "beta match", "", 50)
	mustRemember(t, s, "gamma match", "", 90)

	got := s.Recall(RecallArgs{Query: "match", Limit: 10})

	first := strings.Index(got, "[mem_0001]")
	third := strings.Index(got, "[mem_0003]")
	second := strings.Index(got, "[mem_0002]")
	if first == -1 || second == -1 || third == -1 {
		t.Fatalf("missing results:\n%s", got)
	}
	// Equal importance keeps creation order; lower importance comes last.
	if !(first < third && third < second) {
		t.Fatalf("order wrong: mem_0001=%d mem_0003=%d mem_0002=%d\n%s", first, third, second, got)
	}
	if !strings.Contains(got, "# Found 3 memories (showing 3)") {
		t.Errorf("header wrong:\n%s", got)
	}
}

func TestRecallCaseInsensitiveSubstring(t *testing.T) {
	s := newTestStore(t)
	mustRemember(t, s, "The Database URL is postgres://localhost", "", 50)

	got := s.Recall(RecallArgs{Query: "database url", Limit: 10})
	if !strings.Contains(got, "mem_0001") {
		t.Fatalf("case-insensitive match failed:\n%s", got)
	}
}

func TestRecallTagFilter(t *testing.T) {
	s := newTestStore(t)
	mustRemember(t, s, "tagged match", "python,api", 50)
	mustRemember(t, s, "untagged match", "", 50)

	got := s.Recall(RecallArgs{Query: "match", Tags: "API", Limit: 10})
	if !strings.Contains(got, "tagged match") {
		t.Errorf("missing tagged memory:\n%s", got)
	}
	if strings.Contains(got, "untagged match") {
		t.Errorf("tag filter leaked:\n%s", got)
	}
}

func TestRecallLimitAndOverflowNote(t *testing.T) {
	s := newTestStore(t)
	for i := 0; i < 4; i++ {
		mustRemember(t, s, fmt.Sprintf("match number %d", i), "", 50)
	}

	got := s.Recall(RecallArgs{Query: "match", Limit: 3})
	if !strings.Contains(got, "# Found 4 memories (showing 3)") {
		t.Errorf("header wrong:\n%s", got)
	}
	if !strings.Contains(got, "*1 more results available. Increase limit to see more.*") {
		t.Errorf("overflow note missing:\n%s", got)
	}
}

func TestRecallNoMatches(t *testing.T) {
	s := newTestStore(t)

	got := s.Recall(RecallArgs{Query: "anything", Limit: 10})
	if got != "No memories stored yet. Use ea_remember to store your first memory." {
		t.Errorf("got %q", got)
	}

	mustRemember(t, s, "something else", "", 50)
	got = s.Recall(RecallArgs{Query: "kubernetes", Limit: 10})
	if got != "No memories found matching: kubernetes" {
		t.Errorf("got %q", got)
	}
}

func TestListPagination(t *testing.T) {
	s := newTestStore(t)
	for i := 1; i <= 5; i++ {
		mustRemember(t, s, fmt.Sprintf("memory number %d", i), "", 50)
	}

	got := s.List(ListArgs{Limit: 2, Offset: 2})
	if !strings.Contains(got, "# Memories (2 of 5)") {
		t.Errorf("header wrong:\n%s", got)
	}
	// Newest first: offset 2 skips mem_0005 and mem_0004.
	if !strings.Contains(got, "mem_0003") || !strings.Contains(got, "mem_0002") {
		t.Errorf("wrong page:\n%s", got)
	}
	if strings.Contains(got, "mem_0005") || strings.Contains(got, "mem_0001 ") {
		t.Errorf("page leaked rows:\n%s", got)
	}
	if !strings.Contains(got, "*More results available. Use offset=4 to see next page.*") {
		t.Errorf("pagination note missing:\n%s", got)
	}
	if !strings.Contains(got, "**Total:** 5 | **Showing:** 3-4") {
		t.Errorf("footer wrong:\n%s", got)
	}
}

func TestListOffsetPastEnd(t *testing.T) {
	s := newTestStore(t)
	mustRemember(t, s, "only one", "", 50)

	got := s.List(ListArgs{Limit: 20, Offset: 10})
	if got != "No more memories. Total: 1" {
		t.Errorf("got %q", got)
	}
}

func TestListTagFilterNoMatch(t *testing.T) {
	s := newTestStore(t)
	mustRemember(t, s, "tagged", "python", 50)

	got := s.List(ListArgs{Tags: "golang", Limit: 20})
	if got != "No memories found with tags: golang" {
		t.Errorf("got %q", got)
	}
}

func TestRememberCountsCharactersNotBytes(t *testing.T) {
	// 9000 characters, 27000 bytes: inside the 10000-character limit.
	args := RememberArgs{Content: strings.Repeat("日", 9000)}
	if err := args.Validate(); err != nil {
		t.Fatalf("multi-byte content rejected: %v", err)
	}

	over := RememberArgs{Content: strings.Repeat("日", 10001)}
	if err := over.Validate(); err == nil {
		t.Fatal("expected error above the character limit")
	}
}

func TestListTruncatesCellByRune(t *testing.T) {
	s := newTestStore(t)
	mustRemember(t, s, strings.Repeat("日", 60), "", 50)

	got := s.List(ListArgs{Limit: 20})
	if !utf8.ValidString(got) {
		t.Fatalf("table contains invalid UTF-8:\n%s", got)
	}
	if !strings.Contains(got, strings.Repeat("日", 50)+"...") {
		t.Errorf("cell not truncated at 50 characters:\n%s", got)
	}
	if strings.Contains(got, strings.Repeat("日", 51)) {
		t.Errorf("cell longer than 50 characters:\n%s", got)
	}
}

func TestForgetPreviewIsRuneSafe(t *testing.T) {
	s := newTestStore(t)
	mustRemember(t, s, strings.Repeat("日", 120), "", 50)

	got, err := s.Forget(ForgetArgs{MemoryID: "mem_0001", Confirm: true})
	if err != nil {
		t.Fatal(err)
	}
	if !utf8.ValidString(got) {
		t.Fatalf("deletion reply contains invalid UTF-8: %q", got)
	}
	if !strings.Contains(got, strings.Repeat("日", 100)+"...") {
		t.Errorf("preview not truncated at 100 characters: %q", got)
	}
}

func TestListEscapesTableCells(t *testing.T) {
	s := newTestStore(t)
	mustRemember(t, s, "line one\nhas | pipe", "", 50)

	got := s.List(ListArgs{Limit: 20})
	if !strings.Contains(got, "| mem_0001 | line one has / pipe |") {
		t.Errorf("cell not sanitized:\n%s", got)
	}
}

func TestForgetRequiresConfirmation(t *testing.T) {
	s := newTestStore(t)
	mustRemember(t, s, "keep me", "", 50)

	got, err := s.Forget(ForgetArgs{MemoryID: "mem_0001"})
	if err != nil {
		t.Fatal(err)
	}
	if got != "Set confirm=True to delete. This action cannot be undone." {
		t.Errorf("got %q", got)
	}
	if len(s.load().Memories) != 1 {
		t.Fatal("memory deleted without confirmation")
	}
}

func TestForgetRoundTrip(t *testing.T) {
	s := newTestStore(t)
	mustRemember(t, s, "delete me", "", 50)

	got, err := s.Forget(ForgetArgs{MemoryID: "mem_0001", Confirm: true})
	if err != nil {
		t.Fatal(err)
	}
	if got != "Deleted: mem_0001\nContent was: delete me" {
		t.Errorf("got %q", got)
	}
	if len(s.load().Memories) != 0 {
		t.Fatal("memory not deleted")
	}
}

func TestForgetUnknownID(t *testing.T) {
	s := newTestStore(t)

	got, err := s.Forget(ForgetArgs{MemoryID: "mem_9999", Confirm: true})
	if err != nil {
		t.Fatal(err)
	}
	if got != "Memory not found: mem_9999. Use ea_list to see available memory IDs." {
		t.Errorf("got %q", got)
	}
}

func TestCorruptStoreTreatedAsEmpty(t *testing.T) {
	s := newTestStore(t)
	if err := os.WriteFile(filepath.Join(s.Dir(), storeFile), []byte("{broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	got := s.List(ListArgs{Limit: 20})
	if got != "No memories stored yet. Use ea_remember to store your first memory." {
		t.Errorf("got %q", got)
	}

	// Writing over the corrupt file starts numbering from scratch.
	confirmation, err := s.Remember(RememberArgs{Content: "fresh", Importance: 50})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(confirmation, "Remembered: mem_0001\n") {
		t.Fatalf("got %q", confirmation)
	}
}
