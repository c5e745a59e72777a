package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"taxnav/internal/adapters/filesystem"
	"taxnav/internal/application"
)

func writeTaxon(t *testing.T, dir, level string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create %s: %v", dir, err)
	}
	content := fmt.Sprintf("level: %s\n", level)
	if err := os.WriteFile(filepath.Join(dir, filesystem.DescriptorFile), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write descriptor: %v", err)
	}
}

func newTestApp(t *testing.T, history []string) *App {
	t.Helper()

	root := filepath.Join(t.TempDir(), "Life")
	writeTaxon(t, root, "life")
	writeTaxon(t, filepath.Join(root, "Eukarya"), "domain")
	writeTaxon(t, filepath.Join(root, "Bacteria"), "domain")

	nav, err := application.NewNavigator(filesystem.NewStore(), root)
	if err != nil {
		t.Fatalf("NewNavigator failed: %v", err)
	}
	return NewApp(nav, history)
}

func TestHistoryRecall(t *testing.T) {
	a := newTestApp(t, []string{"ls", "goto euk"})

	a.input.SetValue("pat")
	a.recallPrev()
	if got := a.input.Value(); got != "goto euk" {
		t.Errorf("after one recall, input = %q, want %q", got, "goto euk")
	}
	a.recallPrev()
	if got := a.input.Value(); got != "ls" {
		t.Errorf("after two recalls, input = %q, want ls", got)
	}

	// Recalling past the oldest entry stays there.
	a.recallPrev()
	if got := a.input.Value(); got != "ls" {
		t.Errorf("recall past the oldest entry changed input to %q", got)
	}

	// Walking forward again restores the unfinished draft.
	a.recallNext()
	a.recallNext()
	if got := a.input.Value(); got != "pat" {
		t.Errorf("after returning, input = %q, want the draft", got)
	}
	a.recallNext()
	if got := a.input.Value(); got != "pat" {
		t.Errorf("recall past the draft changed input to %q", got)
	}
}

func TestSuggestionsIncludeCandidatesAndCommands(t *testing.T) {
	a := newTestApp(t, nil)

	got := make(map[string]bool)
	for _, s := range a.input.AvailableSuggestions() {
		got[s] = true
	}

	for _, want := range []string{"Bacteria", "Eukarya", "ls", "goto", "help"} {
		if !got[want] {
			t.Errorf("suggestions missing %q", want)
		}
	}
}

func TestExecuteInfo_NoDescriptionPrintsNotice(t *testing.T) {
	a := newTestApp(t, nil)

	cmds := a.execute("?")
	if len(cmds) != 1 {
		t.Fatalf("execute(?) returned %d commands, want 1", len(cmds))
	}
	if got := fmt.Sprint(cmds[0]()); !strings.Contains(got, "No info for Life") {
		t.Errorf("output = %q, want the no-info notice", got)
	}
	if a.nav.Node().Name != "Life" {
		t.Errorf("position moved to %s", a.nav.Node().Name)
	}
}

func TestExecuteInfo_PrintsDescription(t *testing.T) {
	root := filepath.Join(t.TempDir(), "Life")
	if err := os.MkdirAll(root, 0755); err != nil {
		t.Fatalf("failed to create %s: %v", root, err)
	}
	content := "level: life\ninfo: All known living organisms.\n"
	if err := os.WriteFile(filepath.Join(root, filesystem.DescriptorFile), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write descriptor: %v", err)
	}

	nav, err := application.NewNavigator(filesystem.NewStore(), root)
	if err != nil {
		t.Fatalf("NewNavigator failed: %v", err)
	}
	a := NewApp(nav, nil)

	cmds := a.execute("?")
	if len(cmds) != 1 {
		t.Fatalf("execute(?) returned %d commands, want 1", len(cmds))
	}
	if got := fmt.Sprint(cmds[0]()); !strings.Contains(got, "All known living organisms.") {
		t.Errorf("output = %q, want the description", got)
	}
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"no unique entry found", "No unique entry found"},
		{"Already upper", "Already upper"},
		{"écran not found", "Écran not found"},
	}
	for _, tt := range tests {
		if got := capitalize(tt.in); got != tt.want {
			t.Errorf("capitalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWrapInfoIndentsEveryLine(t *testing.T) {
	a := newTestApp(t, nil)
	a.width = 40

	out := a.wrapInfo(strings.Repeat("word ", 20))
	for i, line := range strings.Split(out, "\n") {
		if !strings.HasPrefix(line, "  ") {
			t.Errorf("line %d is not indented: %q", i, line)
		}
		if len(line) > 40 {
			t.Errorf("line %d exceeds the wrap width: %q", i, line)
		}
	}
}
