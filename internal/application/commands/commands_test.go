package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"taxnav/internal/adapters/filesystem"
	"taxnav/internal/application"
	"taxnav/internal/domain"
)

func writeTaxon(t *testing.T, dir, level, common, info string) {
	t.Helper()

	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create %s: %v", dir, err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "level: %s\n", level)
	if common != "" {
		fmt.Fprintf(&b, "common: %s\n", common)
	}
	if info != "" {
		fmt.Fprintf(&b, "info: %s\n", info)
	}

	if err := os.WriteFile(filepath.Join(dir, filesystem.DescriptorFile), []byte(b.String()), 0644); err != nil {
		t.Fatalf("failed to write descriptor: %v", err)
	}
}

func buildTree(t *testing.T) string {
	t.Helper()

	root := filepath.Join(t.TempDir(), "Life")
	writeTaxon(t, root, "life", "", "All known living organisms.")
	writeTaxon(t, filepath.Join(root, "Eukarya"), "domain", "", "")
	writeTaxon(t, filepath.Join(root, "Eukarya", "Animalia"), "kingdom", "animals", "Multicellular heterotrophs.")
	writeTaxon(t, filepath.Join(root, "Bacteria"), "domain", "", "")
	return root
}

func TestSearchCommand(t *testing.T) {
	root := buildTree(t)
	store := filesystem.NewStore()

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"default lists direct children", nil, []string{"Bacteria", "Eukarya"}},
		{"distance two", []string{"-d2"}, []string{"Animalia"}},
		{"rank filter", []string{"-lkingdom"}, []string{"Animalia"}},
		{"name filter", []string{"bact"}, []string{"Bacteria"}},
		{"no matches", []string{"fungi"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes, err := NewSearchCommand(store, root, tt.args).Execute(context.Background())
			if err != nil {
				t.Fatalf("Execute failed: %v", err)
			}
			got := make([]string, 0, len(nodes))
			for _, n := range nodes {
				got = append(got, n.Name)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("results = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("results = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestSearchCommand_BadQuery(t *testing.T) {
	root := buildTree(t)

	_, err := NewSearchCommand(filesystem.NewStore(), root, []string{"-dx"}).Execute(context.Background())
	var pe *application.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v, want *application.ParseError", err)
	}
}

func TestPathCommand(t *testing.T) {
	root := buildTree(t)
	dir := filepath.Join(root, "Eukarya", "Animalia")

	chain, err := NewPathCommand(filesystem.NewStore(), dir).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	want := []string{"Life", "Eukarya", "Animalia"}
	if len(chain) != len(want) {
		t.Fatalf("chain length = %d, want %d", len(chain), len(want))
	}
	for i, n := range chain {
		if n.Name != want[i] {
			t.Errorf("chain[%d] = %s, want %s", i, n.Name, want[i])
		}
	}
}

func TestInfoCommand(t *testing.T) {
	root := buildTree(t)
	dir := filepath.Join(root, "Eukarya", "Animalia")

	node, err := NewInfoCommand(filesystem.NewStore(), dir).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if node.Rank != domain.RankKingdom {
		t.Errorf("Rank = %s, want kingdom", node.Rank)
	}
	if node.Description != "Multicellular heterotrophs." {
		t.Errorf("Description = %q", node.Description)
	}
	if node.Label() != "[K] Animalia (animals)" {
		t.Errorf("Label = %q", node.Label())
	}
}

func TestInfoCommand_MissingDescriptor(t *testing.T) {
	_, err := NewInfoCommand(filesystem.NewStore(), t.TempDir()).Execute(context.Background())
	if !errors.Is(err, domain.ErrNoDescriptor) {
		t.Fatalf("err = %v, want ErrNoDescriptor", err)
	}
}
