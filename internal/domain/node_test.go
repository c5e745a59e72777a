package domain

import (
	"errors"
	"testing"
)

func TestNodeLabel(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{
			name: "with common name",
			node: Node{Name: "Animalia", Rank: RankKingdom, CommonName: "animals"},
			want: "[K] Animalia (animals)",
		},
		{
			name: "without common name",
			node: Node{Name: "Chordata", Rank: RankPhylum},
			want: "[P] Chordata",
		},
		{
			name: "sub-rank code",
			node: Node{Name: "Vertebrata", Rank: RankSubphylum},
			want: "[P-] Vertebrata",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.Label(); got != tt.want {
				t.Errorf("Label() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDescriptorErrorUnwrap(t *testing.T) {
	err := &DescriptorError{Path: "/some/dir", Err: ErrNoDescriptor}

	if !errors.Is(err, ErrNoDescriptor) {
		t.Error("DescriptorError should unwrap to ErrNoDescriptor")
	}

	var de *DescriptorError
	if !errors.As(error(err), &de) {
		t.Fatal("errors.As should match *DescriptorError")
	}
	if de.Path != "/some/dir" {
		t.Errorf("Path = %q, want %q", de.Path, "/some/dir")
	}
}
