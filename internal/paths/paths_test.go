package paths

import (
	"path/filepath"
	"testing"

	"github.com/cruciblehq/sharedfx/internal"
)

func TestLayout(t *testing.T) {
	cache := Cache()
	if filepath.Base(cache) != internal.Name {
		t.Fatalf("Cache() = %q, want a %q directory", cache, internal.Name)
	}

	for name, p := range map[string]string{"Intermediate": Intermediate(), "Tools": Tools()} {
		if filepath.Dir(p) != cache {
			t.Errorf("%s() = %q, want a child of %q", name, p, cache)
		}
	}

	if Intermediate() == Tools() {
		t.Fatal("Intermediate and Tools must not share a directory")
	}
}
