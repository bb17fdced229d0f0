package deps

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/containerd/errdefs"
	"github.com/tidwall/gjson"

	"github.com/cruciblehq/sharedfx/internal/jsondoc"
)

const published = `{
  "runtimeTarget": {"name": ".NETCoreApp,Version=v1.0/linux-x64"},
  "compilationOptions": {},
  "targets": {
    ".NETCoreApp,Version=v1.0": {
      "framework/1.0.0": {"dependencies": {"Microsoft.NETCore.App": "3.0.0"}},
      "Microsoft.NETCore.App/3.0.0": {"dependencies": {"System.Runtime": "4.1.0"}}
    },
    ".NETCoreApp,Version=v1.0/linux-x64": {
      "framework/1.0.0": {"dependencies": {"Microsoft.NETCore.App": "3.0.0"}},
      "Microsoft.NETCore.App/3.0.0": {"dependencies": {"System.Runtime": "4.1.0"}},
      "System.Runtime/4.1.0": {"runtime": {"lib/netstandard1.5/System.Runtime.dll": {}}}
    }
  },
  "libraries": {
    "framework/1.0.0": {"type": "project", "serviceable": false, "sha512": ""},
    "Microsoft.NETCore.App/3.0.0": {"type": "package", "serviceable": true, "sha512": "sha512-abc"},
    "System.Runtime/4.1.0": {"type": "package", "serviceable": true, "sha512": "sha512-def"}
  }
}`

func writeManifest(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName(name))
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRename(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "framework", published)

	dest, err := Rename(dir, "framework", "Microsoft.NETCore.App")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dest != filepath.Join(dir, "Microsoft.NETCore.App.deps.json") {
		t.Fatalf("dest = %q", dest)
	}
	if _, err := os.Stat(dest); err != nil {
		t.Fatalf("renamed manifest missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "framework.deps.json")); !os.IsNotExist(err) {
		t.Fatal("generic manifest still present")
	}
}

func TestRenameMissing(t *testing.T) {
	_, err := Rename(t.TempDir(), "framework", "Microsoft.NETCore.App")
	if !errors.Is(err, ErrManifestNotFound) || !errdefs.IsNotFound(err) {
		t.Fatalf("err = %v, want ErrManifestNotFound", err)
	}
}

func TestClearEntryPoint(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "Microsoft.NETCore.App", published)

	before, err := EntryPoint(path)
	if err != nil {
		t.Fatal(err)
	}
	if before != "framework" {
		t.Fatalf("EntryPoint before = %q, want framework", before)
	}

	removed, err := ClearEntryPoint(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed != "framework/1.0.0" {
		t.Fatalf("removed = %q, want framework/1.0.0", removed)
	}

	after, err := EntryPoint(path)
	if err != nil {
		t.Fatal(err)
	}
	if after != "" {
		t.Fatalf("EntryPoint after = %q, want empty", after)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !gjson.ValidBytes(data) {
		t.Fatalf("manifest invalid after edit:\n%s", data)
	}

	doc := gjson.ParseBytes(data)
	for _, target := range []string{".NETCoreApp,Version=v1.0", ".NETCoreApp,Version=v1.0/linux-x64"} {
		libs := doc.Get(jsondoc.Path("targets", target))
		if !libs.Exists() {
			t.Fatalf("target %s removed", target)
		}
		if libs.Get(jsondoc.Path("framework/1.0.0")).Exists() {
			t.Errorf("target %s still lists the entry point", target)
		}
		if !libs.Get(jsondoc.Path("Microsoft.NETCore.App/3.0.0")).Exists() {
			t.Errorf("target %s lost the framework library", target)
		}
	}

	version, err := LibraryVersion(path, "System.Runtime")
	if err != nil {
		t.Fatal(err)
	}
	if version != "4.1.0" {
		t.Errorf("System.Runtime version = %q, want 4.1.0", version)
	}
	if doc.Get("runtimeTarget.name").String() != ".NETCoreApp,Version=v1.0/linux-x64" {
		t.Error("unrelated sections changed")
	}
}

func TestClearEntryPointWithoutTargets(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "x", `{"libraries": {}}`)
	removed, err := ClearEntryPoint(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed != "" {
		t.Fatalf("removed = %q, want empty", removed)
	}
}

func TestClearEntryPointErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := ClearEntryPoint(filepath.Join(dir, "missing.deps.json")); !errdefs.IsNotFound(err) {
		t.Errorf("missing: err = %v", err)
	}

	path := writeManifest(t, dir, "broken", `{"targets": `)
	if _, err := ClearEntryPoint(path); !errors.Is(err, ErrManifest) {
		t.Errorf("malformed: err = %v", err)
	}
}

func TestRuntimes(t *testing.T) {
	path := writeManifest(t, t.TempDir(), "fx", `{
  "runtimes": {
    "linux-x64": ["linux", "unix-x64", "unix", "any", "base"],
    "ubuntu.16.04-x64": ["ubuntu.16.04", "ubuntu-x64", "linux-x64"]
  }
}`)

	graph, err := Runtimes(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(graph) != 2 {
		t.Fatalf("graph has %d rids, want 2", len(graph))
	}
	if got := graph["linux-x64"]; len(got) != 5 || got[0] != "linux" || got[4] != "base" {
		t.Fatalf("linux-x64 fallbacks = %v", got)
	}

	empty, err := Runtimes(writeManifest(t, t.TempDir(), "fx", published))
	if err != nil {
		t.Fatal(err)
	}
	if len(empty) != 0 {
		t.Fatalf("manifest without runtimes produced %v", empty)
	}
}

func TestCleanPublishOutput(t *testing.T) {
	dir := t.TempDir()
	for _, f := range []string{"framework", "framework.dll", "framework.pdb", "framework.runtimeconfig.json", "System.Runtime.dll"} {
		if err := os.WriteFile(filepath.Join(dir, f), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}

	if err := CleanPublishOutput(dir, "framework", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "System.Runtime.dll" {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name()
		}
		t.Fatalf("remaining = %v, want [System.Runtime.dll]", names)
	}
}
