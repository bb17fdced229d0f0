package publish

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestStamp(t *testing.T) {
	dir := t.TempDir()
	if err := Stamp(dir, "abc123", "3.0.0"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, VersionFile))
	if err != nil {
		t.Fatal(err)
	}
	sep := lineSeparator()
	if want := "abc123" + sep + "3.0.0" + sep; string(data) != want {
		t.Fatalf("content = %q, want %q", data, want)
	}

	commit, version, err := ReadStamp(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if commit != "abc123" || version != "3.0.0" {
		t.Errorf("ReadStamp = %q, %q", commit, version)
	}
}

func TestStampOverwrites(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, VersionFile), []byte("a much longer stale stamp\nwith lines\nand more\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := Stamp(dir, "c", "1.0.0"); err != nil {
		t.Fatal(err)
	}
	commit, version, err := ReadStamp(dir)
	if err != nil || commit != "c" || version != "1.0.0" {
		t.Fatalf("ReadStamp = %q, %q, %v", commit, version, err)
	}
}

func TestReadStampMalformed(t *testing.T) {
	sep := lineSeparator()
	tests := []struct {
		name    string
		content string
	}{
		{"missing trailing separator", "abc123" + sep + "3.0.0"},
		{"extra line", "abc123" + sep + "3.0.0" + sep + "extra" + sep},
		{"missing version", "abc123" + sep + sep},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if err := os.WriteFile(filepath.Join(dir, VersionFile), []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			if _, _, err := ReadStamp(dir); !errors.Is(err, errMalformedStamp) {
				t.Fatalf("err = %v, want errMalformedStamp", err)
			}
		})
	}
}

func TestReadStampMissing(t *testing.T) {
	if _, _, err := ReadStamp(t.TempDir()); !errors.Is(err, ErrFileSystem) {
		t.Fatalf("err = %v, want ErrFileSystem", err)
	}
}
