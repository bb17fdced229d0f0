package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/containerd/errdefs"

	"github.com/cruciblehq/sharedfx/internal"
	"github.com/cruciblehq/sharedfx/internal/command"
	"github.com/cruciblehq/sharedfx/internal/config"
	"github.com/cruciblehq/sharedfx/internal/platform"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"plain", errors.New("boom"), ExitFailure},
		{"invalid argument", fmt.Errorf("wrapped: %w", config.ErrInvalidConfig), ExitInvalidArgument},
		{"not found", fmt.Errorf("%w: x", errdefs.ErrNotFound), ExitNotFound},
		{"unmapped family", platform.ErrUnmappedFamily, ExitInvalidArgument},
		{"unsupported platform", platform.ErrUnsupportedPlatform, ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		debug, quiet bool
		want         slog.Level
	}{
		{false, false, slog.LevelInfo},
		{true, false, slog.LevelDebug},
		{false, true, slog.LevelWarn},
		{true, true, slog.LevelDebug},
	}

	for _, tt := range tests {
		if got := Level(tt.debug, tt.quiet); got != tt.want {
			t.Errorf("Level(%v, %v) = %v, want %v", tt.debug, tt.quiet, got, tt.want)
		}
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.LevelWarn, &buf)

	logger.Info("hidden")
	logger.Warn("shown", "step", "publish")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record written at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "publish") {
		t.Errorf("warn record missing: %q", out)
	}
}

func TestPublishConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), config.DefaultFile)
	content := `
version        = "2.0.0"
package_source = "/packages"
output         = "from-file"

[host]
locked = "/host/locked"
latest = "/host/latest"

[tools]
crossgen = "/tools/crossgen"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := PublishCmd{FrameworkVersion: "3.0.0", Platform: "linux/amd64", Commit: "abc123"}
	cfg, err := cmd.config(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Version != "3.0.0" {
		t.Errorf("version = %q, flag must override the file", cfg.Version)
	}
	if cfg.Output != "from-file" {
		t.Errorf("output = %q, file value must survive an empty flag", cfg.Output)
	}
	if cfg.Platform != "linux/amd64" || cfg.Commit != "abc123" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Tools.Output == "" || cfg.Template == "" {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestPublishConfigInvalid(t *testing.T) {
	cmd := PublishCmd{FrameworkVersion: "3.0.0"}
	_, err := cmd.config(filepath.Join(t.TempDir(), "missing.toml"))
	if ExitCode(err) != ExitNotFound {
		t.Fatalf("err = %v, want not found", err)
	}

	path := filepath.Join(t.TempDir(), config.DefaultFile)
	if err := os.WriteFile(path, []byte(`version = "3.0.0"`), 0644); err != nil {
		t.Fatal(err)
	}
	_, err = cmd.config(path)
	if ExitCode(err) != ExitInvalidArgument {
		t.Fatalf("err = %v, want invalid argument", err)
	}
}

type gitRunner struct {
	cmd    command.Cmd
	result command.Result
}

func (r *gitRunner) Run(_ context.Context, cmd command.Cmd) (*command.Result, error) {
	r.cmd = cmd
	return &r.result, nil
}

func TestHeadCommit(t *testing.T) {
	r := &gitRunner{result: command.Result{Stdout: "abc123\n"}}
	commit, err := headCommit(context.Background(), r, "/repo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if commit != "abc123" {
		t.Errorf("commit = %q, want abc123", commit)
	}
	if r.cmd.Dir != "/repo" || r.cmd.Path != "git" {
		t.Errorf("cmd = %+v", r.cmd)
	}

	r = &gitRunner{result: command.Result{ExitCode: 128, Stderr: "fatal: not a git repository"}}
	if _, err := headCommit(context.Background(), r, "/repo"); !errors.Is(err, command.ErrCommandFailed) {
		t.Fatalf("err = %v, want ErrCommandFailed", err)
	}
}

func TestResolveHost(t *testing.T) {
	h, err := resolveHost("windows/386")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rid, _ := h.RID(); rid != "win7-x86" {
		t.Errorf("rid = %q, want win7-x86", rid)
	}

	if _, err := resolveHost("linux"); !errors.Is(err, platform.ErrInvalidSpecifier) {
		t.Fatalf("err = %v, want ErrInvalidSpecifier", err)
	}
}

func TestParsePublishFlags(t *testing.T) {
	var grammar struct {
		Quiet   bool       `short:"q" xor:"level"`
		Debug   bool       `short:"d" xor:"level"`
		Publish PublishCmd `cmd:""`
	}

	parser, err := newParser(&grammar)
	if err != nil {
		t.Fatal(err)
	}

	kctx, err := parser.Parse([]string{"-q", "publish", "--framework-version", "3.0.0", "--platform", "linux/amd64", "-o", "out"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kctx.Command() != "publish" {
		t.Errorf("command = %q, want publish", kctx.Command())
	}
	if !grammar.Quiet || grammar.Publish.FrameworkVersion != "3.0.0" || grammar.Publish.Platform != "linux/amd64" || grammar.Publish.Output != "out" {
		t.Errorf("flags not bound: %+v", grammar)
	}

	if _, err := parser.Parse([]string{"-q", "-d", "publish"}); err == nil {
		t.Error("quiet and debug together must be rejected")
	}
}

func TestVersionShort(t *testing.T) {
	var buf bytes.Buffer
	cmd := VersionCmd{Short: true, out: &buf}
	if err := cmd.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(buf.String()); got != internal.Version() {
		t.Errorf("output = %q, want %q", got, internal.Version())
	}

	buf.Reset()
	cmd.Short = false
	if err := cmd.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(buf.String()); got != internal.VersionString() {
		t.Errorf("output = %q, want %q", got, internal.VersionString())
	}
}
