package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/rinkplot/pkg/buildinfo"
	"github.com/matzehuels/rinkplot/pkg/errors"
)

func TestRootCommandSubcommands(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()

	for _, name := range []string{"render", "catalog", "pick", "serve", "cache", "completion"} {
		t.Run(name, func(t *testing.T) {
			cmd, _, err := root.Find([]string{name})
			if err != nil || cmd.Name() != name {
				t.Errorf("subcommand %q not registered", name)
			}
		})
	}
}

func TestRootCommandVersion(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--version"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("--version: %v", err)
	}
	if !strings.Contains(out.String(), buildinfo.Get().Version) {
		t.Errorf("version output %q missing %q", out.String(), buildinfo.Get().Version)
	}
}

func TestRootCommandConfig(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing explicit file", func(t *testing.T) {
		root := New(io.Discard, LogInfo).RootCommand()
		root.SetArgs([]string{"--config", filepath.Join(dir, "nope.toml"), "cache", "path"})
		err := root.ExecuteContext(context.Background())
		if errors.GetCode(err) != errors.ErrCodeFileNotFound {
			t.Errorf("code = %q, want %q", errors.GetCode(err), errors.ErrCodeFileNotFound)
		}
	})

	t.Run("loaded into CLI", func(t *testing.T) {
		path := filepath.Join(dir, "config.toml")
		data := "[render]\norientation = \"vertical\"\n\n[cache]\ndir = \"" + filepath.ToSlash(filepath.Join(dir, "c")) + "\"\n"
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
		c := New(io.Discard, LogInfo)
		root := c.RootCommand()
		root.SetArgs([]string{"--config", path, "cache", "path"})
		if err := root.ExecuteContext(context.Background()); err != nil {
			t.Fatalf("execute: %v", err)
		}
		if c.Config.Render.Orientation != "vertical" {
			t.Errorf("Orientation = %q, want vertical", c.Config.Render.Orientation)
		}
		got, err := c.fileCacheDir()
		if err != nil {
			t.Fatal(err)
		}
		if got != filepath.ToSlash(filepath.Join(dir, "c")) {
			t.Errorf("fileCacheDir = %q", got)
		}
	})
}

func TestCacheClearCommand(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))

	render := New(io.Discard, LogInfo).RootCommand()
	render.SetArgs([]string{"render", "-o", filepath.Join(dir, "rink"), "-f", "svg,pdf"})
	if err := render.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("render: %v", err)
	}

	pattern := filepath.Join(dir, "cache", appName, "*", "*.json")
	if entries, _ := filepath.Glob(pattern); len(entries) != 2 {
		t.Fatalf("cache entries before clear = %d, want 2", len(entries))
	}

	clearCmd := New(io.Discard, LogInfo).RootCommand()
	clearCmd.SetArgs([]string{"cache", "clear"})
	if err := clearCmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	if entries, _ := filepath.Glob(pattern); len(entries) != 0 {
		t.Errorf("cache entries after clear = %d, want 0", len(entries))
	}
}

func TestCompletionCommand(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			root := New(io.Discard, LogInfo).RootCommand()
			var out bytes.Buffer
			root.SetOut(&out)
			root.SetArgs([]string{"completion", shell})
			if err := root.ExecuteContext(context.Background()); err != nil {
				t.Fatalf("completion %s: %v", shell, err)
			}
			if !strings.Contains(out.String(), appName) {
				t.Errorf("%s completion does not mention %s", shell, appName)
			}
		})
	}
}

func TestRenderFlagCompletion(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	root := New(io.Discard, LogInfo).RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"__complete", "render", "--orientation", ""})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("__complete: %v", err)
	}
	for _, want := range []string{"horizontal", "vertical"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("completion output %q missing %q", out.String(), want)
		}
	}
}
